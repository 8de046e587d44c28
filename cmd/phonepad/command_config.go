package main

import (
	"encoding/json"
	"errors"
	"flag"
	"io"
	"strings"

	"phonepad/internal/config"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	configFormatJSON = "json"
	configFormatTOML = "toml"
)

type ConfigCommand struct {
	stdout     io.Writer
	stderr     io.Writer
	loadConfig func() (config.CoreConfig, error)
}

type configOutput struct {
	ConfigPath string                  `json:"config_path" toml:"config_path"`
	Decoder    effectiveDecoderConfig  `json:"decoder" toml:"decoder"`
	Charsets   effectiveCharsetsConfig `json:"charsets" toml:"charsets"`
	Output     effectiveOutputConfig   `json:"output" toml:"output"`
	Logging    effectiveLoggingConfig  `json:"logging" toml:"logging"`
}

type effectiveDecoderConfig struct {
	DefaultCharset string `json:"default_charset" toml:"default_charset"`
	FlushAtEnd     bool   `json:"flush_at_end" toml:"flush_at_end"`
}

type effectiveCharsetsConfig struct {
	Paths []string `json:"paths" toml:"paths"`
}

type effectiveOutputConfig struct {
	Copy bool `json:"copy" toml:"copy"`
}

type effectiveLoggingConfig struct {
	Level string `json:"level" toml:"level"`
}

func NewConfigCommand(stdout, stderr io.Writer, loadConfig func() (config.CoreConfig, error)) *ConfigCommand {
	if loadConfig == nil {
		loadConfig = config.LoadCoreConfig
	}
	return &ConfigCommand{
		stdout:     stdout,
		stderr:     stderr,
		loadConfig: loadConfig,
	}
}

func (c *ConfigCommand) Run(args []string) error {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	defaults := fs.Bool("default", false, "print default config values")
	format := fs.String("format", configFormatJSON, "output format: json|toml")
	if err := fs.Parse(args); err != nil {
		return err
	}

	resolvedFormat, err := resolveConfigFormat(*format)
	if err != nil {
		return err
	}
	payload, err := c.buildOutput(*defaults)
	if err != nil {
		return err
	}
	return writeConfigOutput(c.stdout, resolvedFormat, payload)
}

func (c *ConfigCommand) buildOutput(defaults bool) (configOutput, error) {
	path, err := config.CoreConfigPath()
	if err != nil {
		return configOutput{}, err
	}
	cfg := config.DefaultCoreConfig()
	if !defaults {
		cfg, err = c.loadConfig()
		if err != nil {
			return configOutput{}, err
		}
	}
	paths, err := cfg.CharsetPaths()
	if err != nil {
		return configOutput{}, err
	}
	return configOutput{
		ConfigPath: path,
		Decoder: effectiveDecoderConfig{
			DefaultCharset: cfg.DefaultCharset(),
			FlushAtEnd:     cfg.FlushAtEnd(),
		},
		Charsets: effectiveCharsetsConfig{
			Paths: paths,
		},
		Output: effectiveOutputConfig{
			Copy: cfg.CopyToClipboard(),
		},
		Logging: effectiveLoggingConfig{
			Level: cfg.LogLevel(),
		},
	}, nil
}

func writeConfigOutput(out io.Writer, format string, payload any) error {
	switch format {
	case configFormatJSON:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(payload)
	case configFormatTOML:
		data, err := toml.Marshal(payload)
		if err != nil {
			return err
		}
		if len(data) == 0 || data[len(data)-1] != '\n' {
			data = append(data, '\n')
		}
		_, err = out.Write(data)
		return err
	default:
		return errors.New("unsupported format")
	}
}

func resolveConfigFormat(raw string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", configFormatJSON:
		return configFormatJSON, nil
	case configFormatTOML:
		return configFormatTOML, nil
	default:
		return "", errors.New("invalid format: must be json or toml")
	}
}
