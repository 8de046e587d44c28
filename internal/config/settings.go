package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	defaultCharset  = "en"
	defaultLogLevel = "warn"
)

type CoreConfig struct {
	Decoder  CoreDecoderConfig  `toml:"decoder"`
	Charsets CoreCharsetsConfig `toml:"charsets"`
	Output   CoreOutputConfig   `toml:"output"`
	Logging  CoreLoggingConfig  `toml:"logging"`
}

type CoreDecoderConfig struct {
	DefaultCharset string `toml:"default_charset"`
	FlushAtEnd     bool   `toml:"flush_at_end"`
}

type CoreCharsetsConfig struct {
	Paths []string `toml:"paths"`
}

type CoreOutputConfig struct {
	Copy bool `toml:"copy"`
}

type CoreLoggingConfig struct {
	Level string `toml:"level"`
}

func DefaultCoreConfig() CoreConfig {
	return CoreConfig{
		Decoder: CoreDecoderConfig{
			DefaultCharset: defaultCharset,
		},
		Logging: CoreLoggingConfig{
			Level: defaultLogLevel,
		},
	}
}

// LoadCoreConfig reads config.toml over the defaults, then applies
// PHONEPAD_* overrides. A .env file in the working directory is loaded
// first when present; variables already set in the environment win.
func LoadCoreConfig() (CoreConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return CoreConfig{}, fmt.Errorf(".env: %w", err)
	}

	path, err := CoreConfigPath()
	if err != nil {
		return CoreConfig{}, err
	}
	cfg, err := loadCoreConfigFromPath(path)
	if err != nil {
		return CoreConfig{}, err
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *CoreConfig) applyEnv() {
	if value := strings.TrimSpace(os.Getenv(envCharset)); value != "" {
		c.Decoder.DefaultCharset = value
	}
	if value := strings.TrimSpace(os.Getenv(envLogLevel)); value != "" {
		c.Logging.Level = value
	}
}

func (c CoreConfig) DefaultCharset() string {
	id := strings.TrimSpace(c.Decoder.DefaultCharset)
	if id == "" {
		return defaultCharset
	}
	return id
}

func (c CoreConfig) FlushAtEnd() bool {
	return c.Decoder.FlushAtEnd
}

func (c CoreConfig) CopyToClipboard() bool {
	return c.Output.Copy
}

func (c CoreConfig) LogLevel() string {
	level := strings.TrimSpace(c.Logging.Level)
	if level == "" {
		return defaultLogLevel
	}
	return level
}

// CharsetPaths returns the layout sources to load: the charsets directory
// followed by the configured paths, resolved and deduplicated.
func (c CoreConfig) CharsetPaths() ([]string, error) {
	dir, err := CharsetsDir()
	if err != nil {
		return nil, err
	}
	paths := []string{dir}
	for _, raw := range normalizedList(c.Charsets.Paths) {
		path, err := resolveConfigPath(raw)
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return normalizedList(paths), nil
}

func loadCoreConfigFromPath(path string) (CoreConfig, error) {
	cfg := DefaultCoreConfig()
	if err := readTOML(path, &cfg); err != nil {
		return CoreConfig{}, err
	}
	return cfg, nil
}

func readTOML(path string, out any) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return errors.New("path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}
	return toml.Unmarshal(data, out)
}

func resolveConfigPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", errors.New("path is required")
	}
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, path[2:]), nil
	}
	if filepath.IsAbs(path) {
		return path, nil
	}
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, path), nil
}

func normalizedList(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, 0, len(values))
	seen := map[string]struct{}{}
	for _, raw := range values {
		value := strings.TrimSpace(raw)
		if value == "" {
			continue
		}
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		out = append(out, value)
	}
	return out
}
