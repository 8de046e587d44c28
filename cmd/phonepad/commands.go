package main

import (
	"io"
	"os"

	"phonepad/internal/config"
)

type commandRunner interface {
	Run(args []string) error
}

type commandWiring struct {
	stdin      io.Reader
	stdout     io.Writer
	stderr     io.Writer
	loadConfig func() (config.CoreConfig, error)
	copyText   func(text string) error
}

func defaultCommandWiring(stdin io.Reader, stdout, stderr io.Writer) commandWiring {
	if stdin == nil {
		stdin = os.Stdin
	}
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return commandWiring{
		stdin:      stdin,
		stdout:     stdout,
		stderr:     stderr,
		loadConfig: config.LoadCoreConfig,
		copyText:   copyTextToClipboard,
	}
}

func buildCommands(wiring commandWiring) map[string]commandRunner {
	return map[string]commandRunner{
		"decode":   NewDecodeCommand(wiring),
		"encode":   NewEncodeCommand(wiring),
		"charsets": NewCharsetsCommand(wiring),
		"config":   NewConfigCommand(wiring.stdout, wiring.stderr, wiring.loadConfig),
	}
}
