package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"phonepad/internal/charset"
	"phonepad/internal/config"
	"phonepad/internal/logging"

	"github.com/charmbracelet/x/ansi"
)

// commandEnv is what every keypad command needs once flags are parsed.
type commandEnv struct {
	cfg      config.CoreConfig
	logger   logging.Logger
	registry *charset.Registry
}

func newCommandEnv(wiring commandWiring) (*commandEnv, error) {
	cfg, err := wiring.loadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	level, known := logging.ParseLevel(cfg.LogLevel())
	logger := logging.New(wiring.stderr, level)
	if !known {
		logger.Warn("unknown log level, using info", logging.F("level", cfg.LogLevel()))
	}

	paths, err := cfg.CharsetPaths()
	if err != nil {
		return nil, err
	}
	defs, err := charset.LoadPaths(paths)
	if err != nil {
		return nil, fmt.Errorf("load charsets: %w", err)
	}
	registry, err := charset.Builtin().With(defs...)
	if err != nil {
		return nil, fmt.Errorf("load charsets: %w", err)
	}
	for _, def := range defs {
		logger.Debug("charset loaded", logging.F("id", def.ID), logging.F("keys", len(def.Keys)))
	}
	return &commandEnv{cfg: cfg, logger: logger, registry: registry}, nil
}

func (e *commandEnv) charsetID(flagValue string) string {
	if id := strings.TrimSpace(flagValue); id != "" {
		return id
	}
	return e.cfg.DefaultCharset()
}

// readInputs returns the positional arguments, or every stdin line when
// there are none. Terminal escape sequences are stripped from stdin lines.
func readInputs(args []string, stdin io.Reader) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	var lines []string
	scanner := bufio.NewScanner(stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		lines = append(lines, ansi.Strip(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return lines, nil
}

func writeResults(out io.Writer, results []string) error {
	for _, result := range results {
		if _, err := fmt.Fprintln(out, result); err != nil {
			return err
		}
	}
	return nil
}

// runCommand treats a -h request as success; the flag set has already
// printed its usage.
func runCommand(runner commandRunner, args []string) error {
	err := runner.Run(args)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	return err
}

func exitOnErr(label string, err error, stderr io.Writer) {
	if err == nil {
		return
	}
	fmt.Fprintf(stderr, "%s error: %v\n", label, err)
	os.Exit(1)
}
