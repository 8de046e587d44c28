package main

import (
	"flag"
	"fmt"
	"strings"

	"phonepad/internal/keypad"
	"phonepad/internal/logging"
)

type DecodeCommand struct {
	wiring commandWiring
}

func NewDecodeCommand(wiring commandWiring) *DecodeCommand {
	return &DecodeCommand{wiring: wiring}
}

func (c *DecodeCommand) Run(args []string) error {
	fs := flag.NewFlagSet("decode", flag.ContinueOnError)
	fs.SetOutput(c.wiring.stderr)
	charsetFlag := fs.String("charset", "", "keypad layout id")
	flushEnd := fs.Bool("flush-end", false, "commit the pending key group when input ends without #")
	copyOut := fs.Bool("copy", false, "copy decoded text to the clipboard")
	if err := fs.Parse(args); err != nil {
		return err
	}

	env, err := newCommandEnv(c.wiring)
	if err != nil {
		return err
	}
	var opts []keypad.DecoderOption
	if *flushEnd || env.cfg.FlushAtEnd() {
		opts = append(opts, keypad.WithFlushAtEnd())
	}
	decoder := keypad.NewDecoder(env.registry, opts...)
	id := env.charsetID(*charsetFlag)

	inputs, err := readInputs(fs.Args(), c.wiring.stdin)
	if err != nil {
		return err
	}
	results := make([]string, 0, len(inputs))
	for _, input := range inputs {
		text, err := decoder.Decode(input, id)
		if err != nil {
			return fmt.Errorf("decode %q: %w", input, err)
		}
		env.logger.Debug("decoded", logging.F("charset", id), logging.F("input", input), logging.F("text", text))
		results = append(results, text)
	}
	if err := writeResults(c.wiring.stdout, results); err != nil {
		return err
	}
	if *copyOut || env.cfg.CopyToClipboard() {
		return copyResults(c.wiring, env.logger, results)
	}
	return nil
}

func copyResults(wiring commandWiring, logger logging.Logger, results []string) error {
	if len(results) == 0 {
		return nil
	}
	if err := wiring.copyText(strings.Join(results, "\n")); err != nil {
		return fmt.Errorf("copy: %w", err)
	}
	logger.Info("copied to clipboard", logging.F("lines", len(results)))
	return nil
}
