package main

import (
	"flag"
	"fmt"

	"phonepad/internal/keypad"
	"phonepad/internal/logging"
)

type EncodeCommand struct {
	wiring commandWiring
}

func NewEncodeCommand(wiring commandWiring) *EncodeCommand {
	return &EncodeCommand{wiring: wiring}
}

func (c *EncodeCommand) Run(args []string) error {
	fs := flag.NewFlagSet("encode", flag.ContinueOnError)
	fs.SetOutput(c.wiring.stderr)
	charsetFlag := fs.String("charset", "", "keypad layout id")
	copyOut := fs.Bool("copy", false, "copy press sequences to the clipboard")
	if err := fs.Parse(args); err != nil {
		return err
	}

	env, err := newCommandEnv(c.wiring)
	if err != nil {
		return err
	}
	encoder := keypad.NewEncoder(env.registry)
	id := env.charsetID(*charsetFlag)

	inputs, err := readInputs(fs.Args(), c.wiring.stdin)
	if err != nil {
		return err
	}
	results := make([]string, 0, len(inputs))
	for _, text := range inputs {
		seq, err := encoder.Encode(text, id)
		if err != nil {
			return fmt.Errorf("encode %q: %w", text, err)
		}
		env.logger.Debug("encoded", logging.F("charset", id), logging.F("text", text), logging.F("presses", seq))
		results = append(results, seq)
	}
	if err := writeResults(c.wiring.stdout, results); err != nil {
		return err
	}
	if *copyOut || env.cfg.CopyToClipboard() {
		return copyResults(c.wiring, env.logger, results)
	}
	return nil
}
