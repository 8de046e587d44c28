package main

import (
	"fmt"
	"os"
)

const usageText = `phonepad decodes multi-tap phone keypad presses.

Usage:
  phonepad <command> [flags]

Commands:
  decode     decode press sequences (arguments or stdin lines)
  encode     encode text into press sequences
  charsets   list keypad layouts, or show one layout's keys
  config     print configuration (effective or defaults)
  help       show help

Keys:
  *   cancel the pending key group
  #   commit the pending key group and stop
  ' ' commit the pending key group

Decode/encode flags:
  --charset ID   layout to use (default from config, then "en")
  --copy         copy results to the clipboard
  --flush-end    decode only: commit the last group when input has no #

Examples:
  phonepad decode "4433555 555666#"
  phonepad decode --charset ro "77777844488#"
  echo "HELLO" | phonepad encode
  phonepad charsets ro
  phonepad config --format toml
`

func printUsage() {
	fmt.Fprint(os.Stderr, usageText)
}

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		printUsage()
		return
	}

	wiring := defaultCommandWiring(os.Stdin, os.Stdout, os.Stderr)
	commands := buildCommands(wiring)

	switch args[0] {
	case "-h", "--help", "help":
		printUsage()
		return
	}

	runner, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", args[0])
		printUsage()
		os.Exit(2)
	}
	exitOnErr(args[0], runCommand(runner, args[1:]), wiring.stderr)
}
