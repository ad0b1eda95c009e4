// Package app wires flag parsing, printers, history, and the transpiler
// pipeline into the pika command.
package app

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/pika-lang/pika"
	"github.com/pika-lang/pika/history"
	"github.com/pika-lang/pika/printers"
	"github.com/pika-lang/pika/repl"
)

// Run executes the pika application and returns an exit code
func Run(args []string) int {
	config, err := ProcessUserInput(args)

	switch {
	case errors.Is(err, ErrUsageRequested):
		return 0

	case errors.Is(err, ErrVersionRequested):
		PrintVersion()
		return 0

	case errors.Is(err, ErrUpdateCheckRequested):
		msg, checkErr := CheckForUpdates()
		if checkErr != nil {
			fmt.Fprintln(os.Stderr, checkErr)
			return 1
		}
		fmt.Println(msg)
		return 0

	case err != nil:
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	printer := newPrinter(config)

	var log *history.Log
	if config.HistoryPath != "" {
		log, err = history.Open(config.HistoryPath)
		if err != nil {
			printer.PrintError("%s", err)
			return 1
		}
		defer log.Close()
	}

	if config.ScriptPath != "" {
		if err := transpileFile(config, log); err != nil {
			printer.PrintError("%s", err)
			return 1
		}
		return 0
	}

	opts := []repl.Option{
		repl.WithInteractive(term.IsTerminal(int(os.Stdin.Fd()))),
	}
	if log != nil {
		opts = append(opts, repl.WithHistory(log))
	}

	if err := repl.New(os.Stdin, printer, opts...).Run(); err != nil {
		printer.PrintError("%s", err)
		return 1
	}

	return 0
}

// newPrinter selects colored output only for interactive terminals.
func newPrinter(config Config) printers.Printer {
	if config.NoColor || !term.IsTerminal(int(os.Stdout.Fd())) {
		return printers.NewPlainPrinter()
	}

	return printers.NewColorPrinter()
}

// transpileFile converts one script and writes the Python to the configured
// destination.
func transpileFile(config Config, log *history.Log) error {
	source, err := os.ReadFile(config.ScriptPath)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}

	output, err := pika.Transpile(string(source))

	if log != nil {
		entry := history.Entry{Source: string(source), Output: output}
		if err != nil {
			entry.Err = err.Error()
		}
		if recordErr := log.Record(entry); recordErr != nil {
			return recordErr
		}
	}

	if err != nil {
		return err
	}

	if config.OutputPath != "" {
		if err := os.WriteFile(config.OutputPath, []byte(output), 0o644); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		return nil
	}

	fmt.Print(output)

	return nil
}
