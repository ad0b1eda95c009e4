// Package repl implements the interactive read-transpile-print loop.
package repl

import (
	"bufio"
	"io"
	"strings"

	"github.com/pika-lang/pika"
	"github.com/pika-lang/pika/history"
	"github.com/pika-lang/pika/printers"
)

// QuitCommand ends an interactive session.
const QuitCommand = ".quit"

// REPL reads lines of pika source, transpiles each one, and prints the
// resulting Python. Errors are reported per line and never end the session;
// only QuitCommand or end of input do.
type REPL struct {
	in          *bufio.Scanner
	printer     printers.Printer
	log         *history.Log
	interactive bool
}

// Option configures a REPL.
type Option func(*REPL)

// WithHistory records every line to the given session log.
func WithHistory(log *history.Log) Option {
	return func(r *REPL) {
		r.log = log
	}
}

// WithInteractive controls whether a prompt is shown before each line.
func WithInteractive(interactive bool) Option {
	return func(r *REPL) {
		r.interactive = interactive
	}
}

// New creates a REPL reading from in and writing through printer.
func New(in io.Reader, printer printers.Printer, opts ...Option) *REPL {
	r := &REPL{
		in:          bufio.NewScanner(in),
		printer:     printer,
		interactive: true,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run processes lines until the quit command or end of input. The returned
// error reflects input or history failures; malformed pika lines are printed
// and swallowed.
func (r *REPL) Run() error {
	for {
		if r.interactive {
			r.printer.PrintPrompt()
		}

		if !r.in.Scan() {
			return r.in.Err()
		}

		line := strings.TrimSpace(r.in.Text())
		if line == "" {
			continue
		}
		if line == QuitCommand {
			return nil
		}

		if err := r.eval(line); err != nil {
			return err
		}
	}
}

// eval transpiles a single line, prints the outcome, and records it to the
// history log when one is attached.
func (r *REPL) eval(line string) error {
	output, err := pika.Transpile(line)

	entry := history.Entry{Source: line}

	if err != nil {
		r.printer.PrintError("%s", err)
		entry.Err = err.Error()
	} else {
		output = strings.TrimRight(output, "\n")
		r.printer.PrintOutput(output)
		entry.Output = output
	}

	if r.log == nil {
		return nil
	}

	return r.log.Record(entry)
}
