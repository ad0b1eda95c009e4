package printers

import (
	"fmt"
	"os"
)

// PlainPrinter prints in a simple, plain text format. Generated code and
// prompts go to stdout, errors to stderr, so piped output stays clean Python.
type PlainPrinter struct{}

// NewPlainPrinter creates a new PlainPrinter instance.
func NewPlainPrinter() *PlainPrinter {
	return &PlainPrinter{}
}

// PrintPrompt writes the input prompt.
func (p *PlainPrinter) PrintPrompt() {
	fmt.Print(Prompt)
}

// PrintOutput writes generated Python code, newline-terminated.
func (p *PlainPrinter) PrintOutput(code string) {
	fmt.Println(code)
}

// PrintError reports an error on stderr.
func (p *PlainPrinter) PrintError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

// PrintInfo writes informational text.
func (p *PlainPrinter) PrintInfo(format string, args ...any) {
	fmt.Printf(format+"\n", args...)
}
