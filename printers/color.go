package printers

import (
	"github.com/gookit/color"
)

// Color functions used when printing information
var (
	ColorCyan       = color.Cyan.Printf
	ColorLightCyan  = color.LightCyan.Printf
	ColorGreen      = color.Green.Printf
	ColorLightGreen = color.LightGreen.Printf
	ColorYellow     = color.Yellow.Printf
	ColorRed        = color.Red.Printf
	ColorLightBlue  = color.FgLightBlue.Printf
)

// ColorPrinter prints with color support: prompts in cyan, generated code in
// light green, errors in red.
type ColorPrinter struct{}

// NewColorPrinter creates a new ColorPrinter instance.
func NewColorPrinter() *ColorPrinter {
	return &ColorPrinter{}
}

// PrintPrompt writes the input prompt.
func (p *ColorPrinter) PrintPrompt() {
	ColorLightCyan("%s", Prompt)
}

// PrintOutput writes generated Python code, newline-terminated.
func (p *ColorPrinter) PrintOutput(code string) {
	ColorLightGreen("%s\n", code)
}

// PrintError reports an error.
func (p *ColorPrinter) PrintError(format string, args ...any) {
	ColorRed(format+"\n", args...)
}

// PrintInfo writes informational text.
func (p *ColorPrinter) PrintInfo(format string, args ...any) {
	ColorYellow(format+"\n", args...)
}
