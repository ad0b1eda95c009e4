// Package printers contains the logic for printing information
package printers

// Printer is the output surface of the interactive session and the CLI.
// Implementations decide how prompts, generated code, and errors reach the
// user.
type Printer interface {
	// PrintPrompt writes the input prompt without a trailing newline.
	PrintPrompt()

	// PrintOutput writes a chunk of generated Python code.
	PrintOutput(code string)

	// PrintError reports a lex, parse, or generation error.
	PrintError(format string, args ...any)

	// PrintInfo writes informational text such as version messages.
	PrintInfo(format string, args ...any)
}

// Prompt is shown before every line read in an interactive session.
const Prompt = "expr > "
