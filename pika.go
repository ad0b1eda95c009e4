// Package pika transpiles pika source code to Python.
//
// The pipeline is lexer -> parser -> pygen: source text is scanned into a
// token stream, parsed into one AST per top-level statement, and each tree
// is rendered as Python.
package pika

import (
	"strings"

	"github.com/pika-lang/pika/lexer"
	"github.com/pika-lang/pika/parser"
	"github.com/pika-lang/pika/pygen"
)

// Transpile converts pika source code to Python source code. Each top-level
// statement renders in order; single-line statements are newline-terminated,
// block statements already carry their own line structure.
func Transpile(source string) (string, error) {
	stream, err := lexer.Scan(source)
	if err != nil {
		return "", err
	}

	program, err := parser.Parse(stream)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, statement := range program {
		code, err := pygen.Generate(statement)
		if err != nil {
			return "", err
		}

		b.WriteString(code)
		if !strings.HasSuffix(code, "\n") {
			b.WriteString("\n")
		}
	}

	return b.String(), nil
}
