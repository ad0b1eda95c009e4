package pika_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pika-lang/pika"
)

func TestTranspile_SingleExpression(t *testing.T) {
	output, err := pika.Transpile("1 + 2 * 3")
	require.NoError(t, err)

	assert.Equal(t, "1 + 2 * 3\n", output)
}

func TestTranspile_MultipleStatements(t *testing.T) {
	output, err := pika.Transpile("x = 1\nx += 2\nfact(x)")
	require.NoError(t, err)

	assert.Equal(t, "x = 1\nx += 2\nfact(x)\n", output)
}

func TestTranspile_ExampleScript(t *testing.T) {
	source, err := os.ReadFile("docs/example.pika")
	require.NoError(t, err)

	output, err := pika.Transpile(string(source))
	require.NoError(t, err)

	want := "def fact(n):\n" +
		"\tx = 1\n" +
		"\ti = 1\n" +
		"\twhile i <= n:\n" +
		"\t\tx += i\n" +
		"\t\ti += 1\n" +
		"\treturn x\n"

	assert.Equal(t, want, output)
}

func TestTranspile_LexError(t *testing.T) {
	_, err := pika.Transpile(`"unterminated`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unterminated string")
}

func TestTranspile_ParseError(t *testing.T) {
	_, err := pika.Transpile("(1 + 2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected RightParen")
}

func TestTranspile_EmptySource(t *testing.T) {
	output, err := pika.Transpile("")
	require.NoError(t, err)

	assert.Equal(t, "", output)
}
