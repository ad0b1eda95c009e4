package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pika-lang/pika/lexer"
	"github.com/pika-lang/pika/parser"
)

// parseOne lexes and parses a source snippet expected to hold exactly one
// top-level statement, returning its s-expression form.
func parseOne(t *testing.T, source string) string {
	t.Helper()

	stream, err := lexer.Scan(source)
	require.NoError(t, err)

	program, err := parser.Parse(stream)
	require.NoError(t, err)
	require.Len(t, program, 1)

	return program[0].String()
}

func TestParse_Expressions(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{
			name:   "integer literal",
			source: "42",
			want:   "42",
		},
		{
			name:   "float literal",
			source: "2.5",
			want:   "2.5",
		},
		{
			name:   "string literal",
			source: `"hi"`,
			want:   `"hi"`,
		},
		{
			name:   "boolean literals",
			source: "true",
			want:   "true",
		},
		{
			name:   "identifier",
			source: "x",
			want:   "x",
		},
		{
			name:   "multiplication binds tighter than addition",
			source: "1 + 2 * 3",
			want:   "(Plus 1 (Multiply 2 3))",
		},
		{
			name:   "equal precedence associates left",
			source: "1 - 2 - 3",
			want:   "(Minus (Minus 1 2) 3)",
		},
		{
			name:   "exponent associates right",
			source: "2 ** 3 ** 2",
			want:   "(Exponent 2 (Exponent 3 2))",
		},
		{
			name:   "parentheses override precedence",
			source: "(1 + 2) * 3",
			want:   "(Multiply (Plus 1 2) 3)",
		},
		{
			name:   "unary minus",
			source: "-5 + 3",
			want:   "(Plus (Minus 5) 3)",
		},
		{
			name:   "logical not",
			source: "!true",
			want:   "(LogicalNot true)",
		},
		{
			name:   "assignment takes a full expression",
			source: "x = a + b",
			want:   "(Assign x (Plus a b))",
		},
		{
			name:   "compound assignment",
			source: "x += 1",
			want:   "(PlusAssign x 1)",
		},
		{
			name:   "call without arguments",
			source: "ping()",
			want:   "(Call ping ())",
		},
		{
			name:   "call with arguments",
			source: "add(1, 2)",
			want:   "(Call add (1 2))",
		},
		{
			name:   "call inside a larger expression",
			source: "2 * fact(5) == 240",
			want:   "(Equal (Multiply 2 (Call fact (5))) 240)",
		},
		{
			name:   "logical operators",
			source: "a && b || c",
			want:   "(Or (And a b) c)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseOne(t, tt.source))
		})
	}
}

func TestParse_Statements(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{
			name:   "function definition",
			source: "def fact(n)\n    x = 1\n    return x\nenddef",
			want:   "(Def fact (n) ((Assign x 1) (Return x)))",
		},
		{
			name:   "function without parameters",
			source: "def greet()\n    return \"hi\"\nenddef",
			want:   `(Def greet () ((Return "hi")))`,
		},
		{
			name:   "if statement",
			source: "if x < 10\n    x += 1\nendif",
			want:   "(If (Less x 10) ((PlusAssign x 1)))",
		},
		{
			name:   "if with else",
			source: "if ok\n    a()\nelse\n    b()\nendif",
			want:   "(If ok ((Call a ())) ((Call b ())))",
		},
		{
			name:   "while loop",
			source: "while i <= n\n    i += 1\ndone",
			want:   "(While (LessEqual i n) ((PlusAssign i 1)))",
		},
		{
			name:   "loop with break and continue",
			source: "while true\n    break\n    continue\ndone",
			want:   "(While true ((Break) (Continue)))",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseOne(t, tt.source))
		})
	}
}

func TestParse_MultipleStatements(t *testing.T) {
	stream, err := lexer.Scan("x = 1\ny = 2\nx + y")
	require.NoError(t, err)

	program, err := parser.Parse(stream)
	require.NoError(t, err)

	require.Len(t, program, 3)
	assert.Equal(t, "(Assign x 1)", program[0].String())
	assert.Equal(t, "(Assign y 2)", program[1].String())
	assert.Equal(t, "(Plus x y)", program[2].String())
}

func TestParse_NestedBlocks(t *testing.T) {
	source := "def fact(n)\n" +
		"    x = 1\n" +
		"    i = 1\n" +
		"    while i <= n\n" +
		"        x += i\n" +
		"        i += 1\n" +
		"    done\n" +
		"    return x\n" +
		"enddef"

	want := "(Def fact (n) ((Assign x 1) (Assign i 1) " +
		"(While (LessEqual i n) ((PlusAssign x i) (PlusAssign i 1))) " +
		"(Return x)))"

	assert.Equal(t, want, parseOne(t, source))
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		wantMsg string
	}{
		{
			name:    "missing closing parenthesis",
			source:  "(1 + 2",
			wantMsg: "expected RightParen",
		},
		{
			name:    "dangling operator",
			source:  "1 +",
			wantMsg: "expected an expression",
		},
		{
			name:    "unterminated function",
			source:  "def f()\n    return 1",
			wantMsg: "unterminated block",
		},
		{
			name:    "unterminated loop",
			source:  "while true\n    x = 1",
			wantMsg: "unterminated block",
		},
		{
			name:    "missing function name",
			source:  "def (x)\nenddef",
			wantMsg: "expected Identifier",
		},
		{
			name:    "stray keyword",
			source:  "done",
			wantMsg: "unexpected token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stream, err := lexer.Scan(tt.source)
			require.NoError(t, err)

			_, err = parser.Parse(stream)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}
