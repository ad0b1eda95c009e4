// Package token defines the lexical tokens of the pika language and the
// token stream consumed by the parser.
package token

import "fmt"

// Type identifies the lexical class of a token.
type Type int

// The full set of token types the lexer can produce.
const (
	Plus Type = iota
	PlusEqual
	Minus
	MinusEqual
	Asterisk
	AsteriskAsterisk
	AsteriskEqual
	Slash
	SlashEqual
	Modulus
	ModulusEqual
	At

	Equal
	EqualEqual
	Bang
	BangEqual
	And
	Or
	Less
	LessEqual
	Greater
	GreaterEqual

	Dot
	DotDot
	Comma
	LeftParen
	RightParen
	LeftBracket
	RightBracket
	LeftBrace
	RightBrace
	Underscore
	Colon
	ScopeOperator
	RightArrow

	Integer
	Float
	String
	Identifier

	Enum
	EndEnum
	Struct
	EndStruct
	Def
	EndDef
	If
	EndIf
	Else
	For
	Do
	Done
	While
	Return
	Break
	Continue
	True
	False

	EOF
)

var typeNames = map[Type]string{
	Plus:             "Plus",
	PlusEqual:        "PlusEqual",
	Minus:            "Minus",
	MinusEqual:       "MinusEqual",
	Asterisk:         "Asterisk",
	AsteriskAsterisk: "AsteriskAsterisk",
	AsteriskEqual:    "AsteriskEqual",
	Slash:            "Slash",
	SlashEqual:       "SlashEqual",
	Modulus:          "Modulus",
	ModulusEqual:     "ModulusEqual",
	At:               "At",
	Equal:            "Equal",
	EqualEqual:       "EqualEqual",
	Bang:             "Bang",
	BangEqual:        "BangEqual",
	And:              "And",
	Or:               "Or",
	Less:             "Less",
	LessEqual:        "LessEqual",
	Greater:          "Greater",
	GreaterEqual:     "GreaterEqual",
	Dot:              "Dot",
	DotDot:           "DotDot",
	Comma:            "Comma",
	LeftParen:        "LeftParen",
	RightParen:       "RightParen",
	LeftBracket:      "LeftBracket",
	RightBracket:     "RightBracket",
	LeftBrace:        "LeftBrace",
	RightBrace:       "RightBrace",
	Underscore:       "Underscore",
	Colon:            "Colon",
	ScopeOperator:    "ScopeOperator",
	RightArrow:       "RightArrow",
	Integer:          "Integer",
	Float:            "Float",
	String:           "String",
	Identifier:       "Identifier",
	Enum:             "Enum",
	EndEnum:          "EndEnum",
	Struct:           "Struct",
	EndStruct:        "EndStruct",
	Def:              "Def",
	EndDef:           "EndDef",
	If:               "If",
	EndIf:            "EndIf",
	Else:             "Else",
	For:              "For",
	Do:               "Do",
	Done:             "Done",
	While:            "While",
	Return:           "Return",
	Break:            "Break",
	Continue:         "Continue",
	True:             "True",
	False:            "False",
	EOF:              "EOF",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}

	return fmt.Sprintf("Type(%d)", int(t))
}

// IsBinaryOperator reports whether tokens of this type may join two operands.
func (t Type) IsBinaryOperator() bool {
	switch t {
	case And, Or,
		Plus, Minus, Asterisk, AsteriskAsterisk,
		PlusEqual, MinusEqual, AsteriskEqual,
		Modulus, ModulusEqual,
		Slash, SlashEqual, Equal,
		EqualEqual, BangEqual, Less, Greater,
		LessEqual, GreaterEqual:
		return true
	}

	return false
}

// Precedence returns the binding strength of an operator token.
// Higher values bind tighter. Non-operator tokens return -1.
func (t Type) Precedence() int {
	switch t {
	case Bang:
		return 0

	case EqualEqual, GreaterEqual, LessEqual, BangEqual, Less, Greater:
		return 1

	case PlusEqual, SlashEqual, ModulusEqual, Equal, AsteriskEqual, MinusEqual:
		return 2

	case Plus, And, Or, Minus:
		return 3

	case Asterisk, Modulus, Slash:
		return 4

	case AsteriskAsterisk:
		return 5
	}

	return -1
}

// IsRightAssociative reports whether an operator token groups right-to-left.
// Exponentiation and the assignment family do; everything else is
// left-associative.
func (t Type) IsRightAssociative() bool {
	switch t {
	case AsteriskAsterisk, Equal, PlusEqual, MinusEqual, AsteriskEqual, SlashEqual, ModulusEqual:
		return true
	}

	return false
}

var keywords = map[string]Type{
	"enum":      Enum,
	"endenum":   EndEnum,
	"struct":    Struct,
	"endstruct": EndStruct,
	"def":       Def,
	"enddef":    EndDef,
	"if":        If,
	"endif":     EndIf,
	"else":      Else,
	"for":       For,
	"do":        Do,
	"done":      Done,
	"while":     While,
	"return":    Return,
	"break":     Break,
	"continue":  Continue,
	"true":      True,
	"false":     False,
}

// KeywordType returns the keyword token type for a lexeme, or Identifier
// when the lexeme is not a reserved word.
func KeywordType(lexeme string) Type {
	if t, ok := keywords[lexeme]; ok {
		return t
	}

	return Identifier
}

// Token is a single unit of meaning scanned from source code.
// Literal tokens carry their decoded value in the field matching their type;
// the other value fields are zero.
type Token struct {
	Type   Type
	Lexeme string // text of the token as it appears in the source
	Line   int
	Column int

	Int   int64
	Float float64
	Str   string
}

func (t Token) String() string {
	switch t.Type {
	case Integer:
		return fmt.Sprintf("%s %q (%d)", t.Type, t.Lexeme, t.Int)
	case Float:
		return fmt.Sprintf("%s %q (%g)", t.Type, t.Lexeme, t.Float)
	case String:
		return fmt.Sprintf("%s %q", t.Type, t.Str)
	}

	return fmt.Sprintf("%s %q", t.Type, t.Lexeme)
}
