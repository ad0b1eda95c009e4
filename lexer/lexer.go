// Package lexer turns pika source code into a stream of tokens.
package lexer

import (
	"fmt"
	"strconv"
	"unicode"

	"github.com/pika-lang/pika/token"
)

// cursor tracks a half-open window [left, right) over the source text.
// left marks the start of the lexeme being scanned, right the position of
// the next unread rune.
type cursor struct {
	source []rune
	left   int
	right  int
}

func (c *cursor) eof() bool {
	return c.right >= len(c.source)
}

func (c *cursor) current() (rune, bool) {
	if c.eof() {
		return 0, false
	}

	return c.source[c.right], true
}

func (c *cursor) capture() string {
	return string(c.source[c.left:c.right])
}

// lexer scans pika source code one token at a time.
type lexer struct {
	cursor cursor
	line   int
	column int
	tokens []token.Token
}

// Scan tokenizes source and returns the resulting stream, which always ends
// with an EOF token. The first malformed input encountered aborts the scan.
func Scan(source string) (*token.Stream, error) {
	l := &lexer{
		cursor: cursor{source: []rune(source)},
		line:   1,
		column: 1,
	}

	if err := l.tokenize(); err != nil {
		return nil, err
	}

	return token.NewStream(l.tokens), nil
}

func (l *lexer) tokenize() error {
	for !l.cursor.eof() {
		if err := l.scanToken(); err != nil {
			return err
		}
		l.cursor.left = l.cursor.right
	}

	l.tokens = append(l.tokens, token.Token{Type: token.EOF, Line: l.line, Column: l.column})

	return nil
}

func (l *lexer) next() (rune, bool) {
	ch, ok := l.cursor.current()
	l.cursor.right++
	l.column++

	return ch, ok
}

func (l *lexer) peek() (rune, bool) {
	return l.cursor.current()
}

func (l *lexer) matchPeek(want rune) bool {
	ch, ok := l.peek()

	return ok && ch == want
}

func (l *lexer) addToken(t token.Type) {
	l.emit(token.Token{Type: t})
}

func (l *lexer) emit(tok token.Token) {
	tok.Lexeme = l.cursor.capture()
	tok.Line = l.line
	tok.Column = l.column - len([]rune(tok.Lexeme))
	l.tokens = append(l.tokens, tok)
}

func (l *lexer) scanToken() error {
	ch, ok := l.next()
	if !ok {
		return fmt.Errorf("lexer: read past end of input at %d:%d", l.line, l.column)
	}

	switch {
	case ch == ' ' || ch == '\r' || ch == '\t':
		return nil

	case ch == '\n':
		l.line++
		l.column = 1
		return nil

	case ch == '+' && l.matchPeek('='):
		l.next()
		l.addToken(token.PlusEqual)

	case ch == '-' && l.matchPeek('='):
		l.next()
		l.addToken(token.MinusEqual)

	case ch == '-' && l.matchPeek('>'):
		l.next()
		l.addToken(token.RightArrow)

	case ch == '*' && l.matchPeek('='):
		l.next()
		l.addToken(token.AsteriskEqual)

	case ch == '*' && l.matchPeek('*'):
		l.next()
		l.addToken(token.AsteriskAsterisk)

	case ch == '/' && l.matchPeek('='):
		l.next()
		l.addToken(token.SlashEqual)

	case ch == '%' && l.matchPeek('='):
		l.next()
		l.addToken(token.ModulusEqual)

	case ch == '=' && l.matchPeek('='):
		l.next()
		l.addToken(token.EqualEqual)

	case ch == '!' && l.matchPeek('='):
		l.next()
		l.addToken(token.BangEqual)

	case ch == '<' && l.matchPeek('='):
		l.next()
		l.addToken(token.LessEqual)

	case ch == '>' && l.matchPeek('='):
		l.next()
		l.addToken(token.GreaterEqual)

	case ch == '&' && l.matchPeek('&'):
		l.next()
		l.addToken(token.And)

	case ch == '|' && l.matchPeek('|'):
		l.next()
		l.addToken(token.Or)

	case ch == ':' && l.matchPeek(':'):
		l.next()
		l.addToken(token.ScopeOperator)

	case ch == '.' && l.matchPeek('.'):
		l.next()
		l.addToken(token.DotDot)

	case ch == '+':
		l.addToken(token.Plus)
	case ch == '-':
		l.addToken(token.Minus)
	case ch == '*':
		l.addToken(token.Asterisk)
	case ch == '/':
		l.addToken(token.Slash)
	case ch == '%':
		l.addToken(token.Modulus)
	case ch == '@':
		l.addToken(token.At)
	case ch == '!':
		l.addToken(token.Bang)
	case ch == '=':
		l.addToken(token.Equal)
	case ch == '<':
		l.addToken(token.Less)
	case ch == '>':
		l.addToken(token.Greater)
	case ch == '.':
		l.addToken(token.Dot)
	case ch == ',':
		l.addToken(token.Comma)
	case ch == '(':
		l.addToken(token.LeftParen)
	case ch == ')':
		l.addToken(token.RightParen)
	case ch == '[':
		l.addToken(token.LeftBracket)
	case ch == ']':
		l.addToken(token.RightBracket)
	case ch == '{':
		l.addToken(token.LeftBrace)
	case ch == '}':
		l.addToken(token.RightBrace)
	case ch == '_':
		l.addToken(token.Underscore)
	case ch == ':':
		l.addToken(token.Colon)

	case ch == '"':
		return l.scanString()

	case unicode.IsDigit(ch):
		return l.scanNumeric()

	case unicode.IsLetter(ch):
		l.scanWord()

	default:
		return fmt.Errorf("lexer: unexpected character %q at %d:%d", ch, l.line, l.column-1)
	}

	return nil
}

// scanString consumes a double-quoted string literal. The opening quote has
// already been consumed.
func (l *lexer) scanString() error {
	for {
		ch, ok := l.peek()
		if !ok {
			return fmt.Errorf("lexer: unterminated string at %d:%d", l.line, l.column)
		}
		if ch == '"' {
			break
		}
		l.next()
	}

	l.next() // closing quote

	lexeme := l.cursor.capture()
	l.emit(token.Token{
		Type: token.String,
		Str:  lexeme[1 : len(lexeme)-1],
	})

	return nil
}

// scanNumeric consumes an integer or float literal. The first digit has
// already been consumed.
func (l *lexer) scanNumeric() error {
	l.consumeDigits()

	// A '.' only belongs to this literal when another digit follows;
	// "1..5" must stay Integer DotDot Integer.
	if ch, ok := l.peek(); ok && ch == '.' {
		if next, ok := l.peekAhead(1); ok && unicode.IsDigit(next) {
			l.next()
			l.consumeDigits()

			lexeme := l.cursor.capture()
			value, err := strconv.ParseFloat(lexeme, 64)
			if err != nil {
				return fmt.Errorf("lexer: bad float literal %q at %d:%d: %w", lexeme, l.line, l.column, err)
			}

			l.emit(token.Token{Type: token.Float, Float: value})

			return nil
		}
	}

	lexeme := l.cursor.capture()
	value, err := strconv.ParseInt(lexeme, 10, 64)
	if err != nil {
		return fmt.Errorf("lexer: bad integer literal %q at %d:%d: %w", lexeme, l.line, l.column, err)
	}

	l.emit(token.Token{Type: token.Integer, Int: value})

	return nil
}

func (l *lexer) consumeDigits() {
	for {
		ch, ok := l.peek()
		if !ok || !unicode.IsDigit(ch) {
			break
		}
		l.next()
	}
}

func (l *lexer) peekAhead(n int) (rune, bool) {
	idx := l.cursor.right + n
	if idx >= len(l.cursor.source) {
		return 0, false
	}

	return l.cursor.source[idx], true
}

// scanWord consumes a keyword or identifier. The first letter has already
// been consumed.
func (l *lexer) scanWord() {
	for {
		ch, ok := l.peek()
		if !ok || (!unicode.IsLetter(ch) && !unicode.IsDigit(ch) && ch != '_') {
			break
		}
		l.next()
	}

	lexeme := l.cursor.capture()
	l.emit(token.Token{Type: token.KeywordType(lexeme)})
}
