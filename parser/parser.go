// Package parser builds abstract syntax trees from pika token streams.
package parser

import (
	"fmt"

	"github.com/pika-lang/pika/token"
)

// Parser consumes a token stream and produces AST nodes, one per top-level
// statement.
type Parser struct {
	stream *token.Stream
}

// New creates a Parser over the given stream.
func New(stream *token.Stream) *Parser {
	return &Parser{stream: stream}
}

// Parse consumes the whole stream and returns one node per top-level
// statement, in source order.
func Parse(stream *token.Stream) ([]Node, error) {
	p := New(stream)

	var program []Node
	for !p.stream.EOF() {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		program = append(program, stmt)
	}

	return program, nil
}

func (p *Parser) peek() token.Token {
	return p.stream.Peek()
}

func (p *Parser) next() token.Token {
	return p.stream.Next()
}

func (p *Parser) expect(want token.Type) (token.Token, error) {
	tok := p.next()
	if tok.Type != want {
		return tok, fmt.Errorf("parser: expected %s, found %s at %d:%d", want, tok, tok.Line, tok.Column)
	}

	return tok, nil
}

func (p *Parser) parseStatement() (Node, error) {
	switch p.peek().Type {
	case token.Def:
		return p.parseFunctionDef()

	case token.If:
		return p.parseIfStatement()

	case token.While:
		return p.parseWhileLoop()

	case token.Return:
		p.next()
		value, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &ReturnStatement{Value: value}, nil

	case token.Break:
		p.next()
		return &BreakStatement{}, nil

	case token.Continue:
		p.next()
		return &ContinueStatement{}, nil
	}

	return p.parseExpression()
}

// parseExpression parses a full expression using precedence climbing.
func (p *Parser) parseExpression() (Node, error) {
	return p.parseBinary(0)
}

func (p *Parser) parseBinary(minPrecedence int) (Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for {
		tok := p.peek()
		if !tok.Type.IsBinaryOperator() || tok.Type.Precedence() < minPrecedence {
			break
		}

		p.next()

		operator, ok := BinaryOperatorFor(tok.Type)
		if !ok {
			return nil, fmt.Errorf("parser: %s is not a binary operator at %d:%d", tok, tok.Line, tok.Column)
		}

		nextMin := tok.Type.Precedence() + 1
		if tok.Type.IsRightAssociative() {
			nextMin = tok.Type.Precedence()
		}

		right, err := p.parseBinary(nextMin)
		if err != nil {
			return nil, err
		}

		left = &BinaryOp{Operator: operator, Left: left, Right: right}
	}

	return left, nil
}

func (p *Parser) parseUnary() (Node, error) {
	switch p.peek().Type {
	case token.Minus:
		p.next()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &UnaryOp{Operator: UnaryMinus, Operand: operand}, nil

	case token.Bang:
		p.next()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &UnaryOp{Operator: LogicalNot, Operand: operand}, nil
	}

	return p.parsePrimary()
}

func (p *Parser) parsePrimary() (Node, error) {
	tok := p.peek()

	switch tok.Type {
	case token.Integer:
		p.next()
		return &IntegerLit{Value: tok.Int}, nil

	case token.Float:
		p.next()
		return &FloatLit{Value: tok.Float}, nil

	case token.String:
		p.next()
		return &StringLit{Value: tok.Str}, nil

	case token.True:
		p.next()
		return &BooleanLit{Value: true}, nil

	case token.False:
		p.next()
		return &BooleanLit{Value: false}, nil

	case token.Identifier:
		p.next()
		if p.peek().Type == token.LeftParen {
			return p.parseCall(tok.Lexeme)
		}
		return &Ident{Name: tok.Lexeme}, nil

	case token.LeftParen:
		return p.parseParentheses()
	}

	if tok.Type == token.EOF {
		return nil, fmt.Errorf("parser: expected an expression, found end of input")
	}

	return nil, fmt.Errorf("parser: unexpected token %s at %d:%d", tok, tok.Line, tok.Column)
}

func (p *Parser) parseParentheses() (Node, error) {
	p.next() // consume '('

	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.RightParen); err != nil {
		return nil, err
	}

	return expr, nil
}

// parseCall parses the argument list of a call whose name has already been
// consumed. The next token is the opening parenthesis.
func (p *Parser) parseCall(name string) (Node, error) {
	p.next() // consume '('

	var args []Node
	if p.peek().Type != token.RightParen {
		for {
			arg, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)

			if p.peek().Type != token.Comma {
				break
			}
			p.next()
		}
	}

	if _, err := p.expect(token.RightParen); err != nil {
		return nil, err
	}

	return &Call{Function: name, Args: args}, nil
}

// parseBlock parses statements until one of the terminator tokens appears.
// The terminator is left in the stream for the caller to consume.
func (p *Parser) parseBlock(terminators ...token.Type) ([]Node, error) {
	var body []Node

	for {
		tok := p.peek()
		if tok.Type == token.EOF {
			return nil, fmt.Errorf("parser: unterminated block, expected one of %v", terminators)
		}

		for _, t := range terminators {
			if tok.Type == t {
				return body, nil
			}
		}

		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
	}
}

func (p *Parser) parseFunctionDef() (Node, error) {
	p.next() // consume 'def'

	name, err := p.expect(token.Identifier)
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(token.LeftParen); err != nil {
		return nil, err
	}

	var params []string
	if p.peek().Type != token.RightParen {
		for {
			param, err := p.expect(token.Identifier)
			if err != nil {
				return nil, err
			}
			params = append(params, param.Lexeme)

			if p.peek().Type != token.Comma {
				break
			}
			p.next()
		}
	}

	if _, err := p.expect(token.RightParen); err != nil {
		return nil, err
	}

	body, err := p.parseBlock(token.EndDef)
	if err != nil {
		return nil, err
	}
	p.next() // consume 'enddef'

	return &FunctionDef{Name: name.Lexeme, Params: params, Body: body}, nil
}

func (p *Parser) parseIfStatement() (Node, error) {
	p.next() // consume 'if'

	condition, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	body, err := p.parseBlock(token.Else, token.EndIf)
	if err != nil {
		return nil, err
	}

	var elseBody []Node
	if p.peek().Type == token.Else {
		p.next()
		elseBody, err = p.parseBlock(token.EndIf)
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.expect(token.EndIf); err != nil {
		return nil, err
	}

	return &IfStatement{Condition: condition, Body: body, Else: elseBody}, nil
}

func (p *Parser) parseWhileLoop() (Node, error) {
	p.next() // consume 'while'

	condition, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	body, err := p.parseBlock(token.Done)
	if err != nil {
		return nil, err
	}
	p.next() // consume 'done'

	return &WhileLoop{Condition: condition, Body: body}, nil
}
