// Package pygen renders pika abstract syntax trees as Python source code.
package pygen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pika-lang/pika/parser"
)

var unaryOperators = map[parser.UnaryOperator]string{
	parser.UnaryMinus: "-",
	parser.LogicalNot: "not ",
}

var binaryOperators = map[parser.BinaryOperator]string{
	parser.OpPlus:           "+",
	parser.OpMinus:          "-",
	parser.OpMultiply:       "*",
	parser.OpDivide:         "/",
	parser.OpModulus:        "%",
	parser.OpExponent:       "**",
	parser.OpPlusAssign:     "+=",
	parser.OpMinusAssign:    "-=",
	parser.OpMultiplyAssign: "*=",
	parser.OpDivideAssign:   "/=",
	parser.OpModulusAssign:  "%=",
	parser.OpAssign:         "=",
	parser.OpEqual:          "==",
	parser.OpNotEqual:       "!=",
	parser.OpLess:           "<",
	parser.OpGreater:        ">",
	parser.OpLessEqual:      "<=",
	parser.OpGreaterEqual:   ">=",
	parser.OpOr:             "or",
	parser.OpAnd:            "and",
}

// Generator converts AST nodes to Python. Python scoping is driven purely by
// indentation, so the generator tracks the current indent depth while walking
// block statements.
type Generator struct {
	indent int
}

// New creates a Generator starting at indent depth zero.
func New() *Generator {
	return &Generator{}
}

// Generate renders a single top-level node as Python source. Block statements
// span multiple lines; expressions render as a single line without a
// trailing newline.
func Generate(node parser.Node) (string, error) {
	return New().Emit(node)
}

// Emit renders node at the generator's current indent depth.
func (g *Generator) Emit(node parser.Node) (string, error) {
	switch n := node.(type) {
	case *parser.UnaryOp:
		return g.emitUnaryOp(n)

	case *parser.BinaryOp:
		return g.emitBinaryOp(n)

	case *parser.Call:
		return g.emitCall(n)

	case *parser.IntegerLit:
		return strconv.FormatInt(n.Value, 10), nil

	case *parser.FloatLit:
		return strconv.FormatFloat(n.Value, 'g', -1, 64), nil

	case *parser.BooleanLit:
		if n.Value {
			return "True", nil
		}
		return "False", nil

	case *parser.StringLit:
		return fmt.Sprintf("%q", n.Value), nil

	case *parser.Ident:
		return n.Name, nil

	case *parser.FunctionDef:
		return g.emitFunctionDef(n)

	case *parser.IfStatement:
		return g.emitIfStatement(n)

	case *parser.WhileLoop:
		return g.emitWhileLoop(n)

	case *parser.ReturnStatement:
		value, err := g.Emit(n.Value)
		if err != nil {
			return "", err
		}
		return "return " + value, nil

	case *parser.BreakStatement:
		return "break", nil

	case *parser.ContinueStatement:
		return "continue", nil
	}

	return "", fmt.Errorf("pygen: no Python rendering for node %s", node)
}

func (g *Generator) emitUnaryOp(op *parser.UnaryOp) (string, error) {
	operand, err := g.Emit(op.Operand)
	if err != nil {
		return "", err
	}

	return unaryOperators[op.Operator] + operand, nil
}

func (g *Generator) emitBinaryOp(op *parser.BinaryOp) (string, error) {
	left, err := g.Emit(op.Left)
	if err != nil {
		return "", err
	}

	right, err := g.Emit(op.Right)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s %s %s", left, binaryOperators[op.Operator], right), nil
}

func (g *Generator) emitCall(call *parser.Call) (string, error) {
	args := make([]string, len(call.Args))
	for i, arg := range call.Args {
		rendered, err := g.Emit(arg)
		if err != nil {
			return "", err
		}
		args[i] = rendered
	}

	return fmt.Sprintf("%s(%s)", call.Function, strings.Join(args, ", ")), nil
}

// emitBlock renders each statement of a block on its own line at the current
// indent depth. An empty pika block becomes a lone "pass" so the generated
// Python stays valid.
func (g *Generator) emitBlock(block []parser.Node) (string, error) {
	if len(block) == 0 {
		return g.indentation() + "pass\n", nil
	}

	var b strings.Builder
	for _, stmt := range block {
		line, err := g.Emit(stmt)
		if err != nil {
			return "", err
		}
		b.WriteString(g.indentation())
		b.WriteString(line)
		if !strings.HasSuffix(line, "\n") {
			b.WriteString("\n")
		}
	}

	return b.String(), nil
}

func (g *Generator) emitFunctionDef(def *parser.FunctionDef) (string, error) {
	g.indent++
	body, err := g.emitBlock(def.Body)
	g.indent--
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("def %s(%s):\n%s", def.Name, strings.Join(def.Params, ", "), body), nil
}

func (g *Generator) emitIfStatement(stmt *parser.IfStatement) (string, error) {
	condition, err := g.Emit(stmt.Condition)
	if err != nil {
		return "", err
	}

	g.indent++
	body, err := g.emitBlock(stmt.Body)
	g.indent--
	if err != nil {
		return "", err
	}

	if len(stmt.Else) == 0 {
		return fmt.Sprintf("if %s:\n%s", condition, body), nil
	}

	g.indent++
	elseBody, err := g.emitBlock(stmt.Else)
	g.indent--
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("if %s:\n%s%selse:\n%s", condition, body, g.indentation(), elseBody), nil
}

func (g *Generator) emitWhileLoop(loop *parser.WhileLoop) (string, error) {
	condition, err := g.Emit(loop.Condition)
	if err != nil {
		return "", err
	}

	g.indent++
	body, err := g.emitBlock(loop.Body)
	g.indent--
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("while %s:\n%s", condition, body), nil
}

func (g *Generator) indentation() string {
	return strings.Repeat("\t", g.indent)
}
