package parser

import (
	"fmt"
	"strings"

	"github.com/pika-lang/pika/token"
)

// Node is a single node of the abstract syntax tree. The String form is an
// s-expression used for debugging and tests, not for code generation.
type Node interface {
	fmt.Stringer
	node()
}

// UnaryOperator is the operator of a UnaryOp node.
type UnaryOperator int

// Unary operators.
const (
	UnaryMinus UnaryOperator = iota
	LogicalNot
)

func (op UnaryOperator) String() string {
	switch op {
	case UnaryMinus:
		return "Minus"
	case LogicalNot:
		return "LogicalNot"
	}

	return fmt.Sprintf("UnaryOperator(%d)", int(op))
}

// BinaryOperator is the operator of a BinaryOp node.
type BinaryOperator int

// Binary operators.
const (
	OpPlus BinaryOperator = iota
	OpMinus
	OpMultiply
	OpDivide
	OpModulus
	OpExponent
	OpPlusAssign
	OpMinusAssign
	OpMultiplyAssign
	OpDivideAssign
	OpModulusAssign
	OpAssign
	OpEqual
	OpNotEqual
	OpLess
	OpGreater
	OpLessEqual
	OpGreaterEqual
	OpOr
	OpAnd
)

var binaryOperatorNames = map[BinaryOperator]string{
	OpPlus:           "Plus",
	OpMinus:          "Minus",
	OpMultiply:       "Multiply",
	OpDivide:         "Divide",
	OpModulus:        "Modulus",
	OpExponent:       "Exponent",
	OpPlusAssign:     "PlusAssign",
	OpMinusAssign:    "MinusAssign",
	OpMultiplyAssign: "MultiplyAssign",
	OpDivideAssign:   "DivideAssign",
	OpModulusAssign:  "ModulusAssign",
	OpAssign:         "Assign",
	OpEqual:          "Equal",
	OpNotEqual:       "NotEqual",
	OpLess:           "Less",
	OpGreater:        "Greater",
	OpLessEqual:      "LessEqual",
	OpGreaterEqual:   "GreaterEqual",
	OpOr:             "Or",
	OpAnd:            "And",
}

func (op BinaryOperator) String() string {
	if name, ok := binaryOperatorNames[op]; ok {
		return name
	}

	return fmt.Sprintf("BinaryOperator(%d)", int(op))
}

var tokenToBinaryOperator = map[token.Type]BinaryOperator{
	token.Plus:             OpPlus,
	token.Minus:            OpMinus,
	token.Asterisk:         OpMultiply,
	token.Slash:            OpDivide,
	token.Modulus:          OpModulus,
	token.AsteriskAsterisk: OpExponent,
	token.PlusEqual:        OpPlusAssign,
	token.MinusEqual:       OpMinusAssign,
	token.AsteriskEqual:    OpMultiplyAssign,
	token.SlashEqual:       OpDivideAssign,
	token.ModulusEqual:     OpModulusAssign,
	token.Equal:            OpAssign,
	token.EqualEqual:       OpEqual,
	token.BangEqual:        OpNotEqual,
	token.Less:             OpLess,
	token.Greater:          OpGreater,
	token.LessEqual:        OpLessEqual,
	token.GreaterEqual:     OpGreaterEqual,
	token.Or:               OpOr,
	token.And:              OpAnd,
}

// BinaryOperatorFor maps an operator token type to its AST operator.
func BinaryOperatorFor(t token.Type) (BinaryOperator, bool) {
	op, ok := tokenToBinaryOperator[t]

	return op, ok
}

// UnaryOp is a prefix operation such as negation or logical not.
type UnaryOp struct {
	Operator UnaryOperator
	Operand  Node
}

func (n *UnaryOp) node() {}

func (n *UnaryOp) String() string {
	return fmt.Sprintf("(%s %s)", n.Operator, n.Operand)
}

// BinaryOp is an infix operation over two operands.
type BinaryOp struct {
	Operator BinaryOperator
	Left     Node
	Right    Node
}

func (n *BinaryOp) node() {}

func (n *BinaryOp) String() string {
	return fmt.Sprintf("(%s %s %s)", n.Operator, n.Left, n.Right)
}

// IntegerLit is an integer literal.
type IntegerLit struct {
	Value int64
}

func (n *IntegerLit) node() {}

func (n *IntegerLit) String() string {
	return fmt.Sprintf("%d", n.Value)
}

// FloatLit is a floating-point literal.
type FloatLit struct {
	Value float64
}

func (n *FloatLit) node() {}

func (n *FloatLit) String() string {
	return fmt.Sprintf("%g", n.Value)
}

// BooleanLit is a boolean literal.
type BooleanLit struct {
	Value bool
}

func (n *BooleanLit) node() {}

func (n *BooleanLit) String() string {
	return fmt.Sprintf("%t", n.Value)
}

// StringLit is a string literal, stored without the surrounding quotes.
type StringLit struct {
	Value string
}

func (n *StringLit) node() {}

func (n *StringLit) String() string {
	return fmt.Sprintf("%q", n.Value)
}

// Ident is a reference to a name.
type Ident struct {
	Name string
}

func (n *Ident) node() {}

func (n *Ident) String() string {
	return n.Name
}

// Call is a function invocation.
type Call struct {
	Function string
	Args     []Node
}

func (n *Call) node() {}

func (n *Call) String() string {
	return fmt.Sprintf("(Call %s (%s))", n.Function, joinNodes(n.Args))
}

// FunctionDef is a named function definition with a body block.
type FunctionDef struct {
	Name   string
	Params []string
	Body   []Node
}

func (n *FunctionDef) node() {}

func (n *FunctionDef) String() string {
	return fmt.Sprintf("(Def %s (%s) (%s))", n.Name, strings.Join(n.Params, " "), joinNodes(n.Body))
}

// IfStatement is a conditional with an optional else block.
type IfStatement struct {
	Condition Node
	Body      []Node
	Else      []Node
}

func (n *IfStatement) node() {}

func (n *IfStatement) String() string {
	if len(n.Else) == 0 {
		return fmt.Sprintf("(If %s (%s))", n.Condition, joinNodes(n.Body))
	}

	return fmt.Sprintf("(If %s (%s) (%s))", n.Condition, joinNodes(n.Body), joinNodes(n.Else))
}

// WhileLoop is a pre-tested loop.
type WhileLoop struct {
	Condition Node
	Body      []Node
}

func (n *WhileLoop) node() {}

func (n *WhileLoop) String() string {
	return fmt.Sprintf("(While %s (%s))", n.Condition, joinNodes(n.Body))
}

// ReturnStatement returns a value from the enclosing function.
type ReturnStatement struct {
	Value Node
}

func (n *ReturnStatement) node() {}

func (n *ReturnStatement) String() string {
	return fmt.Sprintf("(Return %s)", n.Value)
}

// BreakStatement exits the enclosing loop.
type BreakStatement struct{}

func (n *BreakStatement) node() {}

func (n *BreakStatement) String() string {
	return "(Break)"
}

// ContinueStatement skips to the next iteration of the enclosing loop.
type ContinueStatement struct{}

func (n *ContinueStatement) node() {}

func (n *ContinueStatement) String() string {
	return "(Continue)"
}

func joinNodes(nodes []Node) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = n.String()
	}

	return strings.Join(parts, " ")
}
