package frontend

import (
	"github.com/isaacev/tpas/source"
)

// NodeKind names the grammar production a node was built from. The set is
// closed: every node type below reports one of these kinds
type NodeKind string

// Node kinds
const (
	ProgramNode         NodeKind = "PROGRAM"
	CompoundNode        NodeKind = "COMPOUND"
	AssignNode          NodeKind = "ASSIGN"
	LoopNode            NodeKind = "LOOP"
	TestNode            NodeKind = "TEST"
	IfNode              NodeKind = "IF"
	WriteNode           NodeKind = "WRITE"
	WritelnNode         NodeKind = "WRITELN"
	VariableNode        NodeKind = "VARIABLE"
	IntegerConstantNode NodeKind = "INTEGER_CONSTANT"
	RealConstantNode    NodeKind = "REAL_CONSTANT"
	StringConstantNode  NodeKind = "STRING_CONSTANT"
	AddNode             NodeKind = "ADD"
	SubtractNode        NodeKind = "SUBTRACT"
	MultiplyNode        NodeKind = "MULTIPLY"
	DivideNode          NodeKind = "DIVIDE"
	IntegerDivideNode   NodeKind = "INTEGER_DIVIDE"
	EqNode              NodeKind = "EQ"
	NeNode              NodeKind = "NE"
	LtNode              NodeKind = "LT"
	LeNode              NodeKind = "LE"
	GtNode              NodeKind = "GT"
	GeNode              NodeKind = "GE"
	AndNode             NodeKind = "AND"
	OrNode              NodeKind = "OR"
	NotNode             NodeKind = "NOT"
	NegateNode          NodeKind = "NEGATE"
	BadNode             NodeKind = "BAD"
)

// Node is a generic node in the abstract syntax tree (AST). Children returns
// the node's children in their fixed positional order; optional children that
// are absent are left out rather than reported as nil
type Node interface {
	Kind() NodeKind
	Children() []Node
	Pos() source.Pos
	Line() int
}

// Expr represents a Node that yields a value when evaluated
type Expr interface {
	Node
	exprNode()
}

// Stmt represents a Node executed for its effect
type Stmt interface {
	Node
	stmtNode()
}

// Program is the root node for an AST. Name is the program name from the
// PROGRAM header (empty when the header is omitted)
type Program struct {
	Name  string
	Body  *Compound
	Start source.Pos
}

func (p *Program) Kind() NodeKind { return ProgramNode }

func (p *Program) Children() []Node {
	if p.Body == nil {
		return nil
	}

	return []Node{p.Body}
}

func (p *Program) Pos() source.Pos { return p.Start }
func (p *Program) Line() int       { return p.Start.Line }

// Compound is a sequence of statements executed in order. Besides
// BEGIN...END blocks the parser uses it for the lowered form of FOR and for
// the flattened body of CASE
type Compound struct {
	Statements []Stmt
	Start      source.Pos
}

func (c *Compound) Kind() NodeKind { return CompoundNode }

func (c *Compound) Children() []Node {
	nodes := make([]Node, 0, len(c.Statements))
	for _, stmt := range c.Statements {
		nodes = append(nodes, stmt)
	}

	return nodes
}

func (c *Compound) Pos() source.Pos { return c.Start }
func (c *Compound) Line() int       { return c.Start.Line }
func (c *Compound) stmtNode()       {}

// Assign stores the value of an expression in a variable
type Assign struct {
	Target *Variable
	Value  Expr
	Start  source.Pos
}

func (a *Assign) Kind() NodeKind   { return AssignNode }
func (a *Assign) Children() []Node { return []Node{a.Target, a.Value} }
func (a *Assign) Pos() source.Pos  { return a.Start }
func (a *Assign) Line() int        { return a.Start.Line }
func (a *Assign) stmtNode()        {}

// Loop is the single looping primitive every REPEAT, WHILE and FOR statement
// is lowered into. Parts run in order, over and over; a *Test among them ends
// the loop as soon as its condition evaluates to true
type Loop struct {
	Parts []Stmt
	Start source.Pos
}

func (l *Loop) Kind() NodeKind { return LoopNode }

func (l *Loop) Children() []Node {
	nodes := make([]Node, 0, len(l.Parts))
	for _, part := range l.Parts {
		nodes = append(nodes, part)
	}

	return nodes
}

func (l *Loop) Pos() source.Pos { return l.Start }
func (l *Loop) Line() int       { return l.Start.Line }
func (l *Loop) stmtNode()       {}

// Test is the exit check of a Loop
type Test struct {
	Condition Expr
	Start     source.Pos
}

func (t *Test) Kind() NodeKind   { return TestNode }
func (t *Test) Children() []Node { return []Node{t.Condition} }
func (t *Test) Pos() source.Pos  { return t.Start }
func (t *Test) Line() int        { return t.Start.Line }
func (t *Test) stmtNode()        {}

// If runs Then when Condition holds and Else (which may be nil) otherwise
type If struct {
	Condition Expr
	Then      Stmt
	Else      Stmt
	Start     source.Pos
}

func (i *If) Kind() NodeKind { return IfNode }

func (i *If) Children() []Node {
	nodes := []Node{i.Condition, i.Then}
	if i.Else != nil {
		nodes = append(nodes, i.Else)
	}

	return nodes
}

func (i *If) Pos() source.Pos { return i.Start }
func (i *If) Line() int       { return i.Start.Line }
func (i *If) stmtNode()       {}

// Write represents both WRITE and WRITELN. Argument is a *Variable or a
// *StringConst and is nil only for a bare WRITELN. Width and Precision are
// the optional field width and count of decimal places
type Write struct {
	Newline   bool
	Argument  Expr
	Width     *IntegerConst
	Precision *IntegerConst
	Start     source.Pos
}

func (w *Write) Kind() NodeKind {
	if w.Newline {
		return WritelnNode
	}

	return WriteNode
}

func (w *Write) Children() (nodes []Node) {
	if w.Argument != nil {
		nodes = append(nodes, w.Argument)
	}

	if w.Width != nil {
		nodes = append(nodes, w.Width)
	}

	if w.Precision != nil {
		nodes = append(nodes, w.Precision)
	}

	return nodes
}

func (w *Write) Pos() source.Pos { return w.Start }
func (w *Write) Line() int       { return w.Start.Line }
func (w *Write) stmtNode()       {}

// Variable is one occurrence of a name. Name keeps the spelling used at this
// occurrence, Entry is shared by all occurrences of the name and is nil when
// the name was used before it was ever assigned
type Variable struct {
	Name  string
	Entry *SymtabEntry
	Start source.Pos
}

// Copy returns a new occurrence of the same variable. Lowered constructs use
// it so that no node object appears at two places in the tree
func (v *Variable) Copy() *Variable {
	return &Variable{
		Name:  v.Name,
		Entry: v.Entry,
		Start: v.Start,
	}
}

func (v *Variable) Kind() NodeKind   { return VariableNode }
func (v *Variable) Children() []Node { return nil }
func (v *Variable) Pos() source.Pos  { return v.Start }
func (v *Variable) Line() int        { return v.Start.Line }
func (v *Variable) exprNode()        {}

// IntegerConst is an integer literal
type IntegerConst struct {
	Lexeme string
	Value  int64
	Start  source.Pos
}

func (i *IntegerConst) Kind() NodeKind   { return IntegerConstantNode }
func (i *IntegerConst) Children() []Node { return nil }
func (i *IntegerConst) Pos() source.Pos  { return i.Start }
func (i *IntegerConst) Line() int        { return i.Start.Line }
func (i *IntegerConst) exprNode()        {}

// RealConst is a real literal
type RealConst struct {
	Lexeme string
	Value  float64
	Start  source.Pos
}

func (r *RealConst) Kind() NodeKind   { return RealConstantNode }
func (r *RealConst) Children() []Node { return nil }
func (r *RealConst) Pos() source.Pos  { return r.Start }
func (r *RealConst) Line() int        { return r.Start.Line }
func (r *RealConst) exprNode()        {}

// StringConst is a string or character literal. Value has the quotes removed
// and doubled apostrophes collapsed
type StringConst struct {
	Lexeme string
	Value  string
	Start  source.Pos
}

func (s *StringConst) Kind() NodeKind   { return StringConstantNode }
func (s *StringConst) Children() []Node { return nil }
func (s *StringConst) Pos() source.Pos  { return s.Start }
func (s *StringConst) Line() int        { return s.Start.Line }
func (s *StringConst) exprNode()        {}

// Binary is an arithmetic, relational or logical operator applied to two
// operands. Operator is one of the binary node kinds (ADD ... OR)
type Binary struct {
	Operator NodeKind
	Left     Expr
	Right    Expr
	Start    source.Pos
}

func (b *Binary) Kind() NodeKind   { return b.Operator }
func (b *Binary) Children() []Node { return []Node{b.Left, b.Right} }
func (b *Binary) Pos() source.Pos  { return b.Start }
func (b *Binary) Line() int        { return b.Start.Line }
func (b *Binary) exprNode()        {}

// Unary is NOT or NEGATE applied to a single operand
type Unary struct {
	Operator NodeKind
	Operand  Expr
	Start    source.Pos
}

func (u *Unary) Kind() NodeKind   { return u.Operator }
func (u *Unary) Children() []Node { return []Node{u.Operand} }
func (u *Unary) Pos() source.Pos  { return u.Start }
func (u *Unary) Line() int        { return u.Start.Line }
func (u *Unary) exprNode()        {}

// BadExpr fills the place of an expression that could not be parsed. It only
// appears in trees whose compilation reported errors
type BadExpr struct {
	Start source.Pos
}

func (b *BadExpr) Kind() NodeKind   { return BadNode }
func (b *BadExpr) Children() []Node { return nil }
func (b *BadExpr) Pos() source.Pos  { return b.Start }
func (b *BadExpr) Line() int        { return b.Start.Line }
func (b *BadExpr) exprNode()        {}
