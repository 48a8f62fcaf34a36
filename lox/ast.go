package lox

// Node is the interface implemented by every piece of the syntax tree.
type Node interface {
	Pos() Position
}

// Statement nodes perform effects and produce no value.
type Statement interface {
	Node
	stmtNode()
}

// Expression nodes evaluate to a value.
type Expression interface {
	Node
	exprNode()
}

// NumberLiteral is a numeric literal such as 12 or 3.5.
type NumberLiteral struct {
	position Position
	Value    float64
}

func (n *NumberLiteral) Pos() Position { return n.position }
func (n *NumberLiteral) exprNode()     {}

// StringLiteral is a double-quoted string literal.
type StringLiteral struct {
	position Position
	Value    string
}

func (s *StringLiteral) Pos() Position { return s.position }
func (s *StringLiteral) exprNode()     {}

// BoolLiteral is the literal true or false.
type BoolLiteral struct {
	position Position
	Value    bool
}

func (b *BoolLiteral) Pos() Position { return b.position }
func (b *BoolLiteral) exprNode()     {}

// NilLiteral is the literal nil.
type NilLiteral struct {
	position Position
}

func (n *NilLiteral) Pos() Position { return n.position }
func (n *NilLiteral) exprNode()     {}

// GroupingExpr is a parenthesized expression. It is kept as its own node so
// tools can print the tree exactly as written.
type GroupingExpr struct {
	position Position
	Expr     Expression
}

func (g *GroupingExpr) Pos() Position { return g.position }
func (g *GroupingExpr) exprNode()     {}

// UnaryExpr applies a prefix operator, one of ! or -.
type UnaryExpr struct {
	position Position
	Operator TokenType
	Right    Expression
}

func (u *UnaryExpr) Pos() Position { return u.position }
func (u *UnaryExpr) exprNode()     {}

// BinaryExpr applies an arithmetic, comparison, or equality operator. Both
// operands are evaluated before the operator runs.
type BinaryExpr struct {
	position Position
	Operator TokenType
	Left     Expression
	Right    Expression
}

func (b *BinaryExpr) Pos() Position { return b.position }
func (b *BinaryExpr) exprNode()     {}

// LogicalExpr applies and/or with short-circuit evaluation. The result is
// one of the operand values, not a coerced boolean.
type LogicalExpr struct {
	position Position
	Operator TokenType
	Left     Expression
	Right    Expression
}

func (l *LogicalExpr) Pos() Position { return l.position }
func (l *LogicalExpr) exprNode()     {}

// VariableExpr reads a variable by name.
type VariableExpr struct {
	position Position
	Name     string
}

func (v *VariableExpr) Pos() Position { return v.position }
func (v *VariableExpr) exprNode()     {}

// AssignExpr writes a named variable and yields the assigned value.
type AssignExpr struct {
	position Position
	Name     string
	Value    Expression
}

func (a *AssignExpr) Pos() Position { return a.position }
func (a *AssignExpr) exprNode()     {}

// CallExpr invokes a callee with zero or more arguments. Its position is
// the opening parenthesis of the call.
type CallExpr struct {
	position Position
	Callee   Expression
	Args     []Expression
}

func (c *CallExpr) Pos() Position { return c.position }
func (c *CallExpr) exprNode()     {}

// GetExpr reads a property from an object, as in point.x.
type GetExpr struct {
	position Position
	Object   Expression
	Name     string
}

func (g *GetExpr) Pos() Position { return g.position }
func (g *GetExpr) exprNode()     {}

// SetExpr writes a field on an object, as in point.x = 1.
type SetExpr struct {
	position Position
	Object   Expression
	Name     string
	Value    Expression
}

func (s *SetExpr) Pos() Position { return s.position }
func (s *SetExpr) exprNode()     {}

// ThisExpr refers to the instance a method was invoked on.
type ThisExpr struct {
	position Position
}

func (t *ThisExpr) Pos() Position { return t.position }
func (t *ThisExpr) exprNode()     {}

// SuperExpr looks up a method starting in the superclass, as in
// super.method. Only the method access form exists; bare super is a
// syntax error.
type SuperExpr struct {
	position Position
	Method   string
}

func (s *SuperExpr) Pos() Position { return s.position }
func (s *SuperExpr) exprNode()     {}
