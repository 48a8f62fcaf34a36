package lox

// ExpressionStmt evaluates an expression for its side effects and discards
// the result.
type ExpressionStmt struct {
	position Position
	Expr     Expression
}

func (e *ExpressionStmt) Pos() Position { return e.position }
func (e *ExpressionStmt) stmtNode()     {}

// PrintStmt writes the display form of its operand followed by a newline.
type PrintStmt struct {
	position Position
	Expr     Expression
}

func (p *PrintStmt) Pos() Position { return p.position }
func (p *PrintStmt) stmtNode()     {}

// VarStmt declares a variable in the current scope. A missing initializer
// leaves the variable nil.
type VarStmt struct {
	position    Position
	Name        string
	Initializer Expression
}

func (v *VarStmt) Pos() Position { return v.position }
func (v *VarStmt) stmtNode()     {}

// BlockStmt runs its statements in a fresh nested scope.
type BlockStmt struct {
	position   Position
	Statements []Statement
}

func (b *BlockStmt) Pos() Position { return b.position }
func (b *BlockStmt) stmtNode()     {}

// IfStmt branches on a condition. Else is nil when no else clause was
// written.
type IfStmt struct {
	position  Position
	Condition Expression
	Then      Statement
	Else      Statement
}

func (i *IfStmt) Pos() Position { return i.position }
func (i *IfStmt) stmtNode()     {}

// WhileStmt loops while its condition is truthy. Increment, when non-nil,
// runs after every iteration including ones cut short by continue; it is
// how a for loop's increment clause survives desugaring.
type WhileStmt struct {
	position  Position
	Condition Expression
	Body      Statement
	Increment Expression
}

func (w *WhileStmt) Pos() Position { return w.position }
func (w *WhileStmt) stmtNode()     {}

// Param is one function parameter.
type Param struct {
	Name string
	Pos  Position
}

// FunctionStmt declares a named function. Class method declarations reuse
// the same node.
type FunctionStmt struct {
	position Position
	Name     string
	Params   []Param
	Body     []Statement
}

func (f *FunctionStmt) Pos() Position { return f.position }
func (f *FunctionStmt) stmtNode()     {}

// ReturnStmt exits the enclosing function. Value is nil for a bare return.
type ReturnStmt struct {
	position Position
	Value    Expression
}

func (r *ReturnStmt) Pos() Position { return r.position }
func (r *ReturnStmt) stmtNode()     {}

// ClassStmt declares a class with an optional superclass and a method list.
type ClassStmt struct {
	position   Position
	Name       string
	Superclass *VariableExpr
	Methods    []*FunctionStmt
}

func (c *ClassStmt) Pos() Position { return c.position }
func (c *ClassStmt) stmtNode()     {}

// BreakStmt exits the innermost enclosing loop.
type BreakStmt struct {
	position Position
}

func (b *BreakStmt) Pos() Position { return b.position }
func (b *BreakStmt) stmtNode()     {}

// ContinueStmt skips to the next iteration of the innermost enclosing loop.
type ContinueStmt struct {
	position Position
}

func (c *ContinueStmt) Pos() Position { return c.position }
func (c *ContinueStmt) stmtNode()     {}
