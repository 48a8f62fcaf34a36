package lox

import "fmt"

// Bindings records, for each variable-like expression, how many scopes
// separate its use from its declaration. Expressions missing from the map
// refer to globals and are looked up by name at run time.
type Bindings map[Expression]int

// Resolve walks a parsed program, checks the static rules the parser cannot
// see, and computes the scope distance for every local variable reference.
// Like the parser it accumulates errors instead of stopping at the first
// one. The bindings are only meaningful when the error slice is empty.
func Resolve(program []Statement) (Bindings, []error) {
	r := &resolver{bindings: make(Bindings)}
	r.resolveStatements(program)
	return r.bindings, r.errs
}

type functionKind int

const (
	fnNone functionKind = iota
	fnFunction
	fnMethod
	fnInitializer
)

type classKind int

const (
	classNone classKind = iota
	classClass
	classSubclass
)

// resolver tracks the chain of lexical scopes as a stack of maps. A name
// maps to false between its declaration and the end of its initializer,
// and to true once it is usable.
type resolver struct {
	scopes   []map[string]bool
	bindings Bindings
	errs     []error

	function  functionKind
	class     classKind
	loopDepth int
}

func (r *resolver) resolveStatements(stmts []Statement) {
	for _, stmt := range stmts {
		r.resolveStatement(stmt)
	}
}

func (r *resolver) resolveStatement(stmt Statement) {
	switch s := stmt.(type) {
	case *ExpressionStmt:
		r.resolveExpression(s.Expr)

	case *PrintStmt:
		r.resolveExpression(s.Expr)

	case *VarStmt:
		r.declare(s.Name, s.Pos())
		if s.Initializer != nil {
			r.resolveExpression(s.Initializer)
		}
		r.define(s.Name)

	case *BlockStmt:
		r.beginScope()
		r.resolveStatements(s.Statements)
		r.endScope()

	case *IfStmt:
		r.resolveExpression(s.Condition)
		r.resolveStatement(s.Then)
		if s.Else != nil {
			r.resolveStatement(s.Else)
		}

	case *WhileStmt:
		r.resolveExpression(s.Condition)
		r.loopDepth++
		r.resolveStatement(s.Body)
		if s.Increment != nil {
			r.resolveExpression(s.Increment)
		}
		r.loopDepth--

	case *BreakStmt:
		if r.loopDepth == 0 {
			r.errorAt(s.Pos(), "Can't use 'break' outside of a loop.")
		}

	case *ContinueStmt:
		if r.loopDepth == 0 {
			r.errorAt(s.Pos(), "Can't use 'continue' outside of a loop.")
		}

	case *FunctionStmt:
		// Defined before its body resolves so the function can recurse.
		r.declare(s.Name, s.Pos())
		r.define(s.Name)
		r.resolveFunction(s, fnFunction)

	case *ReturnStmt:
		if r.function == fnNone {
			r.errorAt(s.Pos(), "Can't return from top-level code.")
		}
		if s.Value != nil {
			if r.function == fnInitializer {
				r.errorAt(s.Pos(), "Can't return a value from an initializer.")
			}
			r.resolveExpression(s.Value)
		}

	case *ClassStmt:
		r.resolveClass(s)
	}
}

func (r *resolver) resolveClass(s *ClassStmt) {
	enclosing := r.class
	r.class = classClass
	defer func() { r.class = enclosing }()

	r.declare(s.Name, s.Pos())
	r.define(s.Name)

	if s.Superclass != nil {
		if s.Superclass.Name == s.Name {
			r.errorAt(s.Superclass.Pos(), "A class can't inherit from itself.")
		}
		r.class = classSubclass
		r.resolveExpression(s.Superclass)

		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true

	for _, method := range s.Methods {
		kind := fnMethod
		if method.Name == "init" {
			kind = fnInitializer
		}
		r.resolveFunction(method, kind)
	}

	r.endScope()
	if s.Superclass != nil {
		r.endScope()
	}
}

// resolveFunction resolves a function body in its own scope. The loop depth
// resets for the duration: a break inside a function body cannot target a
// loop outside the call.
func (r *resolver) resolveFunction(fn *FunctionStmt, kind functionKind) {
	enclosingFn := r.function
	enclosingLoop := r.loopDepth
	r.function = kind
	r.loopDepth = 0

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param.Name, param.Pos)
		r.define(param.Name)
	}
	r.resolveStatements(fn.Body)
	r.endScope()

	r.function = enclosingFn
	r.loopDepth = enclosingLoop
}

func (r *resolver) resolveExpression(expr Expression) {
	switch e := expr.(type) {
	case *NumberLiteral, *StringLiteral, *BoolLiteral, *NilLiteral:

	case *GroupingExpr:
		r.resolveExpression(e.Expr)

	case *UnaryExpr:
		r.resolveExpression(e.Right)

	case *BinaryExpr:
		r.resolveExpression(e.Left)
		r.resolveExpression(e.Right)

	case *LogicalExpr:
		r.resolveExpression(e.Left)
		r.resolveExpression(e.Right)

	case *VariableExpr:
		if len(r.scopes) > 0 {
			if defined, declared := r.scopes[len(r.scopes)-1][e.Name]; declared && !defined {
				r.errorAt(e.Pos(), "Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(e, e.Name)

	case *AssignExpr:
		r.resolveExpression(e.Value)
		r.resolveLocal(e, e.Name)

	case *CallExpr:
		r.resolveExpression(e.Callee)
		for _, arg := range e.Args {
			r.resolveExpression(arg)
		}

	case *GetExpr:
		r.resolveExpression(e.Object)

	case *SetExpr:
		r.resolveExpression(e.Object)
		r.resolveExpression(e.Value)

	case *ThisExpr:
		if r.class == classNone {
			r.errorAt(e.Pos(), "Can't use 'this' outside of a class.")
			return
		}
		r.resolveLocal(e, "this")

	case *SuperExpr:
		switch r.class {
		case classNone:
			r.errorAt(e.Pos(), "Can't use 'super' outside of a class.")
			return
		case classClass:
			r.errorAt(e.Pos(), "Can't use 'super' in a class with no superclass.")
			return
		}
		r.resolveLocal(e, "super")
	}
}

// resolveLocal records the hop count from the innermost scope to the one
// declaring name. No hit means the name is global, or undefined; which of
// the two it is only becomes known at run time.
func (r *resolver) resolveLocal(expr Expression, name string) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			r.bindings[expr] = len(r.scopes) - 1 - i
			return
		}
	}
}

func (r *resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *resolver) declare(name string, pos Position) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, ok := scope[name]; ok {
		r.errorAt(pos, "Already a variable with this name in this scope.")
	}
	scope[name] = false
}

func (r *resolver) define(name string) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name] = true
}

func (r *resolver) errorAt(pos Position, format string, args ...any) {
	r.errs = append(r.errs, &ResolveError{Message: fmt.Sprintf(format, args...), Pos: pos})
}
