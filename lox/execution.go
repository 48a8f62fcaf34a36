package lox

import (
	"errors"
	"fmt"
)

// Loop control travels up through block and statement execution as sentinel
// errors; the enclosing loop absorbs them. The resolver rejects break and
// continue outside a loop, so a sentinel that reaches a call boundary means
// the program skipped resolution and is reported as a runtime error there.
var (
	errLoopBreak    = errors.New("loop break")
	errLoopContinue = errors.New("loop continue")
)

// execStatement runs one statement. The Value and bool report an in-flight
// return: when the bool is true the enclosing call completes with the
// value.
func (interp *Interp) execStatement(stmt Statement, env *Env) (Value, bool, error) {
	switch s := stmt.(type) {
	case *ExpressionStmt:
		_, err := interp.evalExpression(s.Expr, env)
		return NewNil(), false, err

	case *PrintStmt:
		val, err := interp.evalExpression(s.Expr, env)
		if err != nil {
			return NewNil(), false, err
		}
		fmt.Fprintln(interp.config.Stdout, val.String())
		return NewNil(), false, nil

	case *VarStmt:
		val := NewNil()
		if s.Initializer != nil {
			var err error
			val, err = interp.evalExpression(s.Initializer, env)
			if err != nil {
				return NewNil(), false, err
			}
		}
		env.Define(s.Name, val)
		return NewNil(), false, nil

	case *BlockStmt:
		return interp.execBlock(s.Statements, newEnv(env))

	case *IfStmt:
		cond, err := interp.evalExpression(s.Condition, env)
		if err != nil {
			return NewNil(), false, err
		}
		if cond.Truthy() {
			return interp.execStatement(s.Then, env)
		}
		if s.Else != nil {
			return interp.execStatement(s.Else, env)
		}
		return NewNil(), false, nil

	case *WhileStmt:
		return interp.execWhileStatement(s, env)

	case *BreakStmt:
		return NewNil(), false, errLoopBreak

	case *ContinueStmt:
		return NewNil(), false, errLoopContinue

	case *FunctionStmt:
		fn := &Function{Decl: s, Env: env}
		env.Define(s.Name, NewFunction(fn))
		return NewNil(), false, nil

	case *ReturnStmt:
		val := NewNil()
		if s.Value != nil {
			var err error
			val, err = interp.evalExpression(s.Value, env)
			if err != nil {
				return NewNil(), false, err
			}
		}
		return val, true, nil

	case *ClassStmt:
		return NewNil(), false, interp.execClassStatement(s, env)

	default:
		return NewNil(), false, interp.errorAt(stmt.Pos(), "unsupported statement")
	}
}

// execBlock runs statements in order against env, which the caller has
// already nested.
func (interp *Interp) execBlock(stmts []Statement, env *Env) (Value, bool, error) {
	for _, stmt := range stmts {
		val, returned, err := interp.execStatement(stmt, env)
		if err != nil {
			return NewNil(), false, err
		}
		if returned {
			return val, true, nil
		}
	}
	return NewNil(), false, nil
}

// execWhileStatement drives both source while loops and desugared for
// loops. The increment runs after every iteration that completes or
// continues; break and return skip it.
func (interp *Interp) execWhileStatement(s *WhileStmt, env *Env) (Value, bool, error) {
	for {
		cond, err := interp.evalExpression(s.Condition, env)
		if err != nil {
			return NewNil(), false, err
		}
		if !cond.Truthy() {
			return NewNil(), false, nil
		}

		val, returned, err := interp.execStatement(s.Body, env)
		if err != nil {
			if errors.Is(err, errLoopBreak) {
				return NewNil(), false, nil
			}
			if !errors.Is(err, errLoopContinue) {
				return NewNil(), false, err
			}
		}
		if returned {
			return val, true, nil
		}

		if s.Increment != nil {
			if _, err := interp.evalExpression(s.Increment, env); err != nil {
				return NewNil(), false, err
			}
		}
	}
}
