package lox

// evalExpression computes the value of expr in env.
func (interp *Interp) evalExpression(expr Expression, env *Env) (Value, error) {
	switch e := expr.(type) {
	case *NumberLiteral:
		return NewNumber(e.Value), nil

	case *StringLiteral:
		return NewString(e.Value), nil

	case *BoolLiteral:
		return NewBool(e.Value), nil

	case *NilLiteral:
		return NewNil(), nil

	case *GroupingExpr:
		return interp.evalExpression(e.Expr, env)

	case *UnaryExpr:
		return interp.evalUnaryExpression(e, env)

	case *BinaryExpr:
		return interp.evalBinaryExpression(e, env)

	case *LogicalExpr:
		return interp.evalLogicalExpression(e, env)

	case *VariableExpr:
		return interp.lookupVariable(e, e.Name, env)

	case *AssignExpr:
		return interp.evalAssignExpression(e, env)

	case *CallExpr:
		return interp.evalCallExpression(e, env)

	case *GetExpr:
		return interp.evalGetExpression(e, env)

	case *SetExpr:
		return interp.evalSetExpression(e, env)

	case *ThisExpr:
		return interp.lookupVariable(e, "this", env)

	case *SuperExpr:
		return interp.evalSuperExpression(e, env)

	default:
		return NewNil(), interp.errorAt(expr.Pos(), "unsupported expression")
	}
}

// lookupVariable reads a name through the resolver's distance when one was
// recorded, and falls back to the globals otherwise. Only then can a lookup
// fail: every local reference was proven to have a declaration.
func (interp *Interp) lookupVariable(expr Expression, name string, env *Env) (Value, error) {
	if dist, ok := interp.binds[expr]; ok {
		return env.GetAt(dist, name), nil
	}
	if val, ok := interp.globals.Get(name); ok {
		return val, nil
	}
	return NewNil(), interp.errorAt(expr.Pos(), "Undefined variable %q.", name)
}

func (interp *Interp) evalAssignExpression(e *AssignExpr, env *Env) (Value, error) {
	val, err := interp.evalExpression(e.Value, env)
	if err != nil {
		return NewNil(), err
	}

	if dist, ok := interp.binds[e]; ok {
		env.AssignAt(dist, e.Name, val)
		return val, nil
	}
	if !interp.globals.Assign(e.Name, val) {
		return NewNil(), interp.errorAt(e.Pos(), "Undefined variable %q.", e.Name)
	}
	return val, nil
}

func (interp *Interp) evalUnaryExpression(e *UnaryExpr, env *Env) (Value, error) {
	val, err := interp.evalExpression(e.Right, env)
	if err != nil {
		return NewNil(), err
	}

	switch e.Operator {
	case tokenMinus:
		if val.Kind() != KindNumber {
			return NewNil(), interp.errorAt(e.Pos(), "Operand must be a number.")
		}
		return NewNumber(-val.Number()), nil
	case tokenBang:
		return NewBool(!val.Truthy()), nil
	default:
		return NewNil(), interp.errorAt(e.Pos(), "unsupported operator %s", e.Operator)
	}
}

func (interp *Interp) evalBinaryExpression(e *BinaryExpr, env *Env) (Value, error) {
	left, err := interp.evalExpression(e.Left, env)
	if err != nil {
		return NewNil(), err
	}
	right, err := interp.evalExpression(e.Right, env)
	if err != nil {
		return NewNil(), err
	}

	switch e.Operator {
	case tokenEQ:
		return NewBool(left.Equal(right)), nil
	case tokenBangEQ:
		return NewBool(!left.Equal(right)), nil
	case tokenPlus:
		switch {
		case left.Kind() == KindNumber && right.Kind() == KindNumber:
			return NewNumber(left.Number() + right.Number()), nil
		case left.Kind() == KindString && right.Kind() == KindString:
			return NewString(left.String() + right.String()), nil
		default:
			return NewNil(), interp.errorAt(e.Pos(), "Operands must be two numbers or two strings.")
		}
	}

	// Everything below is numbers only.
	if left.Kind() != KindNumber || right.Kind() != KindNumber {
		return NewNil(), interp.errorAt(e.Pos(), "Operands must be numbers.")
	}
	l, r := left.Number(), right.Number()

	switch e.Operator {
	case tokenMinus:
		return NewNumber(l - r), nil
	case tokenStar:
		return NewNumber(l * r), nil
	case tokenSlash:
		if r == 0 {
			return NewNil(), interp.errorAt(e.Pos(), "Division by zero.")
		}
		return NewNumber(l / r), nil
	case tokenGT:
		return NewBool(l > r), nil
	case tokenGTE:
		return NewBool(l >= r), nil
	case tokenLT:
		return NewBool(l < r), nil
	case tokenLTE:
		return NewBool(l <= r), nil
	default:
		return NewNil(), interp.errorAt(e.Pos(), "unsupported operator %s", e.Operator)
	}
}

// evalLogicalExpression short-circuits and yields whichever operand decided
// the answer, not a coerced boolean.
func (interp *Interp) evalLogicalExpression(e *LogicalExpr, env *Env) (Value, error) {
	left, err := interp.evalExpression(e.Left, env)
	if err != nil {
		return NewNil(), err
	}

	if e.Operator == tokenOr {
		if left.Truthy() {
			return left, nil
		}
	} else if !left.Truthy() {
		return left, nil
	}

	return interp.evalExpression(e.Right, env)
}
