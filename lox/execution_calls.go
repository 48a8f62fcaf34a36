package lox

import "errors"

func (interp *Interp) evalCallExpression(e *CallExpr, env *Env) (Value, error) {
	callee, err := interp.evalExpression(e.Callee, env)
	if err != nil {
		return NewNil(), err
	}

	args := make([]Value, 0, len(e.Args))
	for _, argExpr := range e.Args {
		arg, err := interp.evalExpression(argExpr, env)
		if err != nil {
			return NewNil(), err
		}
		args = append(args, arg)
	}

	return interp.callValue(callee, args, e.Pos())
}

func (interp *Interp) callValue(callee Value, args []Value, pos Position) (Value, error) {
	switch callee.Kind() {
	case KindFunction:
		return interp.callFunction(callee.Function(), args, pos)
	case KindNative:
		return interp.callNative(callee.Native(), args, pos)
	case KindClass:
		return interp.instantiate(callee.Class(), args, pos)
	default:
		return NewNil(), interp.errorAt(pos, "Can only call functions and classes.")
	}
}

func (interp *Interp) callFunction(fn *Function, args []Value, pos Position) (Value, error) {
	if len(args) != len(fn.Decl.Params) {
		return NewNil(), interp.errorAt(pos, "Expected %d arguments, but got %d.", len(fn.Decl.Params), len(args))
	}
	if err := interp.pushFrame(fn.Decl.Name, pos); err != nil {
		return NewNil(), err
	}
	defer interp.popFrame()

	env := newEnv(fn.Env)
	for i, param := range fn.Decl.Params {
		env.Define(param.Name, args[i])
	}

	val, returned, err := interp.execBlock(fn.Decl.Body, env)
	if err != nil {
		if errors.Is(err, errLoopBreak) {
			return NewNil(), interp.errorAt(pos, "break cannot cross call boundary")
		}
		if errors.Is(err, errLoopContinue) {
			return NewNil(), interp.errorAt(pos, "continue cannot cross call boundary")
		}
		return NewNil(), err
	}

	// An initializer always hands back its receiver, even on a bare return.
	if fn.IsInit {
		return fn.Env.GetAt(0, "this"), nil
	}
	if returned {
		return val, nil
	}
	return NewNil(), nil
}

func (interp *Interp) callNative(native *Native, args []Value, pos Position) (Value, error) {
	if native.Arity >= 0 && len(args) != native.Arity {
		return NewNil(), interp.errorAt(pos, "Expected %d arguments, but got %d.", native.Arity, len(args))
	}
	if err := interp.pushFrame(native.Name, pos); err != nil {
		return NewNil(), err
	}
	defer interp.popFrame()

	val, err := native.Fn(interp, args)
	if err != nil {
		var rerr *RuntimeError
		if errors.As(err, &rerr) {
			return NewNil(), err
		}
		return NewNil(), interp.errorAt(pos, "%s", err.Error())
	}
	return val, nil
}

// instantiate allocates an instance and runs init when the class declares
// or inherits one. Without an initializer the class is zero-arity.
func (interp *Interp) instantiate(cl *Class, args []Value, pos Position) (Value, error) {
	inst := &Instance{Class: cl, Fields: make(map[string]Value)}

	if init := cl.findMethod("init"); init != nil {
		if _, err := interp.callFunction(init.bind(inst), args, pos); err != nil {
			return NewNil(), err
		}
	} else if len(args) != 0 {
		return NewNil(), interp.errorAt(pos, "Expected 0 arguments, but got %d.", len(args))
	}

	return NewInstance(inst), nil
}
