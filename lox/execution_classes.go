package lox

// execClassStatement builds the runtime class object. The superclass
// expression is evaluated first, in the enclosing scope; when it is present
// the methods close over an extra environment binding super, which is how
// super calls find the superclass a method was textually declared under
// rather than the receiver's class.
func (interp *Interp) execClassStatement(s *ClassStmt, env *Env) error {
	var super *Class
	if s.Superclass != nil {
		val, err := interp.lookupVariable(s.Superclass, s.Superclass.Name, env)
		if err != nil {
			return err
		}
		if val.Kind() != KindClass {
			return interp.errorAt(s.Superclass.Pos(), "Superclass must be a class.")
		}
		super = val.Class()
	}

	env.Define(s.Name, NewNil())

	methodEnv := env
	if super != nil {
		methodEnv = newEnv(env)
		methodEnv.Define("super", NewClass(super))
	}

	methods := make(map[string]*Function, len(s.Methods))
	for _, decl := range s.Methods {
		methods[decl.Name] = &Function{Decl: decl, Env: methodEnv, IsInit: decl.Name == "init"}
	}

	env.Assign(s.Name, NewClass(&Class{Name: s.Name, Super: super, Methods: methods}))
	return nil
}

// evalGetExpression reads a property: fields first, then methods up the
// inheritance chain. A method access produces a bound method that remembers
// its receiver.
func (interp *Interp) evalGetExpression(e *GetExpr, env *Env) (Value, error) {
	obj, err := interp.evalExpression(e.Object, env)
	if err != nil {
		return NewNil(), err
	}
	if obj.Kind() != KindInstance {
		return NewNil(), interp.errorAt(e.Pos(), "Only instances have properties.")
	}

	inst := obj.Instance()
	if val, ok := inst.Fields[e.Name]; ok {
		return val, nil
	}
	if method := inst.Class.findMethod(e.Name); method != nil {
		return NewFunction(method.bind(inst)), nil
	}

	return NewNil(), interp.errorAt(e.Pos(), "Undefined property '%s'.", e.Name)
}

// evalSetExpression writes a field, creating it on first assignment. The
// object is evaluated before the value, so side effects happen in source
// order.
func (interp *Interp) evalSetExpression(e *SetExpr, env *Env) (Value, error) {
	obj, err := interp.evalExpression(e.Object, env)
	if err != nil {
		return NewNil(), err
	}
	if obj.Kind() != KindInstance {
		return NewNil(), interp.errorAt(e.Pos(), "Only instances have fields.")
	}

	val, err := interp.evalExpression(e.Value, env)
	if err != nil {
		return NewNil(), err
	}
	obj.Instance().Fields[e.Name] = val
	return val, nil
}

// evalSuperExpression starts the method search in the superclass recorded
// at declaration time. The receiver sits one environment inside the one
// holding super, an invariant the class executor set up.
func (interp *Interp) evalSuperExpression(e *SuperExpr, env *Env) (Value, error) {
	dist, ok := interp.binds[e]
	if !ok {
		return NewNil(), interp.errorAt(e.Pos(), "Can't use 'super' outside of a class.")
	}

	super := env.GetAt(dist, "super").Class()
	inst := env.GetAt(dist-1, "this").Instance()

	method := super.findMethod(e.Method)
	if method == nil {
		return NewNil(), interp.errorAt(e.Pos(), "Undefined property '%s'.", e.Method)
	}
	return NewFunction(method.bind(inst)), nil
}
