package lox

// Function is a declared function or method together with the environment
// it closed over. IsInit marks initializers, whose calls always produce the
// receiver no matter what the body does.
type Function struct {
	Decl   *FunctionStmt
	Env    *Env
	IsInit bool
}

// bind returns a copy of the method whose closure carries inst as this.
// Each property access that finds a method produces a fresh bound copy, so
// a method value remembers its receiver even when stored or passed around.
func (f *Function) bind(inst *Instance) *Function {
	env := newEnv(f.Env)
	env.Define("this", NewInstance(inst))
	return &Function{Decl: f.Decl, Env: env, IsInit: f.IsInit}
}

// Class is a runtime class object. Calling it allocates an instance and
// runs init when the class has one.
type Class struct {
	Name    string
	Super   *Class
	Methods map[string]*Function
}

// findMethod searches this class and then the superclass chain.
func (c *Class) findMethod(name string) *Function {
	for cl := c; cl != nil; cl = cl.Super {
		if m, ok := cl.Methods[name]; ok {
			return m
		}
	}
	return nil
}

// arity is the parameter count of init, or zero for classes without one.
func (c *Class) arity() int {
	if init := c.findMethod("init"); init != nil {
		return len(init.Decl.Params)
	}
	return 0
}

// Instance is an object: a class pointer plus a mutable field table.
// Fields are created on first assignment and shadow methods of the same
// name.
type Instance struct {
	Class  *Class
	Fields map[string]Value
}
