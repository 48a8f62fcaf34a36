package lox

import "sort"

// Env is one lexical scope: a name table plus a link to the scope enclosing
// it. Function values capture the Env they were declared in, which is all a
// closure is.
type Env struct {
	parent *Env
	values map[string]Value
}

func newEnv(parent *Env) *Env {
	return &Env{parent: parent, values: make(map[string]Value)}
}

// Define binds name in this scope, shadowing any outer binding of the same
// name.
func (e *Env) Define(name string, val Value) {
	e.values[name] = val
}

// Get reads name from the nearest scope that binds it.
func (e *Env) Get(name string) (Value, bool) {
	if val, ok := e.values[name]; ok {
		return val, true
	}
	if e.parent != nil {
		return e.parent.Get(name)
	}
	return Value{}, false
}

// Assign writes name in the nearest scope that binds it and reports false
// when no scope does. Assignment never creates a binding; only var does.
func (e *Env) Assign(name string, val Value) bool {
	if _, ok := e.values[name]; ok {
		e.values[name] = val
		return true
	}
	if e.parent != nil {
		return e.parent.Assign(name, val)
	}
	return false
}

// GetAt reads name from the scope distance hops up the parent chain. The
// distance comes from the resolver, which guarantees the binding exists.
func (e *Env) GetAt(distance int, name string) Value {
	return e.ancestor(distance).values[name]
}

// AssignAt writes name at a resolved distance.
func (e *Env) AssignAt(distance int, name string, val Value) {
	e.ancestor(distance).values[name] = val
}

func (e *Env) ancestor(distance int) *Env {
	env := e
	for i := 0; i < distance; i++ {
		env = env.parent
	}
	return env
}

// Names lists the names bound directly in this scope, sorted. Interactive
// hosts use it to show what a session has defined.
func (e *Env) Names() []string {
	names := make([]string, 0, len(e.values))
	for name := range e.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
