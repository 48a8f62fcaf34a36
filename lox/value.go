package lox

type ValueKind int

const (
	KindNil ValueKind = iota
	KindBool
	KindNumber
	KindString
	KindFunction
	KindNative
	KindClass
	KindInstance
)

// Value is a runtime value. The zero Value is nil.
type Value struct {
	kind ValueKind
	data any
}

// Native is a function supplied by the host program rather than declared in
// source. Arity is checked before Fn runs, exactly as for declared
// functions.
type Native struct {
	Name  string
	Arity int
	Fn    NativeFn
}

// NativeFn implements a native function. An error return surfaces as a
// runtime error located at the call site.
type NativeFn func(interp *Interp, args []Value) (Value, error)
