package lox

import (
	"fmt"
	"strconv"
)

func (k ValueKind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindFunction:
		return "function"
	case KindNative:
		return "native fn"
	case KindClass:
		return "class"
	case KindInstance:
		return "instance"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// String renders the display form used by print and by interactive echo.
// Numbers print in their shortest decimal form, so 4.0 prints as 4.
func (v Value) String() string {
	switch v.kind {
	case KindNil:
		return "nil"
	case KindBool:
		if v.Bool() {
			return "true"
		}
		return "false"
	case KindNumber:
		return strconv.FormatFloat(v.data.(float64), 'f', -1, 64)
	case KindString:
		return v.data.(string)
	case KindFunction:
		return fmt.Sprintf("<fn %s>", v.data.(*Function).Decl.Name)
	case KindNative:
		return "<native fn>"
	case KindClass:
		return v.data.(*Class).Name
	case KindInstance:
		return fmt.Sprintf("%s instance", v.data.(*Instance).Class.Name)
	default:
		return fmt.Sprintf("<%v>", v.kind)
	}
}

// Truthy reports how a value behaves as a condition. Only nil and false are
// falsy; 0 and "" count as true.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindNil:
		return false
	case KindBool:
		return v.Bool()
	default:
		return true
	}
}

// Equal compares primitives by value and everything else by identity. Two
// instances are equal only when they are the same object, regardless of
// their fields.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNil:
		return true
	case KindBool:
		return v.Bool() == other.Bool()
	case KindNumber:
		return v.data.(float64) == other.data.(float64)
	case KindString:
		return v.data.(string) == other.data.(string)
	case KindFunction:
		return v.data.(*Function) == other.data.(*Function)
	case KindNative:
		return v.data.(*Native) == other.data.(*Native)
	case KindClass:
		return v.data.(*Class) == other.data.(*Class)
	case KindInstance:
		return v.data.(*Instance) == other.data.(*Instance)
	default:
		return v.data == other.data
	}
}
