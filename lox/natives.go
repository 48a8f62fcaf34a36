package lox

import "time"

// nativeClock returns seconds since the Unix epoch as a number, with
// sub-second precision. Scripts use differences between two readings to
// time themselves.
func nativeClock(interp *Interp, args []Value) (Value, error) {
	return NewNumber(float64(time.Now().UnixNano()) / 1e9), nil
}
