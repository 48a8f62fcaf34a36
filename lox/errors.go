package lox

import (
	"fmt"
	"strings"
)

// PhaseError is implemented by every error this package produces. Kind names
// the phase that detected the problem, one of "SCAN", "PARSE", or "RUNTIME";
// hosts use it to prefix diagnostics. Resolution problems report the parse
// kind: both are static errors found before any code runs.
type PhaseError interface {
	error
	Kind() string
}

// ScanError reports a malformed lexeme, located at the character (or the
// opening delimiter) that caused it.
type ScanError struct {
	Message string
	Pos     Position
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("[line %d] %s", e.Pos.Line, e.Message)
}

func (e *ScanError) Kind() string { return "SCAN" }

// ParseError reports a syntax error at the token where parsing failed.
type ParseError struct {
	Message string
	Pos     Position
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("[line %d] %s", e.Pos.Line, e.Message)
}

func (e *ParseError) Kind() string { return "PARSE" }

// ResolveError reports a binding problem found during static resolution,
// such as reading a local in its own initializer.
type ResolveError struct {
	Message string
	Pos     Position
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("[line %d] %s", e.Pos.Line, e.Message)
}

func (e *ResolveError) Kind() string { return "PARSE" }

// StackFrame records one active call at the moment a runtime error surfaced.
type StackFrame struct {
	Function string
	Pos      Position
}

func (f StackFrame) String() string {
	if f.Pos.Column > 0 {
		return fmt.Sprintf("  at %s (%d:%d)", f.Function, f.Pos.Line, f.Pos.Column)
	}
	return fmt.Sprintf("  at %s (line %d)", f.Function, f.Pos.Line)
}

const (
	stackTraceHead = 8
	stackTraceTail = 8
)

// RuntimeError reports an evaluation failure. Frames holds the call stack
// innermost first, ending with the top-level script frame.
type RuntimeError struct {
	Message string
	Pos     Position
	Frames  []StackFrame
}

func (e *RuntimeError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[line %d] %s", e.Pos.Line, e.Message)

	frames := e.Frames
	if len(frames) <= stackTraceHead+stackTraceTail {
		for _, f := range frames {
			b.WriteString("\n")
			b.WriteString(f.String())
		}
		return b.String()
	}

	for _, f := range frames[:stackTraceHead] {
		b.WriteString("\n")
		b.WriteString(f.String())
	}
	fmt.Fprintf(&b, "\n  ... %d frames omitted ...", len(frames)-stackTraceHead-stackTraceTail)
	for _, f := range frames[len(frames)-stackTraceTail:] {
		b.WriteString("\n")
		b.WriteString(f.String())
	}
	return b.String()
}

func (e *RuntimeError) Kind() string { return "RUNTIME" }
