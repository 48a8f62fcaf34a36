package lox

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// DefaultRecursionLimit bounds call depth when Config leaves it zero.
const DefaultRecursionLimit = 512

// Config controls interpreter output and execution bounds.
type Config struct {
	// Stdout receives print output. Defaults to os.Stdout.
	Stdout io.Writer
	// RecursionLimit caps the number of nested calls.
	RecursionLimit int
}

// Interp executes resolved programs. It keeps its global environment and
// binding table across runs, so one Interp can serve an interactive session
// where later input refers to earlier definitions.
type Interp struct {
	config    Config
	globals   *Env
	binds     Bindings
	callStack []callFrame
}

type callFrame struct {
	Function string
	Pos      Position
}

// NewInterp constructs an interpreter with defaults applied and the clock
// native registered.
func NewInterp(cfg Config) *Interp {
	if cfg.Stdout == nil {
		cfg.Stdout = os.Stdout
	}
	if cfg.RecursionLimit <= 0 {
		cfg.RecursionLimit = DefaultRecursionLimit
	}

	interp := &Interp{
		config:  cfg,
		globals: newEnv(nil),
		binds:   make(Bindings),
	}
	interp.RegisterNative("clock", 0, nativeClock)
	return interp
}

// Globals returns the global environment, where natives and top-level
// declarations live.
func (interp *Interp) Globals() *Env {
	return interp.globals
}

// RegisterNative makes a host function callable from scripts under name.
// A negative arity skips the argument count check.
func (interp *Interp) RegisterNative(name string, arity int, fn NativeFn) {
	interp.globals.Define(name, NewNative(name, arity, fn))
}

// Run executes a program against the global environment. The bindings are
// merged into the ones the interpreter already holds rather than replacing
// them: closures created by earlier runs keep working. Execution stops at
// the first runtime error.
func (interp *Interp) Run(program []Statement, binds Bindings) error {
	interp.mergeBindings(binds)

	interp.callStack = append(interp.callStack[:0], callFrame{Function: "<script>"})
	defer func() { interp.callStack = interp.callStack[:0] }()

	for _, stmt := range program {
		interp.callStack[0].Pos = Position{Line: stmt.Pos().Line}

		_, returned, err := interp.execStatement(stmt, interp.globals)
		if err != nil {
			if errors.Is(err, errLoopBreak) {
				return interp.errorAt(stmt.Pos(), "break cannot cross call boundary")
			}
			if errors.Is(err, errLoopContinue) {
				return interp.errorAt(stmt.Pos(), "continue cannot cross call boundary")
			}
			return err
		}
		if returned {
			return nil
		}
	}
	return nil
}

// Evaluate computes a single expression against the global environment.
// Interactive hosts use it to echo results.
func (interp *Interp) Evaluate(expr Expression, binds Bindings) (Value, error) {
	interp.mergeBindings(binds)

	pos := Position{Line: expr.Pos().Line}
	interp.callStack = append(interp.callStack[:0], callFrame{Function: "<script>", Pos: pos})
	defer func() { interp.callStack = interp.callStack[:0] }()

	return interp.evalExpression(expr, interp.globals)
}

func (interp *Interp) mergeBindings(binds Bindings) {
	for expr, depth := range binds {
		interp.binds[expr] = depth
	}
}

func (interp *Interp) pushFrame(name string, pos Position) error {
	if len(interp.callStack) > interp.config.RecursionLimit {
		return interp.errorAt(pos, "Stack overflow (limit %d).", interp.config.RecursionLimit)
	}
	interp.callStack = append(interp.callStack, callFrame{Function: name, Pos: pos})
	return nil
}

func (interp *Interp) popFrame() {
	interp.callStack = interp.callStack[:len(interp.callStack)-1]
}

// errorAt builds a runtime error carrying a snapshot of the call stack.
func (interp *Interp) errorAt(pos Position, format string, args ...any) error {
	return &RuntimeError{
		Message: fmt.Sprintf(format, args...),
		Pos:     pos,
		Frames:  interp.stackFrames(),
	}
}

// stackFrames snapshots the call stack innermost first.
func (interp *Interp) stackFrames() []StackFrame {
	frames := make([]StackFrame, 0, len(interp.callStack))
	for i := len(interp.callStack) - 1; i >= 0; i-- {
		f := interp.callStack[i]
		frames = append(frames, StackFrame{Function: f.Function, Pos: f.Pos})
	}
	return frames
}
