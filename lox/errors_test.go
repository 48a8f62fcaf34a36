package lox

import (
	"fmt"
	"strings"
	"testing"
)

func TestErrorRenderingAndKinds(t *testing.T) {
	cases := []struct {
		err  PhaseError
		want string
		kind string
	}{
		{&ScanError{Message: "Unterminated string.", Pos: Position{Line: 3, Column: 7}},
			"[line 3] Unterminated string.", "SCAN"},
		{&ParseError{Message: "Expect expression.", Pos: Position{Line: 1, Column: 9}},
			"[line 1] Expect expression.", "PARSE"},
		{&ResolveError{Message: "Can't return from top-level code.", Pos: Position{Line: 2, Column: 1}},
			"[line 2] Can't return from top-level code.", "PARSE"},
		{&RuntimeError{Message: "Division by zero.", Pos: Position{Line: 5, Column: 11}},
			"[line 5] Division by zero.", "RUNTIME"},
	}
	for _, tc := range cases {
		if got := tc.err.Error(); got != tc.want {
			t.Fatalf("expected %q, got %q", tc.want, got)
		}
		if got := tc.err.Kind(); got != tc.kind {
			t.Fatalf("%s: expected kind %s, got %s", tc.want, tc.kind, got)
		}
	}
}

func TestStackFrameRendering(t *testing.T) {
	framed := StackFrame{Function: "fib", Pos: Position{Line: 3, Column: 14}}
	if got := framed.String(); got != "  at fib (3:14)" {
		t.Fatalf("unexpected frame %q", got)
	}

	// Script-level frames carry only a line.
	script := StackFrame{Function: "<script>", Pos: Position{Line: 4}}
	if got := script.String(); got != "  at <script> (line 4)" {
		t.Fatalf("unexpected frame %q", got)
	}
}

func TestRuntimeErrorListsFrames(t *testing.T) {
	err := &RuntimeError{
		Message: "Operands must be numbers.",
		Pos:     Position{Line: 2, Column: 20},
		Frames: []StackFrame{
			{Function: "inner", Pos: Position{Line: 3, Column: 15}},
			{Function: "<script>", Pos: Position{Line: 4}},
		},
	}
	want := "[line 2] Operands must be numbers.\n" +
		"  at inner (3:15)\n" +
		"  at <script> (line 4)"
	if got := err.Error(); got != want {
		t.Fatalf("expected:\n%s\ngot:\n%s", want, got)
	}
}

func TestRuntimeErrorTruncatesDeepTraces(t *testing.T) {
	frames := make([]StackFrame, 20)
	for i := range frames {
		frames[i] = StackFrame{
			Function: fmt.Sprintf("f%d", i),
			Pos:      Position{Line: i + 1, Column: 1},
		}
	}
	err := &RuntimeError{
		Message: "Stack overflow (limit 512).",
		Pos:     Position{Line: 1, Column: 1},
		Frames:  frames,
	}
	msg := err.Error()

	if !strings.Contains(msg, "  ... 4 frames omitted ...") {
		t.Fatalf("missing omission marker in:\n%s", msg)
	}
	for _, kept := range []string{"at f0 (", "at f7 (", "at f12 (", "at f19 ("} {
		if !strings.Contains(msg, kept) {
			t.Fatalf("missing %q in:\n%s", kept, msg)
		}
	}
	for _, dropped := range []string{"at f8 (", "at f11 ("} {
		if strings.Contains(msg, dropped) {
			t.Fatalf("frame %q should have been omitted:\n%s", dropped, msg)
		}
	}
}

func TestRuntimeErrorShortTraceIsNotTruncated(t *testing.T) {
	frames := make([]StackFrame, 16)
	for i := range frames {
		frames[i] = StackFrame{Function: fmt.Sprintf("f%d", i), Pos: Position{Line: 1, Column: 1}}
	}
	err := &RuntimeError{Message: "boom", Pos: Position{Line: 1, Column: 1}, Frames: frames}
	if strings.Contains(err.Error(), "omitted") {
		t.Fatalf("sixteen frames should print in full:\n%s", err.Error())
	}
}

func TestFormatCodeFrame(t *testing.T) {
	got := FormatCodeFrame("var x = ;", Position{Line: 1, Column: 9})
	want := "  --> line 1, column 9\n" +
		" 1 | var x = ;\n" +
		"   |         ^"
	if got != want {
		t.Fatalf("expected:\n%s\ngot:\n%s", want, got)
	}
}

func TestFormatCodeFramePicksTheRightLine(t *testing.T) {
	source := "var a = 1;\nvar b = ;\nvar c = 3;"
	got := FormatCodeFrame(source, Position{Line: 2, Column: 9})
	if !strings.Contains(got, " 2 | var b = ;") {
		t.Fatalf("expected line 2 in frame:\n%s", got)
	}
	if strings.Contains(got, "var a") || strings.Contains(got, "var c") {
		t.Fatalf("frame should show a single line:\n%s", got)
	}
}

func TestFormatCodeFrameClampsColumn(t *testing.T) {
	got := FormatCodeFrame("ab", Position{Line: 1, Column: 99})
	if !strings.HasSuffix(got, "   ^") {
		t.Fatalf("expected caret clamped past the line end:\n%s", got)
	}
}

func TestFormatCodeFrameRejectsBadLine(t *testing.T) {
	if got := FormatCodeFrame("one line", Position{Line: 7, Column: 1}); got != "" {
		t.Fatalf("expected empty frame, got %q", got)
	}
}
