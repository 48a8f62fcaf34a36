package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadScriptRejectsWrongExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.txt")
	if err := os.WriteFile(path, []byte("print 1;"), 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}
	if _, err := readScript(path); err == nil || !strings.Contains(err.Error(), "not a .lox file") {
		t.Fatalf("expected extension error, got %v", err)
	}
}

func TestReadScriptMissingFile(t *testing.T) {
	if _, err := readScript(filepath.Join(t.TempDir(), "nope.lox")); err == nil {
		t.Fatalf("expected read error")
	}
}

func TestRunScriptExecutes(t *testing.T) {
	path := writeLoxFile(t, `
var parts = "Hello" + ", " + "Lox";
print parts;`)
	out, err := captureStdout(t, func() error {
		return runScript(path, runOptions{})
	})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.Contains(out, "Hello, Lox") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestRunScriptReportsAllStaticErrors(t *testing.T) {
	path := writeLoxFile(t, "var = 1;\nvar y 2;")
	stderr, err := captureStderr(t, func() error {
		return runScript(path, runOptions{})
	})
	if err == nil {
		t.Fatalf("expected static errors")
	}
	if err.Error() != "2 error(s)" {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stderr, "Expect variable name.") {
		t.Fatalf("first diagnostic missing: %q", stderr)
	}
	if !strings.Contains(stderr, "Expect ';' after variable declaration.") {
		t.Fatalf("second diagnostic missing: %q", stderr)
	}
}

func TestRunScriptRuntimeErrorShowsTrace(t *testing.T) {
	path := writeLoxFile(t, "fun explode() {\n  return nil + 1;\n}\nexplode();")
	stderr, err := captureStderr(t, func() error {
		return runScript(path, runOptions{})
	})
	if err == nil || err.Error() != "runtime error" {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stderr, "Operands must be two numbers or two strings.") {
		t.Fatalf("diagnostic missing: %q", stderr)
	}
	if !strings.Contains(stderr, "at explode") {
		t.Fatalf("stack frame missing: %q", stderr)
	}
}

func TestRunSourceShowTokensDumps(t *testing.T) {
	out, err := captureStdout(t, func() error {
		return runSource("print 1;", runOptions{ShowTokens: true})
	})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.Contains(out, "PRINT") || !strings.Contains(out, "NUMBER") {
		t.Fatalf("token dump missing: %q", out)
	}
}

func TestRunSourceShowASTDumps(t *testing.T) {
	out, err := captureStdout(t, func() error {
		return runSource("print 1 + 2;", runOptions{ShowAST: true})
	})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !strings.Contains(out, "(print (+ 1 2))") {
		t.Fatalf("ast dump missing: %q", out)
	}
}
