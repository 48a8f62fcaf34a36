package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/repr"
	"github.com/ztrue/tracerr"

	"github.com/JDCodeWork/rslox/lox"
)

type runOptions struct {
	ShowTokens bool
	ShowAST    bool
}

// readScript loads a script, enforcing the .lox extension so the CLI
// fails fast on stray paths. I/O failures come back tracerr-wrapped for
// the source-context printer in main.
func readScript(path string) (string, error) {
	if filepath.Ext(path) != ".lox" {
		return "", tracerr.Errorf("%s is not a .lox file", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", tracerr.Wrap(err)
	}
	return string(data), nil
}

func runScript(path string, opts runOptions) error {
	source, err := readScript(path)
	if err != nil {
		return err
	}
	return runSource(source, opts)
}

// runSource drives the full pipeline on one script: scan, parse, resolve,
// execute. Compile-stage errors are all reported before giving up;
// execution only starts on a clean program.
func runSource(source string, opts runOptions) error {
	tokens, scanErrs := lox.Scan(source)
	if opts.ShowTokens {
		repr.Println(tokens)
	}

	program, parseErrs := lox.Parse(tokens)

	staticErrs := make([]error, 0, len(scanErrs)+len(parseErrs))
	staticErrs = append(staticErrs, scanErrs...)
	staticErrs = append(staticErrs, parseErrs...)

	if opts.ShowAST && len(staticErrs) == 0 {
		fmt.Println(formatProgram(program))
	}

	var binds lox.Bindings
	if len(staticErrs) == 0 {
		var resolveErrs []error
		binds, resolveErrs = lox.Resolve(program)
		staticErrs = append(staticErrs, resolveErrs...)
	}
	if len(staticErrs) > 0 {
		reportDiagnostics(os.Stderr, source, staticErrs)
		return fmt.Errorf("%d error(s)", len(staticErrs))
	}

	interp := lox.NewInterp(lox.Config{})
	if err := interp.Run(program, binds); err != nil {
		fmt.Fprintln(os.Stderr, renderDiagnostic(source, err))
		return errors.New("runtime error")
	}
	return nil
}
