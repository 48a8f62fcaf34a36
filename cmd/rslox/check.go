package main

import (
	"fmt"
	"os"

	"github.com/JDCodeWork/rslox/lox"
)

// checkScript runs the compile stages without executing anything.
func checkScript(path string) error {
	source, err := readScript(path)
	if err != nil {
		return err
	}
	if _, _, errs := lox.Check(source); len(errs) > 0 {
		reportDiagnostics(os.Stderr, source, errs)
		return fmt.Errorf("%d error(s)", len(errs))
	}
	fmt.Println(alertSuccess("no problems found"))
	return nil
}
