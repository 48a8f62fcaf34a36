package lox

// Check runs the static phases over source: scan, parse, and, when both
// come back clean, resolve. Scan errors do not stop the parser, so a single
// check reports lexical and syntactic mistakes together; resolution only
// runs on a well-formed tree. The bindings are nil whenever errors are
// returned.
func Check(source string) ([]Statement, Bindings, []error) {
	tokens, scanErrs := Scan(source)
	program, parseErrs := Parse(tokens)

	if errs := append(scanErrs, parseErrs...); len(errs) > 0 {
		return program, nil, errs
	}

	binds, resolveErrs := Resolve(program)
	if len(resolveErrs) > 0 {
		return program, nil, resolveErrs
	}
	return program, binds, nil
}
