// Package lox implements the Lox scripting language as a pipeline of four
// phases: a scanner, a recursive-descent parser, a static resolver, and a
// tree-walking interpreter. The language supports:
//   - Literals for numbers, strings, booleans, and nil.
//   - Arithmetic, comparison, and equality expressions (+, -, *, /, >, >=,
//     <, <=, ==, !=) with short-circuiting and/or.
//   - Block scoping, first-class functions, and closures.
//   - Classes with single inheritance, this, super, and init constructors.
//   - Control flow via if/else, while, for, break, and continue.
//   - print statements and host-registered native functions.
//
// Comments run from // to end of line or between /* and */. Each phase is
// exposed on its own so hosts can stop wherever they need to: Scan and
// Parse report every error they find rather than the first, Resolve
// computes the scope distance for every local reference, and Interp
// executes the result. Check bundles the three static phases.
package lox
