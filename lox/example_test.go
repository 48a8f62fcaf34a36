package lox

import (
	"errors"
	"fmt"
	"strings"
)

func ExampleInterp_Run() {
	program, binds, _ := Check(`
fun greet(name) {
  print "Hello, " + name + "!";
}
greet("Lox");`)

	interp := NewInterp(Config{})
	if err := interp.Run(program, binds); err != nil {
		fmt.Println(err)
	}
	// Output:
	// Hello, Lox!
}

func ExampleInterp_Run_closures() {
	program, binds, _ := Check(`
fun makeCounter() {
  var count = 0;
  fun increment() {
    count = count + 1;
    return count;
  }
  return increment;
}
var counter = makeCounter();
print counter();
print counter();`)

	interp := NewInterp(Config{})
	if err := interp.Run(program, binds); err != nil {
		fmt.Println(err)
	}
	// Output:
	// 1
	// 2
}

func ExampleInterp_Run_classes() {
	program, binds, _ := Check(`
class Doughnut {
  cook() {
    print "Fry until golden brown.";
  }
}
class BostonCream < Doughnut {
  cook() {
    super.cook();
    print "Pipe full of custard and coat with chocolate.";
  }
}
BostonCream().cook();`)

	interp := NewInterp(Config{})
	if err := interp.Run(program, binds); err != nil {
		fmt.Println(err)
	}
	// Output:
	// Fry until golden brown.
	// Pipe full of custard and coat with chocolate.
}

func ExampleInterp_Evaluate() {
	tokens, _ := Scan(`(1 + 2) * 3`)
	expr, _ := ParseExpression(tokens)
	binds, _ := Resolve([]Statement{&ExpressionStmt{Expr: expr}})

	interp := NewInterp(Config{})
	val, _ := interp.Evaluate(expr, binds)
	fmt.Println(val)
	// Output:
	// 9
}

func ExampleInterp_RegisterNative() {
	program, binds, _ := Check(`print shout("hello");`)

	interp := NewInterp(Config{})
	interp.RegisterNative("shout", 1, func(_ *Interp, args []Value) (Value, error) {
		return NewString(strings.ToUpper(args[0].String()) + "!"), nil
	})
	if err := interp.Run(program, binds); err != nil {
		fmt.Println(err)
	}
	// Output:
	// HELLO!
}

func ExampleCheck() {
	_, _, errs := Check(`return 1;`)
	for _, err := range errs {
		fmt.Println(err)
	}
	// Output:
	// [line 1] Can't return from top-level code.
}

func ExampleFormatCodeFrame() {
	source := `var x = ;`
	_, _, errs := Check(source)

	var perr *ParseError
	if errors.As(errs[0], &perr) {
		fmt.Println(perr)
		fmt.Println(FormatCodeFrame(source, perr.Pos))
	}
	// Output:
	// [line 1] Expect expression.
	//   --> line 1, column 9
	//  1 | var x = ;
	//    |         ^
}
