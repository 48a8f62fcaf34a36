package lox

import (
	"strings"
	"testing"
)

func TestClassAndInstanceDisplay(t *testing.T) {
	got := runScript(t, `
class Bagel {}
print Bagel;
var bagel = Bagel();
print bagel;`)
	if got != "Bagel\nBagel instance\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestMethodsSeeThis(t *testing.T) {
	got := runScript(t, `
class Cake {
  taste() {
    var adjective = "delicious";
    print "The " + this.flavor + " cake is " + adjective + "!";
  }
}
var cake = Cake();
cake.flavor = "German chocolate";
cake.taste();`)
	if got != "The German chocolate cake is delicious!\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestFieldsAppearOnFirstAssignment(t *testing.T) {
	got := runScript(t, `
class Box {}
var box = Box();
box.contents = "socks";
print box.contents;
box.contents = "shoes";
print box.contents;`)
	if got != "socks\nshoes\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestFieldsShadowMethods(t *testing.T) {
	got := runScript(t, `
class Greeter {
  speak() { print "method"; }
}
var g = Greeter();
fun replacement() { print "field"; }
g.speak = replacement;
g.speak();`)
	if got != "field\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestUndefinedProperty(t *testing.T) {
	err := runScriptErr(t, `
class Empty {}
print Empty().missing;`)
	if !strings.Contains(err.Error(), "Undefined property 'missing'.") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPropertyAccessRequiresInstance(t *testing.T) {
	err := runScriptErr(t, `print "a string".length;`)
	if !strings.Contains(err.Error(), "Only instances have properties.") {
		t.Fatalf("unexpected error: %v", err)
	}

	err = runScriptErr(t, `
class Math {}
print Math.pi;`)
	if !strings.Contains(err.Error(), "Only instances have properties.") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestFieldAssignmentRequiresInstance(t *testing.T) {
	err := runScriptErr(t, `var x = 1; x.field = 2;`)
	if !strings.Contains(err.Error(), "Only instances have fields.") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestInitializerRunsOnConstruction(t *testing.T) {
	got := runScript(t, `
class Point {
  init(x, y) {
    this.x = x;
    this.y = y;
  }
  sum() { return this.x + this.y; }
}
print Point(3, 4).sum();`)
	if got != "7\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestInitializerArityIsEnforced(t *testing.T) {
	err := runScriptErr(t, `
class Point {
  init(x, y) {
    this.x = x;
    this.y = y;
  }
}
Point(1);`)
	if !strings.Contains(err.Error(), "Expected 2 arguments, but got 1.") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClassWithoutInitializerTakesNoArguments(t *testing.T) {
	err := runScriptErr(t, `
class Plain {}
Plain(1);`)
	if !strings.Contains(err.Error(), "Expected 0 arguments, but got 1.") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestInitializerAlwaysReturnsTheInstance(t *testing.T) {
	got := runScript(t, `
class Foo {
  init() {
    print this;
  }
}
var foo = Foo();
print foo.init();`)
	if got != "Foo instance\nFoo instance\nFoo instance\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestBareReturnInInitializerReturnsTheInstance(t *testing.T) {
	got := runScript(t, `
class Guard {
  init(ready) {
    if (!ready) return;
    this.armed = true;
  }
}
print Guard(false);`)
	if got != "Guard instance\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestInheritedMethodLookup(t *testing.T) {
	got := runScript(t, `
class Doughnut {
  cook() {
    print "Fry until golden brown.";
  }
}
class BostonCream < Doughnut {}
BostonCream().cook();`)
	if got != "Fry until golden brown.\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestInheritedInitializer(t *testing.T) {
	got := runScript(t, `
class Named {
  init(name) {
    this.name = name;
  }
}
class Dog < Named {}
print Dog("Rex").name;`)
	if got != "Rex\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestSuperCallsOverriddenMethod(t *testing.T) {
	got := runScript(t, `
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
	want := "Fry until golden brown.\nPipe full of custard and coat with chocolate.\n"
	if got != want {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestSuperBindsWhereTheMethodWasDeclared(t *testing.T) {
	// test lives in B, so its super is A even when called through C.
	got := runScript(t, `
class A {
  method() {
    print "A method";
  }
}
class B < A {
  method() {
    print "B method";
  }
  test() {
    super.method();
  }
}
class C < B {}
C().test();`)
	if got != "A method\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestSuperMissingMethod(t *testing.T) {
	err := runScriptErr(t, `
class Base {}
class Derived < Base {
  go() {
    super.launch();
  }
}
Derived().go();`)
	if !strings.Contains(err.Error(), "Undefined property 'launch'.") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSuperclassMustBeAClass(t *testing.T) {
	err := runScriptErr(t, `
var NotAClass = "so not a class";
class Oops < NotAClass {}`)
	if !strings.Contains(err.Error(), "Superclass must be a class.") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestBoundMethodsRememberTheirReceiver(t *testing.T) {
	got := runScript(t, `
class Person {
  sayName() {
    print this.name;
  }
}
var jane = Person();
jane.name = "Jane";
var bill = Person();
bill.name = "Bill";
bill.sayName = jane.sayName;
bill.sayName();`)
	if got != "Jane\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestInstancesHaveIndependentState(t *testing.T) {
	got := runScript(t, `
class Counter {
  init() {
    this.count = 0;
  }
  bump() {
    this.count = this.count + 1;
    return this.count;
  }
}
var a = Counter();
var b = Counter();
a.bump();
a.bump();
b.bump();
print a.count;
print b.count;`)
	if got != "2\n1\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestMethodsCallEachOtherThroughThis(t *testing.T) {
	got := runScript(t, `
class Speaker {
  hello() { return "hello " + this.word(); }
  word() { return "world"; }
}
print Speaker().hello();`)
	if got != "hello world\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestClassEqualityIsIdentity(t *testing.T) {
	got := runScript(t, `
class Thing {}
var a = Thing();
var b = Thing();
print a == a;
print a == b;
print Thing == Thing;`)
	if got != "true\nfalse\ntrue\n" {
		t.Fatalf("unexpected output %q", got)
	}
}
