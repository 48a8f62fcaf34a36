package lox

import (
	"reflect"
	"testing"
)

func TestEnvDefineAndGet(t *testing.T) {
	env := newEnv(nil)
	env.Define("x", NewNumber(1))

	val, ok := env.Get("x")
	if !ok || val.Number() != 1 {
		t.Fatalf("expected 1, got %s (found %t)", val, ok)
	}
	if _, ok := env.Get("y"); ok {
		t.Fatalf("did not expect to find y")
	}
}

func TestEnvGetWalksParentChain(t *testing.T) {
	outer := newEnv(nil)
	outer.Define("x", NewString("outer"))
	inner := newEnv(outer)

	val, ok := inner.Get("x")
	if !ok || val.String() != "outer" {
		t.Fatalf("expected outer binding, got %s (found %t)", val, ok)
	}
}

func TestEnvShadowing(t *testing.T) {
	outer := newEnv(nil)
	outer.Define("x", NewString("outer"))
	inner := newEnv(outer)
	inner.Define("x", NewString("inner"))

	if val, _ := inner.Get("x"); val.String() != "inner" {
		t.Fatalf("expected inner binding, got %s", val)
	}
	if val, _ := outer.Get("x"); val.String() != "outer" {
		t.Fatalf("outer binding should be untouched, got %s", val)
	}
}

func TestEnvAssignMutatesNearestBinding(t *testing.T) {
	outer := newEnv(nil)
	outer.Define("x", NewNumber(1))
	inner := newEnv(outer)

	if !inner.Assign("x", NewNumber(2)) {
		t.Fatalf("expected assignment to succeed")
	}
	if val, _ := outer.Get("x"); val.Number() != 2 {
		t.Fatalf("expected outer binding updated to 2, got %s", val)
	}
}

func TestEnvAssignToUndefinedFails(t *testing.T) {
	env := newEnv(nil)
	if env.Assign("ghost", NewNil()) {
		t.Fatalf("assignment to an unbound name should fail")
	}
	if _, ok := env.Get("ghost"); ok {
		t.Fatalf("failed assignment must not create a binding")
	}
}

func TestEnvGetAtSkipsShadows(t *testing.T) {
	root := newEnv(nil)
	root.Define("x", NewString("root"))
	mid := newEnv(root)
	mid.Define("x", NewString("mid"))
	leaf := newEnv(mid)

	if val := leaf.GetAt(1, "x"); val.String() != "mid" {
		t.Fatalf("distance 1: expected mid, got %s", val)
	}
	if val := leaf.GetAt(2, "x"); val.String() != "root" {
		t.Fatalf("distance 2: expected root, got %s", val)
	}
}

func TestEnvAssignAt(t *testing.T) {
	root := newEnv(nil)
	root.Define("x", NewNumber(1))
	leaf := newEnv(newEnv(root))

	leaf.AssignAt(2, "x", NewNumber(9))
	if val, _ := root.Get("x"); val.Number() != 9 {
		t.Fatalf("expected root binding updated to 9, got %s", val)
	}
}

func TestEnvNamesAreSorted(t *testing.T) {
	env := newEnv(nil)
	env.Define("zebra", NewNil())
	env.Define("apple", NewNil())
	env.Define("mango", NewNil())

	want := []string{"apple", "mango", "zebra"}
	if got := env.Names(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestEnvNamesAreScopeLocal(t *testing.T) {
	outer := newEnv(nil)
	outer.Define("hidden", NewNil())
	inner := newEnv(outer)
	inner.Define("own", NewNil())

	if got := inner.Names(); !reflect.DeepEqual(got, []string{"own"}) {
		t.Fatalf("expected only local names, got %v", got)
	}
}
