package lisp

import "testing"

func TestPrependExprBuildsReversedChain(t *testing.T) {
	tree, _ := testTree(t)

	a := tree.Number(1, TypeInt)
	b := tree.Number(2, TypeInt)
	c := tree.Number(3, TypeInt)

	head := PrependExpr(c, nil)
	head = PrependExpr(b, head)
	head = PrependExpr(a, head)

	want := []float64{1, 2, 3}
	i := 0
	for node := head; node != nil; node = node.next {
		if node.Num.Raw != want[i] {
			t.Fatalf("chain position %d: got %v, want %v", i, node.Num.Raw, want[i])
		}
		i++
	}
	if i != 3 {
		t.Fatalf("expected chain of 3, got %d", i)
	}
}

func TestFunctionSetsContainingCall(t *testing.T) {
	tree, _ := testTree(t)

	first := tree.Number(1, TypeInt)
	second := tree.Number(2, TypeInt)
	fn := tree.Function(FuncAdd, PrependExpr(first, PrependExpr(second, nil)))

	for op := fn.Operands; op != nil; op = op.next {
		if op.containingCall != fn {
			t.Fatalf("operand missing containing-call link")
		}
		if op.enclosingScope != nil {
			t.Fatalf("operand should have no enclosing scope yet")
		}
	}
}

func TestScopeReparentsTableAndChild(t *testing.T) {
	tree, _ := testTree(t)

	bound := tree.Number(1, TypeInt)
	table := tree.Insert(tree.Bind("x", bound), nil)
	child := tree.Symbol("x")
	scope := tree.Scope(table, child)

	if bound.enclosingScope != scope {
		t.Fatalf("bound value was not re-parented to the scope")
	}
	if child.enclosingScope != scope {
		t.Fatalf("child was not re-parented to the scope")
	}
}

func TestEnclosingPrefersScopeOverCall(t *testing.T) {
	tree, _ := testTree(t)

	sym := tree.Symbol("x")
	fn := tree.Function(FuncNeg, PrependExpr(sym, nil))
	scope := tree.Scope(tree.Insert(tree.Bind("x", tree.Number(1, TypeInt)), nil), fn)

	// The symbol's outward walk goes through the call before reaching the
	// scope.
	if sym.enclosing() != fn {
		t.Fatalf("symbol should step to its containing call first")
	}
	if fn.enclosing() != scope {
		t.Fatalf("call should step to its enclosing scope")
	}
}

func TestResolveFunc(t *testing.T) {
	tests := []struct {
		name string
		want FuncKind
	}{
		{"neg", FuncNeg},
		{"add", FuncAdd},
		{"remainder", FuncRemainder},
		{"hypot", FuncHypot},
		{"min", FuncMin},
		{"Max", FuncCustom},
		{"", FuncCustom},
		{"average", FuncCustom},
	}

	for _, tt := range tests {
		if got := ResolveFunc(tt.name); got != tt.want {
			t.Fatalf("ResolveFunc(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
