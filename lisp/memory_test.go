package lisp

import "testing"

func TestReleaseRoundTripLeavesNoLiveAllocations(t *testing.T) {
	engine, _ := testEngine(t)

	program, err := engine.Parse("((let (x 1) (double y (add 2 3))) (hypot x y)) (mult 4 5)")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	stats := program.Tree().Stats()
	if stats.Live() == 0 {
		t.Fatalf("expected live allocations after construction")
	}
	if stats.Entries != 2 {
		t.Fatalf("expected 2 table entries, got %d", stats.Entries)
	}

	program.Release()

	stats = program.Tree().Stats()
	if stats.Live() != 0 {
		t.Fatalf("release leaked allocations: %+v", stats)
	}
}

func TestReleaseWithoutEvaluation(t *testing.T) {
	tree, _ := testTree(t)

	operands := PrependExpr(tree.Number(3, TypeInt), PrependExpr(tree.Symbol("y"), nil))
	fn := tree.Function(FuncAdd, operands)
	table := tree.Insert(tree.Bind("y", tree.Number(4, TypeInt)), nil)
	scope := tree.Scope(table, fn)

	tree.Release(scope)

	if stats := tree.Stats(); stats.Live() != 0 {
		t.Fatalf("release leaked allocations: %+v", stats)
	}
}

func TestDuplicateInsertDoesNotLeak(t *testing.T) {
	tree, _ := testTree(t)

	table := tree.Insert(tree.Bind("x", tree.Number(1, TypeInt)), nil)
	table = tree.Insert(tree.Bind("x", tree.Number(2, TypeInt)), table)
	scope := tree.Scope(table, tree.Symbol("x"))

	tree.Release(scope)

	if stats := tree.Stats(); stats.Live() != 0 {
		t.Fatalf("duplicate insert leaked allocations: %+v", stats)
	}
}

func TestReleaseIsIdempotent(t *testing.T) {
	tree, _ := testTree(t)

	node := tree.Number(1, TypeInt)
	tree.Release(node)
	tree.Release(node)

	if stats := tree.Stats(); stats.Nodes != 0 {
		t.Fatalf("double release corrupted the ledger: %+v", stats)
	}
}

func TestReleaseDoesNotFollowSiblingLinks(t *testing.T) {
	tree, _ := testTree(t)

	first := tree.Number(1, TypeInt)
	second := tree.Number(2, TypeInt)
	head := PrependExpr(first, PrependExpr(second, nil))

	// Releasing one node of a chain must not release its sibling; the
	// chain's owner does that through ReleaseChain.
	tree.Release(head)

	if second.released {
		t.Fatalf("sibling was released through a non-owning link")
	}
	if stats := tree.Stats(); stats.Nodes != 1 {
		t.Fatalf("expected one live node, got %+v", stats)
	}

	tree.Release(second)
	if stats := tree.Stats(); stats.Live() != 0 {
		t.Fatalf("expected empty ledger, got %+v", stats)
	}
}
