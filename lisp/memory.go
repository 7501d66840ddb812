package lisp

// AllocStats counts live allocations made through a Tree: nodes, table
// entries, and owned name strings. A fully released tree reads zero across
// the board.
type AllocStats struct {
	Nodes   int
	Entries int
	Names   int
}

// Live reports the total number of live allocations.
func (s AllocStats) Live() int {
	return s.Nodes + s.Entries + s.Names
}

// Tree is the construction and teardown context for one expression tree (or
// a chain of top-level trees). Every constructor accounts its allocations
// so tests can verify that Release retires exactly what was built.
type Tree struct {
	reporter *Reporter
	stats    AllocStats
}

// NewTree returns a tree factory wired to the engine's diagnostics.
func (e *Engine) NewTree() *Tree {
	return &Tree{reporter: e.reporter}
}

// Stats returns the current allocation counts.
func (t *Tree) Stats() AllocStats { return t.stats }

func (t *Tree) newNode(kind NodeKind) *Node {
	t.stats.Nodes++
	return &Node{Kind: kind}
}

// Release destroys one owned subtree post-order: operand chains for
// function nodes; the child, table entries, and each entry's bound value
// for scope nodes; name storage for symbol nodes. Back-links and the
// node's own sibling link are pure references and are never followed.
func (t *Tree) Release(n *Node) {
	if n == nil || n.released {
		return
	}

	switch n.Kind {
	case NodeFunction:
		t.ReleaseChain(n.Operands)
		n.Operands = nil
	case NodeScope:
		t.Release(n.Child)
		n.Child = nil
		t.releaseTable(n.Table)
		n.Table = nil
	case NodeSymbol:
		t.stats.Names--
		n.Name = ""
	}

	n.next = nil
	n.enclosingScope = nil
	n.containingCall = nil
	n.released = true
	t.stats.Nodes--
}

// ReleaseChain releases every node in a sibling chain. The chain is owned
// by whichever container installed it, so the container releases it as a
// unit.
func (t *Tree) ReleaseChain(head *Node) {
	for node := head; node != nil; {
		next := node.next
		t.Release(node)
		node = next
	}
}

func (t *Tree) releaseTable(table *Entry) {
	for entry := table; entry != nil; {
		next := entry.next
		t.releaseEntry(entry)
		entry = next
	}
}

func (t *Tree) releaseEntry(entry *Entry) {
	if entry.released {
		return
	}
	t.Release(entry.Value)
	entry.Value = nil
	if entry.Name != "" {
		t.stats.Names--
		entry.Name = ""
	}
	entry.next = nil
	entry.released = true
	t.stats.Entries--
}

// Program is a parsed chain of top-level expressions plus the tree that
// owns them.
type Program struct {
	Exprs *Node
	Quit  bool

	tree *Tree
}

// Tree exposes the owning tree, mainly so callers can inspect allocation
// stats.
func (p *Program) Tree() *Tree { return p.tree }

// Release tears down every top-level expression in the program.
func (p *Program) Release() {
	p.tree.ReleaseChain(p.Exprs)
	p.Exprs = nil
}
