package lisp

// NodeKind identifies an expression tree variant.
type NodeKind int

const (
	NodeNumber NodeKind = iota
	NodeSymbol
	NodeFunction
	NodeScope
)

func (k NodeKind) String() string {
	switch k {
	case NodeNumber:
		return "number"
	case NodeSymbol:
		return "symbol"
	case NodeFunction:
		return "function"
	case NodeScope:
		return "scope"
	default:
		return "unknown"
	}
}

// Node is one expression tree node. Exactly one variant's fields are
// populated, selected by Kind. Operand lists and top-level expressions are
// chained through next; traversal terminates on nil.
//
// The two back-links are pure references, never owned: enclosingScope points
// at the nearest scope node that closed over this node, containingCall at
// the function node whose operand list holds it. Teardown never follows
// either.
type Node struct {
	Kind NodeKind

	Num      Value    // NodeNumber
	Name     string   // NodeSymbol
	Func     FuncKind // NodeFunction
	Operands *Node    // NodeFunction; owned chain
	Table    *Entry   // NodeScope; owned
	Child    *Node    // NodeScope; owned

	next           *Node
	enclosingScope *Node
	containingCall *Node

	released bool
}

// Next returns the sibling link chaining operand lists and top-level
// expressions.
func (n *Node) Next() *Node { return n.next }

// enclosing steps outward one level for scope resolution: the lexical scope
// wins over the operand-list owner when both are set.
func (n *Node) enclosing() *Node {
	if n.enclosingScope != nil {
		return n.enclosingScope
	}
	return n.containingCall
}

// Number allocates a number node holding the given tagged value.
func (t *Tree) Number(raw float64, typ NumType) *Node {
	n := t.newNode(NodeNumber)
	n.Num = Value{Type: typ, Raw: raw}
	return n
}

// Symbol allocates a symbol-reference node. The node owns its name storage.
func (t *Tree) Symbol(name string) *Node {
	n := t.newNode(NodeSymbol)
	n.Name = name
	t.stats.Names++
	return n
}

// Function allocates a function-call node over an operand chain and records
// itself as each operand's containing call.
func (t *Tree) Function(fn FuncKind, operands *Node) *Node {
	n := t.newNode(NodeFunction)
	n.Func = fn
	n.Operands = operands
	for op := operands; op != nil; op = op.next {
		op.containingCall = n
	}
	return n
}

// Scope allocates a scope node owning a symbol table and a single body
// expression. Every bound value in the table and the body chain are
// re-parented to point at the new scope, establishing the lexical enclosure
// used by resolution.
func (t *Tree) Scope(table *Entry, child *Node) *Node {
	n := t.newNode(NodeScope)
	n.Table = table
	n.Child = child
	for entry := table; entry != nil; entry = entry.next {
		setEnclosingScope(entry.Value, n)
	}
	setEnclosingScope(child, n)
	return n
}

func setEnclosingScope(list *Node, scope *Node) {
	for node := list; node != nil; node = node.next {
		node.enclosingScope = scope
	}
}

// PrependExpr links newNode in front of list and returns the new head. The
// front-end builds chains in reverse-of-encounter order.
func PrependExpr(newNode, list *Node) *Node {
	newNode.next = list
	return newNode
}
