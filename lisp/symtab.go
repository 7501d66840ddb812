package lisp

// Entry is one binding in a scope's symbol table: a singly linked
// association list. Names are unique within one table; the entry owns its
// name storage and its bound expression tree.
type Entry struct {
	Name         string
	DeclaredType NumType
	Value        *Node

	next     *Entry
	released bool
}

// NextEntry returns the link to the next entry in the table.
func (en *Entry) NextEntry() *Entry { return en.next }

// LookupLocal returns the first entry in table whose name equals name, or
// nil. An empty name is never found.
func LookupLocal(name string, table *Entry) *Entry {
	if name == "" {
		return nil
	}
	for current := table; current != nil; current = current.next {
		if current.Name == name {
			return current
		}
	}
	return nil
}

// Bind constructs an untyped table entry over an already-built value tree.
// The entry takes ownership of the name.
func (t *Tree) Bind(name string, value *Node) *Entry {
	return t.BindTyped(name, TypeNone, value)
}

// BindTyped constructs a table entry whose declared type coerces the bound
// value on every reference.
func (t *Tree) BindTyped(name string, typ NumType, value *Node) *Entry {
	entry := &Entry{Name: name, DeclaredType: typ, Value: value}
	t.stats.Entries++
	if name != "" {
		t.stats.Names++
	}
	return entry
}

// Insert adds entry to table and returns the new head. If the name is
// already bound, the existing binding's value is replaced, the superseded
// value and the new entry wrapper are released, a duplicate-assignment
// diagnostic is emitted, and table is returned unchanged.
func (t *Tree) Insert(entry *Entry, table *Entry) *Entry {
	if entry == nil {
		return table
	}
	if old := LookupLocal(entry.Name, table); old != nil {
		t.reporter.report(DiagDuplicateAssignment, "Duplicate assignment to symbol %q", entry.Name)
		t.Release(old.Value)
		old.Value = entry.Value
		old.DeclaredType = entry.DeclaredType
		t.discardEntry(entry)
		return table
	}
	entry.next = table
	return entry
}

// discardEntry retires an entry wrapper whose value was adopted elsewhere.
func (t *Tree) discardEntry(entry *Entry) {
	if entry.Name != "" {
		t.stats.Names--
		entry.Name = ""
	}
	entry.Value = nil
	entry.released = true
	t.stats.Entries--
}
