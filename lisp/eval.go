package lisp

import (
	"errors"
	"io"
	"math"
)

// Config controls where diagnostics go and how fatal conditions terminate.
type Config struct {
	// Diagnostics receives WARNING lines; defaults to os.Stderr.
	Diagnostics io.Writer
	// FatalHandler runs when a fatal condition is reported; the default
	// prints the error and exits the process. Hosts embedding the engine
	// can install a handler that recovers instead.
	FatalHandler func(error)
}

// Engine evaluates expression trees. It holds no state besides its
// diagnostic sink, so a single Engine can evaluate any number of trees.
type Engine struct {
	config   Config
	reporter *Reporter
}

// NewEngine constructs an Engine, filling in default diagnostic routing.
func NewEngine(cfg Config) *Engine {
	return &Engine{
		config:   cfg,
		reporter: newReporter(cfg.Diagnostics, cfg.FatalHandler),
	}
}

// Warnings returns the number of recoverable diagnostics this engine has
// emitted.
func (e *Engine) Warnings() int { return e.reporter.Warnings() }

// Eval recursively reduces node to a numeric value. A nil node is an
// internal-consistency violation reported as fatal; every user-input-shaped
// failure degrades to NaN or zero with a diagnostic instead.
func (e *Engine) Eval(node *Node) Value {
	if node == nil {
		e.reporter.report(DiagNilNode, "NULL node passed into eval")
		return NaNValue()
	}

	switch node.Kind {
	case NodeNumber:
		return node.Num
	case NodeFunction:
		return e.evalFunction(node)
	case NodeScope:
		return e.Eval(node.Child)
	case NodeSymbol:
		return e.evalSymbol(node)
	default:
		return NaNValue()
	}
}

// evalSymbol resolves a symbol reference by walking outward from the node
// through enclosing scopes, inspecting each visited node's local table.
// The first match wins; bindings are re-evaluated on every reference.
func (e *Engine) evalSymbol(node *Node) Value {
	for current := node; current != nil; current = current.enclosing() {
		entry := LookupLocal(node.Name, current.Table)
		if entry == nil {
			continue
		}
		return e.coerce(entry, e.Eval(entry.Value))
	}
	e.reporter.report(DiagUndefinedSymbol, "undefined symbol %q, NAN returned", node.Name)
	return NaNValue()
}

// coerce applies a typed binding's declared type to a resolved value.
// Landing a Double in an Int-declared symbol truncates with a diagnostic.
func (e *Engine) coerce(entry *Entry, val Value) Value {
	switch entry.DeclaredType {
	case TypeInt:
		if val.Type == TypeDouble {
			truncated := math.Trunc(val.Raw)
			e.reporter.report(DiagPrecisionLoss, "precision loss on int cast of %q from %f to %.0f", entry.Name, val.Raw, truncated)
			return Value{Type: TypeInt, Raw: truncated}
		}
		return Value{Type: TypeInt, Raw: val.Raw}
	case TypeDouble:
		return Value{Type: TypeDouble, Raw: val.Raw}
	default:
		return val
	}
}

// Parse builds a program from source text through a fresh Tree. Parse
// errors are joined into one error; the partial program is still returned
// so its tree can be released.
func (e *Engine) Parse(source string) (*Program, error) {
	tree := e.NewTree()
	p := newParser(source, tree)
	program := p.ParseProgram()
	if len(p.errors) > 0 {
		return program, errors.Join(p.errors...)
	}
	return program, nil
}

// Run parses source, evaluates each top-level expression in order, and
// releases the tree. Parsing stops at a quit expression; evaluation of one
// malformed expression does not prevent its siblings from being evaluated.
func (e *Engine) Run(source string) ([]Value, error) {
	program, err := e.Parse(source)
	if err != nil {
		if program != nil {
			program.Release()
		}
		return nil, err
	}
	defer program.Release()

	var results []Value
	for expr := program.Exprs; expr != nil; expr = expr.next {
		results = append(results, e.Eval(expr))
	}
	return results, nil
}
