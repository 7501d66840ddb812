package lisp

// FuncKind tags a function-call node with one of the sixteen builtins, or
// FuncCustom for any unrecognized name. Custom functions are an extension
// point; evaluating one yields NaN with a diagnostic.
type FuncKind int

const (
	FuncNeg FuncKind = iota
	FuncAbs
	FuncAdd
	FuncSub
	FuncMult
	FuncDiv
	FuncRemainder
	FuncExp
	FuncExp2
	FuncPow
	FuncLog
	FuncSqrt
	FuncCbrt
	FuncHypot
	FuncMax
	FuncMin
	FuncCustom
)

// funcNames is indexed by FuncKind; ResolveFunc depends on the ordering.
var funcNames = [...]string{
	"neg",
	"abs",
	"add",
	"sub",
	"mult",
	"div",
	"remainder",
	"exp",
	"exp2",
	"pow",
	"log",
	"sqrt",
	"cbrt",
	"hypot",
	"max",
	"min",
}

func (k FuncKind) String() string {
	if k >= 0 && int(k) < len(funcNames) {
		return funcNames[k]
	}
	return "custom"
}

// ResolveFunc maps a textual function name to its builtin tag by
// case-sensitive exact match. Unmatched names map to FuncCustom.
func ResolveFunc(name string) FuncKind {
	for i, candidate := range funcNames {
		if candidate == name {
			return FuncKind(i)
		}
	}
	return FuncCustom
}

func (e *Engine) evalFunction(node *Node) Value {
	ops := node.Operands

	switch node.Func {
	case FuncNeg:
		return e.evalNeg(ops)
	case FuncAbs:
		return e.evalAbs(ops)
	case FuncAdd:
		return e.evalAdd(ops)
	case FuncSub:
		return e.evalSub(ops)
	case FuncMult:
		return e.evalMult(ops)
	case FuncDiv:
		return e.evalDiv(ops)
	case FuncRemainder:
		return e.evalRemainder(ops)
	case FuncExp:
		return e.evalExp(ops)
	case FuncExp2:
		return e.evalExp2(ops)
	case FuncPow:
		return e.evalPow(ops)
	case FuncLog:
		return e.evalLog(ops)
	case FuncSqrt:
		return e.evalSqrt(ops)
	case FuncCbrt:
		return e.evalCbrt(ops)
	case FuncHypot:
		return e.evalHypot(ops)
	case FuncMax:
		return e.evalMax(ops)
	case FuncMin:
		return e.evalMin(ops)
	default:
		e.reporter.report(DiagCustomFunction, "custom functions are not supported, NAN returned")
		return NaNValue()
	}
}
