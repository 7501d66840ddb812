package lisp

import "math"

// unaryOperand validates a unary operand list and evaluates its head. When
// the list is empty the returned value is the NaN fallback and ok is false.
// Extra operands are never evaluated.
func (e *Engine) unaryOperand(name string, ops *Node) (Value, bool) {
	if ops == nil {
		e.reporter.report(DiagNoOperands, "%s called with no operands, NAN returned", name)
		return NaNValue(), false
	}
	if ops.next != nil {
		e.reporter.report(DiagExtraOperands, "%s called with extra operands, ignoring all but the first", name)
	}
	return e.Eval(ops), true
}

// binaryOperands validates a binary-exact operand list and evaluates its
// first two operands. When validation fails, fallback carries the degraded
// result (zero for no operands, NaN for one) and ok is false. Operands past
// the second are never evaluated.
func (e *Engine) binaryOperands(name string, ops *Node) (first, second Value, ok bool, fallback Value) {
	if ops == nil {
		e.reporter.report(DiagNoOperands, "%s called with no operands, 0 returned", name)
		return Value{}, Value{}, false, ZeroValue()
	}
	if ops.next == nil {
		e.reporter.report(DiagTooFewOperands, "%s called with only one operand, NAN returned", name)
		return Value{}, Value{}, false, NaNValue()
	}

	first = e.Eval(ops)
	second = e.Eval(ops.next)

	if ops.next.next != nil {
		e.reporter.report(DiagExtraOperands, "%s called with too many operands, ignoring extra", name)
	}
	return first, second, true, Value{}
}

func (e *Engine) evalNeg(ops *Node) Value {
	num, ok := e.unaryOperand("neg", ops)
	if !ok {
		return num
	}
	return Value{Type: num.Type, Raw: -num.Raw}
}

func (e *Engine) evalAbs(ops *Node) Value {
	num, ok := e.unaryOperand("abs", ops)
	if !ok {
		return num
	}
	return Value{Type: num.Type, Raw: math.Abs(num.Raw)}
}

func (e *Engine) evalAdd(ops *Node) Value {
	if ops == nil {
		e.reporter.report(DiagNoOperands, "add called with no operands, 0 returned")
		return ZeroValue()
	}

	result := Value{Type: TypeInt}
	for op := ops; op != nil; op = op.next {
		num := e.Eval(op)
		// Historical accumulation rule: the most recent operand's tag wins.
		result.Type = num.Type
		result.Raw += num.Raw
	}
	return result
}

func (e *Engine) evalSub(ops *Node) Value {
	first, second, ok, fallback := e.binaryOperands("sub", ops)
	if !ok {
		return fallback
	}
	return Value{Type: promote(first, second), Raw: first.Raw - second.Raw}
}

func (e *Engine) evalMult(ops *Node) Value {
	first, second, ok, fallback := e.binaryOperands("mult", ops)
	if !ok {
		return fallback
	}
	return Value{Type: promote(first, second), Raw: first.Raw * second.Raw}
}

func (e *Engine) evalDiv(ops *Node) Value {
	first, second, ok, fallback := e.binaryOperands("div", ops)
	if !ok {
		return fallback
	}
	return Value{Type: promote(first, second), Raw: first.Raw / second.Raw}
}

func (e *Engine) evalRemainder(ops *Node) Value {
	first, second, ok, fallback := e.binaryOperands("remainder", ops)
	if !ok {
		return fallback
	}
	return Value{Type: promote(first, second), Raw: math.Abs(math.Mod(first.Raw, second.Raw))}
}

func (e *Engine) evalExp(ops *Node) Value {
	num, ok := e.unaryOperand("exp", ops)
	if !ok {
		return num
	}
	return Value{Type: TypeDouble, Raw: math.Exp(num.Raw)}
}

func (e *Engine) evalExp2(ops *Node) Value {
	num, ok := e.unaryOperand("exp2", ops)
	if !ok {
		return num
	}
	// Historical rule: exp2 keeps the operand's tag and promotes to Double
	// only when the computed value is negative.
	result := Value{Type: num.Type, Raw: math.Exp2(num.Raw)}
	if result.Raw < 0 {
		result.Type = TypeDouble
	}
	return result
}

func (e *Engine) evalPow(ops *Node) Value {
	first, second, ok, fallback := e.binaryOperands("pow", ops)
	if !ok {
		return fallback
	}
	return Value{Type: promote(first, second), Raw: math.Pow(first.Raw, second.Raw)}
}

func (e *Engine) evalLog(ops *Node) Value {
	num, ok := e.unaryOperand("log", ops)
	if !ok {
		return num
	}
	return Value{Type: TypeDouble, Raw: math.Log(num.Raw)}
}

func (e *Engine) evalSqrt(ops *Node) Value {
	num, ok := e.unaryOperand("sqrt", ops)
	if !ok {
		return num
	}
	return Value{Type: TypeDouble, Raw: math.Sqrt(num.Raw)}
}

func (e *Engine) evalCbrt(ops *Node) Value {
	num, ok := e.unaryOperand("cbrt", ops)
	if !ok {
		return num
	}
	return Value{Type: TypeDouble, Raw: math.Cbrt(num.Raw)}
}

func (e *Engine) evalHypot(ops *Node) Value {
	if ops == nil {
		e.reporter.report(DiagNoOperands, "hypot called with no operands, 0 returned")
		return ZeroValue()
	}

	sum := 0.0
	for op := ops; op != nil; op = op.next {
		num := e.Eval(op)
		sum += num.Raw * num.Raw
	}
	return Value{Type: TypeDouble, Raw: math.Sqrt(sum)}
}

func (e *Engine) evalMin(ops *Node) Value {
	if ops == nil {
		e.reporter.report(DiagNoOperands, "min called with no operands, 0 returned")
		return ZeroValue()
	}

	result := e.Eval(ops)
	for op := ops.next; op != nil; op = op.next {
		num := e.Eval(op)
		if num.Raw < result.Raw {
			result = num
		}
	}
	return result
}

func (e *Engine) evalMax(ops *Node) Value {
	if ops == nil {
		e.reporter.report(DiagNoOperands, "max called with no operands, 0 returned")
		return ZeroValue()
	}

	result := e.Eval(ops)
	for op := ops.next; op != nil; op = op.next {
		num := e.Eval(op)
		if num.Raw > result.Raw {
			result = num
		}
	}
	return result
}
