// Package lisp implements the nlisp evaluation engine: a small numeric
// s-expression language with the following constructs:
//   - Integer and floating-point literals, with optional sign.
//   - Calls to a fixed set of sixteen arithmetic builtins, e.g. `(add 1 2 3)`.
//   - Lexically scoped bindings via `((let (x 1) (y 2)) (add x y))`, with
//     inner scopes shadowing outer ones.
//   - Optionally typed bindings, `((let (int x 5)) x)`, which coerce the
//     bound value on every reference.
//
// Results carry a numeric tag (Integer or Double) that only affects
// presentation and promotion; the stored value is always a float64.
// Malformed input (wrong arity, undefined symbols, duplicate bindings)
// degrades to NaN or zero with a diagnostic and evaluation continues.
// Comments beginning with `;` are ignored.
//
// Evaluation is a synchronous depth-first reduction; recursion depth is
// bounded only by tree depth, so pathologically deep input can exhaust the
// call stack.
package lisp
