package ast

import "github.com/mythonlang/mython/internal/object"

// Return evaluates Expr (or yields None if absent) and raises it as a
// returnSignal, which propagates, uncaught, through every intervening
// Compound/IfElse frame until MethodBody.Execute recovers it
// (spec.md §4.4/§4.6).
type Return struct {
	Expr Node // nil for a bare `return`
}

func (r *Return) Execute(env object.Env, ctx object.Context) (object.Holder, error) {
	if r.Expr == nil {
		panic(returnSignal{value: object.None()})
	}
	v, err := r.Expr.Execute(env, ctx)
	if err != nil {
		return object.None(), err
	}
	panic(returnSignal{value: v})
}
