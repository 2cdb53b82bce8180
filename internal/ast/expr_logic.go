package ast

import "github.com/mythonlang/mython/internal/object"

// Or short-circuits: truthy lhs yields Bool(true) without evaluating
// rhs. Always produces a Bool, deliberately diverging from returning
// either operand (spec.md §4.4).
type Or struct {
	Lhs, Rhs Node
}

func (o *Or) Execute(env object.Env, ctx object.Context) (object.Holder, error) {
	lv, err := o.Lhs.Execute(env, ctx)
	if err != nil {
		return object.None(), err
	}
	if object.IsTrue(lv) {
		return object.Own(object.Bool(true)), nil
	}

	rv, err := o.Rhs.Execute(env, ctx)
	if err != nil {
		return object.None(), err
	}
	return object.Own(object.Bool(object.IsTrue(rv))), nil
}

// And evaluates both operands unconditionally — no short-circuiting,
// matching the reference implementation's behavior (spec.md §9 open
// question: this asymmetry with Or is preserved, not "fixed").
type And struct {
	Lhs, Rhs Node
}

func (a *And) Execute(env object.Env, ctx object.Context) (object.Holder, error) {
	lv, err := a.Lhs.Execute(env, ctx)
	if err != nil {
		return object.None(), err
	}
	rv, err := a.Rhs.Execute(env, ctx)
	if err != nil {
		return object.None(), err
	}
	return object.Own(object.Bool(object.IsTrue(lv) && object.IsTrue(rv))), nil
}

// Not negates IsTrue(Arg).
type Not struct {
	Arg Node
}

func (n *Not) Execute(env object.Env, ctx object.Context) (object.Holder, error) {
	v, err := n.Arg.Execute(env, ctx)
	if err != nil {
		return object.None(), err
	}
	return object.Own(object.Bool(!object.IsTrue(v))), nil
}
