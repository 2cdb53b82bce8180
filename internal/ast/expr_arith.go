package ast

import (
	"fmt"

	"github.com/mythonlang/mython/internal/object"
)

// Add implements spec.md §4.4's Add: Number+Number, String+String, or
// an instance __add__ dispatch (the only arithmetic op with dunder
// fallback); anything else is a TypeError.
type Add struct {
	Lhs, Rhs Node
}

func (a *Add) Execute(env object.Env, ctx object.Context) (object.Holder, error) {
	lv, rv, err := evalPair(a.Lhs, a.Rhs, env, ctx)
	if err != nil {
		return object.None(), err
	}

	if ln, ok := lv.TryNumber(); ok {
		if rn, ok := rv.TryNumber(); ok {
			return object.Own(ln + rn), nil
		}
		return object.None(), typeErr("+", lv, rv)
	}
	if ls, ok := lv.TryString(); ok {
		if rs, ok := rv.TryString(); ok {
			return object.Own(ls + rs), nil
		}
		return object.None(), typeErr("+", lv, rv)
	}
	if inst, ok := lv.TryInstance(); ok && inst.HasMethod("__add__", 1) {
		return inst.Call("__add__", []object.Holder{rv}, ctx)
	}

	return object.None(), typeErr("+", lv, rv)
}

// Sub is Number-Number only; no dunder dispatch.
type Sub struct {
	Lhs, Rhs Node
}

func (s *Sub) Execute(env object.Env, ctx object.Context) (object.Holder, error) {
	ln, rn, err := evalNumericPair(s.Lhs, s.Rhs, env, ctx, "-")
	if err != nil {
		return object.None(), err
	}
	return object.Own(ln - rn), nil
}

// Mult is Number*Number only; no dunder dispatch.
type Mult struct {
	Lhs, Rhs Node
}

func (m *Mult) Execute(env object.Env, ctx object.Context) (object.Holder, error) {
	ln, rn, err := evalNumericPair(m.Lhs, m.Rhs, env, ctx, "*")
	if err != nil {
		return object.None(), err
	}
	return object.Own(ln * rn), nil
}

// Div is Number/Number, truncating toward zero (Go's native integer
// division); divisor 0 is a DivisionByZero runtime error.
type Div struct {
	Lhs, Rhs Node
}

func (d *Div) Execute(env object.Env, ctx object.Context) (object.Holder, error) {
	ln, rn, err := evalNumericPair(d.Lhs, d.Rhs, env, ctx, "/")
	if err != nil {
		return object.None(), err
	}
	if rn == 0 {
		return object.None(), fmt.Errorf("division by zero")
	}
	return object.Own(ln / rn), nil
}

func evalPair(lhs, rhs Node, env object.Env, ctx object.Context) (object.Holder, object.Holder, error) {
	lv, err := lhs.Execute(env, ctx)
	if err != nil {
		return object.None(), object.None(), err
	}
	rv, err := rhs.Execute(env, ctx)
	if err != nil {
		return object.None(), object.None(), err
	}
	return lv, rv, nil
}

func evalNumericPair(lhs, rhs Node, env object.Env, ctx object.Context, op string) (object.Number, object.Number, error) {
	lv, rv, err := evalPair(lhs, rhs, env, ctx)
	if err != nil {
		return 0, 0, err
	}
	ln, ok := lv.TryNumber()
	if !ok {
		return 0, 0, typeErr(op, lv, rv)
	}
	rn, ok := rv.TryNumber()
	if !ok {
		return 0, 0, typeErr(op, lv, rv)
	}
	return ln, rn, nil
}

func typeErr(op string, lv, rv object.Holder) error {
	return fmt.Errorf("unsupported operand types for %s: %s and %s", op, describeHolder(lv), describeHolder(rv))
}

func describeHolder(h object.Holder) string {
	switch {
	case h.IsNone():
		return "None"
	default:
		return fmt.Sprintf("%T", h.Value())
	}
}
