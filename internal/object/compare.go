package object

import "fmt"

// Equal implements spec.md §4.3: both None, or same primitive kind
// compared natively, or lhs.__eq__(rhs) if lhs is an instance with a
// unary __eq__, else a runtime error. A mismatched primitive pair
// (Number vs String) does not fall through to dunder dispatch.
func Equal(lhs, rhs Holder, ctx Context) (bool, error) {
	if lhs.IsNone() && rhs.IsNone() {
		return true, nil
	}

	if ln, ok := lhs.TryNumber(); ok {
		rn, ok := rhs.TryNumber()
		return ok && ln == rn, errIfTypeMismatch(ok, "==", lhs, rhs)
	}
	if ls, ok := lhs.TryString(); ok {
		rs, ok := rhs.TryString()
		return ok && ls == rs, errIfTypeMismatch(ok, "==", lhs, rhs)
	}
	if lb, ok := lhs.TryBool(); ok {
		rb, ok := rhs.TryBool()
		return ok && lb == rb, errIfTypeMismatch(ok, "==", lhs, rhs)
	}

	if inst, ok := lhs.TryInstance(); ok && inst.HasMethod("__eq__", 1) {
		return dunderToBool(inst, "__eq__", rhs, ctx)
	}

	return false, fmt.Errorf("cannot compare %s and %s for equality", describe(lhs), describe(rhs))
}

// Less implements the symmetric rule for <.
func Less(lhs, rhs Holder, ctx Context) (bool, error) {
	if ln, ok := lhs.TryNumber(); ok {
		rn, ok := rhs.TryNumber()
		return ok && ln < rn, errIfTypeMismatch(ok, "<", lhs, rhs)
	}
	if ls, ok := lhs.TryString(); ok {
		rs, ok := rhs.TryString()
		return ok && ls < rs, errIfTypeMismatch(ok, "<", lhs, rhs)
	}
	if lb, ok := lhs.TryBool(); ok {
		rb, ok := rhs.TryBool()
		return ok && !bool(lb) && bool(rb), errIfTypeMismatch(ok, "<", lhs, rhs)
	}

	if inst, ok := lhs.TryInstance(); ok && inst.HasMethod("__lt__", 1) {
		return dunderToBool(inst, "__lt__", rhs, ctx)
	}

	return false, fmt.Errorf("cannot compare %s and %s with <", describe(lhs), describe(rhs))
}

// NotEqual is !Equal.
func NotEqual(lhs, rhs Holder, ctx Context) (bool, error) {
	eq, err := Equal(lhs, rhs, ctx)
	return !eq, err
}

// Greater is !(Less or Equal), short-circuiting on Less the same way
// the source material's `!(Less(...) || Equal(...))` never evaluates
// Equal once Less is true. For a class defining only __lt__ (no
// __eq__), > therefore yields false whenever __lt__ returns true; when
// __lt__ returns false, Equal is consulted and reports an error.
func Greater(lhs, rhs Holder, ctx Context) (bool, error) {
	lt, err := Less(lhs, rhs, ctx)
	if err != nil {
		return false, err
	}
	if lt {
		return false, nil
	}
	eq, err := Equal(lhs, rhs, ctx)
	if err != nil {
		return false, err
	}
	return !eq, nil
}

// LessOrEqual is Less or Equal.
func LessOrEqual(lhs, rhs Holder, ctx Context) (bool, error) {
	lt, err := Less(lhs, rhs, ctx)
	if err != nil {
		return false, err
	}
	if lt {
		return true, nil
	}
	return Equal(lhs, rhs, ctx)
}

// GreaterOrEqual is !Less.
func GreaterOrEqual(lhs, rhs Holder, ctx Context) (bool, error) {
	lt, err := Less(lhs, rhs, ctx)
	if err != nil {
		return false, err
	}
	return !lt, nil
}

func dunderToBool(inst *Instance, method string, rhs Holder, ctx Context) (bool, error) {
	result, err := inst.Call(method, []Holder{rhs}, ctx)
	if err != nil {
		return false, err
	}
	b, ok := result.TryBool()
	if !ok {
		return false, fmt.Errorf("%s.%s must return a Bool", inst.Class.Name, method)
	}
	return bool(b), nil
}

func errIfTypeMismatch(sameKind bool, op string, lhs, rhs Holder) error {
	if sameKind {
		return nil
	}
	return fmt.Errorf("cannot compare %s and %s with %s", describe(lhs), describe(rhs), op)
}

func describe(h Holder) string {
	if h.IsNone() {
		return "None"
	}
	return h.value.kind()
}
