// Package object implements the Mython value/object model: primitive
// values, classes with a single-inheritance vtable, instances with a
// per-instance field environment, and the Holder wrapper that gives
// them owning/borrowing/empty reference semantics.
//
// Grounded on original_source/mython/runtime.h (ObjectHolder::Own/
// Share/None, Class's VFTable, ClassInstance) and on the teacher's
// types.go tagged-Data approach for how a small, closed value set is
// represented as a Go interface with a handful of implementations.
package object

import "fmt"

// Value is any Mython runtime value: Number, String, Bool, *Class or
// *Instance. There is no Go type for None — an empty Holder (or a nil
// Value) represents it, matching spec.md §3.2's "empty holder ↔ None".
type Value interface {
	// kind names the value's type for comparison error messages
	// (describe in compare.go); the Try* accessors use type assertions.
	kind() string
}

// Number is a Mython integer.
type Number int64

func (Number) kind() string { return "Number" }

// String is a Mython immutable byte string.
type String string

func (String) kind() string { return "String" }

// Bool is a Mython boolean.
type Bool bool

func (Bool) kind() string { return "Bool" }

// Holder is the reference wrapper spec.md §3.2 describes: it is
// either empty (None), or it carries a Value. Go's own garbage
// collector makes the C++ original's owning-vs-borrowing distinction
// irrelevant for memory safety (see DESIGN.md) — both Own and Share
// just store the Value — but the two constructors are kept distinct
// to preserve the vocabulary spec.md's contract uses (§4.4's
// "borrowing holder on self", §3.6) and so call sites read the way
// the spec describes them.
type Holder struct {
	value Value
}

// Own wraps v in a new Holder; copies of it refer to the same value.
func Own(v Value) Holder { return Holder{value: v} }

// Share wraps an existing Value without implying the holder
// originated it; used for self during a method call.
func Share(v Value) Holder { return Holder{value: v} }

// None returns the empty holder.
func None() Holder { return Holder{} }

// IsNone reports whether the holder is empty.
func (h Holder) IsNone() bool { return h.value == nil }

// Value returns the wrapped Value, or nil if the holder is empty.
func (h Holder) Value() Value { return h.value }

// TryNumber returns (v, true) if the holder holds exactly a Number.
func (h Holder) TryNumber() (Number, bool) {
	n, ok := h.value.(Number)
	return n, ok
}

// TryString returns (v, true) if the holder holds exactly a String.
func (h Holder) TryString() (String, bool) {
	s, ok := h.value.(String)
	return s, ok
}

// TryBool returns (v, true) if the holder holds exactly a Bool.
func (h Holder) TryBool() (Bool, bool) {
	b, ok := h.value.(Bool)
	return b, ok
}

// TryInstance returns (v, true) if the holder holds exactly an *Instance.
func (h Holder) TryInstance() (*Instance, bool) {
	i, ok := h.value.(*Instance)
	return i, ok
}

// TryClass returns (v, true) if the holder holds exactly a *Class.
func (h Holder) TryClass() (*Class, bool) {
	c, ok := h.value.(*Class)
	return c, ok
}

// IsTrue implements spec.md §4.2's truthiness rule: true iff
// non-empty and (nonzero Number, true Bool, or non-empty String).
// Everything else — including every class instance — is false.
func IsTrue(h Holder) bool {
	switch v := h.value.(type) {
	case Number:
		return v != 0
	case Bool:
		return bool(v)
	case String:
		return v != ""
	default:
		return false
	}
}

func (h Holder) String() string {
	if h.IsNone() {
		return "None"
	}
	return fmt.Sprintf("%v", h.value)
}
