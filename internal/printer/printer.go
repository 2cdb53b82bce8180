// Package printer implements spec.md §4.5's Print convention: how
// each kind of Mython value renders as text, for both the `print`
// statement and Stringify.
//
// Grounded on the teacher's printer/printer.go (one function,
// switching on the value's concrete kind, writing to a string) and on
// original_source/mython/runtime.cpp's Bool::Print/ClassInstance::Print
// overrides for the exact literal spellings ("True"/"False",
// "Class <name>", __str__ delegation).
package printer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mythonlang/mython/internal/object"
)

// Print writes h's textual representation to w. A None holder prints
// as the literal "None" (the `print` statement's rule; Stringify
// handles the empty-holder case itself before ever calling Print, per
// spec.md §4.4).
func Print(w io.Writer, h object.Holder, ctx object.Context) error {
	if h.IsNone() {
		_, err := io.WriteString(w, "None")
		return err
	}

	switch {
	case isNumber(h):
		n, _ := h.TryNumber()
		_, err := io.WriteString(w, strconv.FormatInt(int64(n), 10))
		return err
	case isString(h):
		s, _ := h.TryString()
		_, err := io.WriteString(w, string(s))
		return err
	case isBool(h):
		b, _ := h.TryBool()
		if bool(b) {
			_, err := io.WriteString(w, "True")
			return err
		}
		_, err := io.WriteString(w, "False")
		return err
	}

	if cls, ok := h.TryClass(); ok {
		_, err := fmt.Fprintf(w, "Class %s", cls.Name)
		return err
	}

	if inst, ok := h.TryInstance(); ok {
		return printInstance(w, inst, ctx)
	}

	return fmt.Errorf("printer: unrecognized value %v", h)
}

func printInstance(w io.Writer, inst *object.Instance, ctx object.Context) error {
	if !inst.HasMethod("__str__", 0) {
		_, err := fmt.Fprintf(w, "%p", inst)
		return err
	}

	result, err := inst.Call("__str__", nil, ctx)
	if err != nil {
		return err
	}
	return Print(w, result, ctx)
}

// ToString renders h exactly as Print would, into a string, for
// Stringify's use.
func ToString(h object.Holder, ctx object.Context) (string, error) {
	var b strings.Builder
	if err := Print(&b, h, ctx); err != nil {
		return "", err
	}
	return b.String(), nil
}

func isNumber(h object.Holder) bool { _, ok := h.TryNumber(); return ok }
func isString(h object.Holder) bool { _, ok := h.TryString(); return ok }
func isBool(h object.Holder) bool   { _, ok := h.TryBool(); return ok }
