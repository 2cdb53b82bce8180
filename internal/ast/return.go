package ast

import "github.com/mythonlang/mython/internal/object"

// returnSignal is panicked by Return.Execute and recovered only by
// MethodBody.Execute, carrying the returned value across however many
// nested Compound/IfElse frames lie between them (spec.md §4.6). This
// is the pattern the retrieved pack's Lox-family interpreters use for
// the same non-local-exit problem; see
// other_examples/chazu-maggie__interpreter.go's NonLocalReturn.
type returnSignal struct {
	value object.Holder
}

// catchReturn recovers a returnSignal panic and reports it through
// the normal (value, error) result shape MethodBody.Execute uses.
// Any other panic is re-raised — only Return's own signal is ours to
// catch.
func catchReturn(result *object.Holder, err *error) {
	if r := recover(); r != nil {
		if sig, ok := r.(returnSignal); ok {
			*result = sig.value
			*err = nil
			return
		}
		panic(r)
	}
}
