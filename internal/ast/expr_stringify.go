package ast

import (
	"github.com/mythonlang/mython/internal/object"
	"github.com/mythonlang/mython/internal/printer"
)

// Stringify evaluates Arg and renders it to a String, per spec.md
// §4.4/§4.5: an empty (None) holder stringifies to "None" directly;
// otherwise printer.Print's convention applies (instances delegate to
// __str__ if present, else print their address).
type Stringify struct {
	Arg Node
}

func (s *Stringify) Execute(env object.Env, ctx object.Context) (object.Holder, error) {
	v, err := s.Arg.Execute(env, ctx)
	if err != nil {
		return object.None(), err
	}
	if v.IsNone() {
		return object.Own(object.String("None")), nil
	}

	text, err := printer.ToString(v, ctx)
	if err != nil {
		return object.None(), err
	}
	return object.Own(object.String(text)), nil
}
