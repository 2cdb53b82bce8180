package ast

import (
	"io"

	"github.com/mythonlang/mython/internal/object"
	"github.com/mythonlang/mython/internal/printer"
)

// Print evaluates Args left to right, writes them to ctx's output
// stream separated by a single space, then a trailing newline. A
// None argument prints literally as "None". Zero arguments still
// produce a bare newline (spec.md's S1 scenario exercises this).
type Print struct {
	Args []Node
}

func (p *Print) Execute(env object.Env, ctx object.Context) (object.Holder, error) {
	w := ctx.OutputStream()
	for i, arg := range p.Args {
		if i > 0 {
			if _, err := io.WriteString(w, " "); err != nil {
				return object.None(), err
			}
		}
		v, err := arg.Execute(env, ctx)
		if err != nil {
			return object.None(), err
		}
		if err := printer.Print(w, v, ctx); err != nil {
			return object.None(), err
		}
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return object.None(), err
	}
	return object.None(), nil
}
