package ast

import (
	"errors"

	"github.com/mythonlang/mython/internal/object"
)

// Run executes a top-level program (normally a *Compound) against
// env and ctx. A bare `return` outside any method body would
// otherwise panic uncaught all the way out of the program — spec.md
// §7 classifies that as a fatal ReturnSignal error, so Run is the
// catch-all that turns it into one.
func Run(program Node, env object.Env, ctx object.Context) (result object.Holder, err error) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(returnSignal); ok {
				err = errors.New("'return' outside a method body")
				return
			}
			panic(r)
		}
	}()
	return program.Execute(env, ctx)
}
