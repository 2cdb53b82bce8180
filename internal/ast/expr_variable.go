package ast

import (
	"fmt"

	"github.com/mythonlang/mython/internal/object"
)

// VariableValue looks up a dotted identifier chain: the first name in
// the enclosing closure, then each subsequent name as a field of the
// instance found so far (spec.md §4.4). A single-name lookup is the
// len(Names)==1 case of the same loop.
type VariableValue struct {
	Names []string
}

func (v *VariableValue) Execute(env object.Env, ctx object.Context) (object.Holder, error) {
	current, ok := env.Get(v.Names[0])
	if !ok {
		return object.None(), fmt.Errorf("name %q is not defined", v.Names[0])
	}

	for _, name := range v.Names[1:] {
		inst, ok := current.TryInstance()
		if !ok {
			return object.None(), fmt.Errorf("%q has no field %q: not an instance", v.Names[0], name)
		}
		current, ok = inst.Fields().Get(name)
		if !ok {
			return object.None(), fmt.Errorf("instance of %s has no field %q", inst.Class.Name, name)
		}
	}
	return current, nil
}
