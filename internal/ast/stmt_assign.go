package ast

import "github.com/mythonlang/mython/internal/object"

// Assignment evaluates Rhs and binds it in the current closure under
// Name (inserting or overwriting), returning the bound value.
type Assignment struct {
	Name string
	Rhs  Node
}

func (a *Assignment) Execute(env object.Env, ctx object.Context) (object.Holder, error) {
	v, err := a.Rhs.Execute(env, ctx)
	if err != nil {
		return object.None(), err
	}
	env.Set(a.Name, v)
	return v, nil
}

// FieldAssignment evaluates Target (which must yield an instance,
// e.g. a VariableValue chain for `a.b` in `a.b.c = 1`), then Rhs, and
// sets Field on that instance. If Target is not an instance the
// assignment is silently a no-op returning None — spec.md §4.4 and §9
// note this lenient behavior is inherited from the source material
// rather than being an oversight to fix.
type FieldAssignment struct {
	Target Node
	Field  string
	Rhs    Node
}

func (f *FieldAssignment) Execute(env object.Env, ctx object.Context) (object.Holder, error) {
	targetVal, err := f.Target.Execute(env, ctx)
	if err != nil {
		return object.None(), err
	}

	inst, ok := targetVal.TryInstance()
	if !ok {
		return object.None(), nil
	}

	v, err := f.Rhs.Execute(env, ctx)
	if err != nil {
		return object.None(), err
	}
	inst.Fields().Set(f.Field, v)
	return v, nil
}
