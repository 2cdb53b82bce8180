package ast

import "github.com/mythonlang/mython/internal/object"

// MethodBody wraps a method's Compound body so that a Return anywhere
// inside it (at any nesting depth) is caught here and turned into the
// call's result; falling off the end without returning yields None
// (spec.md §4.4/§4.6). This is the sole Return handler in the whole
// evaluator — every object.Method's Body is a *MethodBody.
type MethodBody struct {
	Body Node
}

func (m *MethodBody) Execute(env object.Env, ctx object.Context) (result object.Holder, err error) {
	defer catchReturn(&result, &err)
	return m.Body.Execute(env, ctx)
}

// ClassDefinition binds Class into the enclosing closure under its
// own name. It can appear anywhere a statement can, not only at top
// level (spec.md is silent on this; original_source's grammar places
// no such restriction either).
type ClassDefinition struct {
	Class *object.Class
}

func (c *ClassDefinition) Execute(env object.Env, ctx object.Context) (object.Holder, error) {
	env.Set(c.Class.Name, object.Own(c.Class))
	return object.None(), nil
}
