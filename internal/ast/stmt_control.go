package ast

import "github.com/mythonlang/mython/internal/object"

// Compound executes a sequence of statements in order and returns
// None. A Return inside propagates out unhandled — Compound does not
// catch returnSignal (spec.md §4.4).
type Compound struct {
	Stmts []Node
}

func (c *Compound) Execute(env object.Env, ctx object.Context) (object.Holder, error) {
	for _, stmt := range c.Stmts {
		if _, err := stmt.Execute(env, ctx); err != nil {
			return object.None(), err
		}
	}
	return object.None(), nil
}

// IfElse executes Then if Cond is truthy, else Else (if present),
// returning the executed branch's value.
type IfElse struct {
	Cond Node
	Then Node
	Else Node // nil if there's no else-branch
}

func (i *IfElse) Execute(env object.Env, ctx object.Context) (object.Holder, error) {
	cv, err := i.Cond.Execute(env, ctx)
	if err != nil {
		return object.None(), err
	}
	if object.IsTrue(cv) {
		return i.Then.Execute(env, ctx)
	}
	if i.Else != nil {
		return i.Else.Execute(env, ctx)
	}
	return object.None(), nil
}
