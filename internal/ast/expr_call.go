package ast

import (
	"github.com/mythonlang/mython/internal/env"
	"github.com/mythonlang/mython/internal/object"
)

// MethodCall evaluates target; if it is not an instance, the whole
// call is None (spec.md §4.4's lenient rule), otherwise its
// arguments are evaluated left to right and the method is invoked.
type MethodCall struct {
	Target Node
	Method string
	Args   []Node
}

func (m *MethodCall) Execute(env_ object.Env, ctx object.Context) (object.Holder, error) {
	targetVal, err := m.Target.Execute(env_, ctx)
	if err != nil {
		return object.None(), err
	}

	inst, ok := targetVal.TryInstance()
	if !ok {
		return object.None(), nil
	}

	args := make([]object.Holder, len(m.Args))
	for i, argNode := range m.Args {
		v, err := argNode.Execute(env_, ctx)
		if err != nil {
			return object.None(), err
		}
		args[i] = v
	}

	return inst.Call(m.Method, args, ctx)
}

// NewInstance constructs an instance of Class. Class is resolved once,
// at parse time, to a concrete *object.Class — the original
// implementation's NewInstance AST node holds a direct reference to
// its runtime::Class rather than looking the class up by name at
// evaluation time (original_source/mython/statement.cpp), and this
// mirrors that: the parser binds Class when it builds this node.
type NewInstance struct {
	Class *object.Class
	Args  []Node
}

func (n *NewInstance) Execute(env_ object.Env, ctx object.Context) (object.Holder, error) {
	inst := object.NewInstance(n.Class, env.New())

	if inst.HasMethod("__init__", len(n.Args)) {
		args := make([]object.Holder, len(n.Args))
		for i, argNode := range n.Args {
			v, err := argNode.Execute(env_, ctx)
			if err != nil {
				return object.None(), err
			}
			args[i] = v
		}
		if _, err := inst.Call("__init__", args, ctx); err != nil {
			return object.None(), err
		}
	}

	return object.Share(inst), nil
}
