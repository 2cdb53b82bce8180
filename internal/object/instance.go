package object

import "fmt"

// Instance is a live Mython object: a reference to its class plus a
// mutable field environment. Fields live in an env.Env (satisfying
// the narrow Env interface in class.go) so field lookup and assignment use
// exactly the same scoping machinery as local variables, matching
// spec.md §4.4's VariableValue chain descending "into its field
// environment" of an instance.
type Instance struct {
	Class  *Class
	fields Env
}

func (*Instance) kind() string { return "Instance" }

// NewInstance allocates an instance of cls with fields as its (empty)
// field environment. Callers pass env.New() here rather than object
// importing internal/env directly, which would invert the leaf
// dependency order spec.md §2 lays out (env sits above object).
func NewInstance(cls *Class, fields Env) *Instance {
	return &Instance{Class: cls, fields: fields}
}

// Fields exposes the instance's field environment, e.g. for
// VariableValue chains and FieldAssignment.
func (i *Instance) Fields() Env {
	return i.fields
}

// HasMethod reports whether the instance's class (or an ancestor)
// defines method name with exactly argCount formal parameters.
func (i *Instance) HasMethod(name string, argCount int) bool {
	m := i.Class.GetMethod(name)
	return m != nil && len(m.FormalParams) == argCount
}

// Call invokes method name on the instance with actualArgs, binding
// self (borrowing, per spec.md §3.4) plus one entry per formal
// parameter into a fresh, unlinked environment (Env.Fresh; it sees
// neither the fields nor any enclosing scope), then executing the body
// there.
func (i *Instance) Call(name string, actualArgs []Holder, ctx Context) (Holder, error) {
	m := i.Class.GetMethod(name)
	if m == nil {
		return None(), fmt.Errorf("class %s has no method %s", i.Class.Name, name)
	}
	if len(m.FormalParams) != len(actualArgs) {
		return None(), fmt.Errorf("%s.%s expects %d argument(s), got %d",
			i.Class.Name, name, len(m.FormalParams), len(actualArgs))
	}

	callEnv := i.fields.Fresh()
	callEnv.Set("self", Share(i))
	for idx, param := range m.FormalParams {
		callEnv.Set(param, actualArgs[idx])
	}
	return m.Body.Execute(callEnv, ctx)
}
