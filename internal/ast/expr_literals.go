package ast

import "github.com/mythonlang/mython/internal/object"

// NumericConst is a literal integer expression.
type NumericConst struct {
	Value int64
}

func (n *NumericConst) Execute(object.Env, object.Context) (object.Holder, error) {
	return object.Own(object.Number(n.Value)), nil
}

// StringConst is a literal string expression.
type StringConst struct {
	Value string
}

func (s *StringConst) Execute(object.Env, object.Context) (object.Holder, error) {
	return object.Own(object.String(s.Value)), nil
}

// BoolConst is a literal True/False expression.
type BoolConst struct {
	Value bool
}

func (b *BoolConst) Execute(object.Env, object.Context) (object.Holder, error) {
	return object.Own(object.Bool(b.Value)), nil
}

// NoneConst is the literal None expression.
type NoneConst struct{}

func (NoneConst) Execute(object.Env, object.Context) (object.Holder, error) {
	return object.None(), nil
}
