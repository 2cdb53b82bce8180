package ast

import (
	"fmt"

	"github.com/mythonlang/mython/internal/object"
)

// CompareOp identifies which of the six comparators a Comparison node
// applies.
type CompareOp int

const (
	OpEq CompareOp = iota
	OpNotEq
	OpLess
	OpGreater
	OpLessOrEq
	OpGreaterOrEq
)

// Comparison evaluates Lhs and Rhs and applies Op via the
// object package's dunder-aware comparators (spec.md §4.3/§4.4),
// wrapping the bool result in a Bool.
type Comparison struct {
	Op       CompareOp
	Lhs, Rhs Node
}

func (c *Comparison) Execute(env object.Env, ctx object.Context) (object.Holder, error) {
	lv, rv, err := evalPair(c.Lhs, c.Rhs, env, ctx)
	if err != nil {
		return object.None(), err
	}

	var result bool
	switch c.Op {
	case OpEq:
		result, err = object.Equal(lv, rv, ctx)
	case OpNotEq:
		result, err = object.NotEqual(lv, rv, ctx)
	case OpLess:
		result, err = object.Less(lv, rv, ctx)
	case OpGreater:
		result, err = object.Greater(lv, rv, ctx)
	case OpLessOrEq:
		result, err = object.LessOrEqual(lv, rv, ctx)
	case OpGreaterOrEq:
		result, err = object.GreaterOrEqual(lv, rv, ctx)
	default:
		return object.None(), fmt.Errorf("unknown comparator %d", c.Op)
	}
	if err != nil {
		return object.None(), err
	}
	return object.Own(object.Bool(result)), nil
}
