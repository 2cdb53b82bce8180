// Package ast defines the Mython abstract syntax tree: the
// statement/expression node types of spec.md §3.5, each implementing
// the one Execute contract spec.md §3.5 and §4.4 describe.
//
// Grounded on original_source/mython/statement.cpp, whose Statement
// subclasses (Assignment, FieldAssignment, Print, IfElse, ...) are
// each one Execute override; Go has no virtual-dispatch base class,
// so the same shape becomes one Node interface with one struct per
// variant, the way the Lox-family interpreters in the retrieved
// pack's other_examples/ (e.g. havrydotdev-golox) structure an
// Expr/Stmt tree.
package ast

import "github.com/mythonlang/mython/internal/object"

// Node is the one contract every statement and expression node
// implements: run against env, write any side effects to ctx's
// output stream, and produce a value (statements conventionally
// produce None).
type Node interface {
	Execute(env object.Env, ctx object.Context) (object.Holder, error)
}
