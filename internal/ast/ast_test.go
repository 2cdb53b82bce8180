package ast_test

import (
	"testing"

	"github.com/mythonlang/mython/internal/ast"
	"github.com/mythonlang/mython/internal/env"
	"github.com/mythonlang/mython/internal/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArithmeticAndPrint(t *testing.T) {
	ctx := object.NewBufferContext()
	program := &ast.Compound{Stmts: []ast.Node{
		&ast.Print{Args: []ast.Node{
			&ast.Add{Lhs: &ast.NumericConst{Value: 2}, Rhs: &ast.Mult{
				Lhs: &ast.NumericConst{Value: 3}, Rhs: &ast.NumericConst{Value: 4},
			}},
		}},
	}}

	_, err := ast.Run(program, env.New(), ctx)
	require.NoError(t, err)
	assert.Equal(t, "14\n", ctx.String())
}

func TestDivisionByZero(t *testing.T) {
	ctx := object.NewBufferContext()
	program := &ast.Div{Lhs: &ast.NumericConst{Value: 1}, Rhs: &ast.NumericConst{Value: 0}}

	_, err := ast.Run(program, env.New(), ctx)
	assert.Error(t, err)
}

func TestOrShortCircuits(t *testing.T) {
	ctx := object.NewBufferContext()
	// A name reference to an undefined variable errors if evaluated;
	// Or must not evaluate its RHS once the LHS is truthy.
	program := &ast.Or{Lhs: &ast.BoolConst{Value: true}, Rhs: &ast.VariableValue{Names: []string{"undefined"}}}

	v, err := ast.Run(program, env.New(), ctx)
	require.NoError(t, err)
	b, _ := v.TryBool()
	assert.True(t, bool(b))
}

func TestAndEvaluatesBothOperandsUnconditionally(t *testing.T) {
	ctx := object.NewBufferContext()
	program := &ast.And{Lhs: &ast.BoolConst{Value: false}, Rhs: &ast.VariableValue{Names: []string{"undefined"}}}

	_, err := ast.Run(program, env.New(), ctx)
	assert.Error(t, err, "And must still evaluate its RHS even when the LHS is already falsy")
}

func TestReturnOutsideMethodBodyIsAnError(t *testing.T) {
	ctx := object.NewBufferContext()
	program := &ast.Return{Expr: &ast.NumericConst{Value: 1}}

	_, err := ast.Run(program, env.New(), ctx)
	assert.Error(t, err)
}

func TestReturnInsideMethodBodyShortCircuits(t *testing.T) {
	ctx := object.NewBufferContext()
	body := &ast.MethodBody{Body: &ast.Compound{Stmts: []ast.Node{
		&ast.Return{Expr: &ast.NumericConst{Value: 1}},
		&ast.Print{Args: []ast.Node{&ast.NumericConst{Value: 999}}}, // unreachable
	}}}
	cls := object.NewClass("C", []object.Method{{Name: "m", Body: body}}, nil)
	inst := object.NewInstance(cls, env.New())

	result, err := inst.Call("m", nil, ctx)
	require.NoError(t, err)
	n, _ := result.TryNumber()
	assert.Equal(t, object.Number(1), n)
	assert.Empty(t, ctx.String(), "the statement after return must never execute")
}

func TestCounterReferenceSemantics(t *testing.T) {
	ctx := object.NewBufferContext()
	incBody := &ast.MethodBody{Body: &ast.Compound{Stmts: []ast.Node{
		&ast.FieldAssignment{
			Target: &ast.VariableValue{Names: []string{"self"}},
			Field:  "value",
			Rhs: &ast.Add{
				Lhs: &ast.VariableValue{Names: []string{"self", "value"}},
				Rhs: &ast.NumericConst{Value: 1},
			},
		},
		&ast.Return{Expr: &ast.VariableValue{Names: []string{"self", "value"}}},
	}}}
	initMethod := &ast.MethodBody{Body: &ast.FieldAssignment{
		Target: &ast.VariableValue{Names: []string{"self"}},
		Field:  "value",
		Rhs:    &ast.NumericConst{Value: 0},
	}}

	cls := object.NewClass("Counter", []object.Method{
		{Name: "__init__", Body: initMethod},
		{Name: "increment", Body: incBody},
	}, nil)

	program := &ast.Compound{Stmts: []ast.Node{
		&ast.ClassDefinition{Class: cls},
		&ast.Assignment{Name: "c", Rhs: &ast.NewInstance{Class: cls}},
		&ast.Print{Args: []ast.Node{&ast.MethodCall{Target: &ast.VariableValue{Names: []string{"c"}}, Method: "increment"}}},
		&ast.Assignment{Name: "d", Rhs: &ast.VariableValue{Names: []string{"c"}}},
		&ast.Print{Args: []ast.Node{&ast.MethodCall{Target: &ast.VariableValue{Names: []string{"d"}}, Method: "increment"}}},
		&ast.Print{Args: []ast.Node{&ast.VariableValue{Names: []string{"c", "value"}}}},
	}}

	_, err := ast.Run(program, env.New(), ctx)
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n2\n", ctx.String(), "c and d must alias the same instance")
}

func TestFieldAssignmentOnNonInstanceIsANoOp(t *testing.T) {
	ctx := object.NewBufferContext()
	program := &ast.FieldAssignment{
		Target: &ast.NumericConst{Value: 1},
		Field:  "x",
		Rhs:    &ast.NumericConst{Value: 2},
	}
	result, err := ast.Run(program, env.New(), ctx)
	require.NoError(t, err)
	assert.True(t, result.IsNone())
}
