package printer_test

import (
	"testing"

	"github.com/mythonlang/mython/internal/ast"
	"github.com/mythonlang/mython/internal/env"
	"github.com/mythonlang/mython/internal/object"
	"github.com/mythonlang/mython/internal/printer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToStringPrimitives(t *testing.T) {
	ctx := object.NewBufferContext()

	cases := []struct {
		h    object.Holder
		want string
	}{
		{object.None(), "None"},
		{object.Own(object.Number(42)), "42"},
		{object.Own(object.Number(-7)), "-7"},
		{object.Own(object.String("hi")), "hi"},
		{object.Own(object.Bool(true)), "True"},
		{object.Own(object.Bool(false)), "False"},
	}
	for _, c := range cases {
		got, err := printer.ToString(c.h, ctx)
		require.NoError(t, err)
		assert.Equal(t, c.want, got)
	}
}

func TestToStringClass(t *testing.T) {
	ctx := object.NewBufferContext()
	cls := object.NewClass("Widget", nil, nil)
	got, err := printer.ToString(object.Own(cls), ctx)
	require.NoError(t, err)
	assert.Equal(t, "Class Widget", got)
}

func TestInstanceWithoutStrPrintsAddress(t *testing.T) {
	ctx := object.NewBufferContext()
	cls := object.NewClass("Plain", nil, nil)
	inst := object.NewInstance(cls, env.New())

	got, err := printer.ToString(object.Share(inst), ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, got)
}

func TestInstanceWithStrDispatchesToDunder(t *testing.T) {
	ctx := object.NewBufferContext()
	body := &ast.MethodBody{Body: &ast.Return{Expr: &ast.StringConst{Value: "hello"}}}
	m := object.Method{Name: "__str__", Body: body}
	cls := object.NewClass("Greeter", []object.Method{m}, nil)
	inst := object.NewInstance(cls, env.New())

	got, err := printer.ToString(object.Share(inst), ctx)
	require.NoError(t, err)
	assert.Equal(t, "hello", got)
}
