package parser_test

import (
	"testing"

	"github.com/mythonlang/mython/internal/ast"
	"github.com/mythonlang/mython/internal/env"
	"github.com/mythonlang/mython/internal/object"
	"github.com/mythonlang/mython/internal/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runSource(t *testing.T, src string) string {
	t.Helper()
	program, err := parser.Parse(src)
	require.NoError(t, err, "parse error for:\n%s", src)

	ctx := object.NewBufferContext()
	_, err = ast.Run(program, env.New(), ctx)
	require.NoError(t, err, "runtime error for:\n%s", src)
	return ctx.String()
}

func TestArithmeticPrecedence(t *testing.T) {
	assert.Equal(t, "14\n", runSource(t, "print 2 + 3 * 4\n"))
	assert.Equal(t, "20\n", runSource(t, "print (2 + 3) * 4\n"))
	assert.Equal(t, "3\n", runSource(t, "print 7 / 2\n"))
}

func TestUnaryMinusDesugarsToSubtraction(t *testing.T) {
	assert.Equal(t, "-5\n", runSource(t, "print -5\n"))
	assert.Equal(t, "2\n", runSource(t, "print 5 + -3\n"))
}

func TestComparisonsAndBooleanOps(t *testing.T) {
	assert.Equal(t, "True True False\n", runSource(t, "print 1 == 1, 1 < 2, 2 > 3\n"))
	assert.Equal(t, "True\n", runSource(t, "print True or False\n"))
	assert.Equal(t, "False\n", runSource(t, "print True and False\n"))
	assert.Equal(t, "False\n", runSource(t, "print not True\n"))
}

func TestPrintWithNoArgsIsABareNewline(t *testing.T) {
	assert.Equal(t, "1\n\nNone\n", runSource(t, "print 1\nprint\nprint None\n"))
}

func TestIfElse(t *testing.T) {
	src := "x = 5\nif x > 3:\n  print \"big\"\nelse:\n  print \"small\"\n"
	assert.Equal(t, "big\n", runSource(t, src))
}

func TestClassAndMethodCall(t *testing.T) {
	src := "class Counter:\n" +
		"  def __init__(self):\n" +
		"    self.value = 0\n" +
		"  def increment(self):\n" +
		"    self.value = self.value + 1\n" +
		"    return self.value\n" +
		"\n" +
		"c = Counter()\n" +
		"print c.increment()\n" +
		"print c.increment()\n"
	assert.Equal(t, "1\n2\n", runSource(t, src))
}

func TestSingleInheritance(t *testing.T) {
	src := "class Animal:\n" +
		"  def speak(self):\n" +
		"    return \"...\"\n" +
		"\n" +
		"class Dog(Animal):\n" +
		"  def bark(self):\n" +
		"    return \"woof\"\n" +
		"\n" +
		"d = Dog()\n" +
		"print d.speak()\n" +
		"print d.bark()\n"
	assert.Equal(t, "...\nwoof\n", runSource(t, src))
}

func TestStrBuiltin(t *testing.T) {
	assert.Equal(t, "5\n", runSource(t, "print str(5)\n"))
	assert.Equal(t, "None\n", runSource(t, "print str(None)\n"))
}

func TestFieldAssignmentAcrossTypes(t *testing.T) {
	src := "class Holder:\n" +
		"  def __init__(self):\n" +
		"    self.v = 1\n" +
		"\n" +
		"h = Holder()\n" +
		"print h.v\n" +
		"h.v = \"text\"\n" +
		"print h.v\n"
	assert.Equal(t, "1\ntext\n", runSource(t, src))
}

func TestInvalidAssignmentTargetIsAParseError(t *testing.T) {
	_, err := parser.Parse("1 + 1 = 2\n")
	assert.Error(t, err)
}
