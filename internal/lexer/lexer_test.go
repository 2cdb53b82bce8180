package lexer_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mythonlang/mython/internal/lexer"
	"github.com/mythonlang/mython/internal/token"
	"github.com/stretchr/testify/require"
)

func tokenize(t *testing.T, src string) []token.Token {
	t.Helper()
	lx, err := lexer.New(src)
	require.NoError(t, err)
	return lx.Tokens()
}

func TestIndentDedentBalance(t *testing.T) {
	src := "if True:\n  print 1\n  if True:\n    print 2\nprint 3\n"
	toks := tokenize(t, src)

	indents, dedents := 0, 0
	for _, tok := range toks {
		switch tok.Kind {
		case token.Indent:
			indents++
		case token.Dedent:
			dedents++
		}
	}
	require.Equal(t, indents, dedents, "every Indent must be balanced by a Dedent")

	want := []token.Token{
		token.Simple(token.If), token.Simple(token.True), token.Ch(':'), token.Simple(token.Newline),
		token.Simple(token.Indent),
		token.Simple(token.Print), token.Num(1), token.Simple(token.Newline),
		token.Simple(token.If), token.Simple(token.True), token.Ch(':'), token.Simple(token.Newline),
		token.Simple(token.Indent),
		token.Simple(token.Print), token.Num(2), token.Simple(token.Newline),
		token.Simple(token.Dedent), token.Simple(token.Dedent),
		token.Simple(token.Print), token.Num(3), token.Simple(token.Newline),
		token.Simple(token.Eof),
	}
	if diff := cmp.Diff(want, toks); diff != "" {
		t.Errorf("unexpected token stream:\n%s", diff)
	}
}

func TestBlankLinesDoNotEmitExtraNewlines(t *testing.T) {
	toks := tokenize(t, "print 1\n\n\nprint 2\n")
	var newlines int
	for _, tok := range toks {
		if tok.Is(token.Newline) {
			newlines++
		}
	}
	require.Equal(t, 2, newlines)
}

func TestStringEscapes(t *testing.T) {
	toks := tokenize(t, `print "a\nb\tc\"d"`+"\n")
	require.True(t, toks[1].Is(token.String))
	require.Equal(t, "a\nb\tc\"d", toks[1].StrValue)
}

func TestSingleQuotedString(t *testing.T) {
	toks := tokenize(t, "print 'hello'\n")
	require.True(t, toks[1].Is(token.String))
	require.Equal(t, "hello", toks[1].StrValue)
}

func TestUnterminatedStringIsAnError(t *testing.T) {
	_, err := lexer.New("print \"unterminated\n")
	require.Error(t, err)
}

func TestComments(t *testing.T) {
	toks := tokenize(t, "print 1 # trailing comment\nprint 2\n")
	var nums []int64
	for _, tok := range toks {
		if tok.Is(token.Number) {
			nums = append(nums, tok.NumValue)
		}
	}
	require.Equal(t, []int64{1, 2}, nums)
}

func TestTwoCharOperators(t *testing.T) {
	toks := tokenize(t, "a == b != c <= d >= e\n")
	var kinds []token.Kind
	for _, tok := range toks {
		kinds = append(kinds, tok.Kind)
	}
	require.Contains(t, kinds, token.Eq)
	require.Contains(t, kinds, token.NotEq)
	require.Contains(t, kinds, token.LessOrEq)
	require.Contains(t, kinds, token.GreaterOrEq)
}

func TestExpectMethods(t *testing.T) {
	lx, err := lexer.New("print 1\n")
	require.NoError(t, err)

	got, err := lx.Expect(token.Print)
	require.NoError(t, err)
	require.True(t, got.Is(token.Print))
	_, err = lx.Expect(token.Number)
	require.Error(t, err)

	got, err = lx.ExpectNext(token.Number)
	require.NoError(t, err)
	require.Equal(t, int64(1), got.NumValue)

	require.NoError(t, lx.ExpectNextValue(token.Simple(token.Newline)))
	require.Error(t, lx.ExpectValue(token.Simple(token.Eof)))
}

func TestFinalizeAddsTrailingNewlineAndEof(t *testing.T) {
	toks := tokenize(t, "print 1")
	last := toks[len(toks)-1]
	require.True(t, last.Is(token.Eof))
	require.True(t, toks[len(toks)-2].Is(token.Newline))
}
