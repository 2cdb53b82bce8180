package token_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mythonlang/mython/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqual(t *testing.T) {
	cases := []struct {
		name string
		a, b token.Token
		want bool
	}{
		{"same number", token.Num(3), token.Num(3), true},
		{"different number", token.Num(3), token.Num(4), false},
		{"same ident", token.Ident("x"), token.Ident("x"), true},
		{"different ident", token.Ident("x"), token.Ident("y"), false},
		{"same char", token.Ch('+'), token.Ch('+'), true},
		{"different char", token.Ch('+'), token.Ch('-'), false},
		{"different kind", token.Num(0), token.Simple(token.Eof), false},
		{"simple kinds ignore payload", token.Token{Kind: token.Newline, NumValue: 1}, token.Simple(token.Newline), true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.a.Equal(c.b))
		})
	}
}

func TestKeywords(t *testing.T) {
	kind, ok := token.Keywords["class"]
	require.True(t, ok)
	assert.Equal(t, token.Class, kind)

	_, ok = token.Keywords["notakeyword"]
	assert.False(t, ok)
}

func TestTokenString(t *testing.T) {
	want := []string{"Number(5)", `Id("foo")`, `String("bar")`, "Char('+')", "Newline"}
	var got []string
	for _, tok := range []token.Token{token.Num(5), token.Ident("foo"), token.Str("bar"), token.Ch('+'), token.Simple(token.Newline)} {
		got = append(got, tok.String())
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected diff:\n%s", diff)
	}
}
