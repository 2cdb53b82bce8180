// Package token defines the lexeme vocabulary of Mython: a small
// tagged union of token kinds, some of which carry a value.
package token

import "fmt"

// Kind identifies which of the 24 token shapes a Token carries.
type Kind int

const (
	Number Kind = iota
	Id
	String
	Char

	Class
	Return
	If
	Else
	Def
	Print
	And
	Or
	Not
	None
	True
	False

	Eq
	NotEq
	LessOrEq
	GreaterOrEq

	Newline
	Indent
	Dedent
	Eof
)

var kindNames = map[Kind]string{
	Number: "Number", Id: "Id", String: "String", Char: "Char",
	Class: "class", Return: "return", If: "if", Else: "else", Def: "def",
	Print: "print", And: "and", Or: "or", Not: "not",
	None: "None", True: "True", False: "False",
	Eq: "==", NotEq: "!=", LessOrEq: "<=", GreaterOrEq: ">=",
	Newline: "Newline", Indent: "Indent", Dedent: "Dedent", Eof: "Eof",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Keywords maps keyword spellings onto their token kind. Identifiers
// that don't appear here lex as Id.
var Keywords = map[string]Kind{
	"class":  Class,
	"return": Return,
	"if":     If,
	"else":   Else,
	"def":    Def,
	"print":  Print,
	"and":    And,
	"or":     Or,
	"not":    Not,
	"None":   None,
	"True":   True,
	"False":  False,
}

// Token is the tagged union itself. Only the field matching Kind is
// meaningful; the rest are zero. This mirrors a C++ std::variant or a
// Lisp-style tagged Data struct with one active field, but flattened
// into scalar fields since Go has no sum types.
type Token struct {
	Kind     Kind
	NumValue int64
	StrValue string // Id or String payload
	ChValue  byte
}

func Num(v int64) Token       { return Token{Kind: Number, NumValue: v} }
func Ident(name string) Token { return Token{Kind: Id, StrValue: name} }
func Str(s string) Token      { return Token{Kind: String, StrValue: s} }
func Ch(c byte) Token         { return Token{Kind: Char, ChValue: c} }
func Simple(k Kind) Token     { return Token{Kind: k} }

// Is reports whether the token has the given kind.
func (t Token) Is(k Kind) bool { return t.Kind == k }

// Equal implements token equality by kind, plus value for valued kinds.
func (t Token) Equal(o Token) bool {
	if t.Kind != o.Kind {
		return false
	}
	switch t.Kind {
	case Number:
		return t.NumValue == o.NumValue
	case Id, String:
		return t.StrValue == o.StrValue
	case Char:
		return t.ChValue == o.ChValue
	default:
		return true
	}
}

func (t Token) String() string {
	switch t.Kind {
	case Number:
		return fmt.Sprintf("Number(%d)", t.NumValue)
	case Id:
		return fmt.Sprintf("Id(%q)", t.StrValue)
	case String:
		return fmt.Sprintf("String(%q)", t.StrValue)
	case Char:
		return fmt.Sprintf("Char(%q)", rune(t.ChValue))
	default:
		return t.Kind.String()
	}
}
