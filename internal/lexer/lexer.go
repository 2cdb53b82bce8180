// Package lexer turns Mython source bytes into a token stream,
// eagerly and in one pass, synthesizing Indent/Dedent tokens from
// leading-space runs the way spec.md §4.1 describes.
//
// Grounded on the teacher's reader.go tokenizer (a single switch over
// the next byte, building up a flat slice of lexemes) and on
// original_source/mython/lexer.cpp for the indentation/string/number
// edge cases the distilled spec leaves implicit.
package lexer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mythonlang/mython/internal/token"
)

const spacesPerIndent = 2

// Error is a fatal lexing failure (spec.md §4.1 "Error conditions").
type Error struct {
	msg string
}

func (e *Error) Error() string { return e.msg }

func newError(format string, args ...any) *Error {
	return &Error{msg: fmt.Sprintf(format, args...)}
}

// Lexer consumes a whole source string at construction time and
// exposes a cursor over the resulting token slice.
type Lexer struct {
	tokens []token.Token
	pos    int
}

// New tokenizes src in full and returns a Lexer positioned at the
// first token, or a *Error if src is malformed.
func New(src string) (*Lexer, error) {
	toks, err := tokenize(src)
	if err != nil {
		return nil, err
	}
	return &Lexer{tokens: toks}, nil
}

// Current returns the token the cursor is on.
func (l *Lexer) Current() token.Token {
	return l.tokens[l.pos]
}

// Next advances the cursor and returns the new current token.
// Advancing past Eof is idempotent.
func (l *Lexer) Next() token.Token {
	if l.pos < len(l.tokens)-1 {
		l.pos++
	}
	return l.Current()
}

// Expect fails unless the current token has kind k, returning it.
func (l *Lexer) Expect(k token.Kind) (token.Token, error) {
	cur := l.Current()
	if !cur.Is(k) {
		return token.Token{}, newError("expected %s, got %s", k, cur)
	}
	return cur, nil
}

// ExpectValue fails unless the current token equals want exactly
// (kind and value).
func (l *Lexer) ExpectValue(want token.Token) error {
	if !l.Current().Equal(want) {
		return newError("expected %s, got %s", want, l.Current())
	}
	return nil
}

// ExpectNext advances then behaves like Expect.
func (l *Lexer) ExpectNext(k token.Kind) (token.Token, error) {
	l.Next()
	return l.Expect(k)
}

// ExpectNextValue advances then behaves like ExpectValue.
func (l *Lexer) ExpectNextValue(want token.Token) error {
	l.Next()
	return l.ExpectValue(want)
}

// Tokens exposes the full underlying slice, mainly for --trace
// diagnostics and tests.
func (l *Lexer) Tokens() []token.Token {
	return l.tokens
}

type scanner struct {
	src        string
	pos        int
	indent     int
	tokens     []token.Token
	atLineHead bool
}

func tokenize(src string) ([]token.Token, error) {
	s := &scanner{src: src, atLineHead: true}
	for s.pos < len(s.src) {
		if s.atLineHead {
			done, err := s.handleIndent()
			if err != nil {
				return nil, err
			}
			if done {
				continue
			}
			s.atLineHead = false
		}

		c := s.src[s.pos]
		switch {
		case c == ' ':
			s.pos++
		case c == '\n':
			s.emitNewline()
			s.pos++
			s.atLineHead = true
		case c == '#':
			s.skipComment()
		case c == '\'' || c == '"':
			if err := s.scanString(c); err != nil {
				return nil, err
			}
		case isIdentStart(c):
			s.scanIdentOrKeyword()
		case isDigit(c):
			if err := s.scanNumber(); err != nil {
				return nil, err
			}
		default:
			if err := s.scanOperatorOrChar(); err != nil {
				return nil, err
			}
		}
	}

	return s.finalize()
}

// handleIndent processes leading spaces at the start of a line and
// clears atLineHead. It always returns done=true: the outer loop then
// continues and tokenizes the rest of the line (or the blank line's
// newline) normally on its next iteration.
func (s *scanner) handleIndent() (bool, error) {
	spaces := 0
	for s.pos < len(s.src) && s.src[s.pos] == ' ' {
		spaces++
		s.pos++
	}

	if s.pos >= len(s.src) {
		// Trailing spaces with nothing after them: treat as blank tail.
		s.atLineHead = false
		return true, nil
	}

	if s.src[s.pos] == '\n' {
		// Blank line: indentation level is left unchanged, and the
		// newline itself still needs tokenizing normally.
		s.atLineHead = false
		return true, nil
	}

	level := (spaces + spacesPerIndent - 1) / spacesPerIndent // ceil(spaces/2)

	if level > s.indent {
		for i := 0; i < level-s.indent; i++ {
			s.tokens = append(s.tokens, token.Simple(token.Indent))
		}
	} else if level < s.indent {
		for i := 0; i < s.indent-level; i++ {
			s.tokens = append(s.tokens, token.Simple(token.Dedent))
		}
	}
	s.indent = level
	s.atLineHead = false
	return true, nil
}

func (s *scanner) emitNewline() {
	if len(s.tokens) > 0 && s.tokens[len(s.tokens)-1].Is(token.Newline) {
		return
	}
	s.tokens = append(s.tokens, token.Simple(token.Newline))
}

func (s *scanner) skipComment() {
	for s.pos < len(s.src) && s.src[s.pos] != '\n' {
		s.pos++
	}
}

var escapes = map[byte]byte{
	'n': '\n', 't': '\t', 'r': '\r', '"': '"', '\'': '\'', '\\': '\\',
}

func (s *scanner) scanString(quote byte) error {
	s.pos++ // opening quote
	var b strings.Builder
	for {
		if s.pos >= len(s.src) {
			return newError("unterminated string literal")
		}
		c := s.src[s.pos]
		if c == quote {
			s.pos++
			s.tokens = append(s.tokens, token.Str(b.String()))
			return nil
		}
		if c == '\n' || c == '\r' {
			return newError("raw newline inside string literal")
		}
		if c == '\\' {
			s.pos++
			if s.pos >= len(s.src) {
				return newError("unterminated string literal")
			}
			esc, ok := escapes[s.src[s.pos]]
			if !ok {
				return newError("unknown escape sequence '\\%c'", s.src[s.pos])
			}
			b.WriteByte(esc)
			s.pos++
			continue
		}
		b.WriteByte(c)
		s.pos++
	}
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentCont(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func (s *scanner) scanIdentOrKeyword() {
	start := s.pos
	for s.pos < len(s.src) && isIdentCont(s.src[s.pos]) {
		s.pos++
	}
	text := s.src[start:s.pos]
	if kind, ok := token.Keywords[text]; ok {
		s.tokens = append(s.tokens, token.Simple(kind))
		return
	}
	s.tokens = append(s.tokens, token.Ident(text))
}

func (s *scanner) scanNumber() error {
	start := s.pos
	for s.pos < len(s.src) && isDigit(s.src[s.pos]) {
		s.pos++
	}
	text := s.src[start:s.pos]
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return newError("malformed number literal %q: %v", text, err)
	}
	s.tokens = append(s.tokens, token.Num(n))
	return nil
}

var twoCharOps = map[byte]struct {
	second byte
	kind   token.Kind
}{
	'=': {'=', token.Eq},
	'!': {'=', token.NotEq},
	'<': {'=', token.LessOrEq},
	'>': {'=', token.GreaterOrEq},
}

func (s *scanner) scanOperatorOrChar() error {
	c := s.src[s.pos]
	if op, ok := twoCharOps[c]; ok && s.pos+1 < len(s.src) && s.src[s.pos+1] == op.second {
		s.tokens = append(s.tokens, token.Simple(op.kind))
		s.pos += 2
		return nil
	}
	s.tokens = append(s.tokens, token.Ch(c))
	s.pos++
	return nil
}

func (s *scanner) finalize() ([]token.Token, error) {
	if len(s.tokens) > 0 && !s.tokens[len(s.tokens)-1].Is(token.Newline) {
		s.tokens = append(s.tokens, token.Simple(token.Newline))
	}
	for i := 0; i < s.indent; i++ {
		s.tokens = append(s.tokens, token.Simple(token.Dedent))
	}
	s.tokens = append(s.tokens, token.Simple(token.Eof))
	return s.tokens, nil
}
