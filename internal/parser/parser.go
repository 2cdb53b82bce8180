// Package parser is the external collaborator spec.md §1 calls out
// as out of scope for the interpreter core: a mechanical LL parser
// turning internal/lexer's token stream into the internal/ast nodes
// spec.md §3.5 defines the shapes of. It is included here, kept as
// thin as the implied grammar allows, so the module runs end to end.
package parser

import (
	"fmt"

	"github.com/mythonlang/mython/internal/ast"
	"github.com/mythonlang/mython/internal/lexer"
	"github.com/mythonlang/mython/internal/object"
	"github.com/mythonlang/mython/internal/token"
)

// Parser walks a lexer's token stream one token at a time, with no
// backtracking: every production either fully commits after looking
// at the current token, or (for the postfix/call grammar) grows a
// node incrementally as more of the chain appears.
type Parser struct {
	lx      *lexer.Lexer
	classes map[string]*object.Class
}

// New wraps an already-tokenized Lexer.
func New(lx *lexer.Lexer) *Parser {
	return &Parser{lx: lx, classes: make(map[string]*object.Class)}
}

// Parse tokenizes and parses src into a top-level program.
func Parse(src string) (*ast.Compound, error) {
	lx, err := lexer.New(src)
	if err != nil {
		return nil, err
	}
	return New(lx).ParseProgram()
}

func (p *Parser) cur() token.Token  { return p.lx.Current() }
func (p *Parser) next() token.Token { return p.lx.Next() }

// ParseProgram parses the whole token stream as a sequence of
// top-level statements, terminated by Eof.
func (p *Parser) ParseProgram() (*ast.Compound, error) {
	var stmts []ast.Node
	for !p.cur().Is(token.Eof) {
		p.skipBlankNewlines()
		if p.cur().Is(token.Eof) {
			break
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return &ast.Compound{Stmts: stmts}, nil
}

func (p *Parser) skipBlankNewlines() {
	for p.cur().Is(token.Newline) {
		p.next()
	}
}

func (p *Parser) expectNewlineOrEof() error {
	if p.cur().Is(token.Eof) {
		return nil
	}
	if _, err := p.expect(token.Newline); err != nil {
		return err
	}
	p.next()
	return nil
}

// expect, expectId and expectChar delegate to the lexer's own
// Expect/ExpectValue contract (spec.md §6.1's "current/next/expect<K>"
// interface) rather than re-deriving the same checks against
// lx.Current() directly.
func (p *Parser) expect(k token.Kind) (token.Token, error) {
	return p.lx.Expect(k)
}

func (p *Parser) expectId() (string, error) {
	t, err := p.lx.Expect(token.Id)
	if err != nil {
		return "", err
	}
	p.next()
	return t.StrValue, nil
}

func (p *Parser) expectChar(c byte) error {
	if err := p.lx.ExpectValue(token.Ch(c)); err != nil {
		return err
	}
	p.next()
	return nil
}

// expectSuiteHeader consumes the ':' Newline Indent that opens every
// suite (if/else/class/def bodies). The Newline and Indent checks are
// fused with their own advance via the lexer's ExpectNextValue/
// ExpectNext, the "advance then expect" half of the same contract.
func (p *Parser) expectSuiteHeader() error {
	if err := p.lx.ExpectValue(token.Ch(':')); err != nil {
		return err
	}
	if err := p.lx.ExpectNextValue(token.Simple(token.Newline)); err != nil {
		return err
	}
	if _, err := p.lx.ExpectNext(token.Indent); err != nil {
		return err
	}
	p.next()
	return nil
}

func (p *Parser) atChar(c byte) bool {
	t := p.cur()
	return t.Is(token.Char) && t.ChValue == c
}

// parseStatement dispatches on the current token's kind.
func (p *Parser) parseStatement() (ast.Node, error) {
	switch p.cur().Kind {
	case token.Class:
		return p.parseClassDef()
	case token.If:
		return p.parseIf()
	case token.Return:
		return p.parseReturnStmt()
	case token.Print:
		return p.parsePrintStmt()
	default:
		return p.parseSimpleOrExprStatement()
	}
}

// parseSuite parses ':' Newline Indent stmt+ Dedent, the block form
// used after if/else/class/def headers.
func (p *Parser) parseSuite() ([]ast.Node, error) {
	if err := p.expectSuiteHeader(); err != nil {
		return nil, err
	}

	var stmts []ast.Node
	for {
		p.skipBlankNewlines()
		if p.cur().Is(token.Dedent) {
			p.next()
			return stmts, nil
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
}

func (p *Parser) parseIf() (ast.Node, error) {
	p.next() // consume 'if'
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	thenStmts, err := p.parseSuite()
	if err != nil {
		return nil, err
	}

	node := &ast.IfElse{Cond: cond, Then: &ast.Compound{Stmts: thenStmts}}

	if p.cur().Is(token.Else) {
		p.next()
		elseStmts, err := p.parseSuite()
		if err != nil {
			return nil, err
		}
		node.Else = &ast.Compound{Stmts: elseStmts}
	}
	return node, nil
}

func (p *Parser) parseReturnStmt() (ast.Node, error) {
	p.next() // consume 'return'
	if p.cur().Is(token.Newline) || p.cur().Is(token.Eof) {
		if err := p.expectNewlineOrEof(); err != nil {
			return nil, err
		}
		return &ast.Return{}, nil
	}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if err := p.expectNewlineOrEof(); err != nil {
		return nil, err
	}
	return &ast.Return{Expr: expr}, nil
}

func (p *Parser) parsePrintStmt() (ast.Node, error) {
	p.next() // consume 'print'
	var args []ast.Node
	if !p.cur().Is(token.Newline) && !p.cur().Is(token.Eof) {
		for {
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.atChar(',') {
				p.next()
				continue
			}
			break
		}
	}
	if err := p.expectNewlineOrEof(); err != nil {
		return nil, err
	}
	return &ast.Print{Args: args}, nil
}

// parseSimpleOrExprStatement handles `name(.name)* = expr`,
// `name.field(.field)* = expr`, and bare expression statements (a
// method call used only for its side effect).
func (p *Parser) parseSimpleOrExprStatement() (ast.Node, error) {
	expr, err := p.parsePostfix()
	if err != nil {
		return nil, err
	}

	if p.atChar('=') {
		p.next()
		rhs, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expectNewlineOrEof(); err != nil {
			return nil, err
		}

		vv, ok := expr.(*ast.VariableValue)
		if !ok {
			return nil, fmt.Errorf("parse error: invalid assignment target")
		}
		if len(vv.Names) == 1 {
			return &ast.Assignment{Name: vv.Names[0], Rhs: rhs}, nil
		}
		return &ast.FieldAssignment{
			Target: &ast.VariableValue{Names: vv.Names[:len(vv.Names)-1]},
			Field:  vv.Names[len(vv.Names)-1],
			Rhs:    rhs,
		}, nil
	}

	if err := p.expectNewlineOrEof(); err != nil {
		return nil, err
	}
	return expr, nil
}

func (p *Parser) parseClassDef() (ast.Node, error) {
	p.next() // consume 'class'
	name, err := p.expectId()
	if err != nil {
		return nil, err
	}

	var parent *object.Class
	if p.atChar('(') {
		p.next()
		parentName, err := p.expectId()
		if err != nil {
			return nil, err
		}
		parent = p.classes[parentName]
		if parent == nil {
			return nil, fmt.Errorf("parse error: unknown base class %q", parentName)
		}
		if err := p.expectChar(')'); err != nil {
			return nil, err
		}
	}

	if err := p.expectSuiteHeader(); err != nil {
		return nil, err
	}

	// Register the class before parsing its methods so recursive /
	// self-referential construction inside its own bodies resolves.
	cls := object.NewClass(name, nil, parent)
	p.classes[name] = cls

	var methods []object.Method
	for {
		p.skipBlankNewlines()
		if p.cur().Is(token.Dedent) {
			p.next()
			break
		}
		m, err := p.parseMethodDef()
		if err != nil {
			return nil, err
		}
		methods = append(methods, m)
	}

	*cls = *object.NewClass(name, methods, parent)
	return &ast.ClassDefinition{Class: cls}, nil
}

func (p *Parser) parseMethodDef() (object.Method, error) {
	if _, err := p.expect(token.Def); err != nil {
		return object.Method{}, err
	}
	p.next()
	name, err := p.expectId()
	if err != nil {
		return object.Method{}, err
	}
	if err := p.expectChar('('); err != nil {
		return object.Method{}, err
	}

	var params []string
	if !p.atChar(')') {
		for {
			param, err := p.expectId()
			if err != nil {
				return object.Method{}, err
			}
			params = append(params, param)
			if p.atChar(',') {
				p.next()
				continue
			}
			break
		}
	}
	if err := p.expectChar(')'); err != nil {
		return object.Method{}, err
	}

	// Every instance method takes self explicitly in the source, but
	// object.Instance.Call binds self itself and matches FormalParams
	// one-to-one against the caller's actual arguments, neither of
	// which ever includes self (object.Instance.Call, ast.NewInstance).
	if len(params) == 0 || params[0] != "self" {
		return object.Method{}, fmt.Errorf("parse error: method %q must take self as its first parameter", name)
	}
	params = params[1:]

	bodyStmts, err := p.parseSuite()
	if err != nil {
		return object.Method{}, err
	}

	return object.Method{
		Name:         name,
		FormalParams: params,
		Body:         &ast.MethodBody{Body: &ast.Compound{Stmts: bodyStmts}},
	}, nil
}
