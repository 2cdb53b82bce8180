package parser

import (
	"fmt"

	"github.com/mythonlang/mython/internal/ast"
	"github.com/mythonlang/mython/internal/token"
)

// parseExpr is the grammar's top-level entry point: or-level.
func (p *Parser) parseExpr() (ast.Node, error) {
	return p.parseOr()
}

func (p *Parser) parseOr() (ast.Node, error) {
	lhs, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.cur().Is(token.Or) {
		p.next()
		rhs, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		lhs = &ast.Or{Lhs: lhs, Rhs: rhs}
	}
	return lhs, nil
}

func (p *Parser) parseAnd() (ast.Node, error) {
	lhs, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for p.cur().Is(token.And) {
		p.next()
		rhs, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		lhs = &ast.And{Lhs: lhs, Rhs: rhs}
	}
	return lhs, nil
}

func (p *Parser) parseNot() (ast.Node, error) {
	if p.cur().Is(token.Not) {
		p.next()
		arg, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return &ast.Not{Arg: arg}, nil
	}
	return p.parseComparison()
}

// parseComparison is non-chaining: at most one comparator applies to
// a pair of arithmetic expressions (spec.md §9 decides against
// Python-style chained comparisons).
func (p *Parser) parseComparison() (ast.Node, error) {
	lhs, err := p.parseArith()
	if err != nil {
		return nil, err
	}

	if p.atChar('<') {
		p.next()
		rhs, err := p.parseArith()
		if err != nil {
			return nil, err
		}
		return &ast.Comparison{Op: ast.OpLess, Lhs: lhs, Rhs: rhs}, nil
	}
	if p.atChar('>') {
		p.next()
		rhs, err := p.parseArith()
		if err != nil {
			return nil, err
		}
		return &ast.Comparison{Op: ast.OpGreater, Lhs: lhs, Rhs: rhs}, nil
	}

	op, ok := comparators[p.cur().Kind]
	if !ok {
		return lhs, nil
	}
	p.next()
	rhs, err := p.parseArith()
	if err != nil {
		return nil, err
	}
	return &ast.Comparison{Op: op, Lhs: lhs, Rhs: rhs}, nil
}

var comparators = map[token.Kind]ast.CompareOp{
	token.Eq:          ast.OpEq,
	token.NotEq:       ast.OpNotEq,
	token.LessOrEq:    ast.OpLessOrEq,
	token.GreaterOrEq: ast.OpGreaterOrEq,
}

func (p *Parser) parseArith() (ast.Node, error) {
	lhs, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.atChar('+') || p.atChar('-') {
		plus := p.atChar('+')
		p.next()
		rhs, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if plus {
			lhs = &ast.Add{Lhs: lhs, Rhs: rhs}
		} else {
			lhs = &ast.Sub{Lhs: lhs, Rhs: rhs}
		}
	}
	return lhs, nil
}

func (p *Parser) parseTerm() (ast.Node, error) {
	lhs, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.atChar('*') || p.atChar('/') {
		mult := p.atChar('*')
		p.next()
		rhs, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		if mult {
			lhs = &ast.Mult{Lhs: lhs, Rhs: rhs}
		} else {
			lhs = &ast.Div{Lhs: lhs, Rhs: rhs}
		}
	}
	return lhs, nil
}

// parseUnary desugars a leading '-' into `0 - operand`: the lexer
// never produces a signed number token (spec.md §4.1), and the AST
// has no dedicated negation node, so subtraction from zero stands in,
// same as the reference grammar's unary minus.
func (p *Parser) parseUnary() (ast.Node, error) {
	if p.atChar('-') {
		p.next()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.Sub{Lhs: &ast.NumericConst{Value: 0}, Rhs: operand}, nil
	}
	return p.parsePostfix()
}

// parsePostfix parses a primary expression and then grows it with any
// trailing `.name` / `.name(args)` chain. A pure dotted-name chain
// (no call anywhere in it) becomes a single VariableValue; the moment
// a call appears, everything parsed so far becomes that call's
// Target and the chain continues from the call's result. After a call
// (or any other fully formed primary) only further `.name(args)` calls
// are accepted; a `.name` field access there is a parse error.
func (p *Parser) parsePostfix() (ast.Node, error) {
	node, names, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for p.atChar('.') {
		p.next()
		id, err := p.expectId()
		if err != nil {
			return nil, err
		}

		if p.atChar('(') {
			args, err := p.parseArgs()
			if err != nil {
				return nil, err
			}
			target := node
			if target == nil {
				target = &ast.VariableValue{Names: names}
			}
			node = &ast.MethodCall{Target: target, Method: id, Args: args}
			names = nil
			continue
		}

		if node != nil {
			return nil, fmt.Errorf("parse error: cannot access field %q on a call result", id)
		}
		names = append(names, id)
	}

	if node != nil {
		return node, nil
	}
	return &ast.VariableValue{Names: names}, nil
}

// parsePrimary parses a single atom. It returns either a fully formed
// node (node != nil: a literal, parenthesized expression, str(...),
// or a class instantiation) or the start of a bare identifier chain
// (node == nil, names holding the first name) for parsePostfix to
// grow further.
func (p *Parser) parsePrimary() (node ast.Node, names []string, err error) {
	t := p.cur()
	switch {
	case t.Is(token.Number):
		p.next()
		return &ast.NumericConst{Value: t.NumValue}, nil, nil
	case t.Is(token.String):
		p.next()
		return &ast.StringConst{Value: t.StrValue}, nil, nil
	case t.Is(token.True):
		p.next()
		return &ast.BoolConst{Value: true}, nil, nil
	case t.Is(token.False):
		p.next()
		return &ast.BoolConst{Value: false}, nil, nil
	case t.Is(token.None):
		p.next()
		return &ast.NoneConst{}, nil, nil
	case t.Is(token.Char) && t.ChValue == '(':
		p.next()
		inner, err := p.parseExpr()
		if err != nil {
			return nil, nil, err
		}
		if err := p.expectChar(')'); err != nil {
			return nil, nil, err
		}
		return inner, nil, nil
	case t.Is(token.Id):
		name, err := p.expectId()
		if err != nil {
			return nil, nil, err
		}
		// "str" is not a keyword; a bare call syntax right after it is
		// enough to recognize the builtin (nothing else callable starts
		// this way, since NewInstance requires a known class name).
		if name == "str" && p.atChar('(') {
			p.next() // '('
			arg, err := p.parseExpr()
			if err != nil {
				return nil, nil, err
			}
			if err := p.expectChar(')'); err != nil {
				return nil, nil, err
			}
			return &ast.Stringify{Arg: arg}, nil, nil
		}
		if cls, ok := p.classes[name]; ok && p.atChar('(') {
			args, err := p.parseArgs()
			if err != nil {
				return nil, nil, err
			}
			return &ast.NewInstance{Class: cls, Args: args}, nil, nil
		}
		return nil, []string{name}, nil
	default:
		return nil, nil, fmt.Errorf("parse error: unexpected token %s", t)
	}
}

func (p *Parser) parseArgs() ([]ast.Node, error) {
	if err := p.expectChar('('); err != nil {
		return nil, err
	}
	var args []ast.Node
	if !p.atChar(')') {
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
	if err := p.expectChar(')'); err != nil {
		return nil, err
	}
	return args, nil
}
