package lisp

import (
	"fmt"
	"strconv"
)

type parseError struct {
	pos Position
	msg string
}

func (e *parseError) Error() string {
	return fmt.Sprintf("parse error at %d:%d: %s", e.pos.Line, e.pos.Column, e.msg)
}

type parser struct {
	l    *lexer
	tree *Tree

	curToken  Token
	peekToken Token

	errors []error
}

func newParser(input string, tree *Tree) *parser {
	p := &parser{l: newLexer(input), tree: tree}

	p.nextToken()
	p.nextToken()

	return p
}

func (p *parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

// ParseProgram parses every top-level expression, chaining them in source
// order. A quit expression stops parsing and marks the program.
func (p *parser) ParseProgram() *Program {
	program := &Program{tree: p.tree}

	var exprs []*Node
	for p.curToken.Type != tokenEOF {
		if p.curToken.Type == tokenQuit {
			program.Quit = true
			break
		}
		expr := p.parseSExpr()
		if expr != nil {
			exprs = append(exprs, expr)
		}
		p.nextToken()
	}

	// Chains are built by prepending, so fold from the back to keep
	// source order.
	var head *Node
	for i := len(exprs) - 1; i >= 0; i-- {
		head = PrependExpr(exprs[i], head)
	}
	program.Exprs = head

	return program
}

// parseSExpr parses one s-expression, leaving curToken on its final token.
func (p *parser) parseSExpr() *Node {
	switch p.curToken.Type {
	case tokenInt:
		return p.parseNumber(TypeInt)
	case tokenFloat:
		return p.parseNumber(TypeDouble)
	case tokenIdent:
		return p.tree.Symbol(p.curToken.Literal)
	case tokenLParen:
		if p.peekToken.Type == tokenLParen {
			return p.parseScopeExpr()
		}
		return p.parseFunctionExpr()
	default:
		p.errorExpected(p.curToken, "s-expression")
		return nil
	}
}

func (p *parser) parseNumber(typ NumType) *Node {
	raw, err := strconv.ParseFloat(p.curToken.Literal, 64)
	if err != nil {
		p.errors = append(p.errors, &parseError{pos: p.curToken.Pos, msg: fmt.Sprintf("invalid number literal %q", p.curToken.Literal)})
		return nil
	}
	return p.tree.Number(raw, typ)
}

// parseFunctionExpr parses `( FUNC s_expr* )`. The function name is
// resolved to its builtin tag at construction time.
func (p *parser) parseFunctionExpr() *Node {
	if !p.expectPeek(tokenIdent) {
		return nil
	}
	kind := ResolveFunc(p.curToken.Literal)

	var ops []*Node
	for p.peekToken.Type != tokenRParen && p.peekToken.Type != tokenEOF {
		p.nextToken()
		op := p.parseSExpr()
		if op == nil {
			return nil
		}
		ops = append(ops, op)
	}
	if !p.expectPeek(tokenRParen) {
		return nil
	}

	var chain *Node
	for i := len(ops) - 1; i >= 0; i-- {
		chain = PrependExpr(ops[i], chain)
	}
	return p.tree.Function(kind, chain)
}

// parseScopeExpr parses `( ( let let_elem+ ) s_expr )`.
func (p *parser) parseScopeExpr() *Node {
	if !p.expectPeek(tokenLParen) {
		return nil
	}
	if !p.expectPeek(tokenLet) {
		return nil
	}

	var table *Entry
	sawElem := false
	for p.peekToken.Type == tokenLParen {
		p.nextToken()
		entry := p.parseLetElem()
		if entry == nil {
			return nil
		}
		table = p.tree.Insert(entry, table)
		sawElem = true
	}
	if !sawElem {
		p.errorExpected(p.peekToken, "let binding")
		return nil
	}
	if !p.expectPeek(tokenRParen) {
		return nil
	}

	p.nextToken()
	child := p.parseSExpr()
	if child == nil {
		return nil
	}
	if !p.expectPeek(tokenRParen) {
		return nil
	}

	return p.tree.Scope(table, child)
}

// parseLetElem parses `( [int|double] SYMBOL s_expr )`.
func (p *parser) parseLetElem() *Entry {
	typ := TypeNone
	switch p.peekToken.Type {
	case tokenTypeInt:
		typ = TypeInt
		p.nextToken()
	case tokenTypeDouble:
		typ = TypeDouble
		p.nextToken()
	}

	if !p.expectPeek(tokenIdent) {
		return nil
	}
	name := p.curToken.Literal

	p.nextToken()
	value := p.parseSExpr()
	if value == nil {
		return nil
	}
	if !p.expectPeek(tokenRParen) {
		return nil
	}

	return p.tree.BindTyped(name, typ, value)
}

func (p *parser) expectPeek(tt TokenType) bool {
	if p.peekToken.Type == tt {
		p.nextToken()
		return true
	}
	p.errorExpected(p.peekToken, string(tt))
	return false
}

func (p *parser) errorExpected(tok Token, expected string) {
	p.errors = append(p.errors, &parseError{pos: tok.Pos, msg: fmt.Sprintf("expected %s, got %s", expected, tok.Type)})
}
