/*
File    : eta/parser/parser.go

Package parser implements eta's Pratt (operator-precedence) parser: it
drives a lexer.Lexer and produces an ast.Program. Errors accumulate rather
than panicking on the first one; Errors() returns every message collected
during parsing, each already rendered through the lexer's source-context
formatter.
*/
package parser

import (
	"fmt"

	"eta/ast"
	"eta/lexer"
)

// Precedence levels, low to high.
type precedence int

const (
	LOWEST precedence = iota
	ASSIGNMENT
	EQUALS
	LESSGREATER
	SUM
	PRODUCT
	PREFIX
	CALL
	INDEX
)

var precedences = map[lexer.Kind]precedence{
	lexer.ASSIGN:   ASSIGNMENT,
	lexer.PLUS_EQ:  ASSIGNMENT,
	lexer.MINUS_EQ: ASSIGNMENT,
	lexer.STAR_EQ:  ASSIGNMENT,
	lexer.SLASH_EQ: ASSIGNMENT,
	lexer.EQ:       EQUALS,
	lexer.NEQ:      EQUALS,
	lexer.LT:       LESSGREATER,
	lexer.LE:       LESSGREATER,
	lexer.GT:       LESSGREATER,
	lexer.GE:       LESSGREATER,
	lexer.PLUS:     SUM,
	lexer.MINUS:    SUM,
	lexer.STAR:     PRODUCT,
	lexer.SLASH:    PRODUCT,
	lexer.LPAREN:   CALL,
	lexer.LBRACKET: INDEX,
	lexer.DOT:      INDEX,
}

// Parser drives a Lexer and builds an ast.Program.
type Parser struct {
	lex *lexer.Lexer

	cur  lexer.Token
	peek lexer.Token

	errors []string
}

// New creates a Parser over lex and primes the current/peek tokens.
func New(lex *lexer.Lexer) *Parser {
	p := &Parser{lex: lex}
	p.advance()
	p.advance()
	return p
}

// Errors returns every accumulated parse error, each already rendered
// through the lexer's source-context formatter.
func (p *Parser) Errors() []string { return p.errors }

func (p *Parser) advance() {
	p.cur = p.peek
	p.peek = p.lex.NextToken()
}

func (p *Parser) curIs(k lexer.Kind) bool  { return p.cur.Kind == k }
func (p *Parser) peekIs(k lexer.Kind) bool { return p.peek.Kind == k }

func (p *Parser) peekPrecedence() precedence {
	if pr, ok := precedences[p.peek.Kind]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) errorf(loc lexer.Location, format string, args ...any) {
	msg := p.lex.FormatError(loc, fmt.Sprintf(format, args...))
	p.errors = append(p.errors, msg)
}

// expect advances past cur if it matches k, recording an error and
// returning false otherwise.
func (p *Parser) expect(k lexer.Kind) bool {
	if p.curIs(k) {
		p.advance()
		return true
	}
	p.errorf(p.cur.Loc, "expected %s, got %s", k, p.cur.Kind)
	return false
}

// ParseProgram parses the whole token stream. It returns an empty Program
// if any statement failed to parse — the driver is expected to check the
// returned error list first and skip evaluation entirely when non-empty.
func ParseProgram(lex *lexer.Lexer) (*ast.Program, []string) {
	p := New(lex)
	prog := &ast.Program{}
	failed := false

	for !p.curIs(lexer.EOF) {
		stmt := p.parseStatement()
		if stmt == nil {
			failed = true
			// best-effort resync: skip to the next statement boundary
			for !p.curIs(lexer.SEMI) && !p.curIs(lexer.RBRACE) && !p.curIs(lexer.EOF) {
				p.advance()
			}
			if p.curIs(lexer.SEMI) {
				p.advance()
			}
			continue
		}
		prog.Statements = append(prog.Statements, stmt)
	}

	if failed || len(p.errors) > 0 {
		return &ast.Program{}, p.errors
	}
	return prog, nil
}
