/*
File    : eta/parser/parser_expressions.go
*/
package parser

import (
	"eta/ast"
	"eta/lexer"
)

// parseExpression is the Pratt loop: it reads one unary handler's result,
// then while the token after that operand (now in p.cur) is in the binary
// table and its precedence exceeds minPrec, applies that operator's handler.
func (p *Parser) parseExpression(minPrec precedence) ast.Expr {
	left := p.parseUnary()
	if left == nil {
		return nil
	}

	for {
		prec, ok := precedences[p.cur.Kind]
		if !ok || prec <= minPrec {
			break
		}
		left = p.parseBinary(left)
		if left == nil {
			return nil
		}
	}
	return left
}

func (p *Parser) isBinaryOperator(k lexer.Kind) bool {
	_, ok := precedences[k]
	return ok
}

// parseUnary dispatches on the current token to produce the left-hand side
// of an expression.
func (p *Parser) parseUnary() ast.Expr {
	switch p.cur.Kind {
	case lexer.IDENT:
		return p.parseIdentifierOrStructLiteral()
	case lexer.INTLIT:
		return p.parseIntLiteral()
	case lexer.FLOATLIT:
		return p.parseFloatLiteral()
	case lexer.BOOLLIT:
		return p.parseBoolLiteral()
	case lexer.STRINGLIT:
		return p.parseStringLiteral()
	case lexer.LBRACKET:
		return p.parseArrayLiteral()
	case lexer.BANG, lexer.MINUS:
		return p.parseUnaryExpr()
	case lexer.LPAREN:
		return p.parseGroupedExpr()
	default:
		p.errorf(p.cur.Loc, "unexpected token %s in expression", p.cur.Kind)
		return nil
	}
}

func (p *Parser) parseIdentifierOrStructLiteral() ast.Expr {
	loc := p.cur.Loc
	name := p.cur.Literal
	if name == "null" {
		p.advance()
		n := &ast.NullLiteral{}
		n.SetLoc(loc)
		return n
	}
	p.advance()
	if p.curIs(lexer.LBRACE) {
		return p.parseStructLiteral(loc, name)
	}
	id := ast.NewIdentifier(loc, name)
	return id
}

func (p *Parser) parseStructLiteral(loc lexer.Location, structName string) ast.Expr {
	p.advance() // '{'
	var fields []ast.StructFieldInit
	for !p.curIs(lexer.RBRACE) && !p.curIs(lexer.EOF) {
		if !p.curIs(lexer.IDENT) {
			p.errorf(p.cur.Loc, "expected field name, got %s", p.cur.Kind)
			return nil
		}
		fname := p.cur.Literal
		p.advance()
		if !p.expect(lexer.COLON) {
			return nil
		}
		val := p.parseExpression(LOWEST)
		if val == nil {
			return nil
		}
		fields = append(fields, ast.StructFieldInit{Name: fname, Value: val})
		if p.curIs(lexer.COMMA) {
			p.advance()
			continue
		}
		break
	}
	if !p.expect(lexer.RBRACE) {
		return nil
	}
	lit := &ast.StructLiteral{Struct: structName, Fields: fields}
	lit.SetLoc(loc)
	return lit
}

func (p *Parser) parseIntLiteral() ast.Expr {
	lit := ast.NewIntLiteral(p.cur.Loc, p.cur.Value.Int)
	p.advance()
	return lit
}

func (p *Parser) parseFloatLiteral() ast.Expr {
	lit := ast.NewFloatLiteral(p.cur.Loc, p.cur.Value.Float)
	p.advance()
	return lit
}

func (p *Parser) parseBoolLiteral() ast.Expr {
	lit := ast.NewBoolLiteral(p.cur.Loc, p.cur.Value.Bool)
	p.advance()
	return lit
}

func (p *Parser) parseStringLiteral() ast.Expr {
	lit := ast.NewStringLiteral(p.cur.Loc, p.cur.Value.Str)
	p.advance()
	return lit
}

func (p *Parser) parseArrayLiteral() ast.Expr {
	loc := p.cur.Loc
	p.advance() // '['
	elems := p.parseExprList(lexer.RBRACKET)
	if elems == nil && !p.curIs(lexer.RBRACKET) {
		return nil
	}
	if !p.expect(lexer.RBRACKET) {
		return nil
	}
	lit := &ast.ArrayLiteral{Elements: elems}
	lit.SetLoc(loc)
	return lit
}

// parseExprList handles list_expr(end_tok): empty and non-empty
// comma-separated lists, rejecting a trailing comma.
func (p *Parser) parseExprList(end lexer.Kind) []ast.Expr {
	var list []ast.Expr
	if p.curIs(end) {
		return list
	}
	for {
		expr := p.parseExpression(LOWEST)
		if expr == nil {
			return nil
		}
		list = append(list, expr)
		if p.curIs(lexer.COMMA) {
			p.advance()
			if p.curIs(end) {
				p.errorf(p.cur.Loc, "expected expression or %s", end)
				return nil
			}
			continue
		}
		break
	}
	if !p.curIs(end) {
		p.errorf(p.cur.Loc, "expected , or %s", end)
		return nil
	}
	return list
}

func (p *Parser) parseUnaryExpr() ast.Expr {
	loc := p.cur.Loc
	op := p.cur.Kind
	p.advance()
	operand := p.parseExpression(PREFIX)
	if operand == nil {
		return nil
	}
	expr := &ast.UnaryExpr{Operator: op, Operand: operand}
	expr.SetLoc(loc)
	return expr
}

func (p *Parser) parseGroupedExpr() ast.Expr {
	p.advance() // '('
	expr := p.parseExpression(LOWEST)
	if expr == nil {
		return nil
	}
	if !p.expect(lexer.RPAREN) {
		return nil
	}
	return expr
}

// parseBinary continues an expression given the already-parsed left side
// and the operator now in p.cur.
func (p *Parser) parseBinary(left ast.Expr) ast.Expr {
	switch p.cur.Kind {
	case lexer.ASSIGN:
		return p.parseAssignExpr(left)
	case lexer.PLUS_EQ, lexer.MINUS_EQ, lexer.STAR_EQ, lexer.SLASH_EQ:
		return p.parseCompoundAssignExpr(left)
	case lexer.LPAREN:
		return p.parseCallExpr(left)
	case lexer.LBRACKET:
		return p.parseIndexExpr(left)
	case lexer.DOT:
		return p.parseMemberExpr(left)
	default:
		return p.parseGenericBinary(left)
	}
}

func (p *Parser) parseMemberExpr(left ast.Expr) ast.Expr {
	loc := p.cur.Loc
	p.advance() // '.'
	if !p.curIs(lexer.IDENT) {
		p.errorf(p.cur.Loc, "expected field name after ., got %s", p.cur.Kind)
		return nil
	}
	field := p.cur.Literal
	p.advance()
	expr := &ast.MemberExpr{Left: left, Field: field}
	expr.SetLoc(loc)
	return expr
}

func (p *Parser) parseGenericBinary(left ast.Expr) ast.Expr {
	loc := p.cur.Loc
	op := p.cur.Kind
	prec := precedences[op]
	p.advance()
	right := p.parseExpression(prec)
	if right == nil {
		return nil
	}
	expr := &ast.BinaryExpr{Operator: op, Left: left, Right: right}
	expr.SetLoc(loc)
	return expr
}

func (p *Parser) parseAssignExpr(left ast.Expr) ast.Expr {
	loc := p.cur.Loc
	p.advance() // '='
	right := p.parseExpression(ASSIGNMENT - 1)
	if right == nil {
		return nil
	}
	expr := &ast.AssignExpr{Left: left, Right: right}
	expr.SetLoc(loc)
	return expr
}

var compoundBase = map[lexer.Kind]lexer.Kind{
	lexer.PLUS_EQ:  lexer.PLUS,
	lexer.MINUS_EQ: lexer.MINUS,
	lexer.STAR_EQ:  lexer.STAR,
	lexer.SLASH_EQ: lexer.SLASH,
}

func (p *Parser) parseCompoundAssignExpr(left ast.Expr) ast.Expr {
	loc := p.cur.Loc
	op := compoundBase[p.cur.Kind]
	p.advance()
	right := p.parseExpression(ASSIGNMENT - 1)
	if right == nil {
		return nil
	}
	expr := &ast.CompoundAssignExpr{Operator: op, Left: left, Right: right}
	expr.SetLoc(loc)
	return expr
}

func (p *Parser) parseCallExpr(callee ast.Expr) ast.Expr {
	loc := p.cur.Loc
	p.advance() // '('
	args := p.parseExprList(lexer.RPAREN)
	if args == nil && !p.curIs(lexer.RPAREN) {
		return nil
	}
	if !p.expect(lexer.RPAREN) {
		return nil
	}
	expr := &ast.CallExpr{Callee: callee, Args: args}
	expr.SetLoc(loc)
	return expr
}

func (p *Parser) parseIndexExpr(indexee ast.Expr) ast.Expr {
	loc := p.cur.Loc
	p.advance() // '['
	idx := p.parseExpression(LOWEST)
	if idx == nil {
		return nil
	}
	if !p.expect(lexer.RBRACKET) {
		return nil
	}
	expr := &ast.IndexExpr{Indexee: indexee, Index: idx}
	expr.SetLoc(loc)
	return expr
}
