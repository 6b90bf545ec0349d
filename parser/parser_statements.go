/*
File    : eta/parser/parser_statements.go
*/
package parser

import (
	"eta/ast"
	"eta/lexer"
)

func (p *Parser) parseStatement() ast.Stmt {
	switch p.cur.Kind {
	case lexer.LET:
		return p.parseLetStmt()
	case lexer.RETURN:
		return p.parseReturnStmt()
	case lexer.IF:
		return p.parseIfStmt()
	case lexer.FOR:
		return p.parseForStmt()
	case lexer.FUNC:
		return p.parseFuncDecl()
	case lexer.EXTERN:
		return p.parseExternDecl()
	case lexer.STRUCT:
		return p.parseStructDecl()
	case lexer.LBRACE:
		return p.parseBlockStmt()
	default:
		return p.parseExprStmt()
	}
}

func (p *Parser) parseLetStmt() ast.Stmt {
	loc := p.cur.Loc
	p.advance() // 'let'
	if !p.curIs(lexer.IDENT) {
		p.errorf(p.cur.Loc, "expected identifier after let, got %s", p.cur.Kind)
		return nil
	}
	name := p.cur.Literal
	p.advance()
	if !p.expect(lexer.ASSIGN) {
		return nil
	}
	init := p.parseExpression(LOWEST)
	if init == nil {
		return nil
	}
	if !p.expect(lexer.SEMI) {
		return nil
	}
	stmt := &ast.LetStmt{Name: name, Init: init}
	stmt.SetLoc(loc)
	return stmt
}

func (p *Parser) parseReturnStmt() ast.Stmt {
	loc := p.cur.Loc
	p.advance() // 'return'
	if p.curIs(lexer.SEMI) {
		p.advance()
		stmt := &ast.ReturnStmt{}
		stmt.SetLoc(loc)
		return stmt
	}
	val := p.parseExpression(LOWEST)
	if val == nil {
		return nil
	}
	if !p.expect(lexer.SEMI) {
		return nil
	}
	stmt := &ast.ReturnStmt{Value: val}
	stmt.SetLoc(loc)
	return stmt
}

func (p *Parser) parseBlockStmt() *ast.BlockStmt {
	loc := p.cur.Loc
	if !p.expect(lexer.LBRACE) {
		return nil
	}
	block := &ast.BlockStmt{}
	for !p.curIs(lexer.RBRACE) && !p.curIs(lexer.EOF) {
		stmt := p.parseStatement()
		if stmt == nil {
			return nil
		}
		block.Statements = append(block.Statements, stmt)
	}
	if !p.expect(lexer.RBRACE) {
		return nil
	}
	block.SetLoc(loc)
	return block
}

func (p *Parser) parseIfStmt() ast.Stmt {
	loc := p.cur.Loc
	p.advance() // 'if'
	cond := p.parseExpression(LOWEST)
	if cond == nil {
		return nil
	}
	cons := p.parseBlockStmt()
	if cons == nil {
		return nil
	}
	stmt := &ast.IfStmt{Condition: cond, Consequence: cons}
	stmt.SetLoc(loc)
	if p.curIs(lexer.ELSE) {
		p.advance()
		alt := p.parseBlockStmt()
		if alt == nil {
			return nil
		}
		stmt.Alternative = alt
	}
	return stmt
}

func (p *Parser) parseForStmt() ast.Stmt {
	loc := p.cur.Loc
	p.advance() // 'for'
	if !p.expect(lexer.LPAREN) {
		return nil
	}

	var init ast.Stmt
	if !p.curIs(lexer.SEMI) {
		init = p.parseSimpleStatement()
		if init == nil {
			return nil
		}
	}
	if !p.expect(lexer.SEMI) {
		return nil
	}

	var cond ast.Expr
	if !p.curIs(lexer.SEMI) {
		cond = p.parseExpression(LOWEST)
		if cond == nil {
			return nil
		}
	}
	if !p.expect(lexer.SEMI) {
		return nil
	}

	var post ast.Stmt
	if !p.curIs(lexer.RPAREN) {
		post = p.parseSimpleStatement()
		if post == nil {
			return nil
		}
	}
	if !p.expect(lexer.RPAREN) {
		return nil
	}

	body := p.parseBlockStmt()
	if body == nil {
		return nil
	}

	stmt := &ast.ForStmt{Init: init, Condition: cond, Post: post, Body: body}
	stmt.SetLoc(loc)
	return stmt
}

// parseSimpleStatement parses a for-header slot: a let statement without
// its own required semicolon, or a bare expression. The for-header's own
// semicolons are consumed by the caller.
func (p *Parser) parseSimpleStatement() ast.Stmt {
	if p.curIs(lexer.LET) {
		loc := p.cur.Loc
		p.advance()
		if !p.curIs(lexer.IDENT) {
			p.errorf(p.cur.Loc, "expected identifier after let, got %s", p.cur.Kind)
			return nil
		}
		name := p.cur.Literal
		p.advance()
		if !p.expect(lexer.ASSIGN) {
			return nil
		}
		init := p.parseExpression(LOWEST)
		if init == nil {
			return nil
		}
		stmt := &ast.LetStmt{Name: name, Init: init}
		stmt.SetLoc(loc)
		return stmt
	}
	loc := p.cur.Loc
	expr := p.parseExpression(LOWEST)
	if expr == nil {
		return nil
	}
	stmt := &ast.ExprStmt{Expression: expr}
	stmt.SetLoc(loc)
	return stmt
}

func (p *Parser) parseFuncDecl() ast.Stmt {
	loc := p.cur.Loc
	p.advance() // 'func'
	if !p.curIs(lexer.IDENT) {
		p.errorf(p.cur.Loc, "expected function name, got %s", p.cur.Kind)
		return nil
	}
	name := p.cur.Literal
	p.advance()
	if !p.expect(lexer.LPAREN) {
		return nil
	}
	params := p.parseParamList()
	if params == nil && !p.curIs(lexer.LBRACE) {
		return nil
	}
	body := p.parseBlockStmt()
	if body == nil {
		return nil
	}
	decl := &ast.FuncDecl{Name: name, Params: params, Body: body}
	decl.SetLoc(loc)
	return decl
}

func (p *Parser) parseParamList() []string {
	var params []string
	if p.curIs(lexer.RPAREN) {
		p.advance()
		return params
	}
	for {
		if !p.curIs(lexer.IDENT) {
			p.errorf(p.cur.Loc, "expected parameter name, got %s", p.cur.Kind)
			return nil
		}
		params = append(params, p.cur.Literal)
		p.advance()
		if p.curIs(lexer.COMMA) {
			p.advance()
			continue
		}
		break
	}
	if !p.expect(lexer.RPAREN) {
		return nil
	}
	return params
}

func (p *Parser) parseExternDecl() ast.Stmt {
	loc := p.cur.Loc
	p.advance() // 'extern'
	if !p.curIs(lexer.IDENT) {
		p.errorf(p.cur.Loc, "expected library name, got %s", p.cur.Kind)
		return nil
	}
	library := p.cur.Literal
	p.advance()
	if !p.expect(lexer.FUNC) {
		return nil
	}
	if !p.curIs(lexer.IDENT) {
		p.errorf(p.cur.Loc, "expected function name, got %s", p.cur.Kind)
		return nil
	}
	name := p.cur.Literal
	p.advance()
	if !p.expect(lexer.LPAREN) {
		return nil
	}

	var params []ast.ExternParam
	if !p.curIs(lexer.RPAREN) {
		for {
			if p.curIs(lexer.ELLIPSIS) {
				params = append(params, ast.ExternParam{Variadic: true})
				p.advance()
				break
			}
			if !isTypeToken(p.cur.Kind) {
				p.errorf(p.cur.Loc, "expected type name, got %s", p.cur.Kind)
				return nil
			}
			params = append(params, ast.ExternParam{TypeName: p.cur.Literal})
			p.advance()
			if p.curIs(lexer.COMMA) {
				p.advance()
				continue
			}
			break
		}
	}
	if !p.expect(lexer.RPAREN) {
		return nil
	}
	if !p.expect(lexer.COLON) {
		return nil
	}
	if !isTypeToken(p.cur.Kind) {
		p.errorf(p.cur.Loc, "expected return type, got %s", p.cur.Kind)
		return nil
	}
	ret := p.cur.Literal
	p.advance()
	if !p.expect(lexer.SEMI) {
		return nil
	}

	decl := &ast.ExternDecl{Library: library, Name: name, Params: params, ReturnType: ret}
	decl.SetLoc(loc)
	return decl
}

func isTypeToken(k lexer.Kind) bool {
	switch k {
	case lexer.TYPE_INT, lexer.TYPE_FLOAT, lexer.TYPE_BOOL, lexer.TYPE_STRING, lexer.TYPE_VOID:
		return true
	default:
		return false
	}
}

func (p *Parser) parseStructDecl() ast.Stmt {
	loc := p.cur.Loc
	p.advance() // 'struct'
	if !p.curIs(lexer.IDENT) {
		p.errorf(p.cur.Loc, "expected struct name, got %s", p.cur.Kind)
		return nil
	}
	name := p.cur.Literal
	p.advance()
	if !p.expect(lexer.LBRACE) {
		return nil
	}

	var fields []ast.StructField
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
		if !isTypeToken(p.cur.Kind) {
			p.errorf(p.cur.Loc, "expected field type, got %s", p.cur.Kind)
			return nil
		}
		ftype := p.cur.Literal
		p.advance()
		fields = append(fields, ast.StructField{Name: fname, TypeName: ftype})

		if p.curIs(lexer.COMMA) {
			p.advance()
			continue
		}
		break
	}
	if !p.expect(lexer.RBRACE) {
		return nil
	}

	decl := &ast.StructDecl{Name: name, Fields: fields}
	decl.SetLoc(loc)
	return decl
}

func (p *Parser) parseExprStmt() ast.Stmt {
	loc := p.cur.Loc
	expr := p.parseExpression(LOWEST)
	if expr == nil {
		return nil
	}
	if !p.expect(lexer.SEMI) {
		return nil
	}
	stmt := &ast.ExprStmt{Expression: expr}
	stmt.SetLoc(loc)
	return stmt
}
