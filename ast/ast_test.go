/*
File    : eta/ast/ast_test.go
*/
package ast

import (
	"testing"

	"eta/lexer"

	"github.com/stretchr/testify/assert"
)

func TestPrint_LetAndExprStmt(t *testing.T) {
	loc := lexer.Location{}
	prog := &Program{
		Statements: []Stmt{
			&LetStmt{Name: "x", Init: NewIntLiteral(loc, 2)},
			&ExprStmt{Expression: &CallExpr{
				Callee: NewIdentifier(loc, "println"),
				Args:   []Expr{NewIdentifier(loc, "x")},
			}},
		},
	}
	out := Print(prog)
	assert.Contains(t, out, "let x = 2;")
	assert.Contains(t, out, "println(x);")
}

func TestPrint_BinaryAndUnary(t *testing.T) {
	loc := lexer.Location{}
	expr := &BinaryExpr{
		Operator: lexer.PLUS,
		Left:     NewIntLiteral(loc, 1),
		Right: &UnaryExpr{
			Operator: lexer.MINUS,
			Operand:  NewIntLiteral(loc, 2),
		},
	}
	assert.Equal(t, "(1 + (-2))", printExpr(expr))
}

func TestPrint_IfElse(t *testing.T) {
	loc := lexer.Location{}
	stmt := &IfStmt{
		Condition:   NewBoolLiteral(loc, true),
		Consequence: &BlockStmt{Statements: []Stmt{&ExprStmt{Expression: NewIntLiteral(loc, 1)}}},
		Alternative: &BlockStmt{Statements: []Stmt{&ExprStmt{Expression: NewIntLiteral(loc, 2)}}},
	}
	prog := &Program{Statements: []Stmt{stmt}}
	out := Print(prog)
	assert.Contains(t, out, "if true {")
	assert.Contains(t, out, "else {")
}

func TestPrint_StructLiteral(t *testing.T) {
	loc := lexer.Location{}
	lit := &StructLiteral{
		Struct: "P",
		Fields: []StructFieldInit{
			{Name: "x", Value: NewIntLiteral(loc, 1)},
			{Name: "y", Value: NewIntLiteral(loc, 2)},
		},
	}
	assert.Equal(t, "P{x: 1, y: 2}", printExpr(lit))
}
