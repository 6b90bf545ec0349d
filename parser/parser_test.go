/*
File    : eta/parser/parser_test.go
*/
package parser

import (
	"testing"

	"eta/ast"
	"eta/lexer"

	"github.com/stretchr/testify/assert"
)

func parse(t *testing.T, src string) *ast.Program {
	t.Helper()
	lex := lexer.NewLexer("<test>", src)
	prog, errs := ParseProgram(lex)
	assert.Empty(t, errs, "unexpected parse errors: %v", errs)
	return prog
}

func TestParseLetStmt(t *testing.T) {
	prog := parse(t, `let x = 2 + 3 * 4;`)
	assert.Len(t, prog.Statements, 1)
	let, ok := prog.Statements[0].(*ast.LetStmt)
	assert.True(t, ok)
	assert.Equal(t, "x", let.Name)

	bin, ok := let.Init.(*ast.BinaryExpr)
	assert.True(t, ok)
	assert.Equal(t, lexer.PLUS, bin.Operator)
}

func TestParseIfElse(t *testing.T) {
	prog := parse(t, `if x > 3 { println('big'); } else { println('small'); }`)
	assert.Len(t, prog.Statements, 1)
	ifstmt, ok := prog.Statements[0].(*ast.IfStmt)
	assert.True(t, ok)
	assert.NotNil(t, ifstmt.Alternative)
}

func TestParseForLoop(t *testing.T) {
	prog := parse(t, `for (let i = 0; i < 5; i = i + 1) { s = s + i; }`)
	assert.Len(t, prog.Statements, 1)
	forstmt, ok := prog.Statements[0].(*ast.ForStmt)
	assert.True(t, ok)
	assert.NotNil(t, forstmt.Init)
	assert.NotNil(t, forstmt.Condition)
	assert.NotNil(t, forstmt.Post)
}

func TestParseFuncDecl(t *testing.T) {
	prog := parse(t, `func add(a, b) { return a + b; }`)
	fn, ok := prog.Statements[0].(*ast.FuncDecl)
	assert.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, fn.Params)
}

func TestParseExternDecl(t *testing.T) {
	prog := parse(t, `extern m func sqrt(float): float;`)
	ext, ok := prog.Statements[0].(*ast.ExternDecl)
	assert.True(t, ok)
	assert.Equal(t, "m", ext.Library)
	assert.Equal(t, "sqrt", ext.Name)
	assert.Equal(t, "float", ext.ReturnType)
	assert.Len(t, ext.Params, 1)
}

func TestParseExternVariadic(t *testing.T) {
	prog := parse(t, `extern c func printf(string, ...): int;`)
	ext, ok := prog.Statements[0].(*ast.ExternDecl)
	assert.True(t, ok)
	assert.True(t, ext.Params[len(ext.Params)-1].Variadic)
}

func TestParseStructDeclAndLiteral(t *testing.T) {
	prog := parse(t, `struct P { x: int, y: int } let p = P{x: 1, y: 2};`)
	assert.Len(t, prog.Statements, 2)

	decl, ok := prog.Statements[0].(*ast.StructDecl)
	assert.True(t, ok)
	assert.Equal(t, "P", decl.Name)
	assert.Len(t, decl.Fields, 2)

	let := prog.Statements[1].(*ast.LetStmt)
	lit, ok := let.Init.(*ast.StructLiteral)
	assert.True(t, ok)
	assert.Equal(t, "P", lit.Struct)
}

func TestParseArrayLiteralAndIndex(t *testing.T) {
	prog := parse(t, `let a = [1, 2, 3]; a[1];`)
	assert.Len(t, prog.Statements, 2)
	idx, ok := prog.Statements[1].(*ast.ExprStmt).Expression.(*ast.IndexExpr)
	assert.True(t, ok)
	_ = idx
}

func TestParseCompoundAssign(t *testing.T) {
	prog := parse(t, `x += 1;`)
	expr := prog.Statements[0].(*ast.ExprStmt).Expression
	comp, ok := expr.(*ast.CompoundAssignExpr)
	assert.True(t, ok)
	assert.Equal(t, lexer.PLUS, comp.Operator)
}

func TestParseMemberAssign(t *testing.T) {
	prog := parse(t, `p.x = 10;`)
	expr := prog.Statements[0].(*ast.ExprStmt).Expression
	assign, ok := expr.(*ast.AssignExpr)
	assert.True(t, ok)
	member, ok := assign.Left.(*ast.MemberExpr)
	assert.True(t, ok)
	assert.Equal(t, "x", member.Field)
}

func TestParseTrailingCommaRejected(t *testing.T) {
	lex := lexer.NewLexer("<test>", `let a = [1, 2,];`)
	_, errs := ParseProgram(lex)
	assert.NotEmpty(t, errs)
}

func TestParseErrorOnMissingSemicolon(t *testing.T) {
	lex := lexer.NewLexer("<test>", `let x = 1`)
	_, errs := ParseProgram(lex)
	assert.NotEmpty(t, errs)
}

func TestRoundTrip_PrintThenReparse(t *testing.T) {
	src := `let x = 2 + 3 * 4;`
	prog := parse(t, src)
	printed := ast.Print(prog)

	reparsed := parse(t, printed)
	assert.Equal(t, ast.Print(prog), ast.Print(reparsed))
}
