/*
File    : eta/ast/ast.go

Package ast defines the syntax tree produced by the parser and consumed by
the evaluator. Expr and Stmt are closed sum types: every concrete node
implements one of the two marker interfaces, and every node carries the
Location at which it begins so diagnostics can point back into source.
*/
package ast

import (
	"eta/lexer"
)

// Node is satisfied by every AST node.
type Node interface {
	Loc() lexer.Location
}

// Expr is satisfied by every expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt is satisfied by every statement node.
type Stmt interface {
	Node
	stmtNode()
}

// Program is the root of a parsed source file: an ordered list of
// top-level statements.
type Program struct {
	Statements []Stmt
}

// Loc reports the start of the source, where every Program begins.
func (*Program) Loc() lexer.Location { return lexer.Location{} }

// base carries the Location common to all nodes. Embedding it gives every
// concrete node its Loc() method for free.
type base struct {
	Location lexer.Location
}

func (b base) Loc() lexer.Location { return b.Location }

// SetLoc sets the node's originating Location. The parser calls this after
// constructing a node with a plain composite literal, since base's field
// name is unexported and so cannot be set directly from outside the
// package.
func (b *base) SetLoc(loc lexer.Location) { b.Location = loc }

// ---- Expressions ----------------------------------------------------------

// Identifier references a bound name.
type Identifier struct {
	base
	Name string
}

func (*Identifier) exprNode() {}

// NullLiteral is the literal `null`.
type NullLiteral struct{ base }

func (*NullLiteral) exprNode() {}

// IntLiteral is a decimal integer literal.
type IntLiteral struct {
	base
	Value int64
}

func (*IntLiteral) exprNode() {}

// FloatLiteral is a decimal floating-point literal.
type FloatLiteral struct {
	base
	Value float64
}

func (*FloatLiteral) exprNode() {}

// BoolLiteral is `true` or `false`.
type BoolLiteral struct {
	base
	Value bool
}

func (*BoolLiteral) exprNode() {}

// StringLiteral is a single-quoted string literal with escapes resolved.
type StringLiteral struct {
	base
	Value string
}

func (*StringLiteral) exprNode() {}

// ArrayLiteral is `[e1, e2, ...]`.
type ArrayLiteral struct {
	base
	Elements []Expr
}

func (*ArrayLiteral) exprNode() {}

// StructFieldInit is one `name: value` pair inside a StructLiteral.
type StructFieldInit struct {
	Name  string
	Value Expr
}

// StructLiteral constructs a struct-value: `Name{field: value, ...}`.
type StructLiteral struct {
	base
	Struct string
	Fields []StructFieldInit
}

func (*StructLiteral) exprNode() {}

// UnaryExpr is a prefix operator applied to an operand: `!x`, `-x`.
type UnaryExpr struct {
	base
	Operator lexer.Kind
	Operand  Expr
}

func (*UnaryExpr) exprNode() {}

// BinaryExpr is an infix operator applied to two operands.
type BinaryExpr struct {
	base
	Operator lexer.Kind
	Left     Expr
	Right    Expr
}

func (*BinaryExpr) exprNode() {}

// AssignExpr is `left = right`.
type AssignExpr struct {
	base
	Left  Expr
	Right Expr
}

func (*AssignExpr) exprNode() {}

// CompoundAssignExpr is `left += right` (and -=, *=, /=). The parser
// records the base arithmetic operator so the evaluator can synthesize the
// equivalent binary expression without re-parsing.
type CompoundAssignExpr struct {
	base
	Operator lexer.Kind // PLUS, MINUS, STAR, or SLASH
	Left     Expr
	Right    Expr
}

func (*CompoundAssignExpr) exprNode() {}

// CallExpr is `callee(args...)`.
type CallExpr struct {
	base
	Callee Expr
	Args   []Expr
}

func (*CallExpr) exprNode() {}

// IndexExpr is `indexee[index]`.
type IndexExpr struct {
	base
	Indexee Expr
	Index   Expr
}

func (*IndexExpr) exprNode() {}

// MemberExpr is `left.field`.
type MemberExpr struct {
	base
	Left  Expr
	Field string
}

func (*MemberExpr) exprNode() {}

// ---- Statements -------------------------------------------------------

// LetStmt is `let name = init;`.
type LetStmt struct {
	base
	Name string
	Init Expr
}

func (*LetStmt) stmtNode() {}

// StructField is one `(name, type_name)` pair in a struct declaration.
type StructField struct {
	Name     string
	TypeName string
}

// StructDecl is `struct Name { name: type, ... }`.
type StructDecl struct {
	base
	Name   string
	Fields []StructField
}

func (*StructDecl) stmtNode() {}

// ReturnStmt is `return;` or `return value;`.
type ReturnStmt struct {
	base
	Value Expr // nil when bare `return;`
}

func (*ReturnStmt) stmtNode() {}

// BlockStmt is `{ statements... }`.
type BlockStmt struct {
	base
	Statements []Stmt
}

func (*BlockStmt) stmtNode() {}

// IfStmt is `if cond { ... } else { ... }`. Alternative is nil when there
// is no else-block.
type IfStmt struct {
	base
	Condition   Expr
	Consequence *BlockStmt
	Alternative *BlockStmt
}

func (*IfStmt) stmtNode() {}

// ForStmt is the C-style `for (init; cond; post) { body }`. Each of Init,
// Condition, and Post is nil when its slot was omitted.
type ForStmt struct {
	base
	Init      Stmt
	Condition Expr
	Post      Stmt
	Body      *BlockStmt
}

func (*ForStmt) stmtNode() {}

// FuncDecl is `func name(params...) { body }`.
type FuncDecl struct {
	base
	Name   string
	Params []string
	Body   *BlockStmt
}

func (*FuncDecl) stmtNode() {}

// ExternParam is one declared argument type in an extern signature, or the
// trailing variadic marker (Variadic == true, TypeName ignored).
type ExternParam struct {
	TypeName string
	Variadic bool
}

// ExternDecl is `extern lib func name(types...): ret`.
type ExternDecl struct {
	base
	Library    string
	Name       string
	Params     []ExternParam
	ReturnType string // "void" for no return value
}

func (*ExternDecl) stmtNode() {}

// ExprStmt is a bare expression used as a statement, e.g. a call for its
// side effects.
type ExprStmt struct {
	base
	Expression Expr
}

func (*ExprStmt) stmtNode() {}

// helper constructors keep the parser free of repeated base{Location: ...}
// literals.

func NewIdentifier(loc lexer.Location, name string) *Identifier {
	return &Identifier{base: base{loc}, Name: name}
}

func NewNullLiteral(loc lexer.Location) *NullLiteral {
	return &NullLiteral{base: base{loc}}
}

func NewIntLiteral(loc lexer.Location, v int64) *IntLiteral {
	return &IntLiteral{base: base{loc}, Value: v}
}

func NewFloatLiteral(loc lexer.Location, v float64) *FloatLiteral {
	return &FloatLiteral{base: base{loc}, Value: v}
}

func NewBoolLiteral(loc lexer.Location, v bool) *BoolLiteral {
	return &BoolLiteral{base: base{loc}, Value: v}
}

func NewStringLiteral(loc lexer.Location, v string) *StringLiteral {
	return &StringLiteral{base: base{loc}, Value: v}
}
