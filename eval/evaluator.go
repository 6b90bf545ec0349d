/*
File    : eta/eval/evaluator.go

Package eval is the tree-walking evaluator: it executes an ast.Program
against a scope.Scope, allocating every runtime value through an
object.RCA and dispatching calls to user closures, the builtin table, and
externally loaded native functions through an ffi.Bridge.
*/
package eval

import (
	"eta/ast"
	"eta/ffi"
	"eta/lexer"
	"eta/object"
	"eta/scope"
)

// Evaluator holds everything a single program run needs: the lexer (kept
// around purely to re-render source-context diagnostics), the current
// scope, the allocator, and the FFI bridge backing `extern`.
type Evaluator struct {
	Lex    *lexer.Lexer
	Scope  *scope.Scope
	RCA    *object.RCA
	Bridge ffi.Bridge
}

// New creates an Evaluator with a fresh global scope and allocator, and
// wires the `lib()` builtin to bridge so extern declarations can resolve
// against a library it opens.
func New(lex *lexer.Lexer, bridge ffi.Bridge) *Evaluator {
	e := &Evaluator{
		Lex:    lex,
		Scope:  scope.New(nil),
		RCA:    object.NewRCA(),
		Bridge: bridge,
	}
	e.InstallBuiltinHooks()
	return e
}

// Eval evaluates node and, if the result is a location-less SimpleError,
// promotes it to a DetailedError anchored at node's own Location before
// returning it. Every recursive call into the evaluator goes through this
// method rather than the unexported dispatcher directly, so a simple error
// is promoted exactly once, at the innermost node that produced it.
func (e *Evaluator) Eval(node ast.Node) object.Object {
	result := e.eval(node)
	if se, ok := result.(*object.SimpleError); ok {
		return &object.DetailedError{Rendered: e.Lex.FormatError(node.Loc(), se.Message)}
	}
	return result
}

func (e *Evaluator) eval(node ast.Node) object.Object {
	switch n := node.(type) {
	case *ast.Program:
		return e.evalProgram(n)

	// Statements
	case *ast.LetStmt:
		return e.evalLetStmt(n)
	case *ast.StructDecl:
		return e.evalStructDecl(n)
	case *ast.ReturnStmt:
		return e.evalReturnStmt(n)
	case *ast.BlockStmt:
		return e.evalBlockStmt(n)
	case *ast.IfStmt:
		return e.evalIfStmt(n)
	case *ast.ForStmt:
		return e.evalForStmt(n)
	case *ast.FuncDecl:
		return e.evalFuncDecl(n)
	case *ast.ExternDecl:
		return e.evalExternDecl(n)
	case *ast.ExprStmt:
		return e.Eval(n.Expression)

	// Expressions
	case *ast.Identifier:
		return e.evalIdentifier(n)
	case *ast.NullLiteral:
		return object.NULL_OBJ
	case *ast.IntLiteral:
		return e.RCA.Alloc(&object.Integer{Value: n.Value})
	case *ast.FloatLiteral:
		return e.RCA.Alloc(&object.Float{Value: n.Value})
	case *ast.BoolLiteral:
		return object.NativeBool(n.Value)
	case *ast.StringLiteral:
		return e.RCA.Alloc(&object.String{Value: n.Value})
	case *ast.ArrayLiteral:
		return e.evalArrayLiteral(n)
	case *ast.StructLiteral:
		return e.evalStructLiteral(n)
	case *ast.UnaryExpr:
		return e.evalUnaryExpr(n)
	case *ast.BinaryExpr:
		return e.evalBinaryExpr(n)
	case *ast.AssignExpr:
		return e.evalAssignExpr(n)
	case *ast.CompoundAssignExpr:
		return e.evalCompoundAssignExpr(n)
	case *ast.CallExpr:
		return e.evalCallExpr(n)
	case *ast.IndexExpr:
		return e.evalIndexExpr(n)
	case *ast.MemberExpr:
		return e.evalMemberExpr(n)

	default:
		return object.NewError("eval: unhandled node type %T", node)
	}
}

// evalProgram evaluates the program's top-level statements in order,
// short-circuiting on the first error. A bare return at the top level
// unwraps immediately, since there is no enclosing call frame to catch it.
func (e *Evaluator) evalProgram(p *ast.Program) object.Object {
	var result object.Object = object.NULL_OBJ
	for _, stmt := range p.Statements {
		result = e.Eval(stmt)
		if object.IsError(result) {
			return result
		}
		if rv, ok := result.(*object.ReturnValue); ok {
			return rv.Value
		}
	}
	return result
}
