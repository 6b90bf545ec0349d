/*
File    : eta/eval/eval_call.go
*/
package eval

import (
	"eta/ast"
	"eta/object"
	"eta/scope"
)

func (e *Evaluator) evalCallExpr(n *ast.CallExpr) object.Object {
	callee := e.Eval(n.Callee)
	if object.IsError(callee) {
		return callee
	}

	args := make([]object.Object, 0, len(n.Args))
	for _, a := range n.Args {
		val := e.Eval(a)
		if object.IsError(val) {
			return val
		}
		args = append(args, val)
	}

	switch fn := callee.(type) {
	case *object.Function:
		return e.callFunction(fn, args)
	case *object.Builtin:
		result := fn.Fn(args)
		if se, ok := result.(*object.SimpleError); ok {
			return &object.DetailedError{Rendered: e.Lex.FormatError(n.Loc(), se.Message)}
		}
		return result
	case *object.ExternalFunction:
		return e.callExternal(n, fn, args)
	default:
		return object.NewError("%s is not callable", object.TypeName(callee))
	}
}

func (e *Evaluator) callFunction(fn *object.Function, args []object.Object) object.Object {
	if len(args) != len(fn.Params) {
		return object.NewError("function expects %d argument(s), got %d", len(fn.Params), len(args))
	}

	closureEnv, ok := fn.Env.(*scope.Scope)
	if !ok {
		return object.NewError("function has an invalid closure environment")
	}
	callScope := scope.New(closureEnv)
	for i, p := range fn.Params {
		e.RCA.Retain(args[i])
		callScope.Bind(p, args[i])
	}

	outer := e.Scope
	e.Scope = callScope
	result := e.evalBlockStmt(fn.Body)
	e.Scope = outer
	e.releaseScope(callScope)

	if object.IsError(result) {
		return result
	}
	if rv, ok := result.(*object.ReturnValue); ok {
		return rv.Value
	}
	return object.NULL_OBJ
}
