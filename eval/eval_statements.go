/*
File    : eta/eval/eval_statements.go
*/
package eval

import (
	"eta/ast"
	"eta/builtin"
	"eta/object"
	"eta/scope"
)

func (e *Evaluator) evalLetStmt(n *ast.LetStmt) object.Object {
	val := e.Eval(n.Init)
	if object.IsError(val) {
		return val
	}
	if e.Scope.ExistsHere(n.Name) {
		return object.NewError("redefinition: %q is already bound in this scope", n.Name)
	}
	if _, isBuiltin := builtin.Lookup(n.Name); isBuiltin {
		return object.NewError("redefinition: %q shadows a builtin", n.Name)
	}
	e.RCA.Retain(val)
	e.Scope.Bind(n.Name, val)
	return val
}

func (e *Evaluator) evalStructDecl(n *ast.StructDecl) object.Object {
	st := &object.StructType{
		Name:       n.Name,
		FieldTypes: make(map[string]string, len(n.Fields)),
	}
	for _, f := range n.Fields {
		st.FieldOrder = append(st.FieldOrder, f.Name)
		st.FieldTypes[f.Name] = f.TypeName
	}
	obj := e.RCA.Alloc(st)
	e.Scope.Bind(n.Name, obj)
	return obj
}

func (e *Evaluator) evalReturnStmt(n *ast.ReturnStmt) object.Object {
	if n.Value == nil {
		return &object.ReturnValue{Value: object.NULL_OBJ}
	}
	val := e.Eval(n.Value)
	if object.IsError(val) {
		return val
	}
	return &object.ReturnValue{Value: val}
}

// evalBlockStmt evaluates a statement list in the evaluator's current
// scope. It does not open a new scope itself — the constructs that use
// blocks (if, for, function call) are responsible for that, matching the
// teacher's separation of block evaluation from scope management.
func (e *Evaluator) evalBlockStmt(n *ast.BlockStmt) object.Object {
	var result object.Object = object.NULL_OBJ
	for _, stmt := range n.Statements {
		result = e.Eval(stmt)
		if object.IsError(result) {
			return result
		}
		if _, ok := result.(*object.ReturnValue); ok {
			return result
		}
	}
	return result
}

func (e *Evaluator) evalIfStmt(n *ast.IfStmt) object.Object {
	cond := e.Eval(n.Condition)
	if object.IsError(cond) {
		return cond
	}
	b, ok := cond.(*object.Boolean)
	if !ok {
		return object.NewError("if: condition must be bool, got %s", object.TypeName(cond))
	}

	if b.Value {
		return e.evalInScope(n.Consequence)
	}
	if n.Alternative != nil {
		return e.evalInScope(n.Alternative)
	}
	return object.NULL_OBJ
}

// releaseScope decrements the refcount of every Object directly bound in s
// (not its outer chain), matching original_source's scope_deinit calling
// gc_done on each entry when a scope frame goes out of existence.
func (e *Evaluator) releaseScope(s *scope.Scope) {
	for _, v := range s.Variables {
		e.RCA.Release(v)
	}
}

// evalInScope evaluates block in a fresh child scope of the evaluator's
// current scope, restoring the current scope and releasing its bindings
// before returning.
func (e *Evaluator) evalInScope(block *ast.BlockStmt) object.Object {
	outer := e.Scope
	inner := scope.New(outer)
	e.Scope = inner
	defer func() {
		e.Scope = outer
		e.releaseScope(inner)
	}()
	return e.evalBlockStmt(block)
}

func (e *Evaluator) evalForStmt(n *ast.ForStmt) object.Object {
	outer := e.Scope
	header := scope.New(outer)
	e.Scope = header
	defer func() {
		e.Scope = outer
		e.releaseScope(header)
	}()

	if n.Init != nil {
		if res := e.Eval(n.Init); object.IsError(res) {
			return res
		}
	}

	for {
		if n.Condition != nil {
			condVal := e.Eval(n.Condition)
			if object.IsError(condVal) {
				return condVal
			}
			b, ok := condVal.(*object.Boolean)
			if !ok {
				if _, isNull := condVal.(*object.Null); isNull {
					break
				}
				return object.NewError("for: condition must be bool, got %s", object.TypeName(condVal))
			}
			if !b.Value {
				break
			}
		}

		iteration := scope.New(header)
		e.Scope = iteration
		result := e.evalBlockStmt(n.Body)
		e.Scope = header
		e.releaseScope(iteration)

		if object.IsError(result) {
			return result
		}
		if _, ok := result.(*object.ReturnValue); ok {
			return result
		}

		if n.Post != nil {
			if res := e.Eval(n.Post); object.IsError(res) {
				return res
			}
		}
	}
	return object.NULL_OBJ
}

func (e *Evaluator) evalFuncDecl(n *ast.FuncDecl) object.Object {
	fn := &object.Function{
		Params: n.Params,
		Body:   n.Body,
		Env:    e.Scope.Copy(),
	}
	obj := e.RCA.Alloc(fn)
	e.Scope.Bind(n.Name, obj)
	return obj
}

func (e *Evaluator) evalExternDecl(n *ast.ExternDecl) object.Object {
	libObj, ok := e.Scope.LookUp(n.Library)
	if !ok {
		return object.NewError("extern: library %q is not bound", n.Library)
	}
	lib, ok := libObj.(*object.ExternalLibrary)
	if !ok {
		return object.NewError("extern: %q is not a loaded library", n.Library)
	}

	ptr, err := e.Bridge.Resolve(lib.Handle, n.Name)
	if err != nil {
		return object.NewError("%s", err.Error())
	}

	variadic := false
	var paramTypes []string
	for _, p := range n.Params {
		if p.Variadic {
			variadic = true
			continue
		}
		paramTypes = append(paramTypes, p.TypeName)
	}

	fn := &object.ExternalFunction{
		Library:    lib,
		Symbol:     n.Name,
		Pointer:    ptr,
		ParamTypes: paramTypes,
		Variadic:   variadic,
		ReturnType: n.ReturnType,
	}
	obj := e.RCA.Alloc(fn)
	e.Scope.Bind(n.Name, obj)
	return obj
}
