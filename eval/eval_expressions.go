/*
File    : eta/eval/eval_expressions.go
*/
package eval

import (
	"eta/ast"
	"eta/builtin"
	"eta/lexer"
	"eta/object"
)

func (e *Evaluator) evalIdentifier(n *ast.Identifier) object.Object {
	if obj, ok := e.Scope.LookUp(n.Name); ok {
		return obj
	}
	if fn, ok := builtin.Lookup(n.Name); ok {
		return fn
	}
	return object.NewError("undefined identifier %q", n.Name)
}

func (e *Evaluator) evalArrayLiteral(n *ast.ArrayLiteral) object.Object {
	elems := make([]object.Object, 0, len(n.Elements))
	for _, el := range n.Elements {
		val := e.Eval(el)
		if object.IsError(val) {
			return val
		}
		elems = append(elems, val)
	}
	return e.RCA.Alloc(&object.Array{Elements: elems})
}

func (e *Evaluator) evalStructLiteral(n *ast.StructLiteral) object.Object {
	typeObj, ok := e.Scope.LookUp(n.Struct)
	if !ok {
		return object.NewError("undefined struct type %q", n.Struct)
	}
	st, ok := typeObj.(*object.StructType)
	if !ok {
		return object.NewError("%q is not a struct type", n.Struct)
	}

	fields := make(map[string]object.Object, len(n.Fields))
	for _, fi := range n.Fields {
		declared, ok := st.FieldTypes[fi.Name]
		if !ok {
			return object.NewError("struct %s has no field %q", st.Name, fi.Name)
		}
		val := e.Eval(fi.Value)
		if object.IsError(val) {
			return val
		}
		if object.TypeName(val) != declared {
			return object.NewError("field %s.%s expects %s, got %s", st.Name, fi.Name, declared, object.TypeName(val))
		}
		fields[fi.Name] = val
	}
	for _, name := range st.FieldOrder {
		if _, ok := fields[name]; !ok {
			return object.NewError("struct literal %s is missing field %q", st.Name, name)
		}
	}
	return e.RCA.Alloc(&object.StructValue{Type: st, Fields: fields})
}

func (e *Evaluator) evalUnaryExpr(n *ast.UnaryExpr) object.Object {
	operand := e.Eval(n.Operand)
	if object.IsError(operand) {
		return operand
	}
	switch n.Operator {
	case lexer.BANG:
		b, ok := operand.(*object.Boolean)
		if !ok {
			return object.NewError("! requires bool, got %s", object.TypeName(operand))
		}
		return object.NativeBool(!b.Value)
	case lexer.MINUS:
		switch v := operand.(type) {
		case *object.Integer:
			return e.RCA.Alloc(&object.Integer{Value: -v.Value})
		case *object.Float:
			return e.RCA.Alloc(&object.Float{Value: -v.Value})
		default:
			return object.NewError("unary - requires int or float, got %s", object.TypeName(operand))
		}
	default:
		return object.NewError("unsupported unary operator %s", n.Operator)
	}
}

func (e *Evaluator) evalBinaryExpr(n *ast.BinaryExpr) object.Object {
	left := e.Eval(n.Left)
	if object.IsError(left) {
		return left
	}
	right := e.Eval(n.Right)
	if object.IsError(right) {
		return right
	}

	switch {
	case isInt(left) && isInt(right):
		return e.evalIntBinary(n.Operator, left.(*object.Integer), right.(*object.Integer))
	case isFloat(left) && isFloat(right):
		return e.evalFloatBinary(n.Operator, asFloat(left), asFloat(right))
	case isString(left) && isString(right):
		return e.evalStringBinary(n.Operator, left.(*object.String), right.(*object.String))
	}

	if left.Kind() == right.Kind() {
		switch n.Operator {
		case lexer.EQ:
			return object.NativeBool(sameReference(left, right))
		case lexer.NEQ:
			return object.NativeBool(!sameReference(left, right))
		}
	}

	if object.TypeName(left) != object.TypeName(right) {
		return object.NewError("type mismatch: %s %s %s", object.TypeName(left), n.Operator, object.TypeName(right))
	}
	return object.NewError("operator %s not supported for %s", n.Operator, object.TypeName(left))
}

func isInt(o object.Object) bool    { _, ok := o.(*object.Integer); return ok }
func isFloat(o object.Object) bool  { _, ok := o.(*object.Float); return ok }
func isNumeric(o object.Object) bool { return isInt(o) || isFloat(o) }
func isString(o object.Object) bool { _, ok := o.(*object.String); return ok }

func asFloat(o object.Object) float64 {
	switch v := o.(type) {
	case *object.Integer:
		return float64(v.Value)
	case *object.Float:
		return v.Value
	}
	return 0
}

// sameReference implements the fallback `==`/`!=` used for kinds with no
// arithmetic or comparison table of their own (null, bool, array, struct
// value, function, ...): identity rather than structural equality.
func sameReference(a, b object.Object) bool {
	if a.Kind() != b.Kind() {
		return false
	}
	if ba, ok := a.(*object.Boolean); ok {
		return ba == b.(*object.Boolean)
	}
	if _, ok := a.(*object.Null); ok {
		_, ok2 := b.(*object.Null)
		return ok2
	}
	return a == b
}

func (e *Evaluator) evalIntBinary(op lexer.Kind, l, r *object.Integer) object.Object {
	switch op {
	case lexer.PLUS:
		return e.RCA.Alloc(&object.Integer{Value: l.Value + r.Value})
	case lexer.MINUS:
		return e.RCA.Alloc(&object.Integer{Value: l.Value - r.Value})
	case lexer.STAR:
		return e.RCA.Alloc(&object.Integer{Value: l.Value * r.Value})
	case lexer.SLASH:
		if r.Value == 0 {
			return object.NewError("division by zero")
		}
		return e.RCA.Alloc(&object.Integer{Value: l.Value / r.Value})
	case lexer.LT:
		return object.NativeBool(l.Value < r.Value)
	case lexer.LE:
		return object.NativeBool(l.Value <= r.Value)
	case lexer.GT:
		return object.NativeBool(l.Value > r.Value)
	case lexer.GE:
		return object.NativeBool(l.Value >= r.Value)
	case lexer.EQ:
		return object.NativeBool(l.Value == r.Value)
	case lexer.NEQ:
		return object.NativeBool(l.Value != r.Value)
	default:
		return object.NewError("operator %s not supported for int", op)
	}
}

func (e *Evaluator) evalFloatBinary(op lexer.Kind, l, r float64) object.Object {
	switch op {
	case lexer.PLUS:
		return e.RCA.Alloc(&object.Float{Value: l + r})
	case lexer.MINUS:
		return e.RCA.Alloc(&object.Float{Value: l - r})
	case lexer.STAR:
		return e.RCA.Alloc(&object.Float{Value: l * r})
	case lexer.SLASH:
		if r == 0 {
			return object.NewError("division by zero")
		}
		return e.RCA.Alloc(&object.Float{Value: l / r})
	case lexer.LT:
		return object.NativeBool(l < r)
	case lexer.LE:
		return object.NativeBool(l <= r)
	case lexer.GT:
		return object.NativeBool(l > r)
	case lexer.GE:
		return object.NativeBool(l >= r)
	case lexer.EQ:
		return object.NativeBool(l == r)
	case lexer.NEQ:
		return object.NativeBool(l != r)
	default:
		return object.NewError("operator %s not supported for float", op)
	}
}

func (e *Evaluator) evalStringBinary(op lexer.Kind, l, r *object.String) object.Object {
	switch op {
	case lexer.PLUS:
		return e.RCA.Alloc(&object.String{Value: l.Value + r.Value})
	case lexer.EQ:
		return object.NativeBool(l.Value == r.Value)
	case lexer.NEQ:
		return object.NativeBool(l.Value != r.Value)
	case lexer.LT:
		return object.NativeBool(l.Value < r.Value)
	case lexer.LE:
		return object.NativeBool(l.Value <= r.Value)
	case lexer.GT:
		return object.NativeBool(l.Value > r.Value)
	case lexer.GE:
		return object.NativeBool(l.Value >= r.Value)
	default:
		return object.NewError("operator %s not supported for string", op)
	}
}

func (e *Evaluator) evalAssignExpr(n *ast.AssignExpr) object.Object {
	val := e.Eval(n.Right)
	if object.IsError(val) {
		return val
	}
	return e.assignTo(n.Left, val)
}

func (e *Evaluator) assignTo(lhs ast.Expr, val object.Object) object.Object {
	switch target := lhs.(type) {
	case *ast.Identifier:
		existing, ok := e.Scope.LookUp(target.Name)
		if !ok {
			return object.NewError("undefined identifier %q", target.Name)
		}
		if _, isFn := existing.(*object.Function); isFn {
			return object.NewError("cannot reassign function %q", target.Name)
		}
		if _, isExt := existing.(*object.ExternalFunction); isExt {
			return object.NewError("cannot reassign external function %q", target.Name)
		}
		if _, isLib := existing.(*object.ExternalLibrary); isLib {
			return object.NewError("cannot reassign library %q", target.Name)
		}
		_, existingIsNull := existing.(*object.Null)
		if !existingIsNull && object.TypeName(existing) != object.TypeName(val) {
			return object.NewError("cannot assign %s to %q of type %s", object.TypeName(val), target.Name, object.TypeName(existing))
		}
		e.RCA.Release(existing)
		if _, ok := e.Scope.Assign(target.Name, val); !ok {
			return object.NewError("undefined identifier %q", target.Name)
		}
		e.RCA.Retain(val)
		return val

	case *ast.IndexExpr:
		indexee := e.Eval(target.Indexee)
		if object.IsError(indexee) {
			return indexee
		}
		idx := e.Eval(target.Index)
		if object.IsError(idx) {
			return idx
		}
		i, ok := idx.(*object.Integer)
		if !ok {
			return object.NewError("index must be int, got %s", object.TypeName(idx))
		}
		arr, ok := indexee.(*object.Array)
		if !ok {
			return object.NewError("cannot index into %s", object.TypeName(indexee))
		}
		if i.Value < 0 || int(i.Value) >= len(arr.Elements) {
			return object.NewError("array index %d out of range (len %d)", i.Value, len(arr.Elements))
		}
		arr.Elements[i.Value] = val
		return val

	case *ast.MemberExpr:
		left := e.Eval(target.Left)
		if object.IsError(left) {
			return left
		}
		sv, ok := left.(*object.StructValue)
		if !ok {
			return object.NewError("cannot access field %q on %s", target.Field, object.TypeName(left))
		}
		declared, ok := sv.Type.FieldTypes[target.Field]
		if !ok {
			return object.NewError("struct %s has no field %q", sv.Type.Name, target.Field)
		}
		if object.TypeName(val) != declared {
			return object.NewError("field %s.%s expects %s, got %s", sv.Type.Name, target.Field, declared, object.TypeName(val))
		}
		sv.Fields[target.Field] = val
		return val

	default:
		return object.NewError("invalid assignment target")
	}
}

func (e *Evaluator) evalCompoundAssignExpr(n *ast.CompoundAssignExpr) object.Object {
	ident, ok := n.Left.(*ast.Identifier)
	if !ok {
		return object.NewError("compound assignment requires a plain identifier")
	}
	current, found := e.Scope.LookUp(ident.Name)
	if !found {
		return object.NewError("undefined identifier %q", ident.Name)
	}
	rhs := e.Eval(n.Right)
	if object.IsError(rhs) {
		return rhs
	}

	var result object.Object
	switch {
	case isInt(current) && isInt(rhs):
		result = e.evalIntBinary(n.Operator, current.(*object.Integer), rhs.(*object.Integer))
	case isFloat(current) && isFloat(rhs):
		result = e.evalFloatBinary(n.Operator, asFloat(current), asFloat(rhs))
	case isString(current) && isString(rhs) && n.Operator == lexer.PLUS:
		result = e.evalStringBinary(n.Operator, current.(*object.String), rhs.(*object.String))
	default:
		return object.NewError("operator %s= not supported between %s and %s", n.Operator, object.TypeName(current), object.TypeName(rhs))
	}
	if object.IsError(result) {
		return result
	}
	return e.assignTo(ident, result)
}

func (e *Evaluator) evalIndexExpr(n *ast.IndexExpr) object.Object {
	indexee := e.Eval(n.Indexee)
	if object.IsError(indexee) {
		return indexee
	}
	idx := e.Eval(n.Index)
	if object.IsError(idx) {
		return idx
	}
	i, ok := idx.(*object.Integer)
	if !ok {
		return object.NewError("index must be int, got %s", object.TypeName(idx))
	}

	switch v := indexee.(type) {
	case *object.Array:
		if i.Value < 0 || int(i.Value) >= len(v.Elements) {
			return object.NewError("array index %d out of range (len %d)", i.Value, len(v.Elements))
		}
		return v.Elements[i.Value]
	case *object.String:
		if i.Value < 0 || int(i.Value) >= len(v.Value) {
			return object.NewError("string index %d out of range (len %d)", i.Value, len(v.Value))
		}
		return e.RCA.Alloc(&object.String{Value: string(v.Value[i.Value])})
	default:
		return object.NewError("cannot index into %s", object.TypeName(indexee))
	}
}

func (e *Evaluator) evalMemberExpr(n *ast.MemberExpr) object.Object {
	left := e.Eval(n.Left)
	if object.IsError(left) {
		return left
	}
	sv, ok := left.(*object.StructValue)
	if !ok {
		return object.NewError("cannot access field %q on %s", n.Field, object.TypeName(left))
	}
	val, ok := sv.Fields[n.Field]
	if !ok {
		return object.NewError("struct %s has no field %q", sv.Type.Name, n.Field)
	}
	return val
}
