/*
File    : eta/object/object.go

Package object defines the runtime value model the evaluator produces and
consumes. Every value is an Object; Object is a closed tagged union
(Kind() reports which concrete type backs it) rather than a class
hierarchy, mirroring the AST's discriminant-plus-payload shape.
*/
package object

import (
	"fmt"
	"strconv"
	"strings"

	"eta/ast"
)

// Kind discriminates the concrete type behind an Object.
type Kind string

const (
	NULL          Kind = "NULL"
	INT           Kind = "INT"
	FLOAT         Kind = "FLOAT"
	BOOL          Kind = "BOOL"
	STRING        Kind = "STRING"
	ARRAY         Kind = "ARRAY"
	STRUCT_TYPE   Kind = "STRUCT_TYPE"
	STRUCT_VALUE  Kind = "STRUCT_VALUE"
	RETURN_VALUE  Kind = "RETURN_VALUE"
	SIMPLE_ERROR  Kind = "SIMPLE_ERROR"
	DETAILED_ERR  Kind = "DETAILED_ERROR"
	FUNCTION      Kind = "FUNCTION"
	BUILTIN       Kind = "BUILTIN"
	EXTERN_FUNC   Kind = "EXTERNAL_FUNCTION"
	EXTERN_LIB    Kind = "EXTERNAL_LIBRARY"
)

// Object is satisfied by every runtime value.
type Object interface {
	Kind() Kind
	Inspect() string
}

// Null is the single null value. Use NULL_OBJ rather than constructing one.
type Null struct{}

func (*Null) Kind() Kind      { return NULL }
func (*Null) Inspect() string { return "null" }

// Integer wraps a 64-bit signed integer.
type Integer struct{ Value int64 }

func (*Integer) Kind() Kind        { return INT }
func (i *Integer) Inspect() string { return strconv.FormatInt(i.Value, 10) }

// Float wraps a 64-bit IEEE float.
type Float struct{ Value float64 }

func (*Float) Kind() Kind        { return FLOAT }
func (f *Float) Inspect() string { return strconv.FormatFloat(f.Value, 'g', -1, 64) }

// Boolean wraps a bool. Use TRUE_OBJ/FALSE_OBJ rather than constructing one.
type Boolean struct{ Value bool }

func (*Boolean) Kind() Kind        { return BOOL }
func (b *Boolean) Inspect() string { return strconv.FormatBool(b.Value) }

// String wraps a byte sequence.
type String struct{ Value string }

func (*String) Kind() Kind        { return STRING }
func (s *String) Inspect() string { return s.Value }

// Array is an ordered, mutable sequence of Object handles.
type Array struct{ Elements []Object }

func (*Array) Kind() Kind { return ARRAY }
func (a *Array) Inspect() string {
	parts := make([]string, len(a.Elements))
	for i, e := range a.Elements {
		parts[i] = e.Inspect()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// StructType is the declaration produced by `struct Name { ... }`: an
// ordered field list plus a name→type-name lookup for assignment checks.
type StructType struct {
	Name       string
	FieldOrder []string
	FieldTypes map[string]string
}

func (*StructType) Kind() Kind        { return STRUCT_TYPE }
func (s *StructType) Inspect() string { return "struct " + s.Name }

// StructValue is a record instance: a handle to its StructType plus a
// name→Object map of current field values.
type StructValue struct {
	Type   *StructType
	Fields map[string]Object
}

func (*StructValue) Kind() Kind { return STRUCT_VALUE }
func (s *StructValue) Inspect() string {
	parts := make([]string, 0, len(s.Type.FieldOrder))
	for _, name := range s.Type.FieldOrder {
		parts = append(parts, fmt.Sprintf("%s: %s", name, s.Fields[name].Inspect()))
	}
	return fmt.Sprintf("%s{%s}", s.Type.Name, strings.Join(parts, ", "))
}

// ReturnValue is the one-shot sentinel that unwinds block evaluation up to
// the nearest call frame. It is never visible to user code; Kind() exists
// only so the evaluator can recognise it on the way up.
type ReturnValue struct{ Value Object }

func (*ReturnValue) Kind() Kind        { return RETURN_VALUE }
func (r *ReturnValue) Inspect() string { return r.Value.Inspect() }

// SimpleError is a message-only error with no source context. Built-ins
// and low-level helpers return these; evaluator entry points promote them
// to DetailedError once a Location is available.
type SimpleError struct{ Message string }

func (*SimpleError) Kind() Kind        { return SIMPLE_ERROR }
func (e *SimpleError) Inspect() string { return "error: " + e.Message }

func NewError(format string, args ...any) *SimpleError {
	return &SimpleError{Message: fmt.Sprintf(format, args...)}
}

// DetailedError carries a fully rendered source-context string (header,
// offending line, caret span, message) as produced by lexer.FormatError.
// This is the shape printed to the user.
type DetailedError struct{ Rendered string }

func (*DetailedError) Kind() Kind        { return DETAILED_ERR }
func (e *DetailedError) Inspect() string { return e.Rendered }

// Function is a user-defined closure: its declared parameters, its body,
// and the scope active at the point of definition.
type Function struct {
	Params []string
	Body   *ast.BlockStmt
	Env    Env
}

func (*Function) Kind() Kind        { return FUNCTION }
func (f *Function) Inspect() string { return fmt.Sprintf("func(%s)", strings.Join(f.Params, ", ")) }

// Env is the subset of *scope.Scope that the object package needs to know
// about. It is defined here (rather than importing package scope directly)
// to avoid an object↔scope import cycle, since Scope's Variables map holds
// Objects.
type Env interface {
	LookUp(name string) (Object, bool)
}

// BuiltinFn is the Go function signature every built-in implements.
type BuiltinFn func(args []Object) Object

// Builtin wraps a native Go function as a callable Object.
type Builtin struct {
	Name string
	Fn   BuiltinFn
}

func (*Builtin) Kind() Kind        { return BUILTIN }
func (b *Builtin) Inspect() string { return "builtin " + b.Name }

// ExternalFunction is a resolved symbol from a loaded shared library,
// along with the declared signature used to type-check and marshal calls.
type ExternalFunction struct {
	Library    *ExternalLibrary
	Symbol     string
	Pointer    uintptr
	ParamTypes []string
	Variadic   bool
	ReturnType string
}

func (*ExternalFunction) Kind() Kind { return EXTERN_FUNC }
func (e *ExternalFunction) Inspect() string {
	return fmt.Sprintf("extern func %s(...)", e.Symbol)
}

// ExternalLibrary is a loaded shared-library handle.
type ExternalLibrary struct {
	Path   string
	Handle uintptr
}

func (*ExternalLibrary) Kind() Kind        { return EXTERN_LIB }
func (l *ExternalLibrary) Inspect() string { return "library " + l.Path }

// Sentinel singletons. They are never registered with an RCA and compared
// by identity throughout the evaluator.
var (
	NULL_OBJ  = &Null{}
	TRUE_OBJ  = &Boolean{Value: true}
	FALSE_OBJ = &Boolean{Value: false}
)

// NativeBool returns the shared TRUE_OBJ/FALSE_OBJ singleton for a Go bool.
func NativeBool(b bool) *Boolean {
	if b {
		return TRUE_OBJ
	}
	return FALSE_OBJ
}

// IsError reports whether obj is either error shape.
func IsError(obj Object) bool {
	if obj == nil {
		return false
	}
	k := obj.Kind()
	return k == SIMPLE_ERROR || k == DETAILED_ERR
}

// TypeName returns the user-facing type name used by type_of and by
// assignment type-mismatch diagnostics.
func TypeName(obj Object) string {
	switch v := obj.(type) {
	case *Null:
		return "null"
	case *Integer:
		return "int"
	case *Float:
		return "float"
	case *Boolean:
		return "bool"
	case *String:
		return "string"
	case *Array:
		return "array"
	case *StructType:
		return "struct_type"
	case *StructValue:
		return v.Type.Name
	case *Function:
		return "function"
	case *Builtin:
		return "builtin"
	case *ExternalFunction:
		return "external_function"
	case *ExternalLibrary:
		return "external_library"
	default:
		return string(obj.Kind())
	}
}
