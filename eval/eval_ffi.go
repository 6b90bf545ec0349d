/*
File    : eta/eval/eval_ffi.go

Marshals evaluated call arguments across the ffi.Bridge boundary and wires
the `lib()` builtin to the evaluator's own bridge instance.
*/
package eval

import (
	"fmt"

	"eta/ast"
	"eta/builtin"
	"eta/ffi"
	"eta/object"
)

// InstallBuiltinHooks points builtin.LibOpener at this evaluator's bridge,
// so `lib('path')` calls load a real shared library. Call once per
// Evaluator before running any program that may use extern.
func (e *Evaluator) InstallBuiltinHooks() {
	builtin.LibOpener = func(path string) object.Object {
		handle, err := e.Bridge.Load(path)
		if err != nil {
			return object.NewError("%s", err.Error())
		}
		return e.RCA.Alloc(&object.ExternalLibrary{Path: path, Handle: handle})
	}
}

var ffiTypeNames = map[string]ffi.ArgType{
	"int":    ffi.ArgInt,
	"float":  ffi.ArgFloat,
	"bool":   ffi.ArgBool,
	"string": ffi.ArgString,
}

func (e *Evaluator) callExternal(n *ast.CallExpr, fn *object.ExternalFunction, args []object.Object) object.Object {
	fixed := len(fn.ParamTypes)
	if fn.Variadic {
		if len(args) < fixed {
			return object.NewError("extern %s expects at least %d argument(s), got %d", fn.Symbol, fixed, len(args))
		}
	} else if len(args) != fixed {
		return object.NewError("extern %s expects %d argument(s), got %d", fn.Symbol, fixed, len(args))
	}

	nativeArgs := make([]any, 0, len(args))
	argTypes := make([]ffi.ArgType, 0, len(fn.ParamTypes))

	for i, a := range args {
		if _, isStruct := a.(*object.StructValue); isStruct {
			return object.NewError("extern %s: struct values cannot be passed to native functions", fn.Symbol)
		}
		if i < fixed {
			declared := fn.ParamTypes[i]
			native, err := typeCheckArg(declared, a)
			if err != nil {
				return object.NewError("extern %s: argument %d: %s", fn.Symbol, i+1, err.Error())
			}
			nativeArgs = append(nativeArgs, native)
			argTypes = append(argTypes, ffiTypeNames[declared])
			continue
		}
		native, err := nativeVariadicValue(a)
		if err != nil {
			return object.NewError("extern %s: argument %d: %s", fn.Symbol, i+1, err.Error())
		}
		nativeArgs = append(nativeArgs, native)
	}
	if fn.Variadic {
		argTypes = append(argTypes, ffi.ArgType("..."))
	}

	result, err := e.Bridge.Call(fn.Pointer, argTypes, fn.ReturnType, nativeArgs, fn.Variadic)
	if err != nil {
		return object.NewError("%s", err.Error())
	}
	return e.wrapNativeResult(fn.ReturnType, result)
}

// typeCheckArg validates a fixed-slot argument against its declared C type
// and returns the Go native value ffi.Bridge.Call expects for it.
func typeCheckArg(declared string, a object.Object) (any, error) {
	switch declared {
	case "int":
		v, ok := a.(*object.Integer)
		if !ok {
			return nil, typeMismatch(declared, a)
		}
		return v.Value, nil
	case "float":
		v, ok := a.(*object.Float)
		if !ok {
			return nil, typeMismatch(declared, a)
		}
		return v.Value, nil
	case "bool":
		v, ok := a.(*object.Boolean)
		if !ok {
			return nil, typeMismatch(declared, a)
		}
		return v.Value, nil
	case "string":
		v, ok := a.(*object.String)
		if !ok {
			return nil, typeMismatch(declared, a)
		}
		return v.Value, nil
	default:
		return nil, fmt.Errorf("unsupported extern argument type %q", declared)
	}
}

func typeMismatch(declared string, a object.Object) error {
	return fmt.Errorf("expected %s, got %s", declared, object.TypeName(a))
}

func nativeVariadicValue(a object.Object) (any, error) {
	switch v := a.(type) {
	case *object.Integer:
		return v.Value, nil
	case *object.Float:
		return v.Value, nil
	case *object.Boolean:
		return v.Value, nil
	case *object.String:
		return v.Value, nil
	default:
		return nil, fmt.Errorf("unsupported variadic argument type %s", object.TypeName(a))
	}
}

func (e *Evaluator) wrapNativeResult(retType string, result any) object.Object {
	switch retType {
	case "void":
		return object.NULL_OBJ
	case "int":
		return e.RCA.Alloc(&object.Integer{Value: result.(int64)})
	case "float":
		return e.RCA.Alloc(&object.Float{Value: result.(float64)})
	case "bool":
		return object.NativeBool(result.(bool))
	case "string":
		return e.RCA.Alloc(&object.String{Value: result.(string)})
	default:
		return object.NewError("unsupported extern return type %q", retType)
	}
}
