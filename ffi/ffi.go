/*
File    : eta/ffi/ffi.go

Package ffi is eta's bridge to native code: it loads a shared library with
the host dynamic loader and invokes an exported C function through a
variadic-aware native-call path, mirroring the three-operation contract
(load, resolve, call) the evaluator's `extern` statement needs.

The underlying mechanism is github.com/ebitengine/purego, the Go-ecosystem
equivalent of the dlopen+libffi pairing the interpreter's C++ original uses
directly. purego builds the native call trampoline from a Go function
signature rather than from an explicit ffi_cif, so Call constructs that
signature with reflect and lets purego.RegisterFunc do the marshalling;
Bridge itself keeps the evaluator's extern-call path decoupled from purego.
*/
package ffi

import (
	"fmt"
	"reflect"

	"github.com/ebitengine/purego"
)

// ArgType is the set of C types eta's extern declarations can name.
type ArgType string

const (
	ArgInt    ArgType = "int"
	ArgFloat  ArgType = "float"
	ArgBool   ArgType = "bool"
	ArgString ArgType = "string"
)

// Bridge is the interface the evaluator depends on. It is satisfied by
// *PuregoBridge; tests can substitute a fake to exercise extern-call
// semantics without a real shared library.
type Bridge interface {
	// Load dlopens path and returns an opaque library handle.
	Load(path string) (uintptr, error)
	// Resolve looks up symbol in the library handle returned by Load.
	Resolve(handle uintptr, symbol string) (uintptr, error)
	// Call invokes the function at ptr, whose fixed parameters are typed
	// per argTypes and whose return is typed per retType ("void" for no
	// return value). args holds one Go value per actual argument —
	// int64/float64/bool/string — including any variadic tail; variadic
	// indicates whether the declared signature ends in the "..." marker,
	// in which case argTypes ends with that marker and the tail starts at
	// index len(argTypes)-1.
	Call(ptr uintptr, argTypes []ArgType, retType string, args []any, variadic bool) (any, error)
}

// PuregoBridge is the production Bridge, backed by purego.
type PuregoBridge struct{}

// NewBridge returns the production FFI bridge.
func NewBridge() *PuregoBridge { return &PuregoBridge{} }

func (*PuregoBridge) Load(path string) (uintptr, error) {
	handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return 0, fmt.Errorf("lib: cannot open %q: %w", path, err)
	}
	return handle, nil
}

func (*PuregoBridge) Resolve(handle uintptr, symbol string) (uintptr, error) {
	ptr, err := purego.Dlsym(handle, symbol)
	if err != nil {
		return 0, fmt.Errorf("extern: symbol %q not found: %w", symbol, err)
	}
	return ptr, nil
}

// goType maps one eta/C argument type to the reflect.Type purego expects
// on a registered function's signature.
func goType(t ArgType) reflect.Type {
	switch t {
	case ArgInt:
		return reflect.TypeOf(int32(0))
	case ArgFloat:
		return reflect.TypeOf(float64(0))
	case ArgBool:
		return reflect.TypeOf(int32(0))
	case ArgString:
		return reflect.TypeOf("")
	default:
		return reflect.TypeOf(int32(0))
	}
}

func goValue(t ArgType, v any) (reflect.Value, error) {
	switch t {
	case ArgInt:
		n, ok := v.(int64)
		if !ok {
			return reflect.Value{}, fmt.Errorf("extern: expected int argument, got %T", v)
		}
		return reflect.ValueOf(int32(n)), nil
	case ArgFloat:
		f, ok := v.(float64)
		if !ok {
			return reflect.Value{}, fmt.Errorf("extern: expected float argument, got %T", v)
		}
		return reflect.ValueOf(f), nil
	case ArgBool:
		b, ok := v.(bool)
		if !ok {
			return reflect.Value{}, fmt.Errorf("extern: expected bool argument, got %T", v)
		}
		n := int32(0)
		if b {
			n = 1
		}
		return reflect.ValueOf(n), nil
	case ArgString:
		s, ok := v.(string)
		if !ok {
			return reflect.Value{}, fmt.Errorf("extern: expected string argument, got %T", v)
		}
		return reflect.ValueOf(s), nil
	default:
		return reflect.Value{}, fmt.Errorf("extern: unsupported argument type %q", t)
	}
}

// variadicGoValue classifies an untyped variadic-tail argument by its Go
// dynamic type, since eta's extern declaration has no declared type for it.
func variadicGoValue(v any) (reflect.Value, error) {
	switch n := v.(type) {
	case int64:
		return reflect.ValueOf(int32(n)), nil
	case float64:
		return reflect.ValueOf(n), nil
	case bool:
		if n {
			return reflect.ValueOf(int32(1)), nil
		}
		return reflect.ValueOf(int32(0)), nil
	case string:
		return reflect.ValueOf(n), nil
	default:
		return reflect.Value{}, fmt.Errorf("extern: unsupported variadic argument type %T", v)
	}
}

// Call builds a Go function type matching (argTypes, retType), registers
// ptr against it with purego, and invokes it with args.
func (*PuregoBridge) Call(ptr uintptr, argTypes []ArgType, retType string, args []any, variadic bool) (any, error) {
	fixedCount := len(argTypes)
	if variadic {
		fixedCount = len(argTypes) - 1 // last declared slot is the "..." marker itself
	}
	if fixedCount < 0 {
		fixedCount = 0
	}
	if len(args) < fixedCount {
		return nil, fmt.Errorf("extern: too few arguments: got %d, want at least %d", len(args), fixedCount)
	}

	in := make([]reflect.Type, 0, len(args))
	values := make([]reflect.Value, 0, len(args))
	for i, a := range args {
		if i < fixedCount {
			v, err := goValue(argTypes[i], a)
			if err != nil {
				return nil, err
			}
			in = append(in, v.Type())
			values = append(values, v)
			continue
		}
		v, err := variadicGoValue(a)
		if err != nil {
			return nil, err
		}
		in = append(in, v.Type())
		values = append(values, v)
	}

	var out []reflect.Type
	if retType != "void" {
		out = append(out, goType(ArgType(retType)))
	}

	fnType := reflect.FuncOf(in, out, false)
	fnPtr := reflect.New(fnType)
	purego.RegisterFunc(fnPtr.Interface(), ptr)

	results := fnPtr.Elem().Call(values)

	if retType == "void" {
		return nil, nil
	}
	switch retType {
	case "int":
		return int64(results[0].Int()), nil
	case "float":
		return results[0].Float(), nil
	case "bool":
		return results[0].Int() != 0, nil
	case "string":
		return results[0].String(), nil
	default:
		return nil, fmt.Errorf("extern: unsupported return type %q", retType)
	}
}
