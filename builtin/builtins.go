/*
File    : eta/builtin/builtins.go

Package builtin holds eta's fixed table of built-in functions (§6.3 of the
language's design). Builtins are data, not a switch: Table is populated
once by init() with one *object.Builtin per entry, following the teacher's
slice-of-{Name, Callback} registration pattern.
*/
package builtin

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"

	"eta/object"
)

// Table holds every registered builtin, in registration order.
var Table = make([]*object.Builtin, 0)

// Writer is where print/println send their output. File execution leaves it
// at its default, os.Stdout; the REPL points it at its own writer when it
// starts.
var Writer io.Writer = os.Stdout

// Reader is where read_int/read_float/read_string pull a line from.
var Reader = bufio.NewReader(os.Stdin)

func register(name string, fn object.BuiltinFn) {
	Table = append(Table, &object.Builtin{Name: name, Fn: fn})
}

// Lookup returns the builtin named name, if any.
func Lookup(name string) (*object.Builtin, bool) {
	for _, b := range Table {
		if b.Name == name {
			return b, true
		}
	}
	return nil, false
}

func init() {
	register("len", builtinLen)
	register("os", builtinOS)
	register("lib", builtinLib)
	register("type_of", builtinTypeOf)
	register("to_int", builtinToInt)
	register("to_float", builtinToFloat)
	register("print", builtinPrint)
	register("println", builtinPrintln)
	register("push", builtinPush)
	register("pop", builtinPop)
	register("slice", builtinSlice)
	register("read_int", builtinReadInt)
	register("read_float", builtinReadFloat)
	register("read_string", builtinReadString)
}

func arityError(name string, got int, want string) *object.SimpleError {
	return object.NewError("%s: wrong number of arguments, got=%d, want=%s", name, got, want)
}

func builtinLen(args []object.Object) object.Object {
	if len(args) != 1 {
		return arityError("len", len(args), "1")
	}
	switch v := args[0].(type) {
	case *object.String:
		return &object.Integer{Value: int64(len(v.Value))}
	case *object.Array:
		return &object.Integer{Value: int64(len(v.Elements))}
	default:
		return object.NewError("len: argument must be string or array, got %s", object.TypeName(args[0]))
	}
}

func builtinOS(args []object.Object) object.Object {
	if len(args) != 0 {
		return arityError("os", len(args), "0")
	}
	switch runtime.GOOS {
	case "darwin":
		return &object.String{Value: "darwin"}
	default:
		return &object.String{Value: "linux"}
	}
}

// builtinLib is wired by the evaluator's host hook (see LibOpener), since
// opening a shared library is the FFI bridge's job, not this package's.
// LibOpener is nil until the evaluator installs it.
var LibOpener func(path string) object.Object

func builtinLib(args []object.Object) object.Object {
	if len(args) != 1 {
		return arityError("lib", len(args), "1")
	}
	path, ok := args[0].(*object.String)
	if !ok {
		return object.NewError("lib: argument must be a string, got %s", object.TypeName(args[0]))
	}
	if LibOpener == nil {
		return object.NewError("lib: no FFI bridge installed")
	}
	return LibOpener(path.Value)
}

func builtinTypeOf(args []object.Object) object.Object {
	if len(args) != 1 {
		return arityError("type_of", len(args), "1")
	}
	return &object.String{Value: object.TypeName(args[0])}
}

func builtinToInt(args []object.Object) object.Object {
	if len(args) != 1 {
		return arityError("to_int", len(args), "1")
	}
	switch v := args[0].(type) {
	case *object.Integer:
		return &object.Integer{Value: v.Value}
	case *object.Float:
		return &object.Integer{Value: int64(v.Value)}
	case *object.Boolean:
		if v.Value {
			return &object.Integer{Value: 1}
		}
		return &object.Integer{Value: 0}
	default:
		return object.NewError("to_int: cannot convert %s to int", object.TypeName(args[0]))
	}
}

func builtinToFloat(args []object.Object) object.Object {
	if len(args) != 1 {
		return arityError("to_float", len(args), "1")
	}
	switch v := args[0].(type) {
	case *object.Integer:
		return &object.Float{Value: float64(v.Value)}
	case *object.Float:
		return &object.Float{Value: v.Value}
	default:
		return object.NewError("to_float: cannot convert %s to float", object.TypeName(args[0]))
	}
}

func builtinPrint(args []object.Object) object.Object {
	for _, a := range args {
		fmt.Fprint(Writer, a.Inspect())
	}
	return object.NULL_OBJ
}

func builtinPrintln(args []object.Object) object.Object {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.Inspect()
	}
	fmt.Fprintln(Writer, strings.Join(parts, ""))
	return object.NULL_OBJ
}

func builtinPush(args []object.Object) object.Object {
	if len(args) != 2 {
		return arityError("push", len(args), "2")
	}
	arr, ok := args[0].(*object.Array)
	if !ok {
		return object.NewError("push: first argument must be an array, got %s", object.TypeName(args[0]))
	}
	arr.Elements = append(arr.Elements, args[1])
	return arr
}

func builtinPop(args []object.Object) object.Object {
	if len(args) != 1 {
		return arityError("pop", len(args), "1")
	}
	arr, ok := args[0].(*object.Array)
	if !ok {
		return object.NewError("pop: argument must be an array, got %s", object.TypeName(args[0]))
	}
	if len(arr.Elements) == 0 {
		return object.NewError("pop: array is empty")
	}
	arr.Elements = arr.Elements[:len(arr.Elements)-1]
	return arr
}

func builtinSlice(args []object.Object) object.Object {
	if len(args) != 1 && len(args) != 3 {
		return arityError("slice", len(args), "1 or 3")
	}
	arr, ok := args[0].(*object.Array)
	if !ok {
		return object.NewError("slice: first argument must be an array, got %s", object.TypeName(args[0]))
	}
	if len(args) == 1 {
		cp := make([]object.Object, len(arr.Elements))
		copy(cp, arr.Elements)
		return &object.Array{Elements: cp}
	}
	start, ok1 := args[1].(*object.Integer)
	end, ok2 := args[2].(*object.Integer)
	if !ok1 || !ok2 {
		return object.NewError("slice: start and end must be int")
	}
	if start.Value < 0 || end.Value > int64(len(arr.Elements)) || start.Value >= end.Value {
		return object.NewError("slice: index out of range")
	}
	cp := make([]object.Object, end.Value-start.Value)
	copy(cp, arr.Elements[start.Value:end.Value])
	return &object.Array{Elements: cp}
}

func builtinReadInt(args []object.Object) object.Object {
	if len(args) != 0 {
		return arityError("read_int", len(args), "0")
	}
	line, err := readLine()
	if err != nil {
		return object.NewError("read_int: %s", err)
	}
	n, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
	if err != nil {
		return object.NewError("read_int: %s", err)
	}
	return &object.Integer{Value: n}
}

func builtinReadFloat(args []object.Object) object.Object {
	if len(args) != 0 {
		return arityError("read_float", len(args), "0")
	}
	line, err := readLine()
	if err != nil {
		return object.NewError("read_float: %s", err)
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
	if err != nil {
		return object.NewError("read_float: %s", err)
	}
	return &object.Float{Value: f}
}

func builtinReadString(args []object.Object) object.Object {
	if len(args) != 0 {
		return arityError("read_string", len(args), "0")
	}
	line, err := readLine()
	if err != nil {
		return object.NewError("read_string: %s", err)
	}
	return &object.String{Value: strings.TrimRight(line, "\n")}
}

func readLine() (string, error) {
	return Reader.ReadString('\n')
}
