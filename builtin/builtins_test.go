/*
File    : eta/builtin/builtins_test.go
*/
package builtin

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"eta/object"

	"github.com/stretchr/testify/assert"
)

func call(t *testing.T, name string, args ...object.Object) object.Object {
	t.Helper()
	b, ok := Lookup(name)
	assert.True(t, ok, "builtin %q must be registered", name)
	return b.Fn(args)
}

func TestLen_StringAndArray(t *testing.T) {
	assert.Equal(t, int64(5), call(t, "len", &object.String{Value: "hello"}).(*object.Integer).Value)
	arr := &object.Array{Elements: []object.Object{object.NULL_OBJ, object.NULL_OBJ}}
	assert.Equal(t, int64(2), call(t, "len", arr).(*object.Integer).Value)
}

func TestLen_WrongArity(t *testing.T) {
	assert.True(t, object.IsError(call(t, "len")))
}

func TestTypeOf(t *testing.T) {
	assert.Equal(t, "int", call(t, "type_of", &object.Integer{Value: 1}).(*object.String).Value)

	st := &object.StructType{Name: "Point"}
	sv := &object.StructValue{Type: st, Fields: map[string]object.Object{}}
	assert.Equal(t, "Point", call(t, "type_of", sv).(*object.String).Value)
}

func TestToIntToFloat(t *testing.T) {
	assert.Equal(t, int64(3), call(t, "to_int", &object.Float{Value: 3.9}).(*object.Integer).Value)
	assert.Equal(t, 3.0, call(t, "to_float", &object.Integer{Value: 3}).(*object.Float).Value)
}

func TestPrintln_WritesToConfiguredWriter(t *testing.T) {
	var buf bytes.Buffer
	old := Writer
	Writer = &buf
	defer func() { Writer = old }()

	call(t, "println", &object.String{Value: "hi"})
	assert.Equal(t, "hi\n", buf.String())
}

func TestPushAndPop(t *testing.T) {
	arr := &object.Array{Elements: []object.Object{&object.Integer{Value: 1}}}
	call(t, "push", arr, &object.Integer{Value: 2})
	assert.Len(t, arr.Elements, 2)

	call(t, "pop", arr)
	assert.Len(t, arr.Elements, 1)
}

func TestPop_EmptyArrayErrors(t *testing.T) {
	arr := &object.Array{}
	assert.True(t, object.IsError(call(t, "pop", arr)))
}

func TestSlice_FullCopyAndRange(t *testing.T) {
	arr := &object.Array{Elements: []object.Object{
		&object.Integer{Value: 1}, &object.Integer{Value: 2}, &object.Integer{Value: 3},
	}}
	full := call(t, "slice", arr).(*object.Array)
	assert.Len(t, full.Elements, 3)

	partial := call(t, "slice", arr, &object.Integer{Value: 0}, &object.Integer{Value: 2}).(*object.Array)
	assert.Len(t, partial.Elements, 2)
}

func TestSlice_OutOfRangeErrors(t *testing.T) {
	arr := &object.Array{Elements: []object.Object{&object.Integer{Value: 1}}}
	assert.True(t, object.IsError(call(t, "slice", arr, &object.Integer{Value: 0}, &object.Integer{Value: 5})))
}

func TestReadInt(t *testing.T) {
	oldReader := Reader
	Reader = bufio.NewReader(strings.NewReader("42\n"))
	defer func() { Reader = oldReader }()

	assert.Equal(t, int64(42), call(t, "read_int").(*object.Integer).Value)
}
