/*
File    : eta/object/object_test.go
*/
package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeName(t *testing.T) {
	assert.Equal(t, "int", TypeName(&Integer{Value: 1}))
	assert.Equal(t, "float", TypeName(&Float{Value: 1.5}))
	assert.Equal(t, "bool", TypeName(TRUE_OBJ))
	assert.Equal(t, "string", TypeName(&String{Value: "hi"}))
	assert.Equal(t, "null", TypeName(NULL_OBJ))

	st := &StructType{Name: "Point", FieldOrder: []string{"x"}, FieldTypes: map[string]string{"x": "int"}}
	sv := &StructValue{Type: st, Fields: map[string]Object{"x": &Integer{Value: 1}}}
	assert.Equal(t, "Point", TypeName(sv))
}

func TestNativeBool_ReturnsSingletons(t *testing.T) {
	assert.Same(t, TRUE_OBJ, NativeBool(true))
	assert.Same(t, FALSE_OBJ, NativeBool(false))
}

func TestIsError(t *testing.T) {
	assert.True(t, IsError(&SimpleError{Message: "boom"}))
	assert.True(t, IsError(&DetailedError{Rendered: "boom"}))
	assert.False(t, IsError(&Integer{Value: 1}))
}

func TestArrayInspect(t *testing.T) {
	a := &Array{Elements: []Object{&Integer{Value: 1}, &Integer{Value: 2}}}
	assert.Equal(t, "[1, 2]", a.Inspect())
}

func TestStructValueInspect(t *testing.T) {
	st := &StructType{Name: "P", FieldOrder: []string{"x", "y"}}
	sv := &StructValue{Type: st, Fields: map[string]Object{
		"x": &Integer{Value: 1},
		"y": &Integer{Value: 2},
	}}
	assert.Equal(t, "P{x: 1, y: 2}", sv.Inspect())
}
