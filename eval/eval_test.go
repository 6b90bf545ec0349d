/*
File    : eta/eval/eval_test.go
*/
package eval

import (
	"bytes"
	"testing"

	"eta/builtin"
	"eta/lexer"
	"eta/object"
	"eta/parser"

	"github.com/stretchr/testify/assert"
)

func run(t *testing.T, src string) object.Object {
	t.Helper()
	lex := lexer.NewLexer("<test>", src)
	prog, errs := parser.ParseProgram(lex)
	assert.Empty(t, errs, "unexpected parse errors: %v", errs)
	ev := New(lex, nil)
	return ev.Eval(prog)
}

func TestEvalIntArithmetic(t *testing.T) {
	result := run(t, `let x = 2 + 3 * 4; x;`)
	i, ok := result.(*object.Integer)
	assert.True(t, ok)
	assert.Equal(t, int64(14), i.Value)
}

func TestEvalDivisionByZero(t *testing.T) {
	result := run(t, `let x = 1 / 0; x;`)
	_, ok := result.(*object.DetailedError)
	assert.True(t, ok)
}

func TestEvalIfElse(t *testing.T) {
	result := run(t, `
		let x = 10;
		let y = 0;
		if x > 5 { y = 1; } else { y = 2; }
		y;
	`)
	i, ok := result.(*object.Integer)
	assert.True(t, ok)
	assert.Equal(t, int64(1), i.Value)
}

func TestEvalForLoopSum(t *testing.T) {
	result := run(t, `
		let sum = 0;
		for (let i = 0; i < 5; i = i + 1) {
			sum += i;
		}
		sum;
	`)
	i, ok := result.(*object.Integer)
	assert.True(t, ok)
	assert.Equal(t, int64(10), i.Value)
}

func TestEvalForLoopReturnPropagates(t *testing.T) {
	result := run(t, `
		func find() {
			for (let i = 0; i < 10; i = i + 1) {
				if i == 3 {
					return i;
				}
			}
			return -1;
		}
		find();
	`)
	i, ok := result.(*object.Integer)
	assert.True(t, ok)
	assert.Equal(t, int64(3), i.Value)
}

func TestEvalFunctionCallAndClosure(t *testing.T) {
	result := run(t, `
		func adder(n) {
			func add(x) {
				return x + n;
			}
			return add;
		}
		let add5 = adder(5);
		add5(10);
	`)
	i, ok := result.(*object.Integer)
	assert.True(t, ok)
	assert.Equal(t, int64(15), i.Value)
}

func TestEvalFunctionArityError(t *testing.T) {
	result := run(t, `
		func add(a, b) { return a + b; }
		add(1);
	`)
	_, ok := result.(*object.DetailedError)
	assert.True(t, ok)
}

func TestEvalArrayIndexReadWrite(t *testing.T) {
	result := run(t, `
		let a = [1, 2, 3];
		a[1] = 99;
		a[1];
	`)
	i, ok := result.(*object.Integer)
	assert.True(t, ok)
	assert.Equal(t, int64(99), i.Value)
}

func TestEvalArrayIndexOutOfRange(t *testing.T) {
	result := run(t, `
		let a = [1, 2, 3];
		a[10];
	`)
	_, ok := result.(*object.DetailedError)
	assert.True(t, ok)
}

func TestEvalEmptyArrayIndex(t *testing.T) {
	result := run(t, `
		let a = [];
		a[0];
	`)
	_, ok := result.(*object.DetailedError)
	assert.True(t, ok)
}

func TestEvalStructFieldTypeCheck(t *testing.T) {
	result := run(t, `
		struct Point { x: int, y: int }
		let p = Point{x: 1, y: 'two'};
	`)
	_, ok := result.(*object.DetailedError)
	assert.True(t, ok)
}

func TestEvalStructFieldReadWrite(t *testing.T) {
	result := run(t, `
		struct Point { x: int, y: int }
		let p = Point{x: 1, y: 2};
		p.x = 10;
		p.x;
	`)
	i, ok := result.(*object.Integer)
	assert.True(t, ok)
	assert.Equal(t, int64(10), i.Value)
}

func TestEvalReassignFunctionIsError(t *testing.T) {
	result := run(t, `
		func f() { return 1; }
		f = 2;
	`)
	_, ok := result.(*object.DetailedError)
	assert.True(t, ok)
}

func TestEvalStringConcat(t *testing.T) {
	result := run(t, `'foo' + 'bar';`)
	s, ok := result.(*object.String)
	assert.True(t, ok)
	assert.Equal(t, "foobar", s.Value)
}

func TestEvalCrossTypeMismatch(t *testing.T) {
	result := run(t, `1 + 'two';`)
	_, ok := result.(*object.DetailedError)
	assert.True(t, ok)
}

func TestEvalMixedIntFloatIsTypeMismatch(t *testing.T) {
	result := run(t, `1 + 2.5;`)
	_, ok := result.(*object.DetailedError)
	assert.True(t, ok)
}

func TestEvalReassignNullBindingSucceeds(t *testing.T) {
	result := run(t, `let x = null; x = 5; x;`)
	i, ok := result.(*object.Integer)
	assert.True(t, ok)
	assert.Equal(t, int64(5), i.Value)
}

func TestEvalReassignReleasesOldValue(t *testing.T) {
	lex := lexer.NewLexer("<test>", `let x = 5; x = 10;`)
	prog, errs := parser.ParseProgram(lex)
	assert.Empty(t, errs)
	ev := New(lex, nil)
	ev.Eval(prog)
	ev.RCA.Sweep()
	assert.Equal(t, 1, ev.RCA.Len(), "reassignment should release the old Integer(5) so sweep reclaims it")
}

func TestEvalBlockScopeReleasesBindingsOnExit(t *testing.T) {
	lex := lexer.NewLexer("<test>", `
		let keep = 1;
		if true {
			let temp = 99;
		}
	`)
	prog, errs := parser.ParseProgram(lex)
	assert.Empty(t, errs)
	ev := New(lex, nil)
	ev.Eval(prog)
	ev.RCA.Sweep()
	assert.Equal(t, 1, ev.RCA.Len(), "temp's Integer(99) should be released when the if-block scope exits, leaving only keep's Integer(1)")
}

func TestEvalArrayEqualityByIdentity(t *testing.T) {
	result := run(t, `
		let a = [1, 2];
		let b = [1, 2];
		a == b;
	`)
	b, ok := result.(*object.Boolean)
	assert.True(t, ok)
	assert.False(t, b.Value)
}

func TestEvalToFloatToIntRoundTrip(t *testing.T) {
	result := run(t, `to_float(to_int(3.9));`)
	f, ok := result.(*object.Float)
	assert.True(t, ok)
	assert.Equal(t, float64(3), f.Value)
}

func TestEvalBuiltinPrintlnWritesToWriter(t *testing.T) {
	var buf bytes.Buffer
	oldWriter := builtin.Writer
	builtin.Writer = &buf
	defer func() { builtin.Writer = oldWriter }()

	run(t, `println('hi');`)
	assert.Equal(t, "hi\n", buf.String())
}

func TestEvalRCAPurgedAfterProgram(t *testing.T) {
	lex := lexer.NewLexer("<test>", `let x = 1 + 2;`)
	prog, errs := parser.ParseProgram(lex)
	assert.Empty(t, errs)
	ev := New(lex, nil)
	ev.Eval(prog)
	ev.RCA.Purge()
	assert.Equal(t, 0, ev.RCA.Len())
}
