/*
File    : eta/driver/driver.go

Package driver runs an eta source file end-to-end: read, lex, parse,
evaluate, report. It is the non-interactive counterpart to package repl.
*/
package driver

import (
	"os"

	"eta/eval"
	"eta/ffi"
	"eta/lexer"
	"eta/object"
	"eta/parser"

	"github.com/fatih/color"
)

var redColor = color.New(color.FgRed)

// RunFile reads path, runs it through the lexer/parser/evaluator pipeline,
// and prints accumulated parse errors or the single runtime error to
// stderr. It returns 0 on success, 1 on any failure.
func RunFile(path string) int {
	content, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "eta: cannot read file %q: %v\n", path, err)
		return 1
	}

	lex := lexer.NewLexer(path, string(content))
	prog, errs := parser.ParseProgram(lex)
	if len(errs) > 0 {
		for _, e := range errs {
			redColor.Fprintf(os.Stderr, "%s\n", e)
		}
		return 1
	}

	ev := eval.New(lex, ffi.NewBridge())
	result := ev.Eval(prog)
	ev.RCA.Purge()

	if de, ok := result.(*object.DetailedError); ok {
		redColor.Fprintf(os.Stderr, "%s\n", de.Rendered)
		return 1
	}
	return 0
}
