/*
File    : eta/repl/repl.go

Package repl implements eta's interactive Read-Eval-Print Loop. It keeps the
readline-based loop and color scheme of the teacher's original REPL, driving
a single persistent Evaluator across lines so let-bindings and function
declarations survive between prompts.
*/
package repl

import (
	"io"
	"strings"

	"eta/builtin"
	"eta/eval"
	"eta/ffi"
	"eta/lexer"
	"eta/object"
	"eta/parser"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl bundles the cosmetic strings printed at startup.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// NewRepl constructs a Repl with its banner furniture.
func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to eta!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the main loop: read a line, evaluate it against a persistent
// Evaluator, print the result or error, repeat until '.exit' or EOF.
func (r *Repl) Start(writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	lex := lexer.NewLexer("<repl>", "")
	ev := eval.New(lex, ffi.NewBridge())
	builtin.Writer = writer

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}
		rl.SaveHistory(line)

		result := EvalLine(line, ev, writer)
		if result == nil {
			continue
		}
		if _, ok := result.(*object.DetailedError); ok {
			redColor.Fprintf(writer, "%s\n", result.Inspect())
			continue
		}
		if _, ok := result.(*object.Null); ok {
			continue
		}
		yellowColor.Fprintf(writer, "%s\n", result.Inspect())
	}
}

// EvalLine parses and evaluates one line of input against ev, which carries
// the scope, allocator, and FFI bridge state across calls. This is the
// function external callers drive the REPL through without the readline
// loop attached.
func EvalLine(line string, ev *eval.Evaluator, writer io.Writer) object.Object {
	lex := lexer.NewLexer("<repl>", line)
	ev.Lex = lex

	prog, errs := parser.ParseProgram(lex)
	if len(errs) > 0 {
		for _, e := range errs {
			redColor.Fprintf(writer, "%s\n", e)
		}
		return nil
	}

	return ev.Eval(prog)
}
