/*
File    : eta/ast/printer.go
*/
package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Print renders a Program back to eta source syntax. It is used by tests to
// verify the parse→print→reparse round trip; it is not meant to preserve
// original formatting, comments, or whitespace.
func Print(p *Program) string {
	var b strings.Builder
	for _, s := range p.Statements {
		printStmt(&b, s, 0)
	}
	return b.String()
}

func indent(b *strings.Builder, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
}

func printStmt(b *strings.Builder, s Stmt, depth int) {
	indent(b, depth)
	switch n := s.(type) {
	case *LetStmt:
		fmt.Fprintf(b, "let %s = %s;\n", n.Name, printExpr(n.Init))
	case *StructDecl:
		fmt.Fprintf(b, "struct %s {", n.Name)
		for i, f := range n.Fields {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(b, "%s: %s", f.Name, f.TypeName)
		}
		b.WriteString("}\n")
	case *ReturnStmt:
		if n.Value == nil {
			b.WriteString("return;\n")
		} else {
			fmt.Fprintf(b, "return %s;\n", printExpr(n.Value))
		}
	case *BlockStmt:
		b.WriteString("{\n")
		for _, st := range n.Statements {
			printStmt(b, st, depth+1)
		}
		indent(b, depth)
		b.WriteString("}\n")
	case *IfStmt:
		fmt.Fprintf(b, "if %s ", printExpr(n.Condition))
		printStmt(b, n.Consequence, depth)
		if n.Alternative != nil {
			indent(b, depth)
			b.WriteString("else ")
			printStmt(b, n.Alternative, depth)
		}
	case *ForStmt:
		b.WriteString("for (")
		if n.Init != nil {
			b.WriteString(strings.TrimRight(printStmtInline(n.Init), ";\n"))
		}
		b.WriteString("; ")
		if n.Condition != nil {
			b.WriteString(printExpr(n.Condition))
		}
		b.WriteString("; ")
		if n.Post != nil {
			b.WriteString(strings.TrimRight(printStmtInline(n.Post), ";\n"))
		}
		b.WriteString(") ")
		printStmt(b, n.Body, depth)
	case *FuncDecl:
		fmt.Fprintf(b, "func %s(%s) ", n.Name, strings.Join(n.Params, ", "))
		printStmt(b, n.Body, depth)
	case *ExternDecl:
		var types []string
		for _, p := range n.Params {
			if p.Variadic {
				types = append(types, "...")
			} else {
				types = append(types, p.TypeName)
			}
		}
		fmt.Fprintf(b, "extern %s func %s(%s): %s;\n",
			n.Library, n.Name, strings.Join(types, ", "), n.ReturnType)
	case *ExprStmt:
		fmt.Fprintf(b, "%s;\n", printExpr(n.Expression))
	default:
		fmt.Fprintf(b, "<?stmt %T>\n", s)
	}
}

// printStmtInline renders a statement without the indentation prefix, used
// for the for-header's init/post slots which sit on the same line.
func printStmtInline(s Stmt) string {
	var b strings.Builder
	printStmt(&b, s, 0)
	return b.String()
}

func printExpr(e Expr) string {
	switch n := e.(type) {
	case *Identifier:
		return n.Name
	case *NullLiteral:
		return "null"
	case *IntLiteral:
		return fmt.Sprintf("%d", n.Value)
	case *FloatLiteral:
		s := strconv.FormatFloat(n.Value, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	case *BoolLiteral:
		if n.Value {
			return "true"
		}
		return "false"
	case *StringLiteral:
		return "'" + strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(n.Value) + "'"
	case *ArrayLiteral:
		parts := make([]string, len(n.Elements))
		for i, el := range n.Elements {
			parts[i] = printExpr(el)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case *StructLiteral:
		parts := make([]string, len(n.Fields))
		for i, f := range n.Fields {
			parts[i] = fmt.Sprintf("%s: %s", f.Name, printExpr(f.Value))
		}
		return fmt.Sprintf("%s{%s}", n.Struct, strings.Join(parts, ", "))
	case *UnaryExpr:
		return fmt.Sprintf("(%s%s)", n.Operator, printExpr(n.Operand))
	case *BinaryExpr:
		return fmt.Sprintf("(%s %s %s)", printExpr(n.Left), n.Operator, printExpr(n.Right))
	case *AssignExpr:
		return fmt.Sprintf("(%s = %s)", printExpr(n.Left), printExpr(n.Right))
	case *CompoundAssignExpr:
		return fmt.Sprintf("(%s %s= %s)", printExpr(n.Left), n.Operator, printExpr(n.Right))
	case *CallExpr:
		parts := make([]string, len(n.Args))
		for i, a := range n.Args {
			parts[i] = printExpr(a)
		}
		return fmt.Sprintf("%s(%s)", printExpr(n.Callee), strings.Join(parts, ", "))
	case *IndexExpr:
		return fmt.Sprintf("%s[%s]", printExpr(n.Indexee), printExpr(n.Index))
	case *MemberExpr:
		return fmt.Sprintf("%s.%s", printExpr(n.Left), n.Field)
	default:
		return fmt.Sprintf("<?expr %T>", e)
	}
}
