package sharkara

import (
	"fmt"
	"strings"
)

// FormatTokens renders one Token(kind, "text") line per token.
func FormatTokens(tokens []Token) string {
	var b strings.Builder
	for _, tok := range tokens {
		b.WriteString(tok.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// Dump renders node as an indented tree, two spaces per level.
func Dump(node Node) string {
	var b strings.Builder
	dumpNode(&b, node, 0)
	return b.String()
}

func dumpNode(b *strings.Builder, node Node, depth int) {
	line := func(format string, args ...any) {
		b.WriteString(strings.Repeat("  ", depth))
		fmt.Fprintf(b, format, args...)
		b.WriteByte('\n')
	}

	switch n := node.(type) {
	case *Program:
		if n.Marked {
			line("Program $/")
		} else {
			line("Program")
		}
		dumpStatements(b, n.Statements, depth+1)
	case *Expr:
		line("Expr %s %q", n.Token.Kind, n.Token.Text)
	case *ListLiteral:
		line("ListLiteral (%d)", len(n.Elements))
		for _, elem := range n.Elements {
			dumpNode(b, elem, depth+1)
		}
	case *BinaryExpr:
		line("BinaryExpr %s %q", n.Operator.Kind, n.Operator.Text)
		dumpNode(b, n.Left, depth+1)
		dumpNode(b, n.Right, depth+1)
	case *ExprStmt:
		line("ExprStmt")
		dumpNode(b, n.Expr, depth+1)
	case *AssignStmt:
		line("Assign %s", n.Variable.Text)
		dumpNode(b, n.Value, depth+1)
	case *VarDecl:
		if n.Type != nil {
			line("VarDecl %s %s", n.Name.Text, n.Type.Text)
		} else {
			line("VarDecl %s", n.Name.Text)
		}
		dumpNode(b, n.Value, depth+1)
	case *IfStmt:
		line("If")
		dumpNode(b, n.Condition, depth+1)
		dumpNode(b, n.Body, depth+1)
	case *WhileStmt:
		line("While")
		dumpNode(b, n.Condition, depth+1)
		dumpNode(b, n.Body, depth+1)
	case *ForStmt:
		line("For %s", n.Terminator.Text)
		for _, expr := range n.Control {
			dumpNode(b, expr, depth+1)
		}
		dumpStatements(b, n.Body, depth+1)
	case *FuncDecl:
		line("Func %s", n.Name.Text)
		dumpStatements(b, n.Body, depth+1)
	case *ClassDecl:
		line("Class %s", n.Name.Text)
		dumpStatements(b, n.Body, depth+1)
	case nil:
		line("<nil>")
	default:
		line("%T", node)
	}
}

func dumpStatements(b *strings.Builder, stmts []Statement, depth int) {
	for _, stmt := range stmts {
		dumpNode(b, stmt, depth)
	}
}
