package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Print renders an expression in the parenthesized form `parse` mode
// prints: `(op left right)` for binary/logical, `(op operand)` for
// unary, `(group inner)` for grouping, literals and variables as
// themselves. Dispatch is a direct type switch, not a visitor — see
// the package doc comment for why.
func Print(e Expr) string {
	switch n := e.(type) {
	case *LiteralExpr:
		return printLiteral(n.Value)
	case *GroupingExpr:
		return parenthesize("group", n.Inner)
	case *UnaryExpr:
		return parenthesize(n.Op.Lexeme, n.Operand)
	case *BinaryExpr:
		return parenthesize(n.Op.Lexeme, n.Left, n.Right)
	case *LogicalExpr:
		return parenthesize(n.Op.Lexeme, n.Left, n.Right)
	case *VariableExpr:
		return n.Name.Lexeme
	case *AssignExpr:
		return parenthesize("= "+n.Name.Lexeme, n.Value)
	case *CallExpr:
		parts := make([]Expr, 0, len(n.Args)+1)
		parts = append(parts, n.Callee)
		parts = append(parts, n.Args...)
		return parenthesize("call", parts...)
	default:
		return "<nil>"
	}
}

func parenthesize(name string, exprs ...Expr) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(name)
	for _, e := range exprs {
		b.WriteByte(' ')
		b.WriteString(Print(e))
	}
	b.WriteByte(')')
	return b.String()
}

func printLiteral(v interface{}) string {
	switch vv := v.(type) {
	case nil:
		return "nil"
	case bool:
		return strconv.FormatBool(vv)
	case string:
		return vv
	case float64:
		if vv == float64(int64(vv)) {
			return fmt.Sprintf("%.1f", vv)
		}
		return strconv.FormatFloat(vv, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", vv)
	}
}
