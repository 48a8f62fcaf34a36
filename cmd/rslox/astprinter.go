package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/JDCodeWork/rslox/lox"
)

// formatProgram renders a parsed program as one s-expression per
// statement, the form the run command dumps under --show-ast.
func formatProgram(program []lox.Statement) string {
	rendered := make([]string, 0, len(program))
	for _, stmt := range program {
		rendered = append(rendered, formatStmt(stmt))
	}
	return strings.Join(rendered, "\n")
}

func formatStmt(stmt lox.Statement) string {
	switch s := stmt.(type) {
	case *lox.ExpressionStmt:
		return formatExpr(s.Expr)
	case *lox.PrintStmt:
		return "(print " + formatExpr(s.Expr) + ")"
	case *lox.VarStmt:
		if s.Initializer == nil {
			return "(var " + s.Name + ")"
		}
		return "(var " + s.Name + " " + formatExpr(s.Initializer) + ")"
	case *lox.BlockStmt:
		parts := make([]string, 0, len(s.Statements)+1)
		parts = append(parts, "block")
		for _, inner := range s.Statements {
			parts = append(parts, formatStmt(inner))
		}
		return "(" + strings.Join(parts, " ") + ")"
	case *lox.IfStmt:
		if s.Else == nil {
			return "(if " + formatExpr(s.Condition) + " " + formatStmt(s.Then) + ")"
		}
		return "(if " + formatExpr(s.Condition) + " " + formatStmt(s.Then) + " " + formatStmt(s.Else) + ")"
	case *lox.WhileStmt:
		if s.Increment == nil {
			return "(while " + formatExpr(s.Condition) + " " + formatStmt(s.Body) + ")"
		}
		return "(while " + formatExpr(s.Condition) + " " + formatStmt(s.Body) + " " + formatExpr(s.Increment) + ")"
	case *lox.FunctionStmt:
		return formatFunction("fun", s)
	case *lox.ReturnStmt:
		if s.Value == nil {
			return "(return)"
		}
		return "(return " + formatExpr(s.Value) + ")"
	case *lox.ClassStmt:
		var b strings.Builder
		b.WriteString("(class ")
		b.WriteString(s.Name)
		if s.Superclass != nil {
			b.WriteString(" < ")
			b.WriteString(s.Superclass.Name)
		}
		for _, method := range s.Methods {
			b.WriteString(" ")
			b.WriteString(formatFunction("method", method))
		}
		b.WriteString(")")
		return b.String()
	case *lox.BreakStmt:
		return "(break)"
	case *lox.ContinueStmt:
		return "(continue)"
	default:
		return fmt.Sprintf("(? %T)", stmt)
	}
}

func formatFunction(kind string, fn *lox.FunctionStmt) string {
	var b strings.Builder
	b.WriteString("(")
	b.WriteString(kind)
	b.WriteString(" ")
	b.WriteString(fn.Name)
	b.WriteString(" (")
	for i, param := range fn.Params {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(param.Name)
	}
	b.WriteString(")")
	for _, stmt := range fn.Body {
		b.WriteString(" ")
		b.WriteString(formatStmt(stmt))
	}
	b.WriteString(")")
	return b.String()
}

func formatExpr(expr lox.Expression) string {
	switch e := expr.(type) {
	case *lox.NumberLiteral:
		return strconv.FormatFloat(e.Value, 'f', -1, 64)
	case *lox.StringLiteral:
		return strconv.Quote(e.Value)
	case *lox.BoolLiteral:
		return strconv.FormatBool(e.Value)
	case *lox.NilLiteral:
		return "nil"
	case *lox.GroupingExpr:
		return "(group " + formatExpr(e.Expr) + ")"
	case *lox.UnaryExpr:
		return "(" + string(e.Operator) + " " + formatExpr(e.Right) + ")"
	case *lox.BinaryExpr:
		return "(" + string(e.Operator) + " " + formatExpr(e.Left) + " " + formatExpr(e.Right) + ")"
	case *lox.LogicalExpr:
		return "(" + strings.ToLower(string(e.Operator)) + " " + formatExpr(e.Left) + " " + formatExpr(e.Right) + ")"
	case *lox.VariableExpr:
		return e.Name
	case *lox.AssignExpr:
		return "(= " + e.Name + " " + formatExpr(e.Value) + ")"
	case *lox.CallExpr:
		parts := make([]string, 0, len(e.Args)+2)
		parts = append(parts, "call", formatExpr(e.Callee))
		for _, arg := range e.Args {
			parts = append(parts, formatExpr(arg))
		}
		return "(" + strings.Join(parts, " ") + ")"
	case *lox.GetExpr:
		return "(. " + formatExpr(e.Object) + " " + e.Name + ")"
	case *lox.SetExpr:
		return "(= (. " + formatExpr(e.Object) + " " + e.Name + ") " + formatExpr(e.Value) + ")"
	case *lox.ThisExpr:
		return "this"
	case *lox.SuperExpr:
		return "(super " + e.Method + ")"
	default:
		return fmt.Sprintf("(? %T)", expr)
	}
}
