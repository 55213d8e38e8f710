// Copyright 2024 the rlox authors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// PrintExpr renders an expression in parenthesized prefix form, e.g.
// (* (- 123) (group 45.67)). It backs the "rlox ast" debug command.
func PrintExpr(expr Expr) string {
	switch e := expr.(type) {
	case *Assign:
		return parenthesize("= "+e.Name.Lexeme, e.Value)
	case *Binary:
		return parenthesize(e.Operator.Lexeme, e.Left, e.Right)
	case *Call:
		return parenthesize("call", append([]Expr{e.Callee}, e.Arguments...)...)
	case *Get:
		return parenthesize("."+e.Name.Lexeme, e.Object)
	case *Grouping:
		return parenthesize("group", e.Expression)
	case *Literal:
		return formatLiteral(e.Value)
	case *Logical:
		return parenthesize(e.Operator.Lexeme, e.Left, e.Right)
	case *Set:
		return parenthesize("= ."+e.Name.Lexeme, e.Object, e.Value)
	case *Super:
		return "(super " + e.Method.Lexeme + ")"
	case *This:
		return "this"
	case *Unary:
		return parenthesize(e.Operator.Lexeme, e.Right)
	case *Variable:
		return e.Name.Lexeme
	default:
		return fmt.Sprintf("<unknown expr %T>", expr)
	}
}

// PrintStmt renders a statement in the same prefix form.
func PrintStmt(stmt Stmt) string {
	switch s := stmt.(type) {
	case *Block:
		var sb strings.Builder
		sb.WriteString("(block")
		for _, inner := range s.Statements {
			sb.WriteString(" ")
			sb.WriteString(PrintStmt(inner))
		}
		sb.WriteString(")")
		return sb.String()
	case *Class:
		var sb strings.Builder
		sb.WriteString("(class " + s.Name.Lexeme)
		if s.Superclass != nil {
			sb.WriteString(" < " + s.Superclass.Name.Lexeme)
		}
		for _, method := range s.Methods {
			sb.WriteString(" " + PrintStmt(method))
		}
		sb.WriteString(")")
		return sb.String()
	case *Expression:
		return parenthesize(";", s.Expression)
	case *Function:
		var sb strings.Builder
		sb.WriteString("(fun " + s.Name.Lexeme + " (")
		for i, param := range s.Params {
			if i > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(param.Lexeme)
		}
		sb.WriteString(")")
		for _, body := range s.Body {
			sb.WriteString(" " + PrintStmt(body))
		}
		sb.WriteString(")")
		return sb.String()
	case *If:
		if s.ElseBranch == nil {
			return "(if " + PrintExpr(s.Condition) + " " + PrintStmt(s.ThenBranch) + ")"
		}
		return "(if-else " + PrintExpr(s.Condition) + " " + PrintStmt(s.ThenBranch) +
			" " + PrintStmt(s.ElseBranch) + ")"
	case *Print:
		return parenthesize("print", s.Expression)
	case *Return:
		if s.Value == nil {
			return "(return)"
		}
		return parenthesize("return", s.Value)
	case *Var:
		if s.Initializer == nil {
			return "(var " + s.Name.Lexeme + ")"
		}
		return "(var " + s.Name.Lexeme + " = " + PrintExpr(s.Initializer) + ")"
	case *While:
		return "(while " + PrintExpr(s.Condition) + " " + PrintStmt(s.Body) + ")"
	default:
		return fmt.Sprintf("<unknown stmt %T>", stmt)
	}
}

func parenthesize(name string, exprs ...Expr) string {
	var sb strings.Builder
	sb.WriteString("(")
	sb.WriteString(name)
	for _, expr := range exprs {
		sb.WriteString(" ")
		sb.WriteString(PrintExpr(expr))
	}
	sb.WriteString(")")
	return sb.String()
}

func formatLiteral(value any) string {
	switch v := value.(type) {
	case nil:
		return "nil"
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
