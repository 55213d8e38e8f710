// Copyright 2024 the rlox authors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

// Package ast defines the syntax tree produced by the parser. Nodes are
// always handled through pointers so that the resolver can use them as map
// keys.
package ast

import "github.com/rlox-lang/rlox/internal/lox/token"

type Expr interface {
	exprNode()
}

// Assign is an assignment to an already-declared variable: name = value.
type Assign struct {
	Name  token.Token
	Value Expr
}

// Binary is an infix arithmetic or comparison expression.
type Binary struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

// Call is a function or method invocation. Paren is the closing parenthesis,
// kept for runtime error reporting.
type Call struct {
	Callee    Expr
	Paren     token.Token
	Arguments []Expr
}

// Get is a property access: object.name.
type Get struct {
	Object Expr
	Name   token.Token
}

type Grouping struct {
	Expression Expr
}

// Literal holds nil, bool, float64 or string.
type Literal struct {
	Value any
}

// Logical is a short-circuiting "and" or "or" expression.
type Logical struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

// Set is a property assignment: object.name = value.
type Set struct {
	Object Expr
	Name   token.Token
	Value  Expr
}

// Super is a superclass method access: super.method.
type Super struct {
	Keyword token.Token
	Method  token.Token
}

type This struct {
	Keyword token.Token
}

type Unary struct {
	Operator token.Token
	Right    Expr
}

// Variable is a reference to a named variable.
type Variable struct {
	Name token.Token
}

func (*Assign) exprNode()   {}
func (*Binary) exprNode()   {}
func (*Call) exprNode()     {}
func (*Get) exprNode()      {}
func (*Grouping) exprNode() {}
func (*Literal) exprNode()  {}
func (*Logical) exprNode()  {}
func (*Set) exprNode()      {}
func (*Super) exprNode()    {}
func (*This) exprNode()     {}
func (*Unary) exprNode()    {}
func (*Variable) exprNode() {}

type Stmt interface {
	stmtNode()
}

type Block struct {
	Statements []Stmt
}

// Class declares a class, optionally with a superclass and a list of
// methods.
type Class struct {
	Name       token.Token
	Superclass *Variable
	Methods    []*Function
}

// Expression is an expression evaluated for its side effects.
type Expression struct {
	Expression Expr
}

// Function declares a named function or a method.
type Function struct {
	Name   token.Token
	Params []token.Token
	Body   []Stmt
}

type If struct {
	Condition  Expr
	ThenBranch Stmt
	ElseBranch Stmt
}

type Print struct {
	Expression Expr
}

// Return carries the "return" keyword token for error reporting. Value is
// nil for a bare "return;".
type Return struct {
	Keyword token.Token
	Value   Expr
}

// Var declares a variable. Initializer is nil for "var x;".
type Var struct {
	Name        token.Token
	Initializer Expr
}

type While struct {
	Condition Expr
	Body      Stmt
}

func (*Block) stmtNode()      {}
func (*Class) stmtNode()      {}
func (*Expression) stmtNode() {}
func (*Function) stmtNode()   {}
func (*If) stmtNode()         {}
func (*Print) stmtNode()      {}
func (*Return) stmtNode()     {}
func (*Var) stmtNode()        {}
func (*While) stmtNode()      {}
