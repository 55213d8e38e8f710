// Copyright 2024 the rlox authors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

// Package interp is the tree-walking evaluator for Lox.
package interp

import (
	"fmt"
	"io"

	"github.com/rlox-lang/rlox/internal/lox/ast"
	"github.com/rlox-lang/rlox/internal/lox/token"
)

// Interpreter evaluates resolved syntax trees. It is reused across REPL
// lines so globals persist for the whole session.
type Interpreter struct {
	globals *Environment
	env     *Environment

	// locals holds the scope distance for every resolved variable
	// reference, filled in by the resolver before interpretation.
	locals map[ast.Expr]int

	stdout io.Writer
}

func New(stdout io.Writer) *Interpreter {
	globals := NewEnvironment(nil)
	defineNatives(globals)
	return &Interpreter{
		globals: globals,
		env:     globals,
		locals:  map[ast.Expr]int{},
		stdout:  stdout,
	}
}

// Interpret executes a program. The first runtime error aborts execution.
func (in *Interpreter) Interpret(statements []ast.Stmt) error {
	for _, stmt := range statements {
		if err := in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// Evaluate computes the value of a single expression. The REPL uses it to
// echo expression results.
func (in *Interpreter) Evaluate(expr ast.Expr) (Value, error) {
	return in.eval(expr)
}

// resolve records how many scopes away a variable reference was declared.
func (in *Interpreter) resolve(expr ast.Expr, depth int) {
	in.locals[expr] = depth
}

func (in *Interpreter) execute(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.Block:
		return in.executeBlock(s.Statements, NewEnvironment(in.env))
	case *ast.Class:
		return in.executeClass(s)
	case *ast.Expression:
		_, err := in.eval(s.Expression)
		return err
	case *ast.Function:
		fn := &Function{declaration: s, closure: in.env}
		in.env.Define(s.Name.Lexeme, fn)
		return nil
	case *ast.If:
		condition, err := in.eval(s.Condition)
		if err != nil {
			return err
		}
		if Truthy(condition) {
			return in.execute(s.ThenBranch)
		}
		if s.ElseBranch != nil {
			return in.execute(s.ElseBranch)
		}
		return nil
	case *ast.Print:
		value, err := in.eval(s.Expression)
		if err != nil {
			return err
		}
		fmt.Fprintln(in.stdout, Stringify(value))
		return nil
	case *ast.Return:
		var value Value
		if s.Value != nil {
			var err error
			if value, err = in.eval(s.Value); err != nil {
				return err
			}
		}
		return &returnSignal{value: value}
	case *ast.Var:
		var value Value
		if s.Initializer != nil {
			var err error
			if value, err = in.eval(s.Initializer); err != nil {
				return err
			}
		}
		in.env.Define(s.Name.Lexeme, value)
		return nil
	case *ast.While:
		for {
			condition, err := in.eval(s.Condition)
			if err != nil {
				return err
			}
			if !Truthy(condition) {
				return nil
			}
			if err := in.execute(s.Body); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("unhandled statement %T", stmt)
	}
}

func (in *Interpreter) executeBlock(statements []ast.Stmt, env *Environment) error {
	previous := in.env
	in.env = env
	defer func() { in.env = previous }()

	for _, stmt := range statements {
		if err := in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) executeClass(s *ast.Class) error {
	var superclass *Class
	if s.Superclass != nil {
		value, err := in.eval(s.Superclass)
		if err != nil {
			return err
		}
		var ok bool
		if superclass, ok = value.(*Class); !ok {
			return runtimeErrorf(s.Superclass.Name, "Superclass must be a class.")
		}
	}

	in.env.Define(s.Name.Lexeme, nil)

	env := in.env
	if superclass != nil {
		env = NewEnvironment(env)
		env.Define("super", superclass)
	}

	methods := make(map[string]*Function, len(s.Methods))
	for _, method := range s.Methods {
		methods[method.Name.Lexeme] = &Function{
			declaration:   method,
			closure:       env,
			isInitializer: method.Name.Lexeme == "init",
		}
	}

	class := &Class{Name: s.Name.Lexeme, Superclass: superclass, Methods: methods}
	return in.env.Assign(s.Name, class)
}

func (in *Interpreter) eval(expr ast.Expr) (Value, error) {
	switch e := expr.(type) {
	case *ast.Assign:
		value, err := in.eval(e.Value)
		if err != nil {
			return nil, err
		}
		if distance, ok := in.locals[e]; ok {
			in.env.AssignAt(distance, e.Name, value)
		} else if err := in.globals.Assign(e.Name, value); err != nil {
			return nil, err
		}
		return value, nil
	case *ast.Binary:
		return in.evalBinary(e)
	case *ast.Call:
		return in.evalCall(e)
	case *ast.Get:
		object, err := in.eval(e.Object)
		if err != nil {
			return nil, err
		}
		if instance, ok := object.(*Instance); ok {
			return instance.Get(e.Name)
		}
		return nil, runtimeErrorf(e.Name, "Only instances have properties.")
	case *ast.Grouping:
		return in.eval(e.Expression)
	case *ast.Literal:
		return e.Value, nil
	case *ast.Logical:
		left, err := in.eval(e.Left)
		if err != nil {
			return nil, err
		}
		if e.Operator.Type == token.Or {
			if Truthy(left) {
				return left, nil
			}
		} else if !Truthy(left) {
			return left, nil
		}
		return in.eval(e.Right)
	case *ast.Set:
		object, err := in.eval(e.Object)
		if err != nil {
			return nil, err
		}
		instance, ok := object.(*Instance)
		if !ok {
			return nil, runtimeErrorf(e.Name, "Only instances have fields.")
		}
		value, err := in.eval(e.Value)
		if err != nil {
			return nil, err
		}
		instance.Set(e.Name, value)
		return value, nil
	case *ast.Super:
		distance := in.locals[e]
		superclass := in.env.GetAt(distance, "super").(*Class)
		instance := in.env.GetAt(distance-1, "this").(*Instance)
		method := superclass.findMethod(e.Method.Lexeme)
		if method == nil {
			return nil, runtimeErrorf(e.Method, "Undefined property '%s'.", e.Method.Lexeme)
		}
		return method.bind(instance), nil
	case *ast.This:
		return in.lookUpVariable(e.Keyword, e)
	case *ast.Unary:
		return in.evalUnary(e)
	case *ast.Variable:
		return in.lookUpVariable(e.Name, e)
	default:
		return nil, fmt.Errorf("unhandled expression %T", expr)
	}
}

func (in *Interpreter) lookUpVariable(name token.Token, expr ast.Expr) (Value, error) {
	if distance, ok := in.locals[expr]; ok {
		return in.env.GetAt(distance, name.Lexeme), nil
	}
	return in.globals.Get(name)
}

func (in *Interpreter) evalUnary(e *ast.Unary) (Value, error) {
	right, err := in.eval(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Operator.Type {
	case token.Bang:
		return !Truthy(right), nil
	case token.Minus:
		number, ok := right.(float64)
		if !ok {
			return nil, runtimeErrorf(e.Operator, "Operand must be a number.")
		}
		return -number, nil
	default:
		return nil, runtimeErrorf(e.Operator, "Invalid unary operator.")
	}
}

func (in *Interpreter) evalBinary(e *ast.Binary) (Value, error) {
	left, err := in.eval(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.eval(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case token.BangEqual:
		return !Equal(left, right), nil
	case token.EqualEqual:
		return Equal(left, right), nil
	case token.Plus:
		switch l := left.(type) {
		case float64:
			if r, ok := right.(float64); ok {
				return l + r, nil
			}
		case string:
			if r, ok := right.(string); ok {
				return l + r, nil
			}
		}
		return nil, runtimeErrorf(e.Operator, "Operands must be two numbers or two strings.")
	}

	l, r, err := numberOperands(e.Operator, left, right)
	if err != nil {
		return nil, err
	}
	switch e.Operator.Type {
	case token.Greater:
		return l > r, nil
	case token.GreaterEqual:
		return l >= r, nil
	case token.Less:
		return l < r, nil
	case token.LessEqual:
		return l <= r, nil
	case token.Minus:
		return l - r, nil
	case token.Slash:
		return l / r, nil
	case token.Star:
		return l * r, nil
	default:
		return nil, runtimeErrorf(e.Operator, "Invalid binary operator.")
	}
}

func (in *Interpreter) evalCall(e *ast.Call) (Value, error) {
	callee, err := in.eval(e.Callee)
	if err != nil {
		return nil, err
	}

	arguments := make([]Value, 0, len(e.Arguments))
	for _, argExpr := range e.Arguments {
		arg, err := in.eval(argExpr)
		if err != nil {
			return nil, err
		}
		arguments = append(arguments, arg)
	}

	callable, ok := callee.(Callable)
	if !ok {
		return nil, runtimeErrorf(e.Paren, "Can only call functions and classes.")
	}
	if len(arguments) != callable.Arity() {
		return nil, runtimeErrorf(e.Paren, "Expected %d arguments but got %d.",
			callable.Arity(), len(arguments))
	}
	return callable.Call(in, arguments)
}

func numberOperands(operator token.Token, left, right Value) (float64, float64, error) {
	l, lok := left.(float64)
	r, rok := right.(float64)
	if !lok || !rok {
		return 0, 0, runtimeErrorf(operator, "Operands must be numbers.")
	}
	return l, r, nil
}
