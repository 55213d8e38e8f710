// Copyright 2024 the rlox authors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package interp

import (
	"github.com/rlox-lang/rlox/internal/lox/token"
)

// Class is a runtime class. Calling a class constructs an instance and runs
// its "init" method, if any.
type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]*Function
}

var _ Callable = (*Class)(nil)

func (c *Class) Arity() int {
	if init := c.findMethod("init"); init != nil {
		return init.Arity()
	}
	return 0
}

func (c *Class) Call(in *Interpreter, arguments []Value) (Value, error) {
	instance := &Instance{class: c, fields: map[string]Value{}}
	if init := c.findMethod("init"); init != nil {
		if _, err := init.bind(instance).Call(in, arguments); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

func (c *Class) findMethod(name string) *Function {
	if method, ok := c.Methods[name]; ok {
		return method
	}
	if c.Superclass != nil {
		return c.Superclass.findMethod(name)
	}
	return nil
}

func (c *Class) String() string {
	return c.Name
}

// Instance is an object: a bag of fields plus a pointer to its class for
// method lookup. Fields shadow methods of the same name.
type Instance struct {
	class  *Class
	fields map[string]Value
}

func (i *Instance) Get(name token.Token) (Value, error) {
	if value, ok := i.fields[name.Lexeme]; ok {
		return value, nil
	}
	if method := i.class.findMethod(name.Lexeme); method != nil {
		return method.bind(i), nil
	}
	return nil, runtimeErrorf(name, "Undefined property '%s'.", name.Lexeme)
}

func (i *Instance) Set(name token.Token, value Value) {
	i.fields[name.Lexeme] = value
}

func (i *Instance) String() string {
	return i.class.Name + " instance"
}
