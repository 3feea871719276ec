// This file is part of go-taskparser.
//
// Copyright (C) 2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package taskparser

import (
	"fmt"
	"strings"

	"github.com/DavidGamba/go-taskparser/text"
)

// Context - A named group of arguments, normally a task and its flags.
// A Context with an empty name is the initial context: it holds the flags
// recognized before any context name.
type Context struct {
	name        string
	aliases     []string
	description string

	// Flat structure: names and aliases are all keys pointing to the same
	// argument. It is an alias when key != value.Name().
	args     map[string]*Argument
	argOrder []*Argument

	invokedAs string // Name or alias that selected this copy during a parse
}

// NewContext - Returns a new context with the given arguments.
// An empty name makes it an initial context.
//
// Each argument is either an *Argument or a Flag shorthand:
//
//	c, err := taskparser.NewContext("build",
//		taskparser.Flag("--clean"),
//		taskparser.NewArgument("--target", taskparser.StringKind).SetDefault("all"),
//	)
func NewContext(name string, args ...ArgDefinition) (*Context, error) {
	c := &Context{
		name: name,
		args: map[string]*Argument{},
	}
	for _, def := range args {
		err := c.AddArg(def)
		if err != nil {
			return nil, err
		}
	}
	return c, nil
}

// SetAlias - Adds aliases to a context.
// Collisions with other contexts are validated by NewParser.
func (c *Context) SetAlias(alias ...string) *Context {
	c.aliases = append(c.aliases, alias...)
	return c
}

// SetDescription - Updates the description used in help output.
func (c *Context) SetDescription(s string) *Context {
	c.description = s
	return c
}

// AddArg - Adds an argument to the context.
// It fails with ErrorConfiguration if any of the argument's names or aliases
// is empty, is '--' or is already used by another argument of the context.
// On error the context is left unchanged.
func (c *Context) AddArg(def ArgDefinition) error {
	if def == nil {
		return fmt.Errorf("%w: "+text.ErrorNilDefinition, ErrorConfiguration, "argument")
	}
	arg := def.argument()
	if arg == nil {
		return fmt.Errorf("%w: "+text.ErrorNilDefinition, ErrorConfiguration, "argument")
	}
	names := arg.Names()
	for i, name := range names {
		if name == "" {
			return fmt.Errorf("%w: "+text.ErrorEmptyName, ErrorConfiguration, "argument")
		}
		if name == "--" {
			return fmt.Errorf("%w: "+text.ErrorReservedName, ErrorConfiguration, "argument")
		}
		if v, ok := c.args[name]; ok {
			return fmt.Errorf("%w: "+text.ErrorArgumentDefined, ErrorConfiguration, name, v.Name(), c.describe())
		}
		for _, prev := range names[:i] {
			if prev == name {
				return fmt.Errorf("%w: "+text.ErrorArgumentDefined, ErrorConfiguration, name, arg.Name(), c.describe())
			}
		}
	}
	for _, name := range names {
		c.args[name] = arg
	}
	c.argOrder = append(c.argOrder, arg)
	Logger.Printf("context '%s': added argument %s, aliases %v", c.name, arg.Name(), arg.Aliases())
	return nil
}

// Name - Returns the context name, empty for the initial context.
func (c *Context) Name() string { return c.name }

// IsInitial - Indicates if this is an unnamed, initial context.
func (c *Context) IsInitial() bool { return c.name == "" }

// Aliases - Returns a copy of the context aliases.
func (c *Context) Aliases() []string { return append([]string{}, c.aliases...) }

// Names - Returns the name followed by the aliases.
func (c *Context) Names() []string {
	return append([]string{c.name}, c.aliases...)
}

// Description - Returns the description used in help output.
func (c *Context) Description() string { return c.description }

// InvokedAs - Returns the name or alias that selected the context during a
// parse. Empty for registered templates and for the initial context.
func (c *Context) InvokedAs() string { return c.invokedAs }

// Arg - Returns the argument for the given name or alias.
func (c *Context) Arg(key string) (*Argument, bool) {
	a, ok := c.args[key]
	return a, ok
}

// Args - Returns the context arguments in the order they were added.
func (c *Context) Args() []*Argument {
	return append([]*Argument{}, c.argOrder...)
}

// Value - Returns the value of the argument with the given name or alias,
// nil if there is no such argument.
func (c *Context) Value(key string) interface{} {
	if a, ok := c.args[key]; ok {
		return a.Value()
	}
	return nil
}

// Called - Indicates if the argument with the given name or alias was passed
// on the command line.
func (c *Context) Called(key string) bool {
	if a, ok := c.args[key]; ok {
		return a.Called()
	}
	return false
}

func (c *Context) String() string {
	args := []string{}
	for _, a := range c.argOrder {
		args = append(args, a.String())
	}
	return fmt.Sprintf("Name: %q, Aliases: %v, args: [%s]", c.name, c.aliases, strings.Join(args, ", "))
}

// describe - context description used in messages.
func (c *Context) describe() string {
	if c == nil {
		return text.NoContextName
	}
	if c.name == "" {
		return text.InitialContextName
	}
	return fmt.Sprintf(text.ContextName, c.name)
}

// clone - Returns a deep copy of the context: every argument is copied once
// and all of its names and aliases point to the copy.
func (c *Context) clone() *Context {
	n := &Context{
		name:        c.name,
		aliases:     append([]string(nil), c.aliases...),
		description: c.description,
		args:        make(map[string]*Argument, len(c.args)),
		argOrder:    make([]*Argument, 0, len(c.argOrder)),
	}
	for _, a := range c.argOrder {
		cp := a.copy()
		n.argOrder = append(n.argOrder, cp)
		for _, name := range cp.Names() {
			n.args[name] = cp
		}
	}
	return n
}
