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
	"io"
	"log"
	"strings"

	"github.com/DavidGamba/go-taskparser/internal/sliceiterator"
	"github.com/DavidGamba/go-taskparser/text"
)

// Logger instance set to `io.Discard` by default.
// Enable debug logging by setting: `Logger.SetOutput(os.Stderr)`.
var Logger = log.New(io.Discard, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)

// Parser - Holds the context templates and parses command line args against them.
//
// A Parser only reads its templates, every parse works on copies, so it is
// safe for concurrent use.
// Registered contexts must not be modified after calling NewParser.
type Parser struct {
	initial *Context

	// map[name/alias]context
	contexts map[string]*Context
	order    []*Context
}

// ParseResult - The populated contexts, in the order they were invoked, and
// the args given after the '--' separator.
type ParseResult struct {
	Contexts []*Context

	// Remainder is nil when no '--' was given and an empty slice when '--'
	// was the last arg.
	Remainder []string
}

// NewParser - Returns a parser for the given initial context (can be nil)
// and named contexts.
//
// It fails with ErrorConfiguration if any context is nil or unnamed, if any
// name or alias is empty or '--', or if any name or alias is used twice
// across all contexts.
func NewParser(initial *Context, contexts ...*Context) (*Parser, error) {
	p := &Parser{
		initial:  initial,
		contexts: map[string]*Context{},
	}
	for i, c := range contexts {
		if c == nil {
			return nil, fmt.Errorf("%w: "+text.ErrorNilDefinition, ErrorConfiguration, "context")
		}
		if c.Name() == "" {
			return nil, fmt.Errorf("%w: "+text.ErrorUnnamedContext, ErrorConfiguration, i)
		}
		for _, name := range c.Names() {
			if name == "" {
				return nil, fmt.Errorf("%w: "+text.ErrorEmptyName, ErrorConfiguration, "context alias")
			}
			if name == "--" {
				return nil, fmt.Errorf("%w: "+text.ErrorReservedName, ErrorConfiguration, "context")
			}
			if v, ok := p.contexts[name]; ok {
				return nil, fmt.Errorf("%w: "+text.ErrorContextDefined, ErrorConfiguration, name, v.Name())
			}
			p.contexts[name] = c
		}
		p.order = append(p.order, c)
	}
	return p, nil
}

// Initial - Returns the initial context, nil if there is none.
func (p *Parser) Initial() *Context {
	return p.initial
}

// Context - Returns the registered context for the given name or alias.
func (p *Parser) Context(name string) (*Context, bool) {
	c, ok := p.contexts[name]
	return c, ok
}

// Contexts - Returns the registered named contexts in registration order.
func (p *Parser) Contexts() []*Context {
	return append([]*Context{}, p.order...)
}

// ParseArgv - Parses the given args, normally `os.Args[1:]`.
//
// The returned contexts are copies of the registered ones with the values
// found in args. The initial context, when there is one, is always first.
// The rest follow the order in which their names were given.
// Arguments that weren't given keep their defaults.
//
// On error the result is nil and the error is a *ParseError.
func (p *Parser) ParseArgv(args []string) (*ParseResult, error) {
	Logger.Printf("ParseArgv args: %v(%d)\n", args, len(args))
	result := &ParseResult{Contexts: []*Context{}}

	var current *Context
	if p.initial != nil {
		current = p.initial.clone()
		result.Contexts = append(result.Contexts, current)
	}

	iterator := sliceiterator.New(args)

ARGS_LOOP:
	for iterator.Next() {
		token := iterator.Value()

		// handle terminator
		if token == "--" {
			result.Remainder = iterator.Rest()
			Logger.Printf("remainder: %q\n", result.Remainder)
			break ARGS_LOOP
		}

		// handle contexts
		if c, ok := p.contexts[token]; ok {
			current = c.clone()
			current.invokedAs = token
			result.Contexts = append(result.Contexts, current)
			Logger.Printf("context '%s' called as '%s'\n", current.Name(), token)
			continue ARGS_LOOP
		}

		// handle flags of the active context
		if current != nil {
			if arg, ok := current.args[token]; ok {
				err := consumeArg(current, arg, token, iterator)
				if err != nil {
					return nil, err
				}
				continue ARGS_LOOP
			}
			if ft, is := isFlag(token); is && ft.HasValue {
				if arg, ok := current.args[ft.Flag]; ok {
					err := arg.save(ft.Flag, ft.Value)
					if err != nil {
						return nil, coercionError(current, arg, ft.Flag, ft.Value, iterator.Index(), err)
					}
					Logger.Printf("argument %s = %v\n", arg.Name(), arg.Value())
					continue ARGS_LOOP
				}
			}
		}

		if _, is := isFlag(token); is {
			return nil, newParseError(ErrorUnknownFlag, token, iterator.Index(), current)
		}
		return nil, newParseError(ErrorUnknownContext, token, iterator.Index(), current)
	}

	Logger.Printf("result: %v\n", result.Contexts)
	return result, nil
}

// consumeArg - Saves a called argument, reading the following arg as its
// value when the argument kind takes one.
func consumeArg(c *Context, arg *Argument, token string, iterator *sliceiterator.Iterator) error {
	if !arg.Kind().TakesValue() {
		// Presence only kinds can't fail without an inline value.
		_ = arg.save(token)
		Logger.Printf("argument %s = %v\n", arg.Name(), arg.Value())
		return nil
	}
	// '--' is never a value, it always starts the remainder.
	if next, ok := iterator.PeekNextValue(); !ok || next == "--" {
		e := newParseError(ErrorMissingValue, token, iterator.Index(), c)
		e.Flag = token
		e.Kind = arg.Kind()
		return e
	}
	iterator.Next()
	value := iterator.Value()
	err := arg.save(token, value)
	if err != nil {
		return coercionError(c, arg, token, value, iterator.Index(), err)
	}
	Logger.Printf("argument %s = %v\n", arg.Name(), arg.Value())
	return nil
}

func coercionError(c *Context, arg *Argument, flag, value string, position int, cause error) *ParseError {
	e := newParseError(ErrorTypeCoercion, value, position, c)
	e.Flag = flag
	e.Kind = arg.Kind()
	e.Cause = cause
	return e
}

// Names - Returns the names of the returned contexts, empty for the initial context.
func (r *ParseResult) Names() []string {
	names := make([]string, 0, len(r.Contexts))
	for _, c := range r.Contexts {
		names = append(names, c.Name())
	}
	return names
}

// Lookup - Returns the first returned context with the given name.
// Use "" for the initial context.
func (r *ParseResult) Lookup(name string) (*Context, bool) {
	for _, c := range r.Contexts {
		if c.Name() == name {
			return c, true
		}
	}
	return nil, false
}

// HasRemainder - Indicates if the '--' separator was given.
func (r *ParseResult) HasRemainder() bool {
	return r.Remainder != nil
}

// RemainderString - Returns the remainder joined by spaces.
func (r *ParseResult) RemainderString() string {
	return strings.Join(r.Remainder, " ")
}
