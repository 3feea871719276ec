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

	"github.com/DavidGamba/go-taskparser/internal/kind"
)

// Kind - Indicates the type of value an Argument holds and whether it
// consumes the token that follows it.
type Kind = kind.Kind

// Argument kinds.
const (
	// BoolKind - presence only, the value becomes true when mentioned.
	BoolKind = kind.Bool
	// IncrementKind - presence only, each mention adds one to the int value.
	IncrementKind = kind.Increment
	StringKind    = kind.String
	IntKind       = kind.Int
	Float64Kind   = kind.Float64
	// DurationKind - parsed with time.ParseDuration.
	DurationKind = kind.Duration
	// StringSliceKind - each mention appends its value to a []string.
	StringSliceKind = kind.StringSlice
)

// ParseKind - Returns the Kind for names like "bool", "string", "int",
// "float", "duration", "list" or "increment".
func ParseKind(name string) (Kind, error) {
	k, err := kind.Parse(name)
	if err != nil {
		return k, fmt.Errorf("%w: %w", ErrorConfiguration, err)
	}
	return k, nil
}

// ArgDefinition - Anything that can be added to a Context as an argument:
// either a full *Argument or the Flag shorthand.
type ArgDefinition interface {
	argument() *Argument
}

// Flag - Shorthand for a boolean argument with the given name.
// For example: `NewContext("build", Flag("--clean"))`.
type Flag string

func (f Flag) argument() *Argument {
	return NewArgument(string(f), BoolKind)
}

// Argument - A single flag specification and its current value.
type Argument struct {
	name        string
	aliases     []string
	kind        Kind
	def         interface{}
	description string

	value     interface{}
	called    bool   // Indicates if the argument was passed on the command line
	usedAlias string // Name or alias used when the argument was called
}

// NewArgument - Returns a new argument with no aliases and a nil default.
// Names are matched verbatim so they normally include their dashes, for
// example "--name" or "-n".
func NewArgument(name string, k Kind) *Argument {
	return &Argument{
		name: name,
		kind: k,
	}
}

func (a *Argument) argument() *Argument {
	return a
}

// SetAlias - Adds aliases to an argument.
func (a *Argument) SetAlias(alias ...string) *Argument {
	a.aliases = append(a.aliases, alias...)
	return a
}

// SetDefault - Sets the value used when the argument isn't called.
func (a *Argument) SetDefault(v interface{}) *Argument {
	a.def = v
	return a
}

// SetHelp - Updates the description used in help output.
func (a *Argument) SetHelp(s string) *Argument {
	a.description = s
	return a
}

// Name - Returns the argument's primary name.
func (a *Argument) Name() string { return a.name }

// Aliases - Returns a copy of the argument's aliases.
func (a *Argument) Aliases() []string { return append([]string{}, a.aliases...) }

// Names - Returns the name followed by the aliases.
func (a *Argument) Names() []string {
	return append([]string{a.name}, a.aliases...)
}

// Kind - Returns the argument's kind.
func (a *Argument) Kind() Kind { return a.kind }

// Default - Returns the configured default.
func (a *Argument) Default() interface{} { return a.def }

// Help - Returns the description used in help output.
func (a *Argument) Help() string { return a.description }

// Called - Indicates if the argument was passed on the command line.
func (a *Argument) Called() bool { return a.called }

// UsedAlias - Returns the name or alias used to call the argument.
// Empty when the argument wasn't called.
func (a *Argument) UsedAlias() string { return a.usedAlias }

// Value - Returns the parsed value, or the default if the argument wasn't called.
//
// Type assertions are required, for example: `arg.Value().(string)`.
// BoolKind returns bool, IncrementKind and IntKind return int,
// DurationKind returns time.Duration and StringSliceKind returns []string.
// A []string default is returned as a copy.
func (a *Argument) Value() interface{} {
	if a.called {
		return a.value
	}
	return copyValue(a.def)
}

func (a *Argument) String() string {
	return fmt.Sprintf("%s(%s)=%v", a.name, a.kind, a.Value())
}

// save - Records a mention of the argument and converts its value, if any.
func (a *Argument) save(usedAlias string, args ...string) error {
	var value interface{}
	switch a.kind {
	case kind.Bool:
		value = true
		if len(args) > 0 {
			v, err := kind.Coerce(a.kind, args[0])
			if err != nil {
				return err
			}
			value = v
		}
	case kind.Increment:
		if len(args) > 0 {
			return kind.ErrorTakesNoValue
		}
		value = a.count() + 1
	case kind.StringSlice:
		prev, _ := a.Value().([]string)
		// Copy so the template default is never shared with a parse result.
		ss := make([]string, 0, len(prev)+len(args))
		ss = append(ss, prev...)
		value = append(ss, args...)
	default:
		v, err := kind.Coerce(a.kind, args[0])
		if err != nil {
			return err
		}
		value = v
	}
	a.value = value
	a.called = true
	a.usedAlias = usedAlias
	return nil
}

// count - Returns the current Increment count.
// Numeric defaults of any type are honoured, other defaults count as 0.
func (a *Argument) count() int {
	v := a.Value()
	if n, ok := v.(int); ok {
		return n
	}
	if v == nil {
		return 0
	}
	n, err := kind.Normalize(kind.Increment, v)
	if err != nil {
		Logger.Printf("argument %s: ignoring non numeric default %v", a.name, v)
		return 0
	}
	return n.(int)
}

// copy - Returns an independent copy of the argument.
func (a *Argument) copy() *Argument {
	c := *a
	c.aliases = append([]string(nil), a.aliases...)
	c.def = copyValue(a.def)
	c.value = copyValue(a.value)
	return &c
}

func copyValue(v interface{}) interface{} {
	if ss, ok := v.([]string); ok && ss != nil {
		return append([]string{}, ss...)
	}
	return v
}
