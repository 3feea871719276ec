// This file is part of go-taskparser.
//
// Copyright (C) 2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package kind - argument value kinds and the conversion of command line
// tokens into values of those kinds.
package kind

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/DavidGamba/go-taskparser/text"
)

// Kind - Indicates the type of value an argument holds.
type Kind int

// Kinds
const (
	Bool Kind = iota
	Increment

	String
	Int
	Float64
	Duration

	StringSlice
)

// ErrorTakesNoValue - returned when a presence only kind is given a value.
var ErrorTakesNoValue = errors.New(text.ErrorTakesNoValue)

var kindNames = map[Kind]string{
	Bool:        "bool",
	Increment:   "increment",
	String:      "string",
	Int:         "int",
	Float64:     "float64",
	Duration:    "duration",
	StringSlice: "list",
}

// Parse accepts the canonical name of each kind plus a few common spellings.
// The empty string is Bool.
var kindAliases = map[string]Kind{
	"":              Bool,
	"bool":          Bool,
	"boolean":       Bool,
	"increment":     Increment,
	"incrementable": Increment,
	"count":         Increment,
	"string":        String,
	"str":           String,
	"int":           Int,
	"integer":       Int,
	"float":         Float64,
	"float64":       Float64,
	"duration":      Duration,
	"list":          StringSlice,
	"strings":       StringSlice,
	"string-slice":  StringSlice,
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// TakesValue - Indicates if the argument consumes the token that follows it.
func (k Kind) TakesValue() bool {
	return k != Bool && k != Increment
}

// Parse - Returns the Kind for the given name.
func Parse(name string) (Kind, error) {
	if k, ok := kindAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return k, nil
	}
	return Bool, fmt.Errorf(text.ErrorUnknownKind, name)
}

// Coerce - Converts a single token into a value of the given kind.
//
// StringSlice returns the token itself, appending it is the caller's job.
// Increment never accepts a token.
func Coerce(k Kind, s string) (interface{}, error) {
	switch k {
	case Bool:
		return strconv.ParseBool(s)
	case Increment:
		return nil, ErrorTakesNoValue
	case Int:
		return strconv.Atoi(s)
	case Float64:
		return strconv.ParseFloat(s, 64)
	case Duration:
		return time.ParseDuration(s)
	default: // String, StringSlice
		return s, nil
	}
}

// Normalize - Converts a decoded value (for example from a YAML or TOML
// document) into the Go type used for the given kind.
// nil stays nil.
func Normalize(k Kind, v interface{}) (interface{}, error) {
	if v == nil {
		return nil, nil
	}
	switch k {
	case StringSlice:
		switch vv := v.(type) {
		case []string:
			return append([]string{}, vv...), nil
		case []interface{}:
			out := make([]string, 0, len(vv))
			for _, e := range vv {
				out = append(out, fmt.Sprint(e))
			}
			return out, nil
		default:
			return []string{fmt.Sprint(v)}, nil
		}
	case Increment:
		return Coerce(Int, fmt.Sprint(v))
	case Bool:
		if b, ok := v.(bool); ok {
			return b, nil
		}
	case Int:
		if i, ok := v.(int); ok {
			return i, nil
		}
	case Float64:
		if f, ok := v.(float64); ok {
			return f, nil
		}
	case Duration:
		if d, ok := v.(time.Duration); ok {
			return d, nil
		}
	}
	return Coerce(k, fmt.Sprint(v))
}
