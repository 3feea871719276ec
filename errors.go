// This file is part of go-taskparser.
//
// Copyright (C) 2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package taskparser

import (
	"errors"
	"fmt"

	"github.com/DavidGamba/go-taskparser/text"
)

// ErrorConfiguration - Indicates an invalid Context or Parser definition.
// The programmer has to fix these, they never depend on the parsed tokens.
var ErrorConfiguration = errors.New("configuration error")

// ErrorParsing - Indicates that there was an error with cli args parsing.
// Every *ParseError matches it.
var ErrorParsing = errors.New("parse error")

// Parse error kinds, see ParseError.Err.
var (
	ErrorUnknownFlag    = errors.New("unknown flag")
	ErrorUnknownContext = errors.New("unknown context")
	ErrorMissingValue   = errors.New("missing value")
	ErrorTypeCoercion   = errors.New("type coercion failure")
)

// ParseError - Error returned by ParseArgv.
//
// Use errors.Is against ErrorParsing or any of the parse error kinds and
// errors.As to read the offending token and its position.
type ParseError struct {
	Err      error  // ErrorUnknownFlag, ErrorUnknownContext, ErrorMissingValue or ErrorTypeCoercion
	Token    string // Offending token, the value token for ErrorTypeCoercion
	Position int    // Index of Token in the parsed args

	// Active context when the error happened.
	// InContext is false when there was no initial context and no context name had been seen yet.
	Context   string
	InContext bool

	Flag  string // Flag name or alias for ErrorMissingValue and ErrorTypeCoercion
	Kind  Kind   // Kind of Flag
	Cause error  // Underlying conversion error for ErrorTypeCoercion

	contextDesc string
}

func newParseError(err error, token string, position int, c *Context) *ParseError {
	e := &ParseError{
		Err:         err,
		Token:       token,
		Position:    position,
		contextDesc: c.describe(),
	}
	if c != nil {
		e.Context = c.Name()
		e.InContext = true
	}
	return e
}

func (e *ParseError) Error() string {
	var msg string
	switch e.Err {
	case ErrorUnknownFlag:
		msg = fmt.Sprintf(text.ErrorUnknownFlag, e.Token, e.contextDesc)
	case ErrorMissingValue:
		msg = fmt.Sprintf(text.ErrorMissingValue, e.Flag, e.contextDesc)
	case ErrorTypeCoercion:
		msg = fmt.Sprintf(text.ErrorConvertToKind, e.Token, e.Flag, e.Kind)
	default:
		msg = fmt.Sprintf(text.ErrorUnknownContext, e.Token)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg + fmt.Sprintf(text.ErrorPosition, e.Position)
}

func (e *ParseError) Unwrap() []error {
	errs := []error{e.Err, ErrorParsing}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}
