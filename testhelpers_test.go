// This file is part of go-taskparser.
//
// Copyright (C) 2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package taskparser

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func checkError(t *testing.T, got, expected error) {
	t.Helper()
	if (got == nil && expected != nil) || (got != nil && expected == nil) || (got != nil && expected != nil && !errors.Is(got, expected)) {
		t.Errorf("wrong error received: got = '%#v', want '%#v'", got, expected)
	}
}

// setupTestLogging - Defines an output for the default Logger and returns a
// function that prints the output if the output is not empty and discards
// the Logger output again.
//
// Usage:
//
//	logTestOutput := setupTestLogging(t)
//	defer logTestOutput()
func setupTestLogging(t *testing.T) func() {
	s := ""
	buf := bytes.NewBufferString(s)
	Logger.SetOutput(buf)
	return func() {
		Logger.SetOutput(io.Discard)
		if len(buf.String()) > 0 {
			t.Log("\n" + buf.String())
		}
	}
}

// mustContext - NewContext that fails the test on configuration errors.
func mustContext(t *testing.T, name string, args ...ArgDefinition) *Context {
	t.Helper()
	c, err := NewContext(name, args...)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	return c
}

func mustParser(t *testing.T, initial *Context, contexts ...*Context) *Parser {
	t.Helper()
	p, err := NewParser(initial, contexts...)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	return p
}
