// This file is part of go-taskparser.
//
// Copyright (C) 2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

/*
Package termcolor - Colours terminal output with the 16 colour ANSI codes.

Colours are only written when the output is a terminal on a platform that
understands ANSI escape codes.
Output can be completely disabled by setting the environment variable
TASKS_DISABLE_COLORS.

	fmt.Fprintln(os.Stderr, termcolor.Red.Sprint(os.Stderr, "ERROR", true))
*/
package termcolor

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// DisableColors - When true no colour output is produced.
var DisableColors = os.Getenv("TASKS_DISABLE_COLORS") != ""

var isTerminalFn = term.IsTerminal

var goos = runtime.GOOS

// Painter - Wraps text in a foreground colour.
type Painter struct {
	attr color.Attribute
}

// Foreground colours.
var (
	Black   = Painter{color.FgBlack}
	Red     = Painter{color.FgRed}
	Green   = Painter{color.FgGreen}
	Yellow  = Painter{color.FgYellow}
	Blue    = Painter{color.FgBlue}
	Magenta = Painter{color.FgMagenta}
	Cyan    = Painter{color.FgCyan}
	White   = Painter{color.FgWhite}
)

// Paint - Returns s wrapped in the colour codes, followed by a reset.
// It doesn't check the output, see Sprint.
func (p Painter) Paint(s string, bold bool) string {
	c := color.New(p.attr)
	if bold {
		c = color.New(color.Bold, p.attr)
	}
	c.EnableColor()
	return c.Sprint(s)
}

// Sprint - Returns s coloured when w supports colours and s unmodified otherwise.
func (p Painter) Sprint(w io.Writer, s string, bold bool) string {
	if !Enabled(w) {
		return s
	}
	return p.Paint(s, bold)
}

// Fprintln - Writes s to w followed by a new line, coloured when w supports colours.
func (p Painter) Fprintln(w io.Writer, s string, bold bool) (int, error) {
	return fmt.Fprintln(w, p.Sprint(w, s, bold))
}

// Enabled - Indicates if colour codes should be written to w.
func Enabled(w io.Writer) bool {
	if DisableColors {
		return false
	}
	switch goos {
	case "linux", "darwin":
	default:
		return false
	}
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isTerminalFn(int(f.Fd()))
}
