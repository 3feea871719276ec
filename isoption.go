// This file is part of go-taskparser.
//
// Copyright (C) 2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package taskparser

import (
	"regexp"
	"strings"
)

// 1: leading dashes
// 2: flag
// 3: =value
var isFlagRegex = regexp.MustCompile(`^(--?)([^=]+)(.*?)$`)

type flagToken struct {
	Flag     string // Flag including its leading dashes
	Value    string
	HasValue bool // Indicates the token used the --flag=value form
}

/*
isFlag - Check if the given string is shaped like a flag (starts with - or --).
Return the flag, dashes included, and its inline value if the string had one.

The special tokens '--' and '-' are not flags.
'--' is the remainder separator and it is the caller's responsibility.
*/
func isFlag(s string) (flagToken, bool) {
	if s == "--" || s == "-" {
		return flagToken{Flag: s}, false
	}
	match := isFlagRegex.FindStringSubmatch(s)
	if len(match) == 0 {
		return flagToken{}, false
	}
	ft := flagToken{Flag: match[1] + match[2]}
	if strings.HasPrefix(match[3], "=") {
		ft.Value = strings.TrimPrefix(match[3], "=")
		ft.HasValue = true
	}
	return ft, true
}
