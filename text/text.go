// This file is part of go-taskparser.
//
// Copyright (C) 2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package text - User facing strings.
//
// They are variables so they can be replaced for translation purposes.
package text

// ErrorUnknownFlag holds the text for an unknown flag error.
// It has a string placeholder '%s' for the flag and one for the active context.
var ErrorUnknownFlag = "unknown flag '%s' for %s"

// ErrorUnknownContext holds the text for a token that is neither a context nor a flag.
var ErrorUnknownContext = "unknown task or argument '%s'"

// ErrorMissingValue holds the text for a value-taking flag given as the last token.
var ErrorMissingValue = "missing value for flag '%s' of %s"

// ErrorConvertToKind holds the text for a value that can't be coerced.
// Placeholders: value, flag, kind.
var ErrorConvertToKind = "can't convert '%s' for flag '%s' to %s"

// ErrorTakesNoValue holds the text for an inline value given to a presence only flag.
var ErrorTakesNoValue = "flag takes no value"

// ErrorPosition is appended to parse errors: the index of the offending token.
var ErrorPosition = " (argument %d)"

// InitialContextName is how the unnamed initial context is described in messages.
var InitialContextName = "the core options"

// ContextName describes a named context in messages.
var ContextName = "task '%s'"

// ErrorEmptyName holds the text for a definition without a name.
var ErrorEmptyName = "%s name can't be empty"

// ErrorReservedName holds the text for a definition using the '--' terminator as a name.
var ErrorReservedName = "%s name can't be '--', it is reserved for the remainder separator"

// ErrorArgumentDefined holds the text for an argument name or alias collision within a context.
// Placeholders: name/alias, existing argument name, context description.
var ErrorArgumentDefined = "argument name/alias '%s' is already defined by '%s' in %s"

// ErrorContextDefined holds the text for a context name or alias collision within a parser.
var ErrorContextDefined = "context name/alias '%s' is already defined by context '%s'"

// ErrorUnnamedContext holds the text for an unnamed context registered outside of the initial slot.
var ErrorUnnamedContext = "only the initial context can be unnamed, context %d has no name"

// ErrorNilDefinition holds the text for a nil argument or context.
var ErrorNilDefinition = "%s definition is nil"

// ErrorUnknownKind holds the text for a kind name that doesn't map to a kind.
var ErrorUnknownKind = "unknown argument kind '%s'"

// HelpNameHeader - Name header.
var HelpNameHeader = "NAME"

// HelpSynopsisHeader - Synopsis header.
var HelpSynopsisHeader = "SYNOPSIS"

// HelpTasksHeader - Tasks header.
var HelpTasksHeader = "TASKS"

// HelpOptionsHeader - Options header.
var HelpOptionsHeader = "OPTIONS"

// HelpDefault - default value note for the option list.
var HelpDefault = "(default: %s)"

// MessageRemainder - label for the remainder in command output.
var MessageRemainder = "remainder"

// NoContextName describes the state before any context was selected when there is no initial context.
var NoContextName = "the command line before any task name"

// ErrorUnknownFormat holds the text for a task file with an unsupported extension or format.
var ErrorUnknownFormat = "unknown task file format '%s'"

// ErrorUnknownKeys holds the text for task file keys that don't map to any field.
var ErrorUnknownKeys = "unknown keys in task file: %s"

// ErrorInvalidDefault holds the text for a task file default that can't be converted to the argument kind.
// Placeholders: default, argument name, kind.
var ErrorInvalidDefault = "invalid default '%v' for argument '%s' of kind %s"

// ErrorTaskDefinition holds the text prefix for errors in a task definition.
var ErrorTaskDefinition = "task '%s'"
