// This file is part of go-taskparser.
//
// Copyright (C) 2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

/*
Package taskparser - Command line parser for task runners.

A command line is split into contexts: an optional initial context holding
the core flags, followed by any number of named contexts (tasks), each one
with its own flags.

	[initial-flags...] ( task-name task-flags... )* [ -- remainder... ]

# Usage

	build, err := taskparser.NewContext("build",
		taskparser.Flag("--clean"),
		taskparser.NewArgument("--target", taskparser.StringKind).SetAlias("-t").SetDefault("all"),
	)
	if err != nil { ... }
	build.SetAlias("b")

	core, err := taskparser.NewContext("", taskparser.Flag("--echo"))
	if err != nil { ... }

	parser, err := taskparser.NewParser(core, build)
	if err != nil { ... }

	result, err := parser.ParseArgv(os.Args[1:])
	if err != nil { ... }
	for _, c := range result.Contexts {
		// c.Name() is "" for the initial context
		// c.Value("--target").(string)
	}
	// result.Remainder holds the args given after '--'

# Features

• Flags are only recognized in the context that is active, the initial
context before any task name and the last named task after it.

• Tasks and flags can have aliases.

• Boolean, Increment, String, Int, Float64, Duration and string list kinds.

• Flags that take a value accept both `--flag value` and `--flag=value`.

• Arguments that aren't given keep their defaults.

• A task can be given more than once, each mention is a separate context in the result.

• `--` stops parsing, every arg after it is left in the result's Remainder.

• Errors carry the offending arg and its position, see ParseError.

# Errors

Invalid definitions, for example two tasks sharing an alias, make
NewContext, AddArg or NewParser return an error matching ErrorConfiguration.
Parse errors match ErrorParsing.
*/
package taskparser
