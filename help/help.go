// This file is part of go-taskparser.
//
// Copyright (C) 2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package help - Renders usage text for task contexts.
package help

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/DavidGamba/go-taskparser"
	"github.com/DavidGamba/go-taskparser/text"
)

// Padding - left padding for every section body.
var Padding = 4

// Width - synopsis lines are wrapped before reaching it.
var Width = 80

// Name - Returns the NAME section.
// The name is empty for the initial context.
func Name(scriptName, name, description string) string {
	out := scriptName
	if name != "" {
		out += fmt.Sprintf(" %s", name)
	}
	if description != "" {
		description = strings.ReplaceAll(description, "\n", "\n"+strings.Repeat(" ", 2*Padding))
		out += fmt.Sprintf(" - %s", description)
	}
	return fmt.Sprintf("%s:\n%s%s\n", text.HelpNameHeader, strings.Repeat(" ", Padding), out)
}

// Synopsis - Returns the SYNOPSIS section.
// When tasks is not empty the synopsis ends with a task placeholder.
func Synopsis(scriptName, name string, args []*taskparser.Argument, tasks []*taskparser.Context) string {
	prefix := strings.Repeat(" ", Padding) + scriptName
	if name != "" {
		prefix += " " + name
	}
	syns := []string{}
	for _, arg := range sorted(args) {
		syns = append(syns, argSynopsis(arg))
	}
	if len(tasks) > 0 {
		syns = append(syns, "<task> [<args>]")
	}

	var out string
	line := prefix
	for _, syn := range syns {
		if len(line)+len(syn)+1 > Width {
			out += line + "\n"
			line = fmt.Sprintf("%s %s", strings.Repeat(" ", len(prefix)), syn)
		} else {
			line += fmt.Sprintf(" %s", syn)
		}
	}
	out += line
	return fmt.Sprintf("%s:\n%s\n", text.HelpSynopsisHeader, out)
}

// TaskList - Returns the TASKS section, sorted by task name.
func TaskList(tasks []*taskparser.Context) string {
	if len(tasks) == 0 {
		return ""
	}
	tasks = append([]*taskparser.Context{}, tasks...)
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].Name() < tasks[j].Name() })
	labels := make([]string, len(tasks))
	for i, task := range tasks {
		labels[i] = strings.Join(task.Names(), "|")
	}
	factor := longestStringLen(labels)
	indent := strings.Repeat(" ", Padding+factor+Padding)
	out := ""
	for i, task := range tasks {
		description := strings.ReplaceAll(task.Description(), "\n", "\n"+indent)
		line := fmt.Sprintf("%s%s%s%s", strings.Repeat(" ", Padding), pad(labels[i], factor), strings.Repeat(" ", Padding), description)
		out += strings.TrimRight(line, " ") + "\n"
	}
	return fmt.Sprintf("%s:\n%s", text.HelpTasksHeader, out)
}

// OptionList - Returns the OPTIONS section, sorted by argument name.
func OptionList(args []*taskparser.Argument) string {
	if len(args) == 0 {
		return ""
	}
	args = sorted(args)
	labels := make([]string, len(args))
	for i, arg := range args {
		labels[i] = label(arg)
	}
	factor := longestStringLen(labels)
	indent := strings.Repeat(" ", Padding+factor+Padding)
	out := ""
	for i, arg := range args {
		parts := []string{}
		if arg.Help() != "" {
			parts = append(parts, strings.ReplaceAll(arg.Help(), "\n", "\n"+indent))
		}
		if arg.Default() != nil {
			parts = append(parts, fmt.Sprintf(text.HelpDefault, defaultStr(arg.Default())))
		}
		line := fmt.Sprintf("%s%s%s%s", strings.Repeat(" ", Padding), pad(labels[i], factor), strings.Repeat(" ", Padding), strings.Join(parts, " "))
		out += strings.TrimRight(line, " ") + "\n\n"
	}
	return fmt.Sprintf("%s:\n%s", text.HelpOptionsHeader, out)
}

// Help - Returns the full help for a context.
// The task list is only included for the initial context.
func Help(scriptName string, c *taskparser.Context, tasks []*taskparser.Context) string {
	if !c.IsInitial() {
		tasks = nil
	}
	out := Name(scriptName, c.Name(), c.Description())
	out += "\n" + Synopsis(scriptName, c.Name(), c.Args(), tasks)
	if s := TaskList(tasks); s != "" {
		out += "\n" + s
	}
	if s := OptionList(c.Args()); s != "" {
		out += "\n" + s
	}
	return out
}

func argSynopsis(arg *taskparser.Argument) string {
	switch arg.Kind() {
	case taskparser.IncrementKind, taskparser.StringSliceKind:
		return fmt.Sprintf("[%s]...", label(arg))
	default:
		return fmt.Sprintf("[%s]", label(arg))
	}
}

// label - "--name|-n <kind>", the kind placeholder only for value taking kinds.
func label(arg *taskparser.Argument) string {
	s := strings.Join(arg.Names(), "|")
	switch arg.Kind() {
	case taskparser.BoolKind, taskparser.IncrementKind:
		return s
	case taskparser.StringSliceKind:
		return s + " <string>"
	default:
		return fmt.Sprintf("%s <%s>", s, arg.Kind())
	}
}

func defaultStr(v interface{}) string {
	switch vv := v.(type) {
	case string:
		return strconv.Quote(vv)
	case []string:
		return "[" + strings.Join(vv, ", ") + "]"
	default:
		return fmt.Sprint(v)
	}
}

func sorted(args []*taskparser.Argument) []*taskparser.Argument {
	args = append([]*taskparser.Argument{}, args...)
	sort.SliceStable(args, func(i, j int) bool {
		return strings.TrimLeft(args[i].Name(), "-") < strings.TrimLeft(args[j].Name(), "-")
	})
	return args
}

// longestStringLen - Given a slice of strings it returns the length of the longest string in the slice
func longestStringLen(s []string) int {
	i := 0
	for _, e := range s {
		if len(e) > i {
			i = len(e)
		}
	}
	return i
}

// pad - Given a string and a padding factor it will return the string padded with spaces.
func pad(s string, factor int) string {
	return fmt.Sprintf("%-"+strconv.Itoa(factor)+"s", s)
}
