// This file is part of go-taskparser.
//
// Copyright (C) 2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

/*
Package tasksfile - Declarative task definitions that build a taskparser.Parser.

Task files are YAML (.yaml, .yml) or TOML (.toml):

	core:
	  - name: --echo
	    aliases: [-e]
	    help: Echo commands
	tasks:
	  - name: build
	    aliases: [b]
	    help: Build the project
	    args:
	      - name: --target
	        kind: string
	        default: all

The argument kind defaults to bool.
*/
package tasksfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/DavidGamba/go-taskparser"
	"github.com/DavidGamba/go-taskparser/internal/kind"
	"github.com/DavidGamba/go-taskparser/text"
	"gopkg.in/yaml.v3"
)

// Format - Task file encoding.
type Format int

const (
	YAML Format = iota
	TOML
)

func (f Format) String() string {
	switch f {
	case YAML:
		return "yaml"
	case TOML:
		return "toml"
	}
	return fmt.Sprintf("format(%d)", int(f))
}

// DefaultNames - File names looked up by Find, in order.
var DefaultNames = []string{"tasks.yaml", "tasks.yml", "tasks.toml"}

// File - Task file contents.
type File struct {
	Core  []ArgSpec  `yaml:"core,omitempty" toml:"core,omitempty"`
	Tasks []TaskSpec `yaml:"tasks,omitempty" toml:"tasks,omitempty"`
}

// TaskSpec - A task definition, it becomes a named taskparser.Context.
type TaskSpec struct {
	Name    string    `yaml:"name" toml:"name"`
	Aliases []string  `yaml:"aliases,omitempty" toml:"aliases,omitempty"`
	Help    string    `yaml:"help,omitempty" toml:"help,omitempty"`
	Args    []ArgSpec `yaml:"args,omitempty" toml:"args,omitempty"`
}

// ArgSpec - An argument definition, it becomes a taskparser.Argument.
type ArgSpec struct {
	Name    string      `yaml:"name" toml:"name"`
	Aliases []string    `yaml:"aliases,omitempty" toml:"aliases,omitempty"`
	Kind    string      `yaml:"kind,omitempty" toml:"kind,omitempty"`
	Default interface{} `yaml:"default,omitempty" toml:"default,omitempty"`
	Help    string      `yaml:"help,omitempty" toml:"help,omitempty"`
}

// FormatFromPath - Returns the format for the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	}
	return 0, fmt.Errorf("%w: "+text.ErrorUnknownFormat, taskparser.ErrorConfiguration, path)
}

// Find - Returns the path of the first DefaultNames file present in dir.
// The error wraps os.ErrNotExist when there is none.
func Find(dir string) (string, error) {
	for _, name := range DefaultNames {
		path := filepath.Join(dir, name)
		_, err := os.Stat(path)
		if err == nil {
			return path, nil
		}
		if !os.IsNotExist(err) {
			return "", err
		}
	}
	return "", fmt.Errorf("no task file in '%s': %w", dir, os.ErrNotExist)
}

// Load - Reads and decodes the task file at path.
func Load(path string) (*File, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return f, nil
}

// Decode - Decodes task file data.
// Keys that don't map to a File field are an error.
func Decode(data []byte, format Format) (*File, error) {
	f := &File{}
	switch format {
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err := dec.Decode(f)
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	case TOML:
		md, err := toml.Decode(string(data), f)
		if err != nil {
			return nil, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, 0, len(undecoded))
			for _, k := range undecoded {
				keys = append(keys, k.String())
			}
			sort.Strings(keys)
			return nil, fmt.Errorf("%w: "+text.ErrorUnknownKeys, taskparser.ErrorConfiguration, strings.Join(keys, ", "))
		}
	default:
		return nil, fmt.Errorf("%w: "+text.ErrorUnknownFormat, taskparser.ErrorConfiguration, format)
	}
	return f, nil
}

// Argument - Returns the taskparser.Argument for the definition.
// The default is converted to the Go type of the argument kind.
func (a ArgSpec) Argument() (*taskparser.Argument, error) {
	k, err := taskparser.ParseKind(a.Kind)
	if err != nil {
		return nil, err
	}
	def, err := kind.Normalize(k, a.Default)
	if err != nil {
		return nil, fmt.Errorf("%w: "+text.ErrorInvalidDefault+": %w", taskparser.ErrorConfiguration, a.Default, a.Name, k, err)
	}
	return taskparser.NewArgument(a.Name, k).
		SetAlias(a.Aliases...).
		SetDefault(def).
		SetHelp(a.Help), nil
}

// Context - Returns the taskparser.Context for the task.
func (t TaskSpec) Context() (*taskparser.Context, error) {
	defs, err := definitions(t.Args)
	if err != nil {
		return nil, fmt.Errorf(text.ErrorTaskDefinition+": %w", t.Name, err)
	}
	c, err := taskparser.NewContext(t.Name, defs...)
	if err != nil {
		return nil, fmt.Errorf(text.ErrorTaskDefinition+": %w", t.Name, err)
	}
	return c.SetAlias(t.Aliases...).SetDescription(t.Help), nil
}

// Parser - Returns a parser with one context per task.
//
// The initial context holds the given core definitions followed by the file
// core arguments. There is no initial context when both are empty.
func (f *File) Parser(core ...taskparser.ArgDefinition) (*taskparser.Parser, error) {
	var initial *taskparser.Context
	if len(core) > 0 || len(f.Core) > 0 {
		defs, err := definitions(f.Core)
		if err != nil {
			return nil, err
		}
		initial, err = taskparser.NewContext("", append(append([]taskparser.ArgDefinition{}, core...), defs...)...)
		if err != nil {
			return nil, err
		}
	}
	contexts := make([]*taskparser.Context, 0, len(f.Tasks))
	for _, t := range f.Tasks {
		c, err := t.Context()
		if err != nil {
			return nil, err
		}
		contexts = append(contexts, c)
	}
	return taskparser.NewParser(initial, contexts...)
}

func definitions(specs []ArgSpec) ([]taskparser.ArgDefinition, error) {
	defs := make([]taskparser.ArgDefinition, 0, len(specs))
	for _, spec := range specs {
		a, err := spec.Argument()
		if err != nil {
			return nil, err
		}
		defs = append(defs, a)
	}
	return defs, nil
}
