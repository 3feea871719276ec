// This file is part of go-taskparser.
//
// Copyright (C) 2026  David Gamba Rios
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package sliceiterator

import (
	"reflect"
	"testing"
)

func TestIterator(t *testing.T) {
	data := []string{"a", "b", "c", "d"}
	i := New(data)
	if i.Size() != len(data) {
		t.Errorf("wrong size: %d\n", i.Size())
	}
	if i.Index() != -1 {
		t.Errorf("wrong initial index: %d\n", i.Index())
	}
	if i.Value() != "" {
		t.Errorf("wrong value before first Next: %s\n", i.Value())
	}
	for i.Next() {
		if i.Index() < len(data)-1 && !i.ExistsNext() {
			t.Errorf("wrong ExistsNext: idx %d, size %d", i.Index(), i.Size())
		}
		if i.Value() != data[i.Index()] {
			t.Errorf("wrong value: %s\n", i.Value())
		}
	}
	if i.ExistsNext() {
		t.Errorf("wrong ExistsNext at end")
	}
	if i.Value() != "" {
		t.Errorf("wrong value after end: %s\n", i.Value())
	}
	if i.Next() {
		t.Errorf("Next after end returned true")
	}
	if i.Index() != len(data) {
		t.Errorf("index moved past the end: %d\n", i.Index())
	}
}

func TestRest(t *testing.T) {
	tests := []struct {
		name     string
		data     []string
		advance  int
		expected []string
	}{
		{"before start", []string{"a", "b"}, 0, []string{"a", "b"}},
		{"middle", []string{"--", "x", "--y"}, 1, []string{"x", "--y"}},
		{"last", []string{"a", "--"}, 2, []string{}},
		{"empty", []string{}, 0, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i := New(tt.data)
			for n := 0; n < tt.advance; n++ {
				i.Next()
			}
			got := i.Rest()
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
			if i.ExistsNext() {
				t.Errorf("Rest didn't consume the iterator")
			}
		})
	}
}

func TestPeekNextValue(t *testing.T) {
	i := New([]string{"a", "b"})
	if v, ok := i.PeekNextValue(); !ok || v != "a" {
		t.Errorf("wrong peek before start: %q, %v", v, ok)
	}
	i.Next()
	if v, ok := i.PeekNextValue(); !ok || v != "b" {
		t.Errorf("wrong peek: %q, %v", v, ok)
	}
	if i.Index() != 0 {
		t.Errorf("peek moved the index: %d", i.Index())
	}
	i.Next()
	if v, ok := i.PeekNextValue(); ok || v != "" {
		t.Errorf("wrong peek at the end: %q, %v", v, ok)
	}
}
