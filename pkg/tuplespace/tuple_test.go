// Copyright (C) 2025 sage-x-project
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.

// SPDX-License-Identifier: LGPL-3.0-or-later

package tuplespace

import (
	"math/big"
	"testing"
)

func TestNewTuple_Basic(t *testing.T) {
	tup, err := NewTuple(map[string]Value{"x": 1, "y": "hello"})
	if err != nil {
		t.Fatalf("NewTuple() error = %v", err)
	}
	if len(tup.Keys()) != 2 {
		t.Errorf("Keys() len = %d, want 2", len(tup.Keys()))
	}
}

func TestNewTuple_EmptyFields(t *testing.T) {
	if _, err := NewTuple(map[string]Value{}); err == nil {
		t.Error("NewTuple() with no fields: want error, got nil")
	}
}

func TestNewTuple_EmptyKey(t *testing.T) {
	if _, err := NewTuple(map[string]Value{"": 1}); err == nil {
		t.Error("NewTuple() with empty key: want error, got nil")
	}
}

func TestNewTuple_NilValue(t *testing.T) {
	if _, err := NewTuple(map[string]Value{"x": nil}); err == nil {
		t.Error("NewTuple() with nil value: want error, got nil")
	}
}

func TestNewTuple_RejectsBadType(t *testing.T) {
	if _, err := NewTuple(map[string]Value{"x": make(chan int)}); err == nil {
		t.Error("NewTuple() with a channel value: want error, got nil")
	}
}

func TestNewTuple_NestedContainer(t *testing.T) {
	fields := map[string]Value{
		"payload": map[string]Value{
			"amount": big.NewInt(42),
			"tags":   []Value{"a", "b", 3},
		},
	}
	if _, err := NewTuple(fields); err != nil {
		t.Fatalf("NewTuple() with nested container error = %v", err)
	}
}

func TestNewTuple_RejectsArrayOfReferences(t *testing.T) {
	fields := map[string]Value{
		"bad": []Value{make(chan int)},
	}
	if _, err := NewTuple(fields); err == nil {
		t.Error("NewTuple() with an array element outside the value universe: want error, got nil")
	}
}

func TestTuple_Fields_IsDefensiveCopy(t *testing.T) {
	tup, err := NewTuple(map[string]Value{"x": 1})
	if err != nil {
		t.Fatalf("NewTuple() error = %v", err)
	}

	got := tup.Fields()
	got["x"] = 999

	again := tup.Fields()
	if again["x"] != 1 {
		t.Errorf("Fields() mutation leaked into tuple: x = %v, want 1", again["x"])
	}
}

func TestTuple_ShapeIgnoresValuesAndOrder(t *testing.T) {
	a, err := NewTuple(map[string]Value{"x": 1, "y": 2})
	if err != nil {
		t.Fatalf("NewTuple() error = %v", err)
	}
	b, err := NewTuple(map[string]Value{"y": "different", "x": "also different"})
	if err != nil {
		t.Fatalf("NewTuple() error = %v", err)
	}
	if a.Shape() != b.Shape() {
		t.Error("Shape() differs for tuples sharing the same key set")
	}
}

func TestTuple_ShapeDiffersAcrossKeySets(t *testing.T) {
	a, _ := NewTuple(map[string]Value{"x": 1})
	b, _ := NewTuple(map[string]Value{"x": 1, "y": 2})
	if a.Shape() == b.Shape() {
		t.Error("Shape() collided across different key sets")
	}
}
