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

import "testing"

func TestMatch_ConcreteField(t *testing.T) {
	tup, _ := NewTuple(map[string]Value{"x": 5})
	tmpl, _ := NewTemplate(map[string]FormalValue{"x": Concrete(5)}, true)
	if !Match(tup, tmpl) {
		t.Error("Match() = false, want true for equal concrete field")
	}
}

func TestMatch_ConcreteFieldTypeMismatch(t *testing.T) {
	tup, _ := NewTuple(map[string]Value{"x": int64(5)})
	tmpl, _ := NewTemplate(map[string]FormalValue{"x": Concrete(5)}, true)
	if Match(tup, tmpl) {
		t.Error("Match() = true for int64(5) vs int(5), want false: types must match")
	}
}

func TestMatch_Wildcard(t *testing.T) {
	tup, _ := NewTuple(map[string]Value{"x": "anything"})
	tmpl, _ := NewTemplate(map[string]FormalValue{"x": Wildcard()}, true)
	if !Match(tup, tmpl) {
		t.Error("Match() = false, want true for wildcard field")
	}
}

func TestMatch_Predicate(t *testing.T) {
	tup, _ := NewTuple(map[string]Value{"x": 42})
	tmpl, _ := NewTemplate(map[string]FormalValue{
		"x": WhereValue(func(v Value) bool { return v.(int) > 10 }),
	}, true)
	if !Match(tup, tmpl) {
		t.Error("Match() = false, want true for predicate accepting 42 > 10")
	}

	tup2, _ := NewTuple(map[string]Value{"x": 1})
	if Match(tup2, tmpl) {
		t.Error("Match() = true, want false for predicate rejecting 1 > 10")
	}
}

func TestMatch_DifferentShape(t *testing.T) {
	tup, _ := NewTuple(map[string]Value{"x": 1, "y": 2})
	tmpl, _ := NewTemplate(map[string]FormalValue{"x": Concrete(1)}, true)
	if Match(tup, tmpl) {
		t.Error("Match() = true across mismatched key sets, want false")
	}
}

func TestMatch_MissingField(t *testing.T) {
	tup, _ := NewTuple(map[string]Value{"x": 1, "z": 2})
	tmpl, _ := NewTemplate(map[string]FormalValue{"x": Concrete(1), "y": Wildcard()}, true)
	if Match(tup, tmpl) {
		t.Error("Match() = true when tuple lacks a templated field, want false")
	}
}
