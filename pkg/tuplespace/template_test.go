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

func TestNewTemplate_EmptyFields(t *testing.T) {
	if _, err := NewTemplate(map[string]FormalValue{}, true); err == nil {
		t.Error("NewTemplate() with no fields: want error")
	}
}

func TestNewTemplate_NilPredicateRejected(t *testing.T) {
	fields := map[string]FormalValue{"x": {Kind: FormalPredicate}}
	if _, err := NewTemplate(fields, true); err == nil {
		t.Error("NewTemplate() with a nil predicate: want error")
	}
}

func TestNewTemplate_InvalidConcreteValue(t *testing.T) {
	fields := map[string]FormalValue{"x": Concrete(make(chan int))}
	if _, err := NewTemplate(fields, true); err == nil {
		t.Error("NewTemplate() with an out-of-universe concrete value: want error")
	}
}

func TestTemplate_HasFormals(t *testing.T) {
	concreteOnly, _ := NewTemplate(map[string]FormalValue{"x": Concrete(1)}, true)
	if concreteOnly.HasFormals() {
		t.Error("HasFormals() = true for an all-concrete template")
	}

	withWildcard, _ := NewTemplate(map[string]FormalValue{"x": Wildcard()}, true)
	if !withWildcard.HasFormals() {
		t.Error("HasFormals() = false for a template containing a wildcard")
	}
}

func TestTemplate_AsTuple(t *testing.T) {
	tmpl, _ := NewTemplate(map[string]FormalValue{"x": Concrete(1)}, true)
	tup, err := tmpl.AsTuple()
	if err != nil {
		t.Fatalf("AsTuple() error = %v", err)
	}
	if tup.Fields()["x"] != 1 {
		t.Errorf("AsTuple() fields = %v, want x=1", tup.Fields())
	}
}

func TestTemplate_AsTuple_RejectsFormals(t *testing.T) {
	tmpl, _ := NewTemplate(map[string]FormalValue{"x": Wildcard()}, true)
	if _, err := tmpl.AsTuple(); err == nil {
		t.Error("AsTuple() on a template with an unbound wildcard: want error")
	}
}

func TestTemplate_UnregisterAllIsIdempotent(t *testing.T) {
	ts := NewTupleStore()
	tmpl, _ := NewTemplate(map[string]FormalValue{"x": Wildcard()}, false)
	ts.storeTemplate(tmpl)

	tmpl.unregisterAll()
	tmpl.unregisterAll() // must not panic on the second call
}

func TestTemplate_Signal_NonBlocking(t *testing.T) {
	tmpl, _ := NewTemplate(map[string]FormalValue{"x": Wildcard()}, false)
	tmpl.signal()
	tmpl.signal() // buffered channel already full; must not block

	select {
	case <-tmpl.wake:
	default:
		t.Error("signal() did not leave a pending wakeup")
	}
}
