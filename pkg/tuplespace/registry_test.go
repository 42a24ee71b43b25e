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

func TestGetSpace_SameNameReturnsSameInstance(t *testing.T) {
	defer CloseAll()

	a := GetSpace("rendezvous")
	b := GetSpace("rendezvous")
	if a != b {
		t.Error("GetSpace() with the same name returned two different Spaces")
	}
}

func TestGetSpace_EmptyNameResolvesToDefault(t *testing.T) {
	defer CloseAll()

	a := GetSpace("")
	b := GetSpace(DefaultSpaceName)
	if a != b {
		t.Error("GetSpace(\"\") did not resolve to DefaultSpaceName")
	}
}

func TestCloseSpace_RemovesFromRegistry(t *testing.T) {
	defer CloseAll()

	first := GetSpace("ephemeral")
	if err := CloseSpace("ephemeral"); err != nil {
		t.Fatalf("CloseSpace() error = %v", err)
	}

	second := GetSpace("ephemeral")
	if first == second {
		t.Error("GetSpace() after CloseSpace() returned the closed instance instead of a fresh one")
	}
}

func TestCloseSpace_UnknownNameIsNoOp(t *testing.T) {
	if err := CloseSpace("never-created"); err != nil {
		t.Errorf("CloseSpace() on an unknown name: error = %v, want nil", err)
	}
}

func TestListSpaces(t *testing.T) {
	defer CloseAll()

	GetSpace("alpha")
	GetSpace("beta")

	names := ListSpaces()
	found := map[string]bool{}
	for _, n := range names {
		found[n] = true
	}
	if !found["alpha"] || !found["beta"] {
		t.Errorf("ListSpaces() = %v, want to include alpha and beta", names)
	}
}
