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
	"net/url"
	"testing"
	"time"
)

func TestValidateValue_Primitives(t *testing.T) {
	values := []Value{
		42, int64(42), uint(7), float64(3.14), true, "hello",
		time.Now(), NewEnum("Suit", "Hearts"),
	}
	for _, v := range values {
		if err := validateValue(v); err != nil {
			t.Errorf("validateValue(%v) error = %v, want nil", v, err)
		}
	}
}

func TestValidateValue_Pointers(t *testing.T) {
	u, _ := url.Parse("https://example.com")
	values := []Value{big.NewInt(7), big.NewRat(1, 2), u}
	for _, v := range values {
		if err := validateValue(v); err != nil {
			t.Errorf("validateValue(%v) error = %v, want nil", v, err)
		}
	}
}

func TestValidateValue_NilPointersRejected(t *testing.T) {
	var nilInt *big.Int
	var nilURL *url.URL
	for _, v := range []Value{nilInt, nilURL} {
		if err := validateValue(v); err == nil {
			t.Errorf("validateValue(%#v): want error for nil pointer", v)
		}
	}
}

func TestValidateValue_NilRejected(t *testing.T) {
	if err := validateValue(nil); err == nil {
		t.Error("validateValue(nil): want error")
	}
}

func TestValidateValue_UnsupportedType(t *testing.T) {
	if err := validateValue(make(chan int)); err == nil {
		t.Error("validateValue(chan int): want error")
	}
}

func TestValidateValue_NestedArrayAndMap(t *testing.T) {
	v := map[string]Value{
		"items": []Value{1, "two", map[string]Value{"three": 3}},
	}
	if err := validateValue(v); err != nil {
		t.Errorf("validateValue(nested) error = %v, want nil", err)
	}
}

func TestValidateValue_NestedArrayRejectsBadElement(t *testing.T) {
	v := []Value{1, make(chan int)}
	if err := validateValue(v); err == nil {
		t.Error("validateValue([]Value{1, chan}): want error")
	}
}

func TestValidateValue_EmptyMapKeyRejected(t *testing.T) {
	v := map[string]Value{"": 1}
	if err := validateValue(v); err == nil {
		t.Error("validateValue(map with empty key): want error")
	}
}
