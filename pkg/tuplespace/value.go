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
	"fmt"
	"math/big"
	"net/url"
	"time"
)

// Value is any member of the tuplespace's immutable value universe: the
// fixed-width integer types, float64, arbitrary-precision numbers
// (*big.Int, *big.Rat), bool, string, *url.URL, time.Time, Enum, and
// finite slices/maps recursively composed of the above. There is no
// dedicated Go type for this union — validateValue is the actual
// boundary enforcing it.
type Value = interface{}

// Enum is a string-backed enumeration constant: a named value drawn from
// a named finite domain (e.g. Enum{Type: "Suit", Name: "Hearts"}).
type Enum struct {
	Type string
	Name string
}

// NewEnum constructs an enumeration constant value.
func NewEnum(typ, name string) Enum {
	return Enum{Type: typ, Name: name}
}

// validateValue recursively rejects anything outside the value universe:
// non-string map keys, unsupported dynamic types, nil pointers to the
// wrapped numeric/URI types, and — transitively, since arrays and maps
// are only accepted when every element itself validates — any array or
// map holding a reference to something mutable.
func validateValue(v Value) error {
	switch val := v.(type) {
	case nil:
		return fmt.Errorf("nil is not a value; use a formal wildcard in a template instead")
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, bool, string, time.Time, Enum:
		return nil
	case *big.Int:
		if val == nil {
			return fmt.Errorf("*big.Int value must not be nil")
		}
		return nil
	case *big.Rat:
		if val == nil {
			return fmt.Errorf("*big.Rat value must not be nil")
		}
		return nil
	case *url.URL:
		if val == nil {
			return fmt.Errorf("*url.URL value must not be nil")
		}
		return nil
	case []Value:
		for i, elem := range val {
			if err := validateValue(elem); err != nil {
				return fmt.Errorf("array element %d: %w", i, err)
			}
		}
		return nil
	case map[string]Value:
		for k, elem := range val {
			if k == "" {
				return fmt.Errorf("nested map key must not be empty")
			}
			if err := validateValue(elem); err != nil {
				return fmt.Errorf("nested field %q: %w", k, err)
			}
		}
		return nil
	default:
		return fmt.Errorf("value of type %T is not a member of the tuplespace value universe", v)
	}
}
