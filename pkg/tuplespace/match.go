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

import "reflect"

// Match reports whether t satisfies p: same shape, and for every field,
// either p's field is a wildcard, or a predicate that accepts t's value,
// or a concrete value equal to and of the same dynamic type as t's value.
// Field order is irrelevant.
func Match(t *Tuple, p *Template) bool {
	if t.shape != p.shape || len(t.fields) != len(p.fields) {
		return false
	}

	for k, fv := range p.fields {
		tv, ok := t.fields[k]
		if !ok {
			return false
		}

		switch fv.Kind {
		case FormalWildcard:
			continue
		case FormalPredicate:
			if fv.Predicate == nil || !fv.Predicate(tv) {
				return false
			}
		case FormalConcrete:
			if !valuesEqual(tv, fv.Value) {
				return false
			}
		}
	}

	return true
}

// valuesEqual requires both the same dynamic type and equal value, so a
// float64(5) template field never matches an int(5) tuple field.
func valuesEqual(a, b Value) bool {
	return reflect.TypeOf(a) == reflect.TypeOf(b) && reflect.DeepEqual(a, b)
}
