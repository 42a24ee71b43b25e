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
	"sort"

	tserrors "github.com/sage-x-project/tuplespace/pkg/errors"
)

// Tuple is a finite, non-empty, immutable mapping from field names to
// values. Two tuples are equal iff their field mappings are equal; a
// tuple never carries formals.
type Tuple struct {
	fields map[string]Value
	shape  uint64
}

// NewTuple validates fields and freezes them into a Tuple. Construction
// fails with ErrInvalidTuple if fields is empty, a key is empty, a value
// is nil, or a value is transitively outside the value universe (which
// also rejects arrays of references and bare predicate callables).
func NewTuple(fields map[string]Value) (*Tuple, error) {
	if len(fields) == 0 {
		return nil, tserrors.ErrInvalidTuple.WithDetail("reason", "fields must not be empty")
	}

	frozen := make(map[string]Value, len(fields))
	for k, v := range fields {
		if k == "" {
			return nil, tserrors.ErrInvalidTuple.WithDetail("reason", "field key must not be empty")
		}
		if err := validateValue(v); err != nil {
			return nil, tserrors.ErrInvalidTuple.WithDetail("field", k).WithDetail("reason", err.Error())
		}
		frozen[k] = v
	}

	return &Tuple{fields: frozen, shape: shapeHashKeys(frozen)}, nil
}

// Fields returns a defensive copy of the tuple's field mapping.
func (t *Tuple) Fields() map[string]Value {
	out := make(map[string]Value, len(t.fields))
	for k, v := range t.fields {
		out[k] = v
	}
	return out
}

// Shape returns the tuple's shape hash, a pure function of its key set.
func (t *Tuple) Shape() uint64 { return t.shape }

// Keys returns the tuple's field names in sorted order.
func (t *Tuple) Keys() []string {
	keys := make([]string, 0, len(t.fields))
	for k := range t.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// shapeHashKeys combines the FNV-1a hash of each key via XOR, so the
// result depends only on the key set and not on iteration or insertion
// order; a tuple and any template sharing the same keys share a shape.
func shapeHashKeys[V any](keyed map[string]V) uint64 {
	var h uint64
	for k := range keyed {
		h ^= fnv1a(k)
	}
	return h
}

func fnv1a(s string) uint64 {
	const offset64 = 14695981039346656037
	const prime64 = 1099511628211

	h := uint64(offset64)
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= prime64
	}
	return h
}
