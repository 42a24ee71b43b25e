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
	"sync"

	"github.com/google/uuid"

	tserrors "github.com/sage-x-project/tuplespace/pkg/errors"
)

// FormalKind tags a Template field as a concrete value, a wildcard, or a
// predicate, rather than overloading wildcard matching with an embedded
// test callable.
type FormalKind int

const (
	FormalConcrete FormalKind = iota
	FormalWildcard
	FormalPredicate
)

// FormalValue is one field of a Template. The matcher dispatches on Kind;
// the shape hash ignores it entirely (only the key set matters).
type FormalValue struct {
	Kind      FormalKind
	Value     Value
	Predicate func(Value) bool
}

// Concrete wraps a literal value a template field must equal exactly.
func Concrete(v Value) FormalValue {
	return FormalValue{Kind: FormalConcrete, Value: v}
}

// Wildcard marks a template field that matches any value.
func Wildcard() FormalValue {
	return FormalValue{Kind: FormalWildcard}
}

// WhereValue marks a template field that matches any value for which fn
// returns true.
func WhereValue(fn func(Value) bool) FormalValue {
	return FormalValue{Kind: FormalPredicate, Predicate: fn}
}

// Template is a tuple-shaped query. Fields are concrete, wildcard, or
// predicate formals. It additionally carries a destructive flag (true
// for Take, false for Get) and a unique ID so a waiter can be removed
// from a store without disturbing an otherwise-identical sibling.
type Template struct {
	id          uuid.UUID
	fields      map[string]FormalValue
	shape       uint64
	destructive bool
	wake        chan struct{}

	mu         sync.Mutex
	registered []*TupleStore
}

// NewTemplate validates fields and freezes them into a Template.
// Construction fails with ErrInvalidTemplate if fields is empty, a key
// is empty, a concrete field's value is outside the value universe, or
// a predicate field carries a nil callable.
func NewTemplate(fields map[string]FormalValue, destructive bool) (*Template, error) {
	if len(fields) == 0 {
		return nil, tserrors.ErrInvalidTemplate.WithDetail("reason", "fields must not be empty")
	}

	frozen := make(map[string]FormalValue, len(fields))
	for k, fv := range fields {
		if k == "" {
			return nil, tserrors.ErrInvalidTemplate.WithDetail("reason", "field key must not be empty")
		}

		switch fv.Kind {
		case FormalConcrete:
			if err := validateValue(fv.Value); err != nil {
				return nil, tserrors.ErrInvalidTemplate.WithDetail("field", k).WithDetail("reason", err.Error())
			}
		case FormalWildcard:
			// always valid
		case FormalPredicate:
			if fv.Predicate == nil {
				return nil, tserrors.ErrInvalidTemplate.WithDetail("field", k).WithDetail("reason", "predicate must not be nil")
			}
		default:
			return nil, tserrors.ErrInvalidTemplate.WithDetail("field", k).WithDetail("reason", "unknown formal kind")
		}

		frozen[k] = fv
	}

	return &Template{
		id:          uuid.New(),
		fields:      frozen,
		shape:       shapeHashKeys(frozen),
		destructive: destructive,
		wake:        make(chan struct{}, 1),
	}, nil
}

// ID returns the template's unique identifier.
func (p *Template) ID() uuid.UUID { return p.id }

// Shape returns the template's shape hash.
func (p *Template) Shape() uint64 { return p.shape }

// Destructive reports whether a match removes the tuple (Take) or not (Get).
func (p *Template) Destructive() bool { return p.destructive }

// HasFormals reports whether any field is a wildcard or predicate.
func (p *Template) HasFormals() bool {
	for _, fv := range p.fields {
		if fv.Kind != FormalConcrete {
			return true
		}
	}
	return false
}

// AsTuple converts a fully-concrete template into a Tuple, failing with
// ErrIllegalTemplateUse if any field is still a formal. This is the
// concrete home for the source's "calling matches with formals in the
// tuple role is a contract violation" rule — Tuple and Template are
// distinct Go types, so Match itself can never be called the wrong way
// round; AsTuple is the one place a formal-bearing Template could still
// be coerced into tuple position, so it is the one place that guards it.
func (p *Template) AsTuple() (*Tuple, error) {
	if p.HasFormals() {
		return nil, tserrors.ErrIllegalTemplateUse
	}

	fields := make(map[string]Value, len(p.fields))
	for k, fv := range p.fields {
		fields[k] = fv.Value
	}
	return NewTuple(fields)
}

// addRegistration records that p has been inserted into store s, so that
// a later match or abandonment can unregister it everywhere it waits.
func (p *Template) addRegistration(s *TupleStore) {
	p.mu.Lock()
	p.registered = append(p.registered, s)
	p.mu.Unlock()
}

// unregisterAll removes p from every store it was registered in. Safe to
// call more than once; TupleStore.removeTemplate is a no-op if p is
// already absent.
func (p *Template) unregisterAll() {
	p.mu.Lock()
	stores := p.registered
	p.registered = nil
	p.mu.Unlock()

	for _, s := range stores {
		s.removeTemplate(p)
	}
}

// signal wakes one waiter loop blocked on p without blocking itself; a
// pending unread signal means the waiter hasn't re-checked yet, so a
// second signal in the meantime would be redundant.
func (p *Template) signal() {
	select {
	case p.wake <- struct{}{}:
	default:
	}
}
