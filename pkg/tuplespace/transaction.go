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

// Transaction is a shared handle that remembers which Spaces it has
// touched and broadcasts Commit/Rollback to each in turn. A Transaction
// owns only its identifier and the set of enrolled Spaces — a weak
// back-reference, not ownership — so a Space's lifetime never depends on
// any Transaction outliving it.
type Transaction struct {
	id uuid.UUID

	mu       sync.Mutex
	spaces   map[*Space]struct{}
	finished bool
}

// NewTransaction creates a fresh, unenrolled transaction.
func NewTransaction() *Transaction {
	return &Transaction{id: uuid.New(), spaces: make(map[*Space]struct{})}
}

// ID returns the transaction's identifier.
func (t *Transaction) ID() uuid.UUID { return t.id }

// enrollSpace registers s as touched by t; idempotent. A Space calls
// this on a transaction's first use within it.
func (t *Transaction) enrollSpace(s *Space) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.finished {
		return tserrors.ErrTransactionMisuse
	}
	t.spaces[s] = struct{}{}
	return nil
}

// Commit commits this transaction in every Space it touched.
func (t *Transaction) Commit() error {
	spaces, err := t.finish()
	if err != nil {
		return err
	}
	for s := range spaces {
		if err := s.commitTxn(t); err != nil {
			return err
		}
	}
	return nil
}

// Rollback rolls back this transaction in every Space it touched.
func (t *Transaction) Rollback() error {
	spaces, err := t.finish()
	if err != nil {
		return err
	}
	for s := range spaces {
		if err := s.rollbackTxn(t); err != nil {
			return err
		}
	}
	return nil
}

// finish marks the transaction finished exactly once, returning the set
// of enrolled Spaces to dispatch to. A second Commit or Rollback call
// surfaces ErrTransactionMisuse rather than silently succeeding.
func (t *Transaction) finish() (map[*Space]struct{}, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.finished {
		return nil, tserrors.ErrTransactionMisuse
	}
	t.finished = true
	return t.spaces, nil
}
