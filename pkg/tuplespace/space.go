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

// Package tuplespace implements an in-process, associative,
// content-addressable coordination store descended from Linda's
// generative coordination model: concurrent participants publish
// immutable Tuples and retrieve them by value-pattern Templates.
package tuplespace

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sage-x-project/tuplespace/observability/logging"
	"github.com/sage-x-project/tuplespace/observability/metrics"
)

// NoWait and Forever are the two reserved timeout/TTL sentinels. NoWait
// makes Take/Get return after at most one match attempt with no
// blocking. Forever blocks a Take/Get indefinitely (until match, close,
// or context cancellation). Any positive time.Duration is a normal
// bounded timeout. This module picks one encoding deliberately, unlike
// the dual Long.MAX_VALUE/-1 encodings of the source implementations it
// descends from.
const (
	NoWait  time.Duration = 0
	Forever time.Duration = -1
)

// txnStores are the per-transaction overlays a Space maintains for one
// enrolled Transaction: rollback stages puts not yet visible outside the
// transaction; working stages takes, still visible to outside readers
// until commit.
type txnStores struct {
	rollback *TupleStore
	working  *TupleStore
}

// Space is the coordination engine: it owns one primary TupleStore plus
// a rollback/working TupleStore pair per enrolled Transaction, and
// implements Put, Take, Get, Commit, Rollback, and Close.
type Space struct {
	name    string
	logger  logging.Logger
	metrics metrics.Collector

	primary   *TupleStore
	scheduler *expiryScheduler

	mu   sync.RWMutex
	txns map[*Transaction]*txnStores

	shuttingDown atomic.Bool
	closed       chan struct{}
	closeOnce    sync.Once
}

// NewSpace creates a Space named name. A nil logger defaults to a
// zap-backed logger at info level; a nil collector disables metrics.
func NewSpace(name string, logger logging.Logger, collector metrics.Collector) *Space {
	if logger == nil {
		logger = logging.NewZapLogger(logging.LevelInfo)
	}
	return &Space{
		name:      name,
		logger:    logger.With(logging.String("space", name)),
		metrics:   collector,
		primary:   NewTupleStore(),
		scheduler: newExpiryScheduler(),
		txns:      make(map[*Transaction]*txnStores),
		closed:    make(chan struct{}),
	}
}

// Name returns the Space's registry name.
func (s *Space) Name() string { return s.name }

// Put inserts a tuple built from fields. Never blocks. If ttl is
// positive, the tuple is automatically removed after ttl elapses. If
// txn is non-nil, the tuple enters txn's rollback store instead of the
// primary store and is invisible outside txn until Commit.
func (s *Space) Put(fields map[string]Value, ttl time.Duration, txn *Transaction) error {
	tup, err := NewTuple(fields)
	if err != nil {
		return err
	}

	if s.shuttingDown.Load() {
		return nil
	}

	store := s.primary
	if txn != nil {
		if err := txn.enrollSpace(s); err != nil {
			return err
		}
		store = s.rollbackStore(txn)
	}

	store.storeTuple(tup)
	s.recordCounter(metrics.MetricPuts)

	if ttl > 0 {
		s.scheduler.arm(time.Now().Add(ttl), func() {
			s.removeTupleEverywhere(tup)
			s.recordCounter(metrics.MetricExpirations)
		})
	}

	s.wakeWaiters(store, tup)
	s.logger.Debug(context.Background(), "put", logging.Any("keys", tup.Keys()))
	return nil
}

// Take performs a destructive, blocking retrieval: the matched tuple is
// removed from the store.
func (s *Space) Take(ctx context.Context, fields map[string]Value, timeout time.Duration, txn *Transaction) (map[string]Value, bool, error) {
	return s.retrieve(ctx, fields, timeout, txn, true)
}

// Get performs a non-destructive, blocking retrieval: the matched tuple
// stays. Get also scans the working store of every transaction other than
// txn (every transaction's, when txn is nil), since tuples taken there
// remain readable to outside observers until that transaction commits or
// rolls back.
func (s *Space) Get(ctx context.Context, fields map[string]Value, timeout time.Duration, txn *Transaction) (map[string]Value, bool, error) {
	return s.retrieve(ctx, fields, timeout, txn, false)
}

// retrieve implements the shared Take/Get waiter loop: try a match, and
// if none, wait up to the remaining budget, re-checking shutdown and the
// time budget on every wakeup.
func (s *Space) retrieve(ctx context.Context, fields map[string]Value, timeout time.Duration, txn *Transaction, destructive bool) (map[string]Value, bool, error) {
	tmpl, err := newTemplateFromFields(fields, destructive)
	if err != nil {
		return nil, false, err
	}

	if txn != nil {
		if err := txn.enrollSpace(s); err != nil {
			return nil, false, err
		}
	}

	for _, st := range s.registrationStores(txn) {
		st.storeTemplate(tmpl)
	}

	waitCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	for {
		if tup, ok := s.attemptMatch(tmpl, txn, destructive); ok {
			tmpl.unregisterAll()
			fields := tup.Fields()

			if txn != nil && destructive {
				s.workingStore(txn).storeTuple(tup)
				s.wakeGetters(tup)
			}

			s.recordMatchMetric(destructive)
			return fields, true, nil
		}

		if timeout == NoWait {
			tmpl.unregisterAll()
			s.recordCounter(metrics.MetricTimeouts)
			return nil, false, nil
		}

		if s.shuttingDown.Load() {
			tmpl.unregisterAll()
			return nil, false, nil
		}

		select {
		case <-tmpl.wake:
			continue
		case <-s.closed:
			tmpl.unregisterAll()
			return nil, false, nil
		case <-waitCtx.Done():
			tmpl.unregisterAll()
			if ctx.Err() != nil {
				return nil, false, ctx.Err()
			}
			s.recordCounter(metrics.MetricTimeouts)
			return nil, false, nil
		}
	}
}

// newTemplateFromFields adapts the caller-facing map[string]Value
// convention — nil marks a wildcard, a func(Value) bool marks a
// predicate, anything else is concrete — into a Template.
func newTemplateFromFields(fields map[string]Value, destructive bool) (*Template, error) {
	formals := make(map[string]FormalValue, len(fields))
	for k, v := range fields {
		switch val := v.(type) {
		case nil:
			formals[k] = Wildcard()
		case func(Value) bool:
			formals[k] = WhereValue(val)
		default:
			formals[k] = Concrete(v)
		}
	}
	return NewTemplate(formals, destructive)
}

// attemptMatch tries getMatch against every store relevant to this
// (transaction, destructive) combination, in order, returning the first
// match found.
func (s *Space) attemptMatch(tmpl *Template, txn *Transaction, destructive bool) (*Tuple, bool) {
	for _, st := range s.searchStores(txn, destructive) {
		if tup, ok := st.getMatch(tmpl); ok {
			return tup, true
		}
	}
	return nil, false
}

// searchStores lists, in priority order, which TupleStores a retrieve
// call should scan. A destructive Take never reaches into another
// transaction's working store — destroying a tuple another in-flight
// transaction is still holding would break that transaction's atomicity.
// A non-destructive Get may safely peek into every other transaction's
// working store, since peeking can't disturb it.
func (s *Space) searchStores(txn *Transaction, destructive bool) []*TupleStore {
	if destructive {
		if txn != nil {
			return []*TupleStore{s.rollbackStore(txn), s.primary}
		}
		return []*TupleStore{s.primary}
	}

	stores := make([]*TupleStore, 0, 2)
	if txn != nil {
		stores = append(stores, s.rollbackStore(txn))
	}
	stores = append(stores, s.primary)

	s.mu.RLock()
	for other, ts := range s.txns {
		if other == txn {
			continue
		}
		stores = append(stores, ts.working)
	}
	s.mu.RUnlock()

	return stores
}

// registrationStores lists which stores a new waiter's template should
// sit in for wakeup purposes: the primary store always (since a plain
// Put or a commit's republish both land there), plus the caller's own
// rollback store when transactional (since a Put inside the same
// transaction should wake its own waiter too).
func (s *Space) registrationStores(txn *Transaction) []*TupleStore {
	if txn != nil {
		return []*TupleStore{s.primary, s.rollbackStore(txn)}
	}
	return []*TupleStore{s.primary}
}

// wakeWaiters signals every template in store that tup now satisfies.
func (s *Space) wakeWaiters(store *TupleStore, tup *Tuple) {
	for _, tmpl := range store.getWaitingTemplates(tup) {
		tmpl.signal()
	}
}

// wakeGetters closes a notification gap: a transactional Take moves a
// tuple into a working store, making it newly
// visible to every other transaction's (and the non-transactional) Get,
// but that move happens outside the normal Put path, so nothing would
// otherwise wake a Get blocked on exactly that tuple. Called right after
// such a move; over-notification is harmless since a waiter always
// re-verifies its own match before returning.
func (s *Space) wakeGetters(tup *Tuple) {
	s.mu.RLock()
	stores := make([]*TupleStore, 0, len(s.txns)+1)
	stores = append(stores, s.primary)
	for _, ts := range s.txns {
		stores = append(stores, ts.rollback)
	}
	s.mu.RUnlock()

	for _, st := range stores {
		for _, tmpl := range st.getWaitingTemplates(tup) {
			if !tmpl.Destructive() {
				tmpl.signal()
			}
		}
	}
}

// removeTupleEverywhere is the TTL-expiry callback's removal strategy: a
// tuple put under a transaction might expire before or after that
// transaction commits, so expiry must reach both the primary store and
// every enrolled transaction's rollback store, tolerating absence in
// whichever one doesn't (or no longer) hold it.
func (s *Space) removeTupleEverywhere(tup *Tuple) {
	s.primary.removeTuple(tup)

	s.mu.RLock()
	stores := make([]*TupleStore, 0, len(s.txns))
	for _, ts := range s.txns {
		stores = append(stores, ts.rollback)
	}
	s.mu.RUnlock()

	for _, st := range stores {
		st.removeTuple(tup)
	}
}

// txnEntry returns txn's rollback/working store pair, creating it on
// first use.
func (s *Space) txnEntry(txn *Transaction) *txnStores {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.txns[txn]
	if !ok {
		entry = &txnStores{rollback: NewTupleStore(), working: NewTupleStore()}
		s.txns[txn] = entry
	}
	return entry
}

func (s *Space) rollbackStore(txn *Transaction) *TupleStore { return s.txnEntry(txn).rollback }
func (s *Space) workingStore(txn *Transaction) *TupleStore  { return s.txnEntry(txn).working }

// commitTxn re-publishes every tuple txn put (re-running the normal Put
// wakeup path), deletes every tuple txn took from the primary store, and
// discards txn's stores.
func (s *Space) commitTxn(txn *Transaction) error {
	entry, ok := s.detachTxn(txn)
	if !ok {
		return nil
	}

	for _, tup := range entry.rollback.getAllTuples() {
		s.primary.storeTuple(tup)
		s.wakeWaiters(s.primary, tup)
	}
	for _, tup := range entry.working.getAllTuples() {
		s.primary.removeTuple(tup)
	}

	entry.rollback.deleteStorage()
	entry.working.deleteStorage()
	s.recordCounter(metrics.MetricCommits)
	return nil
}

// rollbackTxn re-publishes every tuple txn took back to the primary
// store, discards every tuple txn put, and discards txn's stores.
func (s *Space) rollbackTxn(txn *Transaction) error {
	entry, ok := s.detachTxn(txn)
	if !ok {
		return nil
	}

	for _, tup := range entry.working.getAllTuples() {
		s.primary.storeTuple(tup)
		s.wakeWaiters(s.primary, tup)
	}

	entry.rollback.deleteStorage()
	entry.working.deleteStorage()
	s.recordCounter(metrics.MetricRollbacks)
	return nil
}

func (s *Space) detachTxn(txn *Transaction) (*txnStores, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.txns[txn]
	if ok {
		delete(s.txns, txn)
	}
	return entry, ok
}

// Close marks the Space shutting down, wakes every registered waiter
// (each observes the flag and returns none), and clears the primary
// store. Idempotent; subsequent operations are no-ops.
func (s *Space) Close() error {
	s.closeOnce.Do(func() {
		s.shuttingDown.Store(true)
		close(s.closed)
		s.scheduler.stop()
		s.primary.deleteStorage()

		s.mu.Lock()
		for _, entry := range s.txns {
			entry.rollback.deleteStorage()
			entry.working.deleteStorage()
		}
		s.txns = make(map[*Transaction]*txnStores)
		s.mu.Unlock()
	})
	return nil
}

func (s *Space) recordCounter(name string) {
	if s.metrics == nil {
		return
	}
	s.metrics.IncrementCounter(name, map[string]string{metrics.LabelSpace: s.name})
}

func (s *Space) recordMatchMetric(destructive bool) {
	if destructive {
		s.recordCounter(metrics.MetricTakes)
	} else {
		s.recordCounter(metrics.MetricGets)
	}
}
