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

// TxnStats is a snapshot of one enrolled transaction's rollback/working
// store occupancy.
type TxnStats struct {
	RollbackBuckets map[uint64]BucketStat
	WorkingBuckets  map[uint64]BucketStat
}

// Stats is a consistent, point-in-time snapshot of a Space's contents,
// rather than requiring callers to reach into raw maps to answer
// "what's in here right now".
type Stats struct {
	Name            string
	PrimaryBuckets  map[uint64]BucketStat
	Transactions    map[string]TxnStats
	ActiveTxnCount  int
	TotalTupleCount int
}

// Stats returns a snapshot of s. Each call takes the Space's read lock
// only long enough to copy the transaction table; per-store counts are
// then taken independently, so the result is a best-effort snapshot, not
// a transactionally consistent one, matching the source's own read
// consistency model elsewhere.
func (s *Space) Stats() Stats {
	s.mu.RLock()
	entries := make(map[*Transaction]*txnStores, len(s.txns))
	for txn, entry := range s.txns {
		entries[txn] = entry
	}
	s.mu.RUnlock()

	primary := s.primary.bucketStats()
	total := 0
	for _, b := range primary {
		total += b.Tuples
	}

	txnStats := make(map[string]TxnStats, len(entries))
	for txn, entry := range entries {
		txnStats[txn.ID().String()] = TxnStats{
			RollbackBuckets: entry.rollback.bucketStats(),
			WorkingBuckets:  entry.working.bucketStats(),
		}
	}

	return Stats{
		Name:            s.name,
		PrimaryBuckets:  primary,
		Transactions:    txnStats,
		ActiveTxnCount:  len(entries),
		TotalTupleCount: total,
	}
}
