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
	"testing"
	"time"
)

func TestExpiryScheduler_FiresInDeadlineOrder(t *testing.T) {
	s := newExpiryScheduler()
	defer s.stop()

	var fired []int
	done := make(chan struct{})

	s.arm(time.Now().Add(60*time.Millisecond), func() {
		fired = append(fired, 2)
	})
	s.arm(time.Now().Add(20*time.Millisecond), func() {
		fired = append(fired, 1)
	})
	s.arm(time.Now().Add(100*time.Millisecond), func() {
		fired = append(fired, 3)
		close(done)
	})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler never fired all three tasks")
	}

	if len(fired) != 3 || fired[0] != 1 || fired[1] != 2 || fired[2] != 3 {
		t.Errorf("fired order = %v, want [1 2 3]", fired)
	}
}

func TestExpiryScheduler_StopIsIdempotent(t *testing.T) {
	s := newExpiryScheduler()
	s.stop()
	s.stop() // must not panic
}
