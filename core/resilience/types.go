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

package resilience

import (
	"context"
	"time"
)

// Executor is a function that performs an operation that may fail.
type Executor func(ctx context.Context) error

// BulkheadConfig configures bulkhead isolation.
type BulkheadConfig struct {
	// MaxConcurrent is the maximum number of concurrent executions.
	MaxConcurrent int

	// MaxQueueDepth is the maximum number of queued executions (0 = no queue).
	MaxQueueDepth int

	// Timeout is the maximum time to wait for a slot.
	Timeout time.Duration
}

// TimeoutConfig configures timeout behavior.
type TimeoutConfig struct {
	// Duration is the timeout duration.
	Duration time.Duration
}

// DefaultBulkheadConfig returns a default bulkhead configuration.
func DefaultBulkheadConfig() *BulkheadConfig {
	return &BulkheadConfig{
		MaxConcurrent: 10,
		MaxQueueDepth: 0,
		Timeout:       5 * time.Second,
	}
}

// DefaultTimeoutConfig returns a default timeout configuration.
func DefaultTimeoutConfig() *TimeoutConfig {
	return &TimeoutConfig{
		Duration: 30 * time.Second,
	}
}
