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

// Package builder provides a fluent API for constructing a tuplespace
// Space.
//
// # Basic Usage
//
// The simplest Space requires only a name:
//
//	space := builder.NewSpace("jobs").MustBuild()
//	space.Put(map[string]tuplespace.Value{"id": 1}, 0, nil)
//
// # Default TTL and Timeout
//
// Attach default TTL/timeout so call sites don't have to repeat them:
//
//	space := builder.NewSpace("jobs").
//	    WithDefaultTTL(5 * time.Minute).
//	    WithDefaultTimeout(30 * time.Second).
//	    MustBuild()
//
//	space.PutDefault(fields, nil)                 // uses the 5-minute TTL
//	space.TakeDefault(ctx, template, nil)          // uses the 30-second timeout
//
// The underlying *tuplespace.Space is still reachable for calls that need
// explicit, per-call control:
//
//	space.Put(fields, time.Hour, nil) // overrides the default TTL just this once
//
// # Observability
//
// Wire a logger and metrics collector at construction time:
//
//	space := builder.NewSpace("jobs").
//	    WithLogger(myLogger).
//	    WithMetrics(myCollector).
//	    MustBuild()
//
// # Error Handling
//
// Use Build() for error handling, MustBuild() for simplicity:
//
//	space, err := builder.NewSpace("jobs").Build()
//	if err != nil {
//	    log.Fatalf("failed to build space: %v", err)
//	}
//
//	space := builder.NewSpace("jobs").MustBuild()
//
// # Validation
//
// The builder validates configuration at build time:
//
//	_, err := builder.NewSpace("").Build() // empty name
//	// err: an ErrInvalidInput error ("space builder validation failed")
//	// whose "errors" detail holds "space name cannot be empty"
package builder
