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

	"github.com/sage-x-project/tuplespace/observability/logging"
	"github.com/sage-x-project/tuplespace/observability/metrics"
)

// DefaultSpaceName is the name used when a caller asks for a Space
// without naming one.
const DefaultSpaceName = "default"

// registry is the process-wide table of named Spaces. Two goroutines
// asking for the same name get the same Space; this is what lets
// unrelated parts of a process rendezvous through a tuplespace without
// threading a shared handle through every call site.
type registry struct {
	mu     sync.Mutex
	spaces map[string]*Space
}

var globalRegistry = &registry{spaces: make(map[string]*Space)}

// GetSpace returns the named Space, creating it with default logging and
// no metrics collector on first reference. An empty name resolves to
// DefaultSpaceName.
func GetSpace(name string) *Space {
	return globalRegistry.get(name, nil, nil)
}

// GetOrCreateSpace returns the named Space, creating it with logger and
// collector if this is the first reference. logger/collector are only
// consulted on creation; an already-registered Space keeps whatever it
// was built with.
func GetOrCreateSpace(name string, logger logging.Logger, collector metrics.Collector) *Space {
	return globalRegistry.get(name, logger, collector)
}

func (r *registry) get(name string, logger logging.Logger, collector metrics.Collector) *Space {
	if name == "" {
		name = DefaultSpaceName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.spaces[name]; ok {
		return s
	}
	s := NewSpace(name, logger, collector)
	r.spaces[name] = s
	return s
}

// CloseSpace closes and deregisters the named Space. A no-op if no such
// Space exists.
func CloseSpace(name string) error {
	if name == "" {
		name = DefaultSpaceName
	}

	globalRegistry.mu.Lock()
	s, ok := globalRegistry.spaces[name]
	if ok {
		delete(globalRegistry.spaces, name)
	}
	globalRegistry.mu.Unlock()

	if !ok {
		return nil
	}
	return s.Close()
}

// CloseAll closes and deregisters every Space in the registry. Intended
// for test teardown and process shutdown.
func CloseAll() error {
	globalRegistry.mu.Lock()
	spaces := make([]*Space, 0, len(globalRegistry.spaces))
	for _, s := range globalRegistry.spaces {
		spaces = append(spaces, s)
	}
	globalRegistry.spaces = make(map[string]*Space)
	globalRegistry.mu.Unlock()

	var firstErr error
	for _, s := range spaces {
		if err := s.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// ListSpaces returns the names of every currently registered Space.
func ListSpaces() []string {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()

	names := make([]string, 0, len(globalRegistry.spaces))
	for name := range globalRegistry.spaces {
		names = append(names, name)
	}
	return names
}
