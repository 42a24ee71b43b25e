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

package builder

import (
	"context"
	"time"

	"github.com/sage-x-project/tuplespace/observability/logging"
	"github.com/sage-x-project/tuplespace/observability/metrics"
	"github.com/sage-x-project/tuplespace/pkg/errors"
	"github.com/sage-x-project/tuplespace/pkg/tuplespace"
)

// SpaceBuilder provides a fluent API for constructing a tuplespace Space.
//
// The builder pattern allows for progressive complexity:
//   - Simple: space := NewSpace("jobs").MustBuild()
//   - Medium: space := NewSpace("jobs").WithDefaultTTL(time.Minute).MustBuild()
//   - Advanced: full logging/metrics wiring alongside defaults
type SpaceBuilder struct {
	name string

	defaultTTL     time.Duration
	defaultTimeout time.Duration

	logger  logging.Logger
	metrics metrics.Collector

	validated bool
	errs      []error
}

// NewSpace creates a new Space builder named name.
//
// Example:
//
//	space := builder.NewSpace("jobs").MustBuild()
func NewSpace(name string) *SpaceBuilder {
	return &SpaceBuilder{
		name:           name,
		defaultTimeout: tuplespace.Forever,
	}
}

// WithDefaultTTL sets the TTL PutDefault applies when the caller doesn't
// specify one.
//
// Example:
//
//	builder.WithDefaultTTL(5 * time.Minute)
func (b *SpaceBuilder) WithDefaultTTL(ttl time.Duration) *SpaceBuilder {
	b.defaultTTL = ttl
	return b
}

// WithDefaultTimeout sets the timeout TakeDefault/GetDefault apply when
// the caller doesn't specify one. tuplespace.NoWait and tuplespace.Forever
// are both valid.
//
// Example:
//
//	builder.WithDefaultTimeout(30 * time.Second)
func (b *SpaceBuilder) WithDefaultTimeout(timeout time.Duration) *SpaceBuilder {
	b.defaultTimeout = timeout
	return b
}

// WithLogger sets the Space's logger. Unset defaults to a zap-backed
// logger at info level.
func (b *SpaceBuilder) WithLogger(logger logging.Logger) *SpaceBuilder {
	b.logger = logger
	return b
}

// WithMetrics sets the Space's metrics collector. Unset disables metric
// collection entirely.
func (b *SpaceBuilder) WithMetrics(collector metrics.Collector) *SpaceBuilder {
	b.metrics = collector
	return b
}

// Build validates the builder configuration and constructs a Handle.
func (b *SpaceBuilder) Build() (*Handle, error) {
	if err := b.validate(); err != nil {
		return nil, err
	}

	return &Handle{
		Space:          tuplespace.NewSpace(b.name, b.logger, b.metrics),
		defaultTTL:     b.defaultTTL,
		defaultTimeout: b.defaultTimeout,
	}, nil
}

// MustBuild is like Build but panics on error.
//
// Example:
//
//	space := builder.NewSpace("jobs").MustBuild()
func (b *SpaceBuilder) MustBuild() *Handle {
	h, err := b.Build()
	if err != nil {
		panic(err)
	}
	return h
}

// validate checks the builder configuration is valid, memoizing the
// result the way core/agent's builder does.
func (b *SpaceBuilder) validate() error {
	if b.validated {
		return nil
	}

	v := &validator{builder: b}
	v.validateName()
	v.validateDefaultTimeout()
	v.validateDefaultTTL()

	if len(v.errs) > 0 {
		return errors.ErrInvalidInput.
			WithMessage("space builder validation failed").
			WithDetail("errors", v.errs)
	}

	b.validated = true
	return nil
}

// Handle is a Space built with default TTL/timeout values, so call sites
// that don't need per-call control can omit them entirely.
type Handle struct {
	*tuplespace.Space

	defaultTTL     time.Duration
	defaultTimeout time.Duration
}

// PutDefault puts fields using the builder's configured default TTL.
func (h *Handle) PutDefault(fields map[string]tuplespace.Value, txn *tuplespace.Transaction) error {
	return h.Put(fields, h.defaultTTL, txn)
}

// TakeDefault takes using the builder's configured default timeout.
func (h *Handle) TakeDefault(ctx context.Context, fields map[string]tuplespace.Value, txn *tuplespace.Transaction) (map[string]tuplespace.Value, bool, error) {
	return h.Take(ctx, fields, h.defaultTimeout, txn)
}

// GetDefault gets using the builder's configured default timeout.
func (h *Handle) GetDefault(ctx context.Context, fields map[string]tuplespace.Value, txn *tuplespace.Transaction) (map[string]tuplespace.Value, bool, error) {
	return h.Get(ctx, fields, h.defaultTimeout, txn)
}
