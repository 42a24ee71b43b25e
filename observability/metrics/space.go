// Copyright (C) 2025 sage-x-project
// SPDX-License-Identifier: LGPL-3.0-or-later

package metrics

// Metric names emitted by a tuplespace Space when it is constructed with a
// Collector (see builder.WithMetrics). Kept as named constants so callers
// querying Prometheus don't have to guess at the string names used
// internally by the Space.
const (
	// MetricPuts counts successful Put calls.
	MetricPuts = "tuplespace_puts_total"

	// MetricTakes counts successful destructive Take matches.
	MetricTakes = "tuplespace_takes_total"

	// MetricGets counts successful non-destructive Get matches.
	MetricGets = "tuplespace_gets_total"

	// MetricTimeouts counts Take/Get calls that returned with no match.
	MetricTimeouts = "tuplespace_timeouts_total"

	// MetricExpirations counts tuples removed by TTL expiry.
	MetricExpirations = "tuplespace_expirations_total"

	// MetricCommits counts transaction commits.
	MetricCommits = "tuplespace_commits_total"

	// MetricRollbacks counts transaction rollbacks.
	MetricRollbacks = "tuplespace_rollbacks_total"

	// MetricActiveWaiters is a gauge of templates currently blocked in the
	// wait loop. A Space does not set this gauge itself.
	MetricActiveWaiters = "tuplespace_active_waiters"

	// MetricBucketTuples is a gauge of tuples held per shape-hash bucket,
	// labeled by "shape". A Space does not set this gauge itself.
	MetricBucketTuples = "tuplespace_bucket_tuples"
)

// LabelSpace is the label key identifying which named Space (from the
// registry) a metric observation belongs to.
const LabelSpace = "space"

// LabelShape is the label key identifying a shape-hash bucket.
const LabelShape = "shape"
