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

// Package metrics provides metrics collection and export for a tuplespace
// Space.
//
// # Overview
//
// This package provides a Prometheus-based metrics collector with support for:
//   - Counters (monotonic increasing values)
//   - Gauges (arbitrary values)
//   - Histograms (distribution of values)
//   - Summaries (quantiles)
//
// # Basic Usage
//
//	collector := metrics.NewPrometheusCollector()
//
//	// Increment counter
//	collector.IncrementCounter(metrics.MetricPuts, map[string]string{
//	    metrics.LabelSpace: "default",
//	})
//
//	// Set gauge
//	collector.SetGauge(metrics.MetricActiveWaiters, 3, map[string]string{
//	    metrics.LabelSpace: "default",
//	})
//
//	// Expose metrics
//	http.Handle("/metrics", collector.Handler())
//
// # Space Metrics
//
// See space.go for the metric names. A Space constructed with
// builder.WithMetrics(collector) increments the puts, takes, gets,
// timeouts, expirations, commits and rollbacks counters; it does not set
// the active-waiters or per-shape bucket gauges.
//
// # Custom Metrics
//
// Create custom metric collectors:
//
//	type CustomMetrics struct {
//	    collector metrics.Collector
//	}
//
//	func (m *CustomMetrics) RecordCustomEvent(name string) {
//	    m.collector.IncrementCounter("custom_events_total", map[string]string{
//	        "event": name,
//	    })
//	}
package metrics
