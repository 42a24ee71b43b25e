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

package config

import (
	"time"
)

// Config is the complete configuration for the tuplespace module: the
// defaults a registry applies to every Space it creates, plus the
// ambient logging and metrics settings.
type Config struct {
	Space    SpaceConfig
	Registry RegistryConfig
	Logging  LoggingConfig
	Metrics  MetricsConfig
}

// SpaceConfig holds loaded default TTL/timeout values for a Space. This
// package only loads and validates them; no Space reads a Config itself.
type SpaceConfig struct {
	// DefaultTimeout is a Take/Get timeout value.
	// NoWait (0) and Forever (-1) are valid values here too.
	DefaultTimeout time.Duration `json:"default_timeout" yaml:"default_timeout"`

	// DefaultTTL is a Put TTL value. Zero means "no expiry" for Put,
	// distinct from DefaultTimeout's NoWait.
	DefaultTTL time.Duration `json:"default_ttl" yaml:"default_ttl"`

	// ShapeBucketHint is an initial bucket-map size hint, not a hard
	// limit.
	ShapeBucketHint int `json:"shape_bucket_hint" yaml:"shape_bucket_hint"`
}

// RegistryConfig holds loaded registry settings. The process-wide Space
// registry does not read it; it uses tuplespace.DefaultSpaceName.
type RegistryConfig struct {
	// DefaultSpaceName names the registry's default Space.
	DefaultSpaceName string `json:"default_space_name" yaml:"default_space_name"`
}

// LoggingConfig holds loaded settings for a zap-backed Logger.
type LoggingConfig struct {
	Level        string  `json:"level" yaml:"level"` // "debug", "info", "warn", "error", "fatal"
	SamplingRate float64 `json:"sampling_rate" yaml:"sampling_rate"`
}

// MetricsConfig configures the optional Prometheus exporter.
type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
}

// NoWait and Forever mirror the sentinel timeouts accepted by Space.Take
// and Space.Get; they're re-exported here so config files can reference
// the same encoding the Space itself uses.
const (
	NoWait  time.Duration = 0
	Forever time.Duration = -1
)

// DefaultConfig returns a configuration with sensible defaults for a
// single in-process Space.
func DefaultConfig() *Config {
	return &Config{
		Space: SpaceConfig{
			DefaultTimeout:  Forever,
			DefaultTTL:      0,
			ShapeBucketHint: 16,
		},
		Registry: RegistryConfig{
			DefaultSpaceName: "default",
		},
		Logging: LoggingConfig{
			Level:        "info",
			SamplingRate: 1.0,
		},
		Metrics: MetricsConfig{
			Enabled: false,
			Path:    "/metrics",
		},
	}
}

// NewConfig creates a new default configuration.
// This is an alias for DefaultConfig().
func NewConfig() *Config {
	return DefaultConfig()
}
