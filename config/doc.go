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

// Package config provides configuration management for the tuplespace
// module.
//
// The configuration system supports multiple sources with the following
// precedence:
//  1. Environment variables (prefixed with TUPLESPACE_)
//  2. Configuration file (YAML)
//  3. Default values
//
// # Configuration Structure
//
// The configuration is organized into sections:
//   - Space: defaults a Space falls back to for TTL/timeout/bucket sizing
//   - Registry: process-wide Space registry defaults
//   - Logging: structured logging configuration
//   - Metrics: Prometheus exporter configuration
//
// # Usage
//
// Loading configuration from a file, merged with environment overrides:
//
//	cfg, err := config.LoadFromFile("config.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Loading configuration purely from the environment:
//
//	cfg, err := config.LoadFromEnv()
//
// Environment variable override:
//
//	export TUPLESPACE_SPACE_DEFAULT_TTL=30s
//	export TUPLESPACE_LOGGING_LEVEL=debug
//
// # Validation
//
// All configuration is validated before use. Validation rules include:
//   - Space default timeout must be NoWait, Forever, or positive
//   - Space default TTL must not be negative
//   - Registry default space name must not be empty
//   - Logging level must be one of debug, info, warn, error, fatal
//   - Logging sampling rate must be between 0 and 1
//
// See the Config.Validate() method for complete validation rules.
package config
