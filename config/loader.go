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
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// envPrefix is the prefix viper uses to bind environment variable
// overrides, e.g. TUPLESPACE_SPACE_DEFAULT_TTL.
const envPrefix = "TUPLESPACE"

// LoadFromFile loads configuration from a file (YAML, JSON, or TOML,
// anything viper's codecs understand) merged with environment variable
// overrides and defaults.
//
// Environment variables take precedence over the file; the file takes
// precedence over DefaultConfig(). Format: TUPLESPACE_<SECTION>_<FIELD>
// (e.g. TUPLESPACE_SPACE_DEFAULT_TTL, TUPLESPACE_LOGGING_LEVEL).
func LoadFromFile(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := decode(v)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// LoadFromEnv builds a configuration from defaults overridden purely by
// environment variables, with no backing file. Useful for containerized
// deployments that configure entirely through the environment.
func LoadFromEnv() (*Config, error) {
	v := newViper()

	cfg, err := decode(v)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// newViper builds a viper instance pre-seeded with DefaultConfig() and
// wired for TUPLESPACE_-prefixed environment overrides.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v, DefaultConfig())
	return v
}

// setDefaults seeds viper with every field of a Config so AutomaticEnv
// has a key to bind against even when no file is loaded.
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("space.default_timeout", cfg.Space.DefaultTimeout)
	v.SetDefault("space.default_ttl", cfg.Space.DefaultTTL)
	v.SetDefault("space.shape_bucket_hint", cfg.Space.ShapeBucketHint)
	v.SetDefault("registry.default_space_name", cfg.Registry.DefaultSpaceName)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.sampling_rate", cfg.Logging.SamplingRate)
	v.SetDefault("metrics.enabled", cfg.Metrics.Enabled)
	v.SetDefault("metrics.path", cfg.Metrics.Path)
}

func decode(v *viper.Viper) (*Config, error) {
	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	return cfg, nil
}
