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
)

// Validate validates the entire configuration.
func (c *Config) Validate() error {
	if err := c.validateSpace(); err != nil {
		return err
	}

	if err := c.validateRegistry(); err != nil {
		return err
	}

	if err := c.validateLogging(); err != nil {
		return err
	}

	if err := c.validateMetrics(); err != nil {
		return err
	}

	return nil
}

// validateSpace validates Space defaults.
func (c *Config) validateSpace() error {
	if c.Space.DefaultTimeout < Forever {
		return fmt.Errorf("space default timeout must be NoWait (0), Forever (-1), or positive")
	}

	if c.Space.DefaultTTL < 0 {
		return fmt.Errorf("space default TTL must not be negative")
	}

	if c.Space.ShapeBucketHint < 0 {
		return fmt.Errorf("space shape bucket hint must not be negative")
	}

	return nil
}

// validateRegistry validates registry defaults.
func (c *Config) validateRegistry() error {
	if c.Registry.DefaultSpaceName == "" {
		return fmt.Errorf("registry default space name must not be empty")
	}

	return nil
}

// validateLogging validates logging configuration.
func (c *Config) validateLogging() error {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
		"fatal": true,
	}

	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("logging level must be one of: debug, info, warn, error, fatal")
	}

	if c.Logging.SamplingRate < 0 || c.Logging.SamplingRate > 1 {
		return fmt.Errorf("logging sampling rate must be between 0 and 1")
	}

	return nil
}

// validateMetrics validates metrics configuration.
func (c *Config) validateMetrics() error {
	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("metrics path must not be empty when metrics are enabled")
	}

	return nil
}
