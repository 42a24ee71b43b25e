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
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg == nil {
		t.Fatal("DefaultConfig() should not return nil")
	}

	if cfg.Space.DefaultTimeout != Forever {
		t.Errorf("Space.DefaultTimeout = %v, want Forever", cfg.Space.DefaultTimeout)
	}

	if cfg.Space.ShapeBucketHint == 0 {
		t.Error("Space.ShapeBucketHint should have default value")
	}

	if cfg.Registry.DefaultSpaceName == "" {
		t.Error("Registry.DefaultSpaceName should have default value")
	}

	if cfg.Logging.Level == "" {
		t.Error("Logging.Level should have default value")
	}
}

func TestConfig_Validate_Success(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil for default config", err)
	}
}

func TestConfig_Validate_EmptySpaceName(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Registry.DefaultSpaceName = ""

	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should reject empty default space name")
	}
}

func TestConfig_Validate_NegativeTTL(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Space.DefaultTTL = -5

	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should reject a negative default TTL")
	}
}

func TestConfig_Validate_BadTimeout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Space.DefaultTimeout = -2

	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should reject a timeout below Forever")
	}
}

func TestConfig_Validate_BadLoggingLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "verbose"

	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should reject an unknown logging level")
	}
}

func TestConfig_Validate_BadSamplingRate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.SamplingRate = 1.5

	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should reject a sampling rate above 1")
	}
}

func TestConfig_Validate_MetricsEnabledNoPath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Metrics.Enabled = true
	cfg.Metrics.Path = ""

	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should reject metrics enabled with no path")
	}
}

func TestNewConfig(t *testing.T) {
	if NewConfig() == nil {
		t.Fatal("NewConfig() should not return nil")
	}
}
