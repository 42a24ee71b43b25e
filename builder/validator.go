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
	"fmt"

	"github.com/sage-x-project/tuplespace/pkg/tuplespace"
)

// validator validates SpaceBuilder configuration.
type validator struct {
	builder *SpaceBuilder
	errs    []error
}

func (v *validator) addError(err error) {
	v.errs = append(v.errs, err)
}

// validateName validates the Space name.
func (v *validator) validateName() {
	if v.builder.name == "" {
		v.addError(fmt.Errorf("space name cannot be empty"))
		return
	}

	for _, c := range v.builder.name {
		if !isValidNameChar(c) {
			v.addError(fmt.Errorf("space name contains invalid character: %c (use only a-z, A-Z, 0-9, -, _)", c))
			return
		}
	}

	if len(v.builder.name) > 64 {
		v.addError(fmt.Errorf("space name too long (max 64 characters): %s", v.builder.name))
	}
}

// validateDefaultTimeout validates the default Take/Get timeout: any
// value is legal except something below Forever's sentinel.
func (v *validator) validateDefaultTimeout() {
	if v.builder.defaultTimeout < tuplespace.Forever {
		v.addError(fmt.Errorf("default timeout %v is below the Forever sentinel", v.builder.defaultTimeout))
	}
}

// validateDefaultTTL validates the default Put TTL: negative TTLs make
// no sense (zero means "no expiry").
func (v *validator) validateDefaultTTL() {
	if v.builder.defaultTTL < 0 {
		v.addError(fmt.Errorf("default TTL must not be negative: %v", v.builder.defaultTTL))
	}
}

// isValidNameChar checks if a character is valid in a Space name.
func isValidNameChar(c rune) bool {
	return (c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9') ||
		c == '-' || c == '_'
}
