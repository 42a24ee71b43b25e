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

// Package errors provides structured error handling for the tuplespace
// module.
//
// The package defines a comprehensive error system with:
//
//   - Categorized errors for different domains
//   - Rich error context with details
//   - Standard Go error wrapping support
//   - Type-safe error checking
//
// # Error Categories
//
// Errors are organized into categories:
//
//   - Validation: tuple/template construction and input errors
//   - Concurrency: blocking-call timeouts and cancellations
//   - Lifecycle: Space/Transaction misuse after close, commit, or rollback
//   - NotFound: registry lookups for an unknown Space name
//   - Internal: internal errors
//
// # Creating Errors
//
// Use predefined errors:
//
//	err := errors.ErrInvalidTuple.WithDetail("field", "age")
//
// Or create custom errors:
//
//	err := errors.New(
//	    errors.CategoryValidation,
//	    "CUSTOM_ERROR",
//	    "custom error message",
//	)
//
// # Wrapping Errors
//
// Wrap errors to add context:
//
//	if err := validateMessage(msg); err != nil {
//	    return errors.ErrInvalidInput.
//	        WithMessage("message validation failed").
//	        Wrap(err)
//	}
//
// # Error Checking
//
// Check error types using standard Go patterns:
//
//	// Check if error matches a specific type
//	if errors.Is(err, errors.ErrSpaceNotFound) {
//	    // handle not found
//	}
//
//	// Extract error details
//	var adkErr *errors.Error
//	if errors.As(err, &adkErr) {
//	    log.Printf("Code: %s, Details: %v", adkErr.Code, adkErr.Details)
//	}
package errors
