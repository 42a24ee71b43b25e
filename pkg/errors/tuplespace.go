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

package errors

// Tuplespace domain errors
var (
	// ErrInvalidTuple indicates a nil, empty, non-string-keyed, or
	// formal-bearing tuple was passed where a concrete tuple is required.
	ErrInvalidTuple = &Error{
		Category: CategoryValidation,
		Code:     "INVALID_TUPLE",
		Message:  "invalid tuple",
	}

	// ErrInvalidTemplate indicates a nil template map or a malformed
	// template field.
	ErrInvalidTemplate = &Error{
		Category: CategoryValidation,
		Code:     "INVALID_TEMPLATE",
		Message:  "invalid template",
	}

	// ErrIllegalTemplateUse indicates matches was called against a value
	// whose own fields carry formals.
	ErrIllegalTemplateUse = &Error{
		Category: CategoryValidation,
		Code:     "ILLEGAL_TEMPLATE_USE",
		Message:  "a template cannot be used where a concrete tuple is required",
	}

	// ErrSpaceClosed indicates an operation was attempted on a Space that
	// has already been closed. Take/Get surface this as a clean none
	// result rather than propagating it to callers; it is exported so
	// internal callers and tests can recognize the condition.
	ErrSpaceClosed = &Error{
		Category: CategoryLifecycle,
		Code:     "SPACE_CLOSED",
		Message:  "space is closed",
	}

	// ErrTransactionMisuse indicates Commit or Rollback was called on a
	// transaction that has already finished.
	ErrTransactionMisuse = &Error{
		Category: CategoryLifecycle,
		Code:     "TRANSACTION_MISUSE",
		Message:  "transaction already committed or rolled back",
	}

	// ErrTimeout indicates a blocking Take/Get exhausted its deadline
	// without a match. Modeled as a clean none result, not propagated.
	ErrTimeout = &Error{
		Category: CategoryConcurrency,
		Code:     "TIMEOUT",
		Message:  "operation timed out",
	}

	// ErrCancelled indicates a blocking Take/Get was cancelled externally
	// (context cancellation) before a match or timeout occurred.
	ErrCancelled = &Error{
		Category: CategoryConcurrency,
		Code:     "CANCELLED",
		Message:  "operation was cancelled",
	}

	// ErrSpaceNotFound indicates the registry has no Space under the
	// requested name.
	ErrSpaceNotFound = &Error{
		Category: CategoryNotFound,
		Code:     "SPACE_NOT_FOUND",
		Message:  "space not found",
	}
)
