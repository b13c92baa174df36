// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new
	// user fails because the email address is already taken (unique
	// constraint violation on users.email_address).
	ErrEmailAlreadyExists = errors.New("email address already exists")

	// ErrNoUserWasFound is returned when a query expected to match exactly
	// one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrCourseNotFound is returned when a query, update, or delete targets
	// a course id that does not exist in the database.
	ErrCourseNotFound = errors.New("course was not found")
)
