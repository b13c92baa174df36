// Package service implements the application's domain logic: credential
// verification, user registration, and ownership-gated course mutations.
// Services sit between the HTTP handlers and the store repositories and
// return typed failures that the transport layer converts into responses.
package service

import (
	"context"

	"github.com/MKhiriev/go-course-api/models"
)

// AuthService verifies per-request credentials and registers new accounts.
type AuthService interface {
	// RegisterUser creates a new user account. The plain-text password of
	// the payload is hashed with bcrypt before persistence and never
	// stored or returned in cleartext.
	RegisterUser(ctx context.Context, user models.User) (models.User, error)

	// Authenticate verifies the raw value of an HTTP "Authorization"
	// header carrying Basic credentials and returns the authenticated
	// user on success.
	//
	// Failure reasons (missing header, unknown user, wrong password) are
	// distinguishable via errors.Is for internal logging, but callers
	// must present all of them as one generic 401 response so that user
	// enumeration is not possible.
	Authenticate(ctx context.Context, authHeader string) (models.User, error)
}

// CourseService manages courses and enforces the ownership invariant: only
// the user that created a course may update or delete it.
type CourseService interface {
	// ListCourses returns all courses with their owners' public fields.
	ListCourses(ctx context.Context) ([]models.Course, error)

	// GetCourse returns one course with its owner's public fields.
	// Returns store.ErrCourseNotFound when the id does not exist.
	GetCourse(ctx context.Context, courseID int64) (models.Course, error)

	// CreateCourse persists a new course owned by the given principal.
	CreateCourse(ctx context.Context, principal models.User, course models.Course) (models.Course, error)

	// UpdateCourse applies a partial update to the course after confirming
	// it exists and belongs to the principal. Existence is checked first:
	// a non-owner probing a nonexistent id sees store.ErrCourseNotFound,
	// never [ErrNotCourseOwner].
	UpdateCourse(ctx context.Context, principal models.User, courseID int64, update models.CourseUpdate) error

	// DeleteCourse removes the course after the same existence-then-
	// ownership check as UpdateCourse.
	DeleteCourse(ctx context.Context, principal models.User, courseID int64) error
}
