// Package store implements the PostgreSQL persistence layer: repositories
// for users and courses, connection management, and the mapping of driver
// errors onto the closed set of failure types that the upper layers match
// against.
package store

import (
	"context"

	"github.com/MKhiriev/go-course-api/models"
)

// UserRepository provides persistence operations for user accounts.
type UserRepository interface {
	// CreateUser persists a new user and returns it with server-assigned
	// fields populated. Returns [ErrEmailAlreadyExists] when the email
	// address is already taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail retrieves the single user whose email address matches.
	// Returns [ErrNoUserWasFound] when no such user exists.
	FindUserByEmail(ctx context.Context, emailAddress string) (models.User, error)
}

// CourseRepository provides persistence operations for courses. Read methods
// populate the owner's public fields; they never load credential data.
type CourseRepository interface {
	// CreateCourse persists a new course and returns it with
	// server-assigned fields populated.
	CreateCourse(ctx context.Context, course models.Course) (models.Course, error)

	// FindCourseByID retrieves one course together with its owner's public
	// fields. Returns [ErrCourseNotFound] when no such course exists.
	FindCourseByID(ctx context.Context, courseID int64) (models.Course, error)

	// ListCourses returns all courses, each with its owner's public fields,
	// ordered by course id.
	ListCourses(ctx context.Context) ([]models.Course, error)

	// UpdateCourse applies a partial update to an existing course.
	// Returns [ErrCourseNotFound] when the course does not exist.
	UpdateCourse(ctx context.Context, courseID int64, update models.CourseUpdate) error

	// DeleteCourse removes a course. Returns [ErrCourseNotFound] when the
	// course does not exist.
	DeleteCourse(ctx context.Context, courseID int64) error
}

// ErrorClassifier maps low-level database errors onto the closed set of
// [ErrorClassification] values used by the repositories.
type ErrorClassifier interface {
	Classify(err error) ErrorClassification
}
