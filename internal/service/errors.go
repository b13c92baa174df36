package service

import "errors"

var (
	// ErrNoCredentialsProvided is returned by Authenticate when the
	// "Authorization" header is absent or cannot be parsed as Basic
	// credentials.
	ErrNoCredentialsProvided = errors.New("no basic credentials provided")

	// ErrWrongPassword is returned by Authenticate when the supplied
	// password does not match the stored hash.
	ErrWrongPassword = errors.New("wrong password")

	// ErrNotCourseOwner is returned by course mutations when the course
	// exists but belongs to a different user than the principal.
	ErrNotCourseOwner = errors.New("course belongs to another user")

	// ErrInvalidDataProvided is returned when a service method receives a
	// payload that fails its own preconditions.
	ErrInvalidDataProvided = errors.New("invalid data provided")
)
