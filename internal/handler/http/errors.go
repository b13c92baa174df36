// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-course-api/internal/service"
	"github.com/MKhiriev/go-course-api/internal/store"
)

// User-visible response messages. The wording is part of the API contract
// and must not change between releases.
const (
	msgAccessFailed       = "Access to this route has failed, please log in"
	msgEmailNotUnique     = "Email address must be unique"
	msgCourseDoesNotExist = "We are sorry, Course does not exist"
	msgCourseNotFound     = "We are sorry, Course not found"
	msgEditForbidden      = "We are sorry, You are not permitted to edit other user's course"
	msgDeleteForbidden    = "We are sorry, You are not permitted to delete other user's course"
	msgRouteNotFound      = "Route Not Found"
	msgInvalidJSON        = "Invalid JSON was passed"
	msgGreeting           = "Welcome to my REST API!"
)

// messageResponse is the body shape for single-message replies.
type messageResponse struct {
	Message string `json:"message"`
}

// validationResponse is the body shape for validation failures: the ordered
// list of messages produced by the validation chain.
type validationResponse struct {
	Errors []string `json:"errors"`
}

// errorResponse is the body shape written by the final responder of the
// error boundary. The empty error object mirrors what API clients already
// parse.
type errorResponse struct {
	Message string   `json:"message"`
	Details struct{} `json:"error"`
}

// httpError is an error carrying an HTTP status hint and a message that is
// safe to show to API clients. Handlers return it when a failure maps to a
// specific status but needs no dedicated sentinel.
type httpError struct {
	status  int
	message string
}

func (e *httpError) Error() string { return e.message }

// HTTPStatus reports the response status the error boundary should use.
func (e *httpError) HTTPStatus() int { return e.status }

// errorStatusMap assigns response statuses to sentinels that may escape a
// handler without a dedicated control-flow branch. Their messages are safe
// for clients.
var errorStatusMap = map[error]int{
	service.ErrNoCredentialsProvided: http.StatusUnauthorized,
	service.ErrWrongPassword:         http.StatusUnauthorized,
	service.ErrInvalidDataProvided:   http.StatusBadRequest,
	service.ErrNotCourseOwner:        http.StatusForbidden,

	store.ErrNoUserWasFound: http.StatusNotFound,
	store.ErrCourseNotFound: http.StatusNotFound,
}

// statusFromError resolves the response status and client-visible message
// for an error reaching the final responder. Unknown errors collapse into
// 500 with the generic status text so that internals never leak into the
// body.
func statusFromError(err error) (int, string) {
	var httpErr *httpError
	if errors.As(err, &httpErr) {
		return httpErr.HTTPStatus(), httpErr.message
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, target.Error()
		}
	}

	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}
