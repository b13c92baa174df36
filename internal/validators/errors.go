package validators

import "strings"

// ValidationError is the failure result of a validation chain. It carries
// every violated rule's message in rule declaration order, so a single
// response can enumerate all problems with the payload at once.
//
// The persistence layer also raises ValidationError for model-level checks
// (e.g. NOT NULL violations) so that the error-trapping boundary converts
// both sources into the same 400 response shape.
type ValidationError struct {
	Messages []string
}

// Error implements the error interface by joining all messages.
func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}
