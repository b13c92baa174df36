package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/go-course-api/internal/logger"
)

// decodeBody parses the JSON request body into dst. An absent body is not a
// decoding failure: dst keeps its zero value and the validation chain reports
// every missing field, the same as an explicit "{}" payload. Malformed JSON
// that is actually present answers 400 with the fixed message.
func decodeBody(r *http.Request, dst any) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	logger.FromRequest(r).Err(err).Msg(msgInvalidJSON)
	return &httpError{status: http.StatusBadRequest, message: msgInvalidJSON}
}
