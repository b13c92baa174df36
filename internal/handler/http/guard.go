package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-course-api/internal/logger"
	"github.com/MKhiriev/go-course-api/internal/store"
	"github.com/MKhiriev/go-course-api/internal/utils"
	"github.com/MKhiriev/go-course-api/internal/validators"
)

// guard wraps a handler written as func(w, r) error into the error-trapping
// boundary of the API. Every failure leaving a handler — returned error or
// panic — is converted into exactly one well-formed JSON response:
//
//   - *validators.ValidationError → 400 {"errors": [...]} with the ordered
//     message list;
//   - store.ErrEmailAlreadyExists → 422 with the fixed uniqueness message;
//   - anything else → the final responder: {"message": ..., "error": {}}
//     with the status resolved by statusFromError (an HTTPStatus hint on
//     the error, a mapped sentinel, or 500).
//
// Full error detail is logged only when global error logging is enabled in
// the configuration; response bodies never carry internals.
func (h *Handler) guard(op func(w http.ResponseWriter, r *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		defer func() {
			if rec := recover(); rec != nil {
				log.Error().Any("panic", rec).Msg("panic recovered in handler")
				utils.WriteJSON(w, errorResponse{Message: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
			}
		}()

		err := op(w, r)
		if err == nil {
			return
		}

		var validationErr *validators.ValidationError
		if errors.As(err, &validationErr) {
			utils.WriteJSON(w, validationResponse{Errors: validationErr.Messages}, http.StatusBadRequest)
			return
		}

		if errors.Is(err, store.ErrEmailAlreadyExists) {
			utils.WriteJSON(w, messageResponse{Message: msgEmailNotUnique}, http.StatusUnprocessableEntity)
			return
		}

		status, message := statusFromError(err)
		if h.enableGlobalErrorLogging {
			log.Err(err).Int("status", status).Msg("request failed")
		}

		utils.WriteJSON(w, errorResponse{Message: message}, status)
	}
}
