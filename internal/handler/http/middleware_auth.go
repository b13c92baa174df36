package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-course-api/internal/logger"
	"github.com/MKhiriev/go-course-api/internal/service"
	"github.com/MKhiriev/go-course-api/internal/store"
	"github.com/MKhiriev/go-course-api/internal/utils"
)

// basicAuth is an HTTP middleware that enforces HTTP Basic authentication.
//
// It hands the raw "Authorization" header to
// [service.AuthService.Authenticate] and — on success — stores the
// authenticated user in the request context under [utils.CurrentUserCtxKey]
// before delegating to the next handler.
//
// Every credential failure (absent or malformed header, unknown email
// address, wrong password) is answered with the same HTTP 401 body, so
// callers cannot probe which accounts exist. The specific reason is written
// to the context-scoped logger only. An infrastructure failure during the
// lookup is not a credential failure and answers 500.
func (h *Handler) basicAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		ctx := r.Context()

		user, err := h.services.AuthService.Authenticate(ctx, r.Header.Get("Authorization"))
		if err != nil {
			switch {
			case errors.Is(err, service.ErrNoCredentialsProvided):
				log.Warn().Msg("no basic credentials provided")
			case errors.Is(err, store.ErrNoUserWasFound):
				log.Warn().Msg("unknown email address")
			case errors.Is(err, service.ErrWrongPassword):
				log.Warn().Msg("wrong password")
			default:
				log.Err(err).Msg("unexpected error during authentication")
				utils.WriteJSON(w, errorResponse{Message: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
				return
			}

			utils.WriteJSON(w, messageResponse{Message: msgAccessFailed}, http.StatusUnauthorized)
			return
		}

		// Store the authenticated user in the context so that downstream
		// handlers can retrieve the principal without re-verifying.
		ctx = context.WithValue(ctx, utils.CurrentUserCtxKey, user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
