package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-course-api/internal/logger"
	"github.com/MKhiriev/go-course-api/internal/utils"
	"github.com/MKhiriev/go-course-api/internal/validators"
	"github.com/MKhiriev/go-course-api/models"
)

// getCurrentUser returns the public projection of the authenticated user.
// The password hash never appears in the body.
func (h *Handler) getCurrentUser(w http.ResponseWriter, r *http.Request) error {
	user, ok := utils.GetCurrentUserFromContext(r.Context())
	if !ok {
		return &httpError{status: http.StatusUnauthorized, message: msgAccessFailed}
	}

	utils.WriteJSON(w, user.Public(), http.StatusOK)
	return nil
}

// createUser registers a new account. The payload is validated before any
// service call; duplicate email addresses surface as a uniqueness conflict
// handled by the error boundary.
func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := decodeBody(r, &user); err != nil {
		return err
	}

	if err := validators.UserChain().Validate(validators.UserFields(user)); err != nil {
		return err
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		return fmt.Errorf("user registration: %w", err)
	}

	log.Debug().Int64("id", registeredUser.UserID).Msg("user registered")

	w.Header().Set("Location", "/")
	w.WriteHeader(http.StatusCreated)
	return nil
}
