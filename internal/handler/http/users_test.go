package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-course-api/internal/service"
	"github.com/MKhiriev/go-course-api/internal/store"
	"github.com/MKhiriev/go-course-api/models"
)

// ─────────────────────────────────────────────
// GET /users
// ─────────────────────────────────────────────

func TestGetCurrentUser_ReturnsPublicFields(t *testing.T) {
	h := newTestHandler(authOK(), &mockCourseService{})

	rr := do(t, h, http.MethodGet, "/users", "", true)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{
		"id": 1,
		"firstName": "Joe",
		"lastName": "Smith",
		"emailAddress": "joe@smith.com"
	}`, rr.Body.String())
}

func TestGetCurrentUser_NeverLeaksPasswordHash(t *testing.T) {
	h := newTestHandler(authOK(), &mockCourseService{})

	rr := do(t, h, http.MethodGet, "/users", "", true)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotContains(t, rr.Body.String(), "password")
	assert.NotContains(t, rr.Body.String(), principal.PasswordHash)
}

func TestGetCurrentUser_Unauthorized(t *testing.T) {
	tests := []struct {
		name string
		auth *mockAuthService
	}{
		{"missing header", authFailing(service.ErrNoCredentialsProvided)},
		{"unknown user", authFailing(store.ErrNoUserWasFound)},
		{"wrong password", authFailing(service.ErrWrongPassword)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(tt.auth, &mockCourseService{})

			rr := do(t, h, http.MethodGet, "/users", "", true)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.JSONEq(t, `{"message": "Access to this route has failed, please log in"}`, rr.Body.String())
		})
	}
}

// ─────────────────────────────────────────────
// POST /users
// ─────────────────────────────────────────────

func TestCreateUser_Success(t *testing.T) {
	var registered models.User
	auth := &mockAuthService{
		registerUserFn: func(ctx context.Context, user models.User) (models.User, error) {
			registered = user
			user.UserID = 7
			return user, nil
		},
	}
	h := newTestHandler(auth, &mockCourseService{})

	body := `{
		"firstName": "Sam",
		"lastName": "Jones",
		"emailAddress": "sam@jones.com",
		"password": "s3cret"
	}`
	rr := do(t, h, http.MethodPost, "/users", body, false)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))
	assert.Empty(t, rr.Body.String())

	assert.Equal(t, "sam@jones.com", registered.EmailAddress)
	assert.Equal(t, "s3cret", registered.Password)
}

func TestCreateUser_ValidationMessagesInOrder(t *testing.T) {
	h := newTestHandler(&mockAuthService{}, &mockCourseService{})

	rr := do(t, h, http.MethodPost, "/users", `{}`, false)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"errors": [
		"First Name is required",
		"Last Name is required",
		"Email address is required",
		"Password is required"
	]}`, rr.Body.String())
}

func TestCreateUser_EmptyBodyReportsEveryField(t *testing.T) {
	// An absent body is an empty payload, not malformed JSON: the client
	// gets the full ordered validation list, the same as for "{}".
	h := newTestHandler(&mockAuthService{}, &mockCourseService{})

	rr := do(t, h, http.MethodPost, "/users", "", false)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"errors": [
		"First Name is required",
		"Last Name is required",
		"Email address is required",
		"Password is required"
	]}`, rr.Body.String())
}

func TestCreateUser_InvalidEmailFormat(t *testing.T) {
	h := newTestHandler(&mockAuthService{}, &mockCourseService{})

	body := `{
		"firstName": "Sam",
		"lastName": "Jones",
		"emailAddress": "not-an-email",
		"password": "s3cret"
	}`
	rr := do(t, h, http.MethodPost, "/users", body, false)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"errors": ["We need a valid email address"]}`, rr.Body.String())
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(ctx context.Context, user models.User) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyExists
		},
	}
	h := newTestHandler(auth, &mockCourseService{})

	body := `{
		"firstName": "Sam",
		"lastName": "Jones",
		"emailAddress": "sam@jones.com",
		"password": "s3cret"
	}`
	rr := do(t, h, http.MethodPost, "/users", body, false)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.JSONEq(t, `{"message": "Email address must be unique"}`, rr.Body.String())
}

func TestCreateUser_MalformedJSON(t *testing.T) {
	h := newTestHandler(&mockAuthService{}, &mockCourseService{})

	rr := do(t, h, http.MethodPost, "/users", `{not json`, false)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Invalid JSON was passed")
}

func TestCreateUser_NoAuthRequired(t *testing.T) {
	// Registration must work without any Authorization header: the auth
	// service is only consulted for its RegisterUser method.
	auth := &mockAuthService{
		registerUserFn: func(ctx context.Context, user models.User) (models.User, error) {
			return user, nil
		},
		authenticateFn: func(ctx context.Context, authHeader string) (models.User, error) {
			t.Fatal("Authenticate must not be called for POST /users")
			return models.User{}, nil
		},
	}
	h := newTestHandler(auth, &mockCourseService{})

	body := `{
		"firstName": "Sam",
		"lastName": "Jones",
		"emailAddress": "sam@jones.com",
		"password": "s3cret"
	}`
	rr := do(t, h, http.MethodPost, "/users", body, false)

	assert.Equal(t, http.StatusCreated, rr.Code)
}
