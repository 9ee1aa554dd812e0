package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClaims struct {
	userID uuid.UUID
}

func (c stubClaims) GetUserID() uuid.UUID { return c.userID }

type stubValidator struct {
	userID uuid.UUID
	err    error
}

func (v stubValidator) ValidateToken(string) (UserIDGetter, error) {
	if v.err != nil {
		return nil, v.err
	}
	return stubClaims{userID: v.userID}, nil
}

// wrap runs a request with the given Authorization header through the
// middleware and reports the status plus the user ID the handler saw.
func wrap(t *testing.T, validator TokenValidator, authHeader string) (int, uuid.UUID) {
	t.Helper()

	var seen uuid.UUID
	handler := AuthMiddleware(validator)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := GetUserID(r)
		require.NoError(t, err)
		seen = id
	}))

	req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec.Code, seen
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	userID := uuid.New()

	status, seen := wrap(t, stubValidator{userID: userID}, "Bearer sometoken")

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, userID, seen)
}

func TestAuthMiddleware_BearerCaseInsensitive(t *testing.T) {
	status, _ := wrap(t, stubValidator{userID: uuid.New()}, "bearer sometoken")

	assert.Equal(t, http.StatusOK, status)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	status, _ := wrap(t, stubValidator{userID: uuid.New()}, "")

	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	for _, header := range []string{"sometoken", "Basic sometoken", "Bearer", "Bearer a b"} {
		status, _ := wrap(t, stubValidator{userID: uuid.New()}, header)
		assert.Equal(t, http.StatusUnauthorized, status, "header %q", header)
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	status, _ := wrap(t, stubValidator{err: errors.New("expired")}, "Bearer sometoken")

	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestGetUserID_MissingFromContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/jobs", nil)

	_, err := GetUserID(req)
	require.Error(t, err)
}
