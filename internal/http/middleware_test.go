package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobtrackr/jobtrackr-api/internal/domain/model"
	apperrors "github.com/jobtrackr/jobtrackr-api/internal/errors"
)

// stubAuthenticator resolves a fixed token to a fixed user.
type stubAuthenticator struct {
	token string
	user  *model.User
}

func (s *stubAuthenticator) Authenticate(_ context.Context, rawToken string) (*model.User, error) {
	if rawToken != s.token {
		return nil, apperrors.Unauthorized("bearer token verification failed")
	}
	return s.user, nil
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	auth := &stubAuthenticator{token: "good", user: testUser}
	handler := RequireAuth(auth)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	r := httptest.NewRequest(http.MethodGet, "/api/applications", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	require.Equal(t, http.StatusUnauthorized, w.Result().StatusCode)
}

func TestRequireAuth_BadToken(t *testing.T) {
	auth := &stubAuthenticator{token: "good", user: testUser}
	handler := RequireAuth(auth)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	r := httptest.NewRequest(http.MethodGet, "/api/applications", nil)
	r.Header.Set("Authorization", "Bearer bad")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	require.Equal(t, http.StatusUnauthorized, w.Result().StatusCode)
}

func TestRequireAuth_ValidTokenSetsUser(t *testing.T) {
	auth := &stubAuthenticator{token: "good", user: testUser}
	var seen *model.User
	handler := RequireAuth(auth)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = GetUserFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	r := httptest.NewRequest(http.MethodGet, "/api/applications", nil)
	r.Header.Set("Authorization", "Bearer good")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Result().StatusCode)
	require.NotNil(t, seen)
	assert.Equal(t, testUser.ID, seen.ID)
}

func TestBearerToken_CaseInsensitiveScheme(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "bearer abc123")
	assert.Equal(t, "abc123", bearerToken(r))

	r.Header.Set("Authorization", "Basic abc123")
	assert.Empty(t, bearerToken(r))

	r.Header.Del("Authorization")
	assert.Empty(t, bearerToken(r))
}
