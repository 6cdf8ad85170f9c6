package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"lumina-storefront/internal/domains/admin/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSharedSecretAuthenticator_Plain(t *testing.T) {
	auth := NewSharedSecretAuthenticator("admin123", "")

	id, err := auth.Authenticate(context.Background(), "", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "admin", id.UserID)

	_, err = auth.Authenticate(context.Background(), "", "admin1234")
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)

	_, err = NewSharedSecretAuthenticator("", "").Authenticate(context.Background(), "", "")
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestSharedSecretAuthenticator_TrimsPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	tests := []struct {
		name     string
		auth     Authenticator
		password string
	}{
		{"plain trailing space", NewSharedSecretAuthenticator("admin123", ""), "admin123 "},
		{"plain padded", NewSharedSecretAuthenticator("admin123", ""), "\t admin123\n"},
		{"hash padded", NewSharedSecretAuthenticator("", string(hash)), "  s3cret  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.auth.Authenticate(context.Background(), "", tt.password)
			assert.NoError(t, err)
		})
	}

	_, err = NewSharedSecretAuthenticator("admin123", "").Authenticate(context.Background(), "", "   ")
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestSharedSecretAuthenticator_Hash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	// the hash wins over the plain password
	auth := NewSharedSecretAuthenticator("admin123", string(hash))

	_, err = auth.Authenticate(context.Background(), "", "s3cret")
	assert.NoError(t, err)

	_, err = auth.Authenticate(context.Background(), "", "admin123")
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func newAuthServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/v1/token" || r.URL.Query().Get("grant_type") != "password" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if r.Header.Get("apikey") != "anon-key" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)

		w.Header().Set("Content-Type", "application/json")
		if body["email"] == "elena@lumina.test" && body["password"] == "pw" {
			_, _ = w.Write([]byte(`{"access_token":"x","user":{"id":"u-1","email":"elena@lumina.test"}}`))
			return
		}
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid_grant","error_description":"Invalid login credentials"}`))
	}))
}

func TestAuthServiceAuthenticator(t *testing.T) {
	srv := newAuthServer(t)
	defer srv.Close()

	auth := NewAuthServiceAuthenticator(srv.URL, "anon-key")

	id, err := auth.Authenticate(context.Background(), "elena@lumina.test", "pw")
	require.NoError(t, err)
	assert.Equal(t, "u-1", id.UserID)
	assert.Equal(t, "elena@lumina.test", id.Email)

	_, err = auth.Authenticate(context.Background(), "elena@lumina.test", "wrong")
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestAuthServiceAuthenticator_Unavailable(t *testing.T) {
	srv := newAuthServer(t)
	defer srv.Close()

	_, err := NewAuthServiceAuthenticator(srv.URL, "wrong-key").Authenticate(context.Background(), "elena@lumina.test", "pw")
	assert.ErrorIs(t, err, model.ErrAuthUnavailable)

	srv.Close()
	_, err = NewAuthServiceAuthenticator(srv.URL, "anon-key").Authenticate(context.Background(), "elena@lumina.test", "pw")
	assert.ErrorIs(t, err, model.ErrAuthUnavailable)
}
