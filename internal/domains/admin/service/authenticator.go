package service

import (
	"bytes"
	"context"
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"lumina-storefront/internal/domains/admin/model"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// Authenticator checks admin credentials
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (*model.Identity, error)
}

// sharedSecretAuthenticator compares against one configured password
type sharedSecretAuthenticator struct {
	password     string
	passwordHash string
}

// NewSharedSecretAuthenticator prefers the bcrypt hash when both are set
func NewSharedSecretAuthenticator(password, passwordHash string) Authenticator {
	return &sharedSecretAuthenticator{password: password, passwordHash: passwordHash}
}

// Authenticate ignores surrounding whitespace in the submitted password
func (a *sharedSecretAuthenticator) Authenticate(ctx context.Context, email, password string) (*model.Identity, error) {
	password = strings.TrimSpace(password)

	if a.passwordHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(a.passwordHash), []byte(password)); err != nil {
			return nil, model.ErrInvalidCredentials
		}
		return &model.Identity{UserID: "admin", Email: email}, nil
	}

	if a.password == "" || subtle.ConstantTimeCompare([]byte(a.password), []byte(password)) != 1 {
		return nil, model.ErrInvalidCredentials
	}
	return &model.Identity{UserID: "admin", Email: email}, nil
}

// authServiceAuthenticator signs in with email/password against a
// GoTrue compatible endpoint
type authServiceAuthenticator struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewAuthServiceAuthenticator(baseURL, apiKey string) Authenticator {
	return &authServiceAuthenticator{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type authServiceUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type authServiceResponse struct {
	User  authServiceUser `json:"user"`
	Error string          `json:"error"`
}

func (a *authServiceAuthenticator) Authenticate(ctx context.Context, email, password string) (*model.Identity, error) {
	// Step 1: request body
	body, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	// Step 2: call the token endpoint
	url := a.baseURL + "/auth/v1/token?grant_type=password"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if a.apiKey != "" {
		req.Header.Set("apikey", a.apiKey)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrAuthUnavailable, err)
	}
	defer resp.Body.Close()

	// Step 3: parse
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var parsed authServiceResponse
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &parsed); err != nil {
			return nil, fmt.Errorf("failed to unmarshal response: %w", err)
		}
	}

	// Step 4: 4xx is a rejected sign-in, anything else unexpected is an outage
	switch {
	case resp.StatusCode == http.StatusOK && parsed.User.ID != "":
		return &model.Identity{UserID: parsed.User.ID, Email: parsed.User.Email}, nil
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		log.Debug().Int("status", resp.StatusCode).Str("error", parsed.Error).Msg("Auth service rejected sign-in")
		return nil, model.ErrInvalidCredentials
	default:
		return nil, fmt.Errorf("%w: status %d", model.ErrAuthUnavailable, resp.StatusCode)
	}
}
