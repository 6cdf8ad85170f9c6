package model

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidCredentials = errors.New("invalid password")
	ErrAuthUnavailable    = errors.New("auth service unavailable")
	ErrNoImage            = errors.New("no image uploaded")
)

// Identity of a signed-in admin
type Identity struct {
	UserID string `json:"user_id"`
	Email  string `json:"email,omitempty"`
}

// LoginRequest - POST /admin/login. Email is only used by the auth service gate.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Admin     Identity  `json:"admin"`
}

// Stats for the dashboard cards
type Stats struct {
	Books   int             `json:"books"`
	Orders  int             `json:"orders"`
	Pending int             `json:"pending_orders"`
	Reviews int             `json:"reviews"`
	Revenue decimal.Decimal `json:"revenue"`
}

// UploadedImage is either a stored object URL or an embedded data URI
type UploadedImage struct {
	URL      string `json:"url"`
	Embedded bool   `json:"embedded"`
	Size     int    `json:"size"`
}
