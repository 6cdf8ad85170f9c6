package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	SessionCookieName = "session_id"
	SessionMaxAge     = 60 * 60 * 24 * 30 // 30 days in seconds

	ContextKeySessionID = "session_id"
)

// SessionConfig controls the session cookie
type SessionConfig struct {
	CookieDomain   string
	CookiePath     string
	CookieSecure   bool
	CookieSameSite http.SameSite
}

func DefaultSessionConfig(secure bool) SessionConfig {
	return SessionConfig{
		CookiePath:     "/",
		CookieSecure:   secure,
		CookieSameSite: http.SameSiteLaxMode,
	}
}

// Session identifies the visitor for cart storage.
// A missing or malformed session_id cookie is replaced by a fresh UUID.
func Session(config SessionConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := getSessionID(c)
		if sessionID == "" {
			sessionID = uuid.New().String()
			setSessionCookie(c, sessionID, config)
		}

		c.Set(ContextKeySessionID, sessionID)
		c.Next()
	}
}

func getSessionID(c *gin.Context) string {
	sessionID, err := c.Cookie(SessionCookieName)
	if err != nil || sessionID == "" {
		return ""
	}

	if _, err := uuid.Parse(sessionID); err != nil {
		return ""
	}

	return sessionID
}

func setSessionCookie(c *gin.Context, sessionID string, config SessionConfig) {
	c.SetSameSite(config.CookieSameSite)
	c.SetCookie(
		SessionCookieName,
		sessionID,
		SessionMaxAge,
		config.CookiePath,
		config.CookieDomain,
		config.CookieSecure,
		true, // httpOnly
	)
}

// GetSessionID retrieves session ID from context
func GetSessionID(c *gin.Context) string {
	return c.GetString(ContextKeySessionID)
}
