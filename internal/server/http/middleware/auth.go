package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/tapnote/tapnote/internal/domain/errors"
	"github.com/tapnote/tapnote/internal/domain/model"
)

const (
	// UserContextKey is a gin context key for the authenticated user.
	UserContextKey    = "currentUser"
	sessionCookieName = "tapnote_session"
)

// SessionResolver resolves a session token to its user.
type SessionResolver interface {
	CurrentUser(ctx context.Context, token string) (*model.User, error)
}

// AuthRequired gates protected routes behind a valid session cookie. Requests
// without one are redirected to the login page with the original URL carried
// in the next parameter.
func AuthRequired(resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := resolver.CurrentUser(c.Request.Context(), SessionToken(c))
		if err != nil {
			if errors.Is(err, domainErrors.ErrNoSession) {
				next := url.QueryEscape(c.Request.URL.RequestURI())
				c.Redirect(http.StatusSeeOther, "/login?next="+next)
				c.Abort()
				return
			}
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		c.Set(UserContextKey, user)
		c.Next()
	}
}

// SessionToken reads the session token cookie, or "" when absent.
func SessionToken(c *gin.Context) string {
	token, err := c.Cookie(sessionCookieName)
	if err != nil {
		return ""
	}
	return token
}

// SetSessionCookie writes the session token cookie to the response. The
// session has no expiry; the cookie lives until logout clears it.
func SetSessionCookie(c *gin.Context, token string) {
	c.SetCookie(sessionCookieName, token, 0, "/", "", false, true)
}

// ClearSessionCookie removes the session token cookie.
func ClearSessionCookie(c *gin.Context) {
	c.SetCookie(sessionCookieName, "", -1, "/", "", false, true)
}
