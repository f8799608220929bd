package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tapnote/tapnote/internal/domain/model"
	"github.com/tapnote/tapnote/internal/server/http/middleware"
)

// noErrors keeps the Errors key typed on renders without field errors, so
// templates can index it unconditionally.
var noErrors = map[string]string(nil)

// CurrentUser extracts the authenticated user from context. It is only
// meaningful behind the AuthRequired middleware.
func CurrentUser(c *gin.Context) *model.User {
	val, ok := c.Get(middleware.UserContextKey)
	if !ok {
		return nil
	}
	user, _ := val.(*model.User)
	return user
}

func renderServerError(c *gin.Context) {
	c.HTML(http.StatusInternalServerError, "error.html", gin.H{
		"Message": "An unexpected error occurred. Please try again.",
	})
	c.Abort()
}

// safeNext keeps post-login redirects on this site. Anything not a local
// absolute path falls back to home.
func safeNext(next string) string {
	if strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "//") {
		return next
	}
	return "/home"
}
