package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/tapnote/tapnote/internal/domain/errors"
	"github.com/tapnote/tapnote/internal/server/http/forms"
	"github.com/tapnote/tapnote/internal/server/http/middleware"
)

// AuthHandler processes registration, login, and logout.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// RegisterPage handles GET /register.
func (h *AuthHandler) RegisterPage(c *gin.Context) {
	if h.redirectIfAuthenticated(c) {
		return
	}
	c.HTML(http.StatusOK, "register.html", gin.H{
		"Form":   forms.RegisterForm{},
		"Errors": noErrors,
	})
}

// Register handles POST /register.
func (h *AuthHandler) Register(c *gin.Context) {
	if h.redirectIfAuthenticated(c) {
		return
	}

	var form forms.RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusOK, "register.html", gin.H{
			"Form":   form,
			"Errors": noErrors,
			"Notice": "Invalid input.",
		})
		return
	}

	if fieldErrors := forms.Validate(form); fieldErrors != nil {
		c.HTML(http.StatusOK, "register.html", gin.H{
			"Form":   form,
			"Errors": fieldErrors,
		})
		return
	}

	_, err := h.facade.Register(c.Request.Context(), form.Username, form.Email, form.Password)
	if err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			c.HTML(http.StatusOK, "register.html", gin.H{
				"Form":   form,
				"Errors": noErrors,
				"Notice": "That username or email is already registered.",
			})
			return
		}
		renderServerError(c)
		return
	}

	c.Redirect(http.StatusSeeOther, "/login?registered=1")
}

// LoginPage handles GET /login.
func (h *AuthHandler) LoginPage(c *gin.Context) {
	if h.redirectIfAuthenticated(c) {
		return
	}

	var notice string
	if c.Query("registered") == "1" {
		notice = "Your account has been created! You are now able to log in."
	}
	c.HTML(http.StatusOK, "login.html", gin.H{
		"Form":   forms.LoginForm{},
		"Errors": noErrors,
		"Notice": notice,
		"Next":   c.Query("next"),
	})
}

// Login handles POST /login.
func (h *AuthHandler) Login(c *gin.Context) {
	var form forms.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusOK, "login.html", gin.H{
			"Form":   form,
			"Errors": noErrors,
			"Notice": "Invalid input.",
			"Next":   c.Query("next"),
		})
		return
	}

	if fieldErrors := forms.Validate(form); fieldErrors != nil {
		c.HTML(http.StatusOK, "login.html", gin.H{
			"Form":   form,
			"Errors": fieldErrors,
			"Next":   c.Query("next"),
		})
		return
	}

	token, err := h.facade.Login(c.Request.Context(), form.Email, form.Password)
	if err != nil {
		if errors.Is(err, domainErrors.ErrInvalidCredentials) {
			// One generic notice for both unknown email and wrong password.
			c.HTML(http.StatusOK, "login.html", gin.H{
				"Form":   form,
				"Errors": noErrors,
				"Notice": "Login unsuccessful. Please check email and password.",
				"Next":   c.Query("next"),
			})
			return
		}
		renderServerError(c)
		return
	}

	middleware.SetSessionCookie(c, token)
	c.Redirect(http.StatusSeeOther, safeNext(c.Query("next")))
}

// Logout handles GET /logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token := middleware.SessionToken(c); token != "" {
		if err := h.facade.Logout(c.Request.Context(), token); err != nil {
			renderServerError(c)
			return
		}
	}
	middleware.ClearSessionCookie(c)
	c.Redirect(http.StatusSeeOther, "/")
}

// redirectIfAuthenticated sends users with a live session home, mirroring the
// behavior of the register/login pages for logged-in visitors.
func (h *AuthHandler) redirectIfAuthenticated(c *gin.Context) bool {
	token := middleware.SessionToken(c)
	if token == "" {
		return false
	}
	if user, err := h.facade.CurrentUser(c.Request.Context(), token); err == nil && user != nil {
		c.Redirect(http.StatusSeeOther, "/home")
		return true
	}
	return false
}
