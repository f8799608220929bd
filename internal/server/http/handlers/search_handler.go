package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tapnote/tapnote/internal/adapter/directory"
	"github.com/tapnote/tapnote/internal/server/http/forms"
)

// SearchHandler renders the home page and proxies directory searches.
type SearchHandler struct {
	directory DirectoryFacade
	reviews   ReviewFacade
}

// NewSearchHandler constructs SearchHandler.
func NewSearchHandler(directory DirectoryFacade, reviews ReviewFacade) *SearchHandler {
	return &SearchHandler{directory: directory, reviews: reviews}
}

// Home handles GET / and GET /home.
func (h *SearchHandler) Home(c *gin.Context) {
	h.renderHome(c, forms.SearchForm{}, nil)
}

// SearchPage handles GET /search by showing the search form.
func (h *SearchHandler) SearchPage(c *gin.Context) {
	h.renderHome(c, forms.SearchForm{}, nil)
}

// Search handles POST /search.
func (h *SearchHandler) Search(c *gin.Context) {
	var form forms.SearchForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderHome(c, form, map[string]string{"query": "Invalid input."})
		return
	}

	if fieldErrors := forms.Validate(form); fieldErrors != nil {
		h.renderHome(c, form, fieldErrors)
		return
	}

	breweries, err := h.directory.SearchBreweries(c.Request.Context(), form.SearchType, form.Query)
	if err != nil {
		var upErr *directory.UpstreamError
		if errors.As(err, &upErr) {
			c.HTML(http.StatusOK, "search_results.html", gin.H{
				"Unavailable": true,
				"Breweries":   nil,
			})
			return
		}
		renderServerError(c)
		return
	}

	// An empty result set renders as "no results", not as a failure.
	c.HTML(http.StatusOK, "search_results.html", gin.H{
		"Unavailable": false,
		"Breweries":   breweries,
	})
}

func (h *SearchHandler) renderHome(c *gin.Context, form forms.SearchForm, fieldErrors map[string]string) {
	user := CurrentUser(c)
	if user == nil {
		renderServerError(c)
		return
	}

	reviews, err := h.reviews.UserReviews(c.Request.Context(), user.ID)
	if err != nil {
		renderServerError(c)
		return
	}

	c.HTML(http.StatusOK, "home.html", gin.H{
		"User":    user,
		"Form":    form,
		"Errors":  fieldErrors,
		"Reviews": reviews,
	})
}
