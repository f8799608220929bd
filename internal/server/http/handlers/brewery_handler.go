package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tapnote/tapnote/internal/adapter/directory"
	domainErrors "github.com/tapnote/tapnote/internal/domain/errors"
	"github.com/tapnote/tapnote/internal/server/http/forms"
)

// BreweryHandler renders brewery detail pages and records reviews.
type BreweryHandler struct {
	facade BreweryFacade
}

// NewBreweryHandler constructs BreweryHandler.
func NewBreweryHandler(facade BreweryFacade) *BreweryHandler {
	return &BreweryHandler{facade: facade}
}

// Show handles GET /brewery/:id.
func (h *BreweryHandler) Show(c *gin.Context) {
	h.renderDetail(c, forms.ReviewForm{}, nil)
}

// Submit handles POST /brewery/:id. A stored review redirects back to the
// same page so a refresh cannot resubmit it.
func (h *BreweryHandler) Submit(c *gin.Context) {
	var form forms.ReviewForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderDetail(c, form, map[string]string{"rating": "Rating must be between 1 and 5."})
		return
	}

	if fieldErrors := forms.Validate(form); fieldErrors != nil {
		h.renderDetail(c, form, fieldErrors)
		return
	}

	user := CurrentUser(c)
	if user == nil {
		renderServerError(c)
		return
	}

	breweryID := c.Param("id")
	if _, err := h.facade.AddReview(c.Request.Context(), user.ID, breweryID, form.Rating, form.Description); err != nil {
		if errors.Is(err, domainErrors.ErrInvalidReview) {
			h.renderDetail(c, form, map[string]string{"rating": "Rating must be between 1 and 5."})
			return
		}
		renderServerError(c)
		return
	}

	c.Redirect(http.StatusSeeOther, "/brewery/"+breweryID)
}

func (h *BreweryHandler) renderDetail(c *gin.Context, form forms.ReviewForm, fieldErrors map[string]string) {
	breweryID := c.Param("id")

	unavailable := false
	brewery, err := h.facade.BreweryByID(c.Request.Context(), breweryID)
	if err != nil {
		var upErr *directory.UpstreamError
		if !errors.As(err, &upErr) {
			renderServerError(c)
			return
		}
		// Reviews still render when the directory is down.
		unavailable = true
	}

	reviews, err := h.facade.BreweryReviews(c.Request.Context(), breweryID)
	if err != nil {
		renderServerError(c)
		return
	}

	c.HTML(http.StatusOK, "brewery.html", gin.H{
		"Brewery":     brewery,
		"Reviews":     reviews,
		"Form":        form,
		"Errors":      fieldErrors,
		"Unavailable": unavailable,
	})
}
