package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/curava/icp-finder/api/internal/dto"
	middlewarepkg "github.com/curava/icp-finder/api/internal/middleware"
)

// EnrichHandler serves direct, sessionless enrichment lookups.
type EnrichHandler struct {
	enricher *Enricher
}

// NewEnrichHandler wires a new EnrichHandler instance.
func NewEnrichHandler(enricher *Enricher) *EnrichHandler {
	return &EnrichHandler{enricher: enricher}
}

// Enrich handles POST /api/enrich. Lookup failures are not surfaced: the
// response degrades to an empty email with confidence "none".
func (h *EnrichHandler) Enrich(c echo.Context) error {
	var req dto.EnrichRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	req.LinkedInURL = strings.TrimSpace(req.LinkedInURL)
	if req.LinkedInURL == "" {
		return Error(c, http.StatusBadRequest, "linkedin_url is required")
	}

	resp := h.enricher.Enrich(c.Request().Context(), req, middlewarepkg.RequestIDFromContext(c))
	return Success(c, http.StatusOK, "enrichment complete", resp)
}
