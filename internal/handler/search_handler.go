package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/curava/icp-finder/api/internal/dto"
	"github.com/curava/icp-finder/api/internal/entity"
	middlewarepkg "github.com/curava/icp-finder/api/internal/middleware"
	"github.com/curava/icp-finder/api/internal/service"
)

// SearchHandler forwards ICP queries to the search backend.
type SearchHandler struct {
	backend BackendPoster
}

// NewSearchHandler constructs a search handler backed by an HTTP client.
func NewSearchHandler(client *http.Client, backendBaseURL string) *SearchHandler {
	return &SearchHandler{backend: NewBackendClient(client, backendBaseURL)}
}

// NewSearchHandlerWithBackend allows injecting a custom backend client (useful for tests).
func NewSearchHandlerWithBackend(backend BackendPoster) *SearchHandler {
	return &SearchHandler{backend: backend}
}

// Search handles POST /api/search. An empty or whitespace-only query is
// rejected before any backend call is made.
func (h *SearchHandler) Search(c echo.Context) error {
	var req dto.SearchRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	req.Query = strings.TrimSpace(req.Query)
	if req.Query == "" {
		return Error(c, http.StatusBadRequest, "query is required")
	}

	ctx := c.Request().Context()
	var resp entity.SearchResponse
	err := h.backend.PostJSON(ctx, "/api/search", map[string]string{"query": req.Query}, &resp, middlewarepkg.RequestIDFromContext(c))
	if err != nil {
		if errors.Is(err, ErrBackendStatus) {
			return Error(c, http.StatusBadGateway, "search failed, please try again")
		}
		return Error(c, http.StatusBadGateway, err.Error())
	}

	resp.Normalize()
	resp.Agencies = service.PrepareBucket(resp.Agencies)
	resp.People = service.PrepareBucket(resp.People)
	resp.CompanyPeople = service.PrepareBucket(resp.CompanyPeople)
	return Success(c, http.StatusOK, "search complete", resp)
}
