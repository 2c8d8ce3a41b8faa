package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/curava/icp-finder/api/internal/dto"
	"github.com/curava/icp-finder/api/internal/entity"
	middlewarepkg "github.com/curava/icp-finder/api/internal/middleware"
	"github.com/curava/icp-finder/api/internal/service"
	"github.com/curava/icp-finder/api/internal/session"
)

// SessionHandler exposes the detail-panel state machine over HTTP.
type SessionHandler struct {
	store    *session.Store
	enricher *Enricher
}

// NewSessionHandler wires the handler.
func NewSessionHandler(store *session.Store, enricher *Enricher) *SessionHandler {
	return &SessionHandler{store: store, enricher: enricher}
}

// panelView is the state snapshot plus the name/role derived from the
// selected title, recomputed on every read.
type panelView struct {
	session.PanelState
	Parsed *entity.NameRole `json:"parsed,omitempty"`
}

func viewOf(state session.PanelState) panelView {
	view := panelView{PanelState: state}
	if state.Selected != nil {
		parsed := service.ParseTitle(state.Selected.Title)
		view.Parsed = &parsed
	}
	return view
}

// Create handles POST /api/sessions.
func (h *SessionHandler) Create(c echo.Context) error {
	sess := h.store.Create()
	return Success(c, http.StatusCreated, "session created", map[string]any{
		"session_id": sess.ID,
		"panel":      viewOf(sess.State()),
	})
}

// Get handles GET /api/sessions/:id.
func (h *SessionHandler) Get(c echo.Context) error {
	sess, ok := h.lookup(c)
	if !ok {
		return nil
	}
	return Success(c, http.StatusOK, "ok", viewOf(sess.State()))
}

// Select handles POST /api/sessions/:id/select. Selecting a result with a new
// URL resets the panel sub-state before the new selection is visible.
func (h *SessionHandler) Select(c echo.Context) error {
	sess, ok := h.lookup(c)
	if !ok {
		return nil
	}

	var req dto.SelectRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}
	req.URL = strings.TrimSpace(req.URL)
	if req.URL == "" {
		return Error(c, http.StatusBadRequest, "url is required")
	}

	sess.Select(entity.SearchResult{
		Title:   req.Title,
		URL:     service.UnwrapRedirect(req.URL),
		Snippet: req.Snippet,
		Company: req.Company,
	})
	return Success(c, http.StatusOK, "result selected", viewOf(sess.State()))
}

// Enrich handles POST /api/sessions/:id/enrich. With nothing selected the
// call is a guarded no-op that returns the unchanged panel.
func (h *SessionHandler) Enrich(c echo.Context) error {
	sess, ok := h.lookup(c)
	if !ok {
		return nil
	}

	selected, ok := sess.BeginEnrich()
	if !ok {
		return Success(c, http.StatusOK, "no result selected", viewOf(sess.State()))
	}

	resp := h.enricher.EnrichResult(c.Request().Context(), selected, middlewarepkg.RequestIDFromContext(c))
	sess.FinishEnrich(selected.URL, resp)
	return Success(c, http.StatusOK, "enrichment complete", viewOf(sess.State()))
}

// ToggleDraft handles POST /api/sessions/:id/draft.
func (h *SessionHandler) ToggleDraft(c echo.Context) error {
	sess, ok := h.lookup(c)
	if !ok {
		return nil
	}
	sess.ToggleDraft()
	return Success(c, http.StatusOK, "draft toggled", viewOf(sess.State()))
}

// MarkCopied handles POST /api/sessions/:id/copied. The flag auto-reverts
// after the configured delay.
func (h *SessionHandler) MarkCopied(c echo.Context) error {
	sess, ok := h.lookup(c)
	if !ok {
		return nil
	}
	sess.MarkCopied()
	return Success(c, http.StatusOK, "copied", viewOf(sess.State()))
}

// Close handles DELETE /api/sessions/:id.
func (h *SessionHandler) Close(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return Error(c, http.StatusBadRequest, "session id is required")
	}
	if !h.store.Remove(id) {
		return Error(c, http.StatusNotFound, "session not found")
	}
	return Success(c, http.StatusOK, "session closed", map[string]any{"session_id": id})
}

// lookup resolves the session from the path parameter. When it returns false
// the error response has already been written.
func (h *SessionHandler) lookup(c echo.Context) (*session.Session, bool) {
	id := c.Param("id")
	if id == "" {
		_ = Error(c, http.StatusBadRequest, "session id is required")
		return nil, false
	}
	sess := h.store.Get(id)
	if sess == nil {
		_ = Error(c, http.StatusNotFound, "session not found")
		return nil, false
	}
	return sess, true
}
