// Package session holds the per-caller detail-panel state: the selected
// result, its enrichment, and the draft/copied flags. Selection identity is
// the result URL; changing it resets everything else before the new selection
// becomes visible.
package session

import (
	"sync"
	"time"

	"github.com/curava/icp-finder/api/internal/entity"
)

// PanelState is a snapshot of a session's detail panel.
type PanelState struct {
	Selected      *entity.SearchResult   `json:"selected"`
	Enrichment    *entity.EnrichResponse `json:"enrichment"`
	EnrichLoading bool                   `json:"enrich_loading"`
	DraftOpen     bool                   `json:"draft_open"`
	Copied        bool                   `json:"copied"`
}

// Session is the state machine backing one detail panel.
type Session struct {
	ID string

	mu          sync.Mutex
	selected    *entity.SearchResult
	enrichment  *entity.EnrichResponse
	enrichBusy  bool
	draftOpen   bool
	copied      bool
	copiedTimer *time.Timer
	resetDelay  time.Duration
	lastSeen    time.Time
	closed      bool
}

func newSession(id string, resetDelay time.Duration) *Session {
	return &Session{ID: id, resetDelay: resetDelay, lastSeen: time.Now()}
}

// Select puts a result in focus. A different URL resets the enrichment, draft
// and copied flags and cancels any pending copied timer; re-selecting the same
// URL leaves in-progress or loaded enrichment state alone.
func (s *Session) Select(result entity.SearchResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if s.selected != nil && s.selected.URL == result.URL {
		s.selected = &result
		return
	}

	s.selected = &result
	s.enrichment = nil
	s.enrichBusy = false
	s.draftOpen = false
	s.clearCopied()
}

// BeginEnrich marks the panel as loading and returns the selected result. The
// second return value is false when nothing is selected; the call is then a
// no-op.
func (s *Session) BeginEnrich() (entity.SearchResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if s.selected == nil {
		return entity.SearchResult{}, false
	}
	s.enrichBusy = true
	return *s.selected, true
}

// FinishEnrich stores the enrichment for the result identified by url. The
// response is dropped when the selection moved on while the lookup was in
// flight, so a stale lookup never surfaces under a new selection.
func (s *Session) FinishEnrich(url string, resp entity.EnrichResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if s.selected == nil || s.selected.URL != url {
		return
	}
	s.enrichBusy = false
	s.enrichment = &resp
}

// ToggleDraft flips draft visibility and returns the new value.
func (s *Session) ToggleDraft() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	s.draftOpen = !s.draftOpen
	return s.draftOpen
}

// MarkCopied raises the copied flag and schedules its reset after the
// configured delay. A repeated call restarts the timer.
func (s *Session) MarkCopied() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if s.copiedTimer != nil {
		s.copiedTimer.Stop()
	}
	s.copied = true
	s.copiedTimer = time.AfterFunc(s.resetDelay, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if !s.closed {
			s.copied = false
		}
	})
}

// State returns a snapshot safe to serialize.
func (s *Session) State() PanelState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	state := PanelState{
		EnrichLoading: s.enrichBusy,
		DraftOpen:     s.draftOpen,
		Copied:        s.copied,
	}
	if s.selected != nil {
		selected := *s.selected
		state.Selected = &selected
	}
	if s.enrichment != nil {
		enrichment := *s.enrichment
		state.Enrichment = &enrichment
	}
	return state
}

// Close tears the session down and cancels the pending copied timer.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.clearCopied()
}

func (s *Session) clearCopied() {
	if s.copiedTimer != nil {
		s.copiedTimer.Stop()
		s.copiedTimer = nil
	}
	s.copied = false
}

func (s *Session) touch() {
	s.lastSeen = time.Now()
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}
