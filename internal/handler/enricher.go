package handler

import (
	"context"
	"log"

	"github.com/curava/icp-finder/api/internal/dto"
	"github.com/curava/icp-finder/api/internal/entity"
	"github.com/curava/icp-finder/api/internal/service"
)

// Enricher performs one email lookup per invocation against the backend. It
// never fails loudly: any transport, status or parse problem degrades to the
// zero-value response so a browsing flow is not interrupted by a non-critical
// lookup.
type Enricher struct {
	backend BackendPoster
	emails  *service.EmailCleaner
}

// NewEnricher wires the enricher.
func NewEnricher(backend BackendPoster, emails *service.EmailCleaner) *Enricher {
	return &Enricher{backend: backend, emails: emails}
}

// EnrichResult looks up an email and cold-email draft for a result card.
func (e *Enricher) EnrichResult(ctx context.Context, result entity.SearchResult, requestID string) entity.EnrichResponse {
	return e.enrich(ctx, dto.EnrichRequest{
		Name:        service.ParseTitle(result.Title).Name,
		Company:     result.Company,
		LinkedInURL: result.URL,
		Snippet:     result.Snippet,
		Title:       result.Title,
	}, requestID)
}

// Enrich looks up an email and draft for an explicit request payload.
func (e *Enricher) Enrich(ctx context.Context, req dto.EnrichRequest, requestID string) entity.EnrichResponse {
	return e.enrich(ctx, req, requestID)
}

func (e *Enricher) enrich(ctx context.Context, req dto.EnrichRequest, requestID string) entity.EnrichResponse {
	if req.Name == "" {
		req.Name = service.ParseTitle(req.Title).Name
	}
	if req.Company == "" {
		req.Company = service.CompanyFromURL(req.LinkedInURL)
	}

	payload := map[string]string{
		"name":         req.Name,
		"company":      req.Company,
		"linkedin_url": req.LinkedInURL,
		"snippet":      req.Snippet,
		"title":        req.Title,
	}

	var resp entity.EnrichResponse
	if err := e.backend.PostJSON(ctx, "/api/enrich", payload, &resp, requestID); err != nil {
		log.Printf("request_id=%s enrich failed url=%s err=%v", requestID, req.LinkedInURL, err)
		return entity.ZeroEnrichResponse()
	}

	return e.normalize(ctx, resp)
}

// normalize enforces the response invariants: a confidence outside the known
// set falls back to "none", and an email that fails cleanup is treated as a
// parse failure, degrading the whole response to the zero value.
func (e *Enricher) normalize(ctx context.Context, resp entity.EnrichResponse) entity.EnrichResponse {
	switch resp.EmailConfidence {
	case entity.ConfidenceFound, entity.ConfidenceInferred, entity.ConfidenceNone:
	default:
		resp.EmailConfidence = entity.ConfidenceNone
	}

	if resp.Email == "" {
		resp.EmailConfidence = entity.ConfidenceNone
		return resp
	}

	cleaned, ok := e.emails.Clean(ctx, resp.Email)
	if !ok {
		resp.Email = ""
		resp.EmailConfidence = entity.ConfidenceNone
		return resp
	}
	resp.Email = cleaned
	return resp
}
