package entity

// Email confidence levels reported by the enrichment backend.
const (
	ConfidenceFound    = "found"
	ConfidenceInferred = "inferred"
	ConfidenceNone     = "none"
)

// EnrichResponse carries the discovered email and drafted outreach message for
// a single result. Fields are never left undefined: any failure degrades to
// ZeroEnrichResponse.
type EnrichResponse struct {
	Email           string `json:"email"`
	EmailConfidence string `json:"email_confidence"`
	ColdEmailDraft  string `json:"cold_email_draft"`
}

// ZeroEnrichResponse is the value stored when an enrichment attempt fails.
func ZeroEnrichResponse() EnrichResponse {
	return EnrichResponse{Email: "", EmailConfidence: ConfidenceNone, ColdEmailDraft: ""}
}

// NameRole is the name/role pair derived from a result title. It is computed
// on demand and never persisted.
type NameRole struct {
	Name string `json:"name"`
	Role string `json:"role"`
}
