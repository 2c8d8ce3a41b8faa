package dto

// EnrichRequest describes the result to look up an email and draft for.
// Company may be empty; the service derives one from the LinkedIn URL when it
// can.
type EnrichRequest struct {
	Name        string `json:"name"`
	Company     string `json:"company"`
	LinkedInURL string `json:"linkedin_url"`
	Snippet     string `json:"snippet"`
	Title       string `json:"title"`
}
