package dto

// SearchRequest is the payload accepted by the search endpoint.
type SearchRequest struct {
	Query string `json:"query"`
}
