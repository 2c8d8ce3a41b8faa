package dto

// SelectRequest is the result card the caller put in focus.
type SelectRequest struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
	Company string `json:"company,omitempty"`
}
