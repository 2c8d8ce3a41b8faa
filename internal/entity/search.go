package entity

// SearchResult is a single discovered LinkedIn profile or company page.
type SearchResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet"`
	Company string `json:"company,omitempty"`
}

// ParsedIntent echoes how the search backend interpreted the free-text query.
type ParsedIntent struct {
	ICP        string `json:"icp"`
	Industry   string `json:"industry"`
	Region     string `json:"region"`
	SearchType string `json:"search_type"`
	RawPrompt  string `json:"raw_prompt,omitempty"`
}

// SearchResponse groups results into three independent buckets. Buckets are
// never nil; no de-duplication is performed across them.
type SearchResponse struct {
	Agencies      []SearchResult `json:"agencies"`
	People        []SearchResult `json:"people"`
	CompanyPeople []SearchResult `json:"company_people"`
	ParsedIntent  ParsedIntent   `json:"parsed_intent"`
}

// Normalize replaces nil buckets with empty slices so the JSON surface always
// carries arrays.
func (r *SearchResponse) Normalize() {
	if r.Agencies == nil {
		r.Agencies = []SearchResult{}
	}
	if r.People == nil {
		r.People = []SearchResult{}
	}
	if r.CompanyPeople == nil {
		r.CompanyPeople = []SearchResult{}
	}
}
