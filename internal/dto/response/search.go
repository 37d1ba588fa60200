package response

type SearchResultResponse struct {
	Provider       string            `json:"provider"`
	RelevanceScore float64           `json:"relevance_score"`
	ContactInfo    map[string]string `json:"contact_info"`
	Excerpt        string            `json:"excerpt"`
}

type SearchResponse struct {
	Query   string                 `json:"query"`
	Results []SearchResultResponse `json:"results"`
}
