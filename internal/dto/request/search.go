package request

type SearchQueryRequest struct {
	Query string `json:"query" validate:"required,max=500"`
	TopK  int    `json:"top_k,omitempty" validate:"min=0,max=20"`
}
