package usecase

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"bus-booking/internal/data/docstore"
	"bus-booking/internal/data/repository"
	"bus-booking/internal/dto/request"
	"bus-booking/internal/dto/response"

	"go.uber.org/zap"
)

// SearchResult is one scored provider document.
type SearchResult struct {
	Provider       string
	Content        string
	RelevanceScore float64
}

type SearchService interface {
	// Search scores documents by query-token overlap and returns at most
	// topK results, best first.
	Search(query string, topK int) []SearchResult
	// GetProviderInfo matches a provider name case-insensitively as a
	// substring, first document in load order wins.
	GetProviderInfo(name string) (*docstore.ProviderDocument, bool)
	// QueryDocuments runs Search and decorates each hit with extracted
	// contact fields and a content excerpt.
	QueryDocuments(req *request.SearchQueryRequest) *response.SearchResponse
	// ProviderDetails merges the stored provider record with contact fields
	// extracted from its document; extracted values take precedence.
	ProviderDetails(ctx context.Context, name string) (*response.ProviderDetailResponse, error)
}

type searchService struct {
	docs        *docstore.Store
	repo        *repository.Repository
	defaultTopK int
	log         *zap.Logger
}

func NewSearchService(docs *docstore.Store, repo *repository.Repository, defaultTopK int, log *zap.Logger) SearchService {
	if defaultTopK <= 0 {
		defaultTopK = 3
	}
	return &searchService{
		docs:        docs,
		repo:        repo,
		defaultTopK: defaultTopK,
		log:         log.With(zap.String("service", "search")),
	}
}

func (s *searchService) Search(query string, topK int) []SearchResult {
	tokens := strings.Fields(strings.ToLower(query))
	if len(tokens) == 0 {
		// No tokens means a zero denominator below, return early.
		return nil
	}

	var results []SearchResult
	for _, doc := range s.docs.Documents() {
		content := strings.ToLower(doc.Content)

		matched := 0
		for _, token := range tokens {
			// Substring containment, a token matching part of a longer
			// document word still counts.
			if strings.Contains(content, token) {
				matched++
			}
		}

		if matched == 0 {
			continue
		}

		results = append(results, SearchResult{
			Provider:       doc.Provider,
			Content:        doc.Content,
			RelevanceScore: float64(matched) / float64(len(tokens)),
		})
	}

	// Stable sort keeps document load order for equal scores.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].RelevanceScore > results[j].RelevanceScore
	})

	if len(results) > topK {
		results = results[:topK]
	}
	return results
}

func (s *searchService) GetProviderInfo(name string) (*docstore.ProviderDocument, bool) {
	return s.docs.FindByProvider(name)
}

func (s *searchService) QueryDocuments(req *request.SearchQueryRequest) *response.SearchResponse {
	topK := req.TopK
	if topK <= 0 {
		topK = s.defaultTopK
	}

	results := s.Search(req.Query, topK)

	resp := &response.SearchResponse{
		Query:   req.Query,
		Results: make([]response.SearchResultResponse, 0, len(results)),
	}
	for _, result := range results {
		resp.Results = append(resp.Results, response.SearchResultResponse{
			Provider:       result.Provider,
			RelevanceScore: result.RelevanceScore,
			ContactInfo:    ExtractContactInfo(result.Content),
			Excerpt:        excerpt(result.Content, 500),
		})
	}

	s.log.Debug("Document search served",
		zap.String("query", req.Query),
		zap.Int("results", len(resp.Results)),
	)
	return resp
}

func (s *searchService) ProviderDetails(ctx context.Context, name string) (*response.ProviderDetailResponse, error) {
	provider, err := s.repo.Provider.FindByNameLike(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("provider details: %w", err)
	}
	if provider == nil {
		return nil, fmt.Errorf("provider %s: %w", name, ErrNotFound)
	}

	resp := &response.ProviderDetailResponse{
		Name:              provider.Name,
		CoverageDistricts: provider.CoverageDistricts,
		OfficialAddress:   provider.OfficialAddress,
		ContactInfo:       provider.ContactInfo,
		PrivacyPolicy:     provider.PrivacyPolicy,
	}

	if doc, ok := s.docs.FindByProvider(name); ok {
		contact := ExtractContactInfo(doc.Content)
		if v, ok := contact["address"]; ok {
			resp.OfficialAddress = v
		}
		if v, ok := contact["phone"]; ok {
			resp.ContactInfo = v
		}
		resp.Email = contact["email"]
		resp.Website = contact["website"]
	}

	return resp, nil
}

var (
	phoneRe   = regexp.MustCompile(`(?i)(?:Phone|Mobile|Contact|Tel)[\s:]*([+\d\s\-()]{10,})`)
	emailRe   = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)
	websiteRe = regexp.MustCompile(`(?:www\.|https?://)\S+`)
	addressRe = regexp.MustCompile(`(?i)(?:Address|Location)[\s:]*([^\n]{10,100})`)
)

// ExtractContactInfo pulls phone, email, website and address fields out of
// free-form provider text. Each key is present only when a match was found;
// the four extractions are independent of each other.
func ExtractContactInfo(text string) map[string]string {
	contact := make(map[string]string)

	if m := phoneRe.FindStringSubmatch(text); m != nil {
		contact["phone"] = strings.TrimSpace(m[1])
	}
	if m := emailRe.FindString(text); m != "" {
		contact["email"] = m
	}
	if m := websiteRe.FindString(text); m != "" {
		contact["website"] = m
	}
	if m := addressRe.FindStringSubmatch(text); m != nil {
		contact["address"] = strings.TrimSpace(m[1])
	}

	return contact
}

// excerpt truncates content to at most n runes with a trailing ellipsis.
func excerpt(content string, n int) string {
	runes := []rune(content)
	if len(runes) > n {
		runes = runes[:n]
	}
	return string(runes) + "..."
}
