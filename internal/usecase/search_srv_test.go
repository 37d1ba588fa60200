package usecase

import (
	"context"
	"testing"

	"bus-booking/internal/data/docstore"
	"bus-booking/internal/data/entity"
	"bus-booking/internal/dto/request"

	"go.uber.org/zap"
)

func newTestSearchService(docs []docstore.ProviderDocument) SearchService {
	store := docstore.NewStoreFromDocuments(docs, zap.NewNop())
	repo, _, _, _, _ := newFakeRepository()
	return NewSearchService(store, repo, 3, zap.NewNop())
}

func testDocuments() []docstore.ProviderDocument {
	return []docstore.ProviderDocument{
		{Provider: "Green Line", Content: "Green Line Paribahan luxury AC coaches from Dhaka to Chattogram"},
		{Provider: "Hanif", Content: "Hanif Enterprise operates coaches across Bangladesh with daily departures"},
		{Provider: "Shyamoli", Content: "Shyamoli Paribahan offers services from Dhaka with daily departures"},
	}
}

func TestSearchEmptyQueryReturnsNothing(t *testing.T) {
	svc := newTestSearchService(testDocuments())

	for _, query := range []string{"", "   ", "\n\t"} {
		if results := svc.Search(query, 5); len(results) != 0 {
			t.Fatalf("Search(%q) returned %d results, want 0", query, len(results))
		}
	}
}

func TestSearchScoresByTokenFraction(t *testing.T) {
	svc := newTestSearchService(testDocuments())

	results := svc.Search("luxury coaches", 5)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	// Both tokens match Green Line, only "coaches" matches Hanif.
	if results[0].Provider != "Green Line" {
		t.Errorf("top result = %s, want Green Line", results[0].Provider)
	}
	if results[0].RelevanceScore != 1.0 {
		t.Errorf("top score = %v, want 1.0", results[0].RelevanceScore)
	}
	if results[1].Provider != "Hanif" || results[1].RelevanceScore != 0.5 {
		t.Errorf("second result = %s score %v, want Hanif 0.5",
			results[1].Provider, results[1].RelevanceScore)
	}
}

func TestSearchSubstringContainment(t *testing.T) {
	svc := newTestSearchService(testDocuments())

	// "pariba" is not a full word anywhere, substring matching still hits.
	results := svc.Search("pariba", 5)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
}

func TestSearchExcludesZeroScores(t *testing.T) {
	svc := newTestSearchService(testDocuments())

	results := svc.Search("nonexistentword", 5)
	if len(results) != 0 {
		t.Fatalf("expected no results, got %d", len(results))
	}
}

func TestSearchTruncatesToTopK(t *testing.T) {
	svc := newTestSearchService(testDocuments())

	results := svc.Search("coaches daily", 2)
	if len(results) > 2 {
		t.Fatalf("expected at most 2 results, got %d", len(results))
	}
}

func TestSearchTieKeepsLoadOrder(t *testing.T) {
	svc := newTestSearchService(testDocuments())

	// "daily departures" scores 1.0 for both Hanif and Shyamoli.
	results := svc.Search("daily departures", 5)
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Provider != "Hanif" || results[1].Provider != "Shyamoli" {
		t.Errorf("tie order = %s, %s; want Hanif, Shyamoli (load order)",
			results[0].Provider, results[1].Provider)
	}
}

func TestGetProviderInfo(t *testing.T) {
	svc := newTestSearchService(testDocuments())

	doc, ok := svc.GetProviderInfo("green")
	if !ok {
		t.Fatal("expected a match for 'green'")
	}
	if doc.Provider != "Green Line" {
		t.Errorf("provider = %s, want Green Line", doc.Provider)
	}

	if _, ok := svc.GetProviderInfo("soudia"); ok {
		t.Error("expected no match for unknown provider")
	}
}

func TestQueryDocumentsUsesDefaultTopK(t *testing.T) {
	docs := testDocuments()
	docs = append(docs,
		docstore.ProviderDocument{Provider: "Ena", Content: "Ena coaches daily"},
		docstore.ProviderDocument{Provider: "Soudia", Content: "Soudia coaches daily"},
	)
	svc := newTestSearchService(docs)

	resp := svc.QueryDocuments(&request.SearchQueryRequest{Query: "coaches"})
	if len(resp.Results) != 3 {
		t.Fatalf("expected default top 3 results, got %d", len(resp.Results))
	}
	if resp.Query != "coaches" {
		t.Errorf("query echoed = %q, want %q", resp.Query, "coaches")
	}
}

func TestProviderDetailsMergesDocumentContact(t *testing.T) {
	docs := []docstore.ProviderDocument{
		{
			Provider: "Green Line",
			Content:  "Green Line Paribahan\nContact: +880 1730-060080\nEmail: info@greenline.com.bd\nVisit www.greenline.com.bd",
		},
	}
	store := docstore.NewStoreFromDocuments(docs, zap.NewNop())
	repo, _, providers, _, _ := newFakeRepository()
	providers.providers = append(providers.providers, &entity.BusProvider{
		Name:            "Green Line Paribahan",
		OfficialAddress: "9/2 Outer Circular Road, Dhaka",
		ContactInfo:     "02-9339623",
	})
	svc := NewSearchService(store, repo, 3, zap.NewNop())

	details, err := svc.ProviderDetails(context.Background(), "green line")
	if err != nil {
		t.Fatalf("ProviderDetails returned error: %v", err)
	}
	if details.Name != "Green Line Paribahan" {
		t.Errorf("name = %q, want stored provider name", details.Name)
	}
	// Extracted phone overrides the stored contact field.
	if details.ContactInfo != "+880 1730-060080" {
		t.Errorf("contact = %q, want extracted phone", details.ContactInfo)
	}
	if details.Email != "info@greenline.com.bd" {
		t.Errorf("email = %q, want extracted email", details.Email)
	}
	if details.Website != "www.greenline.com.bd" {
		t.Errorf("website = %q, want extracted website", details.Website)
	}
	// No address line in the document, stored value survives.
	if details.OfficialAddress != "9/2 Outer Circular Road, Dhaka" {
		t.Errorf("address = %q, want stored address", details.OfficialAddress)
	}

	if _, err := svc.ProviderDetails(context.Background(), "unknown"); err == nil {
		t.Error("expected an error for unknown provider")
	}
}

func TestExtractContactInfo(t *testing.T) {
	text := "Contact: +880 1711-123456\nEmail: info@greenline.com.bd\nAddress: 123 Motijheel, Dhaka"

	contact := ExtractContactInfo(text)

	if got := contact["phone"]; got != "+880 1711-123456" {
		t.Errorf("phone = %q, want %q", got, "+880 1711-123456")
	}
	if got := contact["email"]; got != "info@greenline.com.bd" {
		t.Errorf("email = %q, want %q", got, "info@greenline.com.bd")
	}
	if got := contact["address"]; got != "123 Motijheel, Dhaka" {
		t.Errorf("address = %q, want %q", got, "123 Motijheel, Dhaka")
	}
	if _, ok := contact["website"]; ok {
		t.Error("website should be absent when no URL in text")
	}
}

func TestExtractContactInfoWebsite(t *testing.T) {
	contact := ExtractContactInfo("Visit www.greenline.com.bd for schedules")
	if got := contact["website"]; got != "www.greenline.com.bd" {
		t.Errorf("website = %q, want %q", got, "www.greenline.com.bd")
	}

	contact = ExtractContactInfo("Privacy Policy / Terms Link: https://hanif.example/terms page")
	if got := contact["website"]; got != "https://hanif.example/terms" {
		t.Errorf("website = %q, want %q", got, "https://hanif.example/terms")
	}
}

func TestExtractContactInfoAbsentFields(t *testing.T) {
	contact := ExtractContactInfo("nothing useful here")
	if len(contact) != 0 {
		t.Fatalf("expected empty map, got %v", contact)
	}
}
