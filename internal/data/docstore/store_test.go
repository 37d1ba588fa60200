package docstore

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

func writeDoc(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestNewStoreLoadsInFilenameOrder(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "green line.txt", "Green Line Paribahan information")
	writeDoc(t, dir, "ena.txt", "Ena Transport information")
	writeDoc(t, dir, "hanif.txt", "Hanif Enterprise information")
	writeDoc(t, dir, "notes.md", "not a provider document")

	store, err := NewStore(dir, zap.NewNop())
	if err != nil {
		t.Fatalf("NewStore returned error: %v", err)
	}

	docs := store.Documents()
	if len(docs) != 3 {
		t.Fatalf("expected 3 documents, got %d", len(docs))
	}

	wantOrder := []string{"Ena", "Green Line", "Hanif"}
	for i, want := range wantOrder {
		if docs[i].Provider != want {
			t.Errorf("docs[%d].Provider = %s, want %s", i, docs[i].Provider, want)
		}
	}
}

func TestNewStoreMissingDir(t *testing.T) {
	_, err := NewStore(filepath.Join(t.TempDir(), "absent"), zap.NewNop())
	if err == nil {
		t.Fatal("expected error for missing documents dir")
	}
}

func TestFindByProviderCaseInsensitiveSubstring(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "green line.txt", "first")
	writeDoc(t, dir, "greenways.txt", "second")

	store, err := NewStore(dir, zap.NewNop())
	if err != nil {
		t.Fatalf("NewStore returned error: %v", err)
	}

	doc, ok := store.FindByProvider("GREEN")
	if !ok {
		t.Fatal("expected a match")
	}
	// First match in load order wins.
	if doc.Provider != "Green Line" {
		t.Errorf("provider = %s, want Green Line", doc.Provider)
	}

	if _, ok := store.FindByProvider("soudia"); ok {
		t.Error("expected no match for unknown provider")
	}
}
