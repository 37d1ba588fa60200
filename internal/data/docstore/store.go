package docstore

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ProviderDocument is one provider-information text file held in memory.
type ProviderDocument struct {
	Provider string
	Content  string
	Filename string
}

// Store holds every provider document loaded at startup. Contents are
// immutable afterwards, so concurrent readers need no synchronization.
type Store struct {
	docs []ProviderDocument
	log  *zap.Logger
}

var titleCaser = cases.Title(language.English)

// NewStore loads every .txt file under dir, in filename order. Missing or
// unreadable files are skipped, matching a partially provisioned documents
// folder in deployments.
func NewStore(dir string, log *zap.Logger) (*Store, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read documents dir %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	store := &Store{log: log.With(zap.String("component", "docstore"))}
	for _, name := range names {
		content, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			store.log.Warn("Skipping unreadable provider document",
				zap.String("file", name),
				zap.Error(err),
			)
			continue
		}

		provider := titleCaser.String(strings.TrimSuffix(name, ".txt"))
		store.docs = append(store.docs, ProviderDocument{
			Provider: provider,
			Content:  string(content),
			Filename: name,
		})
	}

	store.log.Info("Provider documents loaded", zap.Int("count", len(store.docs)))
	return store, nil
}

// NewStoreFromDocuments builds a store from pre-loaded documents, preserving
// their order. Used by tests and by callers that do not read from disk.
func NewStoreFromDocuments(docs []ProviderDocument, log *zap.Logger) *Store {
	return &Store{
		docs: docs,
		log:  log.With(zap.String("component", "docstore")),
	}
}

// Documents returns all documents in load order. Callers must not mutate.
func (s *Store) Documents() []ProviderDocument {
	return s.docs
}

// FindByProvider returns the first document, in load order, whose provider
// name contains the given name case-insensitively.
func (s *Store) FindByProvider(name string) (*ProviderDocument, bool) {
	needle := strings.ToLower(name)
	for i := range s.docs {
		if strings.Contains(strings.ToLower(s.docs[i].Provider), needle) {
			return &s.docs[i], true
		}
	}
	return nil, false
}
