package service

import (
	"sort"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/Aashish23092/financial-doc-qa/dto"
)

// DocumentStore holds processed documents keyed by file name. Entries expire
// after the configured TTL; re-uploading a name replaces the whole record.
type DocumentStore struct {
	cache *cache.Cache
}

func NewDocumentStore(ttl time.Duration) *DocumentStore {
	return &DocumentStore{
		cache: cache.New(ttl, 10*time.Minute),
	}
}

// Put stores a document and reports whether it replaced an existing one with
// the same name.
func (s *DocumentStore) Put(doc dto.DocumentContext) bool {
	_, replaced := s.cache.Get(doc.Name)
	s.cache.Set(doc.Name, doc, cache.DefaultExpiration)
	return replaced
}

// Get returns the document with the given name.
func (s *DocumentStore) Get(name string) (dto.DocumentContext, bool) {
	v, ok := s.cache.Get(name)
	if !ok {
		return dto.DocumentContext{}, false
	}
	return v.(dto.DocumentContext), true
}

// List returns all stored documents, sorted by name for a stable order.
func (s *DocumentStore) List() []dto.DocumentContext {
	items := s.cache.Items()
	docs := make([]dto.DocumentContext, 0, len(items))
	for _, item := range items {
		docs = append(docs, item.Object.(dto.DocumentContext))
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].Name < docs[j].Name })
	return docs
}

// Clear drops every stored document.
func (s *DocumentStore) Clear() {
	s.cache.Flush()
}
