package store

import (
	"strings"

	"github.com/gcbaptista/geoquery/model"
)

// DocumentStore holds a collection's documents in load order.
// It is built once and never mutated afterwards, so reads need no locking.
// Positions in Docs are the document ids used by the inverted index.
type DocumentStore struct {
	Docs []model.Document
}

// NewDocumentStore wraps docs without copying them. A nil slice yields an empty store.
func NewDocumentStore(docs []model.Document) *DocumentStore {
	if docs == nil {
		docs = make([]model.Document, 0)
	}
	return &DocumentStore{Docs: docs}
}

// Len returns the number of documents.
func (ds *DocumentStore) Len() int {
	return len(ds.Docs)
}

// Get returns the document at position id.
func (ds *DocumentStore) Get(id uint32) (model.Document, bool) {
	if int(id) >= len(ds.Docs) {
		return nil, false
	}
	return ds.Docs[id], true
}

// FieldText concatenates the non-empty values of fields for the document at
// position id, joined by single spaces. Missing or empty fields are skipped.
func (ds *DocumentStore) FieldText(id uint32, fields []string) string {
	doc, ok := ds.Get(id)
	if !ok {
		return ""
	}
	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		if text := doc.FieldText(field); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " ")
}

// MatchField returns copies of the documents whose field equals value,
// compared case-insensitively, in load order. At most limit documents are
// returned; limit <= 0 means no limit.
func (ds *DocumentStore) MatchField(field, value string, limit int) []model.Document {
	matches := make([]model.Document, 0)
	if field == "" || value == "" {
		return matches
	}
	for _, doc := range ds.Docs {
		fieldValue, ok := doc.GetString(field)
		if !ok || !strings.EqualFold(fieldValue, value) {
			continue
		}
		matches = append(matches, doc.Clone())
		if limit > 0 && len(matches) >= limit {
			break
		}
	}
	return matches
}
