package services

import (
	"context"

	"github.com/gcbaptista/geoquery/config"
	"github.com/gcbaptista/geoquery/model"
)

// Searcher ranks the documents of one collection against a free-text query.
type Searcher interface {
	Search(query string, k int) []model.Document
}

// Collection is a loaded, read-only document collection.
type Collection interface {
	Searcher
	// MatchExact returns copies of documents whose match field equals value
	// case-insensitively, at most limit of them.
	MatchExact(value string, limit int) []model.Document
	// Documents returns the loaded documents in load order. Callers must not mutate them.
	Documents() []model.Document
	Settings() config.CollectionSettings
	Stats() model.CollectionStats
}

// CollectionProvider resolves collections by name.
type CollectionProvider interface {
	Get(name string) (Collection, error)
	List() []string
	Stats() []model.CollectionStats
}

// DenseRetriever is the optional semantic retrieval backend. Implementations
// that are not configured return no documents and no error.
type DenseRetriever interface {
	Retrieve(ctx context.Context, query string, targets []string, k int) ([]model.Document, error)
	Enabled() bool
}

// RouteTracker records processed queries for analytics.
type RouteTracker interface {
	TrackRoute(event model.RouteEvent)
}
