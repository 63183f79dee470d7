package engine

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gcbaptista/geoquery/config"
	apperrors "github.com/gcbaptista/geoquery/internal/errors"
	"github.com/gcbaptista/geoquery/internal/persistence"
	"github.com/gcbaptista/geoquery/model"
	"github.com/gcbaptista/geoquery/services"
	"github.com/rs/zerolog/log"
)

// Registry holds one Collection per name. It is built once, before any query is
// served, and never mutated afterwards, so lookups need no locking.
// It implements the services.CollectionProvider interface.
type Registry struct {
	collections map[string]*Collection
	order       []string
}

// NewRegistry loads every configured collection from its JSONL source.
// A missing or unreadable source yields an empty collection and a warning;
// only invalid settings are reported as errors. Sources shared by several
// collections are read once.
func NewRegistry(settings []config.CollectionSettings) (*Registry, error) {
	r := &Registry{
		collections: make(map[string]*Collection, len(settings)),
		order:       make([]string, 0, len(settings)),
	}
	loader := newSourceLoader()

	for _, s := range settings {
		s.ApplyDefaults()
		if problems := s.ValidateFieldNames(); len(problems) > 0 {
			return nil, apperrors.NewValidationError("collections", fmt.Sprintf("collection '%s': %s", s.Name, strings.Join(problems, "; ")))
		}
		if _, exists := r.collections[s.Name]; exists {
			return nil, apperrors.NewCollectionAlreadyExistsError(s.Name)
		}

		docs, loaded := loader.load(s.Path)
		collection, err := NewCollection(s, docs, loaded)
		if err != nil {
			return nil, err
		}

		stats := collection.Stats()
		event := log.Info()
		if s.Indexed() && !stats.Indexed {
			event = log.Warn()
		}
		event.Str("collection", s.Name).
			Str("path", s.Path).
			Int("documents", stats.DocumentCount).
			Bool("indexed", stats.Indexed).
			Msg("built collection")

		r.collections[s.Name] = collection
		r.order = append(r.order, s.Name)
	}
	return r, nil
}

// Get retrieves a collection by its name.
func (r *Registry) Get(name string) (services.Collection, error) {
	collection, exists := r.collections[name]
	if !exists {
		return nil, apperrors.NewCollectionNotFoundError(name)
	}
	return collection, nil
}

// List returns collection names in registration order.
func (r *Registry) List() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Stats returns per-collection statistics in registration order.
func (r *Registry) Stats() []model.CollectionStats {
	stats := make([]model.CollectionStats, 0, len(r.order))
	for _, name := range r.order {
		stats = append(stats, r.collections[name].Stats())
	}
	return stats
}

// sourceLoader reads each JSONL path at most once during a registry build.
type sourceLoader struct {
	docs   map[string][]model.Document
	loaded map[string]bool
}

func newSourceLoader() *sourceLoader {
	return &sourceLoader{
		docs:   make(map[string][]model.Document),
		loaded: make(map[string]bool),
	}
}

func (l *sourceLoader) load(path string) ([]model.Document, bool) {
	if docs, seen := l.docs[path]; seen {
		return docs, l.loaded[path]
	}

	var docs []model.Document
	loaded := false
	switch {
	case path == "":
		log.Warn().Msg("collection has no source path, starting empty")
	default:
		var err error
		docs, err = persistence.LoadJSONL(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			log.Warn().Str("path", path).Msg("collection source not found, starting empty")
		case err != nil:
			log.Warn().Err(err).Str("path", path).Msg("failed to read collection source, starting empty")
		default:
			loaded = true
		}
	}

	l.docs[path] = docs
	l.loaded[path] = loaded
	return docs, loaded
}
