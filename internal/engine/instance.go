package engine

import (
	"fmt"

	"github.com/gcbaptista/geoquery/config"
	"github.com/gcbaptista/geoquery/index"
	"github.com/gcbaptista/geoquery/internal/search"
	"github.com/gcbaptista/geoquery/model"
	"github.com/gcbaptista/geoquery/store"
)

// Collection holds all components for a single loaded collection.
// It implements the services.Collection interface.
type Collection struct {
	settings      config.CollectionSettings
	DocumentStore *store.DocumentStore
	InvertedIndex *index.InvertedIndex // nil when the collection has no indexed fields
	searcher      *search.Service
	loaded        bool
}

// NewCollection builds a collection over docs. The inverted index is built in
// full when settings name any indexed fields. loaded records whether the source
// was read successfully.
func NewCollection(settings config.CollectionSettings, docs []model.Document, loaded bool) (*Collection, error) {
	if settings.Name == "" {
		return nil, fmt.Errorf("collection name cannot be empty in settings")
	}
	settings.ApplyDefaults()

	c := &Collection{
		settings:      settings,
		DocumentStore: store.NewDocumentStore(docs),
		loaded:        loaded,
	}

	if settings.Indexed() {
		c.InvertedIndex = index.Build(c.DocumentStore, &c.settings)
		searcher, err := search.NewService(c.InvertedIndex, c.DocumentStore, &c.settings)
		if err != nil {
			return nil, fmt.Errorf("failed to create search service for collection '%s': %w", settings.Name, err)
		}
		c.searcher = searcher
	}
	return c, nil
}

// Name returns the collection name.
func (c *Collection) Name() string {
	return c.settings.Name
}

// Search delegates to the underlying search service.
// Unindexed collections return no results.
func (c *Collection) Search(query string, k int) []model.Document {
	if c.searcher == nil {
		return make([]model.Document, 0)
	}
	return c.searcher.Search(query, k)
}

// MatchExact scans the configured match field for value, case-insensitively.
func (c *Collection) MatchExact(value string, limit int) []model.Document {
	return c.DocumentStore.MatchField(c.settings.MatchField, value, limit)
}

// Documents returns the loaded documents in load order.
func (c *Collection) Documents() []model.Document {
	return c.DocumentStore.Docs
}

// Settings returns the configuration settings for this collection.
func (c *Collection) Settings() config.CollectionSettings {
	return c.settings
}

// Stats summarizes the collection.
func (c *Collection) Stats() model.CollectionStats {
	fields := make([]string, len(c.settings.IndexedFields))
	copy(fields, c.settings.IndexedFields)
	return model.CollectionStats{
		Name:          c.settings.Name,
		Path:          c.settings.Path,
		IndexedFields: fields,
		DocumentCount: c.DocumentStore.Len(),
		Indexed:       c.InvertedIndex != nil && !c.InvertedIndex.Empty(),
		Loaded:        c.loaded,
	}
}
