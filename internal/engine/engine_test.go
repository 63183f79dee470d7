package engine

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gcbaptista/geoquery/config"
	apperrors "github.com/gcbaptista/geoquery/internal/errors"
	"github.com/gcbaptista/geoquery/internal/persistence"
	"github.com/gcbaptista/geoquery/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCards(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "cards.jsonl")
	require.NoError(t, persistence.SaveJSONL(path, []model.Document{
		{"id": "1", "title": "Saudi Arabia wildfires", "country": "saudi arabia"},
		{"id": "2", "title": "China drought", "country": "China"},
		{"id": "3", "title": "Regional pledge", "region": "mena-mena"},
	}))
	return path
}

func TestNewRegistry(t *testing.T) {
	dir := t.TempDir()
	cards := writeCards(t, dir)

	registry, err := NewRegistry([]config.CollectionSettings{
		{Name: "cards", Path: cards, IndexedFields: []string{"title", "country"}, MatchField: "country"},
		{Name: "raw", Path: cards},
		{Name: "missing", Path: filepath.Join(dir, "nope.jsonl"), IndexedFields: []string{"title"}},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"cards", "raw", "missing"}, registry.List())

	t.Run("indexed collection", func(t *testing.T) {
		collection, err := registry.Get("cards")
		require.NoError(t, err)

		hits := collection.Search("china drought", 5)
		require.NotEmpty(t, hits)
		assert.Equal(t, "2", hits[0]["id"])

		exact := collection.MatchExact("CHINA", 3)
		require.Len(t, exact, 1)
		assert.Equal(t, "2", exact[0]["id"])
	})

	t.Run("unindexed collection is scanned", func(t *testing.T) {
		collection, err := registry.Get("raw")
		require.NoError(t, err)
		assert.Len(t, collection.Documents(), 3)
		assert.Empty(t, collection.Search("china", 5))
		assert.NotNil(t, collection.Search("china", 5))
	})

	t.Run("missing source is empty", func(t *testing.T) {
		collection, err := registry.Get("missing")
		require.NoError(t, err)
		assert.Empty(t, collection.Documents())
		assert.Empty(t, collection.Search("china", 5))
	})

	t.Run("stats", func(t *testing.T) {
		stats := registry.Stats()
		require.Len(t, stats, 3)
		assert.Equal(t, model.CollectionStats{
			Name: "cards", Path: cards, IndexedFields: []string{"title", "country"},
			DocumentCount: 3, Indexed: true, Loaded: true,
		}, stats[0])
		assert.False(t, stats[1].Indexed)
		assert.True(t, stats[1].Loaded)
		assert.False(t, stats[2].Loaded)
		assert.Zero(t, stats[2].DocumentCount)
	})

	t.Run("unknown collection", func(t *testing.T) {
		_, err := registry.Get("nope")
		assert.True(t, errors.Is(err, apperrors.ErrCollectionNotFound))
	})
}

func TestNewRegistry_SharedSourceIsReadOnce(t *testing.T) {
	dir := t.TempDir()
	cards := writeCards(t, dir)

	registry, err := NewRegistry([]config.CollectionSettings{
		{Name: "by_country", Path: cards, IndexedFields: []string{"country"}},
		{Name: "by_region", Path: cards, IndexedFields: []string{"region"}},
	})
	require.NoError(t, err)

	// The source can disappear after the build; queries never touch disk.
	require.NoError(t, os.Remove(cards))

	byCountry, err := registry.Get("by_country")
	require.NoError(t, err)
	byRegion, err := registry.Get("by_region")
	require.NoError(t, err)

	assert.Len(t, byCountry.Documents(), 3)
	assert.Len(t, byRegion.Documents(), 3)
	assert.NotEmpty(t, byRegion.Search("mena-mena", 3))
}

func TestNewRegistry_InvalidSettings(t *testing.T) {
	tests := []struct {
		name     string
		settings []config.CollectionSettings
		wantErr  error
	}{
		{"empty name", []config.CollectionSettings{{Name: " "}}, apperrors.ErrInvalidInput},
		{"duplicate field", []config.CollectionSettings{{Name: "a", IndexedFields: []string{"x", "x"}}}, apperrors.ErrInvalidInput},
		{"duplicate collection", []config.CollectionSettings{{Name: "a"}, {Name: "a"}}, apperrors.ErrCollectionAlreadyExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRegistry(tt.settings)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestNewRegistry_DefaultCollections(t *testing.T) {
	cfg := config.Default()
	cfg.Data.Dir = t.TempDir()

	registry, err := NewRegistry(config.DefaultCollections(cfg))
	require.NoError(t, err)
	assert.Equal(t, []string{
		config.CollectionProfile,
		config.CollectionCommitRegion,
		config.CollectionCommitCountry,
		config.CollectionTabularHits,
		config.CollectionTabularCombined,
	}, registry.List())
}
