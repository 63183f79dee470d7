package handlers

import (
	"testing"

	"github.com/gcbaptista/geoquery/config"
	"github.com/gcbaptista/geoquery/internal/engine"
	apperrors "github.com/gcbaptista/geoquery/internal/errors"
	testutil "github.com/gcbaptista/geoquery/internal/testing"
	"github.com/gcbaptista/geoquery/model"
	"github.com/gcbaptista/geoquery/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingCollection answers searches from a fixed table and records queries.
type recordingCollection struct {
	results map[string][]model.Document
	queries []string
}

func (c *recordingCollection) Search(query string, k int) []model.Document {
	c.queries = append(c.queries, query)
	if docs, ok := c.results[query]; ok {
		return docs
	}
	return make([]model.Document, 0)
}
func (c *recordingCollection) MatchExact(value string, limit int) []model.Document {
	return make([]model.Document, 0)
}
func (c *recordingCollection) Documents() []model.Document         { return nil }
func (c *recordingCollection) Settings() config.CollectionSettings { return config.CollectionSettings{} }
func (c *recordingCollection) Stats() model.CollectionStats        { return model.CollectionStats{} }

type singleProvider struct {
	name       string
	collection services.Collection
}

func (p *singleProvider) Get(name string) (services.Collection, error) {
	if name != p.name {
		return nil, apperrors.NewCollectionNotFoundError(name)
	}
	return p.collection, nil
}
func (p *singleProvider) List() []string                 { return []string{p.name} }
func (p *singleProvider) Stats() []model.CollectionStats { return nil }

func TestCountryProfile(t *testing.T) {
	h := New(testutil.CreateTestRegistry(t))

	tests := []struct {
		name    string
		target  string
		hint    string
		wantIDs []string
	}{
		{"target with hint", "saudi arabia", "stressors/fires", []string{"sau-fires", "sau-land", "chn-drought"}},
		{"target only", "saudi arabia", "", []string{"sau-fires", "sau-land"}},
		{"hint does not filter", "ghana", "impacts/food_health", []string{"gha-socio"}},
		{"fallback target", model.FallbackTarget, "trends/climate", []string{"world-climate", "chn-drought", "gha-socio", "sau-fires"}},
		{"unknown target", "brazil", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hits := h.CountryProfile(tt.target, tt.hint)
			testutil.AssertHitIDs(t, hits, tt.wantIDs...)
			testutil.AssertScored(t, hits)
		})
	}
}

func TestCountryProfile_RetriesWithoutHint(t *testing.T) {
	collection := &recordingCollection{results: map[string][]model.Document{
		"kenya": {model.Document{"id": "ken-card", model.ScoreField: 1.5}},
	}}
	h := New(&singleProvider{name: config.CollectionProfile, collection: collection})

	hits := h.CountryProfile("kenya", "impacts/food_health")

	testutil.AssertHitIDs(t, hits, "ken-card")
	assert.Equal(t, []string{"kenya impacts food_health", "kenya"}, collection.queries)
}

func TestCountryProfile_NoRetryWithoutHint(t *testing.T) {
	collection := &recordingCollection{}
	h := New(&singleProvider{name: config.CollectionProfile, collection: collection})

	hits := h.CountryProfile("kenya", "")

	assert.Empty(t, hits)
	assert.Equal(t, []string{"kenya"}, collection.queries)
}

func TestCommitment(t *testing.T) {
	h := New(testutil.CreateTestRegistry(t))

	tests := []struct {
		name      string
		target    string
		query     string
		wantIDs   []string
		wantExact bool
	}{
		{"region exact match", "mena-mena", "", []string{"commit-mena"}, true},
		{"region ranked fallback", "asia-asia", "", []string{"commit-asia"}, false},
		{"country exact match ignores case", "saudi arabia", "", []string{"commit-sau"}, true},
		{"several exact matches in load order", "kenya", "", []string{"tbl-ken-commit", "tbl-ken-broken"}, true},
		{"no match", "ghana", "", []string{}, false},
		{"fallback target", model.FallbackTarget, "", []string{}, false},
		{"query joins the target", "ghana", "restoration pledge", []string{"commit-mena", "commit-chn", "commit-asia"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hits := h.Commitment(tt.target, tt.query)
			testutil.AssertHitIDs(t, hits, tt.wantIDs...)
			testutil.AssertScored(t, hits)

			for _, hit := range hits {
				score, _ := hit.GetScore()
				if tt.wantExact {
					assert.Equal(t, ExactMatchScore, score)
				} else {
					assert.Less(t, score, ExactMatchScore)
				}
			}
		})
	}
}

func TestCommitment_ExactMatchCap(t *testing.T) {
	docs := make([]model.Document, 0, 5)
	for i := 0; i < 5; i++ {
		docs = append(docs, model.Document{"region": "asia-asia", "text": "asia"})
	}
	collection, err := engine.NewCollection(config.CollectionSettings{
		Name:          config.CollectionCommitRegion,
		IndexedFields: []string{"region", "text"},
		MatchField:    "region",
	}, docs, true)
	require.NoError(t, err)
	h := New(&singleProvider{name: config.CollectionCommitRegion, collection: collection})

	hits := h.Commitment("asia-asia", "")
	assert.Len(t, hits, CommitmentK)
}

func TestCommitment_DoesNotMutateCollection(t *testing.T) {
	registry := testutil.CreateTestRegistry(t)
	h := New(registry)

	hits := h.Commitment("mena-mena", "")
	require.Len(t, hits, 1)

	collection, err := registry.Get(config.CollectionCommitRegion)
	require.NoError(t, err)
	for _, doc := range collection.Documents() {
		_, scored := doc.GetScore()
		assert.False(t, scored, "stored documents must not carry scores")
	}
}

func TestLegislation(t *testing.T) {
	h := New(nil)

	t.Run("country", func(t *testing.T) {
		hits := h.Legislation("saudi arabia")
		require.Len(t, hits, 1)
		doc := hits[0]
		assert.Equal(t, PlaceholderID, doc["id"])
		assert.Equal(t, "Legislation Search - Coming Soon", doc["title"])
		assert.Equal(t, true, doc["placeholder"])
		assert.Equal(t, "saudi arabia", doc["country"])
		assert.Contains(t, doc["text"], "information for saudi arabia is currently under development")
		assert.NotContains(t, doc, "region")
		score, _ := doc.GetScore()
		assert.Equal(t, 1.0, score)
	})

	t.Run("region", func(t *testing.T) {
		hits := h.Legislation("mena-mena")
		require.Len(t, hits, 1)
		assert.Equal(t, "mena-mena", hits[0]["region"])
		assert.Equal(t, "mena-mena", hits[0]["country"])
	})
}

func TestHandlers_EmptyRegistry(t *testing.T) {
	h := New(testutil.CreateEmptyRegistry(t))

	assert.Empty(t, h.CountryProfile("saudi arabia", "stressors/fires"))
	assert.Empty(t, h.Commitment("saudi arabia", ""))
	assert.Empty(t, h.Commitment("mena-mena", ""))
	assert.Len(t, h.Legislation("saudi arabia"), 1)

	assert.NotNil(t, New(nil).CountryProfile("china", ""))
}

func TestHandle(t *testing.T) {
	h := New(testutil.CreateTestRegistry(t))

	hits, err := h.Handle(model.DomainCountryProfile, "china", "")
	require.NoError(t, err)
	testutil.AssertHitIDs(t, hits, "chn-drought")

	hits, err = h.Handle(model.DomainCommitment, "mena-mena", "")
	require.NoError(t, err)
	testutil.AssertHitIDs(t, hits, "commit-mena")

	hits, err = h.Handle(model.DomainLegislation, "china", "")
	require.NoError(t, err)
	testutil.AssertHitIDs(t, hits, PlaceholderID)

	_, err = h.Handle(model.Domain("weather"), "china", "")
	assert.Error(t, err)
}
