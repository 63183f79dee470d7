// Package testing provides fixtures and helpers for testing the query router.
package testing

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcbaptista/geoquery/config"
	"github.com/gcbaptista/geoquery/internal/engine"
	"github.com/gcbaptista/geoquery/internal/persistence"
	"github.com/gcbaptista/geoquery/model"
)

// Fixture file names written by WriteFixtures.
const (
	ProfileFile  = "profile.jsonl"
	HitsFile     = "hits.jsonl"
	CombinedFile = "combined.jsonl"
)

// FixturePaths locates the fixture files of one test.
type FixturePaths struct {
	Dir      string
	Profile  string
	Hits     string
	Combined string
}

// ProfileDocuments returns country profile cards.
func ProfileDocuments() []model.Document {
	return []model.Document{
		{
			"id":            "sau-fires",
			"title":         "Saudi Arabia Active Fires",
			"section":       "stressors/fires",
			"text":          "Active fires density and fires trends in saudi arabia",
			"country":       "saudi arabia",
			"images":        []interface{}{"backend/data/images/sau_fires.png"},
			"citation_path": "backend/data/csv/sau_fires.csv",
		},
		{
			"id":      "sau-land",
			"title":   "Saudi Arabia Land Cover",
			"section": "current_state/land_status",
			"text":    "ESA 2021 land cover classes for saudi arabia",
			"country": "saudi arabia",
		},
		{
			"id":      "chn-drought",
			"title":   "China Drought Hazard",
			"section": "stressors/climate_hazards",
			"text":    "Drought and inform risk for china",
			"country": "china",
		},
		{
			"id":      "gha-socio",
			"title":   "Ghana Population",
			"section": "trends/socio",
			"text":    "Population with urban and rural shares in ghana",
			"country": "ghana",
			"images":  "backend/data/images/gha_pop.png",
		},
		{
			"id":      "world-climate",
			"title":   "Global Temperature Anomaly",
			"section": "trends/climate",
			"text":    "Temperature anomaly relative to 1991-2020 for the world",
		},
	}
}

// HitsDocuments returns the pre-formatted hits file: commitment cards for the
// commitment collections plus table hits for the tabular source.
func HitsDocuments() []model.Document {
	return []model.Document{
		{
			"id":     "commit-mena",
			"domain": "commitment",
			"region": "mena-mena",
			"title":  "MENA restoration commitments",
			"text":   "Regional pledge to restore degraded land",
		},
		{
			"id":     "commit-asia",
			"domain": "commitment",
			"region": "Asia",
			"title":  "Asia restoration commitments",
			"text":   "Regional targets for asia",
		},
		{
			"id":      "commit-sau",
			"domain":  "commitment",
			"country": "Saudi Arabia",
			"title":   "Saudi Green Initiative",
			"text":    "Plant ten billion trees and restore 40 million hectares",
		},
		{
			"id":      "commit-chn",
			"domain":  "commitment",
			"country": "china",
			"title":   "China restoration pledge",
			"text":    "Land degradation neutrality target for china",
		},
		{
			"id":      "tbl-ken-commit",
			"type":    "table",
			"domain":  "commitment",
			"country": "kenya",
			"title":   "Kenya commitments",
			"table": map[string]interface{}{
				"columns": []interface{}{"Commitment", "Area (ha)"},
				"rows":    []interface{}{[]interface{}{"AFR100", "5100000"}},
			},
		},
		{
			"id":         "tbl-egy-law",
			"type":       "table",
			"domain":     "legislation",
			"target_key": "EGY",
			"title":      "Egypt legislation",
			"table": map[string]interface{}{
				"columns": []interface{}{"Law", "Year"},
				"rows":    []interface{}{[]interface{}{"Environment Law 4", "1994"}},
			},
		},
		{
			"id":      "tbl-ken-broken",
			"type":    "table",
			"domain":  "commitment",
			"country": "kenya",
			"title":   "Kenya without table body",
		},
	}
}

// CombinedDocuments returns raw combined rows that need transformation.
func CombinedDocuments() []model.Document {
	return []model.Document{
		{
			"target_key": "GHA",
			"domain":     "commitment",
			"title":      "Ghana commitments",
			"columns":    []interface{}{"Commitment", "Area (ha)"},
			"rows":       []interface{}{[]interface{}{"AFR100", "2000000"}},
			"source_url": "https://example.org/gha",
			"updated":    "2024-05-01",
		},
		{
			"target_key": "ghana",
			"domain":     "legislation",
			"columns":    []interface{}{"Law"},
			"rows":       []interface{}{[]interface{}{"Forest Act"}},
		},
		{
			"target_key": "asia-asia",
			"domain":     "commitment",
			"columns":    []interface{}{"Commitment"},
			"rows":       []interface{}{},
		},
		{
			"target_key": "brazil",
			"columns":    []interface{}{"Indicator"},
			"rows":       []interface{}{},
		},
	}
}

// WriteFixtures writes the fixture collections into a temporary directory.
func WriteFixtures(t *testing.T) FixturePaths {
	t.Helper()

	dir := t.TempDir()
	paths := FixturePaths{
		Dir:      dir,
		Profile:  filepath.Join(dir, ProfileFile),
		Hits:     filepath.Join(dir, HitsFile),
		Combined: filepath.Join(dir, CombinedFile),
	}

	require.NoError(t, persistence.SaveJSONL(paths.Profile, ProfileDocuments()), "Failed to write profile fixture")
	require.NoError(t, persistence.SaveJSONL(paths.Hits, HitsDocuments()), "Failed to write hits fixture")
	require.NoError(t, persistence.SaveJSONL(paths.Combined, CombinedDocuments()), "Failed to write combined fixture")

	return paths
}

// CreateTestConfig returns the default configuration pointed at fresh fixture files.
func CreateTestConfig(t *testing.T) config.Config {
	t.Helper()

	paths := WriteFixtures(t)
	cfg := config.Default()
	cfg.Data.Dir = paths.Dir
	cfg.Data.ProfileFile = ProfileFile
	cfg.Data.HitsFile = HitsFile
	cfg.Data.CombinedFile = CombinedFile
	return cfg
}

// CreateTestRegistry builds a registry over fresh fixture files.
func CreateTestRegistry(t *testing.T) *engine.Registry {
	t.Helper()

	registry, err := engine.NewRegistry(config.DefaultCollections(CreateTestConfig(t)))
	require.NoError(t, err, "Failed to build test registry")
	return registry
}

// CreateEmptyRegistry builds a registry whose sources do not exist.
func CreateEmptyRegistry(t *testing.T) *engine.Registry {
	t.Helper()

	cfg := config.Default()
	cfg.Data.Dir = filepath.Join(t.TempDir(), "missing")
	registry, err := engine.NewRegistry(config.DefaultCollections(cfg))
	require.NoError(t, err, "Failed to build empty registry")
	return registry
}

// HitIDs returns the "id" field of each hit, "" when absent.
func HitIDs(hits []model.Document) []string {
	ids := make([]string, 0, len(hits))
	for _, hit := range hits {
		id, _ := hit.GetString("id")
		ids = append(ids, id)
	}
	return ids
}

// AssertHitIDs verifies the ids of hits, in order.
func AssertHitIDs(t *testing.T, hits []model.Document, expected ...string) {
	t.Helper()
	if expected == nil {
		expected = []string{}
	}
	assert.Equal(t, expected, HitIDs(hits), "Hit ids should match")
}

// AssertScored verifies every hit carries a score.
func AssertScored(t *testing.T, hits []model.Document) {
	t.Helper()
	for i, hit := range hits {
		_, ok := hit.GetScore()
		assert.True(t, ok, "Hit %d should carry a score", i)
	}
}
