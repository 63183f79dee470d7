// Package config provides configuration structures for the query router.
// It defines collection settings and the application configuration loaded by viper.
package config

import (
	"path/filepath"
	"strings"
)

// Well-known collection names.
const (
	CollectionProfile         = "profile"
	CollectionCommitRegion    = "commit_region"
	CollectionCommitCountry   = "commit_country"
	CollectionTabularHits     = "tabular_hits"
	CollectionTabularCombined = "tabular_combined"
)

// CollectionSettings describes one logical document collection: where it is
// loaded from and which fields feed its lexical index.
//
// IndexedFields order matters: the field values are concatenated in this order
// before tokenization. A collection with no IndexedFields is loaded but not
// indexed (it is scanned directly, e.g. by the tabular source).
//
// Ranked results leave out documents scoring 0 unless IncludeZeroScores is set.
// A section-hint search that matches nothing then comes back empty, which is
// what makes the country profile handler retry on the target alone.
type CollectionSettings struct {
	Name              string   `json:"name" mapstructure:"name"`                               // Unique name for the collection
	Path              string   `json:"path" mapstructure:"path"`                               // Line-delimited JSON source file
	IndexedFields     []string `json:"indexed_fields" mapstructure:"indexed_fields"`           // Fields tokenized into the index, in concatenation order
	MatchField        string   `json:"match_field,omitempty" mapstructure:"match_field"`       // Field used for case-insensitive exact-match lookups (e.g. "country")
	IncludeZeroScores bool     `json:"include_zero_scores" mapstructure:"include_zero_scores"` // Keep documents scoring 0 in ranked results
}

// Indexed reports whether a lexical index should be built for the collection.
func (settings *CollectionSettings) Indexed() bool {
	return len(settings.IndexedFields) > 0
}

// ValidateFieldNames validates field names for basic requirements.
func (settings *CollectionSettings) ValidateFieldNames() []string {
	var conflicts []string

	if strings.TrimSpace(settings.Name) == "" {
		conflicts = append(conflicts, "Collection name cannot be empty or whitespace-only")
	}

	conflicts = append(conflicts, checkDuplicates("indexed_fields", settings.IndexedFields)...)

	for _, field := range settings.IndexedFields {
		if strings.TrimSpace(field) == "" {
			conflicts = append(conflicts, "Field name cannot be empty or whitespace-only")
		}
	}

	if settings.MatchField != "" && strings.TrimSpace(settings.MatchField) == "" {
		conflicts = append(conflicts, "match_field cannot be whitespace-only")
	}

	return conflicts
}

// checkDuplicates checks for duplicate values in a slice and returns error messages
func checkDuplicates(fieldName string, fields []string) []string {
	var errors []string
	seen := make(map[string]bool)

	for _, field := range fields {
		if seen[field] {
			errors = append(errors, "Duplicate field '"+field+"' found in "+fieldName)
		}
		seen[field] = true
	}

	return errors
}

// ApplyDefaults applies default values to the collection settings
func (settings *CollectionSettings) ApplyDefaults() {
	// Initialize empty slices if nil to prevent nil pointer issues
	if settings.IndexedFields == nil {
		settings.IndexedFields = []string{}
	}
	settings.MatchField = strings.TrimSpace(settings.MatchField)
}

// DefaultCollections returns the collections served by the router, resolved
// against the configured data directory and file names.
func DefaultCollections(cfg Config) []CollectionSettings {
	profilePath := resolveDataPath(cfg.Data.Dir, cfg.Data.ProfileFile)
	hitsPath := resolveDataPath(cfg.Data.Dir, cfg.Data.HitsFile)
	combinedPath := resolveDataPath(cfg.Data.Dir, cfg.Data.CombinedFile)

	collections := []CollectionSettings{
		{
			Name:          CollectionProfile,
			Path:          profilePath,
			IndexedFields: []string{"title", "section", "text", "country"},
		},
		{
			Name:          CollectionCommitRegion,
			Path:          hitsPath,
			IndexedFields: []string{"region", "text", "title"},
			MatchField:    "region",
		},
		{
			Name:          CollectionCommitCountry,
			Path:          hitsPath,
			IndexedFields: []string{"country", "text", "title"},
			MatchField:    "country",
		},
		{
			Name: CollectionTabularHits,
			Path: hitsPath,
		},
		{
			Name: CollectionTabularCombined,
			Path: combinedPath,
		},
	}
	for i := range collections {
		collections[i].ApplyDefaults()
	}
	return collections
}

// resolveDataPath joins relative file names onto the data directory.
// Absolute paths are used as they are.
func resolveDataPath(dir, file string) string {
	if file == "" || filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(dir, file)
}
