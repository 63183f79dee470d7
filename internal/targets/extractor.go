// Package targets resolves free text to canonical country and region keys.
package targets

import (
	"fmt"
	"strings"

	"github.com/gcbaptista/geoquery/internal/tokenizer"
	"github.com/gcbaptista/geoquery/model"
)

// regionSeparator joins a region name to itself to form its target key.
const regionSeparator = "-"

// Extractor matches queries against ordered alias tables.
// It is immutable after construction and safe for concurrent use.
//
// Matching is plain substring containment of the key or any alias in the
// normalized query. Short aliases can therefore match inside unrelated words
// ("arg" in "targets"); this imprecision is accepted.
type Extractor struct {
	countries []model.CountryEntry
	regions   []model.RegionEntry
	iso3      map[string]string
}

// NewExtractor builds an extractor from the given tables. Keys and aliases are
// normalized. Nil tables select the built-in ones.
func NewExtractor(countries []model.CountryEntry, regions []model.RegionEntry) (*Extractor, error) {
	if countries == nil {
		countries = DefaultCountries
	}
	if regions == nil {
		regions = DefaultRegions
	}

	e := &Extractor{
		countries: make([]model.CountryEntry, 0, len(countries)),
		regions:   make([]model.RegionEntry, 0, len(regions)),
		iso3:      make(map[string]string, len(countries)),
	}

	for i, country := range countries {
		key := tokenizer.Normalize(country.Key)
		if key == "" {
			return nil, fmt.Errorf("country %d: key cannot be empty", i)
		}
		if strings.Contains(key, regionSeparator) {
			return nil, fmt.Errorf("country '%s': key cannot contain '%s'", key, regionSeparator)
		}
		if _, dup := e.iso3[key]; dup {
			return nil, fmt.Errorf("country '%s' is listed twice", key)
		}
		e.countries = append(e.countries, model.CountryEntry{
			Key:     key,
			ISO3:    strings.ToUpper(strings.TrimSpace(country.ISO3)),
			Aliases: normalizeAliases(country.Aliases),
		})
		e.iso3[key] = strings.ToUpper(strings.TrimSpace(country.ISO3))
	}

	seenRegions := make(map[string]bool, len(regions))
	for i, region := range regions {
		key := tokenizer.Normalize(region.Key)
		if key == "" {
			return nil, fmt.Errorf("region %d: key cannot be empty", i)
		}
		if seenRegions[key] {
			return nil, fmt.Errorf("region '%s' is listed twice", key)
		}
		seenRegions[key] = true
		e.regions = append(e.regions, model.RegionEntry{Key: key, Aliases: normalizeAliases(region.Aliases)})
	}

	return e, nil
}

// NewDefaultExtractor returns an extractor over the built-in tables.
func NewDefaultExtractor() *Extractor {
	e, err := NewExtractor(nil, nil)
	if err != nil {
		panic(err) // built-in tables are valid
	}
	return e
}

// ExtractTargets returns the canonical targets mentioned in query.
// Countries take priority: when any country matches, all matching countries are
// returned in table order and regions are not considered. Otherwise matching
// regions are returned as self-keys. With no match the result is
// [model.FallbackTarget]. The result is never empty.
func (e *Extractor) ExtractTargets(query string) []string {
	q := tokenizer.Normalize(query)

	countries := make([]string, 0)
	for _, country := range e.countries {
		if containsAny(q, country.Key, country.Aliases) {
			countries = append(countries, country.Key)
		}
	}
	if len(countries) > 0 {
		return countries
	}

	regions := make([]string, 0)
	for _, region := range e.regions {
		if containsAny(q, region.Key, region.Aliases) {
			regions = append(regions, RegionKey(region.Key))
		}
	}
	if len(regions) > 0 {
		return regions
	}

	return []string{model.FallbackTarget}
}

// ToISO3 returns the 3-letter code for a canonical country key. ok is false
// when the key is unknown or has no code; callers skip such targets for
// code-dependent operations.
func (e *Extractor) ToISO3(countryKey string) (string, bool) {
	code := e.iso3[tokenizer.Normalize(countryKey)]
	return code, code != ""
}

// ISO3Codes returns the codes of every country target that has one, in order.
func (e *Extractor) ISO3Codes(targets []string) []string {
	codes := make([]string, 0, len(targets))
	for _, target := range targets {
		if IsRegionKey(target) {
			continue
		}
		if code, ok := e.ToISO3(target); ok {
			codes = append(codes, code)
		}
	}
	return codes
}

// Countries returns a copy of the normalized country table.
func (e *Extractor) Countries() []model.CountryEntry {
	out := make([]model.CountryEntry, len(e.countries))
	copy(out, e.countries)
	return out
}

// Regions returns a copy of the normalized region table.
func (e *Extractor) Regions() []model.RegionEntry {
	out := make([]model.RegionEntry, len(e.regions))
	copy(out, e.regions)
	return out
}

// RegionKey forms the self-key of a region, e.g. "asia" -> "asia-asia".
func RegionKey(region string) string {
	return region + regionSeparator + region
}

// IsRegionKey reports whether target uses the hyphenated self-key form.
// The fallback target is a region key by this convention.
func IsRegionKey(target string) bool {
	return strings.Contains(target, regionSeparator)
}

// IsCountryTarget reports whether target names a country rather than a
// region or the fallback.
func IsCountryTarget(target string) bool {
	return target != "" && target != model.FallbackTarget && !IsRegionKey(target)
}

func containsAny(q, key string, aliases []string) bool {
	if strings.Contains(q, key) {
		return true
	}
	for _, alias := range aliases {
		if alias != "" && strings.Contains(q, alias) {
			return true
		}
	}
	return false
}

func normalizeAliases(aliases []string) []string {
	out := make([]string, 0, len(aliases))
	for _, alias := range aliases {
		if a := tokenizer.Normalize(alias); a != "" {
			out = append(out, a)
		}
	}
	return out
}
