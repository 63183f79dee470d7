package targets

import (
	"strings"
	"testing"

	"github.com/gcbaptista/geoquery/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTargets(t *testing.T) {
	extractor := NewDefaultExtractor()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"full country name", "Saudi Arabia wildfires", []string{"saudi arabia"}},
		{"abbreviation", "KSA trends", []string{"saudi arabia"}},
		{"chinese alias", "沙特法规", []string{"saudi arabia"}},
		{"country with trailing words", "China drought trends", []string{"china"}},
		{"ghana", "Ghana land cover", []string{"ghana"}},
		{"nigeria", "Nigeria land degradation", []string{"nigeria"}},
		{"brazil", "Brazil population growth", []string{"brazil"}},
		{"country at end", "oda flows in Kenya", []string{"kenya"}},
		{"two countries in table order", "Kenya and Ghana commitments", []string{"ghana", "kenya"}},
		{"region self-key", "MENA restoration pledge", []string{"mena-mena"}},
		{"region alias", "Asia commitments", []string{"asia-asia"}},
		{"multi word region alias", "sub-saharan africa restoration", []string{"ssa-ssa", "africa-africa"}},
		{"no entity", "global climate trends", []string{model.FallbackTarget}},
		{"no entity with keywords", "restoration commitments", []string{model.FallbackTarget}},
		{"empty query", "", []string{model.FallbackTarget}},
		{"whitespace is collapsed", "  south    africa  ", []string{"south africa"}},
		// Substring matching over-matches short aliases; this is accepted behaviour.
		{"short alias inside word beats region", "Asia NDC targets", []string{"argentina"}},
		{"us inside australia", "australia", []string{"united states", "australia"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractor.ExtractTargets(tt.query))
		})
	}
}

func TestExtractTargets_CountriesBeforeRegions(t *testing.T) {
	extractor := NewDefaultExtractor()
	assert.Equal(t, []string{"ghana"}, extractor.ExtractTargets("Ghana in Africa"))
}

func TestExtractTargets_SingleAliasResolvesToOneCountry(t *testing.T) {
	extractor := NewDefaultExtractor()

	for _, country := range extractor.Countries() {
		for _, alias := range append([]string{country.Key}, country.Aliases...) {
			// Only aliases that no other country's alias can see inside are unambiguous.
			if ambiguous(extractor, country.Key, alias) {
				continue
			}
			got := extractor.ExtractTargets(alias)
			assert.Equal(t, []string{country.Key}, got, "alias %q", alias)
		}
	}
}

func ambiguous(e *Extractor, owner, query string) bool {
	for _, other := range e.Countries() {
		if other.Key == owner {
			continue
		}
		if containsAny(query, other.Key, other.Aliases) {
			return true
		}
	}
	return false
}

func TestExtractTargets_NeverEmpty(t *testing.T) {
	extractor := NewDefaultExtractor()
	for _, query := range []string{"", "!!!", "🔥", "земля", "xyz"} {
		got := extractor.ExtractTargets(query)
		require.NotEmpty(t, got, "query %q", query)
	}
}

func TestToISO3(t *testing.T) {
	extractor := NewDefaultExtractor()

	tests := []struct {
		target string
		want   string
		ok     bool
	}{
		{"saudi arabia", "SAU", true},
		{"Saudi  Arabia", "SAU", true},
		{"cote d'ivoire", "CIV", true},
		{"mena-mena", "", false},
		{model.FallbackTarget, "", false},
		{"atlantis", "", false},
	}

	for _, tt := range tests {
		code, ok := extractor.ToISO3(tt.target)
		assert.Equal(t, tt.want, code, tt.target)
		assert.Equal(t, tt.ok, ok, tt.target)
	}

	assert.Equal(t, []string{"SAU", "CHN"}, extractor.ISO3Codes([]string{"saudi arabia", "mena-mena", model.FallbackTarget, "china"}))
}

func TestRegionKeys(t *testing.T) {
	assert.Equal(t, "asia-asia", RegionKey("asia"))
	assert.True(t, IsRegionKey("asia-asia"))
	assert.True(t, IsRegionKey(model.FallbackTarget))
	assert.False(t, IsRegionKey("saudi arabia"))

	assert.True(t, IsCountryTarget("saudi arabia"))
	assert.False(t, IsCountryTarget("mena-mena"))
	assert.False(t, IsCountryTarget(model.FallbackTarget))
	assert.False(t, IsCountryTarget(""))
}

func TestNewExtractor_CustomTables(t *testing.T) {
	extractor, err := NewExtractor(
		[]model.CountryEntry{
			{Key: "Atlantis", ISO3: "atl", Aliases: []string{"Lost City"}},
		},
		[]model.RegionEntry{
			{Key: "Ocean", Aliases: []string{"deep sea"}},
		},
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"atlantis"}, extractor.ExtractTargets("the LOST city"))
	assert.Equal(t, []string{"ocean-ocean"}, extractor.ExtractTargets("deep sea floor"))
	assert.Equal(t, []string{model.FallbackTarget}, extractor.ExtractTargets("saudi arabia"))

	code, ok := extractor.ToISO3("atlantis")
	assert.True(t, ok)
	assert.Equal(t, "ATL", code)
}

func TestNewExtractor_InvalidTables(t *testing.T) {
	tests := []struct {
		name      string
		countries []model.CountryEntry
		regions   []model.RegionEntry
	}{
		{"empty country key", []model.CountryEntry{{Key: " "}}, nil},
		{"hyphenated country key", []model.CountryEntry{{Key: "guinea-bissau"}}, nil},
		{"duplicate country", []model.CountryEntry{{Key: "chad"}, {Key: "Chad"}}, nil},
		{"empty region key", nil, []model.RegionEntry{{Key: ""}}},
		{"duplicate region", nil, []model.RegionEntry{{Key: "asia"}, {Key: "asia"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewExtractor(tt.countries, tt.regions)
			assert.Error(t, err)
		})
	}
}

func TestDefaultTables_Consistent(t *testing.T) {
	for _, country := range DefaultCountries {
		assert.Equal(t, strings.ToLower(country.Key), country.Key)
		assert.Len(t, country.ISO3, 3, country.Key)
	}
	assert.Len(t, DefaultRegions, 7)
}
