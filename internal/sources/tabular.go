package sources

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/gcbaptista/geoquery/config"
	"github.com/gcbaptista/geoquery/internal/rules"
	"github.com/gcbaptista/geoquery/internal/targets"
	"github.com/gcbaptista/geoquery/model"
	"github.com/gcbaptista/geoquery/services"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// TabularName names the tabular source.
	TabularName = "tabular"
	// TabularPriority runs tables before dashboards.
	TabularPriority = 10
)

// tabularKeywords trigger the tabular source. They are substrings, so
// "commit" also catches "commitments".
var tabularKeywords = []string{"commit", "legislat", "pledge", "ndc", "target", "law", "regulation", "act", "decree"}

// TabularSource serves commitment and legislation tables. Pre-formatted table
// hits are preferred; raw combined rows are only transformed when the hits
// collection has nothing for the query.
type TabularSource struct {
	collections services.CollectionProvider
	extractor   *targets.Extractor
	trigger     *rules.Engine
}

// NewTabularSource creates the tabular source over the tabular_hits and
// tabular_combined collections.
func NewTabularSource(collections services.CollectionProvider, extractor *targets.Extractor) *TabularSource {
	return &TabularSource{
		collections: collections,
		extractor:   extractor,
		trigger:     rules.Keywords(TabularName, tabularKeywords...),
	}
}

// Source returns the dispatcher record of the tabular source.
func (s *TabularSource) Source() Source {
	return Source{
		Name:     TabularName,
		Priority: TabularPriority,
		Matches:  s.Matches,
		Fetch:    s.Fetch,
	}
}

// Matches reports whether query names a commitment or legislation topic.
func (s *TabularSource) Matches(query string) bool {
	return s.trigger.AnyMatch(query)
}

// Fetch returns the tables of targets, filtered by domain when the query
// mentions commitments or legislation.
func (s *TabularSource) Fetch(ctx context.Context, query string, targets []string) ([]model.Document, error) {
	q := strings.ToLower(query)
	accept := s.acceptKeys(targets)

	hitsCollection, err := s.collections.Get(config.CollectionTabularHits)
	if err != nil {
		return nil, fmt.Errorf("tabular hits unavailable: %w", err)
	}

	hits := make([]model.Document, 0)
	for _, doc := range hitsCollection.Documents() {
		key := recordKey(doc, "country")
		if key == "" {
			key = recordKey(doc, "target_key")
		}
		if !accept[key] || !domainAllowed(q, recordKey(doc, "domain")) {
			continue
		}
		if docType, _ := doc.GetString("type"); docType != "table" {
			continue
		}
		if _, hasTable := doc["table"]; !hasTable {
			continue
		}
		hits = append(hits, doc.Clone())
	}
	if len(hits) > 0 {
		return hits, nil
	}

	combined, err := s.collections.Get(config.CollectionTabularCombined)
	if err != nil {
		return nil, fmt.Errorf("tabular combined unavailable: %w", err)
	}
	for _, rec := range combined.Documents() {
		domain := recordKey(rec, "domain")
		if !accept[recordKey(rec, "target_key")] || !domainAllowed(q, domain) {
			continue
		}
		hits = append(hits, toTableHit(rec, domain))
	}
	return hits, nil
}

// acceptKeys lowercases targets and adds the ISO3 code of every country target.
func (s *TabularSource) acceptKeys(targetKeys []string) map[string]bool {
	accept := make(map[string]bool, len(targetKeys)*2)
	for _, target := range targetKeys {
		key := strings.ToLower(strings.TrimSpace(target))
		if key == "" {
			continue
		}
		accept[key] = true
		if targets.IsCountryTarget(key) {
			if iso3, ok := s.extractor.ToISO3(key); ok {
				accept[strings.ToLower(iso3)] = true
			}
		}
	}
	return accept
}

// titleWords capitalizes every run of letters, so "country_profile" becomes
// "Country_Profile". Separators are kept as they are.
func titleWords(s string) string {
	// Casers are stateful, so one is made per use.
	caser := cases.Title(language.Und)
	var b strings.Builder
	runes := []rune(s)
	for start := 0; start < len(runes); {
		end := start + 1
		isLetter := unicode.IsLetter(runes[start])
		for end < len(runes) && unicode.IsLetter(runes[end]) == isLetter {
			end++
		}
		if isLetter {
			b.WriteString(caser.String(string(runes[start:end])))
		} else {
			b.WriteString(string(runes[start:end]))
		}
		start = end
	}
	return b.String()
}

// toTableHit transforms a raw combined row. country keeps the row's original
// target_key, e.g. "SAU" or "asia-asia".
func toTableHit(rec model.Document, domain string) model.Document {
	title, ok := rec.GetString("title")
	if !ok {
		title = "Data"
		if domain != "" {
			title = titleWords(domain)
		}
	}
	return model.Document{
		"type":  "table",
		"title": title,
		"table": map[string]interface{}{
			"columns": listOrEmpty(rec["columns"]),
			"rows":    listOrEmpty(rec["rows"]),
		},
		"source_url": rec["source_url"],
		"domain":     domain,
		"country":    rec["target_key"],
		"updated":    rec["updated"],
	}
}

// domainAllowed applies the commit/legislat filter of the raw query.
func domainAllowed(query, domain string) bool {
	if strings.Contains(query, "commit") && domain != string(model.DomainCommitment) {
		return false
	}
	if strings.Contains(query, "legislat") && domain != string(model.DomainLegislation) {
		return false
	}
	return true
}

func recordKey(doc model.Document, field string) string {
	value, _ := doc.GetString(field)
	return strings.ToLower(strings.TrimSpace(value))
}

func listOrEmpty(value interface{}) interface{} {
	if value == nil {
		return []interface{}{}
	}
	return value
}
