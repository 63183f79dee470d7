// Package handlers implements the per-domain retrieval handlers. Each handler
// takes a single target and returns scored documents, never an error: a missing
// or empty collection simply yields no hits.
package handlers

import (
	"fmt"
	"strings"

	"github.com/gcbaptista/geoquery/config"
	"github.com/gcbaptista/geoquery/internal/targets"
	"github.com/gcbaptista/geoquery/model"
	"github.com/gcbaptista/geoquery/services"
	"github.com/rs/zerolog/log"
)

const (
	// ProfileK is the number of profile cards returned per target.
	ProfileK = 5
	// CommitmentK caps commitment results per target, exact or ranked.
	CommitmentK = 3
	// ExactMatchScore is attached to exact commitment matches. It is well above
	// the scores the lexical ranking produces on realistic collections.
	ExactMatchScore = 10.0

	// PlaceholderID identifies the legislation placeholder document.
	PlaceholderID    = "law_placeholder"
	placeholderTitle = "Legislation Search - Coming Soon"
)

// Handlers dispatches targets to collections of a registry.
type Handlers struct {
	collections services.CollectionProvider
}

// New creates handlers over collections.
func New(collections services.CollectionProvider) *Handlers {
	return &Handlers{collections: collections}
}

// Handle runs the handler of domain for one target.
func (h *Handlers) Handle(domain model.Domain, target, sectionHint string) ([]model.Document, error) {
	switch domain {
	case model.DomainCountryProfile:
		return h.CountryProfile(target, sectionHint), nil
	case model.DomainCommitment:
		return h.Commitment(target, ""), nil
	case model.DomainLegislation:
		return h.Legislation(target), nil
	default:
		return nil, fmt.Errorf("unknown domain '%s'", domain)
	}
}

// CountryProfile searches the profile collection for target, refined by the
// section hint. The hint never filters: when the refined search finds
// nothing, the target alone is searched.
func (h *Handlers) CountryProfile(target, sectionHint string) []model.Document {
	collection, ok := h.collection(config.CollectionProfile)
	if !ok {
		return make([]model.Document, 0)
	}

	query := target
	if sectionHint != "" {
		query = target + " " + strings.ReplaceAll(sectionHint, "/", " ")
	}

	hits := collection.Search(query, ProfileK)
	if sectionHint != "" && len(hits) == 0 {
		hits = collection.Search(target, ProfileK)
	}
	return hits
}

// Commitment looks up commitments for target. Region self-keys use the
// regional collection and country keys the country collection. Exact matches
// on the collection's match field win outright; otherwise the collection is
// searched with the target, appended to query when one is given.
func (h *Handlers) Commitment(target, query string) []model.Document {
	name := config.CollectionCommitCountry
	if targets.IsRegionKey(target) {
		name = config.CollectionCommitRegion
	}
	collection, ok := h.collection(name)
	if !ok {
		return make([]model.Document, 0)
	}

	if exact := collection.MatchExact(target, CommitmentK); len(exact) > 0 {
		for _, doc := range exact {
			doc[model.ScoreField] = ExactMatchScore
		}
		return exact
	}

	searchQuery := target
	if query != "" {
		searchQuery = query + " " + target
	}
	return collection.Search(searchQuery, CommitmentK)
}

// Legislation always returns a single placeholder document: legislation
// retrieval is not available yet and clients render the placeholder flag as
// a notice.
func (h *Handlers) Legislation(target string) []model.Document {
	doc := model.Document{
		"id":    PlaceholderID,
		"title": placeholderTitle,
		"text": fmt.Sprintf("Legislation and regulatory information for %s is currently under development. "+
			"Please check back later for access to legal documents and regulations.", target),
		"placeholder":    true,
		"country":        target,
		model.ScoreField: 1.0,
	}
	if targets.IsRegionKey(target) {
		doc["region"] = target
	}
	return []model.Document{doc}
}

func (h *Handlers) collection(name string) (services.Collection, bool) {
	if h.collections == nil {
		return nil, false
	}
	collection, err := h.collections.Get(name)
	if err != nil {
		log.Debug().Err(err).Str("collection", name).Msg("collection unavailable")
		return nil, false
	}
	return collection, true
}
