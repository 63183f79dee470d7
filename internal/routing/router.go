// Package routing classifies queries into a domain and an optional profile
// section, and combines that with target extraction into a route decision.
package routing

import (
	"fmt"

	"github.com/gcbaptista/geoquery/internal/rules"
	"github.com/gcbaptista/geoquery/internal/targets"
	"github.com/gcbaptista/geoquery/model"
	"github.com/rs/zerolog/log"
)

// Router is the rule-based query router. Domain classification and target
// extraction are independent of each other.
// A Router is immutable after construction and safe for concurrent use.
type Router struct {
	extractor    *targets.Extractor
	commitment   *rules.Engine
	legislation  *rules.Engine
	sectionHints *rules.Engine
}

// NewRouter builds a router from tables. Empty sections of tables select the
// built-in vocabulary.
func NewRouter(extractor *targets.Extractor, tables model.Tables) (*Router, error) {
	if extractor == nil {
		return nil, fmt.Errorf("extractor cannot be nil")
	}

	commitmentKeywords := tables.CommitmentKeywords
	if len(commitmentKeywords) == 0 {
		commitmentKeywords = DefaultCommitmentKeywords
	}
	legislationKeywords := tables.LegislationKeywords
	if len(legislationKeywords) == 0 {
		legislationKeywords = DefaultLegislationKeywords
	}
	sectionHints := tables.SectionHints
	if len(sectionHints) == 0 {
		sectionHints = DefaultSectionHints
	}

	commitment, err := rules.NewEngine([]model.KeywordRule{{ID: string(model.DomainCommitment), Keywords: commitmentKeywords}})
	if err != nil {
		return nil, fmt.Errorf("invalid commitment keywords: %w", err)
	}
	legislation, err := rules.NewEngine([]model.KeywordRule{{ID: string(model.DomainLegislation), Keywords: legislationKeywords}})
	if err != nil {
		return nil, fmt.Errorf("invalid legislation keywords: %w", err)
	}
	hints, err := rules.NewEngine(sectionHints)
	if err != nil {
		return nil, fmt.Errorf("invalid section hints: %w", err)
	}

	return &Router{
		extractor:    extractor,
		commitment:   commitment,
		legislation:  legislation,
		sectionHints: hints,
	}, nil
}

// NewDefaultRouter returns a router over the built-in tables.
func NewDefaultRouter() *Router {
	router, err := NewRouter(targets.NewDefaultExtractor(), model.Tables{})
	if err != nil {
		panic(err) // built-in tables are valid
	}
	return router
}

// Extractor returns the target extractor used by the router.
func (r *Router) Extractor() *targets.Extractor {
	return r.extractor
}

// PickDomain classifies query. Commitment keywords are checked first, so a
// query containing both a commitment and a legislation keyword is a commitment
// query. Without any keyword the domain is country_profile.
func (r *Router) PickDomain(query string) model.Domain {
	if r.commitment.AnyMatch(query) {
		return model.DomainCommitment
	}
	if r.legislation.AnyMatch(query) {
		return model.DomainLegislation
	}
	return model.DomainCountryProfile
}

// SectionHint returns the first "top/sub" section whose keywords occur in
// query, or "" when none does. The hint is advisory.
func (r *Router) SectionHint(query string) string {
	rule, ok := r.sectionHints.FirstMatch(query)
	if !ok {
		return ""
	}
	return rule.ID
}

// DomainKeyword returns the keyword that selected the domain of query, or ""
// when the query falls through to country_profile.
func (r *Router) DomainKeyword(query string) string {
	if keyword, ok := r.commitment.MatchedKeyword(query); ok {
		return keyword
	}
	keyword, _ := r.legislation.MatchedKeyword(query)
	return keyword
}

// Route produces the route decision for query. The section hint is only
// computed for country_profile queries.
func (r *Router) Route(query string) model.RouteDecision {
	decision := model.RouteDecision{
		Targets: r.extractor.ExtractTargets(query),
		Domain:  r.PickDomain(query),
	}
	if decision.Domain == model.DomainCountryProfile {
		decision.SectionHint = r.SectionHint(query)
	}

	log.Debug().
		Str("query", query).
		Strs("targets", decision.Targets).
		Str("domain", string(decision.Domain)).
		Str("domain_keyword", r.DomainKeyword(query)).
		Str("section_hint", decision.SectionHint).
		Msg("routed query")
	return decision
}

// Slots routes query and returns the flat slot map used by the slot-driven
// entry point and older callers.
func (r *Router) Slots(query string) model.Slots {
	return r.SlotsFor(r.Route(query))
}

// SlotsFor expands a route decision into the slot map.
func (r *Router) SlotsFor(decision model.RouteDecision) model.Slots {
	slots := model.Slots{
		Targets:   decision.Targets,
		Domain:    decision.Domain,
		ISO3Codes: r.extractor.ISO3Codes(decision.Targets),
		Intent:    string(decision.Domain),
	}
	if decision.HasSectionHint() {
		hint := decision.SectionHint
		slots.SectionHint = &hint
	}
	if len(decision.Targets) > 0 {
		slots.Country = decision.Targets[0]
	}
	return slots
}
