package model

// Domain is the top-level category a query is routed to.
type Domain string

const (
	DomainCountryProfile Domain = "country_profile"
	DomainCommitment     Domain = "commitment"
	DomainLegislation    Domain = "legislation"
)

// Valid reports whether d is one of the three known domains.
func (d Domain) Valid() bool {
	switch d {
	case DomainCountryProfile, DomainCommitment, DomainLegislation:
		return true
	}
	return false
}

// FallbackTarget is used when no country or region is resolved from a query.
const FallbackTarget = "world-world"

// RouteDecision is the transient result of routing one query.
type RouteDecision struct {
	Targets     []string `json:"targets"`      // e.g. ["saudi arabia"] or ["asia-asia"]
	Domain      Domain   `json:"domain"`       // commitment | legislation | country_profile
	SectionHint string   `json:"section_hint"` // "top/sub" or "" when none
}

// HasSectionHint reports whether a section hint was resolved.
func (r RouteDecision) HasSectionHint() bool {
	return r.SectionHint != ""
}

// Slots is the flat slot map consumed by the slot-driven entry point.
// It carries the RouteDecision plus legacy fields kept for older callers.
type Slots struct {
	Targets     []string `json:"targets"`
	Domain      Domain   `json:"domain"`
	SectionHint *string  `json:"section_hint"`
	ISO3Codes   []string `json:"iso3_codes"`

	// Legacy fields
	Intent    string `json:"intent"`
	Country   string `json:"country"`
	Region    string `json:"region"`
	Indicator string `json:"indicator"`
	Period    string `json:"period"`
}

// Decision converts the slots back into a RouteDecision.
func (s Slots) Decision() RouteDecision {
	decision := RouteDecision{Targets: s.Targets, Domain: s.Domain}
	if s.SectionHint != nil {
		decision.SectionHint = *s.SectionHint
	}
	return decision
}

// QueryResult is the output of the dispatcher for one query.
type QueryResult struct {
	Domain  Domain     `json:"domain"`
	Targets []string   `json:"targets"`
	Hits    []Document `json:"hits"`
}

// HitGroup is one entry of the by-country presentation view.
type HitGroup struct {
	Country string     `json:"country"`
	Hits    []Document `json:"hits"`
}

// KeywordRule maps a set of lowercase keywords to a value.
// A rule matches when any of its keywords is a substring of the normalized query.
type KeywordRule struct {
	ID       string   `json:"id" yaml:"id"`             // value returned on match, e.g. "stressors/fires" or "37"
	Name     string   `json:"name,omitempty" yaml:"name,omitempty"`
	Keywords []string `json:"keywords" yaml:"keywords"`
}

// DispatchResult is the output of the legacy source dispatcher.
type DispatchResult struct {
	Targets []string   `json:"targets"`
	Hits    []Document `json:"hits"`
}
