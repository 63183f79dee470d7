package model

import "time"

// Entry points that produce route events.
const (
	EntryProcess  = "process"  // classifier-driven dispatch
	EntrySlots    = "slots"    // pre-resolved slot dispatch
	EntryDispatch = "dispatch" // legacy source dispatch
)

// RouteEvent represents a single routed query for analytics tracking
type RouteEvent struct {
	Query        string        `json:"query"`
	Entry        string        `json:"entry"`
	Domain       Domain        `json:"domain,omitempty"`
	Targets      []string      `json:"targets"`
	SectionHint  string        `json:"section_hint,omitempty"`
	HitCount     int           `json:"hit_count"`
	ResponseTime time.Duration `json:"response_time"`
	Timestamp    time.Time     `json:"timestamp"`
}

// Fallback reports whether no entity was resolved for the query.
func (e RouteEvent) Fallback() bool {
	return len(e.Targets) == 1 && e.Targets[0] == FallbackTarget
}

// PopularQuery represents aggregated data for popular query strings
type PopularQuery struct {
	Query      string `json:"query"`
	QueryCount int    `json:"query_count"`
}

// TargetCount counts how often a target was resolved
type TargetCount struct {
	Target string `json:"target"`
	Count  int    `json:"count"`
}

// DomainStats counts routed queries per domain
type DomainStats struct {
	CountryProfile int `json:"country_profile"`
	Commitment     int `json:"commitment"`
	Legislation    int `json:"legislation"`
}

// ResponseTimeDistribution represents response time distribution buckets
type ResponseTimeDistribution struct {
	Bucket0To25ms     int     `json:"bucket_0_25ms"`
	Bucket25To50ms    int     `json:"bucket_25_50ms"`
	Bucket50To100ms   int     `json:"bucket_50_100ms"`
	Bucket100msPlus   int     `json:"bucket_100ms_plus"`
	Percentage0To25   float64 `json:"percentage_0_25"`
	Percentage25To50  float64 `json:"percentage_25_50"`
	Percentage50To100 float64 `json:"percentage_50_100"`
	Percentage100Plus float64 `json:"percentage_100_plus"`
}

// QueryVolumeHourly represents hourly query volume
type QueryVolumeHourly struct {
	Hour            int   `json:"hour"`
	QueryCount      int   `json:"query_count"`
	AvgResponseTime int64 `json:"avg_response_time"` // in milliseconds
}

// AnalyticsDashboard represents the complete analytics dashboard data
type AnalyticsDashboard struct {
	// Summary metrics, last 24h
	TotalQueries      int     `json:"total_queries"`
	AvgResponseTime   int64   `json:"avg_response_time"` // in milliseconds
	FallbackRate      float64 `json:"fallback_rate"`     // percentage of queries resolved to world-world
	EmptyResultRate   float64 `json:"empty_result_rate"` // percentage of queries with no hits
	TotalDocuments    int     `json:"total_documents"`
	LoadedCollections int     `json:"loaded_collections"`

	// Detailed analytics
	Domains                  DomainStats              `json:"domains"`
	Entries                  map[string]int           `json:"entries"`
	TopTargets               []TargetCount            `json:"top_targets"`
	SectionHints             map[string]int           `json:"section_hints"`
	PopularQueries           []PopularQuery           `json:"popular_queries"`
	QueryVolume24h           []QueryVolumeHourly      `json:"query_volume_24h"`
	ResponseTimeDistribution ResponseTimeDistribution `json:"response_time_distribution"`
	Collections              []CollectionStats        `json:"collections"`
}
