package analytics

import (
	"sort"
	"sync"
	"time"

	"github.com/gcbaptista/geoquery/model"
	"github.com/gcbaptista/geoquery/services"
)

const (
	maxEventsToKeep   = 10000 // Keep last 10k events for performance
	topListSize       = 5
	statsWindowPeriod = 24 * time.Hour
)

// Service implements in-memory route analytics.
// It implements the services.RouteTracker interface.
type Service struct {
	mutex       sync.RWMutex
	events      []model.RouteEvent
	collections services.CollectionProvider
	now         func() time.Time
}

// NewService creates a new analytics service. collections may be nil.
func NewService(collections services.CollectionProvider) *Service {
	return &Service{
		events:      make([]model.RouteEvent, 0),
		collections: collections,
		now:         time.Now,
	}
}

// TrackRoute records a routed query. A zero Timestamp is set to now.
func (s *Service) TrackRoute(event model.RouteEvent) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if event.Timestamp.IsZero() {
		event.Timestamp = s.now()
	}
	s.events = append(s.events, event)

	// Keep only the latest events to prevent unbounded growth
	if len(s.events) > maxEventsToKeep {
		s.events = s.events[len(s.events)-maxEventsToKeep:]
	}
}

// EventCount returns the number of retained events.
func (s *Service) EventCount() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.events)
}

// GetDashboardData returns complete analytics dashboard data for the last 24 hours
func (s *Service) GetDashboardData() model.AnalyticsDashboard {
	s.mutex.RLock()
	recent := filterEventsByTime(s.events, s.now().Add(-statsWindowPeriod))
	s.mutex.RUnlock()

	dashboard := model.AnalyticsDashboard{
		TotalQueries:             len(recent),
		AvgResponseTime:          calculateAvgResponseTime(recent),
		FallbackRate:             percentage(countWhere(recent, func(e model.RouteEvent) bool { return e.Fallback() }), len(recent)),
		EmptyResultRate:          percentage(countWhere(recent, func(e model.RouteEvent) bool { return e.HitCount == 0 }), len(recent)),
		Domains:                  getDomainStats(recent),
		Entries:                  getEntryCounts(recent),
		TopTargets:               getTopTargets(recent),
		SectionHints:             getSectionHints(recent),
		PopularQueries:           getPopularQueries(recent),
		QueryVolume24h:           getHourlyVolume(recent),
		ResponseTimeDistribution: getResponseTimeDistribution(recent),
		Collections:              []model.CollectionStats{},
	}

	if s.collections != nil {
		dashboard.Collections = s.collections.Stats()
		for _, stats := range dashboard.Collections {
			dashboard.TotalDocuments += stats.DocumentCount
			if stats.Loaded {
				dashboard.LoadedCollections++
			}
		}
	}

	return dashboard
}

// filterEventsByTime returns events after the given time
func filterEventsByTime(events []model.RouteEvent, after time.Time) []model.RouteEvent {
	filtered := make([]model.RouteEvent, 0)
	for _, event := range events {
		if event.Timestamp.After(after) {
			filtered = append(filtered, event)
		}
	}
	return filtered
}

func countWhere(events []model.RouteEvent, pred func(model.RouteEvent) bool) int {
	n := 0
	for _, event := range events {
		if pred(event) {
			n++
		}
	}
	return n
}

func percentage(part, total int) float64 {
	if total == 0 {
		return 0.0
	}
	return float64(part) / float64(total) * 100.0
}

// calculateAvgResponseTime calculates average response time for events in milliseconds
func calculateAvgResponseTime(events []model.RouteEvent) int64 {
	if len(events) == 0 {
		return 0
	}

	var total time.Duration
	for _, event := range events {
		total += event.ResponseTime
	}
	return (total / time.Duration(len(events))).Milliseconds()
}

func getDomainStats(events []model.RouteEvent) model.DomainStats {
	stats := model.DomainStats{}
	for _, event := range events {
		switch event.Domain {
		case model.DomainCountryProfile:
			stats.CountryProfile++
		case model.DomainCommitment:
			stats.Commitment++
		case model.DomainLegislation:
			stats.Legislation++
		}
	}
	return stats
}

func getEntryCounts(events []model.RouteEvent) map[string]int {
	counts := make(map[string]int)
	for _, event := range events {
		counts[event.Entry]++
	}
	return counts
}

func getSectionHints(events []model.RouteEvent) map[string]int {
	counts := make(map[string]int)
	for _, event := range events {
		if event.SectionHint != "" {
			counts[event.SectionHint]++
		}
	}
	return counts
}

// getTopTargets returns the most frequently resolved targets
func getTopTargets(events []model.RouteEvent) []model.TargetCount {
	counts := make(map[string]int)
	for _, event := range events {
		for _, target := range event.Targets {
			counts[target]++
		}
	}

	targets := make([]model.TargetCount, 0, len(counts))
	for target, count := range counts {
		targets = append(targets, model.TargetCount{Target: target, Count: count})
	}
	sort.Slice(targets, func(i, j int) bool {
		if targets[i].Count != targets[j].Count {
			return targets[i].Count > targets[j].Count
		}
		return targets[i].Target < targets[j].Target
	})

	if len(targets) > topListSize {
		targets = targets[:topListSize]
	}
	return targets
}

// getPopularQueries returns the most frequent query strings
func getPopularQueries(events []model.RouteEvent) []model.PopularQuery {
	counts := make(map[string]int)
	for _, event := range events {
		if event.Query != "" {
			counts[event.Query]++
		}
	}

	queries := make([]model.PopularQuery, 0, len(counts))
	for query, count := range counts {
		queries = append(queries, model.PopularQuery{Query: query, QueryCount: count})
	}

	// Sort by count descending
	sort.Slice(queries, func(i, j int) bool {
		if queries[i].QueryCount != queries[j].QueryCount {
			return queries[i].QueryCount > queries[j].QueryCount
		}
		return queries[i].Query < queries[j].Query
	})

	if len(queries) > topListSize {
		queries = queries[:topListSize]
	}
	return queries
}

// getHourlyVolume returns hourly query volume for the last 24 hours
func getHourlyVolume(events []model.RouteEvent) []model.QueryVolumeHourly {
	hourlyData := make(map[int][]model.RouteEvent)
	for _, event := range events {
		hour := event.Timestamp.Hour()
		hourlyData[hour] = append(hourlyData[hour], event)
	}

	volume := make([]model.QueryVolumeHourly, 0, 24)
	for hour := 0; hour < 24; hour++ {
		hourEvents := hourlyData[hour]
		volume = append(volume, model.QueryVolumeHourly{
			Hour:            hour,
			QueryCount:      len(hourEvents),
			AvgResponseTime: calculateAvgResponseTime(hourEvents),
		})
	}
	return volume
}

// getResponseTimeDistribution returns response time distribution
func getResponseTimeDistribution(events []model.RouteEvent) model.ResponseTimeDistribution {
	dist := model.ResponseTimeDistribution{}
	total := len(events)

	if total == 0 {
		return dist
	}

	for _, event := range events {
		ms := event.ResponseTime.Milliseconds()
		switch {
		case ms <= 25:
			dist.Bucket0To25ms++
		case ms <= 50:
			dist.Bucket25To50ms++
		case ms <= 100:
			dist.Bucket50To100ms++
		default:
			dist.Bucket100msPlus++
		}
	}

	dist.Percentage0To25 = percentage(dist.Bucket0To25ms, total)
	dist.Percentage25To50 = percentage(dist.Bucket25To50ms, total)
	dist.Percentage50To100 = percentage(dist.Bucket50To100ms, total)
	dist.Percentage100Plus = percentage(dist.Bucket100msPlus, total)

	return dist
}
