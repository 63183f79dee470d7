package sources

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gcbaptista/geoquery/internal/rules"
	"github.com/gcbaptista/geoquery/internal/targets"
	"github.com/gcbaptista/geoquery/model"
)

const (
	// IframeName names the dashboard source.
	IframeName = "profiles_iframe"
	// IframePriority runs dashboards after tables.
	IframePriority = 50

	DefaultDashboardHost   = "dash-staging.g20gsp.unepgrid.ch"
	DefaultDashboardHeight = 420
	DefaultDashboardID     = 38 // socio-economic trends
)

// DefaultDashboards maps keywords to dashboard ids. The first matching rule wins.
var DefaultDashboards = []model.KeywordRule{
	{ID: "37", Name: "oda flows", Keywords: []string{"oda", "official development assistance", "biodiversity sector", "water supply", "sanitation", "oda flows"}},
	{ID: "39", Name: "climate trends", Keywords: []string{"climate", "temperature", "precipitation", "rainfall", "anomaly", "temperature change", "precip change"}},
	{ID: "41", Name: "dashboard meta", Keywords: []string{"dashboard family", "number of charts", "number of maps", "table all charts", "dashboard meta"}},
	{ID: "38", Name: "socio-economics", Keywords: []string{"population", "gdp", "agriculture", "agricultural", "exports", "urban", "rural", "socio-economics", "socioeconomics", "socio"}},
}

// profileExclusions stop the dashboard source for commitment and legislation queries.
var profileExclusions = []string{"commit", "legislat", "pledge", "law"}

// IframeOptions configures the dashboard embeds.
type IframeOptions struct {
	Host       string
	Height     int
	DefaultID  int
	Dashboards []model.KeywordRule // nil selects DefaultDashboards
}

// ProfilesIframeSource embeds a country profile dashboard for every country
// target with an ISO3 code. It is the fallback for queries that are not about
// commitments or legislation.
type ProfilesIframeSource struct {
	extractor  *targets.Extractor
	dashboards *rules.Engine
	exclusions *rules.Engine
	host       string
	height     int
	defaultID  int
}

// NewProfilesIframeSource creates the dashboard source. Dashboard rule ids
// must be integers.
func NewProfilesIframeSource(extractor *targets.Extractor, opts IframeOptions) (*ProfilesIframeSource, error) {
	dashboards := opts.Dashboards
	if len(dashboards) == 0 {
		dashboards = DefaultDashboards
	}
	for _, rule := range dashboards {
		if _, err := strconv.Atoi(rule.ID); err != nil {
			return nil, fmt.Errorf("dashboard rule id '%s' is not a number", rule.ID)
		}
	}
	engine, err := rules.NewEngine(dashboards)
	if err != nil {
		return nil, fmt.Errorf("invalid dashboard rules: %w", err)
	}

	s := &ProfilesIframeSource{
		extractor:  extractor,
		dashboards: engine,
		exclusions: rules.Keywords(IframeName, profileExclusions...),
		host:       opts.Host,
		height:     opts.Height,
		defaultID:  opts.DefaultID,
	}
	if s.host == "" {
		s.host = DefaultDashboardHost
	}
	if s.height <= 0 {
		s.height = DefaultDashboardHeight
	}
	if s.defaultID <= 0 {
		s.defaultID = DefaultDashboardID
	}
	return s, nil
}

// Source returns the dispatcher record of the dashboard source.
func (s *ProfilesIframeSource) Source() Source {
	return Source{
		Name:     IframeName,
		Priority: IframePriority,
		Matches:  s.Matches,
		Fetch:    s.Fetch,
	}
}

// Matches reports whether query is free of commitment and legislation words.
func (s *ProfilesIframeSource) Matches(query string) bool {
	return !s.exclusions.AnyMatch(query)
}

// DashboardID picks the dashboard for query.
func (s *ProfilesIframeSource) DashboardID(query string) int {
	rule, ok := s.dashboards.FirstMatch(query)
	if !ok {
		return s.defaultID
	}
	id, _ := strconv.Atoi(rule.ID)
	return id
}

// DashboardURL builds the standalone embed url of a dashboard for one country.
func (s *ProfilesIframeSource) DashboardURL(iso3 string, dashboardID int) string {
	return fmt.Sprintf("https://%s/superset/dashboard/%d/?standalone=3&iso3=%s", s.host, dashboardID, iso3)
}

// Fetch returns one embed per country target. Regions and the fallback
// target have no dashboard.
func (s *ProfilesIframeSource) Fetch(ctx context.Context, query string, targetKeys []string) ([]model.Document, error) {
	dashboardID := s.DashboardID(query)

	hits := make([]model.Document, 0, len(targetKeys))
	for _, target := range targetKeys {
		if !targets.IsCountryTarget(target) {
			continue
		}
		iso3, ok := s.extractor.ToISO3(target)
		if !ok {
			continue
		}
		hits = append(hits, model.Document{
			"type":  "iframe",
			"title": fmt.Sprintf("Country Profile — %s (#%d)", iso3, dashboardID),
			"embed": map[string]interface{}{
				"url":    s.DashboardURL(iso3, dashboardID),
				"height": s.height,
			},
			"country":      target,
			"iso3":         iso3,
			"dashboard_id": dashboardID,
		})
	}
	return hits, nil
}
