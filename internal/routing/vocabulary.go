package routing

import "github.com/gcbaptista/geoquery/model"

// DefaultCommitmentKeywords select the commitment domain. They are checked
// before the legislation keywords.
var DefaultCommitmentKeywords = []string{
	"commitment", "pledge", "ndc", "target", "sdg commitment", "承诺", "restore", "restoration",
}

// DefaultLegislationKeywords select the legislation domain.
var DefaultLegislationKeywords = []string{
	"legislation", "law", "act", "decree", "条例", "法律", "法规", "regulation", "细则",
}

// DefaultSectionHints map topic keywords to "top/sub" profile sections.
// The first rule with a matching keyword wins.
var DefaultSectionHints = []model.KeywordRule{
	{ID: "current_state/land_status", Keywords: []string{"land cover", "wetlands", "esa 2021"}},
	{ID: "current_state/socio_prod", Keywords: []string{"agricultural production", "production index", "international usd"}},
	{ID: "current_state/socio_wealth", Keywords: []string{"total wealth", "renewable natural capital", "nonrenewable", "share of global wealth"}},

	{ID: "stressors/fires", Keywords: []string{"active fires", "fires density", "fires trends", "wildfire", "fire"}},
	{ID: "stressors/climate_hazards", Keywords: []string{"drought", "inform risk", "hazard"}},
	{ID: "stressors/socio_agri", Keywords: []string{"livestock", "cereals", "area harvested", "yield", "pesticides", "nutrients", "nitrogen surplus", "budget kg/ha"}},

	{ID: "trends/climate", Keywords: []string{"temperature anomaly", "precipitation anomaly", "1991-2020", "climate trend"}},
	{ID: "trends/land", Keywords: []string{"land cover trends", "wildfires (1000 ha)", "forest area change", "forest land - share", "land degradation"}},
	{ID: "trends/socio", Keywords: []string{"population", "urban", "rural", "exports of wood", "gdp", "agriculture value"}},

	{ID: "impacts/food_health", Keywords: []string{"land productivity", "food insecure", "food index per capita", "food supply variability", "undernourishment", "wasting"}},
	{ID: "impacts/land_status", Keywords: []string{"ecological footprint", "biocapacity", "consumption trend"}},
	{ID: "impacts/climate_related", Keywords: []string{"fatalities", "disasters", "human displacements", "average annual loss"}},
}
