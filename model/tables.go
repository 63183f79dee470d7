package model

// CountryEntry is one row of the country alias table.
type CountryEntry struct {
	Key     string   `json:"key" yaml:"key"`             // canonical lowercase name, e.g. "saudi arabia"
	ISO3    string   `json:"iso3,omitempty" yaml:"iso3"` // e.g. "SAU"; empty when no code is defined
	Aliases []string `json:"aliases" yaml:"aliases"`     // lowercase surface forms, any script
}

// RegionEntry is one row of the region alias table.
type RegionEntry struct {
	Key     string   `json:"key" yaml:"key"` // e.g. "mena"; targets use the self-key "mena-mena"
	Aliases []string `json:"aliases" yaml:"aliases"`
}

// Tables holds the alias and keyword tables that drive routing. Empty sections
// fall back to the built-in tables of the consuming package.
type Tables struct {
	Countries           []CountryEntry `yaml:"countries"`
	Regions             []RegionEntry  `yaml:"regions"`
	CommitmentKeywords  []string       `yaml:"commitment_keywords"`
	LegislationKeywords []string       `yaml:"legislation_keywords"`
	SectionHints        []KeywordRule  `yaml:"section_hints"`
	Dashboards          []KeywordRule  `yaml:"dashboards"`
}
