package config

import (
	"github.com/gcbaptista/geoquery/internal/persistence"
	"github.com/gcbaptista/geoquery/model"
)

// LoadTables reads the optional alias and keyword override file. An empty path
// returns empty tables, meaning every built-in table stays in effect.
func LoadTables(path string) (model.Tables, error) {
	var tables model.Tables
	if path == "" {
		return tables, nil
	}
	if err := persistence.LoadYAML(path, &tables); err != nil {
		return model.Tables{}, err
	}
	return tables, nil
}
