package rules

import (
	"testing"

	"github.com/gcbaptista/geoquery/model"
)

func dashboardRules() []model.KeywordRule {
	return []model.KeywordRule{
		{ID: "37", Name: "oda", Keywords: []string{"oda", "official development assistance"}},
		{ID: "39", Name: "climate", Keywords: []string{"climate", "Temperature"}},
		{ID: "38", Name: "socio", Keywords: []string{"population", "socio"}},
	}
}

func TestNewEngine_Validation(t *testing.T) {
	tests := []struct {
		name    string
		rules   []model.KeywordRule
		wantErr bool
	}{
		{"valid rules", dashboardRules(), false},
		{"no rules", nil, false},
		{"empty id", []model.KeywordRule{{ID: " ", Keywords: []string{"x"}}}, true},
		{"no keywords", []model.KeywordRule{{ID: "a"}}, true},
		{"blank keyword", []model.KeywordRule{{ID: "a", Keywords: []string{"x", "  "}}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEngine(tt.rules)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewEngine() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFirstMatch(t *testing.T) {
	engine := MustNewEngine(dashboardRules())

	tests := []struct {
		name   string
		query  string
		wantID string
		wantOK bool
	}{
		{"first rule wins", "ODA flows and climate", "37", true},
		{"keywords are normalized", "  TEMPERATURE   change", "39", true},
		{"multi word keyword", "Official   Development Assistance", "37", true},
		{"substring match", "socioeconomics", "38", true},
		{"substring inside unrelated word", "pagoda tour", "37", true},
		{"no match", "land cover", "", false},
		{"empty query", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, ok := engine.FirstMatch(tt.query)
			if ok != tt.wantOK || rule.ID != tt.wantID {
				t.Errorf("FirstMatch(%q) = (%q, %v), want (%q, %v)", tt.query, rule.ID, ok, tt.wantID, tt.wantOK)
			}
		})
	}
}

func TestMatchedKeyword(t *testing.T) {
	engine := MustNewEngine(dashboardRules())

	if engine.AnyMatch("wetlands") {
		t.Error("Expected no match for wetlands")
	}

	keyword, ok := engine.MatchedKeyword("Temperature anomaly")
	if !ok || keyword != "temperature" {
		t.Errorf("Expected normalized keyword 'temperature', got %q", keyword)
	}

	if keyword, ok := engine.MatchedKeyword("wetlands"); ok || keyword != "" {
		t.Errorf("Expected no keyword for wetlands, got %q", keyword)
	}
}

func TestKeywords(t *testing.T) {
	legislation := Keywords("legislation", "law", "法规")

	if !legislation.AnyMatch("沙特法规") {
		t.Error("Expected CJK keyword to match inside unsegmented text")
	}
	if !legislation.AnyMatch("Saudi logging LAW 2020") {
		t.Error("Expected case-insensitive match")
	}
	if legislation.AnyMatch("land cover") {
		t.Error("Expected no match")
	}
}

func TestRules_ReturnsCopy(t *testing.T) {
	engine := MustNewEngine(dashboardRules())
	rules := engine.Rules()
	rules[0].ID = "changed"

	if engine.Rules()[0].ID != "37" {
		t.Error("Rules() must not expose internal state")
	}
}
