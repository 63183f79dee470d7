package rules

import (
	"fmt"
	"strings"

	"github.com/gcbaptista/geoquery/internal/tokenizer"
	"github.com/gcbaptista/geoquery/model"
)

// Engine evaluates an ordered list of keyword rules against query text.
// A rule matches when any of its keywords is a substring of the normalized
// query. Rule order is significant: FirstMatch returns the earliest rule.
// An Engine is immutable after construction and safe for concurrent use.
type Engine struct {
	rules []model.KeywordRule
}

// NewEngine validates the rules and returns an engine over normalized copies of them.
func NewEngine(rules []model.KeywordRule) (*Engine, error) {
	normalized := make([]model.KeywordRule, 0, len(rules))
	for index, rule := range rules {
		if err := validateRule(rule); err != nil {
			return nil, fmt.Errorf("rule %d: %w", index, err)
		}
		keywords := make([]string, 0, len(rule.Keywords))
		for _, keyword := range rule.Keywords {
			keywords = append(keywords, tokenizer.Normalize(keyword))
		}
		normalized = append(normalized, model.KeywordRule{ID: rule.ID, Name: rule.Name, Keywords: keywords})
	}
	return &Engine{rules: normalized}, nil
}

// MustNewEngine is NewEngine for built-in tables; it panics on invalid rules.
func MustNewEngine(rules []model.KeywordRule) *Engine {
	engine, err := NewEngine(rules)
	if err != nil {
		panic(err)
	}
	return engine
}

// Keywords builds a single-rule engine from a flat keyword set.
func Keywords(id string, keywords ...string) *Engine {
	return MustNewEngine([]model.KeywordRule{{ID: id, Keywords: keywords}})
}

// Rules returns a copy of the normalized rules in evaluation order.
func (e *Engine) Rules() []model.KeywordRule {
	out := make([]model.KeywordRule, len(e.rules))
	copy(out, e.rules)
	return out
}

// FirstMatch returns the first rule with a keyword contained in query.
func (e *Engine) FirstMatch(query string) (model.KeywordRule, bool) {
	q := tokenizer.Normalize(query)
	for _, rule := range e.rules {
		if ruleMatches(rule, q) {
			return rule, true
		}
	}
	return model.KeywordRule{}, false
}

// AnyMatch reports whether any rule matches query.
func (e *Engine) AnyMatch(query string) bool {
	_, ok := e.FirstMatch(query)
	return ok
}

// MatchedKeyword returns the first keyword of the first matching rule, for
// diagnostics.
func (e *Engine) MatchedKeyword(query string) (string, bool) {
	q := tokenizer.Normalize(query)
	for _, rule := range e.rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(q, keyword) {
				return keyword, true
			}
		}
	}
	return "", false
}

// ruleMatches evaluates a rule against an already normalized query
func ruleMatches(rule model.KeywordRule, normalizedQuery string) bool {
	for _, keyword := range rule.Keywords {
		if strings.Contains(normalizedQuery, keyword) {
			return true
		}
	}
	return false
}

// validateRule validates a rule's structure
func validateRule(rule model.KeywordRule) error {
	if strings.TrimSpace(rule.ID) == "" {
		return fmt.Errorf("rule id cannot be empty")
	}
	if len(rule.Keywords) == 0 {
		return fmt.Errorf("rule '%s' must have at least one keyword", rule.ID)
	}
	for index, keyword := range rule.Keywords {
		if strings.TrimSpace(keyword) == "" {
			return fmt.Errorf("rule '%s' keyword %d cannot be empty", rule.ID, index)
		}
	}
	return nil
}
