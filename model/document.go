package model

import (
	"fmt"
	"strings"
)

// ScoreField is the key under which a query-time match score is attached.
// It is never persisted back to a collection.
const ScoreField = "_score"

// Document is a flexible map representing one line of a JSONL collection.
// There is no fixed schema; each collection chooses which fields it indexes.
// Example: doc["title"], doc["country"], doc["images"]
type Document map[string]interface{}

// GetString returns the field as a string if it is stored as a non-empty string.
func (d Document) GetString(field string) (string, bool) {
	if v, ok := d[field]; ok {
		if s, sok := v.(string); sok && s != "" {
			return s, true
		}
	}
	return "", false
}

// FieldText renders a field value as plain text for indexing.
// Strings are returned as-is, string lists are joined by spaces and other
// scalars are formatted with fmt. Missing or nil values yield "".
func (d Document) FieldText(field string) string {
	v, ok := d[field]
	if !ok || v == nil {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case []string:
		return strings.Join(val, " ")
	case []interface{}:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			if item == nil {
				continue
			}
			parts = append(parts, fmt.Sprint(item))
		}
		return strings.Join(parts, " ")
	case bool:
		if !val {
			return ""
		}
		return "true"
	default:
		return fmt.Sprint(val)
	}
}

// GetScore returns the attached match score, if any.
func (d Document) GetScore() (float64, bool) {
	if v, ok := d[ScoreField]; ok {
		if f, fok := v.(float64); fok {
			return f, true
		}
	}
	return 0, false
}

// Clone returns a shallow copy of the document. Slice values are shared,
// which is fine since loaded documents are never mutated.
func (d Document) Clone() Document {
	out := make(Document, len(d)+1)
	for k, v := range d {
		out[k] = v
	}
	return out
}

// WithScore returns a copy of the document carrying the given score.
func (d Document) WithScore(score float64) Document {
	out := d.Clone()
	out[ScoreField] = score
	return out
}

// SetDefault sets field to value only when the field is absent.
func (d Document) SetDefault(field string, value interface{}) {
	if _, exists := d[field]; !exists {
		d[field] = value
	}
}
