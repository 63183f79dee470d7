package handlers

import "github.com/gcbaptista/geoquery/model"

// formattedStringFields are copied into formatted hits, defaulting to "".
var formattedStringFields = []string{
	"title", "text", "section", "country", "region", "citation_path", "url", "source_csv", "updated_at",
}

// FormatHits normalizes hits to the response schema. images is always a list,
// _score defaults to 0 and placeholder is only present when set.
func FormatHits(hits []model.Document, intent string) []model.Document {
	formatted := make([]model.Document, 0, len(hits))
	for _, hit := range hits {
		out := make(model.Document, len(formattedStringFields)+4)
		for _, field := range formattedStringFields {
			value, _ := hit.GetString(field)
			out[field] = value
		}
		out["images"] = imageList(hit["images"])

		score, _ := hit.GetScore()
		out[model.ScoreField] = score
		out["intent"] = intent

		if placeholder, ok := hit["placeholder"].(bool); ok && placeholder {
			out["placeholder"] = true
		}
		formatted = append(formatted, out)
	}
	return formatted
}

func imageList(value interface{}) []interface{} {
	switch v := value.(type) {
	case nil:
		return []interface{}{}
	case []interface{}:
		return v
	case []string:
		images := make([]interface{}, len(v))
		for i, image := range v {
			images[i] = image
		}
		return images
	case string:
		if v == "" {
			return []interface{}{}
		}
		return []interface{}{v}
	default:
		return []interface{}{v}
	}
}
