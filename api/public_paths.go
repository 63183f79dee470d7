package api

import (
	"strings"

	"github.com/gcbaptista/geoquery/model"
)

// PublicPaths rewrites data file paths carried by hits into URLs served under
// the public static prefix, e.g. "backend/data/images/x.png" becomes
// "/static-data/images/x.png".
type PublicPaths struct {
	DataPrefix   string
	PublicPrefix string
}

// Rewrite maps one path. Paths outside DataPrefix are returned unchanged.
func (p PublicPaths) Rewrite(path string) string {
	prefix := strings.TrimSuffix(p.DataPrefix, "/")
	if prefix == "" || !strings.HasPrefix(path, prefix) {
		return path
	}
	return strings.TrimSuffix(p.PublicPrefix, "/") + strings.TrimPrefix(path, prefix)
}

// RewriteHits returns copies of hits with images and citation_path rewritten.
// The input documents are not modified.
func (p PublicPaths) RewriteHits(hits []model.Document) []model.Document {
	out := make([]model.Document, 0, len(hits))
	for _, hit := range hits {
		rewritten := hit.Clone()
		if citation, ok := hit.GetString("citation_path"); ok {
			rewritten["citation_path"] = p.Rewrite(citation)
		}
		switch images := hit["images"].(type) {
		case string:
			rewritten["images"] = p.Rewrite(images)
		case []string:
			list := make([]string, len(images))
			for i, image := range images {
				list[i] = p.Rewrite(image)
			}
			rewritten["images"] = list
		case []interface{}:
			list := make([]interface{}, len(images))
			for i, image := range images {
				if s, ok := image.(string); ok {
					list[i] = p.Rewrite(s)
				} else {
					list[i] = image
				}
			}
			rewritten["images"] = list
		}
		out = append(out, rewritten)
	}
	return out
}
