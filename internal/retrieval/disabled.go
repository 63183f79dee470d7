// Package retrieval holds dense (semantic) retrieval backends.
package retrieval

import (
	"context"

	"github.com/gcbaptista/geoquery/model"
)

// Disabled is the retriever used when no embedding backend is configured.
// It implements services.DenseRetriever and never returns documents.
type Disabled struct{}

// Retrieve returns no documents.
func (Disabled) Retrieve(ctx context.Context, query string, targets []string, k int) ([]model.Document, error) {
	return make([]model.Document, 0), nil
}

// Enabled reports false.
func (Disabled) Enabled() bool {
	return false
}
