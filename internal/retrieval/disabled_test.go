package retrieval

import (
	"context"
	"testing"

	"github.com/gcbaptista/geoquery/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisabled(t *testing.T) {
	var retriever services.DenseRetriever = Disabled{}

	docs, err := retriever.Retrieve(context.Background(), "Saudi Arabia wildfires", []string{"saudi arabia"}, 5)
	require.NoError(t, err)
	assert.NotNil(t, docs)
	assert.Empty(t, docs)
	assert.False(t, retriever.Enabled())
}
