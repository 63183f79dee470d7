package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/gcbaptista/geoquery/internal/errors"
)

// ListCollectionsHandler returns the stats of every registered collection.
func (api *API) ListCollectionsHandler(c *gin.Context) {
	stats := api.collections.Stats()
	c.JSON(http.StatusOK, gin.H{
		"collections": stats,
		"total":       len(stats),
	})
}

// GetCollectionHandler returns the settings and stats of one collection.
func (api *API) GetCollectionHandler(c *gin.Context) {
	name := c.Param("name")
	if result := ValidateCollectionName(name); result.HasErrors() {
		SendValidationError(c, result)
		return
	}

	collection, err := api.collections.Get(name)
	if err != nil {
		if errors.Is(err, apperrors.ErrCollectionNotFound) {
			SendCollectionNotFoundError(c, name)
			return
		}
		SendInternalError(c, "collection lookup", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"settings": collection.Settings(),
		"stats":    collection.Stats(),
	})
}
