package api

import (
	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/geoquery/internal/analytics"
	"github.com/gcbaptista/geoquery/internal/dispatch"
	"github.com/gcbaptista/geoquery/internal/sources"
	"github.com/gcbaptista/geoquery/services"
)

// DefaultMaxQueryLength applies when Dependencies.MaxQueryLength is unset.
const DefaultMaxQueryLength = 4000

// Dependencies are the services the HTTP layer is built from.
type Dependencies struct {
	Dispatcher     *dispatch.Dispatcher
	Sources        *sources.Dispatcher
	Collections    services.CollectionProvider
	Analytics      *analytics.Service
	PublicPaths    PublicPaths
	MaxQueryLength int
}

// API holds dependencies for API handlers.
type API struct {
	dispatcher     *dispatch.Dispatcher
	sources        *sources.Dispatcher
	collections    services.CollectionProvider
	analytics      *analytics.Service
	paths          PublicPaths
	maxQueryLength int
}

// NewAPI creates a new API handler structure. A nil Analytics gets a fresh
// service that only sees legacy dispatch events.
func NewAPI(deps Dependencies) *API {
	api := &API{
		dispatcher:     deps.Dispatcher,
		sources:        deps.Sources,
		collections:    deps.Collections,
		analytics:      deps.Analytics,
		paths:          deps.PublicPaths,
		maxQueryLength: deps.MaxQueryLength,
	}
	if api.analytics == nil {
		api.analytics = analytics.NewService(deps.Collections)
	}
	if api.maxQueryLength <= 0 {
		api.maxQueryLength = DefaultMaxQueryLength
	}
	return api
}

// SetupRoutes defines all the API routes of the query router.
func SetupRoutes(router *gin.Engine, deps Dependencies) *API {
	apiHandler := NewAPI(deps)

	// Health check route
	router.GET("/health", apiHandler.HealthCheckHandler)

	// Analytics route
	router.GET("/analytics", apiHandler.GetAnalyticsHandler)

	// Slot-driven query route
	router.GET("/query", apiHandler.QueryHandler)
	router.POST("/query", apiHandler.QueryHandler)

	apiRoutes := router.Group("/api")
	{
		apiRoutes.POST("/recognize", apiHandler.RecognizeHandler) // Route only, no retrieval
		apiRoutes.POST("/process", apiHandler.ProcessHandler)     // Classifier-driven dispatch
		apiRoutes.POST("/slots", apiHandler.SlotsHandler)         // Pre-resolved slot dispatch
		apiRoutes.POST("/dispatch", apiHandler.DispatchHandler)   // Legacy keyword source dispatch
	}

	collectionRoutes := router.Group("/collections")
	{
		collectionRoutes.GET("", apiHandler.ListCollectionsHandler)
		collectionRoutes.GET("/:name", apiHandler.GetCollectionHandler)
	}

	return apiHandler
}
