package main

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/gcbaptista/geoquery/api"
	"github.com/gcbaptista/geoquery/config"
	"github.com/gcbaptista/geoquery/internal/analytics"
	"github.com/gcbaptista/geoquery/internal/dispatch"
	"github.com/gcbaptista/geoquery/internal/engine"
	"github.com/gcbaptista/geoquery/internal/handlers"
	"github.com/gcbaptista/geoquery/internal/retrieval"
	"github.com/gcbaptista/geoquery/internal/routing"
	"github.com/gcbaptista/geoquery/internal/sources"
	"github.com/gcbaptista/geoquery/internal/targets"
)

// app is the fully built, read-only object graph shared by every command.
type app struct {
	registry   *engine.Registry
	router     *routing.Router
	dispatcher *dispatch.Dispatcher
	sources    *sources.Dispatcher
	analytics  *analytics.Service
}

// buildApp loads every collection and wires the routing stack. It runs once
// before serving; nothing it builds is modified afterwards.
func buildApp(cfg config.Config) (*app, error) {
	tables, err := config.LoadTables(cfg.Tables.File)
	if err != nil {
		return nil, fmt.Errorf("failed to load tables: %w", err)
	}

	extractor, err := targets.NewExtractor(tables.Countries, tables.Regions)
	if err != nil {
		return nil, fmt.Errorf("invalid alias tables: %w", err)
	}
	router, err := routing.NewRouter(extractor, tables)
	if err != nil {
		return nil, err
	}

	registry, err := engine.NewRegistry(config.DefaultCollections(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to build collections: %w", err)
	}

	stats := analytics.NewService(registry)
	dispatcher := dispatch.New(router, handlers.New(registry),
		dispatch.WithDenseRetriever(retrieval.Disabled{}),
		dispatch.WithTracker(stats),
	)

	iframe, err := sources.NewProfilesIframeSource(extractor, sources.IframeOptions{
		Host:       cfg.Dashboards.Host,
		Height:     cfg.Dashboards.Height,
		DefaultID:  cfg.Dashboards.DefaultID,
		Dashboards: tables.Dashboards,
	})
	if err != nil {
		return nil, err
	}
	tabular := sources.NewTabularSource(registry, extractor)

	log.Info().
		Strs("collections", registry.List()).
		Int("countries", len(extractor.Countries())).
		Int("regions", len(extractor.Regions())).
		Msg("Query router ready")

	return &app{
		registry:   registry,
		router:     router,
		dispatcher: dispatcher,
		sources:    sources.NewDispatcher(extractor, tabular.Source(), iframe.Source()),
		analytics:  stats,
	}, nil
}

// apiDependencies exposes the app to the HTTP layer.
func (a *app) apiDependencies(cfg config.Config) api.Dependencies {
	return api.Dependencies{
		Dispatcher:  a.dispatcher,
		Sources:     a.sources,
		Collections: a.registry,
		Analytics:   a.analytics,
		PublicPaths: api.PublicPaths{
			DataPrefix:   cfg.Data.Dir,
			PublicPrefix: cfg.Data.PublicPrefix,
		},
		MaxQueryLength: cfg.Query.MaxLength,
	}
}
