// Package dispatch turns a query into hits: it routes the query, runs the
// domain handler once per target and concatenates the per-target blocks.
package dispatch

import (
	"context"
	"fmt"
	"time"

	"github.com/gcbaptista/geoquery/internal/handlers"
	"github.com/gcbaptista/geoquery/internal/retrieval"
	"github.com/gcbaptista/geoquery/internal/routing"
	"github.com/gcbaptista/geoquery/model"
	"github.com/gcbaptista/geoquery/services"
	"github.com/rs/zerolog/log"
)

// UnknownCountry groups hits that carry no country tag.
const UnknownCountry = "unknown"

// denseK is the number of documents requested from an enabled dense retriever.
const denseK = handlers.ProfileK

// Dispatcher is the primary, classifier-driven entry point.
// It is safe for concurrent use once constructed.
type Dispatcher struct {
	router   *routing.Router
	handlers *handlers.Handlers
	dense    services.DenseRetriever
	tracker  services.RouteTracker
	now      func() time.Time
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithDenseRetriever sets the semantic retrieval backend. Its documents are
// appended after the lexical blocks when it is enabled.
func WithDenseRetriever(retriever services.DenseRetriever) Option {
	return func(d *Dispatcher) {
		if retriever != nil {
			d.dense = retriever
		}
	}
}

// WithTracker records every processed query.
func WithTracker(tracker services.RouteTracker) Option {
	return func(d *Dispatcher) {
		d.tracker = tracker
	}
}

// New creates a dispatcher.
func New(router *routing.Router, h *handlers.Handlers, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		router:   router,
		handlers: h,
		dense:    retrieval.Disabled{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Router returns the router used by Process.
func (d *Dispatcher) Router() *routing.Router {
	return d.router
}

// Process routes query and collects the hits of every target in target order.
// Domain classification and target extraction run independently.
func (d *Dispatcher) Process(ctx context.Context, query string) model.QueryResult {
	start := d.now()
	decision := d.router.Route(query)
	result := d.run(ctx, query, decision)
	d.track(model.EntryProcess, query, decision, result, start)
	return result
}

// ProcessSlots runs an already resolved decision, bypassing the classifier.
// query is the original text, used for analytics and dense retrieval only; it
// may be empty. An empty domain means country_profile and empty targets mean
// the fallback target.
func (d *Dispatcher) ProcessSlots(ctx context.Context, query string, slots model.Slots) model.QueryResult {
	start := d.now()
	decision := slots.Decision()
	if decision.Domain == "" {
		decision.Domain = model.DomainCountryProfile
	}
	result := d.run(ctx, query, decision)
	d.track(model.EntrySlots, query, decision, result, start)
	return result
}

func (d *Dispatcher) run(ctx context.Context, query string, decision model.RouteDecision) model.QueryResult {
	targets := decision.Targets
	if len(targets) == 0 {
		targets = []string{model.FallbackTarget}
	}

	hits := make([]model.Document, 0)
	for _, target := range targets {
		block, err := d.handleTarget(decision, target)
		if err != nil {
			log.Warn().Err(err).
				Str("target", target).
				Str("domain", string(decision.Domain)).
				Msg("handler failed, skipping target")
			continue
		}
		for _, hit := range block {
			hit.SetDefault("country", target)
		}
		hits = append(hits, block...)
	}

	if query != "" && d.dense.Enabled() {
		dense, err := d.dense.Retrieve(ctx, query, targets, denseK)
		if err != nil {
			log.Warn().Err(err).Msg("dense retrieval failed")
		} else {
			hits = append(hits, dense...)
		}
	}

	return model.QueryResult{
		Domain:  decision.Domain,
		Targets: targets,
		Hits:    hits,
	}
}

// handleTarget isolates one target so a failing handler only drops its own block.
func (d *Dispatcher) handleTarget(decision model.RouteDecision, target string) (hits []model.Document, err error) {
	defer func() {
		if r := recover(); r != nil {
			hits = nil
			err = fmt.Errorf("handler panic: %v", r)
		}
	}()
	return d.handlers.Handle(decision.Domain, target, decision.SectionHint)
}

func (d *Dispatcher) track(entry, query string, decision model.RouteDecision, result model.QueryResult, start time.Time) {
	if d.tracker == nil {
		return
	}
	d.tracker.TrackRoute(model.RouteEvent{
		Query:        query,
		Entry:        entry,
		Domain:       result.Domain,
		Targets:      result.Targets,
		SectionHint:  decision.SectionHint,
		HitCount:     len(result.Hits),
		ResponseTime: d.now().Sub(start),
		Timestamp:    start,
	})
}

// Group builds the by-country view of hits, keyed by each hit's country tag
// in order of first appearance. Hits keep their relative order within a group.
func Group(hits []model.Document) []model.HitGroup {
	groups := make([]model.HitGroup, 0)
	positions := make(map[string]int)
	for _, hit := range hits {
		country, ok := hit.GetString("country")
		if !ok {
			country = UnknownCountry
		}
		pos, seen := positions[country]
		if !seen {
			pos = len(groups)
			positions[country] = pos
			groups = append(groups, model.HitGroup{Country: country, Hits: make([]model.Document, 0, 1)})
		}
		groups[pos].Hits = append(groups[pos].Hits, hit)
	}
	return groups
}
