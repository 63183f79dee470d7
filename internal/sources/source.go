// Package sources implements the legacy keyword-driven dispatch path. Each
// source declares whether it wants a query; every matching source runs, in
// ascending priority order, and their hits are concatenated.
package sources

import (
	"context"
	"sort"
	"strings"

	apperrors "github.com/gcbaptista/geoquery/internal/errors"
	"github.com/gcbaptista/geoquery/internal/targets"
	"github.com/gcbaptista/geoquery/model"
	"github.com/rs/zerolog/log"
)

// MatchFunc reports whether a source handles the lowercased query.
type MatchFunc func(query string) bool

// FetchFunc returns the hits of a source for the lowercased query and targets.
type FetchFunc func(ctx context.Context, query string, targets []string) ([]model.Document, error)

// Source is one pluggable data source. Lower priorities run first.
type Source struct {
	Name     string
	Priority int
	Matches  MatchFunc
	Fetch    FetchFunc
}

// Dispatcher runs the registered sources for a query.
type Dispatcher struct {
	extractor *targets.Extractor
	sources   []Source
}

// NewDispatcher orders sources by ascending priority. Sources with equal
// priority keep their registration order.
func NewDispatcher(extractor *targets.Extractor, sources ...Source) *Dispatcher {
	ordered := make([]Source, len(sources))
	copy(ordered, sources)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority < ordered[j].Priority
	})
	return &Dispatcher{extractor: extractor, sources: ordered}
}

// Sources returns the sources in execution order.
func (d *Dispatcher) Sources() []Source {
	out := make([]Source, len(d.sources))
	copy(out, d.sources)
	return out
}

// Run extracts targets from query and concatenates the hits of every
// matching source. A failing source is logged and skipped.
func (d *Dispatcher) Run(ctx context.Context, query string) model.DispatchResult {
	result := model.DispatchResult{
		Targets: d.extractor.ExtractTargets(query),
		Hits:    make([]model.Document, 0),
	}
	q := strings.ToLower(query)

	for _, source := range d.sources {
		if source.Matches == nil || !source.Matches(q) {
			log.Debug().Str("source", source.Name).Msg("source not matched")
			continue
		}

		hits, err := source.Fetch(ctx, q, result.Targets)
		if err != nil {
			log.Warn().Err(apperrors.NewSourceError(source.Name, err)).
				Int("priority", source.Priority).
				Msg("source fetch failed, continuing")
			continue
		}
		log.Debug().
			Str("source", source.Name).
			Int("priority", source.Priority).
			Int("hits", len(hits)).
			Msg("source fetched")
		result.Hits = append(result.Hits, hits...)
	}
	return result
}
