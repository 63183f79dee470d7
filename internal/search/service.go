package search

import (
	"fmt"
	"sort"

	"github.com/gcbaptista/geoquery/config"
	"github.com/gcbaptista/geoquery/index"
	"github.com/gcbaptista/geoquery/internal/tokenizer"
	"github.com/gcbaptista/geoquery/model"
	"github.com/gcbaptista/geoquery/store"
)

// Service implements ranked search for a single collection.
// It holds no mutable state and is safe for concurrent use once built.
type Service struct {
	invertedIndex *index.InvertedIndex
	documentStore *store.DocumentStore
	settings      *config.CollectionSettings
	bm25          *BM25Calculator
}

// NewService creates a new search Service.
func NewService(invIndex *index.InvertedIndex, docStore *store.DocumentStore, settings *config.CollectionSettings) (*Service, error) {
	if invIndex == nil {
		return nil, fmt.Errorf("inverted index cannot be nil")
	}
	if docStore == nil {
		return nil, fmt.Errorf("document store cannot be nil")
	}
	if settings == nil {
		return nil, fmt.Errorf("settings cannot be nil")
	}
	if invIndex.TotalDocs() != docStore.Len() {
		return nil, fmt.Errorf("index has %d documents but store has %d", invIndex.TotalDocs(), docStore.Len())
	}

	return &Service{
		invertedIndex: invIndex,
		documentStore: docStore,
		settings:      settings,
		bm25:          NewBM25Calculator(invIndex),
	}, nil
}

// Search returns up to k documents ranked by BM25 score against query, best first.
// Each result is a copy of the stored document carrying its score under
// model.ScoreField. Ties keep load order. An empty tokenized query, an empty
// index or k <= 0 yield an empty list.
func (s *Service) Search(query string, k int) []model.Document {
	results := make([]model.Document, 0)
	if k <= 0 || s.invertedIndex.Empty() {
		return results
	}

	queryTokens := tokenizer.Tokenize(query)
	if len(queryTokens) == 0 {
		return results
	}

	scores := s.bm25.Scores(queryTokens)

	candidates := make([]candidateHit, 0, len(scores))
	for i, score := range scores {
		if score <= 0 && !s.settings.IncludeZeroScores {
			continue
		}
		candidates = append(candidates, candidateHit{docID: uint32(i), score: score})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if len(candidates) > k {
		candidates = candidates[:k]
	}

	for _, candidate := range candidates {
		doc, ok := s.documentStore.Get(candidate.docID)
		if !ok {
			continue
		}
		results = append(results, doc.WithScore(candidate.score))
	}
	return results
}
