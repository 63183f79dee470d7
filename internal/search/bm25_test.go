package search

import (
	"testing"

	"github.com/gcbaptista/geoquery/config"
	"github.com/gcbaptista/geoquery/index"
	"github.com/gcbaptista/geoquery/model"
	"github.com/gcbaptista/geoquery/store"
)

func TestBM25Calculator(t *testing.T) {
	settings := &config.CollectionSettings{
		Name:          "test_bm25",
		IndexedFields: []string{"title", "description"},
	}

	docs := []model.Document{
		{
			"title":       "The quick brown fox", // 4 tokens
			"description": "A story about a fox", // 5 tokens (total: 9)
		},
		{
			"title":       "The brown dog",                                           // 3 tokens
			"description": "A very long story about a dog and fox with many details", // 12 tokens (total: 15)
		},
		{
			"title":       "Quick reference guide",       // 3 tokens
			"description": "A guide for quick reference", // 5 tokens (total: 8)
		},
	}

	invertedIndex := index.Build(store.NewDocumentStore(docs), settings)
	bm25Calc := NewBM25Calculator(invertedIndex)

	t.Run("IDF calculation", func(t *testing.T) {
		// "fox" appears in 2 documents, "dog" in 1
		foxIDF := bm25Calc.calculateIDF("fox")
		dogIDF := bm25Calc.calculateIDF("dog")

		if foxIDF <= 0 || dogIDF <= 0 {
			t.Errorf("Expected positive IDF values, got fox=%f dog=%f", foxIDF, dogIDF)
		}
		if dogIDF <= foxIDF {
			t.Errorf("Expected rarer term to have higher IDF, got dog=%f fox=%f", dogIDF, foxIDF)
		}

		// "a" appears in every document and must still be positive
		if idf := bm25Calc.calculateIDF("a"); idf <= 0 {
			t.Errorf("Expected positive IDF for a term in every document, got %f", idf)
		}

		if idf := bm25Calc.calculateIDF("nonexistent"); idf != 0 {
			t.Errorf("Expected IDF 0 for unknown term, got %f", idf)
		}
	})

	t.Run("document length normalization", func(t *testing.T) {
		// Same term frequency: the shorter document scores higher
		shortScore := bm25Calc.CalculateBM25("brown", 0, 1) // 9 tokens
		longScore := bm25Calc.CalculateBM25("brown", 1, 1)  // 15 tokens

		if shortScore <= longScore {
			t.Errorf("Expected shorter document to score higher, got short=%f long=%f", shortScore, longScore)
		}
	})

	t.Run("term frequency saturation", func(t *testing.T) {
		once := bm25Calc.CalculateBM25("quick", 2, 1)
		twice := bm25Calc.CalculateBM25("quick", 2, 2)
		many := bm25Calc.CalculateBM25("quick", 2, 50)

		if twice <= once {
			t.Errorf("Expected higher tf to score higher, got once=%f twice=%f", once, twice)
		}
		upperBound := bm25Calc.calculateIDF("quick") * (bm25K1 + 1)
		if many >= upperBound {
			t.Errorf("Expected saturation below %f, got %f", upperBound, many)
		}
	})

	t.Run("out of range document", func(t *testing.T) {
		if score := bm25Calc.CalculateBM25("fox", 99, 1); score != 0 {
			t.Errorf("Expected 0 for unknown document, got %f", score)
		}
	})

	t.Run("scores per document", func(t *testing.T) {
		scores := bm25Calc.Scores([]string{"guide", "reference"})
		if len(scores) != 3 {
			t.Fatalf("Expected 3 scores, got %d", len(scores))
		}
		if scores[0] != 0 || scores[1] != 0 {
			t.Errorf("Expected non-matching documents to score 0, got %v", scores)
		}
		if scores[2] <= 0 {
			t.Errorf("Expected matching document to score above 0, got %f", scores[2])
		}
	})
}
