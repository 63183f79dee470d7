package search

import (
	"math"

	"github.com/gcbaptista/geoquery/index"
)

// BM25 parameters
const (
	bm25K1 = 1.2  // Controls term frequency saturation
	bm25B  = 0.75 // Controls how much effect document length has
)

// BM25Calculator handles BM25 score calculations over one inverted index.
type BM25Calculator struct {
	invertedIndex *index.InvertedIndex
}

// NewBM25Calculator creates a new BM25 calculator
func NewBM25Calculator(invIndex *index.InvertedIndex) *BM25Calculator {
	return &BM25Calculator{invertedIndex: invIndex}
}

// calculateIDF calculates the inverse document frequency
// IDF = ln(1 + (N - df + 0.5) / (df + 0.5)) where N = total documents, df = documents containing term.
// This form stays positive even for terms present in most documents.
func (calc *BM25Calculator) calculateIDF(term string) float64 {
	totalDocs := float64(calc.invertedIndex.TotalDocs())
	if totalDocs == 0 {
		return 0.0
	}

	docFreq := float64(calc.invertedIndex.DocumentFrequency(term))
	if docFreq == 0 {
		return 0.0
	}

	return math.Log(1 + (totalDocs-docFreq+0.5)/(docFreq+0.5))
}

// CalculateBM25 calculates the BM25 contribution of one term for one document
// BM25 = IDF * (tf * (k1 + 1)) / (tf + k1 * (1 - b + b * (|d| / avgdl)))
func (calc *BM25Calculator) CalculateBM25(term string, docID uint32, termFreq float64) float64 {
	if termFreq <= 0 || int(docID) >= calc.invertedIndex.TotalDocs() {
		return 0.0
	}

	idf := calc.calculateIDF(term)

	lengthRatio := 1.0
	if avg := calc.invertedIndex.AvgDocLength; avg > 0 {
		lengthRatio = float64(calc.invertedIndex.DocLengths[docID]) / avg
	}

	bm25TF := (termFreq * (bm25K1 + 1)) / (termFreq + bm25K1*(1-bm25B+bm25B*lengthRatio))
	return idf * bm25TF
}

// Scores returns the BM25 score of every document for the tokenized query,
// indexed by DocID. Repeated query tokens contribute once per occurrence.
func (calc *BM25Calculator) Scores(queryTokens []string) []float64 {
	scores := make([]float64, calc.invertedIndex.TotalDocs())
	for _, term := range queryTokens {
		for _, entry := range calc.invertedIndex.Index[term] {
			scores[entry.DocID] += calc.CalculateBM25(term, entry.DocID, entry.TermFreq)
		}
	}
	return scores
}
