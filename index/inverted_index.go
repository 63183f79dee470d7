package index

import (
	"github.com/gcbaptista/geoquery/config"
	"github.com/gcbaptista/geoquery/internal/tokenizer"
	"github.com/gcbaptista/geoquery/store"
)

// InvertedIndex maps a term (token) to the documents containing it, together
// with the per-document lengths needed for length normalization.
//
// It is built in full from a DocumentStore and is read-only afterwards: DocLengths
// has exactly one entry per stored document, so positions correspond 1:1.
type InvertedIndex struct {
	Index        map[string]PostingList
	DocLengths   []int   // Token count per document, by DocID
	AvgDocLength float64 // Mean of DocLengths
	Settings     *config.CollectionSettings
}

// Build tokenizes the indexed fields of every document in docStore and returns
// the resulting index. Documents without indexed text keep their position with
// length zero and can never score above zero.
func Build(docStore *store.DocumentStore, settings *config.CollectionSettings) *InvertedIndex {
	ii := &InvertedIndex{
		Index:      make(map[string]PostingList),
		DocLengths: make([]int, docStore.Len()),
		Settings:   settings,
	}

	totalLength := 0
	for i := 0; i < docStore.Len(); i++ {
		docID := uint32(i)
		tokens := tokenizer.Tokenize(docStore.FieldText(docID, settings.IndexedFields))
		ii.DocLengths[i] = len(tokens)
		totalLength += len(tokens)

		for term, freq := range tokenizer.TermFrequencies(tokens) {
			ii.Index[term] = append(ii.Index[term], PostingEntry{DocID: docID, TermFreq: float64(freq)})
		}
	}

	if len(ii.DocLengths) > 0 {
		ii.AvgDocLength = float64(totalLength) / float64(len(ii.DocLengths))
	}
	return ii
}

// TotalDocs returns the number of indexed document positions.
func (ii *InvertedIndex) TotalDocs() int {
	return len(ii.DocLengths)
}

// DocumentFrequency returns the number of documents that contain the term.
func (ii *InvertedIndex) DocumentFrequency(term string) int {
	return len(ii.Index[term])
}

// Empty reports whether no document contributed any token. Searches against an
// empty index return no results.
func (ii *InvertedIndex) Empty() bool {
	return len(ii.Index) == 0
}
