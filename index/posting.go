package index

// PostingEntry records that a term occurs in a document.
type PostingEntry struct {
	DocID    uint32  // Position of the document in its store
	TermFreq float64 // Occurrences of the term in the document's indexed text
}

// PostingList is a slice of PostingEntry, sorted by DocID ascending since
// documents are indexed in load order.
type PostingList []PostingEntry
