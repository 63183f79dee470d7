package search

// candidateHit represents a document candidate during search processing
type candidateHit struct {
	docID uint32
	score float64
}
