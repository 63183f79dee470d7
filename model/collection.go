package model

// CollectionStats describes one loaded collection.
type CollectionStats struct {
	Name          string   `json:"name"`
	Path          string   `json:"path"`
	IndexedFields []string `json:"indexed_fields"`
	DocumentCount int      `json:"document_count"`
	Indexed       bool     `json:"indexed"`
	Loaded        bool     `json:"loaded"` // false when the source file was absent or unreadable
}
