package storage

// BookmarkRecord is one saved bookmark as persisted by every backend.
// The JSON tags double as the wire shape of list items, which is
// exactly how the record is stored in the document backends.
type BookmarkRecord struct {
	// ID is the server-generated UUID, the primary identity.
	ID string `json:"id"`

	Original   string `json:"url"`
	Title      string `json:"title"`
	FaviconURL string `json:"faviconUrl,omitempty"`

	// SavedAt is the creation time in epoch milliseconds, the sole
	// sort key (descending).
	SavedAt int64 `json:"savedAt"`

	// Tags and Notes are reserved fields. They are persisted but no
	// handler populates them yet.
	Tags  []string `json:"tags,omitempty"`
	Notes string   `json:"notes,omitempty"`
}

// PageKey is the natural key of the last record a scan returned. It
// names a position in the backend's own traversal order, which is not
// the savedAt order the API presents.
type PageKey struct {
	ID      string `json:"id"`
	SavedAt int64  `json:"savedAt"`
}

// ScanResult is one page of a scan.
type ScanResult struct {
	Records []BookmarkRecord

	// HasMore is true iff the backend holds records beyond this page.
	HasMore bool

	// LastKey resumes the scan after the final record of this page.
	// Set iff HasMore.
	LastKey *PageKey
}
