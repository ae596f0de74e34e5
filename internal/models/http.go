// Package models defines the request and response data structures used
// for communication between the extension client and the bookmark API.
package models

import "github.com/recollect/recollect/internal/storage"

// SaveURLRequest is the body of POST /api/urls.
type SaveURLRequest struct {
	// URL is the address of the page being saved.
	URL string `json:"url"`

	// Title is the page title captured from the active tab.
	Title string `json:"title"`

	// FaviconURL optionally points at the page favicon. An invalid
	// value is dropped server-side rather than rejecting the request.
	FaviconURL string `json:"faviconUrl,omitempty"`
}

// SaveURLResponse is the 201 body of POST /api/urls.
type SaveURLResponse struct {
	ID         string `json:"id"`
	URL        string `json:"url"`
	Title      string `json:"title"`
	FaviconURL string `json:"faviconUrl,omitempty"`
	SavedAt    int64  `json:"savedAt"`
}

// ListURLsResponse is the 200 body of GET /api/urls.
type ListURLsResponse struct {
	// URLs is one page of saved bookmarks, newest first.
	URLs []storage.BookmarkRecord `json:"urls"`

	// HasMore reports whether the store holds data beyond this page.
	HasMore bool `json:"hasMore"`

	// LastKey is the opaque continuation token, present iff HasMore.
	LastKey string `json:"lastKey,omitempty"`
}

// ErrorResponse is the uniform error envelope for every failure.
type ErrorResponse struct {
	// Error is the category: BadRequest, Unauthorized or
	// InternalServerError.
	Error string `json:"error"`

	// Message is human-readable detail safe to show the caller.
	Message string `json:"message"`

	// StatusCode repeats the HTTP status code in the body.
	StatusCode int `json:"statusCode"`
}
