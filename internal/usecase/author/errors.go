// Package author provides use cases for authors: construction, the articles and
// magazines an author is associated with, and the topic areas derived from them.
package author

import "errors"

// Sentinel errors for author use case operations.
var (
	// ErrAuthorNotFound indicates that the requested author was not found.
	ErrAuthorNotFound = errors.New("author not found")

	// ErrInvalidAuthorID indicates that the provided author ID is the nil UUID.
	ErrInvalidAuthorID = errors.New("invalid author ID")
)
