// Package article provides use cases for managing article entities.
// It implements construction and endpoint reassignment of articles, keeping the
// author and magazine association lists consistent through the article repository.
package article

import "errors"

// Sentinel errors for article use case operations.
var (
	// ErrArticleNotFound indicates that the requested article was not found.
	ErrArticleNotFound = errors.New("article not found")

	// ErrInvalidArticleID indicates that the provided article ID is the nil UUID.
	ErrInvalidArticleID = errors.New("invalid article ID")
)
