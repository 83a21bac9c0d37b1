// Package magazine provides use cases for magazines: construction, renaming and
// recategorizing, and the contributor and title queries over a magazine's articles.
package magazine

import "errors"

// Sentinel errors for magazine use case operations.
var (
	// ErrMagazineNotFound indicates that the requested magazine was not found.
	ErrMagazineNotFound = errors.New("magazine not found")

	// ErrInvalidMagazineID indicates that the provided magazine ID is the nil UUID.
	ErrInvalidMagazineID = errors.New("invalid magazine ID")
)
