package entity

import "github.com/google/uuid"

// Author represents a named party that writes articles.
// The name is fixed at construction; no operation renames an author.
type Author struct {
	ID   uuid.UUID
	Name string
}

// NewAuthor validates name and returns an Author with a fresh ID.
func NewAuthor(name string) (*Author, error) {
	if err := ValidateAuthorName(name); err != nil {
		return nil, err
	}
	return &Author{ID: uuid.New(), Name: name}, nil
}

// Clone returns a copy that shares no state with a.
func (a *Author) Clone() *Author {
	c := *a
	return &c
}
