// Package entity defines the core domain entities and validation logic for the application.
// It contains Author, Magazine and the Article join entity, along with
// their validation rules and domain-specific errors.
package entity

import "github.com/google/uuid"

// Article links exactly one Author to exactly one Magazine and carries a title.
// Endpoints are held by ID; the title never changes after construction.
type Article struct {
	ID         uuid.UUID
	AuthorID   uuid.UUID
	MagazineID uuid.UUID
	Title      string
}

// NewArticle validates the title and endpoint references and returns an Article
// with a fresh ID. It only checks that the references are set; resolving them
// to actual entities is the store's job.
func NewArticle(authorID, magazineID uuid.UUID, title string) (*Article, error) {
	if authorID == uuid.Nil {
		return nil, TypeError("author", "must be an Author")
	}
	if magazineID == uuid.Nil {
		return nil, TypeError("magazine", "must be a Magazine")
	}
	if err := ValidateTitle(title); err != nil {
		return nil, err
	}
	return &Article{
		ID:         uuid.New(),
		AuthorID:   authorID,
		MagazineID: magazineID,
		Title:      title,
	}, nil
}

// Clone returns a copy that shares no state with a.
func (a *Article) Clone() *Article {
	c := *a
	return &c
}
