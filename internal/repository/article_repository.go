package repository

import (
	"github.com/google/uuid"

	"masthead/internal/domain/entity"
)

// ArticleRepository is the authoritative article store. Every implementation keeps
// the per-author and per-magazine association lists consistent with the
// AuthorID/MagazineID of each stored article.
type ArticleRepository interface {
	// Create stores the article and appends it to the association lists of its
	// author and magazine. Returns an error wrapping entity.ErrNotFound if either
	// endpoint is not stored; in that case nothing changes.
	Create(article *entity.Article) error
	// Get returns (nil, nil) when the article is not stored.
	Get(id uuid.UUID) (*entity.Article, error)
	// List returns all articles in creation order.
	List() ([]*entity.Article, error)
	// ListByAuthor returns the author's articles in association order.
	ListByAuthor(authorID uuid.UUID) ([]*entity.Article, error)
	// ListByMagazine returns the magazine's articles in association order.
	ListByMagazine(magazineID uuid.UUID) ([]*entity.Article, error)
	// CountByMagazine returns the number of articles per magazine ID.
	CountByMagazine() (map[uuid.UUID]int, error)
	Count() (int, error)
	// UpdateAuthor moves the article from its current author's list to the end
	// of authorID's list. A no-op when authorID is already the article's author.
	UpdateAuthor(articleID, authorID uuid.UUID) (*entity.Article, error)
	// UpdateMagazine is the magazine counterpart of UpdateAuthor.
	UpdateMagazine(articleID, magazineID uuid.UUID) (*entity.Article, error)
}
