package repository

import (
	"github.com/google/uuid"

	"masthead/internal/domain/entity"
)

type AuthorRepository interface {
	Create(author *entity.Author) error
	// Get returns (nil, nil) when the author is not stored.
	Get(id uuid.UUID) (*entity.Author, error)
	// List returns all authors in construction order.
	List() ([]*entity.Author, error)
	Count() (int, error)
}
