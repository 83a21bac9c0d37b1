package repository

import (
	"github.com/google/uuid"

	"masthead/internal/domain/entity"
)

type MagazineRepository interface {
	Create(magazine *entity.Magazine) error
	// Get returns (nil, nil) when the magazine is not stored.
	Get(id uuid.UUID) (*entity.Magazine, error)
	// List returns all magazines in construction order.
	List() ([]*entity.Magazine, error)
	// Update replaces the stored name and category. Associations are untouched.
	Update(magazine *entity.Magazine) error
	Count() (int, error)
}
