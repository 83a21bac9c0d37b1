// Package memory implements the repository interfaces on top of a single
// in-process arena. Articles are stored once and referenced everywhere else by
// ID; per-author and per-magazine ordered ID lists answer membership queries
// without scanning the whole arena.
package memory

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"

	"masthead/internal/domain/entity"
	"masthead/internal/repository"
)

// ErrDuplicateID is returned when an entity with the same ID is already stored.
var ErrDuplicateID = errors.New("duplicate entity ID")

// Store holds every author, magazine and article of one catalog.
// A single RWMutex guards all collections so that article creation and
// reassignment update the arena and both association lists as one step.
type Store struct {
	mu sync.RWMutex

	authors     map[uuid.UUID]*entity.Author
	authorOrder []uuid.UUID

	magazines     map[uuid.UUID]*entity.Magazine
	magazineOrder []uuid.UUID

	articles     map[uuid.UUID]*entity.Article
	articleOrder []uuid.UUID

	byAuthor   map[uuid.UUID][]uuid.UUID
	byMagazine map[uuid.UUID][]uuid.UUID
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{
		authors:    make(map[uuid.UUID]*entity.Author),
		magazines:  make(map[uuid.UUID]*entity.Magazine),
		articles:   make(map[uuid.UUID]*entity.Article),
		byAuthor:   make(map[uuid.UUID][]uuid.UUID),
		byMagazine: make(map[uuid.UUID][]uuid.UUID),
	}
}

// Authors returns the author view of the store.
func (s *Store) Authors() repository.AuthorRepository { return (*AuthorRepo)(s) }

// Magazines returns the magazine view of the store.
func (s *Store) Magazines() repository.MagazineRepository { return (*MagazineRepo)(s) }

// Articles returns the article view of the store.
func (s *Store) Articles() repository.ArticleRepository { return (*ArticleRepo)(s) }

func (s *Store) idTaken(id uuid.UUID) bool {
	if _, ok := s.authors[id]; ok {
		return true
	}
	if _, ok := s.magazines[id]; ok {
		return true
	}
	_, ok := s.articles[id]
	return ok
}

func (s *Store) collect(ids []uuid.UUID) []*entity.Article {
	out := make([]*entity.Article, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.articles[id].Clone())
	}
	return out
}

// removeID returns ids without id, preserving order.
func removeID(ids []uuid.UUID, id uuid.UUID) []uuid.UUID {
	if i := slices.Index(ids, id); i >= 0 {
		return slices.Delete(ids, i, i+1)
	}
	return ids
}

func notFound(kind string, id uuid.UUID) error {
	return fmt.Errorf("%s %s: %w", kind, id, entity.ErrNotFound)
}
