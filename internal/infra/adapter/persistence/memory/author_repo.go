package memory

import (
	"fmt"

	"github.com/google/uuid"

	"masthead/internal/domain/entity"
)

// AuthorRepo is the AuthorRepository view of a Store.
type AuthorRepo Store

func (repo *AuthorRepo) Create(author *entity.Author) error {
	s := (*Store)(repo)
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.idTaken(author.ID) {
		return fmt.Errorf("Create: author %s: %w", author.ID, ErrDuplicateID)
	}
	s.authors[author.ID] = author.Clone()
	s.authorOrder = append(s.authorOrder, author.ID)
	return nil
}

func (repo *AuthorRepo) Get(id uuid.UUID) (*entity.Author, error) {
	s := (*Store)(repo)
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.authors[id]
	if !ok {
		return nil, nil
	}
	return a.Clone(), nil
}

func (repo *AuthorRepo) List() ([]*entity.Author, error) {
	s := (*Store)(repo)
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entity.Author, 0, len(s.authorOrder))
	for _, id := range s.authorOrder {
		out = append(out, s.authors[id].Clone())
	}
	return out, nil
}

func (repo *AuthorRepo) Count() (int, error) {
	s := (*Store)(repo)
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.authors), nil
}
