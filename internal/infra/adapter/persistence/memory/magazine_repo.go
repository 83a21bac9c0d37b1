package memory

import (
	"fmt"

	"github.com/google/uuid"

	"masthead/internal/domain/entity"
)

// MagazineRepo is the MagazineRepository view of a Store.
type MagazineRepo Store

func (repo *MagazineRepo) Create(magazine *entity.Magazine) error {
	s := (*Store)(repo)
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.idTaken(magazine.ID) {
		return fmt.Errorf("Create: magazine %s: %w", magazine.ID, ErrDuplicateID)
	}
	s.magazines[magazine.ID] = magazine.Clone()
	s.magazineOrder = append(s.magazineOrder, magazine.ID)
	return nil
}

func (repo *MagazineRepo) Get(id uuid.UUID) (*entity.Magazine, error) {
	s := (*Store)(repo)
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.magazines[id]
	if !ok {
		return nil, nil
	}
	return m.Clone(), nil
}

func (repo *MagazineRepo) List() ([]*entity.Magazine, error) {
	s := (*Store)(repo)
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entity.Magazine, 0, len(s.magazineOrder))
	for _, id := range s.magazineOrder {
		out = append(out, s.magazines[id].Clone())
	}
	return out, nil
}

func (repo *MagazineRepo) Update(magazine *entity.Magazine) error {
	s := (*Store)(repo)
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.magazines[magazine.ID]
	if !ok {
		return fmt.Errorf("Update: %w", notFound("magazine", magazine.ID))
	}
	stored.Name = magazine.Name
	stored.Category = magazine.Category
	return nil
}

func (repo *MagazineRepo) Count() (int, error) {
	s := (*Store)(repo)
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.magazines), nil
}
