package magazine

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"masthead/internal/domain/entity"
	"masthead/internal/observability/metrics"
	"masthead/internal/repository"
)

// ContributorThreshold is the article count an author must exceed in one
// magazine to be returned by ContributingAuthors.
const ContributorThreshold = 2

// Service provides magazine use cases.
// Metrics and Logger are optional.
type Service struct {
	Repo        repository.MagazineRepository
	AuthorRepo  repository.AuthorRepository
	ArticleRepo repository.ArticleRepository
	Metrics     metrics.CatalogMetrics
	Logger      *slog.Logger
}

// Create validates name and category and stores a new magazine.
func (s *Service) Create(name, category string) (*entity.Magazine, error) {
	m, err := entity.NewMagazine(name, category)
	if err != nil {
		return nil, s.reject(err)
	}
	if err := s.Repo.Create(m); err != nil {
		return nil, fmt.Errorf("create magazine: %w", err)
	}
	if n, err := s.Repo.Count(); err == nil {
		s.metrics().SetMagazines(n)
	}
	s.logger().Debug("magazine created",
		slog.String("magazine_id", m.ID.String()),
		slog.String("category", m.Category))
	return m, nil
}

// Get retrieves a single magazine by its ID.
func (s *Service) Get(id uuid.UUID) (*entity.Magazine, error) {
	if id == uuid.Nil {
		return nil, ErrInvalidMagazineID
	}
	m, err := s.Repo.Get(id)
	if err != nil {
		return nil, fmt.Errorf("get magazine: %w", err)
	}
	if m == nil {
		return nil, ErrMagazineNotFound
	}
	return m, nil
}

// List returns all magazines in construction order.
func (s *Service) List() ([]*entity.Magazine, error) {
	mags, err := s.Repo.List()
	if err != nil {
		return nil, fmt.Errorf("list magazines: %w", err)
	}
	return mags, nil
}

// Rename changes the magazine name. Returns a KindRange ValidationError and
// leaves the magazine unchanged if name is not 2 to 16 characters long.
func (s *Service) Rename(id uuid.UUID, name string) (*entity.Magazine, error) {
	m, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := entity.ValidateMagazineName(name); err != nil {
		return nil, s.reject(err)
	}
	m.Name = name
	if err := s.Repo.Update(m); err != nil {
		return nil, fmt.Errorf("update magazine: %w", err)
	}
	return m, nil
}

// SetCategory changes the magazine category. Topic areas of authors are
// derived live, so they reflect the new category immediately.
func (s *Service) SetCategory(id uuid.UUID, category string) (*entity.Magazine, error) {
	m, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := entity.ValidateCategory(category); err != nil {
		return nil, s.reject(err)
	}
	m.Category = category
	if err := s.Repo.Update(m); err != nil {
		return nil, fmt.Errorf("update magazine: %w", err)
	}
	return m, nil
}

// Articles returns the articles currently associated with the magazine.
func (s *Service) Articles(id uuid.UUID) ([]*entity.Article, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}
	arts, err := s.ArticleRepo.ListByMagazine(id)
	if err != nil {
		return nil, fmt.Errorf("list magazine articles: %w", err)
	}
	return arts, nil
}

// Contributors returns the distinct authors of the magazine's articles in
// order of first appearance. Empty when the magazine has no articles.
func (s *Service) Contributors(id uuid.UUID) ([]*entity.Author, error) {
	arts, err := s.Articles(id)
	if err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, 0, len(arts))
	seen := make(map[uuid.UUID]struct{}, len(arts))
	for _, art := range arts {
		if _, ok := seen[art.AuthorID]; ok {
			continue
		}
		seen[art.AuthorID] = struct{}{}
		ids = append(ids, art.AuthorID)
	}
	return s.authors(ids)
}

// ArticleTitles returns the titles of the magazine's articles in association
// order. ok is false when the magazine has no articles.
func (s *Service) ArticleTitles(id uuid.UUID) (titles []string, ok bool, err error) {
	arts, err := s.Articles(id)
	if err != nil {
		return nil, false, err
	}
	if len(arts) == 0 {
		return nil, false, nil
	}
	titles = make([]string, 0, len(arts))
	for _, art := range arts {
		titles = append(titles, art.Title)
	}
	return titles, true, nil
}

// ContributingAuthors returns the authors with more than ContributorThreshold
// articles in the magazine, in order of first appearance. ok is false both when
// the magazine has no articles and when no author passes the threshold.
func (s *Service) ContributingAuthors(id uuid.UUID) (authors []*entity.Author, ok bool, err error) {
	arts, err := s.Articles(id)
	if err != nil {
		return nil, false, err
	}
	if len(arts) == 0 {
		return nil, false, nil
	}

	var order []uuid.UUID
	counts := make(map[uuid.UUID]int)
	for _, art := range arts {
		if counts[art.AuthorID] == 0 {
			order = append(order, art.AuthorID)
		}
		counts[art.AuthorID]++
	}

	var ids []uuid.UUID
	for _, authorID := range order {
		if counts[authorID] > ContributorThreshold {
			ids = append(ids, authorID)
		}
	}
	if len(ids) == 0 {
		return nil, false, nil
	}

	authors, err = s.authors(ids)
	if err != nil {
		return nil, false, err
	}
	return authors, true, nil
}

// TopPublisher returns the magazine with the most articles across the whole
// catalog. Ties go to the magazine constructed first. ok is false when no
// article exists, even if magazines do.
func (s *Service) TopPublisher() (top *entity.Magazine, ok bool, err error) {
	total, err := s.ArticleRepo.Count()
	if err != nil {
		return nil, false, fmt.Errorf("count articles: %w", err)
	}
	if total == 0 {
		return nil, false, nil
	}

	counts, err := s.ArticleRepo.CountByMagazine()
	if err != nil {
		return nil, false, fmt.Errorf("count articles by magazine: %w", err)
	}
	mags, err := s.List()
	if err != nil {
		return nil, false, err
	}

	best := -1
	for _, m := range mags {
		if n := counts[m.ID]; n > best {
			top, best = m, n
		}
	}
	return top, top != nil, nil
}

func (s *Service) authors(ids []uuid.UUID) ([]*entity.Author, error) {
	out := make([]*entity.Author, 0, len(ids))
	for _, id := range ids {
		a, err := s.AuthorRepo.Get(id)
		if err != nil {
			return nil, fmt.Errorf("get author: %w", err)
		}
		if a == nil {
			return nil, fmt.Errorf("author %s: %w", id, entity.ErrNotFound)
		}
		out = append(out, a)
	}
	return out, nil
}

// reject records a validation failure and returns err unchanged.
func (s *Service) reject(err error) error {
	var ve *entity.ValidationError
	if errors.As(err, &ve) {
		s.metrics().RecordValidationFailure("magazine", ve.Field, ve.Kind.String())
		s.logger().Warn("magazine input rejected",
			slog.String("field", ve.Field),
			slog.String("kind", ve.Kind.String()),
			slog.String("error", ve.Message))
	}
	return err
}

func (s *Service) metrics() metrics.CatalogMetrics {
	if s.Metrics == nil {
		return metrics.NoOpMetrics{}
	}
	return s.Metrics
}

func (s *Service) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}
