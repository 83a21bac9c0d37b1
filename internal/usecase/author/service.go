package author

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"masthead/internal/domain/entity"
	"masthead/internal/observability/metrics"
	"masthead/internal/repository"
	"masthead/internal/usecase/article"
)

// ArticleCreator creates articles. It is satisfied by *article.Service.
type ArticleCreator interface {
	Create(in article.CreateInput) (*entity.Article, error)
}

// Service provides author use cases.
// Metrics and Logger are optional.
type Service struct {
	Repo         repository.AuthorRepository
	MagazineRepo repository.MagazineRepository
	ArticleRepo  repository.ArticleRepository
	Creator      ArticleCreator
	Metrics      metrics.CatalogMetrics
	Logger       *slog.Logger
}

// Create validates name and stores a new author.
// Returns a KindRange ValidationError if name is empty.
func (s *Service) Create(name string) (*entity.Author, error) {
	a, err := entity.NewAuthor(name)
	if err != nil {
		return nil, s.reject(err)
	}
	if err := s.Repo.Create(a); err != nil {
		return nil, fmt.Errorf("create author: %w", err)
	}
	if n, err := s.Repo.Count(); err == nil {
		s.metrics().SetAuthors(n)
	}
	s.logger().Debug("author created", slog.String("author_id", a.ID.String()))
	return a, nil
}

// Get retrieves a single author by its ID.
func (s *Service) Get(id uuid.UUID) (*entity.Author, error) {
	if id == uuid.Nil {
		return nil, ErrInvalidAuthorID
	}
	a, err := s.Repo.Get(id)
	if err != nil {
		return nil, fmt.Errorf("get author: %w", err)
	}
	if a == nil {
		return nil, ErrAuthorNotFound
	}
	return a, nil
}

// List returns all authors in construction order.
func (s *Service) List() ([]*entity.Author, error) {
	authors, err := s.Repo.List()
	if err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}
	return authors, nil
}

// Articles returns the articles currently associated with the author.
func (s *Service) Articles(id uuid.UUID) ([]*entity.Article, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}
	arts, err := s.ArticleRepo.ListByAuthor(id)
	if err != nil {
		return nil, fmt.Errorf("list author articles: %w", err)
	}
	return arts, nil
}

// Magazines returns the distinct magazines the author has articles in,
// in order of first appearance. Empty when the author has no articles.
func (s *Service) Magazines(id uuid.UUID) ([]*entity.Magazine, error) {
	arts, err := s.Articles(id)
	if err != nil {
		return nil, err
	}

	seen := make(map[uuid.UUID]struct{}, len(arts))
	mags := make([]*entity.Magazine, 0, len(arts))
	for _, art := range arts {
		if _, ok := seen[art.MagazineID]; ok {
			continue
		}
		seen[art.MagazineID] = struct{}{}

		m, err := s.MagazineRepo.Get(art.MagazineID)
		if err != nil {
			return nil, fmt.Errorf("get magazine: %w", err)
		}
		if m == nil {
			return nil, fmt.Errorf("magazine %s: %w", art.MagazineID, entity.ErrNotFound)
		}
		mags = append(mags, m)
	}
	return mags, nil
}

// AddArticle creates an article written by the author for the given magazine.
// The magazine reference is checked before anything else; the remaining
// validation is that of article creation.
func (s *Service) AddArticle(id, magazineID uuid.UUID, title string) (*entity.Article, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}
	if magazineID == uuid.Nil {
		return nil, s.reject(entity.TypeError("magazine", "must be a Magazine"))
	}
	m, err := s.MagazineRepo.Get(magazineID)
	if err != nil {
		return nil, fmt.Errorf("get magazine: %w", err)
	}
	if m == nil {
		return nil, s.reject(entity.TypeError("magazine", "must be a Magazine"))
	}

	art, err := s.Creator.Create(article.CreateInput{AuthorID: id, MagazineID: magazineID, Title: title})
	if err != nil {
		return nil, fmt.Errorf("add article: %w", err)
	}
	return art, nil
}

// TopicAreas returns the distinct categories of the author's magazines in order
// of first appearance. ok is false when the author has no articles.
func (s *Service) TopicAreas(id uuid.UUID) (categories []string, ok bool, err error) {
	mags, err := s.Magazines(id)
	if err != nil {
		return nil, false, err
	}
	if len(mags) == 0 {
		return nil, false, nil
	}

	seen := make(map[string]struct{}, len(mags))
	for _, m := range mags {
		if _, dup := seen[m.Category]; dup {
			continue
		}
		seen[m.Category] = struct{}{}
		categories = append(categories, m.Category)
	}
	return categories, true, nil
}

// reject records a validation failure and returns err unchanged.
func (s *Service) reject(err error) error {
	var ve *entity.ValidationError
	if errors.As(err, &ve) {
		s.metrics().RecordValidationFailure("author", ve.Field, ve.Kind.String())
		s.logger().Warn("author input rejected",
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
