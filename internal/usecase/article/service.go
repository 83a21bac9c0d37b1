package article

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"masthead/internal/domain/entity"
	"masthead/internal/observability/metrics"
	"masthead/internal/repository"
)

// CreateInput represents the input parameters for creating a new article.
type CreateInput struct {
	AuthorID   uuid.UUID
	MagazineID uuid.UUID
	Title      string
}

// Service provides article management use cases.
// Metrics and Logger are optional.
type Service struct {
	Repo         repository.ArticleRepository
	AuthorRepo   repository.AuthorRepository
	MagazineRepo repository.MagazineRepository
	Metrics      metrics.CatalogMetrics
	Logger       *slog.Logger
}

// Create validates the input and stores a new article, registering it with its
// author and magazine. Endpoints are checked before the title, author first.
// Returns a ValidationError of KindType if an endpoint does not resolve and of
// KindRange if the title length is outside [5,50]. Nothing is stored on error.
func (s *Service) Create(in CreateInput) (*entity.Article, error) {
	if err := s.resolveAuthor(in.AuthorID); err != nil {
		return nil, err
	}
	if err := s.resolveMagazine(in.MagazineID); err != nil {
		return nil, err
	}

	art, err := entity.NewArticle(in.AuthorID, in.MagazineID, in.Title)
	if err != nil {
		return nil, s.reject(err)
	}

	if err := s.Repo.Create(art); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}
	s.refreshCount()

	s.logger().Debug("article created",
		slog.String("article_id", art.ID.String()),
		slog.String("author_id", art.AuthorID.String()),
		slog.String("magazine_id", art.MagazineID.String()))
	return art, nil
}

// Get retrieves a single article by its ID.
// Returns ErrInvalidArticleID for the nil UUID and ErrArticleNotFound if the article does not exist.
func (s *Service) Get(id uuid.UUID) (*entity.Article, error) {
	if id == uuid.Nil {
		return nil, ErrInvalidArticleID
	}
	art, err := s.Repo.Get(id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if art == nil {
		return nil, ErrArticleNotFound
	}
	return art, nil
}

// List returns every article ever created, in creation order.
func (s *Service) List() ([]*entity.Article, error) {
	arts, err := s.Repo.List()
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return arts, nil
}

// SetAuthor reassigns the article to another author. The article leaves the
// previous author's list and is appended to the new author's list.
// If authorID does not resolve to an Author, a KindType ValidationError is
// returned and the article keeps its current author.
func (s *Service) SetAuthor(articleID, authorID uuid.UUID) (*entity.Article, error) {
	current, err := s.Get(articleID)
	if err != nil {
		return nil, err
	}
	if err := s.resolveAuthor(authorID); err != nil {
		return nil, err
	}

	art, err := s.Repo.UpdateAuthor(articleID, authorID)
	if err != nil {
		return nil, fmt.Errorf("update article author: %w", err)
	}
	if current.AuthorID != authorID {
		s.metrics().RecordReassignment("author")
		s.logger().Debug("article author reassigned",
			slog.String("article_id", articleID.String()),
			slog.String("from", current.AuthorID.String()),
			slog.String("to", authorID.String()))
	}
	return art, nil
}

// SetMagazine reassigns the article to another magazine, symmetric to SetAuthor.
func (s *Service) SetMagazine(articleID, magazineID uuid.UUID) (*entity.Article, error) {
	current, err := s.Get(articleID)
	if err != nil {
		return nil, err
	}
	if err := s.resolveMagazine(magazineID); err != nil {
		return nil, err
	}

	art, err := s.Repo.UpdateMagazine(articleID, magazineID)
	if err != nil {
		return nil, fmt.Errorf("update article magazine: %w", err)
	}
	if current.MagazineID != magazineID {
		s.metrics().RecordReassignment("magazine")
		s.logger().Debug("article magazine reassigned",
			slog.String("article_id", articleID.String()),
			slog.String("from", current.MagazineID.String()),
			slog.String("to", magazineID.String()))
	}
	return art, nil
}

func (s *Service) resolveAuthor(id uuid.UUID) error {
	if id != uuid.Nil {
		a, err := s.AuthorRepo.Get(id)
		if err != nil {
			return fmt.Errorf("get author: %w", err)
		}
		if a != nil {
			return nil
		}
	}
	return s.reject(entity.TypeError("author", "must be an Author"))
}

func (s *Service) resolveMagazine(id uuid.UUID) error {
	if id != uuid.Nil {
		m, err := s.MagazineRepo.Get(id)
		if err != nil {
			return fmt.Errorf("get magazine: %w", err)
		}
		if m != nil {
			return nil
		}
	}
	return s.reject(entity.TypeError("magazine", "must be a Magazine"))
}

// reject records a validation failure and returns err unchanged.
func (s *Service) reject(err error) error {
	var ve *entity.ValidationError
	if errors.As(err, &ve) {
		s.metrics().RecordValidationFailure("article", ve.Field, ve.Kind.String())
		s.logger().Warn("article rejected",
			slog.String("field", ve.Field),
			slog.String("kind", ve.Kind.String()),
			slog.String("error", ve.Message))
	}
	return err
}

func (s *Service) refreshCount() {
	if n, err := s.Repo.Count(); err == nil {
		s.metrics().SetArticles(n)
	}
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
