package memory

import (
	"fmt"

	"github.com/google/uuid"

	"masthead/internal/domain/entity"
)

// ArticleRepo is the ArticleRepository view of a Store.
type ArticleRepo Store

func (repo *ArticleRepo) Create(article *entity.Article) error {
	s := (*Store)(repo)
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.authors[article.AuthorID]; !ok {
		return fmt.Errorf("Create: %w", notFound("author", article.AuthorID))
	}
	if _, ok := s.magazines[article.MagazineID]; !ok {
		return fmt.Errorf("Create: %w", notFound("magazine", article.MagazineID))
	}
	if s.idTaken(article.ID) {
		return fmt.Errorf("Create: article %s: %w", article.ID, ErrDuplicateID)
	}

	s.articles[article.ID] = article.Clone()
	s.articleOrder = append(s.articleOrder, article.ID)
	s.byAuthor[article.AuthorID] = append(s.byAuthor[article.AuthorID], article.ID)
	s.byMagazine[article.MagazineID] = append(s.byMagazine[article.MagazineID], article.ID)
	return nil
}

func (repo *ArticleRepo) Get(id uuid.UUID) (*entity.Article, error) {
	s := (*Store)(repo)
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.articles[id]
	if !ok {
		return nil, nil
	}
	return a.Clone(), nil
}

func (repo *ArticleRepo) List() ([]*entity.Article, error) {
	s := (*Store)(repo)
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(s.articleOrder), nil
}

func (repo *ArticleRepo) ListByAuthor(authorID uuid.UUID) ([]*entity.Article, error) {
	s := (*Store)(repo)
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(s.byAuthor[authorID]), nil
}

func (repo *ArticleRepo) ListByMagazine(magazineID uuid.UUID) ([]*entity.Article, error) {
	s := (*Store)(repo)
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.collect(s.byMagazine[magazineID]), nil
}

func (repo *ArticleRepo) CountByMagazine() (map[uuid.UUID]int, error) {
	s := (*Store)(repo)
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[uuid.UUID]int, len(s.byMagazine))
	for id, ids := range s.byMagazine {
		if len(ids) > 0 {
			counts[id] = len(ids)
		}
	}
	return counts, nil
}

func (repo *ArticleRepo) Count() (int, error) {
	s := (*Store)(repo)
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.articles), nil
}

func (repo *ArticleRepo) UpdateAuthor(articleID, authorID uuid.UUID) (*entity.Article, error) {
	s := (*Store)(repo)
	s.mu.Lock()
	defer s.mu.Unlock()

	art, ok := s.articles[articleID]
	if !ok {
		return nil, fmt.Errorf("UpdateAuthor: %w", notFound("article", articleID))
	}
	if _, ok := s.authors[authorID]; !ok {
		return nil, fmt.Errorf("UpdateAuthor: %w", notFound("author", authorID))
	}
	if art.AuthorID != authorID {
		s.byAuthor[art.AuthorID] = removeID(s.byAuthor[art.AuthorID], articleID)
		s.byAuthor[authorID] = append(s.byAuthor[authorID], articleID)
		art.AuthorID = authorID
	}
	return art.Clone(), nil
}

func (repo *ArticleRepo) UpdateMagazine(articleID, magazineID uuid.UUID) (*entity.Article, error) {
	s := (*Store)(repo)
	s.mu.Lock()
	defer s.mu.Unlock()

	art, ok := s.articles[articleID]
	if !ok {
		return nil, fmt.Errorf("UpdateMagazine: %w", notFound("article", articleID))
	}
	if _, ok := s.magazines[magazineID]; !ok {
		return nil, fmt.Errorf("UpdateMagazine: %w", notFound("magazine", magazineID))
	}
	if art.MagazineID != magazineID {
		s.byMagazine[art.MagazineID] = removeID(s.byMagazine[art.MagazineID], articleID)
		s.byMagazine[magazineID] = append(s.byMagazine[magazineID], articleID)
		art.MagazineID = magazineID
	}
	return art.Clone(), nil
}
