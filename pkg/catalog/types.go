package catalog

import (
	"masthead/internal/config"
	"masthead/internal/domain/entity"
	"masthead/internal/usecase/article"
	"masthead/internal/usecase/author"
	"masthead/internal/usecase/magazine"
)

// Entity and input types returned and accepted by the catalog services.
type (
	Author          = entity.Author
	Magazine        = entity.Magazine
	Article         = entity.Article
	ArticleInput    = article.CreateInput
	ValidationError = entity.ValidationError
	Kind            = entity.Kind
	Config          = config.CatalogConfig
)

// Validation kinds carried by ValidationError.
const (
	KindRange = entity.KindRange
	KindType  = entity.KindType
)

// Errors for use with errors.Is.
var (
	ErrOutOfRange   = entity.ErrOutOfRange
	ErrTypeMismatch = entity.ErrTypeMismatch
	ErrNotFound     = entity.ErrNotFound

	ErrAuthorNotFound   = author.ErrAuthorNotFound
	ErrMagazineNotFound = magazine.ErrMagazineNotFound
	ErrArticleNotFound  = article.ErrArticleNotFound
)

// DefaultConfig returns the configuration New uses for a nil Config.
func DefaultConfig() *Config {
	return config.DefaultCatalogConfig()
}
