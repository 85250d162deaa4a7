package repositories

import "boutique/internal/models"

// ArticleRepository defines the interface for catalog data access.
// GetAll returns articles newest-first by creation time.
type ArticleRepository interface {
	GetAll() ([]models.Article, error)
	GetByID(id string) (*models.Article, error)
	Create(article *models.Article) error
	Update(article *models.Article) error
	Delete(id string) error
}
