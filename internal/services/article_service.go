package services

import (
	"errors"
	"fmt"

	"boutique/internal/models"
	"boutique/internal/repositories"
)

// ErrValidation marks a rejected article payload (non-positive price,
// discount of 100 or more, unknown category).
var ErrValidation = errors.New("validation failed")

// ArticleUpdate carries the optional fields of a partial article update.
type ArticleUpdate struct {
	Name        *string  `json:"name"`
	Image       *string  `json:"image"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Quantity    *int     `json:"quantity"`
	Discount    *int     `json:"discount"`
}

// ArticleService handles business logic for the catalog.
type ArticleService struct {
	repo repositories.ArticleRepository
}

// NewArticleService creates a new ArticleService.
func NewArticleService(repo repositories.ArticleRepository) *ArticleService {
	return &ArticleService{
		repo: repo,
	}
}

// GetAllArticles retrieves all articles, newest first.
func (s *ArticleService) GetAllArticles() ([]models.Article, error) {
	return s.repo.GetAll()
}

// GetArticleByID retrieves a single article by its ID.
func (s *ArticleService) GetArticleByID(id string) (*models.Article, error) {
	return s.repo.GetByID(id)
}

// CreateArticle validates and creates a new article.
func (s *ArticleService) CreateArticle(article *models.Article) error {
	if err := checkArticleInvariants(article); err != nil {
		return err
	}
	return s.repo.Create(article)
}

// UpdateArticle applies a partial update to an article. A rejected update
// leaves the stored article unchanged.
func (s *ArticleService) UpdateArticle(id string, update ArticleUpdate) (*models.Article, error) {
	article, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		article.Name = *update.Name
	}
	if update.Image != nil {
		article.Image = *update.Image
	}
	if update.Price != nil {
		article.Price = *update.Price
	}
	if update.Description != nil {
		article.Description = *update.Description
	}
	if update.Category != nil {
		article.Category = *update.Category
	}
	if update.Quantity != nil {
		article.Quantity = *update.Quantity
	}
	if update.Discount != nil {
		article.Discount = *update.Discount
	}

	if err := checkArticleInvariants(article); err != nil {
		return nil, err
	}
	if err := s.repo.Update(article); err != nil {
		return nil, err
	}
	return article, nil
}

// DeleteArticle deletes an article by its ID.
func (s *ArticleService) DeleteArticle(id string) error {
	return s.repo.Delete(id)
}

func checkArticleInvariants(article *models.Article) error {
	if article.Price <= 0 {
		return fmt.Errorf("price must be positive: %w", ErrValidation)
	}
	if article.Discount < 0 || article.Discount >= 100 {
		return fmt.Errorf("discount must be between 0 and 99: %w", ErrValidation)
	}
	if article.Quantity < 0 {
		return fmt.Errorf("quantity cannot be negative: %w", ErrValidation)
	}
	switch article.Category {
	case models.CategoryClothing, models.CategoryManga, models.CategoryAccessories, models.CategoryDecoration:
	default:
		return fmt.Errorf("unknown category %q: %w", article.Category, ErrValidation)
	}
	return nil
}
