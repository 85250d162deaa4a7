package repositories

import (
	"fmt"
	"sort"
	"sync"

	"boutique/internal/models"

	"github.com/google/uuid"
)

// MockArticleRepository is an in-memory implementation of ArticleRepository.
type MockArticleRepository struct {
	articles map[string]models.Article
	mu       sync.RWMutex
}

// NewMockArticleRepository creates a new instance of MockArticleRepository.
func NewMockArticleRepository() *MockArticleRepository {
	return &MockArticleRepository{
		articles: make(map[string]models.Article),
	}
}

// GetAll returns all articles, newest first.
func (r *MockArticleRepository) GetAll() ([]models.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	articleList := make([]models.Article, 0, len(r.articles))
	for _, a := range r.articles {
		articleList = append(articleList, a)
	}
	sort.Slice(articleList, func(i, j int) bool {
		return articleList[i].CreatedAt.After(articleList[j].CreatedAt)
	})
	return articleList, nil
}

// GetByID returns an article by its ID.
func (r *MockArticleRepository) GetByID(id string) (*models.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	article, ok := r.articles[id]
	if !ok {
		return nil, fmt.Errorf("article with ID %s: %w", id, ErrNotFound)
	}
	return &article, nil
}

// Create adds a new article.
func (r *MockArticleRepository) Create(article *models.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if article.ID == "" {
		article.ID = uuid.New().String()
	}
	r.articles[article.ID] = *article
	return nil
}

// Update modifies an existing article.
func (r *MockArticleRepository) Update(article *models.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.articles[article.ID]; !ok {
		return fmt.Errorf("article with ID %s: %w", article.ID, ErrNotFound)
	}
	r.articles[article.ID] = *article
	return nil
}

// Delete removes an article by its ID.
func (r *MockArticleRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.articles[id]; !ok {
		return fmt.Errorf("article with ID %s: %w", id, ErrNotFound)
	}
	delete(r.articles, id)
	return nil
}
