package handlers

import (
	"errors"
	"log"

	"boutique/internal/models"
	"boutique/internal/repositories"
	"boutique/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ArticleHandler handles HTTP requests for the catalog.
type ArticleHandler struct {
	articleService *services.ArticleService
	validate       *validator.Validate
}

// NewArticleHandler creates a new ArticleHandler.
func NewArticleHandler(articleService *services.ArticleService) *ArticleHandler {
	return &ArticleHandler{
		articleService: articleService,
		validate:       validator.New(),
	}
}

// RegisterRoutes registers the catalog routes. Reads are public;
// mutations require the admin role.
func (h *ArticleHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler, admin fiber.Handler) {
	router.Get("/api/articles", h.HandleGetArticles)
	router.Get("/api/articles/:id", h.HandleGetArticleByID)
	router.Post("/api/articles", auth, admin, h.HandleCreateArticle)
	router.Put("/api/articles/:id", auth, admin, h.HandleUpdateArticle)
	router.Delete("/api/articles/:id", auth, admin, h.HandleDeleteArticle)
}

// HandleGetArticles returns the full catalog, newest first.
func (h *ArticleHandler) HandleGetArticles(c *fiber.Ctx) error {
	articles, err := h.articleService.GetAllArticles()
	if err != nil {
		log.Printf("Error getting all articles: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Server error",
		})
	}
	return c.JSON(articles)
}

// HandleGetArticleByID returns a single article.
func (h *ArticleHandler) HandleGetArticleByID(c *fiber.Ctx) error {
	article, err := h.articleService.GetArticleByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Article not found",
			})
		}
		log.Printf("Error getting article %s: %v", c.Params("id"), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Server error",
		})
	}
	return c.JSON(article)
}

// HandleCreateArticle creates a new catalog entry. Admin only.
func (h *ArticleHandler) HandleCreateArticle(c *fiber.Ctx) error {
	var article models.Article
	if err := c.BodyParser(&article); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	if err := h.validate.Struct(article); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
		})
	}

	if err := h.articleService.CreateArticle(&article); err != nil {
		if errors.Is(err, services.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": err.Error(),
			})
		}
		log.Printf("Error creating article: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Server error",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(article)
}

// HandleUpdateArticle applies a partial update. A rejected update leaves
// the article unchanged. Admin only.
func (h *ArticleHandler) HandleUpdateArticle(c *fiber.Ctx) error {
	var update services.ArticleUpdate
	if err := c.BodyParser(&update); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	article, err := h.articleService.UpdateArticle(c.Params("id"), update)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": err.Error(),
			})
		}
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Article not found",
			})
		}
		log.Printf("Error updating article %s: %v", c.Params("id"), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Server error",
		})
	}
	return c.JSON(article)
}

// HandleDeleteArticle deletes a catalog entry. Admin only.
func (h *ArticleHandler) HandleDeleteArticle(c *fiber.Ctx) error {
	if err := h.articleService.DeleteArticle(c.Params("id")); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Article not found",
			})
		}
		log.Printf("Error deleting article %s: %v", c.Params("id"), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Server error",
		})
	}
	return c.JSON(fiber.Map{
		"message": "Article deleted successfully",
	})
}
