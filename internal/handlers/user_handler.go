package handlers

import (
	"errors"
	"log"

	"boutique/internal/middleware"
	"boutique/internal/repositories"
	"boutique/internal/services"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles profile self-service and admin account management.
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// RegisterRoutes registers the account routes. /api/user operates on the
// caller's own account; /api/users is the admin management surface.
func (h *UserHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler, admin fiber.Handler) {
	router.Get("/api/user", auth, h.HandleGetProfile)
	router.Put("/api/user", auth, h.HandleUpdateProfile)
	router.Delete("/api/user", auth, h.HandleDeleteProfile)

	router.Get("/api/users", auth, admin, h.HandleListAccounts)
	router.Put("/api/users/:id", auth, admin, h.HandleUpdateAccount)
	router.Delete("/api/users/:id", auth, admin, h.HandleDeleteAccount)
}

// HandleGetProfile returns the caller's account without the password.
func (h *UserHandler) HandleGetProfile(c *fiber.Ctx) error {
	user, err := h.userService.GetProfile(middleware.AccountID(c))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "User not found.",
			})
		}
		log.Printf("Error fetching profile: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Server error.",
		})
	}
	return c.JSON(user)
}

// HandleUpdateProfile applies a partial update to the caller's account.
func (h *UserHandler) HandleUpdateProfile(c *fiber.Ctx) error {
	var update services.AccountUpdate
	if err := c.BodyParser(&update); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	user, err := h.userService.UpdateProfile(middleware.AccountID(c), update)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "User not found.",
			})
		}
		log.Printf("Error updating profile: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Server error.",
		})
	}
	return c.JSON(user)
}

// HandleDeleteProfile hard-deletes the caller's account.
func (h *UserHandler) HandleDeleteProfile(c *fiber.Ctx) error {
	if err := h.userService.DeleteAccount(middleware.AccountID(c)); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "User not found.",
			})
		}
		log.Printf("Error deleting account: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Server error.",
		})
	}
	return c.JSON(fiber.Map{
		"message": "User deleted successfully.",
	})
}

// HandleListAccounts returns every account sans password. Admin only.
func (h *UserHandler) HandleListAccounts(c *fiber.Ctx) error {
	users, err := h.userService.ListAccounts()
	if err != nil {
		log.Printf("Error listing accounts: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Server error",
		})
	}
	return c.JSON(users)
}

// HandleUpdateAccount applies a partial update to any account, including
// its role. Admin only.
func (h *UserHandler) HandleUpdateAccount(c *fiber.Ctx) error {
	var update services.AccountUpdate
	if err := c.BodyParser(&update); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	user, err := h.userService.UpdateAccount(c.Params("id"), update)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "User not found.",
			})
		}
		log.Printf("Error updating account %s: %v", c.Params("id"), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Server error",
		})
	}
	return c.JSON(user)
}

// HandleDeleteAccount hard-deletes any account. Admin only.
func (h *UserHandler) HandleDeleteAccount(c *fiber.Ctx) error {
	if err := h.userService.DeleteAccount(c.Params("id")); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "User not found.",
			})
		}
		log.Printf("Error deleting account %s: %v", c.Params("id"), err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Server error",
		})
	}
	return c.JSON(fiber.Map{
		"message": "User deleted successfully.",
	})
}
