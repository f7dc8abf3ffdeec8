// handlers/auth_routes.go
package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sportzino-backend/auth"
	"sportzino-backend/middleware"
	"sportzino-backend/models"
	"sportzino-backend/services"
)

func SetupAuthRoutes(app *fiber.App, accounts *services.AccountService, tokens *auth.TokenManager) {
	app.Post("/register", func(c *fiber.Ctx) error {
		var req services.RegisterInput
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}

		user, outcome, err := accounts.RegisterAccount(req)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidEmail), errors.Is(err, services.ErrEmptyPassword):
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
			case errors.Is(err, services.ErrEmailTaken):
				return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
			default:
				log.Printf("registration failed for %s: %v", req.Email, err)
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "registration failed"})
			}
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"user":   user,
			"reward": outcome,
		})
	})

	app.Post("/login", func(c *fiber.Ctx) error {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}

		user, err := accounts.Authenticate(req.Email, req.Password)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid credentials"})
			}
			log.Printf("login failed for %s: %v", req.Email, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "login failed"})
		}

		token, err := tokens.Generate(user)
		if err != nil {
			log.Printf("token generation failed for %s: %v", user.ID, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "login failed"})
		}

		return c.JSON(fiber.Map{"token": token, "user": user})
	})

	secured := app.Group("/", middleware.UserContextMiddleware(tokens))

	secured.Get("/me", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)

		var user models.User
		if err := accounts.DB.First(&user, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "account not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "DB error"})
		}
		return c.JSON(user)
	})
}
