// handlers/kyc_routes.go
package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"sportzino-backend/auth"
	"sportzino-backend/middleware"
	"sportzino-backend/models"
	"sportzino-backend/services"
)

func SetupKYCRoutes(app *fiber.App, kyc *services.KYCService, accounts *services.AccountService, tokens *auth.TokenManager) {
	// Public submission, multipart form with the ID document attached.
	app.Post("/kyc", func(c *fiber.Ctx) error {
		input := services.KYCInput{
			FullName:    c.FormValue("full_name"),
			Email:       c.FormValue("email"),
			Phone:       c.FormValue("phone"),
			Country:     c.FormValue("country"),
			WalletOrSSN: c.FormValue("wallet_or_ssn"),
		}

		idFile, err := c.FormFile("id_file")
		if err != nil {
			idFile = nil // document optional at submission time
		}

		sub, err := kyc.Submit(input, idFile)
		if err != nil {
			if err == services.ErrMissingRequiredField {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "full name and email are required"})
			}
			log.Printf("KYC submission failed: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "KYC submission failed"})
		}

		return c.Status(fiber.StatusCreated).JSON(sub)
	})

	secured := app.Group("/", middleware.UserContextMiddleware(tokens))
	admin := secured.Group("/admin", middleware.AdminOnly())

	admin.Get("/kyc", func(c *fiber.Ctx) error {
		subs, err := kyc.List()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch submissions"})
		}
		return c.JSON(fiber.Map{"submissions": subs})
	})

	admin.Get("/kyc/export", func(c *fiber.Ctx) error {
		c.Set("Content-Type", "text/csv")
		c.Set("Content-Disposition", `attachment; filename=kyc_submissions.csv`)
		if err := kyc.WriteCSV(c.Response().BodyWriter()); err != nil {
			log.Printf("KYC CSV export failed: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "export failed"})
		}
		return nil
	})

	admin.Get("/users", func(c *fiber.Ctx) error {
		var users []models.User
		if err := accounts.DB.Order("created_at DESC").Find(&users).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch users"})
		}
		return c.JSON(fiber.Map{"users": users})
	})
}
