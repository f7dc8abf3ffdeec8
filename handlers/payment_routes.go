// handlers/payment_routes.go
package handlers

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"sportzino-backend/auth"
	"sportzino-backend/middleware"
	"sportzino-backend/services"
)

func SetupPaymentRoutes(app *fiber.App, payments *services.PaymentService, tokens *auth.TokenManager) {
	// Public: submit a claimed bank transfer with its screenshot.
	app.Post("/payments/manual", func(c *fiber.Ctx) error {
		amount, _ := strconv.ParseFloat(c.FormValue("amount"), 64)
		input := services.ManualPaymentInput{
			Name:   c.FormValue("name"),
			Email:  c.FormValue("email"),
			Method: c.FormValue("method"),
			Amount: amount,
		}

		screenshot, err := c.FormFile("screenshot")
		if err != nil {
			screenshot = nil
		}

		payment, err := payments.SubmitManual(input, screenshot)
		if err != nil {
			if err == services.ErrMissingRequiredField {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name, email, method and a positive amount are required"})
			}
			log.Printf("manual payment submission failed: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "payment submission failed"})
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "Transfer recorded. Access is granted after verification.",
			"payment": payment,
		})
	})

	secured := app.Group("/", middleware.UserContextMiddleware(tokens))
	admin := secured.Group("/admin", middleware.AdminOnly())

	admin.Get("/payments", func(c *fiber.Ctx) error {
		list, err := payments.List()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch payments"})
		}
		return c.JSON(fiber.Map{"payments": list})
	})

	admin.Patch("/payments/:id/verify", func(c *fiber.Ctx) error {
		payment, err := payments.Verify(c.Params("id"))
		if err != nil {
			if errors.Is(err, services.ErrPaymentNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "payment not found"})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to verify payment"})
		}
		return c.JSON(fiber.Map{"message": "payment verified", "payment": payment})
	})
}
