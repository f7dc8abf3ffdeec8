// handlers/referral_routes.go
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

func SetupReferralRoutes(app *fiber.App, freeplay *services.FreeplayService, leaderboard *services.LeaderboardService, tokens *auth.TokenManager) {
	// Public: the index-page leaderboard.
	app.Get("/leaderboard", func(c *fiber.Ctx) error {
		limit, _ := strconv.Atoi(c.Query("limit", "10"))
		rows, err := leaderboard.Top(limit)
		if err != nil {
			log.Printf("leaderboard fetch failed: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch leaderboard"})
		}
		return c.JSON(fiber.Map{"leaderboard": rows})
	})

	secured := app.Group("/", middleware.UserContextMiddleware(tokens))

	secured.Post("/freeplay", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)

		var req struct {
			ReferralCode string `json:"referral_code"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
		}

		entry, err := freeplay.SubmitFreeplay(userID, req.ReferralCode)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrMissingReferralCode):
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
			case errors.Is(err, services.ErrFreeplayAlreadyClaimed):
				return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
			default:
				log.Printf("freeplay submission failed for %s: %v", userID, err)
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "freeplay submission failed"})
			}
		}

		return c.Status(fiber.StatusCreated).JSON(entry)
	})

	secured.Get("/freeplay", func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(string)

		entries, err := freeplay.History(userID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to fetch freeplay history"})
		}
		return c.JSON(fiber.Map{"entries": entries})
	})
}
