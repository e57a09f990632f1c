package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/cyra-health/cyra/internal/services"
)

func (handler *Handler) GetPrediction(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	prediction, insights, err := handler.predictions.BuildInsights(user.ID)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCycleRecord) {
			return apiError(c, fiber.StatusUnprocessableEntity, "cycle history contains invalid records")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to build prediction")
	}

	return c.JSON(fiber.Map{
		"prediction": prediction,
		"insights":   insights,
	})
}
