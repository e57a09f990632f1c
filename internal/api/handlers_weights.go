package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cyra-health/cyra/internal/models"
	"github.com/cyra-health/cyra/internal/services"
)

const weightHistoryLimit = 50

type weightInput struct {
	Date     string  `json:"date" validate:"required"`
	WeightKG float64 `json:"weight_kg" validate:"required,gt=0,lt=500"`
}

type weightView struct {
	ID       uint    `json:"id"`
	Date     string  `json:"date"`
	WeightKG float64 `json:"weight_kg"`
	BMI      float64 `json:"bmi"`
}

func (handler *Handler) viewForWeight(entry models.WeightEntry, heightCM float64) weightView {
	return weightView{
		ID:       entry.ID,
		Date:     formatDay(entry.Date),
		WeightKG: entry.WeightKG,
		BMI:      services.BMIFromWeight(entry.WeightKG, heightCM),
	}
}

func (handler *Handler) ListWeights(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	entries, err := handler.repositories.Weights.ListRecentByUser(user.ID, weightHistoryLimit)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load weight entries")
	}

	views := make([]weightView, 0, len(entries))
	for _, entry := range entries {
		views = append(views, handler.viewForWeight(entry, user.HeightCM))
	}
	return c.JSON(fiber.Map{
		"entries":   views,
		"bmi_trend": services.BMITrendFromEntries(entries),
	})
}

func (handler *Handler) CreateWeight(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input weightInput
	if err := handler.parsePayload(c, &input); err != nil {
		return err
	}

	date, err := handler.parseDateParam(input.Date)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "date must be formatted as YYYY-MM-DD")
	}

	entry := models.WeightEntry{
		UserID:   user.ID,
		Date:     date,
		WeightKG: input.WeightKG,
	}
	if err := handler.repositories.Weights.Create(&entry); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save weight entry")
	}
	return c.Status(fiber.StatusCreated).JSON(handler.viewForWeight(entry, user.HeightCM))
}
