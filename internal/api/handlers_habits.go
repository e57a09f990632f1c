package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cyra-health/cyra/internal/models"
	"github.com/cyra-health/cyra/internal/services"
)

type habitInput struct {
	Date      string `json:"date" validate:"required"`
	HabitType string `json:"habit_type" validate:"required,min=2,max=64"`
	Completed bool   `json:"completed"`
}

type habitView struct {
	ID        uint   `json:"id"`
	Date      string `json:"date"`
	HabitType string `json:"habit_type"`
	Completed bool   `json:"completed"`
}

func viewForHabit(entry models.HabitLog) habitView {
	return habitView{
		ID:        entry.ID,
		Date:      formatDay(entry.Date),
		HabitType: entry.HabitType,
		Completed: entry.Completed,
	}
}

func (handler *Handler) ListHabits(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	logs, err := handler.repositories.Habits.ListByUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load habit logs")
	}

	views := make([]habitView, 0, len(logs))
	for _, entry := range logs {
		views = append(views, viewForHabit(entry))
	}
	return c.JSON(fiber.Map{"logs": views})
}

// LogHabit records one habit for one day, replacing any earlier log for the
// same habit and day.
func (handler *Handler) LogHabit(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input habitInput
	if err := handler.parsePayload(c, &input); err != nil {
		return err
	}

	date, err := handler.parseDateParam(input.Date)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "date must be formatted as YYYY-MM-DD")
	}

	entry := models.HabitLog{
		UserID:    user.ID,
		HabitType: input.HabitType,
		Date:      date,
		Completed: input.Completed,
	}
	if err := handler.repositories.Habits.Upsert(&entry); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save habit log")
	}
	return c.JSON(viewForHabit(entry))
}

func (handler *Handler) GetHabitStreaks(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	logs, err := handler.repositories.Habits.ListByUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load habit logs")
	}
	return c.JSON(fiber.Map{"streaks": services.HabitStreaks(logs, handler.now())})
}
