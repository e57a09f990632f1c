package api

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/cyra-health/cyra/internal/models"
)

type cycleInput struct {
	StartDate     string  `json:"start_date" validate:"required"`
	EndDate       *string `json:"end_date"`
	PainLevel     *int    `json:"pain_level" validate:"omitempty,min=0,max=10"`
	FlowIntensity string  `json:"flow_intensity" validate:"omitempty,oneof=none light medium heavy"`
	Notes         string  `json:"notes" validate:"max=2000"`
}

type cycleView struct {
	ID            uint    `json:"id"`
	StartDate     string  `json:"start_date"`
	EndDate       *string `json:"end_date"`
	PainLevel     *int    `json:"pain_level"`
	FlowIntensity string  `json:"flow_intensity"`
	Notes         string  `json:"notes"`
}

func viewForCycle(cycle models.CycleRecord) cycleView {
	return cycleView{
		ID:            cycle.ID,
		StartDate:     formatDay(cycle.StartDate),
		EndDate:       formatOptionalDay(cycle.EndDate),
		PainLevel:     cycle.PainLevel,
		FlowIntensity: cycle.FlowIntensity,
		Notes:         cycle.Notes,
	}
}

func (handler *Handler) applyCycleInput(cycle *models.CycleRecord, input cycleInput) (string, bool) {
	startDate, err := handler.parseDateParam(input.StartDate)
	if err != nil {
		return "start_date must be formatted as YYYY-MM-DD", false
	}

	var endDate *time.Time
	if input.EndDate != nil {
		parsed, err := handler.parseDateParam(*input.EndDate)
		if err != nil {
			return "end_date must be formatted as YYYY-MM-DD", false
		}
		if parsed.Before(startDate) {
			return "end_date must not precede start_date", false
		}
		endDate = &parsed
	}

	flow := input.FlowIntensity
	if flow == "" {
		flow = models.FlowNone
	}

	cycle.StartDate = startDate
	cycle.EndDate = endDate
	cycle.PainLevel = input.PainLevel
	cycle.FlowIntensity = flow
	cycle.Notes = input.Notes
	return "", true
}

func (handler *Handler) ListCycles(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	cycles, err := handler.repositories.Cycles.ListByUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load cycles")
	}

	views := make([]cycleView, 0, len(cycles))
	for _, cycle := range cycles {
		views = append(views, viewForCycle(cycle))
	}
	return c.JSON(fiber.Map{"cycles": views})
}

func (handler *Handler) CreateCycle(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input cycleInput
	if err := handler.parsePayload(c, &input); err != nil {
		return err
	}

	cycle := models.CycleRecord{UserID: user.ID}
	if message, valid := handler.applyCycleInput(&cycle, input); !valid {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	if err := handler.repositories.Cycles.Create(&cycle); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save cycle")
	}
	return c.Status(fiber.StatusCreated).JSON(viewForCycle(cycle))
}

func (handler *Handler) UpdateCycle(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	cycleID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid cycle id")
	}

	var input cycleInput
	if err := handler.parsePayload(c, &input); err != nil {
		return err
	}

	cycle, err := handler.repositories.Cycles.FindByIDForUser(cycleID, user.ID)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "cycle not found")
	}
	if message, valid := handler.applyCycleInput(&cycle, input); !valid {
		return apiError(c, fiber.StatusBadRequest, message)
	}

	if err := handler.repositories.Cycles.Save(&cycle); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save cycle")
	}
	return c.JSON(viewForCycle(cycle))
}

func (handler *Handler) DeleteCycle(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	cycleID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid cycle id")
	}

	deleted, err := handler.repositories.Cycles.DeleteByIDForUser(cycleID, user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete cycle")
	}
	if !deleted {
		return apiError(c, fiber.StatusNotFound, "cycle not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
