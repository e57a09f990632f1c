package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cyra-health/cyra/internal/models"
)

type symptomInput struct {
	Date        string `json:"date" validate:"required"`
	SymptomType string `json:"symptom_type" validate:"required,min=2,max=64"`
	Severity    int    `json:"severity" validate:"min=0,max=10"`
}

type symptomView struct {
	ID          uint   `json:"id"`
	Date        string `json:"date"`
	SymptomType string `json:"symptom_type"`
	Severity    int    `json:"severity"`
}

func viewForSymptom(symptom models.SymptomRecord) symptomView {
	return symptomView{
		ID:          symptom.ID,
		Date:        formatDay(symptom.Date),
		SymptomType: symptom.SymptomType,
		Severity:    symptom.Severity,
	}
}

func (handler *Handler) ListSymptoms(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	symptoms, err := handler.repositories.Symptoms.ListByUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load symptoms")
	}

	views := make([]symptomView, 0, len(symptoms))
	for _, symptom := range symptoms {
		views = append(views, viewForSymptom(symptom))
	}
	return c.JSON(fiber.Map{"symptoms": views})
}

func (handler *Handler) CreateSymptom(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input symptomInput
	if err := handler.parsePayload(c, &input); err != nil {
		return err
	}

	date, err := handler.parseDateParam(input.Date)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "date must be formatted as YYYY-MM-DD")
	}

	symptom := models.SymptomRecord{
		UserID:      user.ID,
		Date:        date,
		SymptomType: input.SymptomType,
		Severity:    input.Severity,
	}
	if err := handler.repositories.Symptoms.Create(&symptom); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save symptom")
	}
	return c.Status(fiber.StatusCreated).JSON(viewForSymptom(symptom))
}

func (handler *Handler) DeleteSymptom(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	symptomID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid symptom id")
	}

	deleted, err := handler.repositories.Symptoms.DeleteByIDForUser(symptomID, user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete symptom")
	}
	if !deleted {
		return apiError(c, fiber.StatusNotFound, "symptom not found")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
