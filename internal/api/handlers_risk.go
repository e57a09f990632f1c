package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/cyra-health/cyra/internal/models"
	"github.com/cyra-health/cyra/internal/services"
)

const riskHistoryLimit = 20

type riskReportView struct {
	ID           uint     `json:"id"`
	Score        int      `json:"score"`
	RiskLevel    string   `json:"risk_level"`
	Reasons      []string `json:"reasons"`
	CalculatedAt string   `json:"calculated_at"`
}

func viewForRiskReport(report models.RiskReport) riskReportView {
	reasons := report.Reasons
	if reasons == nil {
		reasons = []string{}
	}
	return riskReportView{
		ID:           report.ID,
		Score:        report.Score,
		RiskLevel:    report.RiskLevel,
		Reasons:      reasons,
		CalculatedAt: report.CalculatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// AssessRisk runs the scoring rubric over the user's stored history and
// persists the resulting report.
func (handler *Handler) AssessRisk(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	result, err := handler.riskService.BuildAssessment(user, handler.now())
	if err != nil {
		if errors.Is(err, services.ErrInvalidRiskInput) {
			return apiError(c, fiber.StatusUnprocessableEntity, "stored history produced invalid risk input")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to assess risk")
	}

	report := models.RiskReport{
		UserID:       user.ID,
		Score:        result.Score,
		RiskLevel:    result.RiskLevel,
		Reasons:      result.Reasons,
		CalculatedAt: result.CalculatedAt,
	}
	if err := handler.repositories.Risks.Create(&report); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to store risk report")
	}
	return c.Status(fiber.StatusCreated).JSON(viewForRiskReport(report))
}

func (handler *Handler) GetRiskHistory(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	reports, err := handler.repositories.Risks.ListByUser(user.ID, riskHistoryLimit)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load risk reports")
	}

	views := make([]riskReportView, 0, len(reports))
	for _, report := range reports {
		views = append(views, viewForRiskReport(report))
	}
	return c.JSON(fiber.Map{"reports": views})
}

func (handler *Handler) GetLatestRisk(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	reports, err := handler.repositories.Risks.ListByUser(user.ID, 1)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load risk reports")
	}
	if len(reports) == 0 {
		return apiError(c, fiber.StatusNotFound, "no risk report yet")
	}
	return c.JSON(viewForRiskReport(reports[0]))
}
