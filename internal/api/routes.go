package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)

	profile := api.Group("/profile", handler.AuthRequired)
	profile.Get("", handler.GetProfile)
	profile.Put("", handler.UpdateProfile)

	settings := api.Group("/settings", handler.AuthRequired)
	settings.Post("/change-password", handler.ChangePassword)

	cycles := api.Group("/cycles", handler.AuthRequired)
	cycles.Get("", handler.ListCycles)
	cycles.Post("", handler.CreateCycle)
	cycles.Put("/:id", handler.UpdateCycle)
	cycles.Delete("/:id", handler.DeleteCycle)

	symptoms := api.Group("/symptoms", handler.AuthRequired)
	symptoms.Get("", handler.ListSymptoms)
	symptoms.Post("", handler.CreateSymptom)
	symptoms.Delete("/:id", handler.DeleteSymptom)

	weights := api.Group("/weights", handler.AuthRequired)
	weights.Get("", handler.ListWeights)
	weights.Post("", handler.CreateWeight)

	habits := api.Group("/habits", handler.AuthRequired)
	habits.Get("", handler.ListHabits)
	habits.Post("", handler.LogHabit)
	habits.Get("/streaks", handler.GetHabitStreaks)

	photos := api.Group("/photos", handler.AuthRequired)
	photos.Get("", handler.ListPhotos)
	photos.Post("", handler.UploadPhoto)
	photos.Get("/trend", handler.GetPhotoTrend)

	predictions := api.Group("/predictions", handler.AuthRequired)
	predictions.Get("/next", handler.GetPrediction)

	risk := api.Group("/risk", handler.AuthRequired)
	risk.Post("/assess", handler.AssessRisk)
	risk.Get("/latest", handler.GetLatestRisk)
	risk.Get("/history", handler.GetRiskHistory)

	assistant := api.Group("/chat", handler.AuthRequired)
	assistant.Post("", handler.AskAssistant)
	assistant.Get("", handler.GetChatHistory)
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
