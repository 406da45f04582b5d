package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	registerAPIRoutes(app, handler)
}

func registerAPIRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)

	me := api.Group("/me", handler.AuthRequired)
	me.Get("", handler.Me)
	me.Put("/password", handler.ChangePassword)

	missions := api.Group("/missions", handler.AuthRequired)
	missions.Get("/options", handler.GetMissionOptions)
	missions.Post("/preview", handler.PreviewMission)
	missions.Get("/:date", handler.GetMission)
	missions.Post("/:date", handler.SubmitMission)

	api.Get("/scores", handler.AuthRequired, handler.GetScoreHistory)
	api.Get("/ranking/weekly", handler.AuthRequired, handler.GetWeeklyRanking)
	api.Get("/feedback/:total", handler.AuthRequired, handler.GetFeedback)

	scale := api.Group("/scale", handler.AuthRequired)
	scale.Post("/readings", handler.RecordScaleReading)
	scale.Get("/readings", handler.ListScaleReadings)
	scale.Get("/devices", handler.ListScaleDevices)

	wheels := api.Group("/wheels", handler.AuthRequired)
	wheels.Get("", handler.ListWheels)
	wheels.Get("/:type/:session", handler.GetWheelResponse)
	wheels.Put("/:type/:session", handler.SaveWheelResponse)

	evaluations := api.Group("/evaluations", handler.AuthRequired)
	evaluations.Get("/stats", handler.GetEvaluationStats)
	evaluations.Get("/:week", handler.GetEvaluation)
	evaluations.Put("/:week", handler.SaveEvaluation)

	admin := api.Group("/admin", handler.AuthRequired, handler.AdminOnly)
	admin.Get("/users", handler.AdminListUsers)
	admin.Get("/users/:id/scores", handler.AdminUserScores)
}
