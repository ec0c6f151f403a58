package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kiraxlabs/kirax/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app. The session middleware
// binds every /session route to its browser session, creating one on first
// interaction.
func Register(
	app *fiber.App,
	sessionMW fiber.Handler,
	health *handlers.HealthHandler,
	catalog *handlers.CatalogHandler,
	plans *handlers.PlanHandler,
	personas *handlers.PersonaHandler,
	sessions *handlers.SessionHandler,
	chat *handlers.ChatHandler,
	documents *handlers.DocumentHandler,
) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	// Static reference data
	v1.Get("/models", catalog.Models)
	v1.Get("/plans", plans.List)
	v1.Get("/personas", personas.List)

	// Session-scoped surface
	s := v1.Group("/session", sessionMW)
	s.Get("/", sessions.Get)
	s.Delete("/", sessions.Reset)
	s.Put("/model", sessions.SetModel)
	s.Put("/persona", sessions.SetPersona)
	s.Put("/plan", sessions.SetPlan)
	s.Post("/plans/toggle", sessions.TogglePlans)
	s.Post("/document", documents.Upload)
	s.Post("/messages", chat.Send)
}
