// @title         kirax-service API
// @version       1.0
// @description   API da central de conversa Kirax.IA: seleção de modelo e especialista, planos de assinatura, contexto por PDF e turnos de conversa via OpenRouter.
// @BasePath      /api/v1
// @schemes       http
// @host          localhost:8080
package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	swagger "github.com/gofiber/swagger"

	_ "github.com/kiraxlabs/kirax/docs"

	// internal imports
	"github.com/kiraxlabs/kirax/api/http"
	"github.com/kiraxlabs/kirax/api/http/handlers"
	"github.com/kiraxlabs/kirax/pkg/catalog"
	"github.com/kiraxlabs/kirax/pkg/chat"
	"github.com/kiraxlabs/kirax/pkg/config"
	"github.com/kiraxlabs/kirax/pkg/health"
	healthchk "github.com/kiraxlabs/kirax/pkg/health/checkers"
	"github.com/kiraxlabs/kirax/pkg/llm/openrouter"
	"github.com/kiraxlabs/kirax/pkg/session"
)

func main() {
	app := fiber.New()

	// Load configuration from env/.env; the OpenRouter key comes from the
	// secrets file or the environment and may legitimately be empty.
	cfg := config.Load()
	if cfg.OpenRouterAPIKey == "" {
		log.Print("OPENROUTER_API_KEY não configurada: usando catálogo padrão, chamadas ao provedor falharão")
	}

	// OpenRouter client and catalog loader (memoized per key)
	llmClient := openrouter.New(
		cfg.OpenRouterAPIKey,
		cfg.OpenRouterBase,
		cfg.OpenRouterAppTitle,
		cfg.OpenRouterReferer,
	)
	loader := catalog.NewLoader(llmClient)

	// Session store and conversation service
	store := chat.NewStore()
	chatSvc := chat.NewService(llmClient)
	sessionMW := session.NewMiddleware(store, loader, cfg.OpenRouterAPIKey)

	// Health service: compose checkers
	readiness := health.NewService(healthchk.NewOpenRouterChecker(cfg.OpenRouterBase))
	healthHandler := handlers.NewHealthHandler(readiness)

	catalogHandler := handlers.NewCatalogHandler(loader, cfg.OpenRouterAPIKey)
	planHandler := handlers.NewPlanHandler()
	personaHandler := handlers.NewPersonaHandler()
	sessionHandler := handlers.NewSessionHandler(store)
	chatHandler := handlers.NewChatHandler(chatSvc)
	documentHandler := handlers.NewDocumentHandler(cfg.MaxUploadBytes)

	// Register routes
	http.Register(app, sessionMW, healthHandler, catalogHandler, planHandler, personaHandler, sessionHandler, chatHandler, documentHandler)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Start server
	port := cfg.Port
	log.Printf("HTTP server listening on :%s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
