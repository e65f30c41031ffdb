// Package http содержит компоненты для HTTP сервера.
package http

import (
	"github.com/gofiber/fiber/v3"

	"github.com/YashPalav-26/Ledger/internal/adapters/http/auth"
	"github.com/YashPalav-26/Ledger/internal/adapters/http/health"
	"github.com/YashPalav-26/Ledger/internal/adapters/http/middleware"
	"github.com/YashPalav-26/Ledger/internal/adapters/http/notes"
	"github.com/YashPalav-26/Ledger/internal/ports/api"
	svc "github.com/YashPalav-26/Ledger/internal/ports/services"
)

// SetupRouter настраивает маршрутизацию для HTTP сервера.
func SetupRouter(app *fiber.App, authUseCase api.AuthUseCase, noteUseCase api.NoteUseCase, tokenSvc svc.TokenService, db health.Pinger) {
	authHandler := auth.NewHandler(authUseCase)
	notesHandler := notes.NewHandler(noteUseCase)
	healthHandler := health.NewHandler(db)

	// Middleware для всех запросов.
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	app.Get("/health", healthHandler.Check)

	// Auth routes (публичные).
	authRoutes := app.Group("/auth")
	authRoutes.Post("/signup", authHandler.Signup)
	authRoutes.Post("/login", authHandler.Login)
	authRoutes.Get("/me", authHandler.Me, middleware.NewAuthMiddleware(tokenSvc))

	// Маршруты заметок (требуют авторизации).
	notesRoutes := app.Group("/notes")
	notesRoutes.Use(middleware.NewAuthMiddleware(tokenSvc))
	notesRoutes.Get("/", notesHandler.ListNotes)
	notesRoutes.Post("/", notesHandler.CreateNote)
	notesRoutes.Get("/:id", notesHandler.GetNote)
	notesRoutes.Put("/:id", notesHandler.UpdateNote)
	notesRoutes.Delete("/:id", notesHandler.DeleteNote)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Route not found",
		})
	})
}
