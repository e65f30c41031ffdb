// Package health содержит обработчик проверки работоспособности сервиса.
package health

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"github.com/YashPalav-26/Ledger/internal/adapters/http/middleware"
	"github.com/YashPalav-26/Ledger/pkg/logger"
)

// Pinger проверяет доступность хранилища.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler обработчик проверки здоровья.
type Handler struct {
	db Pinger
}

// NewHandler создает новый обработчик проверки здоровья.
func NewHandler(db Pinger) *Handler {
	return &Handler{db: db}
}

// Check проверяет подключение к базе данных.
func (h *Handler) Check(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)

	if err := h.db.Ping(requestCtx); err != nil {
		log.Error(requestCtx, "health check failed", zap.Error(err))
		if err := ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status":  "error",
			"message": "Database connection failed",
		}); err != nil {
			return fmt.Errorf("error sending response: %w", err)
		}
		return nil
	}

	if err := ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "healthy",
		"message": "Database connection successful",
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}
