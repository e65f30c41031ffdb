// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"github.com/YashPalav-26/Ledger/pkg/logger"
)

// requestContextKey - ключ Locals для контекста запроса с request_id.
const requestContextKey = "requestContext"

// RequestContext возвращает контекст запроса, созданный NewLoggerMiddleware,
// либо базовый контекст fiber, если middleware не применялось.
func RequestContext(ctx fiber.Ctx) context.Context {
	if reqCtx, ok := ctx.Locals(requestContextKey).(context.Context); ok {
		return reqCtx
	}
	return ctx.Context()
}

// NewLoggerMiddleware создает новое промежуточное ПО для логирования HTTP запросов.
// Каждому запросу присваивается идентификатор, попадающий во все записи.
func NewLoggerMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := logger.NewRequestIDContext(ctx.Context(), "")
		ctx.Locals(requestContextKey, requestCtx)

		start := time.Now()
		path := ctx.Path()
		method := ctx.Method()

		log := logger.Log(requestCtx).With(
			zap.String("path", path),
			zap.String("method", method),
			zap.String("ip", ctx.IP()),
		)

		log.Info(requestCtx, "Request started")

		err := ctx.Next()

		latency := time.Since(start)
		status := ctx.Response().StatusCode()

		logFields := []zap.Field{
			zap.Int("status", status),
			zap.Duration("latency", latency),
		}

		if err != nil {
			log.Error(requestCtx, "Request failed", append(logFields, zap.Error(err))...)
			return fmt.Errorf("request processing error: %w", err)
		}

		log.Info(requestCtx, "Request completed", logFields...)
		return nil
	}
}
