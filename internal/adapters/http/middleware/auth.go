package middleware

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	domain "github.com/YashPalav-26/Ledger/internal/domain/services"
	svc "github.com/YashPalav-26/Ledger/internal/ports/services"
	"github.com/YashPalav-26/Ledger/pkg/logger"
)

// Константы для логирования.
const (
	LogAuthMiddleware = "auth middleware"

	ErrorNoAuthHeader       = "no authorization header provided"
	ErrorInvalidTokenFormat = "invalid token format"
	ErrorTokenRejected      = "token verification failed"
)

// bearerPrefix - схема авторизации; сравнение чувствительно к регистру.
const bearerPrefix = "Bearer "

// claimsKey - ключ Locals для проверенных claims.
const claimsKey = "claims"

// MsgUnauthorized - единый ответ на любую ошибку аутентификации: отсутствие
// заголовка, неверная схема и невалидный токен неразличимы для клиента.
const MsgUnauthorized = "Unauthorized"

// ClaimsFromContext возвращает claims, сохраненные NewAuthMiddleware.
func ClaimsFromContext(ctx fiber.Ctx) (*domain.Claims, bool) {
	claims, ok := ctx.Locals(claimsKey).(*domain.Claims)
	return claims, ok
}

func sendUnauthorized(ctx fiber.Ctx) error {
	if err := ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": MsgUnauthorized,
	}); err != nil {
		return fmt.Errorf("error sending unauthorized response: %w", err)
	}
	return nil
}

// NewAuthMiddleware создает промежуточное ПО, извлекающее bearer-токен из
// заголовка Authorization и разрешающее его в identity claims.
// Токен перепроверяется на каждом запросе, результат нигде не кэшируется.
func NewAuthMiddleware(tokenSvc svc.TokenService) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := RequestContext(ctx)
		log := logger.Log(requestCtx).With(zap.String("middleware", "auth"))
		log.Debug(requestCtx, LogAuthMiddleware)

		authHeader := ctx.Get("Authorization")
		if authHeader == "" {
			log.Debug(requestCtx, ErrorNoAuthHeader)
			return sendUnauthorized(ctx)
		}

		if !strings.HasPrefix(authHeader, bearerPrefix) {
			log.Debug(requestCtx, ErrorInvalidTokenFormat)
			return sendUnauthorized(ctx)
		}

		claims, err := tokenSvc.Verify(requestCtx, strings.TrimPrefix(authHeader, bearerPrefix))
		if err != nil {
			log.Debug(requestCtx, ErrorTokenRejected, zap.Error(err))
			return sendUnauthorized(ctx)
		}

		ctx.Locals(claimsKey, claims)

		return ctx.Next()
	}
}
