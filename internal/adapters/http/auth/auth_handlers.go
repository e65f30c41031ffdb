// Package auth содержит HTTP обработчики регистрации и аутентификации.
package auth

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"github.com/YashPalav-26/Ledger/internal/adapters/http/middleware"
	"github.com/YashPalav-26/Ledger/internal/app/dto"
	"github.com/YashPalav-26/Ledger/internal/domain/entities"
	domain "github.com/YashPalav-26/Ledger/internal/domain/services"
	"github.com/YashPalav-26/Ledger/internal/ports/api"
	"github.com/YashPalav-26/Ledger/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerSignup = "auth handler: signup"
	LogHandlerLogin  = "auth handler: login"
	LogHandlerMe     = "auth handler: me"

	ErrorInvalidRequest       = "invalid request"
	ErrorFailedToServeRequest = "failed to serve request"
)

// Сообщения ответов клиенту. Детали внутренних ошибок в ответ не попадают.
const (
	MsgAllFieldsRequired     = "All fields are required"
	MsgPasswordTooShort      = "Password must be at least 6 characters long"
	MsgEmailAlreadyExists    = "User with this email already exists"
	MsgEmailPasswordRequired = "Email and password are required"
	MsgInvalidCredentials    = "Invalid email or password"
	MsgUserNotFound          = "User not found"
	MsgInternalServerError   = "Internal server error"
	MsgUserCreated           = "User created successfully"
	MsgLoginSuccessful       = "Login successful"
)

// Вспомогательная функция для отправки ошибок HTTP.
func sendErrorResponse(ctx fiber.Ctx, statusCode int, message string) error {
	if err := ctx.Status(statusCode).JSON(fiber.Map{
		"error": message,
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// Преобразование доменной ошибки в HTTP-ответ.
func handleError(ctx fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, entities.ErrMissingFields):
		return sendErrorResponse(ctx, http.StatusBadRequest, MsgAllFieldsRequired)
	case errors.Is(err, entities.ErrPasswordTooShort):
		return sendErrorResponse(ctx, http.StatusBadRequest, MsgPasswordTooShort)
	case errors.Is(err, entities.ErrEmailAlreadyExists):
		return sendErrorResponse(ctx, http.StatusConflict, MsgEmailAlreadyExists)
	case errors.Is(err, domain.ErrInvalidCredentials):
		return sendErrorResponse(ctx, http.StatusUnauthorized, MsgInvalidCredentials)
	case errors.Is(err, entities.ErrUserNotFound):
		return sendErrorResponse(ctx, http.StatusNotFound, MsgUserNotFound)
	default:
		return sendErrorResponse(ctx, http.StatusInternalServerError, MsgInternalServerError)
	}
}

// Handler содержит HTTP обработчики аутентификации.
type Handler struct {
	authUseCase api.AuthUseCase
}

// NewHandler создает новый экземпляр обработчика аутентификации.
func NewHandler(authUseCase api.AuthUseCase) *Handler {
	return &Handler{
		authUseCase: authUseCase,
	}
}

// Signup обрабатывает запрос на регистрацию нового пользователя.
func (h *Handler) Signup(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerSignup)

	var req dto.SignupRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusBadRequest, MsgAllFieldsRequired)
	}

	if req.Email == "" || req.Password == "" || req.FirstName == "" || req.LastName == "" {
		return sendErrorResponse(ctx, http.StatusBadRequest, MsgAllFieldsRequired)
	}
	if len(req.Password) < entities.MinPasswordLength {
		return sendErrorResponse(ctx, http.StatusBadRequest, MsgPasswordTooShort)
	}

	result, err := h.authUseCase.Signup(requestCtx, req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.Status(http.StatusCreated).JSON(fiber.Map{
		"message": MsgUserCreated,
		"user":    dto.NewUserResponse(result.User),
		"token":   result.Token,
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Login обрабатывает запрос на вход пользователя.
func (h *Handler) Login(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerLogin)

	var req dto.LoginRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusBadRequest, MsgEmailPasswordRequired)
	}

	if req.Email == "" || req.Password == "" {
		return sendErrorResponse(ctx, http.StatusBadRequest, MsgEmailPasswordRequired)
	}

	result, err := h.authUseCase.Login(requestCtx, req.Email, req.Password)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(fiber.Map{
		"message": MsgLoginSuccessful,
		"user":    dto.NewUserResponse(result.User),
		"token":   result.Token,
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Me возвращает публичную проекцию пользователя, которому принадлежит токен.
func (h *Handler) Me(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerMe)

	claims, ok := middleware.ClaimsFromContext(ctx)
	if !ok {
		return sendErrorResponse(ctx, http.StatusUnauthorized, middleware.MsgUnauthorized)
	}

	user, err := h.authUseCase.Profile(requestCtx, claims.UserID)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.Status(http.StatusOK).JSON(fiber.Map{
		"user": dto.NewUserProfileResponse(user),
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}
