// Package notes содержит HTTP-обработчики для управления заметками.
package notes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"github.com/YashPalav-26/Ledger/internal/adapters/http/middleware"
	"github.com/YashPalav-26/Ledger/internal/app/dto"
	"github.com/YashPalav-26/Ledger/internal/domain/entities"
	domain "github.com/YashPalav-26/Ledger/internal/domain/services"
	"github.com/YashPalav-26/Ledger/internal/ports/api"
	"github.com/YashPalav-26/Ledger/pkg/logger"
)

// Константы ошибок и сообщений для логирования.
const (
	LogHandlerCreateNote = "handling create note request"
	LogHandlerGetNote    = "handling get note request"
	LogHandlerListNotes  = "handling list notes request"
	LogHandlerUpdateNote = "handling update note request"
	LogHandlerDeleteNote = "handling delete note request"

	ErrMsgInvalidRequestBody = "invalid request body"
)

// Сообщения ответов клиенту.
const (
	MsgTitleContentRequired = "Title and content are required"
	MsgNoteNotFound         = "Note not found"
	MsgInternalServerError  = "Internal server error"
	MsgNoteCreated          = "Note created successfully"
	MsgNoteUpdated          = "Note updated successfully"
	MsgNoteDeleted          = "Note deleted successfully"
)

func sendErrorResponse(ctx fiber.Ctx, statusCode int, message string) error {
	if err := ctx.Status(statusCode).JSON(fiber.Map{
		"error": message,
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// Преобразование доменной ошибки в HTTP-ответ. Принадлежность чужому
// пользователю и отсутствие записи дают одинаковый 404.
func handleError(ctx fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, entities.ErrTitleContentRequired):
		return sendErrorResponse(ctx, http.StatusBadRequest, MsgTitleContentRequired)
	case errors.Is(err, entities.ErrTitleTooLong),
		errors.Is(err, entities.ErrContentTooLong):
		return sendErrorResponse(ctx, http.StatusBadRequest, err.Error())
	case errors.Is(err, entities.ErrNoteNotFound):
		return sendErrorResponse(ctx, http.StatusNotFound, MsgNoteNotFound)
	case errors.Is(err, domain.ErrUnauthenticated):
		return sendErrorResponse(ctx, http.StatusUnauthorized, middleware.MsgUnauthorized)
	default:
		return sendErrorResponse(ctx, http.StatusInternalServerError, MsgInternalServerError)
	}
}

// Handler обработчик HTTP-запросов для работы с заметками.
type Handler struct {
	noteUseCase api.NoteUseCase
}

// NewHandler создает новый экземпляр обработчика заметок.
func NewHandler(noteUseCase api.NoteUseCase) *Handler {
	return &Handler{
		noteUseCase: noteUseCase,
	}
}

func (h *Handler) requireClaims(ctx fiber.Ctx) (*domain.Claims, context.Context, error) {
	requestCtx := middleware.RequestContext(ctx)
	claims, ok := middleware.ClaimsFromContext(ctx)
	if !ok {
		return nil, requestCtx, sendErrorResponse(ctx, http.StatusUnauthorized, middleware.MsgUnauthorized)
	}
	return claims, requestCtx, nil
}

// noteIDFromParams разбирает числовой идентификатор заметки из пути.
// Нечисловой идентификатор неотличим от несуществующего.
func noteIDFromParams(ctx fiber.Ctx) (int64, error) {
	noteID, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		return 0, entities.ErrNoteNotFound
	}
	return noteID, nil
}

// CreateNote обрабатывает запрос на создание новой заметки.
func (h *Handler) CreateNote(ctx fiber.Ctx) error {
	claims, requestCtx, errResp := h.requireClaims(ctx)
	if claims == nil {
		return errResp
	}
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.CreateNote"))
	log.Debug(requestCtx, LogHandlerCreateNote)

	var req dto.CreateNoteRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Error(requestCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusBadRequest, MsgTitleContentRequired)
	}

	note, err := h.noteUseCase.CreateNote(requestCtx, claims.UserID, req.Title, req.Content, req.Category)
	if err != nil {
		log.Error(requestCtx, "failed to create note", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": MsgNoteCreated,
		"note":    dto.NewNoteResponse(note),
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// GetNote обрабатывает запрос на получение заметки по ID.
func (h *Handler) GetNote(ctx fiber.Ctx) error {
	claims, requestCtx, errResp := h.requireClaims(ctx)
	if claims == nil {
		return errResp
	}
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.GetNote"))
	log.Debug(requestCtx, LogHandlerGetNote)

	noteID, err := noteIDFromParams(ctx)
	if err != nil {
		return handleError(ctx, err)
	}

	note, err := h.noteUseCase.GetNote(requestCtx, claims.UserID, noteID)
	if err != nil {
		log.Error(requestCtx, "failed to get note", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"note": dto.NewNoteResponse(note),
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// ListNotes обрабатывает запрос на получение списка заметок с
// необязательными фильтрами category и search.
func (h *Handler) ListNotes(ctx fiber.Ctx) error {
	claims, requestCtx, errResp := h.requireClaims(ctx)
	if claims == nil {
		return errResp
	}
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.ListNotes"))
	log.Debug(requestCtx, LogHandlerListNotes)

	filter := entities.NoteFilter{
		Category: ctx.Query("category"),
		Search:   ctx.Query("search"),
	}

	notes, err := h.noteUseCase.ListNotes(requestCtx, claims.UserID, filter)
	if err != nil {
		log.Error(requestCtx, "failed to list notes", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"notes": dto.NewNoteListResponse(notes),
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// UpdateNote обрабатывает запрос на обновление заметки.
func (h *Handler) UpdateNote(ctx fiber.Ctx) error {
	claims, requestCtx, errResp := h.requireClaims(ctx)
	if claims == nil {
		return errResp
	}
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.UpdateNote"))
	log.Debug(requestCtx, LogHandlerUpdateNote)

	noteID, err := noteIDFromParams(ctx)
	if err != nil {
		return handleError(ctx, err)
	}

	var req dto.UpdateNoteRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Error(requestCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return sendErrorResponse(ctx, http.StatusBadRequest, MsgTitleContentRequired)
	}

	note, err := h.noteUseCase.UpdateNote(requestCtx, claims.UserID, noteID,
		req.Title, req.Content, req.Category, req.IsFavorite)
	if err != nil {
		log.Error(requestCtx, "failed to update note", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": MsgNoteUpdated,
		"note":    dto.NewNoteResponse(note),
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// DeleteNote обрабатывает запрос на удаление заметки.
func (h *Handler) DeleteNote(ctx fiber.Ctx) error {
	claims, requestCtx, errResp := h.requireClaims(ctx)
	if claims == nil {
		return errResp
	}
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.DeleteNote"))
	log.Debug(requestCtx, LogHandlerDeleteNote)

	noteID, err := noteIDFromParams(ctx)
	if err != nil {
		return handleError(ctx, err)
	}

	if err := h.noteUseCase.DeleteNote(requestCtx, claims.UserID, noteID); err != nil {
		log.Error(requestCtx, "failed to delete note", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": MsgNoteDeleted,
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}
