package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/YashPalav-26/Ledger/internal/domain/entities"
	"github.com/YashPalav-26/Ledger/internal/ports/api"
	"github.com/YashPalav-26/Ledger/internal/ports/repositories"
	"github.com/YashPalav-26/Ledger/pkg/logger"
)

const (
	methodCreateNote = "CreateNote"
	methodGetNote    = "GetNote"
	methodListNotes  = "ListNotes"
	methodUpdateNote = "UpdateNote"
	methodDeleteNote = "DeleteNote"

	msgCreatingNote = "creating note"
	msgNoteCreated  = "note created successfully"
	msgGettingNote  = "getting note"
	msgListingNotes = "listing notes"
	msgUpdatingNote = "updating note"
	msgNoteUpdated  = "note updated successfully"
	msgDeletingNote = "deleting note"
	msgNoteDeleted  = "note deleted successfully"

	errCtxValidatingNote = "validating note"
	errCtxCreatingNote   = "creating note"
	errCtxGettingNote    = "getting note"
	errCtxListingNotes   = "listing notes"
	errCtxUpdatingNote   = "updating note"
	errCtxDeletingNote   = "deleting note"
)

// NoteUseCaseImpl реализует интерфейс api.NoteUseCase.
type NoteUseCaseImpl struct {
	noteRepo repositories.NoteRepository
}

// NewNoteUseCase создает новый экземпляр сценариев работы с заметками.
func NewNoteUseCase(noteRepo repositories.NoteRepository) api.NoteUseCase {
	return &NoteUseCaseImpl{noteRepo: noteRepo}
}

func validateNoteFields(title, content string) error {
	if title == "" || content == "" {
		return fmt.Errorf("%s: %w", errCtxValidatingNote, entities.ErrTitleContentRequired)
	}
	if len(title) > entities.MaxTitleLength {
		return fmt.Errorf("%s: %w", errCtxValidatingNote, entities.ErrTitleTooLong)
	}
	if len(content) > entities.MaxContentLength {
		return fmt.Errorf("%s: %w", errCtxValidatingNote, entities.ErrContentTooLong)
	}
	return nil
}

// CreateNote создает заметку от имени пользователя userID.
// Пустая категория заменяется категорией по умолчанию.
func (n *NoteUseCaseImpl) CreateNote(ctx context.Context, userID int64, title, content, category string) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", methodCreateNote), zap.Int64("userID", userID))
	log.Debug(ctx, msgCreatingNote)

	if err := validateNoteFields(title, content); err != nil {
		return nil, err
	}
	if category == "" {
		category = entities.DefaultCategory
	}

	note, err := n.noteRepo.Create(ctx, &entities.Note{
		UserID:   userID,
		Title:    title,
		Content:  content,
		Category: category,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxCreatingNote, err)
	}

	log.Info(ctx, msgNoteCreated, zap.Int64("noteID", note.ID))
	return note, nil
}

// GetNote возвращает заметку пользователя по идентификатору.
func (n *NoteUseCaseImpl) GetNote(ctx context.Context, userID, noteID int64) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", methodGetNote), zap.Int64("userID", userID))
	log.Debug(ctx, msgGettingNote, zap.Int64("noteID", noteID))

	note, err := n.noteRepo.GetByID(ctx, noteID, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxGettingNote, err)
	}

	return note, nil
}

// ListNotes возвращает заметки пользователя с необязательными фильтрами.
func (n *NoteUseCaseImpl) ListNotes(ctx context.Context, userID int64, filter entities.NoteFilter) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", methodListNotes), zap.Int64("userID", userID))
	log.Debug(ctx, msgListingNotes)

	notes, err := n.noteRepo.ListByUserID(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxListingNotes, err)
	}

	return notes, nil
}

// UpdateNote обновляет заметку пользователя. Идентификатор, владелец и
// время создания неизменяемы; updated_at освежается при каждой мутации.
func (n *NoteUseCaseImpl) UpdateNote(ctx context.Context, userID, noteID int64, title, content, category string, isFavorite bool) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", methodUpdateNote), zap.Int64("userID", userID))
	log.Debug(ctx, msgUpdatingNote, zap.Int64("noteID", noteID))

	if err := validateNoteFields(title, content); err != nil {
		return nil, err
	}
	if category == "" {
		category = entities.DefaultCategory
	}

	note, err := n.noteRepo.Update(ctx, &entities.Note{
		ID:         noteID,
		UserID:     userID,
		Title:      title,
		Content:    content,
		Category:   category,
		IsFavorite: isFavorite,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxUpdatingNote, err)
	}

	log.Info(ctx, msgNoteUpdated, zap.Int64("noteID", note.ID))
	return note, nil
}

// DeleteNote удаляет заметку пользователя.
func (n *NoteUseCaseImpl) DeleteNote(ctx context.Context, userID, noteID int64) error {
	log := logger.Log(ctx).With(zap.String("method", methodDeleteNote), zap.Int64("userID", userID))
	log.Debug(ctx, msgDeletingNote, zap.Int64("noteID", noteID))

	if err := n.noteRepo.Delete(ctx, noteID, userID); err != nil {
		return fmt.Errorf("%s: %w", errCtxDeletingNote, err)
	}

	log.Info(ctx, msgNoteDeleted, zap.Int64("noteID", noteID))
	return nil
}
