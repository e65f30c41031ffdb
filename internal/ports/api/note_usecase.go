package api

import (
	"context"

	"github.com/YashPalav-26/Ledger/internal/domain/entities"
)

// NoteUseCase определяет порт для операций над заметками.
// Каждая операция выполняется от имени владельца userID.
type NoteUseCase interface {
	CreateNote(ctx context.Context, userID int64, title, content, category string) (*entities.Note, error)

	GetNote(ctx context.Context, userID, noteID int64) (*entities.Note, error)

	ListNotes(ctx context.Context, userID int64, filter entities.NoteFilter) ([]*entities.Note, error)

	UpdateNote(ctx context.Context, userID, noteID int64, title, content, category string, isFavorite bool) (*entities.Note, error)

	DeleteNote(ctx context.Context, userID, noteID int64) error
}
