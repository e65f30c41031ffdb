package repositories

import (
	"context"

	"github.com/YashPalav-26/Ledger/internal/domain/entities"
)

// NoteRepository определяет интерфейс для работы с репозиторием заметок.
// Каждая операция требует ID владельца: заметка никогда не видна и не
// изменяема никаким пользователем, кроме своего создателя.
type NoteRepository interface {
	Create(ctx context.Context, note *entities.Note) (*entities.Note, error)

	GetByID(ctx context.Context, noteID, userID int64) (*entities.Note, error)

	ListByUserID(ctx context.Context, userID int64, filter entities.NoteFilter) ([]*entities.Note, error)

	Update(ctx context.Context, note *entities.Note) (*entities.Note, error)

	Delete(ctx context.Context, noteID, userID int64) error
}
