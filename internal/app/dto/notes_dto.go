package dto

import (
	"time"

	"github.com/YashPalav-26/Ledger/internal/domain/entities"
)

// CreateNoteRequest содержит данные для создания заметки.
type CreateNoteRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
}

// UpdateNoteRequest содержит данные для обновления заметки.
// Пустая категория заменяется значением по умолчанию,
// отсутствующий isFavorite трактуется как false.
type UpdateNoteRequest struct {
	Title      string `json:"title"`
	Content    string `json:"content"`
	Category   string `json:"category"`
	IsFavorite bool   `json:"isFavorite"`
}

// NoteResponse содержит представление заметки. Владелец в ответ не
// включается: все операции и так ограничены заметками вызывающего.
type NoteResponse struct {
	ID         int64     `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	Category   string    `json:"category"`
	IsFavorite bool      `json:"isFavorite"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// NewNoteResponse преобразует сущность заметки в представление ответа.
func NewNoteResponse(note *entities.Note) *NoteResponse {
	return &NoteResponse{
		ID:         note.ID,
		Title:      note.Title,
		Content:    note.Content,
		Category:   note.Category,
		IsFavorite: note.IsFavorite,
		CreatedAt:  note.CreatedAt,
		UpdatedAt:  note.UpdatedAt,
	}
}

// NewNoteListResponse преобразует список сущностей в представления ответа.
func NewNoteListResponse(notes []*entities.Note) []*NoteResponse {
	result := make([]*NoteResponse, 0, len(notes))
	for _, note := range notes {
		result = append(result, NewNoteResponse(note))
	}
	return result
}
