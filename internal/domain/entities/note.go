package entities

import (
	"errors"
	"time"
)

// Ошибки домена заметок.
var (
	// ErrNoteNotFound возвращается, когда заметка не существует или
	// принадлежит другому пользователю - эти случаи неразличимы для вызывающего.
	ErrNoteNotFound = errors.New("note not found")

	ErrTitleContentRequired = errors.New("title and content are required")
	ErrTitleTooLong         = errors.New("title must be at most 255 characters")
	ErrContentTooLong       = errors.New("content must be at most 10000 characters")
)

// Ограничения полей заметки.
const (
	MaxTitleLength   = 255
	MaxContentLength = 10000
	DefaultCategory  = "general"
)

// CategoryAll - сентинельное значение фильтра, отключающее фильтрацию по категории.
const CategoryAll = "all"

// Note представляет собой заметку, принадлежащую пользователю.
type Note struct {
	ID         int64
	UserID     int64
	Title      string
	Content    string
	Category   string
	IsFavorite bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NoteFilter описывает необязательные фильтры списка заметок.
// Пустая категория или CategoryAll отключает фильтр по категории,
// пустая строка поиска отключает текстовый поиск.
type NoteFilter struct {
	Category string
	Search   string
}
