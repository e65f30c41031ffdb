// Package entities определяет доменные сущности сервиса заметок.
package entities

import (
	"errors"
	"time"
)

// Ошибки домена пользователя.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("user with this email already exists")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters long")
	ErrMissingFields      = errors.New("all fields are required")
)

// MinPasswordLength - минимальная длина пароля при регистрации.
const MinPasswordLength = 6

// User представляет основную сущность домена пользователя.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	CreatedAt    time.Time
}
