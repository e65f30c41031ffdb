package services

import (
	"errors"
	"time"
)

// Ошибки, связанные с токенами.
var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("token has expired")
	ErrTokenGeneration    = errors.New("failed to generate authentication token")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthenticated    = errors.New("unauthorized")
)

// TokenConfig содержит настройки выпуска токенов.
type TokenConfig struct {
	SecretKey []byte
	TokenTTL  time.Duration
}

// Claims определяет идентификационные данные, переносимые токеном.
// Значения действительны только в рамках одного запроса и нигде не сохраняются.
type Claims struct {
	UserID    int64
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}
