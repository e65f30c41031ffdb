// Package services определяет доменные ошибки и типы для сервисов аутентификации.
package services

import (
	"errors"
)

// Ошибки, связанные с паролями.
var (
	ErrHashingFailed   = errors.New("failed to hash password")
	ErrInvalidPassword = errors.New("invalid password")
)
