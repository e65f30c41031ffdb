// Package dto содержит объекты передачи данных HTTP API.
// Поля ответов используют camelCase, колонки БД - snake_case;
// преобразование между ними выполняется здесь.
package dto

import (
	"time"

	"github.com/YashPalav-26/Ledger/internal/domain/entities"
)

// SignupRequest содержит данные для регистрации пользователя.
type SignupRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// LoginRequest содержит данные для входа пользователя.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse содержит публичную проекцию пользователя.
// Хэш пароля никогда не попадает в ответ.
type UserResponse struct {
	ID        int64      `json:"id"`
	Email     string     `json:"email"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// NewUserResponse преобразует сущность пользователя в публичную проекцию.
func NewUserResponse(user *entities.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
}

// NewUserProfileResponse преобразует сущность пользователя в проекцию
// профиля с датой регистрации.
func NewUserProfileResponse(user *entities.User) *UserResponse {
	resp := NewUserResponse(user)
	createdAt := user.CreatedAt
	resp.CreatedAt = &createdAt
	return resp
}
