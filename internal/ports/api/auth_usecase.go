// Package api определяет порты прикладного уровня.
package api

import (
	"context"

	"github.com/YashPalav-26/Ledger/internal/domain/entities"
)

// AuthResult содержит результат успешной регистрации или входа.
type AuthResult struct {
	User  *entities.User
	Token string
}

// AuthUseCase определяет основной порт для операций аутентификации.
type AuthUseCase interface {
	Signup(ctx context.Context, email, password, firstName, lastName string) (*AuthResult, error)

	Login(ctx context.Context, email, password string) (*AuthResult, error)

	Profile(ctx context.Context, userID int64) (*entities.User, error)
}
