// Package repositories определяет интерфейсы репозиториев сервиса заметок.
package repositories

import (
	"context"

	"github.com/YashPalav-26/Ledger/internal/domain/entities"
)

// UserRepository определяет интерфейс для операций с данными пользователей.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) (*entities.User, error)

	FindByID(ctx context.Context, id int64) (*entities.User, error)

	FindByEmail(ctx context.Context, email string) (*entities.User, error)
}
