package services

import (
	"context"

	domain "github.com/YashPalav-26/Ledger/internal/domain/services"
)

// TokenService определяет интерфейс выпуска и проверки токенов идентификации.
type TokenService interface {
	Issue(ctx context.Context, userID int64, email string) (string, error)

	Verify(ctx context.Context, token string) (*domain.Claims, error)
}
