package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	domain "github.com/YashPalav-26/Ledger/internal/domain/services"
	svc "github.com/YashPalav-26/Ledger/internal/ports/services"
	"github.com/YashPalav-26/Ledger/pkg/logger"
)

// Константы для работы с JWT.
const (
	methodIssue  = "Issue"
	methodVerify = "Verify"

	msgIssuingToken   = "issuing identity token"
	msgTokenIssued    = "token issued successfully"
	msgVerifyingToken = "verifying token"
	msgTokenVerified  = "token verified successfully"
	msgTokenExpired   = "token has expired"
	msgInvalidToken   = "invalid token format"

	//nolint:gosec
	errSigningToken = "error signing token"
	//nolint:gosec
	errParsingToken    = "error parsing token"
	errCtxIssuingToken = "issuing token"
	errCtxParsingToken = "parsing token"
)

// ErrInvalidAlgorithm представляет статическую ошибку неверного алгоритма подписи.
var ErrInvalidAlgorithm = errors.New("invalid signing algorithm")

// Claims используется для адаптации между доменной моделью и библиотекой JWT.
type Claims struct {
	UserID int64  `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// ServiceJWT реализует интерфейс TokenService.
type ServiceJWT struct {
	config domain.TokenConfig
}

// NewJWT создает новый экземпляр сервиса JWT.
func NewJWT(secretKey string, tokenTTL time.Duration) svc.TokenService {
	return &ServiceJWT{
		config: domain.TokenConfig{
			SecretKey: []byte(secretKey),
			TokenTTL:  tokenTTL,
		},
	}
}

func domainToJWTClaims(claims domain.Claims) Claims {
	return Claims{
		UserID: claims.UserID,
		Email:  claims.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(claims.ExpiresAt),
			IssuedAt:  jwt.NewNumericDate(claims.IssuedAt),
			Subject:   fmt.Sprintf("%d", claims.UserID),
		},
	}
}

func jwtToDomainClaims(claims *Claims) *domain.Claims {
	var expiresAt, issuedAt time.Time
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	if claims.IssuedAt != nil {
		issuedAt = claims.IssuedAt.Time
	}

	return &domain.Claims{
		UserID:    claims.UserID,
		Email:     claims.Email,
		IssuedAt:  issuedAt,
		ExpiresAt: expiresAt,
	}
}

// Issue генерирует подписанный токен идентификации со сроком действия TokenTTL.
func (s *ServiceJWT) Issue(ctx context.Context, userID int64, email string) (string, error) {
	log := logger.Log(ctx).With(
		zap.String("method", methodIssue),
		zap.Int64("userID", userID),
	)
	log.Debug(ctx, msgIssuingToken)

	if len(s.config.SecretKey) == 0 {
		log.Error(ctx, "empty secret key provided")
		return "", fmt.Errorf("%s: %w: empty secret key", errCtxIssuingToken, domain.ErrTokenGeneration)
	}

	now := time.Now()
	jwtClaims := domainToJWTClaims(domain.Claims{
		UserID:    userID,
		Email:     email,
		IssuedAt:  now,
		ExpiresAt: now.Add(s.config.TokenTTL),
	})

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwtClaims)

	tokenString, err := token.SignedString(s.config.SecretKey)
	if err != nil {
		log.Error(ctx, errSigningToken, zap.Error(err))
		return "", fmt.Errorf("%s: %w: %w", errCtxIssuingToken, domain.ErrTokenGeneration, err)
	}

	log.Debug(ctx, msgTokenIssued)
	return tokenString, nil
}

// Verify проверяет подпись и срок действия токена и возвращает claims.
// Искаженный, подделанный или просроченный токен возвращает ошибку,
// а не панику; вызывающие на HTTP-границе сводят любую ошибку к 401.
func (s *ServiceJWT) Verify(ctx context.Context, tokenString string) (*domain.Claims, error) {
	log := logger.Log(ctx).With(zap.String("method", methodVerify))
	log.Debug(ctx, msgVerifyingToken)

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAlgorithm, token.Header["alg"])
		}
		return s.config.SecretKey, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			log.Debug(ctx, msgTokenExpired)
			return nil, fmt.Errorf("%s: %w", errCtxParsingToken, domain.ErrExpiredToken)
		}
		log.Debug(ctx, errParsingToken, zap.Error(err))
		return nil, fmt.Errorf("%s: %w: %w", errCtxParsingToken, domain.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		log.Debug(ctx, msgInvalidToken)
		return nil, fmt.Errorf("%s: %w", errCtxParsingToken, domain.ErrInvalidToken)
	}

	if claims.UserID == 0 {
		log.Debug(ctx, "userId claim is empty")
		return nil, fmt.Errorf("%s: %w: empty userId", errCtxParsingToken, domain.ErrInvalidToken)
	}

	log.Debug(ctx, msgTokenVerified, zap.Int64("userID", claims.UserID))
	return jwtToDomainClaims(claims), nil
}
