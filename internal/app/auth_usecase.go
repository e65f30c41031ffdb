// Package app содержит сценарии использования сервиса заметок.
package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/YashPalav-26/Ledger/internal/domain/entities"
	domain "github.com/YashPalav-26/Ledger/internal/domain/services"
	"github.com/YashPalav-26/Ledger/internal/ports/api"
	"github.com/YashPalav-26/Ledger/internal/ports/repositories"
	svc "github.com/YashPalav-26/Ledger/internal/ports/services"
	"github.com/YashPalav-26/Ledger/pkg/logger"
)

const (
	methodSignup  = "Signup"
	methodLogin   = "Login"
	methodProfile = "Profile"

	msgStartSignup      = "starting user signup"
	msgMissingFields    = "missing required fields"
	msgPasswordTooShort = "password shorter than minimum length"
	msgEmailExists      = "user with this email already exists"
	msgUserCreated      = "user created successfully"
	msgLoginAttempt     = "login attempt"
	msgLoginNonExistent = "login attempt with non-existent email"
	msgInvalidPassword  = "invalid password provided"
	msgUserLoggedIn     = "user logged in successfully"
	msgFetchingProfile  = "fetching user profile"

	msgErrCheckExistingUser = "failed to check existing user"
	msgErrHashPassword      = "failed to hash password"
	msgErrCreateUser        = "failed to create user"
	msgErrIssueToken        = "failed to issue token"
	msgErrFindingUser       = "error finding user by email"
	msgErrVerifyingPassword = "error verifying password"

	errCtxValidatingInput = "validating input"
	errCtxCheckingUser    = "checking existing user"
	errCtxHashingPassword = "hashing password"
	errCtxCreatingUser    = "creating user"
	errCtxIssuingToken    = "issuing token"
	errCtxFindingUser     = "finding user"
	errCtxVerifyingCreds  = "verifying credentials"
	errCtxFetchingProfile = "fetching profile"
)

// AuthUseCaseImpl реализует интерфейс api.AuthUseCase.
type AuthUseCaseImpl struct {
	userRepo    repositories.UserRepository
	passwordSvc svc.PasswordService
	tokenSvc    svc.TokenService
}

// NewAuthUseCase создает новый экземпляр сценариев аутентификации.
func NewAuthUseCase(
	userRepo repositories.UserRepository,
	passwordSvc svc.PasswordService,
	tokenSvc svc.TokenService,
) api.AuthUseCase {
	return &AuthUseCaseImpl{
		userRepo:    userRepo,
		passwordSvc: passwordSvc,
		tokenSvc:    tokenSvc,
	}
}

// Signup регистрирует нового пользователя и выпускает токен идентификации.
func (a *AuthUseCaseImpl) Signup(ctx context.Context, email, password, firstName, lastName string) (*api.AuthResult, error) {
	log := logger.Log(ctx).With(zap.String("method", methodSignup), zap.String("email", email))
	log.Debug(ctx, msgStartSignup)

	if email == "" || password == "" || firstName == "" || lastName == "" {
		log.Debug(ctx, msgMissingFields)
		return nil, fmt.Errorf("%s: %w", errCtxValidatingInput, entities.ErrMissingFields)
	}
	if len(password) < entities.MinPasswordLength {
		log.Debug(ctx, msgPasswordTooShort)
		return nil, fmt.Errorf("%s: %w", errCtxValidatingInput, entities.ErrPasswordTooShort)
	}

	existing, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, entities.ErrUserNotFound) {
		log.Error(ctx, msgErrCheckExistingUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCheckingUser, err)
	}
	if existing != nil {
		log.Debug(ctx, msgEmailExists)
		return nil, fmt.Errorf("%s: %w", errCtxCheckingUser, entities.ErrEmailAlreadyExists)
	}

	passwordHash, err := a.passwordSvc.Hash(ctx, password)
	if err != nil {
		log.Error(ctx, msgErrHashPassword, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxHashingPassword, err)
	}

	user, err := a.userRepo.Create(ctx, &entities.User{
		Email:        email,
		PasswordHash: passwordHash,
		FirstName:    firstName,
		LastName:     lastName,
	})
	if err != nil {
		log.Error(ctx, msgErrCreateUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxCreatingUser, err)
	}

	token, err := a.tokenSvc.Issue(ctx, user.ID, user.Email)
	if err != nil {
		log.Error(ctx, msgErrIssueToken, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxIssuingToken, err)
	}

	log.Info(ctx, msgUserCreated, zap.Int64("userID", user.ID))
	return &api.AuthResult{User: user, Token: token}, nil
}

// Login аутентифицирует пользователя по email и паролю.
// Несуществующий email и неверный пароль дают одну и ту же ошибку,
// чтобы не раскрывать наличие учетной записи.
func (a *AuthUseCaseImpl) Login(ctx context.Context, email, password string) (*api.AuthResult, error) {
	log := logger.Log(ctx).With(zap.String("method", methodLogin), zap.String("email", email))
	log.Debug(ctx, msgLoginAttempt)

	user, err := a.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, entities.ErrUserNotFound) {
			log.Debug(ctx, msgLoginNonExistent)
			return nil, fmt.Errorf("%s: %w", errCtxVerifyingCreds, domain.ErrInvalidCredentials)
		}
		log.Error(ctx, msgErrFindingUser, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFindingUser, err)
	}

	valid, err := a.passwordSvc.Verify(ctx, password, user.PasswordHash)
	if err != nil {
		log.Error(ctx, msgErrVerifyingPassword, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxVerifyingCreds, err)
	}
	if !valid {
		log.Debug(ctx, msgInvalidPassword)
		return nil, fmt.Errorf("%s: %w", errCtxVerifyingCreds, domain.ErrInvalidCredentials)
	}

	token, err := a.tokenSvc.Issue(ctx, user.ID, user.Email)
	if err != nil {
		log.Error(ctx, msgErrIssueToken, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxIssuingToken, err)
	}

	log.Info(ctx, msgUserLoggedIn, zap.Int64("userID", user.ID))
	return &api.AuthResult{User: user, Token: token}, nil
}

// Profile возвращает пользователя по идентификатору из проверенного токена.
func (a *AuthUseCaseImpl) Profile(ctx context.Context, userID int64) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodProfile), zap.Int64("userID", userID))
	log.Debug(ctx, msgFetchingProfile)

	user, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtxFetchingProfile, err)
	}

	return user, nil
}
