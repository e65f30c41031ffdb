package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YashPalav-26/Ledger/internal/adapters/postgres"
	"github.com/YashPalav-26/Ledger/internal/domain/entities"
	"github.com/YashPalav-26/Ledger/pkg/logger"
)

var userColumns = []string{"id", "email", "password_hash", "first_name", "last_name", "created_at"}

func testContext(t *testing.T) context.Context {
	t.Helper()
	testLogger, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)
	return logger.NewContext(context.Background(), testLogger)
}

func TestUserRepository_Create(t *testing.T) {
	ctx := testContext(t)

	inputUser := &entities.User{
		Email:        "new@example.com",
		PasswordHash: "hashed_new_password",
		FirstName:    "New",
		LastName:     "User",
	}

	createdAt := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("Успешное создание пользователя", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("INSERT INTO users .+").
			WithArgs(inputUser.Email, inputUser.PasswordHash, inputUser.FirstName, inputUser.LastName).
			WillReturnRows(
				pgxmock.NewRows(userColumns).
					AddRow(int64(1), inputUser.Email, inputUser.PasswordHash, inputUser.FirstName, inputUser.LastName, createdAt),
			)

		repo := postgres.NewUserRepository(mock)
		createdUser, err := repo.Create(ctx, inputUser)

		require.NoError(t, err)
		assert.Equal(t, int64(1), createdUser.ID)
		assert.Equal(t, inputUser.Email, createdUser.Email)
		assert.Equal(t, inputUser.PasswordHash, createdUser.PasswordHash)
		assert.Equal(t, inputUser.FirstName, createdUser.FirstName)
		assert.Equal(t, inputUser.LastName, createdUser.LastName)
		assert.Equal(t, createdAt, createdUser.CreatedAt)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Дублирующийся email превращается в доменную ошибку", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		duplicateErr := &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
		mock.ExpectQuery("INSERT INTO users .+").
			WithArgs(inputUser.Email, inputUser.PasswordHash, inputUser.FirstName, inputUser.LastName).
			WillReturnError(duplicateErr)

		repo := postgres.NewUserRepository(mock)
		createdUser, err := repo.Create(ctx, inputUser)

		assert.Nil(t, createdUser)
		assert.ErrorIs(t, err, entities.ErrEmailAlreadyExists)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Общая ошибка БД пробрасывается", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		dbError := errors.New("database connection error")
		mock.ExpectQuery("INSERT INTO users .+").
			WithArgs(inputUser.Email, inputUser.PasswordHash, inputUser.FirstName, inputUser.LastName).
			WillReturnError(dbError)

		repo := postgres.NewUserRepository(mock)
		createdUser, err := repo.Create(ctx, inputUser)

		assert.Nil(t, createdUser)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error creating user")

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_FindByEmail(t *testing.T) {
	ctx := testContext(t)
	createdAt := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("Пользователь найден", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, email, password_hash, first_name, last_name, created_at").
			WithArgs("known@example.com").
			WillReturnRows(
				pgxmock.NewRows(userColumns).
					AddRow(int64(7), "known@example.com", "hash", "Known", "User", createdAt),
			)

		repo := postgres.NewUserRepository(mock)
		user, err := repo.FindByEmail(ctx, "known@example.com")

		require.NoError(t, err)
		assert.Equal(t, int64(7), user.ID)
		assert.Equal(t, "known@example.com", user.Email)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Отсутствующий пользователь дает доменную ошибку", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, email, password_hash, first_name, last_name, created_at").
			WithArgs("missing@example.com").
			WillReturnError(pgx.ErrNoRows)

		repo := postgres.NewUserRepository(mock)
		user, err := repo.FindByEmail(ctx, "missing@example.com")

		assert.Nil(t, user)
		assert.ErrorIs(t, err, entities.ErrUserNotFound)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_FindByID(t *testing.T) {
	ctx := testContext(t)
	createdAt := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("Пользователь найден", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, email, password_hash, first_name, last_name, created_at").
			WithArgs(int64(7)).
			WillReturnRows(
				pgxmock.NewRows(userColumns).
					AddRow(int64(7), "known@example.com", "hash", "Known", "User", createdAt),
			)

		repo := postgres.NewUserRepository(mock)
		user, err := repo.FindByID(ctx, 7)

		require.NoError(t, err)
		assert.Equal(t, "known@example.com", user.Email)

		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Отсутствующий пользователь дает доменную ошибку", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery("SELECT id, email, password_hash, first_name, last_name, created_at").
			WithArgs(int64(404)).
			WillReturnError(pgx.ErrNoRows)

		repo := postgres.NewUserRepository(mock)
		user, err := repo.FindByID(ctx, 404)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, entities.ErrUserNotFound)

		require.NoError(t, mock.ExpectationsWereMet())
	})
}
