package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/YashPalav-26/Ledger/internal/domain/entities"
	"github.com/YashPalav-26/Ledger/internal/ports/repositories"
	"github.com/YashPalav-26/Ledger/pkg/logger"
)

// NoteRepository реализует интерфейс repositories.NoteRepository.
// Каждый предикат дополняется условием user_id = владелец, поэтому чужая
// заметка неотличима от несуществующей.
type NoteRepository struct {
	pool PgxPoolInterface
}

// NewNoteRepository создает новый репозиторий заметок.
func NewNoteRepository(pool PgxPoolInterface) repositories.NoteRepository {
	return &NoteRepository{pool: pool}
}

const noteColumns = "id, user_id, title, content, category, is_favorite, created_at, updated_at"

func scanNote(row pgx.Row) (*entities.Note, error) {
	var note entities.Note
	err := row.Scan(
		&note.ID,
		&note.UserID,
		&note.Title,
		&note.Content,
		&note.Category,
		&note.IsFavorite,
		&note.CreatedAt,
		&note.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// Create сохраняет новую заметку, владелец подставляется из переданной сущности.
func (r *NoteRepository) Create(ctx context.Context, note *entities.Note) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "Create"))
	log.Debug(ctx, "creating new note", zap.Int64("userID", note.UserID))

	query := `
        INSERT INTO notes (user_id, title, content, category)
        VALUES ($1, $2, $3, $4)
        RETURNING ` + noteColumns

	created, err := scanNote(r.pool.QueryRow(ctx, query,
		note.UserID, note.Title, note.Content, note.Category,
	))
	if err != nil {
		log.Error(ctx, "failed to create note", zap.Error(err))
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	log.Debug(ctx, "note created", zap.Int64("noteID", created.ID))
	return created, nil
}

// GetByID получает заметку по ID и ID владельца.
func (r *NoteRepository) GetByID(ctx context.Context, noteID, userID int64) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "GetByID"))
	log.Debug(ctx, "getting note", zap.Int64("noteID", noteID), zap.Int64("userID", userID))

	query := `
        SELECT ` + noteColumns + `
        FROM notes
        WHERE id = $1 AND user_id = $2
    `

	note, err := scanNote(r.pool.QueryRow(ctx, query, noteID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "note not found", zap.Int64("noteID", noteID))
			return nil, entities.ErrNoteNotFound
		}
		log.Error(ctx, "failed to get note", zap.Error(err))
		return nil, fmt.Errorf("failed to get note: %w", err)
	}

	return note, nil
}

// ListByUserID получает список заметок пользователя с необязательными
// фильтрами по категории и подстроке в заголовке или содержимом.
// Значение категории "all" отключает фильтр. Сортировка - новые первыми.
func (r *NoteRepository) ListByUserID(ctx context.Context, userID int64, filter entities.NoteFilter) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "ListByUserID"))
	log.Debug(ctx, "listing notes", zap.Int64("userID", userID),
		zap.String("category", filter.Category), zap.String("search", filter.Search))

	query := `SELECT ` + noteColumns + ` FROM notes WHERE user_id = $1`
	args := []interface{}{userID}

	if filter.Category != "" && filter.Category != entities.CategoryAll {
		args = append(args, filter.Category)
		query += ` AND category = $` + strconv.Itoa(len(args))
	}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		placeholder := `$` + strconv.Itoa(len(args))
		query += ` AND (title ILIKE ` + placeholder + ` OR content ILIKE ` + placeholder + `)`
	}

	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		log.Error(ctx, "failed to list notes", zap.Error(err))
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	notes := make([]*entities.Note, 0)
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			log.Error(ctx, "failed to scan note", zap.Error(err))
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, note)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return notes, nil
}

// Update обновляет заметку текущего владельца и освежает updated_at.
// ID, владелец и created_at неизменяемы.
func (r *NoteRepository) Update(ctx context.Context, note *entities.Note) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "Update"))
	log.Debug(ctx, "updating note", zap.Int64("noteID", note.ID))

	query := `
        UPDATE notes
        SET title = $1, content = $2, category = $3, is_favorite = $4, updated_at = now()
        WHERE id = $5 AND user_id = $6
        RETURNING ` + noteColumns

	updated, err := scanNote(r.pool.QueryRow(ctx, query,
		note.Title, note.Content, note.Category, note.IsFavorite, note.ID, note.UserID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "note not found or not owned by user")
			return nil, entities.ErrNoteNotFound
		}
		log.Error(ctx, "failed to update note", zap.Error(err))
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	return updated, nil
}

// Delete удаляет заметку текущего владельца. Жесткое удаление, без архива.
func (r *NoteRepository) Delete(ctx context.Context, noteID, userID int64) error {
	log := logger.Log(ctx).With(zap.String("repository", "note"), zap.String("method", "Delete"))
	log.Debug(ctx, "deleting note", zap.Int64("noteID", noteID))

	result, err := r.pool.Exec(ctx,
		`DELETE FROM notes WHERE id = $1 AND user_id = $2`,
		noteID, userID,
	)
	if err != nil {
		log.Error(ctx, "failed to delete note", zap.Error(err))
		return fmt.Errorf("failed to delete note: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "note not found or not owned by user")
		return entities.ErrNoteNotFound
	}

	return nil
}
