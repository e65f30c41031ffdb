package app_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/YashPalav-26/Ledger/internal/app"
	"github.com/YashPalav-26/Ledger/internal/domain/entities"
)

const testUserID = int64(5)

func TestNoteUseCase_CreateNote(t *testing.T) {
	ctx := testContext(t)

	t.Run("Успешное создание", func(t *testing.T) {
		noteRepo := new(MockNoteRepository)
		created := &entities.Note{ID: 10, UserID: testUserID, Title: "Title", Content: "Content", Category: "work"}
		noteRepo.On("Create", mock.Anything, mock.MatchedBy(func(n *entities.Note) bool {
			return n.UserID == testUserID && n.Title == "Title" && n.Category == "work"
		})).Return(created, nil)

		useCase := app.NewNoteUseCase(noteRepo)
		note, err := useCase.CreateNote(ctx, testUserID, "Title", "Content", "work")

		require.NoError(t, err)
		assert.Equal(t, created, note)
		noteRepo.AssertExpectations(t)
	})

	t.Run("Пустая категория заменяется категорией по умолчанию", func(t *testing.T) {
		noteRepo := new(MockNoteRepository)
		noteRepo.On("Create", mock.Anything, mock.MatchedBy(func(n *entities.Note) bool {
			return n.Category == entities.DefaultCategory
		})).Return(&entities.Note{ID: 10, UserID: testUserID, Category: entities.DefaultCategory}, nil)

		useCase := app.NewNoteUseCase(noteRepo)
		_, err := useCase.CreateNote(ctx, testUserID, "Title", "Content", "")

		require.NoError(t, err)
		noteRepo.AssertExpectations(t)
	})

	t.Run("Пустой заголовок или содержимое", func(t *testing.T) {
		useCase := app.NewNoteUseCase(new(MockNoteRepository))

		_, err := useCase.CreateNote(ctx, testUserID, "", "Content", "")
		assert.ErrorIs(t, err, entities.ErrTitleContentRequired)

		_, err = useCase.CreateNote(ctx, testUserID, "Title", "", "")
		assert.ErrorIs(t, err, entities.ErrTitleContentRequired)
	})

	t.Run("Превышение лимитов длины", func(t *testing.T) {
		useCase := app.NewNoteUseCase(new(MockNoteRepository))

		longTitle := strings.Repeat("a", entities.MaxTitleLength+1)
		_, err := useCase.CreateNote(ctx, testUserID, longTitle, "Content", "")
		assert.ErrorIs(t, err, entities.ErrTitleTooLong)

		longContent := strings.Repeat("a", entities.MaxContentLength+1)
		_, err = useCase.CreateNote(ctx, testUserID, "Title", longContent, "")
		assert.ErrorIs(t, err, entities.ErrContentTooLong)
	})

	t.Run("Ошибка репозитория", func(t *testing.T) {
		noteRepo := new(MockNoteRepository)
		dbError := errors.New("database connection error")
		noteRepo.On("Create", mock.Anything, mock.Anything).Return(nil, dbError)

		useCase := app.NewNoteUseCase(noteRepo)
		note, err := useCase.CreateNote(ctx, testUserID, "Title", "Content", "")

		assert.Nil(t, note)
		assert.ErrorIs(t, err, dbError)
	})
}

func TestNoteUseCase_GetNote(t *testing.T) {
	ctx := testContext(t)

	t.Run("Заметка найдена", func(t *testing.T) {
		noteRepo := new(MockNoteRepository)
		stored := &entities.Note{ID: 10, UserID: testUserID, Title: "Title", Content: "Content"}
		noteRepo.On("GetByID", mock.Anything, int64(10), testUserID).Return(stored, nil)

		useCase := app.NewNoteUseCase(noteRepo)
		note, err := useCase.GetNote(ctx, testUserID, 10)

		require.NoError(t, err)
		assert.Equal(t, stored, note)
		noteRepo.AssertExpectations(t)
	})

	t.Run("Заметка не найдена", func(t *testing.T) {
		noteRepo := new(MockNoteRepository)
		noteRepo.On("GetByID", mock.Anything, int64(10), testUserID).Return(nil, entities.ErrNoteNotFound)

		useCase := app.NewNoteUseCase(noteRepo)
		note, err := useCase.GetNote(ctx, testUserID, 10)

		assert.Nil(t, note)
		assert.ErrorIs(t, err, entities.ErrNoteNotFound)
	})
}

func TestNoteUseCase_ListNotes(t *testing.T) {
	ctx := testContext(t)

	t.Run("Фильтры передаются в репозиторий", func(t *testing.T) {
		noteRepo := new(MockNoteRepository)
		filter := entities.NoteFilter{Category: "work", Search: "meeting"}
		stored := []*entities.Note{{ID: 1, UserID: testUserID, Title: "Meeting notes"}}
		noteRepo.On("ListByUserID", mock.Anything, testUserID, filter).Return(stored, nil)

		useCase := app.NewNoteUseCase(noteRepo)
		notes, err := useCase.ListNotes(ctx, testUserID, filter)

		require.NoError(t, err)
		assert.Equal(t, stored, notes)
		noteRepo.AssertExpectations(t)
	})

	t.Run("Пустой результат не является ошибкой", func(t *testing.T) {
		noteRepo := new(MockNoteRepository)
		noteRepo.On("ListByUserID", mock.Anything, testUserID, entities.NoteFilter{}).
			Return([]*entities.Note{}, nil)

		useCase := app.NewNoteUseCase(noteRepo)
		notes, err := useCase.ListNotes(ctx, testUserID, entities.NoteFilter{})

		require.NoError(t, err)
		assert.Empty(t, notes)
	})
}

func TestNoteUseCase_UpdateNote(t *testing.T) {
	ctx := testContext(t)

	t.Run("Успешное обновление", func(t *testing.T) {
		noteRepo := new(MockNoteRepository)
		updated := &entities.Note{ID: 10, UserID: testUserID, Title: "New", Content: "New content", Category: "work", IsFavorite: true}
		noteRepo.On("Update", mock.Anything, mock.MatchedBy(func(n *entities.Note) bool {
			return n.ID == 10 && n.UserID == testUserID && n.IsFavorite
		})).Return(updated, nil)

		useCase := app.NewNoteUseCase(noteRepo)
		note, err := useCase.UpdateNote(ctx, testUserID, 10, "New", "New content", "work", true)

		require.NoError(t, err)
		assert.Equal(t, updated, note)
		noteRepo.AssertExpectations(t)
	})

	t.Run("Валидация выполняется до обращения к репозиторию", func(t *testing.T) {
		noteRepo := new(MockNoteRepository)

		useCase := app.NewNoteUseCase(noteRepo)
		_, err := useCase.UpdateNote(ctx, testUserID, 10, "", "", "", false)

		assert.ErrorIs(t, err, entities.ErrTitleContentRequired)
		noteRepo.AssertNotCalled(t, "Update")
	})

	t.Run("Заметка не найдена", func(t *testing.T) {
		noteRepo := new(MockNoteRepository)
		noteRepo.On("Update", mock.Anything, mock.Anything).Return(nil, entities.ErrNoteNotFound)

		useCase := app.NewNoteUseCase(noteRepo)
		note, err := useCase.UpdateNote(ctx, testUserID, 10, "Title", "Content", "", false)

		assert.Nil(t, note)
		assert.ErrorIs(t, err, entities.ErrNoteNotFound)
	})
}

func TestNoteUseCase_DeleteNote(t *testing.T) {
	ctx := testContext(t)

	t.Run("Успешное удаление", func(t *testing.T) {
		noteRepo := new(MockNoteRepository)
		noteRepo.On("Delete", mock.Anything, int64(10), testUserID).Return(nil)

		useCase := app.NewNoteUseCase(noteRepo)
		err := useCase.DeleteNote(ctx, testUserID, 10)

		require.NoError(t, err)
		noteRepo.AssertExpectations(t)
	})

	t.Run("Заметка не найдена", func(t *testing.T) {
		noteRepo := new(MockNoteRepository)
		noteRepo.On("Delete", mock.Anything, int64(10), testUserID).Return(entities.ErrNoteNotFound)

		useCase := app.NewNoteUseCase(noteRepo)
		err := useCase.DeleteNote(ctx, testUserID, 10)

		assert.ErrorIs(t, err, entities.ErrNoteNotFound)
	})
}
