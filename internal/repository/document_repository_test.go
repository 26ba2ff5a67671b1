package repository_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"
	"training-center-files/config"
	"training-center-files/internal/model"
	"training-center-files/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepository(t *testing.T) (*repository.DocumentRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return repository.NewDocumentRepository(&config.Database{DB: sqlxDB}), mock
}

func TestDocumentRepository_Create(t *testing.T) {
	repo, mock := newMockRepository(t)

	document := &model.Document{
		UUID:      "doc-uuid",
		ScopeType: model.ScopeAttendee,
		ScopeUUID: "attendee-1",
		Title:     "Диплом",
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO documents")).
		WithArgs(document.UUID, document.ScopeType, document.ScopeUUID, document.Title).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Create(context.Background(), repo.DB, document)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentRepository_GetByUUID(t *testing.T) {
	repo, mock := newMockRepository(t)
	now := time.Now()

	rows := sqlmock.NewRows([]string{"uuid", "scope_type", "scope_uuid", "title", "created_at", "updated_at", "deleted_at"}).
		AddRow("doc-uuid", model.ScopeAttendee, "attendee-1", "Диплом", now, now, nil)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE uuid = $1 AND deleted_at IS NULL")).
		WithArgs("doc-uuid").
		WillReturnRows(rows)

	document, err := repo.GetByUUID(context.Background(), repo.DB, "doc-uuid")

	require.NoError(t, err)
	assert.Equal(t, "doc-uuid", document.UUID)
	assert.Equal(t, model.ScopeAttendee, document.ScopeType)
	assert.Equal(t, "Диплом", document.Title)
	assert.Nil(t, document.DeletedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentRepository_GetByUUID_NotFound(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE uuid = $1 AND deleted_at IS NULL")).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByUUID(context.Background(), repo.DB, "ghost")

	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentRepository_ListByScope(t *testing.T) {
	repo, mock := newMockRepository(t)
	scope := model.Scope{Type: model.ScopeAttendee, UUID: "attendee-1"}
	now := time.Now()

	rows := sqlmock.NewRows([]string{"uuid", "scope_type", "scope_uuid", "title", "created_at", "updated_at", "deleted_at"}).
		AddRow("doc-2", scope.Type, scope.UUID, "Сертификат", now, now, nil).
		AddRow("doc-1", scope.Type, scope.UUID, "Диплом", now.Add(-time.Hour), now.Add(-time.Hour), nil)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC")).
		WithArgs(scope.Type, scope.UUID, 2).
		WillReturnRows(rows)

	docs, nextCursor, err := repo.ListByScope(context.Background(), repo.DB, scope, "", 2)

	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "doc-2", docs[0].UUID)
	// выборка заполнена целиком, следующая страница возможна
	assert.Equal(t, docs[1].CreatedAt.Format(time.RFC3339Nano), nextCursor)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentRepository_ListByScope_LastPage(t *testing.T) {
	repo, mock := newMockRepository(t)
	scope := model.Scope{Type: model.ScopeTrainingCenter, UUID: "tc-1"}
	now := time.Now()

	rows := sqlmock.NewRows([]string{"uuid", "scope_type", "scope_uuid", "title", "created_at", "updated_at", "deleted_at"}).
		AddRow("doc-1", scope.Type, scope.UUID, "Лицензия", now, now, nil)

	cursor := now.Add(time.Hour).Format(time.RFC3339Nano)
	mock.ExpectQuery(regexp.QuoteMeta("created_at < $3")).
		WithArgs(scope.Type, scope.UUID, cursor, 20).
		WillReturnRows(rows)

	docs, nextCursor, err := repo.ListByScope(context.Background(), repo.DB, scope, cursor, 20)

	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Empty(t, nextCursor)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentRepository_Delete(t *testing.T) {
	repo, mock := newMockRepository(t)

	rows := sqlmock.NewRows([]string{"uuid"}).AddRow("doc-uuid")
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE documents")).
		WithArgs("doc-uuid").
		WillReturnRows(rows)

	deletedUUID, err := repo.Delete(context.Background(), repo.DB, "doc-uuid")

	require.NoError(t, err)
	assert.Equal(t, "doc-uuid", deletedUUID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentRepository_Delete_AlreadyDeleted(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE documents")).
		WithArgs("doc-uuid").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Delete(context.Background(), repo.DB, "doc-uuid")

	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
