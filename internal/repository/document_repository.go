package repository

import (
	"context"
	"time"
	"training-center-files/config"
	"training-center-files/internal/model"

	"github.com/jmoiron/sqlx"
)

type DocumentRepository struct {
	*config.Database
}

func NewDocumentRepository(database *config.Database) *DocumentRepository {
	return &DocumentRepository{database}
}

// Create : сохраняем новый документ
func (r *DocumentRepository) Create(ctx context.Context, exec sqlx.ExtContext, document *model.Document) error {
	query := `
		INSERT INTO documents (uuid, scope_type, scope_uuid, title, created_at, updated_at)
    	VALUES ($1, $2, $3, $4, NOW(), NOW())
	`
	_, err := exec.ExecContext(
		ctx,
		query,
		document.UUID,
		document.ScopeType,
		document.ScopeUUID,
		document.Title)

	return err
}

// GetByUUID : возвращаем неудалённый документ
func (r *DocumentRepository) GetByUUID(ctx context.Context, exec sqlx.ExtContext, documentUUID string) (*model.Document, error) {
	query := `
		SELECT uuid, scope_type, scope_uuid, title, created_at, updated_at, deleted_at
		FROM documents
		WHERE uuid = $1 AND deleted_at IS NULL
	`

	var document model.Document
	err := sqlx.GetContext(ctx, exec, &document, query, documentUUID)
	if err != nil {
		return nil, err
	}

	return &document, nil
}

// ListByScope : выдаём список документов scope (cursor по created_at)
// Вместо стандартного OFFSET/LIMIT метод применяет cursor-based pagination
// cursor — created_at последнего документа из предыдущей выборки
func (r *DocumentRepository) ListByScope(ctx context.Context, exec sqlx.ExtContext, scope model.Scope, cursor string, limit int) ([]model.Document, string, error) {
	queryFirst := `
		SELECT uuid, scope_type, scope_uuid, title, created_at, updated_at, deleted_at
		FROM documents
		WHERE scope_type = $1 AND scope_uuid = $2 AND deleted_at IS NULL
		ORDER BY created_at DESC
		LIMIT $3
	`
	queryAfter := `
		SELECT uuid, scope_type, scope_uuid, title, created_at, updated_at, deleted_at
		FROM documents
		WHERE scope_type = $1 AND scope_uuid = $2 AND deleted_at IS NULL AND created_at < $3
		ORDER BY created_at DESC
		LIMIT $4
	`

	docs := []model.Document{}
	var rows *sqlx.Rows
	var err error

	if cursor == "" {
		rows, err = exec.QueryxContext(ctx, queryFirst, scope.Type, scope.UUID, limit)
	} else {
		rows, err = exec.QueryxContext(ctx, queryAfter, scope.Type, scope.UUID, cursor, limit)
	}
	if err != nil {
		return nil, "", err
	}
	defer rows.Close()

	for rows.Next() {
		var document model.Document
		if err := rows.StructScan(&document); err != nil {
			return nil, "", err
		}
		docs = append(docs, document)
	}

	var nextCursor string
	if len(docs) == limit && limit > 0 {
		nextCursor = docs[len(docs)-1].CreatedAt.Format(time.RFC3339Nano)
	}

	return docs, nextCursor, nil
}

// Delete : помечаем документ удалённым
func (r *DocumentRepository) Delete(ctx context.Context, exec sqlx.ExtContext, documentUUID string) (string, error) {
	query := `
		UPDATE documents
		SET deleted_at = NOW()
		WHERE uuid = $1 AND deleted_at IS NULL
		RETURNING uuid
	`

	var deletedUUID string
	err := sqlx.GetContext(ctx, exec, &deletedUUID, query, documentUUID)
	if err != nil {
		return "", err
	}

	return deletedUUID, nil
}

func (r *DocumentRepository) BeginTX(ctx context.Context) (sqlx.ExtContext, func() error, func() error, error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return nil, nil, nil, err
	}
	return tx, func() error { return tx.Rollback() }, func() error { return tx.Commit() }, nil
}
