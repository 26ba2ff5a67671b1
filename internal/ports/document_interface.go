package ports

import (
	"context"
	"training-center-files/internal/model"

	"github.com/jmoiron/sqlx"
)

// DocumentRepository : SQL слой
type DocumentRepository interface {
	Create(ctx context.Context, exec sqlx.ExtContext, document *model.Document) error
	GetByUUID(ctx context.Context, exec sqlx.ExtContext, documentUUID string) (*model.Document, error)
	ListByScope(ctx context.Context, exec sqlx.ExtContext, scope model.Scope, cursor string, limit int) ([]model.Document, string, error)
	Delete(ctx context.Context, exec sqlx.ExtContext, documentUUID string) (string, error)
	BeginTX(ctx context.Context) (sqlx.ExtContext, func() error, func() error, error)
}

type DocumentService interface {
	CreateDocument(ctx context.Context, document *model.Document) error
	GetDocumentByUUID(ctx context.Context, documentUUID string) (*model.Document, error)
	ListDocuments(ctx context.Context, scope model.Scope, cursor string, limit int) ([]model.Document, string, error)
	DeleteDocument(ctx context.Context, documentUUID string) (map[string]bool, error)
}
