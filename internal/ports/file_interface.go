package ports

import (
	"context"
	"training-center-files/internal/model"
)

// RemoteFileClient : удалённое хранилище файлов (S3)
type RemoteFileClient interface {
	ListFiles(ctx context.Context, scope model.Scope, documentUUID string) ([]model.FileDescriptor, error)
	GetFileMetadata(ctx context.Context, scope model.Scope, documentUUID, fileUUID string) (*model.FileDescriptor, error)
	GetFileBytes(ctx context.Context, scope model.Scope, documentUUID, fileUUID string) (*model.FileBytes, error)
	UploadFile(ctx context.Context, scope model.Scope, documentUUID string, descriptor *model.FileDescriptor, data []byte) error
	DeleteFile(ctx context.Context, scope model.Scope, documentUUID, fileUUID string) error
	DeleteAllFiles(ctx context.Context, scope model.Scope, documentUUID string) error
}

type FileContentService interface {
	GetContent(ctx context.Context, scope model.Scope, documentUUID string, ref model.FileRef) (*model.FileContent, error)
	ListFiles(ctx context.Context, scope model.Scope, documentUUID string) ([]model.FileDescriptor, error)
	Upload(ctx context.Context, scope model.Scope, documentUUID, filename, mimeType string, data []byte) (*model.FileDescriptor, error)
	Delete(ctx context.Context, scope model.Scope, documentUUID, fileUUID string) error
	DeleteAll(ctx context.Context, scope model.Scope, documentUUID string) error
}
