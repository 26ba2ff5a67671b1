package service_test

import (
	"context"
	"database/sql"
	"testing"
	"training-center-files/config"
	"training-center-files/internal/model"
	"training-center-files/internal/service"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDocumentRepository struct{ mock.Mock }

func (m *MockDocumentRepository) Create(ctx context.Context, exec sqlx.ExtContext, document *model.Document) error {
	return m.Called(ctx, exec, document).Error(0)
}

func (m *MockDocumentRepository) GetByUUID(ctx context.Context, exec sqlx.ExtContext, documentUUID string) (*model.Document, error) {
	args := m.Called(ctx, exec, documentUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Document), args.Error(1)
}

func (m *MockDocumentRepository) ListByScope(ctx context.Context, exec sqlx.ExtContext, scope model.Scope, cursor string, limit int) ([]model.Document, string, error) {
	args := m.Called(ctx, exec, scope, cursor, limit)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]model.Document), args.String(1), args.Error(2)
}

func (m *MockDocumentRepository) Delete(ctx context.Context, exec sqlx.ExtContext, documentUUID string) (string, error) {
	args := m.Called(ctx, exec, documentUUID)
	return args.String(0), args.Error(1)
}

func (m *MockDocumentRepository) BeginTX(ctx context.Context) (sqlx.ExtContext, func() error, func() error, error) {
	args := m.Called(ctx)
	var exec sqlx.ExtContext
	if args.Get(0) != nil {
		exec = args.Get(0).(sqlx.ExtContext)
	}
	rollback, _ := args.Get(1).(func() error)
	commit, _ := args.Get(2).(func() error)
	return exec, rollback, commit, args.Error(3)
}

type MockFileContentService struct{ mock.Mock }

func (m *MockFileContentService) GetContent(ctx context.Context, scope model.Scope, documentUUID string, ref model.FileRef) (*model.FileContent, error) {
	args := m.Called(ctx, scope, documentUUID, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FileContent), args.Error(1)
}

func (m *MockFileContentService) ListFiles(ctx context.Context, scope model.Scope, documentUUID string) ([]model.FileDescriptor, error) {
	args := m.Called(ctx, scope, documentUUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.FileDescriptor), args.Error(1)
}

func (m *MockFileContentService) Upload(ctx context.Context, scope model.Scope, documentUUID, filename, mimeType string, data []byte) (*model.FileDescriptor, error) {
	args := m.Called(ctx, scope, documentUUID, filename, mimeType, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FileDescriptor), args.Error(1)
}

func (m *MockFileContentService) Delete(ctx context.Context, scope model.Scope, documentUUID, fileUUID string) error {
	return m.Called(ctx, scope, documentUUID, fileUUID).Error(0)
}

func (m *MockFileContentService) DeleteAll(ctx context.Context, scope model.Scope, documentUUID string) error {
	return m.Called(ctx, scope, documentUUID).Error(0)
}

func contextWithDB() context.Context {
	return context.WithValue(context.Background(), "db", &config.Database{})
}

func TestCreateDocument_Success(t *testing.T) {
	mockRepo := new(MockDocumentRepository)
	mockFiles := new(MockFileContentService)
	svc := service.NewDocumentService(mockRepo, mockFiles)

	document := &model.Document{UUID: "doc1", ScopeType: model.ScopeAttendee, ScopeUUID: "attendee-1", Title: "Диплом"}
	mockRepo.On("Create", mock.Anything, mock.Anything, document).Return(nil)

	err := svc.CreateDocument(contextWithDB(), document)

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestCreateDocument_NoDatabaseInContext(t *testing.T) {
	mockRepo := new(MockDocumentRepository)
	svc := service.NewDocumentService(mockRepo, new(MockFileContentService))

	err := svc.CreateDocument(context.Background(), &model.Document{UUID: "doc1"})

	assert.Error(t, err)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetDocumentByUUID_NotFoundMapping(t *testing.T) {
	mockRepo := new(MockDocumentRepository)
	svc := service.NewDocumentService(mockRepo, new(MockFileContentService))

	mockRepo.On("GetByUUID", mock.Anything, mock.Anything, "ghost").
		Return((*model.Document)(nil), sql.ErrNoRows)

	_, err := svc.GetDocumentByUUID(contextWithDB(), "ghost")

	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestDeleteDocument_Success(t *testing.T) {
	mockRepo := new(MockDocumentRepository)
	mockFiles := new(MockFileContentService)
	svc := service.NewDocumentService(mockRepo, mockFiles)

	document := &model.Document{UUID: "doc1", ScopeType: model.ScopeAttendee, ScopeUUID: "attendee-1", Title: "Диплом"}

	committed := false
	mockRepo.On("BeginTX", mock.Anything).Return(
		nil,
		func() error { return nil },
		func() error { committed = true; return nil },
		nil,
	)
	mockRepo.On("GetByUUID", mock.Anything, mock.Anything, "doc1").Return(document, nil)
	mockRepo.On("Delete", mock.Anything, mock.Anything, "doc1").Return("doc1", nil)
	mockFiles.On("DeleteAll", mock.Anything, document.Scope(), "doc1").Return(nil)

	response, err := svc.DeleteDocument(contextWithDB(), "doc1")

	require.NoError(t, err)
	assert.True(t, response["doc1"])
	assert.True(t, committed)
	mockFiles.AssertExpectations(t)
}

func TestDeleteDocument_NotFound(t *testing.T) {
	mockRepo := new(MockDocumentRepository)
	mockFiles := new(MockFileContentService)
	svc := service.NewDocumentService(mockRepo, mockFiles)

	mockRepo.On("BeginTX", mock.Anything).Return(
		nil,
		func() error { return nil },
		func() error { return nil },
		nil,
	)
	mockRepo.On("GetByUUID", mock.Anything, mock.Anything, "ghost").
		Return((*model.Document)(nil), sql.ErrNoRows)

	_, err := svc.DeleteDocument(contextWithDB(), "ghost")

	assert.ErrorIs(t, err, model.ErrNotFound)
	mockFiles.AssertNotCalled(t, "DeleteAll", mock.Anything, mock.Anything, mock.Anything)
}
