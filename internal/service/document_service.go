package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"training-center-files/config"
	"training-center-files/internal/model"
	"training-center-files/internal/ports"
	"training-center-files/internal/util"
)

type DocumentService struct {
	documentRepository ports.DocumentRepository
	fileService        ports.FileContentService
}

func NewDocumentService(
	documentRepository ports.DocumentRepository,
	fileService ports.FileContentService,
) *DocumentService {
	return &DocumentService{
		documentRepository: documentRepository,
		fileService:        fileService,
	}
}

// CreateDocument : регистрирует документ в БД
func (s *DocumentService) CreateDocument(ctx context.Context, document *model.Document) error {
	db, ok := ctx.Value("db").(*config.Database)
	if ok == false {
		return fmt.Errorf("[DocumentService] database connection не найден в context")
	}

	if err := s.documentRepository.Create(ctx, db, document); err != nil {
		return util.LogError("[DocumentService] не удалось сохранить документ в БД", err)
	}

	log.Printf("[DocumentService] документ %s успешно создан", document.Title)
	return nil
}

// GetDocumentByUUID : возвращает документ по UUID
func (s *DocumentService) GetDocumentByUUID(ctx context.Context, documentUUID string) (*model.Document, error) {
	db, ok := ctx.Value("db").(*config.Database)
	if ok == false {
		return nil, fmt.Errorf("[DocumentService] database connection не найден в context")
	}

	document, err := s.documentRepository.GetByUUID(ctx, db, documentUUID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("[DocumentService] документ %s: %w", documentUUID, model.ErrNotFound)
		}
		return nil, util.LogError("[DocumentService] не удалось получить документ", err)
	}

	return document, nil
}

// ListDocuments : список документов scope (cursor-based pagination)
func (s *DocumentService) ListDocuments(ctx context.Context, scope model.Scope, cursor string, limit int) ([]model.Document, string, error) {
	db, ok := ctx.Value("db").(*config.Database)
	if ok == false {
		return nil, "", fmt.Errorf("[DocumentService] database connection не найден в context")
	}

	docs, nextCursor, err := s.documentRepository.ListByScope(ctx, db, scope, cursor, limit)
	if err != nil {
		return nil, "", util.LogError("[DocumentService] не удалось получить список документов", err)
	}

	return docs, nextCursor, nil
}

// DeleteDocument помечает документ удалённым, затем удаляет его файлы
// из хранилища и инвалидирует кэш содержимого по префиксу документа
func (s *DocumentService) DeleteDocument(ctx context.Context, documentUUID string) (map[string]bool, error) {
	exec, rollback, commit, err := s.documentRepository.BeginTX(ctx)
	if err != nil {
		return nil, util.LogError("[DocumentService] ошибка начала транзакции", err)
	}
	defer rollback()

	document, err := s.documentRepository.GetByUUID(ctx, exec, documentUUID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("[DocumentService] документ %s: %w", documentUUID, model.ErrNotFound)
		}
		return nil, util.LogError("[DocumentService] документ не найден", err)
	}

	deletedUUID, err := s.documentRepository.Delete(ctx, exec, documentUUID)
	if err != nil {
		return nil, util.LogError("[DocumentService] ошибка удаления документа из БД", err)
	}

	if err := commit(); err != nil {
		return nil, fmt.Errorf("[DocumentService] ошибка коммита транзакции: %w", err)
	}

	if err := s.fileService.DeleteAll(ctx, document.Scope(), documentUUID); err != nil {
		return nil, util.LogError("[DocumentService] ошибка удаления файлов документа", err)
	}

	log.Printf("[DocumentService] документ %s успешно удален", document.Title)

	response := map[string]bool{
		deletedUUID: true,
	}

	return response, nil
}
