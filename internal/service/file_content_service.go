package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"time"
	"training-center-files/internal/model"
	"training-center-files/internal/ports"
	"training-center-files/internal/util"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

// FileContentService отдаёт раскодированное содержимое файлов для
// предпросмотра и скачивания. Повторные запросы одного файла в пределах
// TTL обслуживаются из кэша без походов в хранилище, а одновременные
// запросы одного ключа сворачиваются в один поход через singleflight.
type FileContentService struct {
	remoteClient ports.RemoteFileClient
	contentCache ports.ContentCache
	chunkSize    int
	flight       singleflight.Group
}

func NewFileContentService(
	remoteClient ports.RemoteFileClient,
	contentCache ports.ContentCache,
	chunkSize int,
) *FileContentService {
	if chunkSize <= 0 {
		chunkSize = util.DefaultChunkSize
	}
	return &FileContentService{
		remoteClient: remoteClient,
		contentCache: contentCache,
		chunkSize:    chunkSize,
	}
}

// contentKey : составной ключ кэша (scope, документ, файл)
func contentKey(scope model.Scope, documentUUID, fileUUID string) string {
	return fmt.Sprintf("filecontent:%s:%s:%s", scope, documentUUID, fileUUID)
}

// contentPrefix : префикс всех ключей файлов одного документа
func contentPrefix(scope model.Scope, documentUUID string) string {
	return fmt.Sprintf("filecontent:%s:%s:", scope, documentUUID)
}

// GetContent : содержимое файла из кэша либо из хранилища
// Ошибки чтения кэша и мета-данных не фатальны, ошибки скачивания содержимого — фатальны
func (s *FileContentService) GetContent(ctx context.Context, scope model.Scope, documentUUID string, ref model.FileRef) (*model.FileContent, error) {
	fileUUID := ref.Resolve()
	if fileUUID == "" {
		return nil, fmt.Errorf("[FileContentService] %w", model.ErrMissingIdentifier)
	}

	key := contentKey(scope, documentUUID, fileUUID)

	content, err := s.contentCache.Get(ctx, key)
	if err != nil {
		log.Printf("[FileContentService] ошибка чтения кэша: %v", err)
	}
	if content != nil {
		log.Printf("[FileContentService] файл %s взят из кэша", fileUUID)
		return content, nil
	}

	result, err, _ := s.flight.Do(key, func() (interface{}, error) {
		// пока ждали очередь, содержимое мог положить предыдущий вызов
		if cached, err := s.contentCache.Get(ctx, key); err == nil && cached != nil {
			return cached, nil
		}
		return s.fetchAndCache(ctx, scope, documentUUID, fileUUID, ref.DisplayName(), key)
	})
	if err != nil {
		return nil, err
	}

	return result.(*model.FileContent), nil
}

func (s *FileContentService) fetchAndCache(ctx context.Context, scope model.Scope, documentUUID, fileUUID, fallbackName, key string) (*model.FileContent, error) {
	metadata, err := s.remoteClient.GetFileMetadata(ctx, scope, documentUUID, fileUUID)
	if err != nil {
		// мета-данные нужны только для уточнения MIME, без них продолжаем
		log.Printf("[FileContentService] не удалось получить мета-данные файла %s: %v", fileUUID, err)
		metadata = nil
	}

	raw, err := s.remoteClient.GetFileBytes(ctx, scope, documentUUID, fileUUID)
	if err != nil {
		return nil, util.LogError("[FileContentService] не удалось получить содержимое файла", err)
	}

	encoded, err := util.EncodeBase64Chunked(raw.Bytes, s.chunkSize)
	if err != nil {
		log.Printf("[FileContentService] ошибка конвертации файла %s: %v", fileUUID, err)
		return nil, fmt.Errorf("[FileContentService] файл %s: %w", fileUUID, model.ErrConversion)
	}

	content := &model.FileContent{
		Content:     encoded,
		ContentType: resolveContentType(raw, metadata, fallbackName),
	}

	// при ошибке кэширования содержимое всё равно отдаём
	if err := s.contentCache.Set(ctx, key, content); err != nil {
		log.Printf("[FileContentService] ошибка кэширования содержимого: %v", err)
	}

	log.Printf("[FileContentService] файл %s скачан из хранилища и кэширован", fileUUID)
	return content, nil
}

// resolveContentType : порядок определения MIME
// заголовок хранилища -> мета-данные -> расширение имени -> octet-stream
// Хранилище проставляет application/octet-stream объектам без типа,
// поэтому такой заголовок считается отсутствующим
func resolveContentType(raw *model.FileBytes, metadata *model.FileDescriptor, fallbackName string) string {
	const generic = "application/octet-stream"

	if raw.ContentType != "" && raw.ContentType != generic {
		return raw.ContentType
	}

	if metadata != nil && metadata.MimeType != "" && metadata.MimeType != generic {
		return metadata.MimeType
	}

	name := fallbackName
	if metadata != nil && metadata.Name != "" {
		name = metadata.Name
	}
	if name != "" {
		return util.ContentTypeByExtension(name)
	}

	return generic
}

// ListFiles : список файлов документа из хранилища
func (s *FileContentService) ListFiles(ctx context.Context, scope model.Scope, documentUUID string) ([]model.FileDescriptor, error) {
	descriptors, err := s.remoteClient.ListFiles(ctx, scope, documentUUID)
	if err != nil {
		return nil, util.LogError("[FileContentService] не удалось получить список файлов", err)
	}
	return descriptors, nil
}

// Upload : загрузка файла в хранилище
// Кэш содержимого не наполняется, следующий GetContent сам скачает и закэширует
func (s *FileContentService) Upload(ctx context.Context, scope model.Scope, documentUUID, filename, mimeType string, data []byte) (*model.FileDescriptor, error) {
	if filename == "" {
		return nil, fmt.Errorf("[FileContentService] %w", model.ErrMissingIdentifier)
	}
	if mimeType == "" {
		mimeType = util.ContentTypeByExtension(filename)
	}

	hash := sha256.Sum256(data)
	now := time.Now()
	descriptor := &model.FileDescriptor{
		UUID:      uuid.New().String(),
		Name:      filename,
		MimeType:  mimeType,
		SizeBytes: int64(len(data)),
		Sha256:    hex.EncodeToString(hash[:]),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.remoteClient.UploadFile(ctx, scope, documentUUID, descriptor, data); err != nil {
		return nil, util.LogError("[FileContentService] не удалось загрузить файл", err)
	}

	log.Printf("[FileContentService] файл %s успешно загружен", descriptor.Name)
	return descriptor, nil
}

// Delete : удаляет файл в хранилище и ровно одну запись кэша
func (s *FileContentService) Delete(ctx context.Context, scope model.Scope, documentUUID, fileUUID string) error {
	if fileUUID == "" {
		return fmt.Errorf("[FileContentService] %w", model.ErrMissingIdentifier)
	}

	if err := s.remoteClient.DeleteFile(ctx, scope, documentUUID, fileUUID); err != nil {
		return util.LogError("[FileContentService] не удалось удалить файл", err)
	}

	if err := s.contentCache.Delete(ctx, contentKey(scope, documentUUID, fileUUID)); err != nil {
		log.Printf("[FileContentService] ошибка удаления из кэша: %v", err)
	}

	return nil
}

// DeleteAll : удаляет все файлы документа и инвалидирует кэш по префиксу
func (s *FileContentService) DeleteAll(ctx context.Context, scope model.Scope, documentUUID string) error {
	if err := s.remoteClient.DeleteAllFiles(ctx, scope, documentUUID); err != nil {
		return util.LogError("[FileContentService] не удалось удалить файлы документа", err)
	}

	if err := s.contentCache.DeletePrefix(ctx, contentPrefix(scope, documentUUID)); err != nil {
		log.Printf("[FileContentService] ошибка инвалидации кэша документа: %v", err)
	}

	return nil
}
