package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"path"
	"time"
	"training-center-files/config"
	"training-center-files/internal/model"
	"training-center-files/internal/util"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3FileClient : реализация удалённого файлового хранилища поверх S3
type S3FileClient struct {
	client *s3.Client
	bucket string
}

func NewS3FileClient(ctx context.Context, cfg *config.S3Config) (*S3FileClient, error) {
	var client *s3.Client

	if cfg.Local {
		client = s3.New(s3.Options{
			Region: cfg.Region,
			Credentials: credentials.NewStaticCredentialsProvider(
				"minioadmin",
				"minioadmin",
				"",
			),
			BaseEndpoint: aws.String(cfg.Endpoint),
			UsePathStyle: true,
		})

		if err := createBucketIfNotExists(ctx, client, cfg.Bucket); err != nil {
			return nil, util.LogError("[S3FileClient] ошибка создания бакета", err)
		}
	} else {
		awsCfg, err := awsConfig.LoadDefaultConfig(ctx, awsConfig.WithRegion(cfg.Region))
		if err != nil {
			return nil, util.LogError("[S3FileClient] ошибка загрузки AWS config", err)
		}
		client = s3.NewFromConfig(awsCfg)
	}

	return &S3FileClient{
		client: client,
		bucket: cfg.Bucket,
	}, nil
}

// createBucketIfNotExists создает бакет если он не существует
func createBucketIfNotExists(ctx context.Context, client *s3.Client, bucket string) error {
	_, err := client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(bucket),
	})

	if err == nil {
		return nil // Бакет уже существует
	}

	_, err = client.CreateBucket(ctx, &s3.CreateBucketInput{
		Bucket: aws.String(bucket),
	})

	if err != nil {
		return util.LogError("[S3FileClient] ошибка создания бакета", err)
	}

	log.Printf("[S3FileClient] бакет %s успешно создан", bucket)
	return nil
}

// fileKey : ключ объекта в бакете
// scope входит в префикс, поэтому файлы слушателей и учебных центров не пересекаются
func fileKey(scope model.Scope, documentUUID, fileUUID string) string {
	return fmt.Sprintf("scopes/%s/%s/documents/%s/files/%s", scope.Type, scope.UUID, documentUUID, fileUUID)
}

func filePrefix(scope model.Scope, documentUUID string) string {
	return fmt.Sprintf("scopes/%s/%s/documents/%s/files/", scope.Type, scope.UUID, documentUUID)
}

// GetFileBytes : скачивает содержимое файла вместе с Content-Type хранилища
func (c *S3FileClient) GetFileBytes(ctx context.Context, scope model.Scope, documentUUID, fileUUID string) (*model.FileBytes, error) {
	out, err := c.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(fileKey(scope, documentUUID, fileUUID)),
	})
	if err != nil {
		return nil, mapStorageError("[S3FileClient] не удалось получить объект", err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, util.LogError("[S3FileClient] ошибка чтения тела объекта", err)
	}

	return &model.FileBytes{
		Bytes:       data,
		ContentType: aws.ToString(out.ContentType),
	}, nil
}

// GetFileMetadata : HEAD запрос за мета-данными без скачивания содержимого
func (c *S3FileClient) GetFileMetadata(ctx context.Context, scope model.Scope, documentUUID, fileUUID string) (*model.FileDescriptor, error) {
	out, err := c.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(fileKey(scope, documentUUID, fileUUID)),
	})
	if err != nil {
		return nil, mapStorageError("[S3FileClient] не удалось получить мета-данные объекта", err)
	}

	return descriptorFromHead(fileUUID, out), nil
}

func descriptorFromHead(fileUUID string, out *s3.HeadObjectOutput) *model.FileDescriptor {
	descriptor := &model.FileDescriptor{
		UUID:      fileUUID,
		Name:      fileUUID,
		MimeType:  aws.ToString(out.ContentType),
		SizeBytes: aws.ToInt64(out.ContentLength),
		Sha256:    out.Metadata["sha256"],
	}

	if name, err := url.PathUnescape(out.Metadata["filename"]); err == nil && name != "" {
		descriptor.Name = name
	}

	// у S3 нет времени создания объекта, только время последней записи;
	// при его отсутствии подставляем текущее время и помечаем это в дескрипторе
	if out.LastModified != nil {
		descriptor.CreatedAt = *out.LastModified
		descriptor.UpdatedAt = *out.LastModified
	} else {
		now := time.Now()
		descriptor.CreatedAt = now
		descriptor.UpdatedAt = now
		descriptor.TimesDerived = true
	}

	return descriptor
}

// ListFiles : список файлов документа
func (c *S3FileClient) ListFiles(ctx context.Context, scope model.Scope, documentUUID string) ([]model.FileDescriptor, error) {
	prefix := filePrefix(scope, documentUUID)

	descriptors := []model.FileDescriptor{}
	paginator := s3.NewListObjectsV2Paginator(c.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(c.bucket),
		Prefix: aws.String(prefix),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, mapStorageError("[S3FileClient] не удалось получить список объектов", err)
		}

		for _, object := range page.Contents {
			fileUUID := path.Base(aws.ToString(object.Key))

			metadata, err := c.GetFileMetadata(ctx, scope, documentUUID, fileUUID)
			if err != nil {
				// листинг не прерываем, отдаём что знаем из списка
				log.Printf("[S3FileClient] не удалось получить мета-данные %s: %v", fileUUID, err)
				metadata = &model.FileDescriptor{
					UUID:      fileUUID,
					Name:      fileUUID,
					SizeBytes: aws.ToInt64(object.Size),
					CreatedAt: aws.ToTime(object.LastModified),
					UpdatedAt: aws.ToTime(object.LastModified),
				}
			}

			descriptors = append(descriptors, *metadata)
		}
	}

	return descriptors, nil
}

// UploadFile : загружает содержимое файла, имя сохраняется в мета-данных объекта
func (c *S3FileClient) UploadFile(ctx context.Context, scope model.Scope, documentUUID string, descriptor *model.FileDescriptor, data []byte) error {
	_, err := c.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(fileKey(scope, documentUUID, descriptor.UUID)),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(descriptor.MimeType),
		Metadata: map[string]string{
			"filename": url.PathEscape(descriptor.Name),
			"sha256":   descriptor.Sha256,
		},
	})
	if err != nil {
		return mapStorageError("[S3FileClient] не удалось загрузить объект", err)
	}

	return nil
}

// DeleteFile : удаление одного объекта
func (c *S3FileClient) DeleteFile(ctx context.Context, scope model.Scope, documentUUID, fileUUID string) error {
	_, err := c.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(fileKey(scope, documentUUID, fileUUID)),
	})
	if err != nil {
		return mapStorageError("[S3FileClient] не удалось удалить объект", err)
	}
	return nil
}

// DeleteAllFiles : удаляет все файлы документа батчами по префиксу
func (c *S3FileClient) DeleteAllFiles(ctx context.Context, scope model.Scope, documentUUID string) error {
	prefix := filePrefix(scope, documentUUID)

	paginator := s3.NewListObjectsV2Paginator(c.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(c.bucket),
		Prefix: aws.String(prefix),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return mapStorageError("[S3FileClient] не удалось получить список объектов", err)
		}
		if len(page.Contents) == 0 {
			continue
		}

		objects := make([]types.ObjectIdentifier, 0, len(page.Contents))
		for _, object := range page.Contents {
			objects = append(objects, types.ObjectIdentifier{Key: object.Key})
		}

		_, err = c.client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
			Bucket: aws.String(c.bucket),
			Delete: &types.Delete{
				Objects: objects,
				Quiet:   aws.Bool(true),
			},
		})
		if err != nil {
			return mapStorageError("[S3FileClient] не удалось удалить объекты", err)
		}
	}

	return nil
}

// mapStorageError приводит ошибки хранилища к типизированным
// 404 и 403 различимы для вызывающей стороны, 401 запускает сценарий повторного входа
func mapStorageError(message string, err error) error {
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return fmt.Errorf("%s: %w", message, model.ErrNotFound)
	}

	var respErr *awshttp.ResponseError
	if errors.As(err, &respErr) {
		switch respErr.HTTPStatusCode() {
		case http.StatusNotFound:
			return fmt.Errorf("%s: %w", message, model.ErrNotFound)
		case http.StatusForbidden:
			return fmt.Errorf("%s: %w", message, model.ErrForbidden)
		case http.StatusUnauthorized:
			return fmt.Errorf("%s: %w", message, model.ErrUnauthorized)
		}
	}

	return util.LogError(message, err)
}
