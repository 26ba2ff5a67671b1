package ports

import (
	"context"
	"training-center-files/internal/model"
)

// ContentCache : кэш содержимого файлов с TTL
// Get возвращает nil, nil когда записи нет либо она просрочена
type ContentCache interface {
	Get(ctx context.Context, key string) (*model.FileContent, error)
	Set(ctx context.Context, key string, content *model.FileContent) error
	Delete(ctx context.Context, key string) error
	DeletePrefix(ctx context.Context, prefix string) error
}
