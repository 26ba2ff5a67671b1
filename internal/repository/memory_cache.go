package repository

import (
	"context"
	"strings"
	"sync"
	"time"
	"training-center-files/internal/model"
)

type memoryEntry struct {
	content  *model.FileContent
	storedAt time.Time
}

// MemoryContentCache : кэш содержимого файлов в памяти процесса
// Часы инжектируются, чтобы тесты могли управлять временем
type MemoryContentCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

func NewMemoryContentCache(ttl time.Duration, now func() time.Time) *MemoryContentCache {
	if now == nil {
		now = time.Now
	}
	return &MemoryContentCache{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     now,
	}
}

// Get : просроченная запись считается отсутствующей и удаляется лениво
func (c *MemoryContentCache) Get(_ context.Context, key string) (*model.FileContent, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, nil // нет в кэше
	}

	if c.now().Sub(entry.storedAt) >= c.ttl {
		c.mu.Lock()
		// запись могли перезаписать, пока мы не держали замок
		if current, ok := c.entries[key]; ok && current.storedAt.Equal(entry.storedAt) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return nil, nil
	}

	return entry.content, nil
}

func (c *MemoryContentCache) Set(_ context.Context, key string, content *model.FileContent) error {
	c.mu.Lock()
	c.entries[key] = memoryEntry{content: content, storedAt: c.now()}
	c.mu.Unlock()
	return nil
}

func (c *MemoryContentCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
	return nil
}

// DeletePrefix : удаляет все записи, чьи ключи начинаются с prefix
func (c *MemoryContentCache) DeletePrefix(_ context.Context, prefix string) error {
	c.mu.Lock()
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}
	c.mu.Unlock()
	return nil
}
