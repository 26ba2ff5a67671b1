package util

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// DefaultChunkSize : размер блока конвертации байтов в base64
const DefaultChunkSize = 8192

// EncodeBase64Chunked конвертирует буфер в base64 блоками фиксированного
// размера, а не одним проходом по всему буферу. На многомегабайтных
// сканах и PDF одноразовая конвертация держит в памяти сразу и буфер,
// и весь результат; потоковый энкодер пишет результат инкрементально.
func EncodeBase64Chunked(data []byte, chunkSize int) (string, error) {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	var builder strings.Builder
	builder.Grow(base64.StdEncoding.EncodedLen(len(data)))

	encoder := base64.NewEncoder(base64.StdEncoding, &builder)
	for offset := 0; offset < len(data); offset += chunkSize {
		end := offset + chunkSize
		if end > len(data) {
			end = len(data)
		}
		if _, err := encoder.Write(data[offset:end]); err != nil {
			return "", fmt.Errorf("ошибка конвертации блока %d: %w", offset/chunkSize, err)
		}
	}

	if err := encoder.Close(); err != nil {
		return "", fmt.Errorf("ошибка завершения конвертации: %w", err)
	}

	return builder.String(), nil
}
