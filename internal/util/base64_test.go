package util_test

import (
	"encoding/base64"
	"math/rand"
	"testing"
	"training-center-files/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeBase64Chunked(t *testing.T) {
	sizes := []int{0, 1, 2, 3, 8191, 8192, 8193, 1_000_000}

	for _, size := range sizes {
		data := make([]byte, size)
		rand.New(rand.NewSource(int64(size))).Read(data)

		encoded, err := util.EncodeBase64Chunked(data, util.DefaultChunkSize)

		require.NoError(t, err)
		// блочная конвертация должна давать тот же результат, что и одним проходом
		assert.Equal(t, base64.StdEncoding.EncodeToString(data), encoded, "размер %d", size)

		decoded, err := base64.StdEncoding.DecodeString(encoded)
		require.NoError(t, err)
		assert.Equal(t, data, decoded, "размер %d", size)
	}
}

func TestEncodeBase64Chunked_SmallChunk(t *testing.T) {
	data := []byte("содержимое файла для конвертации")

	// размер блока не кратен трём, стыки блоков не должны ломать кодировку
	encoded, err := util.EncodeBase64Chunked(data, 5)

	require.NoError(t, err)
	assert.Equal(t, base64.StdEncoding.EncodeToString(data), encoded)
}

func TestEncodeBase64Chunked_InvalidChunkSizeFallsBack(t *testing.T) {
	data := []byte("abc")

	encoded, err := util.EncodeBase64Chunked(data, 0)

	require.NoError(t, err)
	assert.Equal(t, "YWJj", encoded)
}
