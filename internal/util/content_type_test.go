package util_test

import (
	"testing"
	"training-center-files/internal/util"

	"github.com/stretchr/testify/assert"
)

func TestContentTypeByExtension(t *testing.T) {
	tests := []struct {
		filename string
		expected string
	}{
		{"report.pdf", "application/pdf"},
		{"photo.jpg", "image/jpeg"},
		{"photo.JPEG", "image/jpeg"},
		{"scan.png", "image/png"},
		{"contract.docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
		{"table.xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"},
		{"notes.txt", "text/plain"},
		{"export.csv", "text/csv"},
		{"data.json", "application/json"},
		{"archive.zip", "application/zip"},
		{"archive.with.dots.pdf", "application/pdf"},
		{"noextension", "application/octet-stream"},
		{"", "application/octet-stream"},
		{"strange.xyz", "application/octet-stream"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, util.ContentTypeByExtension(tt.filename), tt.filename)
	}
}
