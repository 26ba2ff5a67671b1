package requestresponse

import (
	"time"
	"training-center-files/internal/model"
)

// FileResponse : описывает файл документа для JSON-ответа
type FileResponse struct {
	UUID         string `json:"id" example:"c3d9e8f0-1a2b-4c5d-8e9f-abcdef012345"`
	Name         string `json:"name" example:"scan.pdf"`
	MimeType     string `json:"mime" example:"application/pdf"`
	SizeBytes    int64  `json:"size" example:"204800"`
	Sha256       string `json:"sha256,omitempty"`
	CreatedAt    string `json:"created" example:"2025-08-23T12:34:56Z"`
	UpdatedAt    string `json:"updated" example:"2025-08-23T12:34:56Z"`
	TimesDerived bool   `json:"times_derived,omitempty"`
}

// FileResponseFromModel : конвертирует model.FileDescriptor в FileResponse
func FileResponseFromModel(descriptor *model.FileDescriptor) FileResponse {
	return FileResponse{
		UUID:         descriptor.UUID,
		Name:         descriptor.Name,
		MimeType:     descriptor.MimeType,
		SizeBytes:    descriptor.SizeBytes,
		Sha256:       descriptor.Sha256,
		CreatedAt:    descriptor.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    descriptor.UpdatedAt.Format(time.RFC3339),
		TimesDerived: descriptor.TimesDerived,
	}
}

// FileContentResponse : base64 содержимое файла для предпросмотра
// contentType никогда не пустой, в крайнем случае application/octet-stream
type FileContentResponse struct {
	Data struct {
		Content     string `json:"content"`
		ContentType string `json:"contentType" example:"application/pdf"`
	} `json:"data"`
}

// UploadFileResponse : ответ при загрузке файла
type UploadFileResponse struct {
	Data FileResponse `json:"data"`
}

// ListFilesResponse : ответ API со списком файлов документа
type ListFilesResponse struct {
	Data struct {
		Files []FileResponse `json:"files"`
	} `json:"data"`
	Count int `json:"count" example:"3"`
}
