package requestresponse

import (
	"time"
	"training-center-files/internal/model"
)

// CreateDocumentRequest : мета-данные нового документа
type CreateDocumentRequest struct {
	Title string `json:"title" example:"Договор об обучении"`
}

// DocumentResponse : описывает документ для JSON-ответа
type DocumentResponse struct {
	UUID      string `json:"id" example:"b6a1e1c4-4b1d-4f1e-8b29-1234567890ab"`
	ScopeType string `json:"scope_type" example:"attendee"`
	ScopeUUID string `json:"scope_uuid" example:"a11fe0c0-7e02-4f60-bb3c-0987654321ff"`
	Title     string `json:"title" example:"Договор об обучении"`
	CreatedAt string `json:"created" example:"2025-08-23T12:34:56Z"`
	UpdatedAt string `json:"updated" example:"2025-08-23T12:34:56Z"`
}

// DocumentResponseFromModel : конвертирует model.Document в DocumentResponse
func DocumentResponseFromModel(doc *model.Document) DocumentResponse {
	return DocumentResponse{
		UUID:      doc.UUID,
		ScopeType: doc.ScopeType,
		ScopeUUID: doc.ScopeUUID,
		Title:     doc.Title,
		CreatedAt: doc.CreatedAt.Format(time.RFC3339),
		UpdatedAt: doc.UpdatedAt.Format(time.RFC3339),
	}
}

// GetDocumentResponse : ответ для одного документа
type GetDocumentResponse struct {
	Data DocumentResponse `json:"data"`
}

// ListDocumentsResponse : ответ API со списком документов
type ListDocumentsResponse struct {
	Data struct {
		Docs []DocumentResponse `json:"docs"`
	} `json:"data"`
	NextCursor string `json:"next_cursor,omitempty" example:"2025-08-23T12:34:56.123456Z"`
	Count      int    `json:"count" example:"10"`
}
