package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"
	"training-center-files/internal/model"
	requestresponse "training-center-files/internal/model/requestresponse"
	"training-center-files/internal/ports"
	"training-center-files/internal/util"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type DocumentHandler struct {
	ports.DocumentService
}

func NewDocumentHandler(documentService ports.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService}
}

// scopeFromRequest : разбирает scope из URL
func scopeFromRequest(r *http.Request) (model.Scope, error) {
	return model.NewScope(chi.URLParam(r, "scope_type"), chi.URLParam(r, "scope_uuid"))
}

// CreateDocument godoc
// @Summary Регистрация нового документа
// @Description Создаёт документ в указанном scope (attendee либо training_center).
// Файлы загружаются отдельным запросом после создания документа.
// @Tags Documents
// @Accept json
// @Produce json
// @Param scope_type path string true "Тип scope: attendee либо training_center"
// @Param scope_uuid path string true "UUID scope"
// @Param body body requestresponse.CreateDocumentRequest true "Мета-данные документа"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 201 {object} requestresponse.GetDocumentResponse "Созданный документ"
// @Failure 400 {object} requestresponse.ErrorResponse "Неверный scope или тело запроса"
// @Failure 401 {object} requestresponse.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/scopes/{scope_type}/{scope_uuid}/docs [post]
func (h *DocumentHandler) CreateDocument(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	scope, err := scopeFromRequest(r)
	if err != nil {
		util.HandleError(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req requestresponse.CreateDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		util.HandleError(w, "некорректный JSON", http.StatusBadRequest)
		return
	}
	if req.Title == "" {
		util.HandleError(w, "title обязателен", http.StatusBadRequest)
		return
	}

	now := time.Now()
	document := &model.Document{
		UUID:      uuid.New().String(),
		ScopeType: scope.Type,
		ScopeUUID: scope.UUID,
		Title:     req.Title,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := h.DocumentService.CreateDocument(ctx, document); err != nil {
		handleServiceError(w, err)
		return
	}

	response := requestresponse.GetDocumentResponse{
		Data: requestresponse.DocumentResponseFromModel(document),
	}

	util.WriteJSON(w, http.StatusCreated, response)
}

// ListDocuments godoc
// @Summary Список документов scope
// @Description Возвращает документы scope с cursor-based pagination
// @Tags Documents
// @Produce json
// @Param scope_type path string true "Тип scope: attendee либо training_center"
// @Param scope_uuid path string true "UUID scope"
// @Param cursor query string false "Cursor из предыдущего ответа"
// @Param limit query int false "Размер страницы (по умолчанию 20)"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.ListDocumentsResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/scopes/{scope_type}/{scope_uuid}/docs [get]
func (h *DocumentHandler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	scope, err := scopeFromRequest(r)
	if err != nil {
		util.HandleError(w, err.Error(), http.StatusBadRequest)
		return
	}

	limit := 20
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 || parsed > 100 {
			util.HandleError(w, "неверный формат limit", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	docs, nextCursor, err := h.DocumentService.ListDocuments(r.Context(), scope, r.URL.Query().Get("cursor"), limit)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	response := requestresponse.ListDocumentsResponse{
		NextCursor: nextCursor,
		Count:      len(docs),
	}
	response.Data.Docs = make([]requestresponse.DocumentResponse, 0, len(docs))
	for i := range docs {
		response.Data.Docs = append(response.Data.Docs, requestresponse.DocumentResponseFromModel(&docs[i]))
	}

	util.WriteJSON(w, http.StatusOK, response)
}

// GetDocument godoc
// @Summary Получение документа по ID
// @Tags Documents
// @Produce json
// @Param doc_id path string true "UUID документа"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.GetDocumentResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/docs/{doc_id} [get]
func (h *DocumentHandler) GetDocument(w http.ResponseWriter, r *http.Request) {
	docUUID := chi.URLParam(r, "doc_id")
	if docUUID == "" {
		util.HandleError(w, "ID документа обязателен", http.StatusBadRequest)
		return
	}

	document, err := h.DocumentService.GetDocumentByUUID(r.Context(), docUUID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	response := requestresponse.GetDocumentResponse{
		Data: requestresponse.DocumentResponseFromModel(document),
	}

	util.WriteJSON(w, http.StatusOK, response)
}

// DeleteDocument godoc
// @Summary Удаление документа
// @Description Помечает документ удалённым, удаляет его файлы из хранилища
// и инвалидирует кэш содержимого
// @Tags Documents
// @Produce json
// @Param doc_id path string true "UUID документа"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.ResponseMessage
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/docs/{doc_id} [delete]
func (h *DocumentHandler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	docUUID := chi.URLParam(r, "doc_id")
	if docUUID == "" {
		util.HandleError(w, "ID документа обязателен", http.StatusBadRequest)
		return
	}

	deleted, err := h.DocumentService.DeleteDocument(r.Context(), docUUID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	response := requestresponse.ResponseMessage{
		Response: map[string]interface{}{},
	}
	for deletedUUID, ok := range deleted {
		response.Response[deletedUUID] = ok
	}

	util.WriteJSON(w, http.StatusOK, response)
}
