package handler

import (
	"context"
	"io"
	"net/http"
	"time"
	"training-center-files/internal/model"
	requestresponse "training-center-files/internal/model/requestresponse"
	"training-center-files/internal/ports"
	"training-center-files/internal/util"

	"github.com/go-chi/chi/v5"
)

type FileHandler struct {
	fileService     ports.FileContentService
	documentService ports.DocumentService
}

func NewFileHandler(fileService ports.FileContentService, documentService ports.DocumentService) *FileHandler {
	return &FileHandler{
		fileService:     fileService,
		documentService: documentService,
	}
}

// resolveDocument : scope файла определяется его документом
func (h *FileHandler) resolveDocument(w http.ResponseWriter, r *http.Request) (*model.Document, bool) {
	docUUID := chi.URLParam(r, "doc_id")
	if docUUID == "" {
		util.HandleError(w, "ID документа обязателен", http.StatusBadRequest)
		return nil, false
	}

	document, err := h.documentService.GetDocumentByUUID(r.Context(), docUUID)
	if err != nil {
		handleServiceError(w, err)
		return nil, false
	}

	return document, true
}

// ListFiles godoc
// @Summary Список файлов документа
// @Tags Files
// @Produce json
// @Param doc_id path string true "UUID документа"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.ListFilesResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/docs/{doc_id}/files [get]
func (h *FileHandler) ListFiles(w http.ResponseWriter, r *http.Request) {
	document, ok := h.resolveDocument(w, r)
	if !ok {
		return
	}

	files, err := h.fileService.ListFiles(r.Context(), document.Scope(), document.UUID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	response := requestresponse.ListFilesResponse{Count: len(files)}
	response.Data.Files = make([]requestresponse.FileResponse, 0, len(files))
	for i := range files {
		response.Data.Files = append(response.Data.Files, requestresponse.FileResponseFromModel(&files[i]))
	}

	util.WriteJSON(w, http.StatusOK, response)
}

// UploadFile godoc
// @Summary Загрузка файла документа
// @Description Принимает multipart/form-data, содержимое уходит в хранилище.
// Кэш содержимого не наполняется, первый предпросмотр скачает файл заново.
// @Tags Files
// @Accept multipart/form-data
// @Produce json
// @Param doc_id path string true "UUID документа"
// @Param file formData file true "Файл документа"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 201 {object} requestresponse.UploadFileResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/docs/{doc_id}/files [post]
func (h *FileHandler) UploadFile(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	document, ok := h.resolveDocument(w, r)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		util.HandleError(w, "неверный формат запроса", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		util.HandleError(w, "файл не найден в запросе", http.StatusBadRequest)
		return
	}
	defer file.Close()

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		util.HandleError(w, "ошибка чтения файла", http.StatusInternalServerError)
		return
	}

	descriptor, err := h.fileService.Upload(
		ctx,
		document.Scope(),
		document.UUID,
		header.Filename,
		header.Header.Get("Content-Type"),
		fileBytes,
	)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	response := requestresponse.UploadFileResponse{
		Data: requestresponse.FileResponseFromModel(descriptor),
	}

	util.WriteJSON(w, http.StatusCreated, response)
}

// GetFileContent godoc
// @Summary Содержимое файла для предпросмотра
// @Description Возвращает base64 содержимое и contentType. Идентификатор файла
// берётся из query-параметров в порядке id, file_id, name, file_name —
// клиенты исторически передают его в разных полях. Повторные запросы в
// пределах TTL обслуживаются из кэша.
// @Tags Files
// @Produce json
// @Param doc_id path string true "UUID документа"
// @Param id query string false "Идентификатор файла"
// @Param file_id query string false "Альтернативное поле идентификатора"
// @Param name query string false "Имя файла"
// @Param file_name query string false "Альтернативное поле имени"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.FileContentResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Идентификатор файла отсутствует"
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 403 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/docs/{doc_id}/files/content [get]
func (h *FileHandler) GetFileContent(w http.ResponseWriter, r *http.Request) {
	document, ok := h.resolveDocument(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	ref := model.FileRef{
		UUID:     query.Get("id"),
		FileUUID: query.Get("file_id"),
		Name:     query.Get("name"),
		FileName: query.Get("file_name"),
	}

	h.writeFileContent(w, r, document, ref)
}

// GetFileContentByID godoc
// @Summary Содержимое файла по идентификатору в пути
// @Tags Files
// @Produce json
// @Param doc_id path string true "UUID документа"
// @Param file_id path string true "UUID файла"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.FileContentResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 401 {object} requestresponse.ErrorResponse
// @Failure 403 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/docs/{doc_id}/files/{file_id}/content [get]
func (h *FileHandler) GetFileContentByID(w http.ResponseWriter, r *http.Request) {
	document, ok := h.resolveDocument(w, r)
	if !ok {
		return
	}

	ref := model.FileRef{UUID: chi.URLParam(r, "file_id")}
	h.writeFileContent(w, r, document, ref)
}

func (h *FileHandler) writeFileContent(w http.ResponseWriter, r *http.Request, document *model.Document, ref model.FileRef) {
	content, err := h.fileService.GetContent(r.Context(), document.Scope(), document.UUID, ref)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	response := requestresponse.FileContentResponse{}
	response.Data.Content = content.Content
	response.Data.ContentType = content.ContentType

	util.WriteJSON(w, http.StatusOK, response)
}

// DeleteFile godoc
// @Summary Удаление одного файла
// @Description Удаляет файл в хранилище и ровно одну запись кэша содержимого
// @Tags Files
// @Produce json
// @Param doc_id path string true "UUID документа"
// @Param file_id path string true "UUID файла"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.SuccessResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/docs/{doc_id}/files/{file_id} [delete]
func (h *FileHandler) DeleteFile(w http.ResponseWriter, r *http.Request) {
	document, ok := h.resolveDocument(w, r)
	if !ok {
		return
	}

	if err := h.fileService.Delete(r.Context(), document.Scope(), document.UUID, chi.URLParam(r, "file_id")); err != nil {
		handleServiceError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.SuccessResponse{Message: "файл удалён"})
}

// DeleteAllFiles godoc
// @Summary Удаление всех файлов документа
// @Description Удаляет файлы в хранилище и инвалидирует кэш по префиксу документа
// @Tags Files
// @Produce json
// @Param doc_id path string true "UUID документа"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.SuccessResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 404 {object} requestresponse.ErrorResponse
// @Failure 500 {object} requestresponse.ErrorResponse
// @Router /api/docs/{doc_id}/files [delete]
func (h *FileHandler) DeleteAllFiles(w http.ResponseWriter, r *http.Request) {
	document, ok := h.resolveDocument(w, r)
	if !ok {
		return
	}

	if err := h.fileService.DeleteAll(r.Context(), document.Scope(), document.UUID); err != nil {
		handleServiceError(w, err)
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.SuccessResponse{Message: "файлы документа удалены"})
}
