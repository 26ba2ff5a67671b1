package handler

import (
	"errors"
	"log"
	"net/http"
	"training-center-files/internal/model"
	"training-center-files/internal/util"
)

// handleServiceError сопоставляет типизированные ошибки сервисов с HTTP статусами
func handleServiceError(w http.ResponseWriter, err error) {
	log.Println(err)
	switch {
	case errors.Is(err, model.ErrMissingIdentifier):
		util.HandleError(w, "невозможно открыть файл: отсутствует идентификатор", http.StatusBadRequest)
	case errors.Is(err, model.ErrNotFound):
		util.HandleError(w, "файл не найден на сервере", http.StatusNotFound)
	case errors.Is(err, model.ErrForbidden):
		util.HandleError(w, "нет прав доступа к этому файлу", http.StatusForbidden)
	case errors.Is(err, model.ErrUnauthorized):
		util.HandleError(w, "ошибка аутентификации, войдите заново", http.StatusUnauthorized)
	case errors.Is(err, model.ErrConversion):
		util.HandleError(w, "не удалось обработать содержимое файла", http.StatusInternalServerError)
	default:
		util.HandleError(w, "внутренняя ошибка сервера", http.StatusInternalServerError)
	}
}
