package model

import "errors"

// Типизированные ошибки файлового слоя
// Обработчики сопоставляют их с HTTP статусами через errors.Is
var (
	// ErrMissingIdentifier : из объекта файла не удалось получить идентификатор
	ErrMissingIdentifier = errors.New("идентификатор файла отсутствует")

	// ErrNotFound : файл или документ не найден на сервере (404)
	ErrNotFound = errors.New("не найдено на сервере")

	// ErrForbidden : нет прав доступа к файлу (403)
	ErrForbidden = errors.New("доступ запрещён")

	// ErrUnauthorized : ошибка аутентификации (401)
	ErrUnauthorized = errors.New("ошибка аутентификации")

	// ErrConversion : не удалось сконвертировать содержимое файла в base64
	ErrConversion = errors.New("не удалось обработать содержимое файла")
)
