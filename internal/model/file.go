package model

import "time"

// FileDescriptor : мета-данные загруженного файла без его содержимого
type FileDescriptor struct {
	UUID      string    `json:"id"`
	Name      string    `json:"name"`
	MimeType  string    `json:"mime,omitempty"`
	SizeBytes int64     `json:"size"`
	Sha256    string    `json:"sha256,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	// TimesDerived выставляется, когда хранилище не вернуло время создания
	// и поля CreatedAt/UpdatedAt подставлены текущим временем
	TimesDerived bool `json:"times_derived,omitempty"`
}

// FileContent : раскодированное содержимое файла для предпросмотра/скачивания
// ContentType никогда не пустой, в крайнем случае application/octet-stream
type FileContent struct {
	Content     string `json:"content"`
	ContentType string `json:"contentType"`
}

// FileBytes : сырой ответ хранилища на запрос содержимого
type FileBytes struct {
	Bytes       []byte
	ContentType string // Content-Type от хранилища, может быть пустым
}

// FileRef : слабо типизированная ссылка на файл из запроса клиента
// Клиенты исторически передают идентификатор в одном из четырёх полей
type FileRef struct {
	UUID     string `json:"id"`
	FileUUID string `json:"file_id"`
	Name     string `json:"name"`
	FileName string `json:"file_name"`
}

// Resolve : нормализация идентификатора файла
// Порядок: id -> file_id -> name -> file_name, пустая строка если ничего нет
// Никогда не возвращает ошибку, решение за вызывающей стороной
func (r FileRef) Resolve() string {
	switch {
	case r.UUID != "":
		return r.UUID
	case r.FileUUID != "":
		return r.FileUUID
	case r.Name != "":
		return r.Name
	case r.FileName != "":
		return r.FileName
	}
	return ""
}

// DisplayName : имя файла для определения MIME по расширению
func (r FileRef) DisplayName() string {
	if r.Name != "" {
		return r.Name
	}
	return r.FileName
}
