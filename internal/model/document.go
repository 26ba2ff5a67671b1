package model

import (
	"fmt"
	"time"
)

// Типы scope, к которым может принадлежать документ
const (
	ScopeAttendee       = "attendee"
	ScopeTrainingCenter = "training_center"
)

// Scope : пространство имён документа (слушатель либо учебный центр)
// Используется как префикс ключей кэша и путей в хранилище
type Scope struct {
	Type string `json:"type"`
	UUID string `json:"uuid"`
}

func NewScope(scopeType, scopeUUID string) (Scope, error) {
	if scopeType != ScopeAttendee && scopeType != ScopeTrainingCenter {
		return Scope{}, fmt.Errorf("неизвестный тип scope: %q", scopeType)
	}
	if scopeUUID == "" {
		return Scope{}, fmt.Errorf("scope uuid обязателен")
	}
	return Scope{Type: scopeType, UUID: scopeUUID}, nil
}

func (s Scope) String() string {
	return s.Type + ":" + s.UUID
}

type Document struct {
	UUID      string     `db:"uuid" json:"uuid"`
	ScopeType string     `db:"scope_type" json:"scope_type"`
	ScopeUUID string     `db:"scope_uuid" json:"scope_uuid"`
	Title     string     `db:"title" json:"title"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at" json:"deleted_at,omitempty"`
}

func (d *Document) Scope() Scope {
	return Scope{Type: d.ScopeType, UUID: d.ScopeUUID}
}
