package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Evento is a condominium event, held either in a registered space or at a
// free-text location.
type Evento struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Titulo         string         `gorm:"size:255" json:"titulo"`
	Descricao      string         `json:"descricao"`
	EspacoID       *uuid.UUID     `gorm:"type:uuid;index" json:"espaco_id"`
	LocalTexto     *string        `gorm:"size:255" json:"local_texto"`
	DatetimeInicio *time.Time     `json:"datetime_inicio"`
	DatetimeFim    *time.Time     `json:"datetime_fim"`
	CreatedByID    *uuid.UUID     `gorm:"type:uuid;index" json:"created_by_id"`
	UpdatedByID    *uuid.UUID     `gorm:"type:uuid" json:"updated_by_id"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

// EventoUpdate carries the updatable event fields.
type EventoUpdate struct {
	ID             uuid.UUID
	Titulo         *string
	Descricao      *string
	EspacoID       *uuid.UUID
	LocalTexto     *string
	DatetimeInicio *time.Time
	DatetimeFim    *time.Time
}
