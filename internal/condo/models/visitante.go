package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Visitante records a visit to a resident. A null exit timestamp means the
// visitor is still inside the condominium.
type Visitante struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	MoradorID    uuid.UUID      `gorm:"type:uuid;index" json:"morador_id"`
	Nome         string         `gorm:"size:255" json:"nome"`
	Documento    string         `gorm:"size:20" json:"documento"`
	PlacaVeiculo *string        `gorm:"size:8" json:"placa_veiculo"`
	DataEntrada  time.Time      `json:"data_entrada"`
	DataSaida    *time.Time     `json:"data_saida"`
	IsPermanente bool           `json:"is_permanente"`
	CreatedByID  *uuid.UUID     `gorm:"type:uuid;index" json:"created_by_id"`
	UpdatedByID  *uuid.UUID     `gorm:"type:uuid" json:"updated_by_id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// NoCondominio reports whether the visitor has not left yet.
func (v *Visitante) NoCondominio() bool {
	return v.DataSaida == nil
}

// VisitanteUpdate carries the updatable visitor fields.
type VisitanteUpdate struct {
	ID           uuid.UUID
	Nome         *string
	Documento    *string
	PlacaVeiculo *string
	DataEntrada  *time.Time
	DataSaida    *time.Time
	IsPermanente *bool
}
