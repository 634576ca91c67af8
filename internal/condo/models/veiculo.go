package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Veiculo is a resident-owned vehicle. Plates are stored normalized
// (uppercase, no separators) and are unique per owner.
type Veiculo struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Placa       string         `gorm:"size:8;uniqueIndex:idx_placa_morador" json:"placa"`
	MarcaModelo string         `gorm:"size:100" json:"marca_modelo"`
	MoradorID   uuid.UUID      `gorm:"type:uuid;uniqueIndex:idx_placa_morador;index" json:"morador_id"`
	IsActive    bool           `gorm:"default:true" json:"is_active"`
	CreatedByID *uuid.UUID     `gorm:"type:uuid;index" json:"created_by_id"`
	UpdatedByID *uuid.UUID     `gorm:"type:uuid" json:"updated_by_id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// VeiculoUpdate carries the updatable vehicle fields.
type VeiculoUpdate struct {
	ID          uuid.UUID
	Placa       *string
	MarcaModelo *string
	IsActive    *bool
}
