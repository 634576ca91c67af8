package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Unidade is an apartment/house inside a condominium. The (numero, bloco)
// pair is kept unique at the application layer, not by a DB constraint.
// Units with residents attached are deactivated rather than deleted.
type Unidade struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Numero      string         `gorm:"size:20" json:"numero"`
	Bloco       *string        `gorm:"size:20" json:"bloco"`
	IsActive    bool           `gorm:"default:true" json:"is_active"`
	CreatedByID *uuid.UUID     `gorm:"type:uuid;index" json:"created_by_id"`
	UpdatedByID *uuid.UUID     `gorm:"type:uuid" json:"updated_by_id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// Identificacao returns the display identification of the unit.
func (u *Unidade) Identificacao() string {
	if u.Bloco != nil && *u.Bloco != "" {
		return "Bl. " + *u.Bloco + " - Unid. " + u.Numero
	}
	return "Unid. " + u.Numero
}

// UnidadeUpdate carries the updatable unit fields.
type UnidadeUpdate struct {
	ID       uuid.UUID
	Numero   *string
	Bloco    *string
	IsActive *bool
}
