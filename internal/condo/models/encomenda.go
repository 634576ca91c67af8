package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Encomenda is a parcel delivered to the front desk for a unit. It is
// pending until someone picks it up (RetiradoEm set).
type Encomenda struct {
	ID               uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UnidadeID        *uuid.UUID     `gorm:"type:uuid;index" json:"unidade_id"`
	DestinatarioNome string         `gorm:"size:255" json:"destinatario_nome"`
	Descricao        string         `json:"descricao"`
	CodigoRastreio   *string        `gorm:"size:100" json:"codigo_rastreio"`
	RetiradoPor      *string        `gorm:"size:255" json:"retirado_por"`
	RetiradoEm       *time.Time     `json:"retirado_em"`
	CreatedByID      *uuid.UUID     `gorm:"type:uuid;index" json:"created_by_id"`
	UpdatedByID      *uuid.UUID     `gorm:"type:uuid" json:"updated_by_id"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

// FoiRetirada reports whether the parcel was already picked up.
func (e *Encomenda) FoiRetirada() bool {
	return e.RetiradoEm != nil
}

// EncomendaUpdate carries the updatable delivery fields.
type EncomendaUpdate struct {
	ID               uuid.UUID
	UnidadeID        *uuid.UUID
	DestinatarioNome *string
	Descricao        *string
	CodigoRastreio   *string
	RetiradoPor      *string
	RetiradoEm       *time.Time
}
