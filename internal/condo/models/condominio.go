package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Condominio is the tenant of the system. Every non-staff user belongs to
// exactly one condominium and all scoped queries resolve to it.
type Condominio struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Nome        string         `gorm:"size:255" json:"nome"`
	CNPJ        string         `gorm:"size:18;uniqueIndex" json:"cnpj"`
	Telefone    string         `gorm:"size:15" json:"telefone"`
	CEP         string         `gorm:"size:8" json:"cep"`
	Numero      string         `gorm:"size:10" json:"numero"`
	Complemento *string        `gorm:"size:100" json:"complemento"`
	IsAtivo     bool           `gorm:"default:true" json:"is_ativo"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// CondominioUpdate carries the updatable condominium fields.
type CondominioUpdate struct {
	ID          uuid.UUID
	Nome        *string
	Telefone    *string
	CEP         *string
	Numero      *string
	Complemento *string
	IsAtivo     *bool
}
