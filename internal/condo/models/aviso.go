package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AvisoPrioridade orders notices on the board.
type AvisoPrioridade string

const (
	PrioridadeBaixa   AvisoPrioridade = "baixa"
	PrioridadeMedia   AvisoPrioridade = "media"
	PrioridadeAlta    AvisoPrioridade = "alta"
	PrioridadeUrgente AvisoPrioridade = "urgente"
)

// AvisoStatus is the publication state of a notice.
type AvisoStatus string

const (
	AvisoRascunho AvisoStatus = "rascunho"
	AvisoAtivo    AvisoStatus = "ativo"
	AvisoInativo  AvisoStatus = "inativo"
)

// Aviso is a notice targeted at a role group, valid inside a time window.
type Aviso struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Titulo      string          `gorm:"size:255" json:"titulo"`
	Descricao   string          `json:"descricao"`
	Grupo       Role            `gorm:"size:20;index" json:"grupo"`
	Prioridade  AvisoPrioridade `gorm:"size:10;default:media" json:"prioridade"`
	Status      AvisoStatus     `gorm:"size:10;default:ativo" json:"status"`
	DataInicio  time.Time       `json:"data_inicio"`
	DataFim     *time.Time      `json:"data_fim"`
	CreatedByID *uuid.UUID      `gorm:"type:uuid;index" json:"created_by_id"`
	UpdatedByID *uuid.UUID      `gorm:"type:uuid" json:"updated_by_id"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`
}

// IsVigente reports whether the notice is currently in effect: active status
// and now inside [DataInicio, DataFim or +inf).
func (a *Aviso) IsVigente(now time.Time) bool {
	if a.Status != AvisoAtivo {
		return false
	}
	if a.DataInicio.After(now) {
		return false
	}
	if a.DataFim != nil && a.DataFim.Before(now) {
		return false
	}
	return true
}

// AvisoUpdate carries the updatable notice fields.
type AvisoUpdate struct {
	ID         uuid.UUID
	Titulo     *string
	Descricao  *string
	Grupo      *Role
	Prioridade *AvisoPrioridade
	Status     *AvisoStatus
	DataInicio *time.Time
	DataFim    *time.Time
}
