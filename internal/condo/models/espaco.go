package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReservaStatus is the lifecycle state of a space reservation.
type ReservaStatus string

const (
	ReservaPendente   ReservaStatus = "pendente"
	ReservaConfirmada ReservaStatus = "confirmada"
	ReservaCancelada  ReservaStatus = "cancelada"
)

// Espaco is a shared space available for daily reservation. ValorAluguel is
// the current daily rate; reservations copy it at creation time.
type Espaco struct {
	ID                uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Nome              string         `gorm:"size:255" json:"nome"`
	CapacidadePessoas int            `json:"capacidade_pessoas"`
	ValorAluguel      float64        `gorm:"type:numeric(10,2)" json:"valor_aluguel"`
	IsActive          bool           `gorm:"default:true" json:"is_active"`
	CreatedByID       *uuid.UUID     `gorm:"type:uuid;index" json:"created_by_id"`
	UpdatedByID       *uuid.UUID     `gorm:"type:uuid" json:"updated_by_id"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`
}

// EspacoInventarioItem is an inventory item that belongs to a space,
// identified by a code unique within that space.
type EspacoInventarioItem struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	EspacoID    uuid.UUID      `gorm:"type:uuid;uniqueIndex:idx_espaco_codigo;index" json:"espaco_id"`
	Nome        string         `gorm:"size:255" json:"nome"`
	Codigo      string         `gorm:"size:100;uniqueIndex:idx_espaco_codigo" json:"codigo"`
	IsActive    bool           `gorm:"default:true" json:"is_active"`
	CreatedByID *uuid.UUID     `gorm:"type:uuid;index" json:"created_by_id"`
	UpdatedByID *uuid.UUID     `gorm:"type:uuid" json:"updated_by_id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// EspacoReserva books a space for a whole day. The (espaco, data) pair is
// unique at the database level: the loser of a concurrent booking surfaces
// ErrSlotTaken. Cancellation removes the row, freeing the date.
// ValorCobrado is frozen at creation and never re-derived from the space.
type EspacoReserva struct {
	ID           uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	EspacoID     uuid.UUID     `gorm:"type:uuid;uniqueIndex:idx_espaco_data;index" json:"espaco_id"`
	MoradorID    uuid.UUID     `gorm:"type:uuid;index" json:"morador_id"`
	DataReserva  time.Time     `gorm:"type:date;uniqueIndex:idx_espaco_data" json:"data_reserva"`
	ValorCobrado float64       `gorm:"type:numeric(10,2)" json:"valor_cobrado"`
	Status       ReservaStatus `gorm:"size:20;default:confirmada" json:"status"`
	CreatedByID  *uuid.UUID    `gorm:"type:uuid;index" json:"created_by_id"`
	UpdatedByID  *uuid.UUID    `gorm:"type:uuid" json:"updated_by_id"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// EspacoUpdate carries the updatable space fields.
type EspacoUpdate struct {
	ID                uuid.UUID
	Nome              *string
	CapacidadePessoas *int
	ValorAluguel      *float64
	IsActive          *bool
}

// EspacoInventarioItemUpdate carries the updatable inventory item fields.
type EspacoInventarioItemUpdate struct {
	ID       uuid.UUID
	Nome     *string
	Codigo   *string
	IsActive *bool
}

// EspacoReservaUpdate carries the updatable reservation fields.
type EspacoReservaUpdate struct {
	ID          uuid.UUID
	DataReserva *time.Time
	Status      *ReservaStatus
}
