// Package controller implements the business rules of the registry: one
// service per entity orchestrating validation, authorization, repository
// operations and event production, plus the dashboard aggregations.
//
// Authorization happens here, not in the repository: list calls receive a
// scope computed from the caller's Principal, detail and mutation calls
// check permissions explicitly and return ErrForbidden.
package controller

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/access"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/db"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/events"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/models"
)

// EventProducer publishes entity mutations. Implementations must not block.
type EventProducer interface {
	Produce(eventType events.EventType, entityID uuid.UUID, payload interface{})
}

// Repository defines the storage interface the services depend on.
type Repository interface {
	// Users
	CreateUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	UpdateUser(ctx context.Context, update *models.UserUpdate) error
	DeleteUser(ctx context.Context, id uuid.UUID) error
	ListUsers(ctx context.Context, scope access.Scope, search string, pg db.Pagination) ([]models.User, db.PageInfo, error)
	CountUsersByRole(ctx context.Context, condominioID uuid.UUID, role models.Role, activeOnly bool) (int64, error)
	UsernameTaken(ctx context.Context, username string) (bool, error)

	// Condominios
	CreateCondominio(ctx context.Context, condominio *models.Condominio) error
	GetCondominio(ctx context.Context, id uuid.UUID) (*models.Condominio, error)
	UpdateCondominio(ctx context.Context, update *models.CondominioUpdate) error
	DeleteCondominio(ctx context.Context, id uuid.UUID) error
	ListCondominios(ctx context.Context, search string, pg db.Pagination) ([]models.Condominio, db.PageInfo, error)
	CondominioExistsByCNPJ(ctx context.Context, cnpj string) (bool, error)

	// Unidades
	CreateUnidade(ctx context.Context, unidade *models.Unidade) error
	GetUnidade(ctx context.Context, id uuid.UUID) (*models.Unidade, error)
	UpdateUnidade(ctx context.Context, update *models.UnidadeUpdate) error
	DeleteUnidade(ctx context.Context, id uuid.UUID) error
	ListUnidades(ctx context.Context, scope access.Scope, search string, isActive *bool, pg db.Pagination) ([]models.Unidade, db.PageInfo, error)
	UnidadeExists(ctx context.Context, numero string, bloco *string, excludeID uuid.UUID) (bool, error)
	UnidadeHasMoradores(ctx context.Context, unidadeID uuid.UUID) (bool, error)

	// Veiculos
	CreateVeiculo(ctx context.Context, veiculo *models.Veiculo) error
	GetVeiculo(ctx context.Context, id uuid.UUID) (*models.Veiculo, error)
	UpdateVeiculo(ctx context.Context, update *models.VeiculoUpdate) error
	DeleteVeiculo(ctx context.Context, id uuid.UUID) error
	ListVeiculos(ctx context.Context, scope access.Scope, search string, isActive *bool, pg db.Pagination) ([]models.Veiculo, db.PageInfo, error)

	// Visitantes
	CreateVisitante(ctx context.Context, visitante *models.Visitante) error
	GetVisitante(ctx context.Context, id uuid.UUID) (*models.Visitante, error)
	UpdateVisitante(ctx context.Context, update *models.VisitanteUpdate) error
	DeleteVisitante(ctx context.Context, id uuid.UUID) error
	ListVisitantes(ctx context.Context, scope access.Scope, search string, pg db.Pagination) ([]models.Visitante, db.PageInfo, error)
	CountVisitantes(ctx context.Context, scope access.Scope, since time.Time) (int64, error)
	CountVisitantesNoCondominio(ctx context.Context, scope access.Scope) (int64, error)

	// Encomendas
	CreateEncomenda(ctx context.Context, encomenda *models.Encomenda) error
	GetEncomenda(ctx context.Context, id uuid.UUID) (*models.Encomenda, error)
	UpdateEncomenda(ctx context.Context, update *models.EncomendaUpdate) error
	DeleteEncomenda(ctx context.Context, id uuid.UUID) error
	ListEncomendas(ctx context.Context, scope access.Scope, filter db.EncomendaFilter, pg db.Pagination) ([]models.Encomenda, db.PageInfo, error)
	PendingEncomendaTimes(ctx context.Context, scope access.Scope, unidadeID *uuid.UUID) ([]time.Time, error)
	HasPendingEncomenda(ctx context.Context, unidadeID uuid.UUID) (bool, error)

	// Espacos + inventário
	CreateEspaco(ctx context.Context, espaco *models.Espaco) error
	GetEspaco(ctx context.Context, id uuid.UUID) (*models.Espaco, error)
	UpdateEspaco(ctx context.Context, update *models.EspacoUpdate) error
	DeleteEspaco(ctx context.Context, id uuid.UUID) error
	ListEspacos(ctx context.Context, scope access.Scope, search string, isActive *bool, pg db.Pagination) ([]models.Espaco, db.PageInfo, error)
	CreateInventarioItem(ctx context.Context, item *models.EspacoInventarioItem) error
	GetInventarioItem(ctx context.Context, id uuid.UUID) (*models.EspacoInventarioItem, error)
	UpdateInventarioItem(ctx context.Context, update *models.EspacoInventarioItemUpdate) error
	DeleteInventarioItem(ctx context.Context, id uuid.UUID) error
	ListInventarioItens(ctx context.Context, scope access.Scope, espacoID *uuid.UUID, search string, isActive *bool, pg db.Pagination) ([]models.EspacoInventarioItem, db.PageInfo, error)

	// Reservas
	CreateReserva(ctx context.Context, reserva *models.EspacoReserva) error
	GetReserva(ctx context.Context, id uuid.UUID) (*models.EspacoReserva, error)
	UpdateReserva(ctx context.Context, update *models.EspacoReservaUpdate) error
	DeleteReserva(ctx context.Context, id uuid.UUID) error
	ListReservas(ctx context.Context, scope access.Scope, filter db.ReservaFilter, pg db.Pagination) ([]models.EspacoReserva, db.PageInfo, error)
	ReservaTaken(ctx context.Context, espacoID uuid.UUID, data time.Time, excludeID uuid.UUID) (bool, error)
	CountReservas(ctx context.Context, scope access.Scope, from, to time.Time, statuses []models.ReservaStatus) (int64, error)

	// Avisos
	CreateAviso(ctx context.Context, aviso *models.Aviso) error
	GetAviso(ctx context.Context, id uuid.UUID) (*models.Aviso, error)
	UpdateAviso(ctx context.Context, update *models.AvisoUpdate) error
	DeleteAviso(ctx context.Context, id uuid.UUID) error
	ListAvisos(ctx context.Context, scope access.Scope, filter db.AvisoFilter, pg db.Pagination) ([]models.Aviso, db.PageInfo, error)
	CountAvisosVigentes(ctx context.Context, scope access.Scope, now time.Time) (int64, error)

	// Eventos
	CreateEvento(ctx context.Context, evento *models.Evento) error
	GetEvento(ctx context.Context, id uuid.UUID) (*models.Evento, error)
	UpdateEvento(ctx context.Context, update *models.EventoUpdate) error
	DeleteEvento(ctx context.Context, id uuid.UUID) error
	ListEventos(ctx context.Context, scope access.Scope, search string, pg db.Pagination) ([]models.Evento, db.PageInfo, error)
	CountEventos(ctx context.Context, scope access.Scope, from, to time.Time) (int64, error)

	WithTransaction(ctx context.Context, fn func(repo *db.Repository) error) error
	Close() error
}

// dateOnly truncates a timestamp to its calendar date in UTC, the
// granularity reservations are stored at.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// reservationHorizon returns the last bookable date: the end of the month
// that contains today plus 365 days.
func reservationHorizon(today time.Time) time.Time {
	anchor := today.AddDate(0, 0, 365)
	firstOfNext := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
	return firstOfNext.AddDate(0, 0, -1)
}
