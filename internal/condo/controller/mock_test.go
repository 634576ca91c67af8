package controller

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/access"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/db"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/events"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/models"
)

// MockRepository implements the Repository interface for testing. Only the
// function fields a test sets are expected to be called; a nil field panics
// and fails the test loudly.
type MockRepository struct {
	createUser        func(context.Context, *models.User) error
	getUser           func(context.Context, uuid.UUID) (*models.User, error)
	getUserByUsername func(context.Context, string) (*models.User, error)
	updateUser        func(context.Context, *models.UserUpdate) error
	deleteUser        func(context.Context, uuid.UUID) error
	listUsers         func(context.Context, access.Scope, string, db.Pagination) ([]models.User, db.PageInfo, error)
	countUsersByRole  func(context.Context, uuid.UUID, models.Role, bool) (int64, error)
	usernameTaken     func(context.Context, string) (bool, error)

	createCondominio       func(context.Context, *models.Condominio) error
	getCondominio          func(context.Context, uuid.UUID) (*models.Condominio, error)
	updateCondominio       func(context.Context, *models.CondominioUpdate) error
	deleteCondominio       func(context.Context, uuid.UUID) error
	listCondominios        func(context.Context, string, db.Pagination) ([]models.Condominio, db.PageInfo, error)
	condominioExistsByCNPJ func(context.Context, string) (bool, error)

	createUnidade       func(context.Context, *models.Unidade) error
	getUnidade          func(context.Context, uuid.UUID) (*models.Unidade, error)
	updateUnidade       func(context.Context, *models.UnidadeUpdate) error
	deleteUnidade       func(context.Context, uuid.UUID) error
	listUnidades        func(context.Context, access.Scope, string, *bool, db.Pagination) ([]models.Unidade, db.PageInfo, error)
	unidadeExists       func(context.Context, string, *string, uuid.UUID) (bool, error)
	unidadeHasMoradores func(context.Context, uuid.UUID) (bool, error)

	createVeiculo func(context.Context, *models.Veiculo) error
	getVeiculo    func(context.Context, uuid.UUID) (*models.Veiculo, error)
	updateVeiculo func(context.Context, *models.VeiculoUpdate) error
	deleteVeiculo func(context.Context, uuid.UUID) error
	listVeiculos  func(context.Context, access.Scope, string, *bool, db.Pagination) ([]models.Veiculo, db.PageInfo, error)

	createVisitante             func(context.Context, *models.Visitante) error
	getVisitante                func(context.Context, uuid.UUID) (*models.Visitante, error)
	updateVisitante             func(context.Context, *models.VisitanteUpdate) error
	deleteVisitante             func(context.Context, uuid.UUID) error
	listVisitantes              func(context.Context, access.Scope, string, db.Pagination) ([]models.Visitante, db.PageInfo, error)
	countVisitantes             func(context.Context, access.Scope, time.Time) (int64, error)
	countVisitantesNoCondominio func(context.Context, access.Scope) (int64, error)

	createEncomenda       func(context.Context, *models.Encomenda) error
	getEncomenda          func(context.Context, uuid.UUID) (*models.Encomenda, error)
	updateEncomenda       func(context.Context, *models.EncomendaUpdate) error
	deleteEncomenda       func(context.Context, uuid.UUID) error
	listEncomendas        func(context.Context, access.Scope, db.EncomendaFilter, db.Pagination) ([]models.Encomenda, db.PageInfo, error)
	pendingEncomendaTimes func(context.Context, access.Scope, *uuid.UUID) ([]time.Time, error)
	hasPendingEncomenda   func(context.Context, uuid.UUID) (bool, error)

	createEspaco         func(context.Context, *models.Espaco) error
	getEspaco            func(context.Context, uuid.UUID) (*models.Espaco, error)
	updateEspaco         func(context.Context, *models.EspacoUpdate) error
	deleteEspaco         func(context.Context, uuid.UUID) error
	listEspacos          func(context.Context, access.Scope, string, *bool, db.Pagination) ([]models.Espaco, db.PageInfo, error)
	createInventarioItem func(context.Context, *models.EspacoInventarioItem) error
	getInventarioItem    func(context.Context, uuid.UUID) (*models.EspacoInventarioItem, error)
	updateInventarioItem func(context.Context, *models.EspacoInventarioItemUpdate) error
	deleteInventarioItem func(context.Context, uuid.UUID) error
	listInventarioItens  func(context.Context, access.Scope, *uuid.UUID, string, *bool, db.Pagination) ([]models.EspacoInventarioItem, db.PageInfo, error)

	createReserva func(context.Context, *models.EspacoReserva) error
	getReserva    func(context.Context, uuid.UUID) (*models.EspacoReserva, error)
	updateReserva func(context.Context, *models.EspacoReservaUpdate) error
	deleteReserva func(context.Context, uuid.UUID) error
	listReservas  func(context.Context, access.Scope, db.ReservaFilter, db.Pagination) ([]models.EspacoReserva, db.PageInfo, error)
	reservaTaken  func(context.Context, uuid.UUID, time.Time, uuid.UUID) (bool, error)
	countReservas func(context.Context, access.Scope, time.Time, time.Time, []models.ReservaStatus) (int64, error)

	createAviso         func(context.Context, *models.Aviso) error
	getAviso            func(context.Context, uuid.UUID) (*models.Aviso, error)
	updateAviso         func(context.Context, *models.AvisoUpdate) error
	deleteAviso         func(context.Context, uuid.UUID) error
	listAvisos          func(context.Context, access.Scope, db.AvisoFilter, db.Pagination) ([]models.Aviso, db.PageInfo, error)
	countAvisosVigentes func(context.Context, access.Scope, time.Time) (int64, error)

	createEvento func(context.Context, *models.Evento) error
	getEvento    func(context.Context, uuid.UUID) (*models.Evento, error)
	updateEvento func(context.Context, *models.EventoUpdate) error
	deleteEvento func(context.Context, uuid.UUID) error
	listEventos  func(context.Context, access.Scope, string, db.Pagination) ([]models.Evento, db.PageInfo, error)
	countEventos func(context.Context, access.Scope, time.Time, time.Time) (int64, error)

	withTransaction func(context.Context, func(*db.Repository) error) error
}

func (m *MockRepository) CreateUser(ctx context.Context, u *models.User) error {
	return m.createUser(ctx, u)
}

func (m *MockRepository) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return m.getUser(ctx, id)
}

func (m *MockRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return m.getUserByUsername(ctx, username)
}

func (m *MockRepository) UpdateUser(ctx context.Context, u *models.UserUpdate) error {
	return m.updateUser(ctx, u)
}

func (m *MockRepository) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return m.deleteUser(ctx, id)
}

func (m *MockRepository) ListUsers(ctx context.Context, s access.Scope, q string, pg db.Pagination) ([]models.User, db.PageInfo, error) {
	return m.listUsers(ctx, s, q, pg)
}

func (m *MockRepository) CountUsersByRole(ctx context.Context, id uuid.UUID, role models.Role, active bool) (int64, error) {
	return m.countUsersByRole(ctx, id, role, active)
}

func (m *MockRepository) UsernameTaken(ctx context.Context, username string) (bool, error) {
	return m.usernameTaken(ctx, username)
}

func (m *MockRepository) CreateCondominio(ctx context.Context, c *models.Condominio) error {
	return m.createCondominio(ctx, c)
}

func (m *MockRepository) GetCondominio(ctx context.Context, id uuid.UUID) (*models.Condominio, error) {
	return m.getCondominio(ctx, id)
}

func (m *MockRepository) UpdateCondominio(ctx context.Context, u *models.CondominioUpdate) error {
	return m.updateCondominio(ctx, u)
}

func (m *MockRepository) DeleteCondominio(ctx context.Context, id uuid.UUID) error {
	return m.deleteCondominio(ctx, id)
}

func (m *MockRepository) ListCondominios(ctx context.Context, q string, pg db.Pagination) ([]models.Condominio, db.PageInfo, error) {
	return m.listCondominios(ctx, q, pg)
}

func (m *MockRepository) CondominioExistsByCNPJ(ctx context.Context, cnpj string) (bool, error) {
	return m.condominioExistsByCNPJ(ctx, cnpj)
}

func (m *MockRepository) CreateUnidade(ctx context.Context, u *models.Unidade) error {
	return m.createUnidade(ctx, u)
}

func (m *MockRepository) GetUnidade(ctx context.Context, id uuid.UUID) (*models.Unidade, error) {
	return m.getUnidade(ctx, id)
}

func (m *MockRepository) UpdateUnidade(ctx context.Context, u *models.UnidadeUpdate) error {
	return m.updateUnidade(ctx, u)
}

func (m *MockRepository) DeleteUnidade(ctx context.Context, id uuid.UUID) error {
	return m.deleteUnidade(ctx, id)
}

func (m *MockRepository) ListUnidades(ctx context.Context, s access.Scope, q string, a *bool, pg db.Pagination) ([]models.Unidade, db.PageInfo, error) {
	return m.listUnidades(ctx, s, q, a, pg)
}

func (m *MockRepository) UnidadeExists(ctx context.Context, numero string, bloco *string, exclude uuid.UUID) (bool, error) {
	return m.unidadeExists(ctx, numero, bloco, exclude)
}

func (m *MockRepository) UnidadeHasMoradores(ctx context.Context, id uuid.UUID) (bool, error) {
	return m.unidadeHasMoradores(ctx, id)
}

func (m *MockRepository) CreateVeiculo(ctx context.Context, v *models.Veiculo) error {
	return m.createVeiculo(ctx, v)
}

func (m *MockRepository) GetVeiculo(ctx context.Context, id uuid.UUID) (*models.Veiculo, error) {
	return m.getVeiculo(ctx, id)
}

func (m *MockRepository) UpdateVeiculo(ctx context.Context, u *models.VeiculoUpdate) error {
	return m.updateVeiculo(ctx, u)
}

func (m *MockRepository) DeleteVeiculo(ctx context.Context, id uuid.UUID) error {
	return m.deleteVeiculo(ctx, id)
}

func (m *MockRepository) ListVeiculos(ctx context.Context, s access.Scope, q string, a *bool, pg db.Pagination) ([]models.Veiculo, db.PageInfo, error) {
	return m.listVeiculos(ctx, s, q, a, pg)
}

func (m *MockRepository) CreateVisitante(ctx context.Context, v *models.Visitante) error {
	return m.createVisitante(ctx, v)
}

func (m *MockRepository) GetVisitante(ctx context.Context, id uuid.UUID) (*models.Visitante, error) {
	return m.getVisitante(ctx, id)
}

func (m *MockRepository) UpdateVisitante(ctx context.Context, u *models.VisitanteUpdate) error {
	return m.updateVisitante(ctx, u)
}

func (m *MockRepository) DeleteVisitante(ctx context.Context, id uuid.UUID) error {
	return m.deleteVisitante(ctx, id)
}

func (m *MockRepository) ListVisitantes(ctx context.Context, s access.Scope, q string, pg db.Pagination) ([]models.Visitante, db.PageInfo, error) {
	return m.listVisitantes(ctx, s, q, pg)
}

func (m *MockRepository) CountVisitantes(ctx context.Context, s access.Scope, since time.Time) (int64, error) {
	return m.countVisitantes(ctx, s, since)
}

func (m *MockRepository) CountVisitantesNoCondominio(ctx context.Context, s access.Scope) (int64, error) {
	return m.countVisitantesNoCondominio(ctx, s)
}

func (m *MockRepository) CreateEncomenda(ctx context.Context, enc *models.Encomenda) error {
	return m.createEncomenda(ctx, enc)
}

func (m *MockRepository) GetEncomenda(ctx context.Context, id uuid.UUID) (*models.Encomenda, error) {
	return m.getEncomenda(ctx, id)
}

func (m *MockRepository) UpdateEncomenda(ctx context.Context, u *models.EncomendaUpdate) error {
	return m.updateEncomenda(ctx, u)
}

func (m *MockRepository) DeleteEncomenda(ctx context.Context, id uuid.UUID) error {
	return m.deleteEncomenda(ctx, id)
}

func (m *MockRepository) ListEncomendas(ctx context.Context, s access.Scope, f db.EncomendaFilter, pg db.Pagination) ([]models.Encomenda, db.PageInfo, error) {
	return m.listEncomendas(ctx, s, f, pg)
}

func (m *MockRepository) PendingEncomendaTimes(ctx context.Context, s access.Scope, u *uuid.UUID) ([]time.Time, error) {
	return m.pendingEncomendaTimes(ctx, s, u)
}

func (m *MockRepository) HasPendingEncomenda(ctx context.Context, u uuid.UUID) (bool, error) {
	return m.hasPendingEncomenda(ctx, u)
}

func (m *MockRepository) CreateEspaco(ctx context.Context, esp *models.Espaco) error {
	return m.createEspaco(ctx, esp)
}

func (m *MockRepository) GetEspaco(ctx context.Context, id uuid.UUID) (*models.Espaco, error) {
	return m.getEspaco(ctx, id)
}

func (m *MockRepository) UpdateEspaco(ctx context.Context, u *models.EspacoUpdate) error {
	return m.updateEspaco(ctx, u)
}

func (m *MockRepository) DeleteEspaco(ctx context.Context, id uuid.UUID) error {
	return m.deleteEspaco(ctx, id)
}

func (m *MockRepository) ListEspacos(ctx context.Context, s access.Scope, q string, a *bool, pg db.Pagination) ([]models.Espaco, db.PageInfo, error) {
	return m.listEspacos(ctx, s, q, a, pg)
}

func (m *MockRepository) CreateInventarioItem(ctx context.Context, i *models.EspacoInventarioItem) error {
	return m.createInventarioItem(ctx, i)
}

func (m *MockRepository) GetInventarioItem(ctx context.Context, id uuid.UUID) (*models.EspacoInventarioItem, error) {
	return m.getInventarioItem(ctx, id)
}

func (m *MockRepository) UpdateInventarioItem(ctx context.Context, u *models.EspacoInventarioItemUpdate) error {
	return m.updateInventarioItem(ctx, u)
}

func (m *MockRepository) DeleteInventarioItem(ctx context.Context, id uuid.UUID) error {
	return m.deleteInventarioItem(ctx, id)
}

func (m *MockRepository) ListInventarioItens(ctx context.Context, s access.Scope, esp *uuid.UUID, q string, a *bool, pg db.Pagination) ([]models.EspacoInventarioItem, db.PageInfo, error) {
	return m.listInventarioItens(ctx, s, esp, q, a, pg)
}

func (m *MockRepository) CreateReserva(ctx context.Context, r *models.EspacoReserva) error {
	return m.createReserva(ctx, r)
}

func (m *MockRepository) GetReserva(ctx context.Context, id uuid.UUID) (*models.EspacoReserva, error) {
	return m.getReserva(ctx, id)
}

func (m *MockRepository) UpdateReserva(ctx context.Context, u *models.EspacoReservaUpdate) error {
	return m.updateReserva(ctx, u)
}

func (m *MockRepository) DeleteReserva(ctx context.Context, id uuid.UUID) error {
	return m.deleteReserva(ctx, id)
}

func (m *MockRepository) ListReservas(ctx context.Context, s access.Scope, f db.ReservaFilter, pg db.Pagination) ([]models.EspacoReserva, db.PageInfo, error) {
	return m.listReservas(ctx, s, f, pg)
}

func (m *MockRepository) ReservaTaken(ctx context.Context, esp uuid.UUID, data time.Time, exclude uuid.UUID) (bool, error) {
	return m.reservaTaken(ctx, esp, data, exclude)
}

func (m *MockRepository) CountReservas(ctx context.Context, s access.Scope, from, to time.Time, st []models.ReservaStatus) (int64, error) {
	return m.countReservas(ctx, s, from, to, st)
}

func (m *MockRepository) CreateAviso(ctx context.Context, a *models.Aviso) error {
	return m.createAviso(ctx, a)
}

func (m *MockRepository) GetAviso(ctx context.Context, id uuid.UUID) (*models.Aviso, error) {
	return m.getAviso(ctx, id)
}

func (m *MockRepository) UpdateAviso(ctx context.Context, u *models.AvisoUpdate) error {
	return m.updateAviso(ctx, u)
}

func (m *MockRepository) DeleteAviso(ctx context.Context, id uuid.UUID) error {
	return m.deleteAviso(ctx, id)
}

func (m *MockRepository) ListAvisos(ctx context.Context, s access.Scope, f db.AvisoFilter, pg db.Pagination) ([]models.Aviso, db.PageInfo, error) {
	return m.listAvisos(ctx, s, f, pg)
}

func (m *MockRepository) CountAvisosVigentes(ctx context.Context, s access.Scope, now time.Time) (int64, error) {
	return m.countAvisosVigentes(ctx, s, now)
}

func (m *MockRepository) CreateEvento(ctx context.Context, ev *models.Evento) error {
	return m.createEvento(ctx, ev)
}

func (m *MockRepository) GetEvento(ctx context.Context, id uuid.UUID) (*models.Evento, error) {
	return m.getEvento(ctx, id)
}

func (m *MockRepository) UpdateEvento(ctx context.Context, u *models.EventoUpdate) error {
	return m.updateEvento(ctx, u)
}

func (m *MockRepository) DeleteEvento(ctx context.Context, id uuid.UUID) error {
	return m.deleteEvento(ctx, id)
}

func (m *MockRepository) ListEventos(ctx context.Context, s access.Scope, q string, pg db.Pagination) ([]models.Evento, db.PageInfo, error) {
	return m.listEventos(ctx, s, q, pg)
}

func (m *MockRepository) CountEventos(ctx context.Context, s access.Scope, from, to time.Time) (int64, error) {
	return m.countEventos(ctx, s, from, to)
}

func (m *MockRepository) WithTransaction(ctx context.Context, fn func(*db.Repository) error) error {
	return m.withTransaction(ctx, fn)
}

func (m *MockRepository) Close() error {
	return nil
}

type producedEvent struct {
	EventType events.EventType
	EntityID  uuid.UUID
	Payload   interface{}
}

// MockProducer is a test double for the Kafka producer.
type MockProducer struct {
	mu       sync.Mutex
	produced []producedEvent
	wg       *sync.WaitGroup
}

// Produce records the event and signals the wait group.
func (m *MockProducer) Produce(eventType events.EventType, entityID uuid.UUID, payload interface{}) {
	m.mu.Lock()
	m.produced = append(m.produced, producedEvent{eventType, entityID, payload})
	m.mu.Unlock()
	if m.wg != nil {
		m.wg.Done()
	}
}

func (m *MockProducer) events() []producedEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]producedEvent(nil), m.produced...)
}
