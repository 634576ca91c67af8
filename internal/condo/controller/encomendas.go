package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/access"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/aging"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/db"
	e "github.com/yurivfernandes1/condoflow-backend/internal/condo/errors"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/events"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/models"
	"go.uber.org/zap"
)

// autoAvisoValidade is how long the auto-generated delivery notice stays in
// effect when nobody picks the parcel up.
const autoAvisoValidade = 30 * 24 * time.Hour

// EncomendaService manages front-desk deliveries. Registering a delivery for
// a unit also publishes a notice to the residents group; picking it up
// records who took it and when.
type EncomendaService struct {
	repo     Repository
	producer EventProducer
	logger   *zap.Logger
	now      func() time.Time
}

func NewEncomendaService(repo Repository, producer EventProducer, logger *zap.Logger) *EncomendaService {
	return &EncomendaService{
		repo:     repo,
		producer: producer,
		logger:   logger.Named("encomenda_service"),
		now:      time.Now,
	}
}

func (s *EncomendaService) CreateEncomenda(ctx context.Context, p access.Principal, encomenda *models.Encomenda) (*models.Encomenda, error) {
	if !p.CanManageEncomendas() {
		return nil, e.ErrForbidden
	}
	if strings.TrimSpace(encomenda.DestinatarioNome) == "" {
		return nil, fmt.Errorf("%w: destinatario is required", e.ErrInvalidInput)
	}

	encomenda.ID = uuid.New()
	encomenda.RetiradoEm = nil
	encomenda.RetiradoPor = nil
	encomenda.CreatedByID = &p.UserID
	if err := s.repo.CreateEncomenda(ctx, encomenda); err != nil {
		return nil, fmt.Errorf("failed to create delivery: %w", err)
	}

	if encomenda.UnidadeID != nil {
		s.publishAutoAviso(ctx, p, encomenda)
	}
	go func() {
		s.producer.Produce(events.EncomendaRegistrada, encomenda.ID, encomenda)
	}()
	return encomenda, nil
}

// publishAutoAviso creates the residents-group notice for a fresh delivery.
// A unit without residents gets no notice. Failure is logged, never
// propagated: the delivery itself is already saved.
func (s *EncomendaService) publishAutoAviso(ctx context.Context, p access.Principal, encomenda *models.Encomenda) {
	occupied, err := s.repo.UnidadeHasMoradores(ctx, *encomenda.UnidadeID)
	if err != nil {
		s.logger.Warn("failed to check unit occupancy for delivery notice",
			zap.Error(err),
			zap.String("encomenda_id", encomenda.ID.String()),
		)
		return
	}
	if !occupied {
		return
	}

	unidade, err := s.repo.GetUnidade(ctx, *encomenda.UnidadeID)
	if err != nil {
		s.logger.Warn("failed to load unit for delivery notice",
			zap.Error(err),
			zap.String("encomenda_id", encomenda.ID.String()),
		)
		return
	}

	now := s.now()
	fim := now.Add(autoAvisoValidade)
	aviso := &models.Aviso{
		ID:          uuid.New(),
		Titulo:      "Nova encomenda - " + unidade.Identificacao(),
		Descricao:   fmt.Sprintf("Encomenda para %s aguardando retirada na portaria.", encomenda.DestinatarioNome),
		Grupo:       models.RoleMorador,
		Prioridade:  models.PrioridadeMedia,
		Status:      models.AvisoAtivo,
		DataInicio:  now,
		DataFim:     &fim,
		CreatedByID: &p.UserID,
	}
	if err := s.repo.CreateAviso(ctx, aviso); err != nil {
		s.logger.Warn("failed to create delivery notice",
			zap.Error(err),
			zap.String("encomenda_id", encomenda.ID.String()),
		)
	}
}

func (s *EncomendaService) GetEncomenda(ctx context.Context, p access.Principal, id uuid.UUID) (*models.Encomenda, error) {
	encomenda, err := s.repo.GetEncomenda(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get delivery: %w", err)
	}
	if err := s.authorizeRead(p, encomenda); err != nil {
		return nil, err
	}
	return encomenda, nil
}

func (s *EncomendaService) UpdateEncomenda(ctx context.Context, p access.Principal, update *models.EncomendaUpdate) (*models.Encomenda, error) {
	if !p.CanManageEncomendas() {
		return nil, e.ErrForbidden
	}
	if update.ID == uuid.Nil {
		return nil, fmt.Errorf("%w: invalid delivery ID", e.ErrInvalidInput)
	}
	if err := s.repo.UpdateEncomenda(ctx, update); err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update delivery: %w", err)
	}
	return s.repo.GetEncomenda(ctx, update.ID)
}

// RegistrarRetirada marks the delivery as picked up by the named person.
func (s *EncomendaService) RegistrarRetirada(ctx context.Context, p access.Principal, id uuid.UUID, retiradoPor string) (*models.Encomenda, error) {
	if !p.CanManageEncomendas() {
		return nil, e.ErrForbidden
	}
	if strings.TrimSpace(retiradoPor) == "" {
		return nil, fmt.Errorf("%w: retirado_por is required", e.ErrInvalidInput)
	}
	encomenda, err := s.repo.GetEncomenda(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get delivery: %w", err)
	}
	if encomenda.FoiRetirada() {
		return nil, fmt.Errorf("%w: delivery already picked up", e.ErrInvalidInput)
	}

	retiradoEm := s.now()
	update := &models.EncomendaUpdate{
		ID:          id,
		RetiradoPor: &retiradoPor,
		RetiradoEm:  &retiradoEm,
	}
	if err := s.repo.UpdateEncomenda(ctx, update); err != nil {
		return nil, fmt.Errorf("failed to register pickup: %w", err)
	}
	encomenda.RetiradoPor = &retiradoPor
	encomenda.RetiradoEm = &retiradoEm
	go func() {
		s.producer.Produce(events.EncomendaRetirada, encomenda.ID, encomenda)
	}()
	return encomenda, nil
}

// DeleteEncomenda is restricted to platform staff.
func (s *EncomendaService) DeleteEncomenda(ctx context.Context, p access.Principal, id uuid.UUID) error {
	if !p.Staff {
		return e.ErrForbidden
	}
	if err := s.repo.DeleteEncomenda(ctx, id); err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete delivery: %w", err)
	}
	return nil
}

func (s *EncomendaService) ListEncomendas(ctx context.Context, p access.Principal, filter db.EncomendaFilter, pg db.Pagination) ([]models.Encomenda, db.PageInfo, error) {
	return s.repo.ListEncomendas(ctx, p.ScopeEncomendas(), filter, pg)
}

// Badge summarizes the caller's pending deliveries into the aging badge.
func (s *EncomendaService) Badge(ctx context.Context, p access.Principal, unidadeID *uuid.UUID) (aging.BadgeSummary, error) {
	times, err := s.repo.PendingEncomendaTimes(ctx, p.ScopeEncomendas(), unidadeID)
	if err != nil {
		return aging.BadgeSummary{}, fmt.Errorf("failed to load pending deliveries: %w", err)
	}
	return aging.Badge(times, s.now()), nil
}

func (s *EncomendaService) authorizeRead(p access.Principal, enc *models.Encomenda) error {
	if p.CanManageEncomendas() || p.IsSindico() {
		return nil
	}
	if p.IsMorador() && p.UnidadeID != nil && enc.UnidadeID != nil && *enc.UnidadeID == *p.UnidadeID {
		return nil
	}
	return e.ErrForbidden
}
