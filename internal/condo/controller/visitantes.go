package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/access"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/db"
	e "github.com/yurivfernandes1/condoflow-backend/internal/condo/errors"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/events"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/models"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/validate"
	"go.uber.org/zap"
)

// VisitanteService tracks visits. Residents register their own visitors, the
// front desk registers and closes visits for the whole condominium.
type VisitanteService struct {
	repo     Repository
	producer EventProducer
	logger   *zap.Logger
	now      func() time.Time
}

func NewVisitanteService(repo Repository, producer EventProducer, logger *zap.Logger) *VisitanteService {
	return &VisitanteService{
		repo:     repo,
		producer: producer,
		logger:   logger.Named("visitante_service"),
		now:      time.Now,
	}
}

func (s *VisitanteService) CreateVisitante(ctx context.Context, p access.Principal, visitante *models.Visitante) (*models.Visitante, error) {
	if !p.CanManageVisitantes() {
		return nil, e.ErrForbidden
	}
	if p.IsMorador() && !p.Staff && !p.IsPortaria() {
		if visitante.MoradorID == uuid.Nil {
			visitante.MoradorID = p.UserID
		}
		if visitante.MoradorID != p.UserID {
			return nil, e.ErrForbidden
		}
	}
	if strings.TrimSpace(visitante.Nome) == "" {
		return nil, fmt.Errorf("%w: nome is required", e.ErrInvalidInput)
	}
	if strings.TrimSpace(visitante.Documento) == "" {
		return nil, fmt.Errorf("%w: documento is required", e.ErrInvalidInput)
	}
	if visitante.MoradorID == uuid.Nil {
		return nil, fmt.Errorf("%w: morador is required", e.ErrInvalidInput)
	}
	if visitante.PlacaVeiculo != nil && *visitante.PlacaVeiculo != "" {
		placa, err := validate.Plate(*visitante.PlacaVeiculo)
		if err != nil {
			return nil, err
		}
		visitante.PlacaVeiculo = &placa
	}

	morador, err := s.repo.GetUser(ctx, visitante.MoradorID)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, fmt.Errorf("%w: morador not found", e.ErrInvalidInput)
		}
		return nil, fmt.Errorf("failed to get morador: %w", err)
	}
	if !p.SameTenant(morador.CondominioID) {
		return nil, e.ErrForbidden
	}

	visitante.ID = uuid.New()
	if visitante.DataEntrada.IsZero() {
		visitante.DataEntrada = s.now()
	}
	visitante.DataSaida = nil
	visitante.CreatedByID = &p.UserID
	if err := s.repo.CreateVisitante(ctx, visitante); err != nil {
		return nil, fmt.Errorf("failed to create visitor: %w", err)
	}
	go func() {
		s.producer.Produce(events.VisitanteRegistrado, visitante.ID, visitante)
	}()
	return visitante, nil
}

func (s *VisitanteService) GetVisitante(ctx context.Context, p access.Principal, id uuid.UUID) (*models.Visitante, error) {
	visitante, err := s.repo.GetVisitante(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get visitor: %w", err)
	}
	if err := s.authorize(p, visitante); err != nil {
		return nil, err
	}
	return visitante, nil
}

func (s *VisitanteService) UpdateVisitante(ctx context.Context, p access.Principal, update *models.VisitanteUpdate) (*models.Visitante, error) {
	if update.ID == uuid.Nil {
		return nil, fmt.Errorf("%w: invalid visitor ID", e.ErrInvalidInput)
	}
	existing, err := s.repo.GetVisitante(ctx, update.ID)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get visitor: %w", err)
	}
	if err := s.authorize(p, existing); err != nil {
		return nil, err
	}
	if update.PlacaVeiculo != nil && *update.PlacaVeiculo != "" {
		placa, err := validate.Plate(*update.PlacaVeiculo)
		if err != nil {
			return nil, err
		}
		update.PlacaVeiculo = &placa
	}
	if err := s.repo.UpdateVisitante(ctx, update); err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update visitor: %w", err)
	}
	return s.repo.GetVisitante(ctx, update.ID)
}

// RegistrarSaida closes an open visit with the current timestamp.
func (s *VisitanteService) RegistrarSaida(ctx context.Context, p access.Principal, id uuid.UUID) (*models.Visitante, error) {
	visitante, err := s.repo.GetVisitante(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get visitor: %w", err)
	}
	if err := s.authorize(p, visitante); err != nil {
		return nil, err
	}
	if !visitante.NoCondominio() {
		return nil, fmt.Errorf("%w: visitor already left", e.ErrInvalidInput)
	}

	saida := s.now()
	update := &models.VisitanteUpdate{ID: id, DataSaida: &saida}
	if err := s.repo.UpdateVisitante(ctx, update); err != nil {
		return nil, fmt.Errorf("failed to register exit: %w", err)
	}
	visitante.DataSaida = &saida
	go func() {
		s.producer.Produce(events.VisitanteSaida, visitante.ID, visitante)
	}()
	return visitante, nil
}

func (s *VisitanteService) DeleteVisitante(ctx context.Context, p access.Principal, id uuid.UUID) error {
	existing, err := s.repo.GetVisitante(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to get visitor for deletion: %w", err)
	}
	if err := s.authorize(p, existing); err != nil {
		return err
	}
	if err := s.repo.DeleteVisitante(ctx, id); err != nil {
		return fmt.Errorf("failed to delete visitor: %w", err)
	}
	return nil
}

func (s *VisitanteService) ListVisitantes(ctx context.Context, p access.Principal, search string, pg db.Pagination) ([]models.Visitante, db.PageInfo, error) {
	return s.repo.ListVisitantes(ctx, p.ScopeVisitantes(), search, pg)
}

func (s *VisitanteService) authorize(p access.Principal, v *models.Visitante) error {
	if p.Staff || p.IsPortaria() {
		return nil
	}
	if p.IsMorador() && v.MoradorID == p.UserID {
		return nil
	}
	return e.ErrForbidden
}
