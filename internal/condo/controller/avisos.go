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
	"go.uber.org/zap"
)

var knownPrioridades = map[models.AvisoPrioridade]bool{
	models.PrioridadeBaixa:   true,
	models.PrioridadeMedia:   true,
	models.PrioridadeAlta:    true,
	models.PrioridadeUrgente: true,
}

var knownAvisoStatus = map[models.AvisoStatus]bool{
	models.AvisoRascunho: true,
	models.AvisoAtivo:    true,
	models.AvisoInativo:  true,
}

// AvisoService manages the notice board. Notices target a role group and
// are in effect inside their validity window.
type AvisoService struct {
	repo     Repository
	producer EventProducer
	logger   *zap.Logger
	now      func() time.Time
}

func NewAvisoService(repo Repository, producer EventProducer, logger *zap.Logger) *AvisoService {
	return &AvisoService{
		repo:     repo,
		producer: producer,
		logger:   logger.Named("aviso_service"),
		now:      time.Now,
	}
}

func (s *AvisoService) CreateAviso(ctx context.Context, p access.Principal, aviso *models.Aviso) (*models.Aviso, error) {
	if !p.CanManageEspacos() {
		return nil, e.ErrForbidden
	}
	if strings.TrimSpace(aviso.Titulo) == "" {
		return nil, fmt.Errorf("%w: titulo is required", e.ErrInvalidInput)
	}
	if !knownRoles[aviso.Grupo] {
		return nil, fmt.Errorf("%w: unknown target group %q", e.ErrInvalidInput, aviso.Grupo)
	}
	if aviso.Prioridade == "" {
		aviso.Prioridade = models.PrioridadeMedia
	}
	if !knownPrioridades[aviso.Prioridade] {
		return nil, fmt.Errorf("%w: unknown priority %q", e.ErrInvalidInput, aviso.Prioridade)
	}
	if aviso.Status == "" {
		aviso.Status = models.AvisoAtivo
	}
	if !knownAvisoStatus[aviso.Status] {
		return nil, fmt.Errorf("%w: unknown status %q", e.ErrInvalidInput, aviso.Status)
	}
	if aviso.DataInicio.IsZero() {
		aviso.DataInicio = s.now()
	}
	if aviso.DataFim != nil && aviso.DataFim.Before(aviso.DataInicio) {
		return nil, fmt.Errorf("%w: data_fim before data_inicio", e.ErrInvalidInput)
	}

	aviso.ID = uuid.New()
	aviso.CreatedByID = &p.UserID
	if err := s.repo.CreateAviso(ctx, aviso); err != nil {
		return nil, fmt.Errorf("failed to create notice: %w", err)
	}
	if aviso.Status == models.AvisoAtivo {
		go func() {
			s.producer.Produce(events.AvisoPublicado, aviso.ID, aviso)
		}()
	}
	return aviso, nil
}

func (s *AvisoService) GetAviso(ctx context.Context, p access.Principal, id uuid.UUID) (*models.Aviso, error) {
	if !p.HasAnyRole() {
		return nil, e.ErrForbidden
	}
	aviso, err := s.repo.GetAviso(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get notice: %w", err)
	}
	if !p.Staff && !p.IsSindico() && !p.HasRole(aviso.Grupo) {
		return nil, e.ErrForbidden
	}
	return aviso, nil
}

func (s *AvisoService) UpdateAviso(ctx context.Context, p access.Principal, update *models.AvisoUpdate) (*models.Aviso, error) {
	if !p.CanManageEspacos() {
		return nil, e.ErrForbidden
	}
	if update.ID == uuid.Nil {
		return nil, fmt.Errorf("%w: invalid notice ID", e.ErrInvalidInput)
	}
	if update.Grupo != nil && !knownRoles[*update.Grupo] {
		return nil, fmt.Errorf("%w: unknown target group %q", e.ErrInvalidInput, *update.Grupo)
	}
	if update.Prioridade != nil && !knownPrioridades[*update.Prioridade] {
		return nil, fmt.Errorf("%w: unknown priority %q", e.ErrInvalidInput, *update.Prioridade)
	}
	if update.Status != nil && !knownAvisoStatus[*update.Status] {
		return nil, fmt.Errorf("%w: unknown status %q", e.ErrInvalidInput, *update.Status)
	}

	if update.DataInicio != nil || update.DataFim != nil {
		existing, err := s.repo.GetAviso(ctx, update.ID)
		if err != nil {
			if errors.Is(err, e.ErrNotFound) {
				return nil, err
			}
			return nil, fmt.Errorf("failed to get notice: %w", err)
		}
		inicio := existing.DataInicio
		fim := existing.DataFim
		if update.DataInicio != nil {
			inicio = *update.DataInicio
		}
		if update.DataFim != nil {
			fim = update.DataFim
		}
		if fim != nil && fim.Before(inicio) {
			return nil, fmt.Errorf("%w: data_fim before data_inicio", e.ErrInvalidInput)
		}
	}

	if err := s.repo.UpdateAviso(ctx, update); err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update notice: %w", err)
	}
	return s.repo.GetAviso(ctx, update.ID)
}

func (s *AvisoService) DeleteAviso(ctx context.Context, p access.Principal, id uuid.UUID) error {
	if !p.CanManageEspacos() {
		return e.ErrForbidden
	}
	if err := s.repo.DeleteAviso(ctx, id); err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete notice: %w", err)
	}
	return nil
}

// ListAvisos returns the notices the caller may see. Residents with no
// pending delivery are not shown the auto-generated delivery notices, so the
// scope needs that flag resolved first.
func (s *AvisoService) ListAvisos(ctx context.Context, p access.Principal, filter db.AvisoFilter, pg db.Pagination) ([]models.Aviso, db.PageInfo, error) {
	scope, err := s.avisoScope(ctx, p)
	if err != nil {
		return nil, db.PageInfo{}, err
	}
	return s.repo.ListAvisos(ctx, scope, filter, pg)
}

func (s *AvisoService) avisoScope(ctx context.Context, p access.Principal) (access.Scope, error) {
	hasPending := false
	if p.IsMorador() && p.UnidadeID != nil {
		var err error
		hasPending, err = s.repo.HasPendingEncomenda(ctx, *p.UnidadeID)
		if err != nil {
			return nil, fmt.Errorf("failed to check pending deliveries: %w", err)
		}
	}
	return p.ScopeAvisos(hasPending), nil
}
