package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/access"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/db"
	e "github.com/yurivfernandes1/condoflow-backend/internal/condo/errors"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/models"
	"github.com/yurivfernandes1/condoflow-backend/internal/pkg/utils"
	"go.uber.org/zap"
)

// UnidadeService manages units. The (numero, bloco) pair is unique at the
// application layer; a unit with residents attached is deactivated instead
// of deleted.
type UnidadeService struct {
	repo   Repository
	logger *zap.Logger
}

func NewUnidadeService(repo Repository, logger *zap.Logger) *UnidadeService {
	return &UnidadeService{
		repo:   repo,
		logger: logger.Named("unidade_service"),
	}
}

func (s *UnidadeService) CreateUnidade(ctx context.Context, p access.Principal, unidade *models.Unidade) (*models.Unidade, error) {
	if !p.CanManageUnidades() {
		return nil, e.ErrForbidden
	}
	unidade.Numero = strings.TrimSpace(unidade.Numero)
	if unidade.Numero == "" {
		return nil, fmt.Errorf("%w: numero is required", e.ErrInvalidInput)
	}

	exists, err := s.repo.UnidadeExists(ctx, unidade.Numero, unidade.Bloco, uuid.Nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check unit: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: unit %s already exists", e.ErrDuplicate, unidade.Identificacao())
	}

	unidade.ID = uuid.New()
	unidade.IsActive = true
	unidade.CreatedByID = &p.UserID
	if err := s.repo.CreateUnidade(ctx, unidade); err != nil {
		return nil, fmt.Errorf("failed to create unit: %w", err)
	}
	return unidade, nil
}

func (s *UnidadeService) GetUnidade(ctx context.Context, p access.Principal, id uuid.UUID) (*models.Unidade, error) {
	switch {
	case p.Staff, p.IsSindico(), p.IsPortaria():
	case p.IsMorador():
		if p.UnidadeID == nil || *p.UnidadeID != id {
			return nil, e.ErrForbidden
		}
	default:
		return nil, e.ErrForbidden
	}
	unidade, err := s.repo.GetUnidade(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get unit: %w", err)
	}
	return unidade, nil
}

func (s *UnidadeService) UpdateUnidade(ctx context.Context, p access.Principal, update *models.UnidadeUpdate) (*models.Unidade, error) {
	if !p.CanManageUnidades() {
		return nil, e.ErrForbidden
	}
	if update.ID == uuid.Nil {
		return nil, fmt.Errorf("%w: invalid unit ID", e.ErrInvalidInput)
	}

	if update.Numero != nil || update.Bloco != nil {
		existing, err := s.repo.GetUnidade(ctx, update.ID)
		if err != nil {
			if errors.Is(err, e.ErrNotFound) {
				return nil, err
			}
			return nil, fmt.Errorf("failed to get unit: %w", err)
		}
		numero := existing.Numero
		bloco := existing.Bloco
		if update.Numero != nil {
			numero = strings.TrimSpace(*update.Numero)
			update.Numero = &numero
		}
		if update.Bloco != nil {
			bloco = update.Bloco
		}
		exists, err := s.repo.UnidadeExists(ctx, numero, bloco, update.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check unit: %w", err)
		}
		if exists {
			return nil, fmt.Errorf("%w: another unit holds this numero/bloco", e.ErrDuplicate)
		}
	}

	if err := s.repo.UpdateUnidade(ctx, update); err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update unit: %w", err)
	}
	return s.repo.GetUnidade(ctx, update.ID)
}

// DeleteUnidade removes a unit. When residents are still attached the unit
// is deactivated instead, so their history stays reachable.
func (s *UnidadeService) DeleteUnidade(ctx context.Context, p access.Principal, id uuid.UUID) (deactivated bool, err error) {
	if !p.CanManageUnidades() {
		return false, e.ErrForbidden
	}
	occupied, err := s.repo.UnidadeHasMoradores(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to check residents: %w", err)
	}
	if occupied {
		update := &models.UnidadeUpdate{ID: id, IsActive: utils.Ptr(false)}
		if err := s.repo.UpdateUnidade(ctx, update); err != nil {
			if errors.Is(err, e.ErrNotFound) {
				return false, err
			}
			return false, fmt.Errorf("failed to deactivate unit: %w", err)
		}
		return true, nil
	}
	if err := s.repo.DeleteUnidade(ctx, id); err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return false, err
		}
		return false, fmt.Errorf("failed to delete unit: %w", err)
	}
	return false, nil
}

func (s *UnidadeService) ListUnidades(ctx context.Context, p access.Principal, search string, isActive *bool, pg db.Pagination) ([]models.Unidade, db.PageInfo, error) {
	return s.repo.ListUnidades(ctx, p.ScopeUnidades(), search, isActive, pg)
}
