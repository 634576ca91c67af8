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
	"go.uber.org/zap"
)

// EspacoService manages shared spaces and their inventory. Administration is
// a manager concern; every role reads the tenant's spaces.
type EspacoService struct {
	repo   Repository
	logger *zap.Logger
}

func NewEspacoService(repo Repository, logger *zap.Logger) *EspacoService {
	return &EspacoService{
		repo:   repo,
		logger: logger.Named("espaco_service"),
	}
}

func (s *EspacoService) CreateEspaco(ctx context.Context, p access.Principal, espaco *models.Espaco) (*models.Espaco, error) {
	if !p.CanManageEspacos() {
		return nil, e.ErrForbidden
	}
	if strings.TrimSpace(espaco.Nome) == "" {
		return nil, fmt.Errorf("%w: nome is required", e.ErrInvalidInput)
	}
	if espaco.CapacidadePessoas <= 0 {
		return nil, fmt.Errorf("%w: capacidade must be positive", e.ErrInvalidInput)
	}
	if espaco.ValorAluguel < 0 {
		return nil, fmt.Errorf("%w: valor_aluguel cannot be negative", e.ErrInvalidInput)
	}

	espaco.ID = uuid.New()
	espaco.IsActive = true
	espaco.CreatedByID = &p.UserID
	if err := s.repo.CreateEspaco(ctx, espaco); err != nil {
		return nil, fmt.Errorf("failed to create space: %w", err)
	}
	return espaco, nil
}

func (s *EspacoService) GetEspaco(ctx context.Context, p access.Principal, id uuid.UUID) (*models.Espaco, error) {
	if !p.HasAnyRole() {
		return nil, e.ErrForbidden
	}
	espaco, err := s.repo.GetEspaco(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get space: %w", err)
	}
	return espaco, nil
}

func (s *EspacoService) UpdateEspaco(ctx context.Context, p access.Principal, update *models.EspacoUpdate) (*models.Espaco, error) {
	if !p.CanManageEspacos() {
		return nil, e.ErrForbidden
	}
	if update.ID == uuid.Nil {
		return nil, fmt.Errorf("%w: invalid space ID", e.ErrInvalidInput)
	}
	if update.CapacidadePessoas != nil && *update.CapacidadePessoas <= 0 {
		return nil, fmt.Errorf("%w: capacidade must be positive", e.ErrInvalidInput)
	}
	if update.ValorAluguel != nil && *update.ValorAluguel < 0 {
		return nil, fmt.Errorf("%w: valor_aluguel cannot be negative", e.ErrInvalidInput)
	}
	if err := s.repo.UpdateEspaco(ctx, update); err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update space: %w", err)
	}
	return s.repo.GetEspaco(ctx, update.ID)
}

func (s *EspacoService) DeleteEspaco(ctx context.Context, p access.Principal, id uuid.UUID) error {
	if !p.CanManageEspacos() {
		return e.ErrForbidden
	}
	if err := s.repo.DeleteEspaco(ctx, id); err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete space: %w", err)
	}
	return nil
}

func (s *EspacoService) ListEspacos(ctx context.Context, p access.Principal, search string, isActive *bool, pg db.Pagination) ([]models.Espaco, db.PageInfo, error) {
	return s.repo.ListEspacos(ctx, p.ScopeEspacos(), search, isActive, pg)
}

// ------------------------ Inventário ------------------------

func (s *EspacoService) CreateInventarioItem(ctx context.Context, p access.Principal, item *models.EspacoInventarioItem) (*models.EspacoInventarioItem, error) {
	if !p.CanManageEspacos() {
		return nil, e.ErrForbidden
	}
	if strings.TrimSpace(item.Nome) == "" {
		return nil, fmt.Errorf("%w: nome is required", e.ErrInvalidInput)
	}
	if strings.TrimSpace(item.Codigo) == "" {
		return nil, fmt.Errorf("%w: codigo is required", e.ErrInvalidInput)
	}
	if item.EspacoID == uuid.Nil {
		return nil, fmt.Errorf("%w: espaco is required", e.ErrInvalidInput)
	}
	if _, err := s.repo.GetEspaco(ctx, item.EspacoID); err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, fmt.Errorf("%w: space not found", e.ErrInvalidInput)
		}
		return nil, fmt.Errorf("failed to get space: %w", err)
	}

	item.ID = uuid.New()
	item.IsActive = true
	item.CreatedByID = &p.UserID
	if err := s.repo.CreateInventarioItem(ctx, item); err != nil {
		if errors.Is(err, e.ErrDuplicate) {
			return nil, fmt.Errorf("%w: codigo already used in this space", e.ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to create inventory item: %w", err)
	}
	return item, nil
}

func (s *EspacoService) GetInventarioItem(ctx context.Context, p access.Principal, id uuid.UUID) (*models.EspacoInventarioItem, error) {
	if !p.HasAnyRole() {
		return nil, e.ErrForbidden
	}
	item, err := s.repo.GetInventarioItem(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get inventory item: %w", err)
	}
	return item, nil
}

func (s *EspacoService) UpdateInventarioItem(ctx context.Context, p access.Principal, update *models.EspacoInventarioItemUpdate) (*models.EspacoInventarioItem, error) {
	if !p.CanManageEspacos() {
		return nil, e.ErrForbidden
	}
	if update.ID == uuid.Nil {
		return nil, fmt.Errorf("%w: invalid item ID", e.ErrInvalidInput)
	}
	if err := s.repo.UpdateInventarioItem(ctx, update); err != nil {
		if errors.Is(err, e.ErrNotFound) || errors.Is(err, e.ErrDuplicate) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update inventory item: %w", err)
	}
	return s.repo.GetInventarioItem(ctx, update.ID)
}

func (s *EspacoService) DeleteInventarioItem(ctx context.Context, p access.Principal, id uuid.UUID) error {
	if !p.CanManageEspacos() {
		return e.ErrForbidden
	}
	if err := s.repo.DeleteInventarioItem(ctx, id); err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete inventory item: %w", err)
	}
	return nil
}

func (s *EspacoService) ListInventarioItens(ctx context.Context, p access.Principal, espacoID *uuid.UUID, search string, isActive *bool, pg db.Pagination) ([]models.EspacoInventarioItem, db.PageInfo, error) {
	return s.repo.ListInventarioItens(ctx, p.ScopeInventario(), espacoID, search, isActive, pg)
}
