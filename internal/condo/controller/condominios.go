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
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/validate"
	"go.uber.org/zap"
)

// CondominioService manages tenants. Only platform staff create or edit
// condominiums; managers can read their own.
type CondominioService struct {
	repo   Repository
	logger *zap.Logger
}

func NewCondominioService(repo Repository, logger *zap.Logger) *CondominioService {
	return &CondominioService{
		repo:   repo,
		logger: logger.Named("condominio_service"),
	}
}

func (s *CondominioService) CreateCondominio(ctx context.Context, p access.Principal, condominio *models.Condominio) (*models.Condominio, error) {
	if !p.Staff {
		return nil, e.ErrForbidden
	}
	if strings.TrimSpace(condominio.Nome) == "" {
		return nil, fmt.Errorf("%w: nome is required", e.ErrInvalidInput)
	}
	if strings.TrimSpace(condominio.CNPJ) == "" {
		return nil, fmt.Errorf("%w: cnpj is required", e.ErrInvalidInput)
	}
	if condominio.Telefone != "" {
		phone, err := validate.Phone(condominio.Telefone)
		if err != nil {
			return nil, err
		}
		condominio.Telefone = validate.FormatPhone(phone)
	}

	exists, err := s.repo.CondominioExistsByCNPJ(ctx, condominio.CNPJ)
	if err != nil {
		return nil, fmt.Errorf("failed to check cnpj: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: cnpj already registered", e.ErrDuplicate)
	}

	condominio.ID = uuid.New()
	condominio.IsAtivo = true
	if err := s.repo.CreateCondominio(ctx, condominio); err != nil {
		return nil, fmt.Errorf("failed to create condominio: %w", err)
	}
	return condominio, nil
}

func (s *CondominioService) GetCondominio(ctx context.Context, p access.Principal, id uuid.UUID) (*models.Condominio, error) {
	if !p.Staff && !p.SameTenant(&id) {
		return nil, e.ErrForbidden
	}
	condominio, err := s.repo.GetCondominio(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get condominio: %w", err)
	}
	return condominio, nil
}

func (s *CondominioService) UpdateCondominio(ctx context.Context, p access.Principal, update *models.CondominioUpdate) (*models.Condominio, error) {
	if !p.Staff {
		return nil, e.ErrForbidden
	}
	if update.ID == uuid.Nil {
		return nil, fmt.Errorf("%w: invalid condominio ID", e.ErrInvalidInput)
	}
	if update.Telefone != nil {
		phone, err := validate.Phone(*update.Telefone)
		if err != nil {
			return nil, err
		}
		formatted := validate.FormatPhone(phone)
		update.Telefone = &formatted
	}
	if err := s.repo.UpdateCondominio(ctx, update); err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update condominio: %w", err)
	}
	return s.repo.GetCondominio(ctx, update.ID)
}

func (s *CondominioService) DeleteCondominio(ctx context.Context, p access.Principal, id uuid.UUID) error {
	if !p.Staff {
		return e.ErrForbidden
	}
	if err := s.repo.DeleteCondominio(ctx, id); err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete condominio: %w", err)
	}
	return nil
}

func (s *CondominioService) ListCondominios(ctx context.Context, p access.Principal, search string, pg db.Pagination) ([]models.Condominio, db.PageInfo, error) {
	if !p.Staff {
		return nil, db.PageInfo{}, e.ErrForbidden
	}
	return s.repo.ListCondominios(ctx, search, pg)
}
