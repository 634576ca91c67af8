package controller

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/access"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/db"
	e "github.com/yurivfernandes1/condoflow-backend/internal/condo/errors"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/models"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/validate"
	"go.uber.org/zap"
)

// VeiculoService manages resident vehicles. Plates are validated and stored
// normalized; the front desk reads but never writes vehicles.
type VeiculoService struct {
	repo   Repository
	logger *zap.Logger
}

func NewVeiculoService(repo Repository, logger *zap.Logger) *VeiculoService {
	return &VeiculoService{
		repo:   repo,
		logger: logger.Named("veiculo_service"),
	}
}

// CreateVeiculo registers a vehicle. Residents register for themselves;
// managers for any vehicle-owning user of their condominium.
func (s *VeiculoService) CreateVeiculo(ctx context.Context, p access.Principal, veiculo *models.Veiculo) (*models.Veiculo, error) {
	switch {
	case p.Staff, p.IsSindico():
	case p.IsMorador():
		if veiculo.MoradorID == uuid.Nil {
			veiculo.MoradorID = p.UserID
		}
		if veiculo.MoradorID != p.UserID {
			return nil, e.ErrForbidden
		}
	default:
		return nil, e.ErrForbidden
	}

	placa, err := validate.Plate(veiculo.Placa)
	if err != nil {
		return nil, err
	}
	veiculo.Placa = placa

	owner, err := s.repo.GetUser(ctx, veiculo.MoradorID)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, fmt.Errorf("%w: owner not found", e.ErrInvalidInput)
		}
		return nil, fmt.Errorf("failed to get owner: %w", err)
	}
	if !access.CanOwnVeiculo(owner) {
		return nil, fmt.Errorf("%w: user cannot own vehicles", e.ErrInvalidInput)
	}
	if !p.SameTenant(owner.CondominioID) {
		return nil, e.ErrForbidden
	}

	veiculo.ID = uuid.New()
	veiculo.IsActive = true
	veiculo.CreatedByID = &p.UserID
	if err := s.repo.CreateVeiculo(ctx, veiculo); err != nil {
		if errors.Is(err, e.ErrDuplicate) {
			return nil, fmt.Errorf("%w: plate already registered for this owner", e.ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to create vehicle: %w", err)
	}
	return veiculo, nil
}

func (s *VeiculoService) GetVeiculo(ctx context.Context, p access.Principal, id uuid.UUID) (*models.Veiculo, error) {
	veiculo, err := s.repo.GetVeiculo(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}
	if err := s.authorize(p, veiculo); err != nil {
		return nil, err
	}
	return veiculo, nil
}

func (s *VeiculoService) UpdateVeiculo(ctx context.Context, p access.Principal, update *models.VeiculoUpdate) (*models.Veiculo, error) {
	if update.ID == uuid.Nil {
		return nil, fmt.Errorf("%w: invalid vehicle ID", e.ErrInvalidInput)
	}
	existing, err := s.repo.GetVeiculo(ctx, update.ID)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}
	if err := s.authorizeWrite(p, existing); err != nil {
		return nil, err
	}
	if update.Placa != nil {
		placa, err := validate.Plate(*update.Placa)
		if err != nil {
			return nil, err
		}
		update.Placa = &placa
	}
	if err := s.repo.UpdateVeiculo(ctx, update); err != nil {
		if errors.Is(err, e.ErrNotFound) || errors.Is(err, e.ErrDuplicate) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update vehicle: %w", err)
	}
	return s.repo.GetVeiculo(ctx, update.ID)
}

func (s *VeiculoService) DeleteVeiculo(ctx context.Context, p access.Principal, id uuid.UUID) error {
	existing, err := s.repo.GetVeiculo(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to get vehicle for deletion: %w", err)
	}
	if err := s.authorizeWrite(p, existing); err != nil {
		return err
	}
	if err := s.repo.DeleteVeiculo(ctx, id); err != nil {
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}
	return nil
}

func (s *VeiculoService) ListVeiculos(ctx context.Context, p access.Principal, search string, isActive *bool, pg db.Pagination) ([]models.Veiculo, db.PageInfo, error) {
	return s.repo.ListVeiculos(ctx, p.ScopeVeiculos(), search, isActive, pg)
}

// authorize: the front desk reads any tenant vehicle, residents their own.
func (s *VeiculoService) authorize(p access.Principal, v *models.Veiculo) error {
	if p.Staff || p.IsSindico() || p.IsPortaria() {
		return nil
	}
	if p.IsMorador() && v.MoradorID == p.UserID {
		return nil
	}
	return e.ErrForbidden
}

// authorizeWrite: writes exclude the front desk.
func (s *VeiculoService) authorizeWrite(p access.Principal, v *models.Veiculo) error {
	if p.Staff || p.IsSindico() {
		return nil
	}
	if p.IsMorador() && v.MoradorID == p.UserID {
		return nil
	}
	return e.ErrForbidden
}
