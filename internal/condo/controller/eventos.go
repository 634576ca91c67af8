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

// EventoService manages condominium events. An event happens either in a
// registered space or at a free-text location, and must end after it starts.
type EventoService struct {
	repo   Repository
	logger *zap.Logger
}

func NewEventoService(repo Repository, logger *zap.Logger) *EventoService {
	return &EventoService{
		repo:   repo,
		logger: logger.Named("evento_service"),
	}
}

func validateEventoLocal(espacoID *uuid.UUID, localTexto *string) error {
	hasEspaco := espacoID != nil && *espacoID != uuid.Nil
	hasLocal := localTexto != nil && strings.TrimSpace(*localTexto) != ""
	if !hasEspaco && !hasLocal {
		return fmt.Errorf("%w: event needs a space or a location", e.ErrInvalidInput)
	}
	return nil
}

func (s *EventoService) CreateEvento(ctx context.Context, p access.Principal, evento *models.Evento) (*models.Evento, error) {
	if !p.CanManageEspacos() {
		return nil, e.ErrForbidden
	}
	if strings.TrimSpace(evento.Titulo) == "" {
		return nil, fmt.Errorf("%w: titulo is required", e.ErrInvalidInput)
	}
	if err := validateEventoLocal(evento.EspacoID, evento.LocalTexto); err != nil {
		return nil, err
	}
	if evento.DatetimeInicio != nil && evento.DatetimeFim != nil &&
		!evento.DatetimeFim.After(*evento.DatetimeInicio) {
		return nil, fmt.Errorf("%w: event must end after it starts", e.ErrInvalidInput)
	}
	if evento.EspacoID != nil && *evento.EspacoID != uuid.Nil {
		if _, err := s.repo.GetEspaco(ctx, *evento.EspacoID); err != nil {
			if errors.Is(err, e.ErrNotFound) {
				return nil, fmt.Errorf("%w: space not found", e.ErrInvalidInput)
			}
			return nil, fmt.Errorf("failed to get space: %w", err)
		}
	}

	evento.ID = uuid.New()
	evento.CreatedByID = &p.UserID
	if err := s.repo.CreateEvento(ctx, evento); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return evento, nil
}

func (s *EventoService) GetEvento(ctx context.Context, p access.Principal, id uuid.UUID) (*models.Evento, error) {
	if !p.HasAnyRole() {
		return nil, e.ErrForbidden
	}
	evento, err := s.repo.GetEvento(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return evento, nil
}

func (s *EventoService) UpdateEvento(ctx context.Context, p access.Principal, update *models.EventoUpdate) (*models.Evento, error) {
	if !p.CanManageEspacos() {
		return nil, e.ErrForbidden
	}
	if update.ID == uuid.Nil {
		return nil, fmt.Errorf("%w: invalid event ID", e.ErrInvalidInput)
	}

	existing, err := s.repo.GetEvento(ctx, update.ID)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	espacoID := existing.EspacoID
	localTexto := existing.LocalTexto
	if update.EspacoID != nil {
		espacoID = update.EspacoID
	}
	if update.LocalTexto != nil {
		localTexto = update.LocalTexto
	}
	if err := validateEventoLocal(espacoID, localTexto); err != nil {
		return nil, err
	}

	inicio := existing.DatetimeInicio
	fim := existing.DatetimeFim
	if update.DatetimeInicio != nil {
		inicio = update.DatetimeInicio
	}
	if update.DatetimeFim != nil {
		fim = update.DatetimeFim
	}
	if inicio != nil && fim != nil && !fim.After(*inicio) {
		return nil, fmt.Errorf("%w: event must end after it starts", e.ErrInvalidInput)
	}

	if err := s.repo.UpdateEvento(ctx, update); err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update event: %w", err)
	}
	return s.repo.GetEvento(ctx, update.ID)
}

func (s *EventoService) DeleteEvento(ctx context.Context, p access.Principal, id uuid.UUID) error {
	if !p.CanManageEspacos() {
		return e.ErrForbidden
	}
	if err := s.repo.DeleteEvento(ctx, id); err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}

func (s *EventoService) ListEventos(ctx context.Context, p access.Principal, search string, pg db.Pagination) ([]models.Evento, db.PageInfo, error) {
	return s.repo.ListEventos(ctx, p.ScopeEventos(), search, pg)
}
