package controller

import (
	"context"
	"fmt"
	"time"

	"github.com/yurivfernandes1/condoflow-backend/internal/condo/access"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/aging"
	e "github.com/yurivfernandes1/condoflow-backend/internal/condo/errors"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/models"
	"go.uber.org/zap"
)

// MoradorStats is the resident dashboard. The pending-delivery alert uses
// the resident aging policy, which escalates faster than the manager one.
type MoradorStats struct {
	EncomendasPendentes    int         `json:"encomendas_pendentes"`
	EncomendaMaisAntiga    int         `json:"encomenda_mais_antiga_dias"`
	CorEncomendas          aging.Color `json:"cor_encomendas"`
	VisitantesNoCondominio int64       `json:"visitantes_no_condominio"`
	AvisosVigentes         int64       `json:"avisos_vigentes"`
	ReservasFuturas        int64       `json:"reservas_futuras"`
}

// SindicoStats is the manager dashboard.
type SindicoStats struct {
	TotalMoradores      int64       `json:"total_moradores"`
	MoradoresAtivos     int64       `json:"moradores_ativos"`
	PercentualAtivos    float64     `json:"percentual_ativos"`
	TotalPortaria       int64       `json:"total_portaria"`
	VisitantesMes       int64       `json:"visitantes_mes"`
	EncomendasPendentes int         `json:"encomendas_pendentes"`
	EncomendaMaisAntiga int         `json:"encomenda_mais_antiga_dias"`
	CorEncomendas       aging.Color `json:"cor_encomendas"`
	AvisosVigentes      int64       `json:"avisos_vigentes"`
	ReservasProximos7   int64       `json:"reservas_proximos_7_dias"`
	EventosProximos7    int64       `json:"eventos_proximos_7_dias"`
}

// DashboardService aggregates the per-role home screens.
type DashboardService struct {
	repo   Repository
	logger *zap.Logger
	now    func() time.Time
}

func NewDashboardService(repo Repository, logger *zap.Logger) *DashboardService {
	return &DashboardService{
		repo:   repo,
		logger: logger.Named("dashboard_service"),
		now:    time.Now,
	}
}

// oldestDelta returns the age in days of the oldest timestamp, zero when
// there is none. Timestamps arrive oldest first.
func oldestDelta(times []time.Time, now time.Time) int {
	if len(times) == 0 {
		return 0
	}
	return aging.DeltaDays(times[0], now)
}

// MoradorDashboard builds the resident home screen.
func (s *DashboardService) MoradorDashboard(ctx context.Context, p access.Principal) (*MoradorStats, error) {
	if !p.IsMorador() {
		return nil, e.ErrForbidden
	}
	now := s.now()
	stats := &MoradorStats{CorEncomendas: aging.None}

	times, err := s.repo.PendingEncomendaTimes(ctx, p.ScopeEncomendas(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load pending deliveries: %w", err)
	}
	stats.EncomendasPendentes = len(times)
	if len(times) > 0 {
		stats.EncomendaMaisAntiga = oldestDelta(times, now)
		stats.CorEncomendas = aging.ResidentPolicy(stats.EncomendaMaisAntiga)
	}

	visitantes, err := s.repo.CountVisitantesNoCondominio(ctx, p.ScopeVisitantes())
	if err != nil {
		return nil, fmt.Errorf("failed to count visitors: %w", err)
	}
	stats.VisitantesNoCondominio = visitantes

	hasPending := stats.EncomendasPendentes > 0
	avisos, err := s.repo.CountAvisosVigentes(ctx, p.ScopeAvisos(hasPending), now)
	if err != nil {
		return nil, fmt.Errorf("failed to count notices: %w", err)
	}
	stats.AvisosVigentes = avisos

	reservas, err := s.repo.CountReservas(ctx, p.ScopeReservas(), dateOnly(now), time.Time{},
		[]models.ReservaStatus{models.ReservaPendente, models.ReservaConfirmada})
	if err != nil {
		return nil, fmt.Errorf("failed to count reservations: %w", err)
	}
	stats.ReservasFuturas = reservas

	return stats, nil
}

// SindicoDashboard builds the manager home screen.
func (s *DashboardService) SindicoDashboard(ctx context.Context, p access.Principal) (*SindicoStats, error) {
	if !p.Staff && !p.IsSindico() {
		return nil, e.ErrForbidden
	}
	if p.CondominioID == nil {
		return nil, fmt.Errorf("%w: principal has no condominium", e.ErrInvalidInput)
	}
	now := s.now()
	stats := &SindicoStats{CorEncomendas: aging.None}

	total, err := s.repo.CountUsersByRole(ctx, *p.CondominioID, models.RoleMorador, false)
	if err != nil {
		return nil, fmt.Errorf("failed to count residents: %w", err)
	}
	ativos, err := s.repo.CountUsersByRole(ctx, *p.CondominioID, models.RoleMorador, true)
	if err != nil {
		return nil, fmt.Errorf("failed to count active residents: %w", err)
	}
	stats.TotalMoradores = total
	stats.MoradoresAtivos = ativos
	if total > 0 {
		stats.PercentualAtivos = float64(ativos) / float64(total) * 100
	}

	portaria, err := s.repo.CountUsersByRole(ctx, *p.CondominioID, models.RolePortaria, true)
	if err != nil {
		return nil, fmt.Errorf("failed to count front desk staff: %w", err)
	}
	stats.TotalPortaria = portaria

	// Month to date, not a rolling window.
	inicioMes := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	visitantes, err := s.repo.CountVisitantes(ctx, p.ScopeVisitantes(), inicioMes)
	if err != nil {
		return nil, fmt.Errorf("failed to count visitors: %w", err)
	}
	stats.VisitantesMes = visitantes

	times, err := s.repo.PendingEncomendaTimes(ctx, p.ScopeEncomendas(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load pending deliveries: %w", err)
	}
	stats.EncomendasPendentes = len(times)
	if len(times) > 0 {
		stats.EncomendaMaisAntiga = oldestDelta(times, now)
		stats.CorEncomendas = aging.ManagerPolicy(stats.EncomendaMaisAntiga)
	}

	avisos, err := s.repo.CountAvisosVigentes(ctx, p.ScopeAvisos(true), now)
	if err != nil {
		return nil, fmt.Errorf("failed to count notices: %w", err)
	}
	stats.AvisosVigentes = avisos

	weekEnd := dateOnly(now).AddDate(0, 0, 7)
	reservas, err := s.repo.CountReservas(ctx, p.ScopeReservas(), dateOnly(now), weekEnd,
		[]models.ReservaStatus{models.ReservaPendente, models.ReservaConfirmada})
	if err != nil {
		return nil, fmt.Errorf("failed to count reservations: %w", err)
	}
	stats.ReservasProximos7 = reservas

	eventos, err := s.repo.CountEventos(ctx, p.ScopeEventos(), now, weekEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to count events: %w", err)
	}
	stats.EventosProximos7 = eventos

	return stats, nil
}
