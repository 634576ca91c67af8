package controller

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/access"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/aging"
	e "github.com/yurivfernandes1/condoflow-backend/internal/condo/errors"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/models"
	"go.uber.org/zap/zaptest"
)

var dashboardNow = time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

// A delivery pending for one day is already yellow for the resident but
// still green for the manager. The two policies drift on purpose.
func TestDashboard_PolicyDivergence(t *testing.T) {
	condominioID := uuid.New()
	unidadeID := uuid.New()
	oneDayOld := []time.Time{dashboardNow.AddDate(0, 0, -1)}

	repo := &MockRepository{
		pendingEncomendaTimes: func(_ context.Context, _ access.Scope, _ *uuid.UUID) ([]time.Time, error) {
			return oneDayOld, nil
		},
		countVisitantesNoCondominio: func(_ context.Context, _ access.Scope) (int64, error) {
			return 0, nil
		},
		countVisitantes: func(_ context.Context, _ access.Scope, _ time.Time) (int64, error) {
			return 0, nil
		},
		countAvisosVigentes: func(_ context.Context, _ access.Scope, _ time.Time) (int64, error) {
			return 0, nil
		},
		countReservas: func(_ context.Context, _ access.Scope, _, _ time.Time, _ []models.ReservaStatus) (int64, error) {
			return 0, nil
		},
		countEventos: func(_ context.Context, _ access.Scope, _, _ time.Time) (int64, error) {
			return 0, nil
		},
		countUsersByRole: func(_ context.Context, _ uuid.UUID, _ models.Role, _ bool) (int64, error) {
			return 0, nil
		},
	}
	svc := NewDashboardService(repo, zaptest.NewLogger(t))
	svc.now = func() time.Time { return dashboardNow }

	morador := moradorPrincipal(condominioID, unidadeID)
	moradorStats, err := svc.MoradorDashboard(context.Background(), morador)
	require.NoError(t, err)
	assert.Equal(t, 1, moradorStats.EncomendasPendentes)
	assert.Equal(t, 1, moradorStats.EncomendaMaisAntiga)
	assert.Equal(t, aging.Yellow, moradorStats.CorEncomendas)

	sindico := sindicoPrincipal(condominioID)
	sindicoStats, err := svc.SindicoDashboard(context.Background(), sindico)
	require.NoError(t, err)
	assert.Equal(t, 1, sindicoStats.EncomendasPendentes)
	assert.Equal(t, 1, sindicoStats.EncomendaMaisAntiga)
	assert.Equal(t, aging.Green, sindicoStats.CorEncomendas)
}

func TestDashboardService_MoradorDashboard(t *testing.T) {
	condominioID := uuid.New()
	unidadeID := uuid.New()
	morador := moradorPrincipal(condominioID, unidadeID)

	t.Run("no pending deliveries yields no alert color", func(t *testing.T) {
		repo := &MockRepository{
			pendingEncomendaTimes: func(_ context.Context, _ access.Scope, _ *uuid.UUID) ([]time.Time, error) {
				return nil, nil
			},
			countVisitantesNoCondominio: func(_ context.Context, _ access.Scope) (int64, error) {
				return 2, nil
			},
			countAvisosVigentes: func(_ context.Context, _ access.Scope, _ time.Time) (int64, error) {
				return 3, nil
			},
			countReservas: func(_ context.Context, _ access.Scope, from, to time.Time, _ []models.ReservaStatus) (int64, error) {
				assert.Equal(t, dateOnly(dashboardNow), from)
				assert.True(t, to.IsZero())
				return 1, nil
			},
		}
		svc := NewDashboardService(repo, zaptest.NewLogger(t))
		svc.now = func() time.Time { return dashboardNow }

		stats, err := svc.MoradorDashboard(context.Background(), morador)
		require.NoError(t, err)
		assert.Equal(t, 0, stats.EncomendasPendentes)
		assert.Equal(t, aging.None, stats.CorEncomendas)
		assert.Equal(t, int64(2), stats.VisitantesNoCondominio)
		assert.Equal(t, int64(3), stats.AvisosVigentes)
		assert.Equal(t, int64(1), stats.ReservasFuturas)
	})

	t.Run("managers are not residents", func(t *testing.T) {
		svc := NewDashboardService(&MockRepository{}, zaptest.NewLogger(t))
		_, err := svc.MoradorDashboard(context.Background(), sindicoPrincipal(condominioID))
		assert.ErrorIs(t, err, e.ErrForbidden)
	})
}

func TestDashboardService_SindicoDashboard(t *testing.T) {
	condominioID := uuid.New()
	sindico := sindicoPrincipal(condominioID)

	repo := &MockRepository{
		countUsersByRole: func(_ context.Context, id uuid.UUID, role models.Role, activeOnly bool) (int64, error) {
			assert.Equal(t, condominioID, id)
			switch {
			case role == models.RoleMorador && !activeOnly:
				return 40, nil
			case role == models.RoleMorador && activeOnly:
				return 30, nil
			case role == models.RolePortaria:
				return 2, nil
			}
			return 0, nil
		},
		countVisitantes: func(_ context.Context, _ access.Scope, since time.Time) (int64, error) {
			assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), since, "visitors count from the first day of the month")
			return 12, nil
		},
		pendingEncomendaTimes: func(_ context.Context, _ access.Scope, _ *uuid.UUID) ([]time.Time, error) {
			return []time.Time{dashboardNow.AddDate(0, 0, -5)}, nil
		},
		countAvisosVigentes: func(_ context.Context, _ access.Scope, _ time.Time) (int64, error) {
			return 4, nil
		},
		countReservas: func(_ context.Context, _ access.Scope, from, to time.Time, _ []models.ReservaStatus) (int64, error) {
			assert.Equal(t, dateOnly(dashboardNow), from)
			assert.Equal(t, dateOnly(dashboardNow).AddDate(0, 0, 7), to)
			return 5, nil
		},
		countEventos: func(_ context.Context, _ access.Scope, _, _ time.Time) (int64, error) {
			return 2, nil
		},
	}
	svc := NewDashboardService(repo, zaptest.NewLogger(t))
	svc.now = func() time.Time { return dashboardNow }

	stats, err := svc.SindicoDashboard(context.Background(), sindico)
	require.NoError(t, err)
	assert.Equal(t, int64(40), stats.TotalMoradores)
	assert.Equal(t, int64(30), stats.MoradoresAtivos)
	assert.InDelta(t, 75.0, stats.PercentualAtivos, 0.001)
	assert.Equal(t, int64(2), stats.TotalPortaria)
	assert.Equal(t, int64(12), stats.VisitantesMes)
	assert.Equal(t, 1, stats.EncomendasPendentes)
	assert.Equal(t, 5, stats.EncomendaMaisAntiga)
	assert.Equal(t, aging.Red, stats.CorEncomendas)
	assert.Equal(t, int64(4), stats.AvisosVigentes)
	assert.Equal(t, int64(5), stats.ReservasProximos7)
	assert.Equal(t, int64(2), stats.EventosProximos7)

	t.Run("residents cannot open it", func(t *testing.T) {
		svc := NewDashboardService(&MockRepository{}, zaptest.NewLogger(t))
		_, err := svc.SindicoDashboard(context.Background(), moradorPrincipal(condominioID, uuid.New()))
		assert.ErrorIs(t, err, e.ErrForbidden)
	})
}
