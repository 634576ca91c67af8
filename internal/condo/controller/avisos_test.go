package controller

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/access"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/db"
	e "github.com/yurivfernandes1/condoflow-backend/internal/condo/errors"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/events"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/models"
	"github.com/yurivfernandes1/condoflow-backend/internal/pkg/utils"
	"go.uber.org/zap/zaptest"
)

var avisoNow = time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)

func TestAvisoService_CreateAviso(t *testing.T) {
	condominioID := uuid.New()
	sindico := sindicoPrincipal(condominioID)

	t.Run("defaults and publication event", func(t *testing.T) {
		var created *models.Aviso
		repo := &MockRepository{
			createAviso: func(_ context.Context, a *models.Aviso) error {
				created = a
				return nil
			},
		}
		wg := &sync.WaitGroup{}
		wg.Add(1)
		producer := &MockProducer{wg: wg}
		svc := NewAvisoService(repo, producer, zaptest.NewLogger(t))
		svc.now = func() time.Time { return avisoNow }

		aviso, err := svc.CreateAviso(context.Background(), sindico, &models.Aviso{
			Titulo: "Assembleia geral",
			Grupo:  models.RoleMorador,
		})
		require.NoError(t, err)
		assert.Equal(t, models.PrioridadeMedia, aviso.Prioridade)
		assert.Equal(t, models.AvisoAtivo, aviso.Status)
		assert.Equal(t, avisoNow, aviso.DataInicio, "missing start date defaults to now")
		require.NotNil(t, created)

		wg.Wait()
		evs := producer.events()
		require.Len(t, evs, 1)
		assert.Equal(t, events.AvisoPublicado, evs[0].EventType)
	})

	t.Run("draft does not publish", func(t *testing.T) {
		repo := &MockRepository{
			createAviso: func(_ context.Context, _ *models.Aviso) error { return nil },
		}
		producer := &MockProducer{}
		svc := NewAvisoService(repo, producer, zaptest.NewLogger(t))
		svc.now = func() time.Time { return avisoNow }

		_, err := svc.CreateAviso(context.Background(), sindico, &models.Aviso{
			Titulo: "Rascunho de aviso",
			Grupo:  models.RoleMorador,
			Status: models.AvisoRascunho,
		})
		require.NoError(t, err)
		assert.Empty(t, producer.events(), "drafts never hit the event stream")
	})

	t.Run("end before start", func(t *testing.T) {
		svc := NewAvisoService(&MockRepository{}, &MockProducer{}, zaptest.NewLogger(t))
		svc.now = func() time.Time { return avisoNow }

		_, err := svc.CreateAviso(context.Background(), sindico, &models.Aviso{
			Titulo:     "Janela invertida",
			Grupo:      models.RoleMorador,
			DataInicio: avisoNow,
			DataFim:    utils.Ptr(avisoNow.Add(-time.Hour)),
		})
		assert.ErrorIs(t, err, e.ErrInvalidInput)
	})

	t.Run("unknown group", func(t *testing.T) {
		svc := NewAvisoService(&MockRepository{}, &MockProducer{}, zaptest.NewLogger(t))
		_, err := svc.CreateAviso(context.Background(), sindico, &models.Aviso{
			Titulo: "Grupo estranho",
			Grupo:  models.Role("zelador"),
		})
		assert.ErrorIs(t, err, e.ErrInvalidInput)
	})

	t.Run("front desk cannot post", func(t *testing.T) {
		svc := NewAvisoService(&MockRepository{}, &MockProducer{}, zaptest.NewLogger(t))
		_, err := svc.CreateAviso(context.Background(), portariaPrincipal(condominioID), &models.Aviso{
			Titulo: "Tentativa da portaria",
			Grupo:  models.RoleMorador,
		})
		assert.ErrorIs(t, err, e.ErrForbidden)
	})
}

func TestAvisoService_UpdateAviso_Window(t *testing.T) {
	condominioID := uuid.New()
	sindico := sindicoPrincipal(condominioID)
	avisoID := uuid.New()

	existing := &models.Aviso{
		ID:         avisoID,
		Titulo:     "Manutenção",
		Grupo:      models.RoleMorador,
		Status:     models.AvisoAtivo,
		DataInicio: avisoNow,
	}

	repo := &MockRepository{
		getAviso: func(_ context.Context, id uuid.UUID) (*models.Aviso, error) {
			require.Equal(t, avisoID, id)
			return existing, nil
		},
	}
	svc := NewAvisoService(repo, &MockProducer{}, zaptest.NewLogger(t))

	// The new end date is checked against the stored start date.
	_, err := svc.UpdateAviso(context.Background(), sindico, &models.AvisoUpdate{
		ID:      avisoID,
		DataFim: utils.Ptr(avisoNow.Add(-time.Hour)),
	})
	assert.ErrorIs(t, err, e.ErrInvalidInput)
}

func TestAvisoService_GetAviso_GroupGate(t *testing.T) {
	condominioID := uuid.New()
	aviso := &models.Aviso{
		ID:     uuid.New(),
		Titulo: "Somente moradores",
		Grupo:  models.RoleMorador,
		Status: models.AvisoAtivo,
	}
	repo := &MockRepository{
		getAviso: func(_ context.Context, _ uuid.UUID) (*models.Aviso, error) { return aviso, nil },
	}
	svc := NewAvisoService(repo, &MockProducer{}, zaptest.NewLogger(t))

	_, err := svc.GetAviso(context.Background(), moradorPrincipal(condominioID, uuid.New()), aviso.ID)
	assert.NoError(t, err)

	_, err = svc.GetAviso(context.Background(), portariaPrincipal(condominioID), aviso.ID)
	assert.ErrorIs(t, err, e.ErrForbidden, "other groups do not read the notice")

	_, err = svc.GetAviso(context.Background(), sindicoPrincipal(condominioID), aviso.ID)
	assert.NoError(t, err, "managers read every group")
}

func TestAvisoService_ListAvisos_ResolvesPendingFlag(t *testing.T) {
	condominioID := uuid.New()
	unidadeID := uuid.New()
	morador := moradorPrincipal(condominioID, unidadeID)

	asked := false
	repo := &MockRepository{
		hasPendingEncomenda: func(_ context.Context, id uuid.UUID) (bool, error) {
			asked = true
			assert.Equal(t, unidadeID, id)
			return true, nil
		},
		listAvisos: func(_ context.Context, scope access.Scope, _ db.AvisoFilter, _ db.Pagination) ([]models.Aviso, db.PageInfo, error) {
			require.NotNil(t, scope)
			return nil, db.PageInfo{}, nil
		},
	}
	svc := NewAvisoService(repo, &MockProducer{}, zaptest.NewLogger(t))

	_, _, err := svc.ListAvisos(context.Background(), morador, db.AvisoFilter{}, db.Pagination{})
	require.NoError(t, err)
	assert.True(t, asked, "resident listings resolve the pending-delivery flag first")
}
