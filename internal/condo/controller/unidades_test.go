package controller

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	e "github.com/yurivfernandes1/condoflow-backend/internal/condo/errors"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/models"
	"github.com/yurivfernandes1/condoflow-backend/internal/pkg/utils"
	"go.uber.org/zap/zaptest"
)

func TestUnidadeService_CreateUnidade(t *testing.T) {
	condominioID := uuid.New()
	sindico := sindicoPrincipal(condominioID)

	t.Run("duplicate numero and bloco", func(t *testing.T) {
		repo := &MockRepository{
			unidadeExists: func(_ context.Context, numero string, bloco *string, _ uuid.UUID) (bool, error) {
				assert.Equal(t, "101", numero)
				require.NotNil(t, bloco)
				assert.Equal(t, "A", *bloco)
				return true, nil
			},
		}
		svc := NewUnidadeService(repo, zaptest.NewLogger(t))
		_, err := svc.CreateUnidade(context.Background(), sindico, &models.Unidade{
			Numero: " 101 ",
			Bloco:  utils.Ptr("A"),
		})
		assert.ErrorIs(t, err, e.ErrDuplicate)
	})

	t.Run("successful creation", func(t *testing.T) {
		repo := &MockRepository{
			unidadeExists: func(_ context.Context, _ string, _ *string, _ uuid.UUID) (bool, error) {
				return false, nil
			},
			createUnidade: func(_ context.Context, _ *models.Unidade) error {
				return nil
			},
		}
		svc := NewUnidadeService(repo, zaptest.NewLogger(t))
		created, err := svc.CreateUnidade(context.Background(), sindico, &models.Unidade{Numero: "101"})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, created.ID)
		assert.True(t, created.IsActive)
		assert.Equal(t, &sindico.UserID, created.CreatedByID)
	})

	t.Run("front desk cannot create units", func(t *testing.T) {
		svc := NewUnidadeService(&MockRepository{}, zaptest.NewLogger(t))
		_, err := svc.CreateUnidade(context.Background(), portariaPrincipal(condominioID), &models.Unidade{Numero: "101"})
		assert.ErrorIs(t, err, e.ErrForbidden)
	})
}

func TestUnidadeService_DeleteUnidade(t *testing.T) {
	condominioID := uuid.New()
	sindico := sindicoPrincipal(condominioID)
	unidadeID := uuid.New()

	t.Run("occupied unit is deactivated, not deleted", func(t *testing.T) {
		var applied *models.UnidadeUpdate
		repo := &MockRepository{
			unidadeHasMoradores: func(_ context.Context, _ uuid.UUID) (bool, error) {
				return true, nil
			},
			updateUnidade: func(_ context.Context, u *models.UnidadeUpdate) error {
				applied = u
				return nil
			},
		}
		svc := NewUnidadeService(repo, zaptest.NewLogger(t))
		deactivated, err := svc.DeleteUnidade(context.Background(), sindico, unidadeID)
		require.NoError(t, err)
		assert.True(t, deactivated)
		require.NotNil(t, applied)
		require.NotNil(t, applied.IsActive)
		assert.False(t, *applied.IsActive)
	})

	t.Run("empty unit is deleted", func(t *testing.T) {
		deleted := false
		repo := &MockRepository{
			unidadeHasMoradores: func(_ context.Context, _ uuid.UUID) (bool, error) {
				return false, nil
			},
			deleteUnidade: func(_ context.Context, id uuid.UUID) error {
				assert.Equal(t, unidadeID, id)
				deleted = true
				return nil
			},
		}
		svc := NewUnidadeService(repo, zaptest.NewLogger(t))
		deactivated, err := svc.DeleteUnidade(context.Background(), sindico, unidadeID)
		require.NoError(t, err)
		assert.False(t, deactivated)
		assert.True(t, deleted)
	})
}

func TestUnidadeService_GetUnidade(t *testing.T) {
	condominioID := uuid.New()
	ownUnit := uuid.New()
	otherUnit := uuid.New()
	morador := moradorPrincipal(condominioID, ownUnit)

	repo := &MockRepository{
		getUnidade: func(_ context.Context, id uuid.UUID) (*models.Unidade, error) {
			return &models.Unidade{ID: id, Numero: "101"}, nil
		},
	}
	svc := NewUnidadeService(repo, zaptest.NewLogger(t))

	_, err := svc.GetUnidade(context.Background(), morador, ownUnit)
	assert.NoError(t, err)

	_, err = svc.GetUnidade(context.Background(), morador, otherUnit)
	assert.ErrorIs(t, err, e.ErrForbidden)
}
