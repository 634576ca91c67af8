package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/models"
	"github.com/yurivfernandes1/condoflow-backend/internal/pkg/utils"
)

const testSecret = "test_secret"

func TestGenerateAndParseToken(t *testing.T) {
	condominioID := uuid.New()
	unidadeID := uuid.New()
	user := &models.User{
		ID:           uuid.New(),
		Roles:        []models.Role{models.RoleMorador},
		CondominioID: &condominioID,
		UnidadeID:    &unidadeID,
	}

	token, err := GenerateToken(user, testSecret)
	require.NoError(t, err)

	principal, err := ParseToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, user.ID, principal.UserID)
	assert.Equal(t, []models.Role{models.RoleMorador}, principal.Roles)
	assert.False(t, principal.Staff)
	require.NotNil(t, principal.CondominioID)
	assert.Equal(t, condominioID, *principal.CondominioID)
	require.NotNil(t, principal.UnidadeID)
	assert.Equal(t, unidadeID, *principal.UnidadeID)
}

func TestParseToken_WrongSecret(t *testing.T) {
	user := &models.User{ID: uuid.New(), Staff: true}
	token, err := GenerateToken(user, testSecret)
	require.NoError(t, err)

	_, err = ParseToken(token, "another_secret")
	assert.Error(t, err)
}

func TestParseToken_StaffWithoutTenant(t *testing.T) {
	user := &models.User{ID: uuid.New(), Staff: true}
	token, err := GenerateToken(user, testSecret)
	require.NoError(t, err)

	principal, err := ParseToken(token, testSecret)
	require.NoError(t, err)
	assert.True(t, principal.Staff)
	assert.Nil(t, principal.CondominioID)
	assert.Empty(t, principal.Roles)
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	user := &models.User{
		ID:        uuid.New(),
		Roles:     []models.Role{models.RolePortaria},
		UnidadeID: utils.Ptr(uuid.New()),
	}
	token, err := GenerateToken(user, testSecret)
	require.NoError(t, err)

	router := gin.New()
	router.Use(Middleware(testSecret))
	router.GET("/ping", func(c *gin.Context) {
		principal, ok := PrincipalFrom(c)
		require.True(t, ok)
		assert.Equal(t, user.ID, principal.UserID)
		c.Status(204)
	})

	t.Run("valid token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/ping", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)
		assert.Equal(t, 204, w.Code)
	})

	t.Run("missing header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/ping", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, 401, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/ping", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		router.ServeHTTP(w, req)
		assert.Equal(t, 401, w.Code)
	})
}
