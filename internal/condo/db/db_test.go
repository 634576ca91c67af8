package db

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/access"
	e "github.com/yurivfernandes1/condoflow-backend/internal/condo/errors"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/models"
	"github.com/yurivfernandes1/condoflow-backend/internal/pkg/utils"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// SetupTestDB initializes an in-memory SQLite database for testing.
// TranslateError is on, as in production, so unique violations surface as
// gorm.ErrDuplicatedKey and get mapped to the sentinel taxonomy.
func SetupTestDB(t *testing.T) *Repository {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to open test database")

	require.NoError(t, Migrate(db), "failed to migrate test database")

	return &Repository{db: db}
}

// seedTenant creates a condominium with a manager, a unit and a resident
// living in it. The fixture most scope tests start from.
func seedTenant(t *testing.T, repo *Repository) (*models.Condominio, *models.User, *models.Unidade, *models.User) {
	ctx := context.Background()

	condominio := &models.Condominio{ID: uuid.New(), Nome: "Residencial Aurora", CNPJ: uuid.NewString()}
	require.NoError(t, repo.CreateCondominio(ctx, condominio))

	sindico := &models.User{
		ID:           uuid.New(),
		Username:     "sindico-" + uuid.NewString(),
		FullName:     "Carlos Souza",
		CPF:          uuid.NewString(),
		Roles:        []models.Role{models.RoleSindico},
		IsActive:     true,
		CondominioID: &condominio.ID,
	}
	require.NoError(t, repo.CreateUser(ctx, sindico))

	unidade := &models.Unidade{
		ID:          uuid.New(),
		Numero:      "101",
		Bloco:       utils.Ptr("A"),
		IsActive:    true,
		CreatedByID: &sindico.ID,
	}
	require.NoError(t, repo.CreateUnidade(ctx, unidade))

	morador := &models.User{
		ID:           uuid.New(),
		Username:     "morador-" + uuid.NewString(),
		FullName:     "Ana Lima",
		CPF:          uuid.NewString(),
		Roles:        []models.Role{models.RoleMorador},
		IsActive:     true,
		CondominioID: &condominio.ID,
		UnidadeID:    &unidade.ID,
	}
	require.NoError(t, repo.CreateUser(ctx, morador))

	return condominio, sindico, unidade, morador
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	repo := SetupTestDB(t)
	ctx := context.Background()

	user := &models.User{ID: uuid.New(), Username: "joao.silva", CPF: "529.982.247-25"}
	require.NoError(t, repo.CreateUser(ctx, user))

	dup := &models.User{ID: uuid.New(), Username: "joao.silva", CPF: "111.444.777-35"}
	err := repo.CreateUser(ctx, dup)
	assert.ErrorIs(t, err, e.ErrDuplicate, "second user with the same username should be rejected")
}

func TestGetUserNotFound(t *testing.T) {
	repo := SetupTestDB(t)

	_, err := repo.GetUser(context.Background(), uuid.New())
	assert.ErrorIs(t, err, e.ErrNotFound)
}

func TestUpdateUserPartial(t *testing.T) {
	repo := SetupTestDB(t)
	ctx := context.Background()

	user := &models.User{
		ID:       uuid.New(),
		Username: "maria",
		FullName: "Maria Santos",
		Phone:    "(11) 98765-4321",
	}
	require.NoError(t, repo.CreateUser(ctx, user))

	err := repo.UpdateUser(ctx, &models.UserUpdate{
		ID:           user.ID,
		Phone:        utils.Ptr("(11) 3456-7890"),
		PasswordHash: utils.Ptr("new-hash"),
	})
	assert.NoError(t, err)

	updated, err := repo.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "(11) 3456-7890", updated.Phone, "phone should be updated")
	assert.Equal(t, "new-hash", updated.PasswordHash, "password hash should be updated")
	assert.Equal(t, "Maria Santos", updated.FullName, "untouched fields should survive")
}

func TestCountUsersByRole(t *testing.T) {
	repo := SetupTestDB(t)
	ctx := context.Background()
	condominio, _, _, _ := seedTenant(t, repo)

	inactive := &models.User{
		ID:           uuid.New(),
		Username:     "inactive-" + uuid.NewString(),
		CPF:          uuid.NewString(),
		Roles:        []models.Role{models.RoleMorador},
		IsActive:     false,
		CondominioID: &condominio.ID,
	}
	require.NoError(t, repo.CreateUser(ctx, inactive))

	total, err := repo.CountUsersByRole(ctx, condominio.ID, models.RoleMorador, false)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	active, err := repo.CountUsersByRole(ctx, condominio.ID, models.RoleMorador, true)
	require.NoError(t, err)
	assert.Equal(t, int64(1), active)
}

func TestUnidadeExists(t *testing.T) {
	repo := SetupTestDB(t)
	ctx := context.Background()
	_, _, unidade, _ := seedTenant(t, repo)

	exists, err := repo.UnidadeExists(ctx, "101", utils.Ptr("A"), uuid.Nil)
	require.NoError(t, err)
	assert.True(t, exists, "same numero and bloco should collide")

	exists, err = repo.UnidadeExists(ctx, "101", utils.Ptr("B"), uuid.Nil)
	require.NoError(t, err)
	assert.False(t, exists, "different bloco is a different unit")

	exists, err = repo.UnidadeExists(ctx, "101", utils.Ptr("A"), unidade.ID)
	require.NoError(t, err)
	assert.False(t, exists, "a unit never collides with itself")
}

func TestPendingEncomendaTimes(t *testing.T) {
	repo := SetupTestDB(t)
	ctx := context.Background()
	_, sindico, unidade, _ := seedTenant(t, repo)

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		enc := &models.Encomenda{
			ID:               uuid.New(),
			UnidadeID:        &unidade.ID,
			DestinatarioNome: "Ana Lima",
			CreatedByID:      &sindico.ID,
			CreatedAt:        base.AddDate(0, 0, i),
		}
		require.NoError(t, repo.CreateEncomenda(ctx, enc))
	}
	retirada := &models.Encomenda{
		ID:               uuid.New(),
		UnidadeID:        &unidade.ID,
		DestinatarioNome: "Ana Lima",
		RetiradoEm:       utils.Ptr(base),
		CreatedByID:      &sindico.ID,
	}
	require.NoError(t, repo.CreateEncomenda(ctx, retirada))

	times, err := repo.PendingEncomendaTimes(ctx, func(db *gorm.DB) *gorm.DB { return db }, &unidade.ID)
	require.NoError(t, err)
	require.Len(t, times, 3, "picked-up deliveries are not pending")
	assert.True(t, times[0].Before(times[1]), "oldest first")

	pending, err := repo.HasPendingEncomenda(ctx, unidade.ID)
	require.NoError(t, err)
	assert.True(t, pending)
}

func TestReservaUniqueSlot(t *testing.T) {
	repo := SetupTestDB(t)
	ctx := context.Background()
	_, sindico, _, morador := seedTenant(t, repo)

	espaco := &models.Espaco{ID: uuid.New(), Nome: "Salão de Festas", IsActive: true, CreatedByID: &sindico.ID}
	require.NoError(t, repo.CreateEspaco(ctx, espaco))

	data := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	first := &models.EspacoReserva{
		ID:          uuid.New(),
		EspacoID:    espaco.ID,
		MoradorID:   morador.ID,
		DataReserva: data,
	}
	require.NoError(t, repo.CreateReserva(ctx, first))

	second := &models.EspacoReserva{
		ID:          uuid.New(),
		EspacoID:    espaco.ID,
		MoradorID:   morador.ID,
		DataReserva: data,
	}
	err := repo.CreateReserva(ctx, second)
	assert.ErrorIs(t, err, e.ErrSlotTaken, "the unique index is the arbiter of double bookings")

	taken, err := repo.ReservaTaken(ctx, espaco.ID, data, uuid.Nil)
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = repo.ReservaTaken(ctx, espaco.ID, data, first.ID)
	require.NoError(t, err)
	assert.False(t, taken, "a reservation never collides with itself")

	// Cancelling frees the date for good.
	require.NoError(t, repo.DeleteReserva(ctx, first.ID))
	assert.NoError(t, repo.CreateReserva(ctx, second))
}

func TestReservaConcurrentBooking(t *testing.T) {
	repo := SetupTestDB(t)
	ctx := context.Background()
	_, sindico, _, morador := seedTenant(t, repo)

	// An in-memory SQLite database exists per connection; pin the pool to one
	// so both goroutines hit the same database.
	sqlDB, err := repo.db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	espaco := &models.Espaco{ID: uuid.New(), Nome: "Churrasqueira", IsActive: true, CreatedByID: &sindico.ID}
	require.NoError(t, repo.CreateEspaco(ctx, espaco))

	data := time.Date(2024, 8, 10, 0, 0, 0, 0, time.UTC)

	start := make(chan struct{})
	results := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			results <- repo.CreateReserva(ctx, &models.EspacoReserva{
				ID:          uuid.New(),
				EspacoID:    espaco.ID,
				MoradorID:   morador.ID,
				DataReserva: data,
			})
		}()
	}
	close(start)
	wg.Wait()
	close(results)

	var won, lost int
	for err := range results {
		switch {
		case err == nil:
			won++
		case errors.Is(err, e.ErrSlotTaken):
			lost++
		default:
			t.Fatalf("unexpected error from concurrent booking: %v", err)
		}
	}
	assert.Equal(t, 1, won, "exactly one booking gets the slot")
	assert.Equal(t, 1, lost, "the other sees the slot taken")
}

func TestPaginationClamps(t *testing.T) {
	repo := SetupTestDB(t)
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		unidade := &models.Unidade{ID: uuid.New(), Numero: uuid.NewString(), IsActive: true}
		require.NoError(t, repo.CreateUnidade(ctx, unidade))
	}

	scope := func(db *gorm.DB) *gorm.DB { return db }

	unidades, info, err := repo.ListUnidades(ctx, scope, "", nil, Pagination{Page: 2, PageSize: 10})
	require.NoError(t, err)
	assert.Len(t, unidades, 10)
	assert.Equal(t, int64(25), info.Count)
	assert.Equal(t, 3, info.NumPages)
	assert.Equal(t, 2, info.CurrentPage)
	assert.True(t, info.HasNext)
	assert.True(t, info.HasPrevious)

	// An out-of-range page clamps to the last one instead of coming back empty.
	unidades, info, err = repo.ListUnidades(ctx, scope, "", nil, Pagination{Page: 99, PageSize: 10})
	require.NoError(t, err)
	assert.Len(t, unidades, 5)
	assert.Equal(t, 3, info.CurrentPage)
	assert.False(t, info.HasNext)
}

func TestScopeEncomendasMorador(t *testing.T) {
	repo := SetupTestDB(t)
	ctx := context.Background()
	condominio, sindico, unidade, morador := seedTenant(t, repo)

	outra := &models.Unidade{ID: uuid.New(), Numero: "202", IsActive: true, CreatedByID: &sindico.ID}
	require.NoError(t, repo.CreateUnidade(ctx, outra))

	mine := &models.Encomenda{ID: uuid.New(), UnidadeID: &unidade.ID, DestinatarioNome: "Ana Lima", CreatedByID: &sindico.ID}
	theirs := &models.Encomenda{ID: uuid.New(), UnidadeID: &outra.ID, DestinatarioNome: "Outro Morador", CreatedByID: &sindico.ID}
	require.NoError(t, repo.CreateEncomenda(ctx, mine))
	require.NoError(t, repo.CreateEncomenda(ctx, theirs))

	p := access.Principal{
		UserID:       morador.ID,
		Roles:        []models.Role{models.RoleMorador},
		CondominioID: &condominio.ID,
		UnidadeID:    &unidade.ID,
	}
	encomendas, info, err := repo.ListEncomendas(ctx, p.ScopeEncomendas(), EncomendaFilter{}, Pagination{})
	require.NoError(t, err)
	require.Len(t, encomendas, 1, "residents only see their own unit's deliveries")
	assert.Equal(t, mine.ID, encomendas[0].ID)
	assert.Equal(t, int64(1), info.Count, "the scoped count ignores other units")
}

func TestScopeAvisosHidesAutoNotices(t *testing.T) {
	repo := SetupTestDB(t)
	ctx := context.Background()
	condominio, sindico, unidade, morador := seedTenant(t, repo)

	regular := &models.Aviso{
		ID:          uuid.New(),
		Titulo:      "Manutenção da piscina",
		Grupo:       models.RoleMorador,
		Status:      models.AvisoAtivo,
		DataInicio:  time.Now().Add(-time.Hour),
		CreatedByID: &sindico.ID,
	}
	auto := &models.Aviso{
		ID:          uuid.New(),
		Titulo:      "Nova encomenda - Bl. A - Unid. 101",
		Grupo:       models.RoleMorador,
		Status:      models.AvisoAtivo,
		DataInicio:  time.Now().Add(-time.Hour),
		CreatedByID: &sindico.ID,
	}
	require.NoError(t, repo.CreateAviso(ctx, regular))
	require.NoError(t, repo.CreateAviso(ctx, auto))

	p := access.Principal{
		UserID:       morador.ID,
		Roles:        []models.Role{models.RoleMorador},
		CondominioID: &condominio.ID,
		UnidadeID:    &unidade.ID,
	}

	avisos, _, err := repo.ListAvisos(ctx, p.ScopeAvisos(false), AvisoFilter{}, Pagination{})
	require.NoError(t, err)
	require.Len(t, avisos, 1, "delivery notices are hidden while nothing is pending")
	assert.Equal(t, regular.ID, avisos[0].ID)

	avisos, _, err = repo.ListAvisos(ctx, p.ScopeAvisos(true), AvisoFilter{}, Pagination{})
	require.NoError(t, err)
	assert.Len(t, avisos, 2, "a pending delivery makes the notice visible")
}

func TestCountVisitantesNoCondominio(t *testing.T) {
	repo := SetupTestDB(t)
	ctx := context.Background()
	_, _, _, morador := seedTenant(t, repo)

	inside := &models.Visitante{
		ID:          uuid.New(),
		MoradorID:   morador.ID,
		Nome:        "Pedro Costa",
		Documento:   "12345",
		DataEntrada: time.Now().Add(-time.Hour),
	}
	gone := &models.Visitante{
		ID:          uuid.New(),
		MoradorID:   morador.ID,
		Nome:        "Julia Alves",
		Documento:   "67890",
		DataEntrada: time.Now().Add(-2 * time.Hour),
		DataSaida:   utils.Ptr(time.Now().Add(-time.Hour)),
	}
	require.NoError(t, repo.CreateVisitante(ctx, inside))
	require.NoError(t, repo.CreateVisitante(ctx, gone))

	count, err := repo.CountVisitantesNoCondominio(ctx, func(db *gorm.DB) *gorm.DB { return db })
	require.NoError(t, err)
	assert.Equal(t, int64(1), count, "only visitors without an exit stamp are inside")
}

func TestWithTransaction(t *testing.T) {
	repo := SetupTestDB(t)
	ctx := context.Background()

	err := repo.WithTransaction(ctx, func(txRepo *Repository) error {
		return txRepo.CreateCondominio(ctx, &models.Condominio{
			ID:   uuid.New(),
			Nome: "Residencial Transacional",
			CNPJ: "12.345.678/0001-95",
		})
	})
	assert.NoError(t, err, "WithTransaction should execute successfully")

	exists, err := repo.CondominioExistsByCNPJ(ctx, "12.345.678/0001-95")
	require.NoError(t, err)
	assert.True(t, exists, "the transaction should have been committed")
}
