// Package db implements the persistence layer on top of GORM. Repository
// methods map driver errors to the sentinel taxonomy (gorm.ErrRecordNotFound
// to ErrNotFound, duplicated keys to ErrDuplicate or, for reservations,
// ErrSlotTaken) so callers never see gorm errors.
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/yurivfernandes1/condoflow-backend/internal/condo/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// NewRepository connects to Postgres, retrying with exponential backoff while
// the database comes up, and runs the schema migration.
func NewRepository(cfg *Config) (*Repository, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode)

	var db *gorm.DB
	connect := func() error {
		var err error
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
		return err
	}

	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = 30 * time.Second
	if err := backoff.Retry(connect, policy); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Repository{db: db}, nil
}

// Migrate creates or updates the schema for every registry entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Condominio{},
		&models.Unidade{},
		&models.Veiculo{},
		&models.Visitante{},
		&models.Encomenda{},
		&models.Espaco{},
		&models.EspacoInventarioItem{},
		&models.EspacoReserva{},
		&models.Aviso{},
		&models.Evento{},
	)
}

// WithTransaction runs fn inside a single transaction; the callback receives
// a Repository bound to the transaction handle.
func (r *Repository) WithTransaction(ctx context.Context, fn func(repo *Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Repository{db: tx})
	})
}

func (r *Repository) Close() error {
	db, err := r.db.DB()
	if err != nil {
		return err
	}
	return db.Close()
}
