package store

import (
	"context"
	"fmt"

	"github.com/filaliempire/crm-server/internal/config"
	"github.com/filaliempire/crm-server/internal/logger"
	"github.com/filaliempire/crm-server/migrations"
)

// Storages bundles every repository backed by the CRM database.
type Storages struct {
	ClientRepository ClientRepository
}

// NewStorages connects to PostgreSQL, applies pending schema migrations, and
// wires up the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := migrations.Migrate(db.DB); err != nil {
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &Storages{
		ClientRepository: NewClientRepository(db, log),
	}, nil
}
