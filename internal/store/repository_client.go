// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Filali Empire

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/filaliempire/crm-server/internal/logger"
	"github.com/filaliempire/crm-server/models"
)

// clientRepository is the PostgreSQL-backed implementation of
// [ClientRepository]. It persists clients (with their embedded notes, tags
// and custom fields as JSONB columns) in the "clients" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type clientRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewClientRepository constructs a [ClientRepository] backed by the provided
// database connection and logger.
func NewClientRepository(db *DB, logger *logger.Logger) ClientRepository {
	logger.Debug().Msg("creating client repository")
	return &clientRepository{
		db:     db,
		logger: logger,
	}
}

// List implements [ClientRepository]. The page query and the count query use
// the same filter, so totals stay consistent with the returned items.
func (r *clientRepository) List(ctx context.Context, filter models.ClientFilter) (models.ClientList, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*clientRepository.List").Msg("error: building list query")
		return models.ClientList{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*clientRepository.List").Msg("error: executing list query")
		return models.ClientList{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	list := models.ClientList{Items: make([]models.Client, 0)}
	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			log.Err(err).Str("func", "*clientRepository.List").Msg("error: scanning client rows")
			return models.ClientList{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		list.Items = append(list.Items, client)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*clientRepository.List").Msg("error: iterating client rows")
		return models.ClientList{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	countQuery, countArgs, err := buildCountQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "*clientRepository.List").Msg("error: building count query")
		return models.ClientList{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&list.Total); err != nil {
		log.Err(err).Str("func", "*clientRepository.List").Msg("error: scanning count")
		return models.ClientList{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return list, nil
}

// Get implements [ClientRepository].
func (r *clientRepository) Get(ctx context.Context, id string) (models.Client, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetQuery(id)
	if err != nil {
		log.Err(err).Str("func", "*clientRepository.Get").Msg("error: building get query")
		return models.Client{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	client, err := scanClient(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Client{}, ErrClientNotFound
		}
		log.Err(err).Str("func", "*clientRepository.Get").Msg("error: scanning client row")
		return models.Client{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return client, nil
}

// Create implements [ClientRepository].
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists],
//     [ErrPhoneAlreadyExists] or [ErrClientAlreadyExists] by constraint name.
//   - Any other driver-level error → wrapped as [ErrExecutingStatement].
func (r *clientRepository) Create(ctx context.Context, client models.Client) (models.Client, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertQuery(client)
	if err != nil {
		log.Err(err).Str("func", "*clientRepository.Create").Msg("error: building insert query")
		return models.Client{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&client.CreatedAt, &client.UpdatedAt); err != nil {
		if conflictErr := classifyConflict(err); conflictErr != nil {
			return models.Client{}, conflictErr
		}
		log.Err(err).Str("func", "*clientRepository.Create").Msg("error: inserting client")
		return models.Client{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return client, nil
}

// Update implements [ClientRepository]. It overwrites every mutable column
// with the merged value supplied by the service layer; the notes sequence is
// replaced wholesale (notes are append-only upstream of this call).
//
// Conflicts are mapped to the same tagged sentinels as Create.
func (r *clientRepository) Update(ctx context.Context, client models.Client) (models.Client, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateQuery(client)
	if err != nil {
		log.Err(err).Str("func", "*clientRepository.Update").Msg("error: building update query")
		return models.Client{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&client.CreatedAt, &client.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Client{}, ErrClientNotFound
		}
		if conflictErr := classifyConflict(err); conflictErr != nil {
			return models.Client{}, conflictErr
		}
		log.Err(err).Str("func", "*clientRepository.Update").Msg("error: updating client")
		return models.Client{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return client, nil
}

// Delete implements [ClientRepository]. The client record is removed
// wholesale; its notes live in the same row, so they go with it.
func (r *clientRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteQuery(id)
	if err != nil {
		log.Err(err).Str("func", "*clientRepository.Delete").Msg("error: building delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*clientRepository.Delete").Msg("error: deleting client")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrClientNotFound
	}

	return nil
}

// Stats implements [ClientRepository].
func (r *clientRepository) Stats(ctx context.Context, recentSince time.Time) (models.ClientStats, error) {
	log := logger.FromContext(ctx)

	var stats models.ClientStats
	row := r.db.QueryRowContext(ctx, statsQuery, recentSince)
	if err := row.Scan(
		&stats.Total,
		&stats.Leads,
		&stats.Active,
		&stats.Inactive,
		&stats.Lost,
		&stats.RecentlyAdded,
	); err != nil {
		log.Err(err).Str("func", "*clientRepository.Stats").Msg("error: scanning stats row")
		return models.ClientStats{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return stats, nil
}

// rowScanner is the subset of *sql.Row / *sql.Rows needed by scanClient.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanClient(row rowScanner) (models.Client, error) {
	var client models.Client
	err := row.Scan(
		&client.ID,
		&client.FullName,
		&client.Email,
		&client.Phone,
		&client.Company,
		&client.Status,
		&client.Tags,
		&client.Custom,
		&client.Notes,
		&client.CreatedAt,
		&client.UpdatedAt,
	)
	return client, err
}
