// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Filali Empire

package store

import (
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// postgresError returns the PostgreSQL error code carried by err, or "" when
// err is not a pgx driver error.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// classifyConflict maps a unique_violation (23505) to the field-specific
// sentinel error that the API surfaces to the user: the violated constraint's
// name tells which column conflicted.
//
// Matching on the constraint name rather than the full error message keeps
// the substring dependency confined to identifiers this repo owns (the index
// names created in the migrations). Unique violations on unrecognised
// constraints fall back to [ErrClientAlreadyExists]; any other error returns
// nil so the caller can handle it generically.
func classifyConflict(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.UniqueViolation {
		return nil
	}

	switch {
	case strings.Contains(pgErr.ConstraintName, "email"):
		return ErrEmailAlreadyExists
	case strings.Contains(pgErr.ConstraintName, "phone"):
		return ErrPhoneAlreadyExists
	default:
		return ErrClientAlreadyExists
	}
}
