package store

import (
	"context"
	"time"

	"github.com/filaliempire/crm-server/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/client_repository_mock.go -package=mock

// ClientRepository is the persistence contract for client records.
//
// Update persists a fully merged client value (the service layer owns the
// diff/note logic); the repository is only responsible for storage and for
// translating driver-level conflicts into the tagged sentinel errors
// [ErrEmailAlreadyExists], [ErrPhoneAlreadyExists] and
// [ErrClientAlreadyExists].
type ClientRepository interface {
	// List returns one page of clients matching filter, newest first, plus
	// the total match count.
	List(ctx context.Context, filter models.ClientFilter) (models.ClientList, error)

	// Get returns the client with the given id, or [ErrClientNotFound].
	Get(ctx context.Context, id string) (models.Client, error)

	// Create persists a new client record and returns the stored value with
	// server-assigned timestamps.
	Create(ctx context.Context, client models.Client) (models.Client, error)

	// Update overwrites the mutable fields and the notes sequence of the
	// client identified by client.ID and returns the stored value.
	Update(ctx context.Context, client models.Client) (models.Client, error)

	// Delete removes the client wholesale, cascading note loss.
	// Returns [ErrClientNotFound] when no row matches.
	Delete(ctx context.Context, id string) error

	// Stats aggregates the client base by status; recentSince bounds the
	// "recently added" count.
	Stats(ctx context.Context, recentSince time.Time) (models.ClientStats, error)
}
