// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Filali Empire

// Package adapter provides outbound HTTP clients for the external services
// the CRM collaborates with: the payments aggregation API, the calendar API,
// and the webhook dispatcher that handles event creation and mass email.
//
// Each adapter maps transport-level failures to the sentinel values defined
// in errors.go so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrBadGateway] for 502).
package adapter

import (
	"context"

	"github.com/filaliempire/crm-server/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// PaymentsAdapter fetches transaction data from the payments collaborator.
type PaymentsAdapter interface {
	// GetCatalog retrieves the per-product aggregation of all payment-link
	// transactions, narrowed by the given filters. Zero-valued filters are
	// omitted from the request.
	GetCatalog(ctx context.Context, filters models.CatalogFilters) (models.Catalog, error)
}

// CalendarAdapter fetches events from the calendar collaborator.
type CalendarAdapter interface {
	// GetEvents retrieves events in the query's time range. The collaborator
	// responds with a {"value": [...]} envelope; GetEvents unwraps it.
	GetEvents(ctx context.Context, query models.EventQuery) ([]models.CalendarEvent, error)
}

// DispatcherAdapter posts outbound actions to the webhook dispatcher.
type DispatcherAdapter interface {
	// CreateEvent posts a Graph-style event body to the event webhook and
	// returns the dispatcher's response. A non-2xx status is terminal for
	// the action; the dispatcher offers no idempotency key.
	CreateEvent(ctx context.Context, event models.GraphEvent) (models.CreateEventResponse, error)

	// SendMassEmail posts the whole batch in a single request. The batch
	// succeeds or fails atomically; callers must not auto-retry failures.
	SendMassEmail(ctx context.Context, batch models.MassEmailBatch) error
}
