package service

import (
	"context"

	"github.com/filaliempire/crm-server/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// ClientService manages the client roster and its append-only note journal.
type ClientService interface {
	List(ctx context.Context, filter models.ClientFilter) (models.ClientList, error)
	Search(ctx context.Context, query string) ([]models.Client, error)
	Get(ctx context.Context, id string) (models.Client, error)

	// Create persists a new client and seeds its journal with one activity
	// note ("Client profile created").
	Create(ctx context.Context, data models.CreateClientData) (models.Client, error)

	// Update applies a partial update. When any tracked field actually
	// changes, exactly one system activity note recording the field-level
	// diff is appended; a no-op update appends nothing.
	Update(ctx context.Context, id string, update models.ClientUpdate) (models.Client, error)

	Delete(ctx context.Context, id string) error

	// AddNote appends one manual note authored by the given user.
	AddNote(ctx context.Context, clientID, body, author string) (models.Client, error)

	// LogContact appends one activity note describing a contact action
	// (call, text, facetime, email) with the action's templated body.
	LogContact(ctx context.Context, clientID, kind string, meta models.ContactMeta) (models.Client, error)

	Stats(ctx context.Context) (models.ClientStats, error)
}

// DossierService assembles the full client detail view.
type DossierService interface {
	// LoadDossier fetches the client's transactions and calendar events
	// concurrently (keyed by the client's email) and merges them with the
	// note journal into a single timeline. A failed collaborator fetch
	// degrades that source to an empty slice; it never fails the dossier.
	LoadDossier(ctx context.Context, clientID string) (models.Dossier, error)
}

// PaymentsService exposes the payment collaborator's catalog and the
// aggregations derived from it.
type PaymentsService interface {
	Catalog(ctx context.Context, filters models.CatalogFilters) (models.Catalog, error)
	Summary(ctx context.Context, filters models.CatalogFilters) (models.PaymentsSummary, error)
	RevenueByPeriod(ctx context.Context, period string, filters models.CatalogFilters) (models.RevenueReport, error)
	TransactionsByEmail(ctx context.Context, email string) ([]models.Transaction, error)
}

// CalendarService exposes the calendar collaborator's events and creates new
// events through the dispatcher webhook.
type CalendarService interface {
	Events(ctx context.Context, query models.EventQuery) ([]models.CalendarEvent, error)
	UpcomingEvents(ctx context.Context, days int) ([]models.CalendarEvent, error)
	TodaysEvents(ctx context.Context) ([]models.CalendarEvent, error)

	// CreateEvent validates the request, shapes it into the dispatcher's
	// Graph-style body and posts it. Dispatch failure is terminal for the
	// action.
	CreateEvent(ctx context.Context, req models.CreateEventRequest) (models.CreateEventResponse, error)
}

// EmailService renders and dispatches mass email.
type EmailService interface {
	// SendMassEmail renders the branded template for every selected client
	// that has an email address and posts the whole batch in one dispatch
	// request. Clients without an email are skipped and reported, not
	// failed. The batch succeeds or fails atomically; it is never retried.
	SendMassEmail(ctx context.Context, req models.MassEmailRequest) (models.MassEmailResult, error)
}
