// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Filali Empire

package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/filaliempire/crm-server/internal/logger"
	"github.com/filaliempire/crm-server/internal/store"
	"github.com/filaliempire/crm-server/models"
)

// dossierRange is how far the dossier looks around now for calendar events:
// one year back, one year forward.
const dossierRange = 365 * 24 * time.Hour

type dossierService struct {
	repo     store.ClientRepository
	payments PaymentsService
	calendar CalendarService

	logger *logger.Logger
}

// NewDossierService constructs a [DossierService] that joins the client
// record with the payment and calendar collaborators.
func NewDossierService(repo store.ClientRepository, payments PaymentsService, calendar CalendarService, logger *logger.Logger) DossierService {
	return &dossierService{
		repo:     repo,
		payments: payments,
		calendar: calendar,
		logger:   logger,
	}
}

// LoadDossier implements [DossierService]. The client's email is the only
// identity bridge to the collaborators: without one, both fetches are skipped
// and the timeline is built from notes alone. With one, transactions and
// events are fetched concurrently; a failure in either fetch degrades that
// source to an empty slice and is logged, never propagated. The merge runs
// only once both results (or their substitutes) are in hand.
func (d *dossierService) LoadDossier(ctx context.Context, clientID string) (models.Dossier, error) {
	log := logger.FromContext(ctx)

	client, err := d.repo.Get(ctx, clientID)
	if err != nil {
		return models.Dossier{}, err
	}

	var (
		transactions []models.Transaction
		events       []models.CalendarEvent
	)

	if client.Email != "" {
		var wg sync.WaitGroup
		wg.Add(2)

		go func() {
			defer wg.Done()
			txns, err := d.payments.TransactionsByEmail(ctx, client.Email)
			if err != nil {
				log.Warn().Err(err).Str("client_id", clientID).Msg("dossier: transaction fetch failed, degrading to empty")
				return
			}
			transactions = txns
		}()

		go func() {
			defer wg.Done()
			fetched, err := d.fetchClientEvents(ctx, client.Email)
			if err != nil {
				log.Warn().Err(err).Str("client_id", clientID).Msg("dossier: event fetch failed, degrading to empty")
				return
			}
			events = fetched
		}()

		wg.Wait()
	}

	if transactions == nil {
		transactions = []models.Transaction{}
	}
	if events == nil {
		events = []models.CalendarEvent{}
	}

	return models.Dossier{
		Client:       client,
		Transactions: transactions,
		Events:       events,
		Timeline:     BuildTimeline(client.Notes, transactions, events),
	}, nil
}

// fetchClientEvents pulls the dossier window of events and keeps only those
// the client organized. The collaborator's own filtering over-returns, so the
// organizer match happens here, on the normalized address. Events where the
// client was merely an attendee are dropped.
func (d *dossierService) fetchClientEvents(ctx context.Context, email string) ([]models.CalendarEvent, error) {
	now := time.Now().UTC()
	all, err := d.calendar.Events(ctx, models.EventQuery{
		Start: now.Add(-dossierRange).Format(time.RFC3339),
		End:   now.Add(dossierRange).Format(time.RFC3339),
	})
	if err != nil {
		return nil, err
	}

	want := normalizeEmail(email)
	matched := make([]models.CalendarEvent, 0, len(all))
	for _, event := range all {
		if normalizeEmail(event.Organizer.EmailAddress.Address) == want {
			matched = append(matched, event)
		}
	}

	return matched, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
