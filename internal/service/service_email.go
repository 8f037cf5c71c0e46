// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Filali Empire

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/filaliempire/crm-server/internal/adapter"
	"github.com/filaliempire/crm-server/internal/logger"
	"github.com/filaliempire/crm-server/models"
)

type emailService struct {
	clients    ClientService
	dispatcher adapter.DispatcherAdapter

	logger *logger.Logger
}

// NewEmailService constructs an [EmailService] over the client roster and the
// dispatcher webhook.
func NewEmailService(clients ClientService, dispatcher adapter.DispatcherAdapter, logger *logger.Logger) EmailService {
	return &emailService{
		clients:    clients,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// SendMassEmail implements [EmailService]. The entire batch goes out in one
// dispatch request; it succeeds or fails atomically, and the dispatcher
// offers no idempotency key, so a failed batch is never auto-retried.
// Recipients without an email address are skipped and reported in the result.
// A successful dispatch is journaled on every recipient as a logged email
// contact.
func (e *emailService) SendMassEmail(ctx context.Context, req models.MassEmailRequest) (models.MassEmailResult, error) {
	log := logger.FromContext(ctx)

	if len(req.ClientIDs) == 0 {
		return models.MassEmailResult{}, ErrValidationNoRecipients
	}

	batch := models.MassEmailBatch{Emails: make([]models.EmailItem, 0, len(req.ClientIDs))}
	recipients := make([]models.Client, 0, len(req.ClientIDs))
	var skipped []string

	renderedVars := req.TemplateVars
	renderedVars.EmailBody = textToHTML(req.TemplateVars.EmailBody)

	for _, id := range req.ClientIDs {
		client, err := e.clients.Get(ctx, id)
		if err != nil {
			return models.MassEmailResult{}, fmt.Errorf("load recipient %s: %w", id, err)
		}
		if client.Email == "" {
			skipped = append(skipped, client.ID)
			continue
		}

		body := strings.ReplaceAll(renderEmailHTML(req.TemplateVars), "{name}", client.FullName)
		batch.Emails = append(batch.Emails, models.EmailItem{
			TemplateVars: renderedVars,
			Client: models.EmailClientRef{
				ID:      client.ID,
				Name:    client.FullName,
				Email:   client.Email,
				Company: client.Company,
			},
			Body: body,
		})
		recipients = append(recipients, client)
	}

	if len(batch.Emails) == 0 {
		return models.MassEmailResult{Skipped: skipped}, ErrNoRecipientsWithEmail
	}

	if err := e.dispatcher.SendMassEmail(ctx, batch); err != nil {
		return models.MassEmailResult{Skipped: skipped}, fmt.Errorf("%w: %w", ErrMassEmailDispatchFailed, err)
	}

	// Journal the send on each recipient. A journaling failure does not undo
	// the dispatch; it is logged and the send still counts.
	for _, client := range recipients {
		if _, err := e.clients.LogContact(ctx, client.ID, models.ContactEmail, models.ContactMeta{Email: client.Email}); err != nil {
			log.Warn().Err(err).Str("client_id", client.ID).Msg("mass email sent but contact journaling failed")
		}
	}

	return models.MassEmailResult{Sent: len(batch.Emails), Skipped: skipped}, nil
}
