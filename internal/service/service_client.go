// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Filali Empire

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/filaliempire/crm-server/internal/config"
	"github.com/filaliempire/crm-server/internal/logger"
	"github.com/filaliempire/crm-server/internal/store"
	"github.com/filaliempire/crm-server/models"
)

// searchLimit caps the quick-search result set.
const searchLimit = 10

// IDGenerator produces identifiers for clients and notes.
type IDGenerator interface {
	Generate() string
}

type clientService struct {
	repo store.ClientRepository
	ids  IDGenerator

	recentWindow time.Duration
	logger       *logger.Logger
}

// NewClientService constructs a [ClientService] on top of the client
// repository.
func NewClientService(repo store.ClientRepository, ids IDGenerator, cfg config.App, logger *logger.Logger) ClientService {
	recentWindow := cfg.RecentWindow
	if recentWindow <= 0 {
		recentWindow = 7 * 24 * time.Hour
	}

	return &clientService{
		repo:         repo,
		ids:          ids,
		recentWindow: recentWindow,
		logger:       logger,
	}
}

func (c *clientService) List(ctx context.Context, filter models.ClientFilter) (models.ClientList, error) {
	return c.repo.List(ctx, filter)
}

func (c *clientService) Search(ctx context.Context, query string) ([]models.Client, error) {
	list, err := c.repo.List(ctx, models.ClientFilter{Search: query, Limit: searchLimit})
	if err != nil {
		return nil, err
	}
	return list.Items, nil
}

func (c *clientService) Get(ctx context.Context, id string) (models.Client, error) {
	return c.repo.Get(ctx, id)
}

func (c *clientService) Create(ctx context.Context, data models.CreateClientData) (models.Client, error) {
	if data.FullName == "" {
		return models.Client{}, ErrValidationNoFullName
	}

	status := data.Status
	if status == "" {
		status = models.StatusLead
	}
	if !models.ValidStatus(status) {
		return models.Client{}, fmt.Errorf("%w: %q", ErrValidationBadStatus, status)
	}

	tags := data.Tags
	if tags == nil {
		tags = models.Tags{}
	}
	custom := data.Custom
	if custom == nil {
		custom = models.CustomFields{}
	}

	client := models.Client{
		ID:       c.ids.Generate(),
		FullName: data.FullName,
		Email:    data.Email,
		Phone:    data.Phone,
		Company:  data.Company,
		Status:   status,
		Tags:     tags,
		Custom:   custom,
		Notes: models.Notes{{
			ID:        c.ids.Generate(),
			Body:      "Client profile created",
			Type:      models.NoteTypeActivity,
			Author:    models.SystemAuthor,
			CreatedAt: time.Now().UTC(),
		}},
	}

	return c.repo.Create(ctx, client)
}

func (c *clientService) Update(ctx context.Context, id string, update models.ClientUpdate) (models.Client, error) {
	log := logger.FromContext(ctx)

	if update.Status != nil && *update.Status != "" && !models.ValidStatus(*update.Status) {
		return models.Client{}, fmt.Errorf("%w: %q", ErrValidationBadStatus, *update.Status)
	}

	current, err := c.repo.Get(ctx, id)
	if err != nil {
		return models.Client{}, err
	}

	changes := ComputeDiff(current, update)
	merged := mergeUpdate(current, update)

	// An update that changes nothing trackable must not pollute the journal
	// with an empty activity note.
	if len(changes) > 0 {
		merged.Notes = append(merged.Notes, models.Note{
			ID:        c.ids.Generate(),
			Body:      "Client information updated",
			Type:      models.NoteTypeActivity,
			Author:    models.SystemAuthor,
			CreatedAt: time.Now().UTC(),
			Changes:   changes,
		})
		log.Debug().Str("client_id", id).Int("changes", len(changes)).Msg("recording update diff note")
	}

	return c.repo.Update(ctx, merged)
}

func (c *clientService) Delete(ctx context.Context, id string) error {
	return c.repo.Delete(ctx, id)
}

func (c *clientService) AddNote(ctx context.Context, clientID, body, author string) (models.Client, error) {
	if body == "" {
		return models.Client{}, ErrValidationEmptyNote
	}
	if author == "" {
		author = models.SystemAuthor
	}

	return c.appendNote(ctx, clientID, models.Note{
		ID:        c.ids.Generate(),
		Body:      body,
		Type:      models.NoteTypeManual,
		Author:    author,
		CreatedAt: time.Now().UTC(),
	})
}

func (c *clientService) LogContact(ctx context.Context, clientID, kind string, meta models.ContactMeta) (models.Client, error) {
	var body string
	switch kind {
	case models.ContactCall:
		body = fmt.Sprintf("Phone call initiated to %s", meta.Phone)
	case models.ContactText:
		body = fmt.Sprintf("SMS sent to %s: %q", meta.Phone, meta.Body)
	case models.ContactFaceTime:
		body = fmt.Sprintf("FaceTime call initiated to %s", meta.Phone)
	case models.ContactEmail:
		body = fmt.Sprintf("Email sent to %s", meta.Email)
	default:
		return models.Client{}, fmt.Errorf("%w: %q", ErrUnknownContactKind, kind)
	}

	return c.appendNote(ctx, clientID, models.Note{
		ID:        c.ids.Generate(),
		Body:      body,
		Type:      models.NoteTypeActivity,
		Author:    models.SystemAuthor,
		CreatedAt: time.Now().UTC(),
	})
}

func (c *clientService) Stats(ctx context.Context) (models.ClientStats, error) {
	return c.repo.Stats(ctx, time.Now().UTC().Add(-c.recentWindow))
}

func (c *clientService) appendNote(ctx context.Context, clientID string, note models.Note) (models.Client, error) {
	client, err := c.repo.Get(ctx, clientID)
	if err != nil {
		return models.Client{}, err
	}

	client.Notes = append(client.Notes, note)
	return c.repo.Update(ctx, client)
}

// mergeUpdate overlays the provided fields of an update onto the current
// record. Nil fields are left untouched; a provided empty string clears the
// field.
func mergeUpdate(current models.Client, update models.ClientUpdate) models.Client {
	merged := current

	if update.FullName != nil && *update.FullName != "" {
		merged.FullName = *update.FullName
	}
	if update.Email != nil {
		merged.Email = *update.Email
	}
	if update.Phone != nil {
		merged.Phone = *update.Phone
	}
	if update.Company != nil {
		merged.Company = *update.Company
	}
	if update.Status != nil && *update.Status != "" {
		merged.Status = *update.Status
	}
	if update.Tags != nil {
		merged.Tags = *update.Tags
	}
	if update.Custom != nil {
		merged.Custom = *update.Custom
	}

	return merged
}
