// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Filali Empire

package service

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/filaliempire/crm-server/internal/logger"
	"github.com/filaliempire/crm-server/models"
)

// CreateEvent implements the write half of [CalendarService]. The request is
// validated locally before any network call; a dispatch failure is terminal
// for the action and surfaced to the caller.
func (c *calendarService) CreateEvent(ctx context.Context, req models.CreateEventRequest) (models.CreateEventResponse, error) {
	log := logger.FromContext(ctx)

	if err := validateEventRequest(req); err != nil {
		return models.CreateEventResponse{}, err
	}

	resp, err := c.dispatcher.CreateEvent(ctx, buildGraphEvent(req))
	if err != nil {
		log.Error().Err(err).Str("subject", req.Subject).Msg("event dispatch failed")
		return models.CreateEventResponse{}, err
	}

	return resp, nil
}

func validateEventRequest(req models.CreateEventRequest) error {
	if strings.TrimSpace(req.Subject) == "" {
		return ErrValidationNoSubject
	}
	if req.Start.DateTime == "" {
		return ErrValidationNoStart
	}
	if req.End.DateTime == "" {
		return ErrValidationNoEnd
	}

	start, errStart := parseWallClock(req.Start.DateTime)
	end, errEnd := parseWallClock(req.End.DateTime)
	if errStart == nil && errEnd == nil && !end.After(start) {
		return ErrValidationEndNotAfter
	}

	for _, attendee := range req.Attendees {
		if _, err := mail.ParseAddress(strings.TrimSpace(attendee)); err != nil {
			return fmt.Errorf("%w: %q", ErrValidationBadAttendee, attendee)
		}
	}

	return nil
}

// buildGraphEvent shapes the user-entered fields into the dispatcher's
// Graph-style body. Attendee display names default to the address's local
// part; new-time proposals and online meetings are always enabled, with Teams
// as the provider.
func buildGraphEvent(req models.CreateEventRequest) models.GraphEvent {
	event := models.GraphEvent{
		Subject:               req.Subject,
		Start:                 req.Start,
		End:                   req.End,
		IsAllDay:              req.IsAllDay,
		AllowNewTimeProposals: true,
		IsOnlineMeeting:       true,
		OnlineMeetingProvider: "teamsForBusiness",
	}

	if req.Description != "" {
		event.Body = &models.EventBody{ContentType: "HTML", Content: req.Description}
	}
	if req.Location != "" {
		event.Location = &models.Location{DisplayName: req.Location}
	}

	for _, attendee := range req.Attendees {
		address := strings.TrimSpace(attendee)
		name, _, found := strings.Cut(address, "@")
		if !found {
			name = address
		}
		event.Attendees = append(event.Attendees, models.Attendee{
			EmailAddress: models.EmailAddress{Name: name, Address: address},
			Type:         "required",
		})
	}

	return event
}

// parseWallClock parses the collaborator's offset-less datetime; RFC3339
// values are accepted too.
func parseWallClock(value string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02T15:04"} {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparsable datetime %q", value)
}
