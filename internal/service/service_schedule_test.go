// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Filali Empire

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filaliempire/crm-server/internal/logger"
	"github.com/filaliempire/crm-server/models"
)

// ─────────────────────────────────────────────
// Mocks: adapter.CalendarAdapter / adapter.DispatcherAdapter
// ─────────────────────────────────────────────

type mockCalendarAdapter struct {
	getEventsFn func(ctx context.Context, query models.EventQuery) ([]models.CalendarEvent, error)
}

func (m *mockCalendarAdapter) GetEvents(ctx context.Context, query models.EventQuery) ([]models.CalendarEvent, error) {
	if m.getEventsFn != nil {
		return m.getEventsFn(ctx, query)
	}
	return nil, nil
}

type mockDispatcherAdapter struct {
	createEventFn   func(ctx context.Context, event models.GraphEvent) (models.CreateEventResponse, error)
	sendMassEmailFn func(ctx context.Context, batch models.MassEmailBatch) error
}

func (m *mockDispatcherAdapter) CreateEvent(ctx context.Context, event models.GraphEvent) (models.CreateEventResponse, error) {
	if m.createEventFn != nil {
		return m.createEventFn(ctx, event)
	}
	return models.CreateEventResponse{Success: true}, nil
}

func (m *mockDispatcherAdapter) SendMassEmail(ctx context.Context, batch models.MassEmailBatch) error {
	if m.sendMassEmailFn != nil {
		return m.sendMassEmailFn(ctx, batch)
	}
	return nil
}

func validEventRequest() models.CreateEventRequest {
	return models.CreateEventRequest{
		Subject: "Strategy call",
		Start:   models.DateTimeZone{DateTime: "2026-09-01T10:00:00", TimeZone: "Eastern Standard Time"},
		End:     models.DateTimeZone{DateTime: "2026-09-01T11:00:00", TimeZone: "Eastern Standard Time"},
	}
}

// ─────────────────────────────────────────────
// Event queries
// ─────────────────────────────────────────────

func TestEvents_DefaultsTimeZone(t *testing.T) {
	var gotQuery models.EventQuery
	calendar := &mockCalendarAdapter{
		getEventsFn: func(_ context.Context, query models.EventQuery) ([]models.CalendarEvent, error) {
			gotQuery = query
			return nil, nil
		},
	}
	svc := NewCalendarService(calendar, &mockDispatcherAdapter{}, logger.Nop())

	_, err := svc.Events(context.Background(), models.EventQuery{Start: "2026-08-01T00:00:00Z"})

	require.NoError(t, err)
	assert.Equal(t, defaultTimeZone, gotQuery.TimeZone)
}

func TestUpcomingEvents_Window(t *testing.T) {
	var gotQuery models.EventQuery
	calendar := &mockCalendarAdapter{
		getEventsFn: func(_ context.Context, query models.EventQuery) ([]models.CalendarEvent, error) {
			gotQuery = query
			return nil, nil
		},
	}
	svc := NewCalendarService(calendar, &mockDispatcherAdapter{}, logger.Nop())

	_, err := svc.UpcomingEvents(context.Background(), 14)

	require.NoError(t, err)
	assert.NotEmpty(t, gotQuery.Start)
	assert.NotEmpty(t, gotQuery.End)
	assert.Equal(t, upcomingTop, gotQuery.Top)
}

// ─────────────────────────────────────────────
// CreateEvent validation
// ─────────────────────────────────────────────

func TestCreateEvent_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.CreateEventRequest)
		wantErr error
	}{
		{"missing subject", func(r *models.CreateEventRequest) { r.Subject = "  " }, ErrValidationNoSubject},
		{"missing start", func(r *models.CreateEventRequest) { r.Start.DateTime = "" }, ErrValidationNoStart},
		{"missing end", func(r *models.CreateEventRequest) { r.End.DateTime = "" }, ErrValidationNoEnd},
		{"end equals start", func(r *models.CreateEventRequest) { r.End = r.Start }, ErrValidationEndNotAfter},
		{"end before start", func(r *models.CreateEventRequest) {
			r.End.DateTime = "2026-09-01T09:00:00"
		}, ErrValidationEndNotAfter},
		{"bad attendee", func(r *models.CreateEventRequest) {
			r.Attendees = []string{"not-an-email"}
		}, ErrValidationBadAttendee},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dispatcher := &mockDispatcherAdapter{
				createEventFn: func(_ context.Context, _ models.GraphEvent) (models.CreateEventResponse, error) {
					t.Fatal("dispatch must not run on validation failure")
					return models.CreateEventResponse{}, nil
				},
			}
			svc := NewCalendarService(&mockCalendarAdapter{}, dispatcher, logger.Nop())

			req := validEventRequest()
			tt.mutate(&req)
			_, err := svc.CreateEvent(context.Background(), req)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateEvent_BuildsGraphBody(t *testing.T) {
	var gotEvent models.GraphEvent
	dispatcher := &mockDispatcherAdapter{
		createEventFn: func(_ context.Context, event models.GraphEvent) (models.CreateEventResponse, error) {
			gotEvent = event
			return models.CreateEventResponse{Success: true, EventID: "evt-1"}, nil
		},
	}
	svc := NewCalendarService(&mockCalendarAdapter{}, dispatcher, logger.Nop())

	req := validEventRequest()
	req.Description = "Quarterly goals review"
	req.Location = "Zoom"
	req.Attendees = []string{" john.smith@example.com "}

	resp, err := svc.CreateEvent(context.Background(), req)

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "evt-1", resp.EventID)

	assert.Equal(t, "Strategy call", gotEvent.Subject)
	require.NotNil(t, gotEvent.Body)
	assert.Equal(t, "HTML", gotEvent.Body.ContentType)
	assert.Equal(t, "Quarterly goals review", gotEvent.Body.Content)
	require.NotNil(t, gotEvent.Location)
	assert.Equal(t, "Zoom", gotEvent.Location.DisplayName)

	require.Len(t, gotEvent.Attendees, 1)
	assert.Equal(t, "john.smith@example.com", gotEvent.Attendees[0].EmailAddress.Address)
	// Display name defaults to the address's local part.
	assert.Equal(t, "john.smith", gotEvent.Attendees[0].EmailAddress.Name)
	assert.Equal(t, "required", gotEvent.Attendees[0].Type)

	assert.True(t, gotEvent.AllowNewTimeProposals)
	assert.True(t, gotEvent.IsOnlineMeeting)
	assert.Equal(t, "teamsForBusiness", gotEvent.OnlineMeetingProvider)
}

func TestCreateEvent_OmitsOptionalSections(t *testing.T) {
	var gotEvent models.GraphEvent
	dispatcher := &mockDispatcherAdapter{
		createEventFn: func(_ context.Context, event models.GraphEvent) (models.CreateEventResponse, error) {
			gotEvent = event
			return models.CreateEventResponse{Success: true}, nil
		},
	}
	svc := NewCalendarService(&mockCalendarAdapter{}, dispatcher, logger.Nop())

	_, err := svc.CreateEvent(context.Background(), validEventRequest())

	require.NoError(t, err)
	assert.Nil(t, gotEvent.Body)
	assert.Nil(t, gotEvent.Location)
	assert.Empty(t, gotEvent.Attendees)
}

func TestCreateEvent_DispatchFailureIsTerminal(t *testing.T) {
	wantErr := errors.New("webhook down")
	dispatcher := &mockDispatcherAdapter{
		createEventFn: func(_ context.Context, _ models.GraphEvent) (models.CreateEventResponse, error) {
			return models.CreateEventResponse{}, wantErr
		},
	}
	svc := NewCalendarService(&mockCalendarAdapter{}, dispatcher, logger.Nop())

	_, err := svc.CreateEvent(context.Background(), validEventRequest())

	assert.ErrorIs(t, err, wantErr)
}
