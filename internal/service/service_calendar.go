// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Filali Empire

package service

import (
	"context"
	"time"

	"github.com/filaliempire/crm-server/internal/adapter"
	"github.com/filaliempire/crm-server/internal/logger"
	"github.com/filaliempire/crm-server/models"
)

// defaultTimeZone is the zone label sent to the calendar collaborator when a
// query does not specify one. The business operates on US Eastern time.
const defaultTimeZone = "Eastern Standard Time"

// upcomingTop caps an upcoming-events query.
const upcomingTop = 50

type calendarService struct {
	calendar   adapter.CalendarAdapter
	dispatcher adapter.DispatcherAdapter

	logger *logger.Logger
}

// NewCalendarService constructs a [CalendarService]. Reads go to the calendar
// collaborator; event creation goes through the dispatcher webhook.
func NewCalendarService(calendar adapter.CalendarAdapter, dispatcher adapter.DispatcherAdapter, logger *logger.Logger) CalendarService {
	return &calendarService{
		calendar:   calendar,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

func (c *calendarService) Events(ctx context.Context, query models.EventQuery) ([]models.CalendarEvent, error) {
	if query.TimeZone == "" {
		query.TimeZone = defaultTimeZone
	}
	return c.calendar.GetEvents(ctx, query)
}

func (c *calendarService) UpcomingEvents(ctx context.Context, days int) ([]models.CalendarEvent, error) {
	if days <= 0 {
		days = 7
	}

	now := time.Now().UTC()
	return c.Events(ctx, models.EventQuery{
		Start: now.Format(time.RFC3339),
		End:   now.AddDate(0, 0, days).Format(time.RFC3339),
		Top:   upcomingTop,
	})
}

func (c *calendarService) TodaysEvents(ctx context.Context) ([]models.CalendarEvent, error) {
	now := time.Now().UTC()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	return c.Events(ctx, models.EventQuery{
		Start: start.Format(time.RFC3339),
		End:   start.AddDate(0, 0, 1).Format(time.RFC3339),
	})
}
