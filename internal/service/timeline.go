// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Filali Empire

package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/filaliempire/crm-server/models"
)

// BuildTimeline merges a client's note journal, transactions and calendar
// events into a single activity feed sorted newest first. The merge is pure
// and idempotent; it is recomputed from scratch on every dossier load and
// never cached.
//
// Every source's native timestamp representation (note time.Time, transaction
// epoch seconds, event ISO wall-clock datetime) is normalized to epoch
// milliseconds here, at the merge boundary. Equal timestamps keep both items;
// their relative order within the tie is not specified.
func BuildTimeline(notes []models.Note, transactions []models.Transaction, events []models.CalendarEvent) []models.ActivityItem {
	items := make([]models.ActivityItem, 0, len(notes)+len(transactions)+len(events))

	for _, note := range notes {
		item := models.ActivityItem{
			ID:          note.ID,
			Type:        models.ActivityNote,
			Timestamp:   note.CreatedAt.UnixMilli(),
			Title:       "Note Added",
			Description: note.Body,
			Author:      note.Author,
		}
		if note.Type == models.NoteTypeActivity {
			item.Type = models.ActivitySystem
			item.Title = "System Activity"
		}
		if len(note.Changes) > 0 {
			item.Metadata = note.Changes
		}
		items = append(items, item)
	}

	for _, txn := range transactions {
		description := txn.Description
		if description == "" {
			description = fmt.Sprintf("Payment for product %s", txn.ProductID)
		}
		items = append(items, models.ActivityItem{
			ID:          txn.SessionID,
			Type:        models.ActivityTransaction,
			Timestamp:   txn.CreatedUnix * 1000,
			Title:       "Payment Received",
			Description: description,
			Amount:      txn.AmountTotal,
			Currency:    txn.Currency,
			Metadata:    txn,
		})
	}

	for _, event := range events {
		description := event.BodyPreview
		if description == "" {
			description = "Calendar event"
		}
		item := models.ActivityItem{
			ID:          event.ID,
			Type:        models.ActivityEvent,
			Timestamp:   parseEventTime(event.Start),
			Title:       event.Subject,
			Description: description,
			Metadata:    event,
		}
		if event.Location != nil {
			item.Location = event.Location.DisplayName
		}
		items = append(items, item)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Timestamp > items[j].Timestamp
	})

	return items
}

// parseEventTime converts the collaborator's wall-clock datetime to epoch
// millis. The datetime arrives without an offset; it is interpreted in UTC,
// which matches how the collaborator reports when queried with tz=UTC.
// An unparsable datetime yields 0 so the item sinks to the end of the feed
// instead of being dropped.
func parseEventTime(dtz models.DateTimeZone) int64 {
	layouts := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05.9999999",
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		if ts, err := time.Parse(layout, dtz.DateTime); err == nil {
			return ts.UnixMilli()
		}
	}
	return 0
}
