// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Filali Empire

package service

import (
	"encoding/json"
	"strings"

	"github.com/filaliempire/crm-server/models"
)

// Rendering sentinels used in field diffs.
const (
	labelNotSet  = "Not set"
	labelNone    = "None"
	labelUpdated = "Updated"
)

// ComputeDiff compares a proposed partial update against the current client
// and returns one [models.FieldDiff] per tracked field that actually changes.
// Fields are checked in a fixed order (name, email, phone, company, status,
// tags, custom) and the result preserves that order.
//
// A scalar field contributes a diff only when the update provides a non-empty
// value that differs from the current one; a previously empty scalar renders
// as "Not set" on the old side. Tags compare by serialized form and render
// comma-joined, with "None" for an empty list. Custom fields compare
// structurally but render as the fixed label "Updated" on both sides to keep
// arbitrary JSON out of the note body.
//
// An empty result means the update is a no-op for journaling purposes: the
// caller must not append an activity note.
func ComputeDiff(current models.Client, proposed models.ClientUpdate) []models.FieldDiff {
	var changes []models.FieldDiff

	if proposed.FullName != nil && *proposed.FullName != "" && *proposed.FullName != current.FullName {
		changes = append(changes, models.FieldDiff{
			Field:    "Name",
			OldValue: current.FullName,
			NewValue: *proposed.FullName,
		})
	}

	if proposed.Email != nil && *proposed.Email != "" && *proposed.Email != current.Email {
		changes = append(changes, models.FieldDiff{
			Field:    "Email",
			OldValue: orNotSet(current.Email),
			NewValue: *proposed.Email,
		})
	}

	if proposed.Phone != nil && *proposed.Phone != "" && *proposed.Phone != current.Phone {
		changes = append(changes, models.FieldDiff{
			Field:    "Phone",
			OldValue: orNotSet(current.Phone),
			NewValue: *proposed.Phone,
		})
	}

	if proposed.Company != nil && *proposed.Company != "" && *proposed.Company != current.Company {
		changes = append(changes, models.FieldDiff{
			Field:    "Company",
			OldValue: orNotSet(current.Company),
			NewValue: *proposed.Company,
		})
	}

	if proposed.Status != nil && *proposed.Status != "" && *proposed.Status != current.Status {
		changes = append(changes, models.FieldDiff{
			Field:    "Status",
			OldValue: current.Status,
			NewValue: *proposed.Status,
		})
	}

	if proposed.Tags != nil && !tagsEqual(current.Tags, *proposed.Tags) {
		changes = append(changes, models.FieldDiff{
			Field:    "Tags",
			OldValue: renderTags(current.Tags),
			NewValue: renderTags(*proposed.Tags),
		})
	}

	if proposed.Custom != nil && !current.Custom.Equal(*proposed.Custom) {
		changes = append(changes, models.FieldDiff{
			Field:    "Custom Fields",
			OldValue: labelUpdated,
			NewValue: labelUpdated,
		})
	}

	return changes
}

func orNotSet(value string) string {
	if value == "" {
		return labelNotSet
	}
	return value
}

func renderTags(tags models.Tags) string {
	if len(tags) == 0 {
		return labelNone
	}
	return strings.Join(tags, ", ")
}

// tagsEqual compares the serialized forms of two tag lists. A nil list and an
// empty list are the same tag set.
func tagsEqual(a, b models.Tags) bool {
	if len(a) == 0 && len(b) == 0 {
		return true
	}
	aj, _ := json.Marshal(a)
	bj, _ := json.Marshal(b)
	return string(aj) == string(bj)
}
