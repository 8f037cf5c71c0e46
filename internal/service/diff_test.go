// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Filali Empire

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filaliempire/crm-server/models"
)

func strPtr(s string) *string { return &s }

func TestComputeDiff_NoChanges(t *testing.T) {
	current := models.Client{
		FullName: "John Smith",
		Email:    "john@example.com",
		Status:   models.StatusActive,
		Tags:     models.Tags{"vip"},
	}

	// Same values proposed back.
	diff := ComputeDiff(current, models.ClientUpdate{
		FullName: strPtr("John Smith"),
		Email:    strPtr("john@example.com"),
		Status:   strPtr(models.StatusActive),
		Tags:     &models.Tags{"vip"},
	})

	assert.Empty(t, diff)
}

func TestComputeDiff_EmptyUpdate(t *testing.T) {
	current := models.Client{FullName: "John Smith", Email: "john@example.com"}

	assert.Empty(t, ComputeDiff(current, models.ClientUpdate{}))
}

func TestComputeDiff_SingleField(t *testing.T) {
	current := models.Client{FullName: "John Smith", Email: "john@example.com"}

	diff := ComputeDiff(current, models.ClientUpdate{Email: strPtr("j.smith@example.com")})

	require.Len(t, diff, 1)
	assert.Equal(t, "Email", diff[0].Field)
	assert.Equal(t, "john@example.com", diff[0].OldValue)
	assert.Equal(t, "j.smith@example.com", diff[0].NewValue)
}

func TestComputeDiff_AbsentScalarRendersNotSet(t *testing.T) {
	current := models.Client{FullName: "John Smith"}

	diff := ComputeDiff(current, models.ClientUpdate{Email: strPtr("a@b.com")})

	require.Len(t, diff, 1)
	assert.Equal(t, "Not set", diff[0].OldValue)
	assert.Equal(t, "a@b.com", diff[0].NewValue)
}

func TestComputeDiff_FieldOrder(t *testing.T) {
	current := models.Client{
		FullName: "John Smith",
		Status:   models.StatusLead,
	}

	diff := ComputeDiff(current, models.ClientUpdate{
		Custom:   &models.CustomFields{"plan": models.StringValue("elite")},
		Status:   strPtr(models.StatusActive),
		Email:    strPtr("john@example.com"),
		FullName: strPtr("John A. Smith"),
		Tags:     &models.Tags{"vip"},
	})

	require.Len(t, diff, 5)
	fields := []string{diff[0].Field, diff[1].Field, diff[2].Field, diff[3].Field, diff[4].Field}
	assert.Equal(t, []string{"Name", "Email", "Status", "Tags", "Custom Fields"}, fields)
}

func TestComputeDiff_Tags(t *testing.T) {
	current := models.Client{FullName: "John Smith", Tags: models.Tags{"lead"}}

	diff := ComputeDiff(current, models.ClientUpdate{Tags: &models.Tags{"lead", "vip"}})

	require.Len(t, diff, 1)
	assert.Equal(t, "Tags", diff[0].Field)
	assert.Equal(t, "lead", diff[0].OldValue)
	assert.Equal(t, "lead, vip", diff[0].NewValue)
}

func TestComputeDiff_TagsEmptyRendersNone(t *testing.T) {
	current := models.Client{FullName: "John Smith"}

	diff := ComputeDiff(current, models.ClientUpdate{Tags: &models.Tags{"vip"}})

	require.Len(t, diff, 1)
	assert.Equal(t, "None", diff[0].OldValue)
	assert.Equal(t, "vip", diff[0].NewValue)
}

func TestComputeDiff_TagsNilVsEmptyIsNoop(t *testing.T) {
	current := models.Client{FullName: "John Smith", Tags: nil}

	assert.Empty(t, ComputeDiff(current, models.ClientUpdate{Tags: &models.Tags{}}))
}

func TestComputeDiff_TagsOrderMatters(t *testing.T) {
	current := models.Client{FullName: "John Smith", Tags: models.Tags{"a", "b"}}

	diff := ComputeDiff(current, models.ClientUpdate{Tags: &models.Tags{"b", "a"}})

	require.Len(t, diff, 1)
	assert.Equal(t, "a, b", diff[0].OldValue)
	assert.Equal(t, "b, a", diff[0].NewValue)
}

func TestComputeDiff_CustomRendersUpdatedLabel(t *testing.T) {
	current := models.Client{
		FullName: "John Smith",
		Custom:   models.CustomFields{"plan": models.StringValue("basic")},
	}

	diff := ComputeDiff(current, models.ClientUpdate{
		Custom: &models.CustomFields{"plan": models.StringValue("elite")},
	})

	require.Len(t, diff, 1)
	assert.Equal(t, "Custom Fields", diff[0].Field)
	assert.Equal(t, "Updated", diff[0].OldValue)
	assert.Equal(t, "Updated", diff[0].NewValue)
}

func TestComputeDiff_CustomEqualIsNoop(t *testing.T) {
	current := models.Client{
		FullName: "John Smith",
		Custom:   models.CustomFields{"sessions": models.NumberValue(12)},
	}

	assert.Empty(t, ComputeDiff(current, models.ClientUpdate{
		Custom: &models.CustomFields{"sessions": models.NumberValue(12)},
	}))
}

func TestComputeDiff_EmptyProposedScalarIgnored(t *testing.T) {
	current := models.Client{FullName: "John Smith", Email: "john@example.com"}

	// Provided-but-empty scalars do not participate in the diff.
	assert.Empty(t, ComputeDiff(current, models.ClientUpdate{
		FullName: strPtr(""),
		Email:    strPtr(""),
	}))
}
