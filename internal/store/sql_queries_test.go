// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Filali Empire

package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/filaliempire/crm-server/models"
)

func Test_buildListQuery_NoFilter(t *testing.T) {
	query, args, err := buildListQuery(models.ClientFilter{})
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "select")
	require.Contains(t, q, "from clients")
	require.Contains(t, q, "order by created_at desc")
	assert.NotContains(t, q, "where")
	assert.Empty(t, args)
}

func Test_buildListQuery_StatusFilter(t *testing.T) {
	query, args, err := buildListQuery(models.ClientFilter{Status: models.StatusLead})
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "where")
	require.Contains(t, q, "status")
	require.Contains(t, query, "$1")
	require.Len(t, args, 1)
	assert.Equal(t, models.StatusLead, args[0])
}

func Test_buildListQuery_StatusAllDisablesFilter(t *testing.T) {
	query, args, err := buildListQuery(models.ClientFilter{Status: "all"})
	require.NoError(t, err)

	assert.NotContains(t, strings.ToLower(query), "where")
	assert.Empty(t, args)
}

func Test_buildListQuery_SearchFilter(t *testing.T) {
	query, args, err := buildListQuery(models.ClientFilter{Search: "acme"})
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "full_name ilike")
	require.Contains(t, q, "email ilike")
	require.Contains(t, q, "company ilike")

	require.Len(t, args, 3)
	for _, arg := range args {
		assert.Equal(t, "%acme%", arg)
	}
}

func Test_buildListQuery_TagsFilter(t *testing.T) {
	query, args, err := buildListQuery(models.ClientFilter{Tags: []string{"vip", "lead"}})
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "jsonb_array_elements_text(tags)")
	require.Len(t, args, 1)
	assert.Equal(t, []string{"vip", "lead"}, args[0])
}

func Test_buildListQuery_Pagination(t *testing.T) {
	query, _, err := buildListQuery(models.ClientFilter{Limit: 25, Offset: 50})
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "limit 25")
	require.Contains(t, q, "offset 50")
}

func Test_buildCountQuery_SharesFilter(t *testing.T) {
	query, args, err := buildCountQuery(models.ClientFilter{Status: models.StatusActive, Limit: 10, Offset: 5})
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "count(*)")
	require.Contains(t, q, "status")
	// pagination must never leak into the count
	assert.NotContains(t, q, "limit")
	assert.NotContains(t, q, "offset")
	require.Len(t, args, 1)
}

func Test_buildInsertQuery_NullifiesEmptyOptionals(t *testing.T) {
	client := models.Client{
		ID:       "11111111-1111-1111-1111-111111111111",
		FullName: "Jane Doe",
		Status:   models.StatusLead,
		Tags:     models.Tags{},
		Custom:   models.CustomFields{},
		Notes:    models.Notes{},
	}

	query, args, err := buildInsertQuery(client)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "insert into clients")
	require.Contains(t, q, "nullif")
	require.Contains(t, q, "returning created_at, updated_at")
	// id, full_name, 3 nullified optionals, status, tags, custom, notes
	require.Len(t, args, 9)
}

func Test_buildUpdateQuery_TouchesUpdatedAt(t *testing.T) {
	client := models.Client{ID: "11111111-1111-1111-1111-111111111111", FullName: "Jane"}

	query, args, err := buildUpdateQuery(client)
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "update clients")
	require.Contains(t, q, "updated_at")
	require.Contains(t, q, "notes")
	require.Contains(t, q, "where id = ")
	assert.NotEmpty(t, args)
}

func Test_buildDeleteQuery(t *testing.T) {
	query, args, err := buildDeleteQuery("some-id")
	require.NoError(t, err)

	q := strings.ToLower(query)
	require.Contains(t, q, "delete from clients")
	require.Contains(t, q, "where id = ")
	require.Len(t, args, 1)
	assert.Equal(t, "some-id", args[0])
}
