package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/filaliempire/crm-server/models"
)

// psql builds queries with PostgreSQL dollar placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// clientColumns is the canonical column list scanned into [models.Client].
// Optional text columns are coalesced so the model can keep plain strings.
var clientColumns = []string{
	"id",
	"full_name",
	"COALESCE(email, '') AS email",
	"COALESCE(phone, '') AS phone",
	"COALESCE(company, '') AS company",
	"status",
	"tags",
	"custom",
	"notes",
	"created_at",
	"updated_at",
}

const statsQuery = `SELECT
		count(*),
		count(*) FILTER (WHERE status = 'lead'),
		count(*) FILTER (WHERE status = 'active'),
		count(*) FILTER (WHERE status = 'inactive'),
		count(*) FILTER (WHERE status = 'lost'),
		count(*) FILTER (WHERE created_at > $1)
	FROM clients;`

// applyFilter attaches the WHERE clauses shared by the listing and count
// queries.
func applyFilter(b sq.SelectBuilder, filter models.ClientFilter) sq.SelectBuilder {
	if filter.Status != "" && filter.Status != "all" {
		b = b.Where(sq.Eq{"status": filter.Status})
	}

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		b = b.Where(sq.Or{
			sq.ILike{"full_name": pattern},
			sq.ILike{"email": pattern},
			sq.ILike{"company": pattern},
		})
	}

	if len(filter.Tags) > 0 {
		// tags is a JSONB array of strings; overlap check against the filter set.
		b = b.Where(sq.Expr(
			"EXISTS (SELECT 1 FROM jsonb_array_elements_text(tags) AS t(tag) WHERE t.tag = ANY(?))",
			filter.Tags,
		))
	}

	return b
}

func buildListQuery(filter models.ClientFilter) (string, []any, error) {
	b := applyFilter(psql.Select(clientColumns...).From("clients"), filter).
		OrderBy("created_at DESC")

	if filter.Limit > 0 {
		b = b.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		b = b.Offset(uint64(filter.Offset))
	}

	return b.ToSql()
}

func buildCountQuery(filter models.ClientFilter) (string, []any, error) {
	return applyFilter(psql.Select("count(*)").From("clients"), filter).ToSql()
}

func buildGetQuery(id string) (string, []any, error) {
	return psql.Select(clientColumns...).
		From("clients").
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildInsertQuery(c models.Client) (string, []any, error) {
	return psql.Insert("clients").
		Columns("id", "full_name", "email", "phone", "company", "status", "tags", "custom", "notes").
		Values(
			c.ID,
			c.FullName,
			sq.Expr("NULLIF(?, '')", c.Email),
			sq.Expr("NULLIF(?, '')", c.Phone),
			sq.Expr("NULLIF(?, '')", c.Company),
			c.Status,
			c.Tags,
			c.Custom,
			c.Notes,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
}

func buildUpdateQuery(c models.Client) (string, []any, error) {
	return psql.Update("clients").
		Set("full_name", c.FullName).
		Set("email", sq.Expr("NULLIF(?, '')", c.Email)).
		Set("phone", sq.Expr("NULLIF(?, '')", c.Phone)).
		Set("company", sq.Expr("NULLIF(?, '')", c.Company)).
		Set("status", c.Status).
		Set("tags", c.Tags).
		Set("custom", c.Custom).
		Set("notes", c.Notes).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": c.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
}

func buildDeleteQuery(id string) (string, []any, error) {
	return psql.Delete("clients").
		Where(sq.Eq{"id": id}).
		ToSql()
}
