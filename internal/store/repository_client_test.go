package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/filaliempire/crm-server/internal/logger"
	"github.com/filaliempire/crm-server/models"
)

func newTestClientRepo(t *testing.T) (*clientRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &clientRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func uniqueViolation(constraint string) error {
	return &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: constraint}
}

var clientRowColumns = []string{
	"id", "full_name", "email", "phone", "company", "status",
	"tags", "custom", "notes", "created_at", "updated_at",
}

func clientRow(t *testing.T, id, name string) *sqlmock.Rows {
	t.Helper()
	now := time.Now()
	return sqlmock.NewRows(clientRowColumns).
		AddRow(id, name, "a@b.com", "", "", models.StatusLead,
			[]byte(`["vip"]`), []byte(`{}`), []byte(`[]`), now, now)
}

func TestClientRepository_Get_Success(t *testing.T) {
	repo, mock, db := newTestClientRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT .+ FROM clients WHERE id =").
		WithArgs("c-1").
		WillReturnRows(clientRow(t, "c-1", "John Smith"))

	client, err := repo.Get(context.Background(), "c-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.ID != "c-1" || client.FullName != "John Smith" {
		t.Errorf("unexpected client: %+v", client)
	}
	if len(client.Tags) != 1 || client.Tags[0] != "vip" {
		t.Errorf("expected tags [vip], got %v", client.Tags)
	}
}

func TestClientRepository_Get_NotFound(t *testing.T) {
	repo, mock, db := newTestClientRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT .+ FROM clients WHERE id =").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "missing")
	if !errors.Is(err, ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}

func TestClientRepository_List_Success(t *testing.T) {
	repo, mock, db := newTestClientRepo(t)
	defer db.Close()

	rows := clientRow(t, "c-1", "John Smith")
	now := time.Now()
	rows.AddRow("c-2", "Sarah Wilson", "", "", "", models.StatusActive,
		[]byte(`[]`), []byte(`{}`), []byte(`[]`), now, now)

	mock.ExpectQuery("SELECT .+ FROM clients").WillReturnRows(rows)
	mock.ExpectQuery("SELECT count").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	list, err := repo.List(context.Background(), models.ClientFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(list.Items))
	}
	if list.Total != 2 {
		t.Errorf("expected total 2, got %d", list.Total)
	}
}

func TestClientRepository_List_QueryError(t *testing.T) {
	repo, mock, db := newTestClientRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT .+ FROM clients").
		WillReturnError(errors.New("db network error"))

	_, err := repo.List(context.Background(), models.ClientFilter{})
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestClientRepository_Create_Success(t *testing.T) {
	repo, mock, db := newTestClientRepo(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("INSERT INTO clients").
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	client := models.Client{ID: "c-1", FullName: "John Smith", Status: models.StatusLead}
	created, err := repo.Create(context.Background(), client)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Errorf("expected server-assigned timestamps, got %+v", created)
	}
}

func TestClientRepository_Create_EmailConflict(t *testing.T) {
	repo, mock, db := newTestClientRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO clients").
		WillReturnError(uniqueViolation("clients_email_key"))

	_, err := repo.Create(context.Background(), models.Client{ID: "c-1", FullName: "John"})
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestClientRepository_Create_PhoneConflict(t *testing.T) {
	repo, mock, db := newTestClientRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO clients").
		WillReturnError(uniqueViolation("clients_phone_key"))

	_, err := repo.Create(context.Background(), models.Client{ID: "c-1", FullName: "John"})
	if !errors.Is(err, ErrPhoneAlreadyExists) {
		t.Fatalf("expected ErrPhoneAlreadyExists, got %v", err)
	}
}

func TestClientRepository_Create_UnknownConstraintConflict(t *testing.T) {
	repo, mock, db := newTestClientRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO clients").
		WillReturnError(uniqueViolation("clients_mystery_key"))

	_, err := repo.Create(context.Background(), models.Client{ID: "c-1", FullName: "John"})
	if !errors.Is(err, ErrClientAlreadyExists) {
		t.Fatalf("expected ErrClientAlreadyExists, got %v", err)
	}
}

func TestClientRepository_Create_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestClientRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO clients").
		WillReturnError(errors.New("db network error"))

	_, err := repo.Create(context.Background(), models.Client{ID: "c-1", FullName: "John"})
	if err == nil || !strings.Contains(err.Error(), "failed to execute statement") {
		t.Fatalf("expected wrapped statement error, got %v", err)
	}
}

func TestClientRepository_Update_EmailConflict(t *testing.T) {
	repo, mock, db := newTestClientRepo(t)
	defer db.Close()

	mock.ExpectQuery("UPDATE clients").
		WillReturnError(uniqueViolation("clients_email_key"))

	_, err := repo.Update(context.Background(), models.Client{ID: "c-1", FullName: "John"})
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestClientRepository_Update_NotFound(t *testing.T) {
	repo, mock, db := newTestClientRepo(t)
	defer db.Close()

	mock.ExpectQuery("UPDATE clients").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Update(context.Background(), models.Client{ID: "gone", FullName: "John"})
	if !errors.Is(err, ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}

func TestClientRepository_Delete_Success(t *testing.T) {
	repo, mock, db := newTestClientRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM clients").
		WithArgs("c-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), "c-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClientRepository_Delete_NotFound(t *testing.T) {
	repo, mock, db := newTestClientRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM clients").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "missing")
	if !errors.Is(err, ErrClientNotFound) {
		t.Fatalf("expected ErrClientNotFound, got %v", err)
	}
}

func TestClientRepository_Stats_Success(t *testing.T) {
	repo, mock, db := newTestClientRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT").
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.
			NewRows([]string{"total", "leads", "active", "inactive", "lost", "recent"}).
			AddRow(10, 4, 3, 2, 1, 5))

	stats, err := repo.Stats(context.Background(), time.Now().Add(-7*24*time.Hour))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Total != 10 || stats.Leads != 4 || stats.RecentlyAdded != 5 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}
