package sessions

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/CARE-UiT/Reflectometer/internal/common"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestGet_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	id := uuid.NewString()
	rows := sqlmock.NewRows([]string{"id", "name", "course"}).AddRow(id, "Week 1", int64(7))
	mock.ExpectQuery(`SELECT\s+id,\s*name,\s*course\s+FROM\s+sessions`).
		WithArgs(id).
		WillReturnRows(rows)

	got, err := repo.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got.ID != id || got.Name != "Week 1" || got.Course != 7 {
		t.Fatalf("unexpected session: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestGet_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	id := uuid.NewString()
	mock.ExpectQuery(`SELECT\s+id,\s*name,\s*course\s+FROM\s+sessions`).
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	if _, err := repo.Get(context.Background(), id); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}

// A malformed id must read as not-found before any SQL is issued; the uuid
// column would otherwise reject the comparison with a driver error.
func TestGet_MalformedIDNotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	for _, id := range []string{"", "abc", "123", "zzzzzzzz-zzzz-zzzz-zzzz-zzzzzzzzzzzz"} {
		if _, err := repo.Get(context.Background(), id); !errors.Is(err, common.ErrorNotFound) {
			t.Fatalf("id %q: expected common.ErrorNotFound, got %v", id, err)
		}
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("no query should have been issued: %v", err)
	}
}
