package sessions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/CARE-UiT/Reflectometer/internal/common"
	"github.com/CARE-UiT/Reflectometer/internal/dbx"
	"github.com/CARE-UiT/Reflectometer/internal/server/models"
	"github.com/google/uuid"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, session *models.Session) (*models.Session, error) {

	query :=
		`INSERT INTO sessions (id, name, course)
         VALUES ($1, $2, $3)
		 `

	_, err := r.db.ExecContext(ctx, query, session.ID, session.Name, session.Course)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return session, nil
}

// Get treats a malformed id the same as a missing session. Session ids come
// straight from untrusted callers, and letting a non-UUID reach the uuid
// column would surface a driver error (SQLSTATE 22P02) instead of not-found.
func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.Session, error) {
	if uuid.Validate(id) != nil {
		return nil, common.ErrorNotFound
	}

	query :=
		`SELECT id, name, course FROM sessions
		 WHERE id = $1
		 `

	session := &models.Session{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&session.ID, &session.Name, &session.Course)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return session, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id string, upd models.SessionUpdate) (*models.Session, error) {
	if upd.Name == nil {
		return r.Get(ctx, id)
	}

	query :=
		`UPDATE sessions SET name = $1
		 WHERE id = $2
		 RETURNING id, name, course
		 `

	session := &models.Session{}
	err := r.db.QueryRowContext(ctx, query, *upd.Name, id).Scan(&session.ID, &session.Name, &session.Course)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return session, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM sessions WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrorNotFound
	}

	return nil
}

func (r *PostgresRepository) ListByCourse(ctx context.Context, course int64) ([]models.Session, error) {
	query :=
		`SELECT id, name, course FROM sessions
		 WHERE course = $1
		 ORDER BY name
		 `

	rows, err := r.db.QueryContext(ctx, query, course)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Session
	for rows.Next() {
		var s models.Session
		if err := rows.Scan(&s.ID, &s.Name, &s.Course); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
