package participants

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/CARE-UiT/Reflectometer/internal/common"
	"github.com/CARE-UiT/Reflectometer/internal/dbx"
	"github.com/CARE-UiT/Reflectometer/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, participant *models.Participant) (*models.Participant, error) {

	query :=
		`INSERT INTO participants (name, course)
         VALUES ($1, $2)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query, participant.Name, participant.Course).Scan(&participant.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return participant, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (*models.Participant, error) {
	query :=
		`SELECT id, name, course FROM participants
		 WHERE id = $1
		 `

	p := &models.Participant{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Name, &p.Course)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return p, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM participants WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrorNotFound
	}

	return nil
}

func (r *PostgresRepository) ListByCourse(ctx context.Context, course int64) ([]models.Participant, error) {
	query :=
		`SELECT id, name, course FROM participants
		 WHERE course = $1
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, course)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Participant
	for rows.Next() {
		var p models.Participant
		if err := rows.Scan(&p.ID, &p.Name, &p.Course); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
