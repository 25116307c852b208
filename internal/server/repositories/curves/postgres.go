package curves

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

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

func (r *PostgresRepository) Create(ctx context.Context, curve *models.Curve) (*models.Curve, error) {

	query :=
		`INSERT INTO curves (session, participant, payload, blob_key)
         VALUES ($1, $2, $3, $4)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		curve.Session, curve.Participant, curve.Payload, curve.BlobKey).Scan(&curve.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return curve, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (*models.Curve, error) {
	query :=
		`SELECT id, session, participant, payload, blob_key FROM curves
		 WHERE id = $1
		 `

	curve := &models.Curve{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&curve.ID, &curve.Session, &curve.Participant, &curve.Payload, &curve.BlobKey)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return curve, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id int64, upd models.CurveUpdate) (*models.Curve, error) {
	set := make([]string, 0, 2)
	args := make([]any, 0, 3)

	if upd.Payload != nil {
		args = append(args, *upd.Payload)
		set = append(set, fmt.Sprintf("payload = $%d", len(args)))
	}
	if upd.BlobKey != nil {
		args = append(args, *upd.BlobKey)
		set = append(set, fmt.Sprintf("blob_key = $%d", len(args)))
	}
	if len(set) == 0 {
		return r.Get(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf(
		`UPDATE curves SET %s
		 WHERE id = $%d
		 RETURNING id, session, participant, payload, blob_key
		 `, strings.Join(set, ", "), len(args))

	curve := &models.Curve{}
	err := r.db.QueryRowContext(ctx, query, args...).
		Scan(&curve.ID, &curve.Session, &curve.Participant, &curve.Payload, &curve.BlobKey)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return curve, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM curves WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrorNotFound
	}

	return nil
}

func (r *PostgresRepository) ListBySession(ctx context.Context, session string) ([]models.Curve, error) {
	query :=
		`SELECT id, session, participant, payload, blob_key FROM curves
		 WHERE session = $1
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, session)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Curve
	for rows.Next() {
		var c models.Curve
		if err := rows.Scan(&c.ID, &c.Session, &c.Participant, &c.Payload, &c.BlobKey); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
