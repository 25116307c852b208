package keymoments

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

// "when" is reserved-ish in several tools, so the column is named whenfield.
const keyMomentColumns = `id, curve, session, participant, xvalue, yvalue, what, whenfield, thoughts, feelings, actions, consequences`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func scanKeyMoment(row *sql.Row) (*models.KeyMoment, error) {
	km := &models.KeyMoment{}
	err := row.Scan(&km.ID, &km.Curve, &km.Session, &km.Participant,
		&km.XValue, &km.YValue,
		&km.What, &km.When, &km.Thoughts, &km.Feelings, &km.Actions, &km.Consequences)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return km, nil
}

func (r *PostgresRepository) Create(ctx context.Context, keyMoment *models.KeyMoment) (*models.KeyMoment, error) {

	query :=
		`INSERT INTO keymoments (curve, session, participant, xvalue, yvalue, what, whenfield, thoughts, feelings, actions, consequences)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		keyMoment.Curve, keyMoment.Session, keyMoment.Participant,
		keyMoment.XValue, keyMoment.YValue,
		keyMoment.What, keyMoment.When, keyMoment.Thoughts,
		keyMoment.Feelings, keyMoment.Actions, keyMoment.Consequences).Scan(&keyMoment.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return keyMoment, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (*models.KeyMoment, error) {
	query := `SELECT ` + keyMomentColumns + ` FROM keymoments WHERE id = $1`
	return scanKeyMoment(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) Update(ctx context.Context, id int64, upd models.KeyMomentUpdate) (*models.KeyMoment, error) {
	set := make([]string, 0, 8)
	args := make([]any, 0, 9)

	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.XValue != nil {
		add("xvalue", *upd.XValue)
	}
	if upd.YValue != nil {
		add("yvalue", *upd.YValue)
	}
	if upd.What != nil {
		add("what", *upd.What)
	}
	if upd.When != nil {
		add("whenfield", *upd.When)
	}
	if upd.Thoughts != nil {
		add("thoughts", *upd.Thoughts)
	}
	if upd.Feelings != nil {
		add("feelings", *upd.Feelings)
	}
	if upd.Actions != nil {
		add("actions", *upd.Actions)
	}
	if upd.Consequences != nil {
		add("consequences", *upd.Consequences)
	}
	if len(set) == 0 {
		return r.Get(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf(
		`UPDATE keymoments SET %s
		 WHERE id = $%d
		 RETURNING %s
		 `, strings.Join(set, ", "), len(args), keyMomentColumns)

	return scanKeyMoment(r.db.QueryRowContext(ctx, query, args...))
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM keymoments WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrorNotFound
	}

	return nil
}

func (r *PostgresRepository) ListByCurve(ctx context.Context, curve int64) ([]models.KeyMoment, error) {
	query := `SELECT ` + keyMomentColumns + ` FROM keymoments WHERE curve = $1 ORDER BY xvalue`

	rows, err := r.db.QueryContext(ctx, query, curve)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.KeyMoment
	for rows.Next() {
		var km models.KeyMoment
		if err := rows.Scan(&km.ID, &km.Curve, &km.Session, &km.Participant,
			&km.XValue, &km.YValue,
			&km.What, &km.When, &km.Thoughts, &km.Feelings, &km.Actions, &km.Consequences); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, km)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
