package courses

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

func (r *PostgresRepository) Create(ctx context.Context, course *models.Course) (*models.Course, error) {

	query :=
		`INSERT INTO courses (name, owner)
         VALUES ($1, $2)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query, course.Name, course.Owner).Scan(&course.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return course, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (*models.Course, error) {
	query :=
		`SELECT id, name, owner FROM courses
		 WHERE id = $1
		 `

	course := &models.Course{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&course.ID, &course.Name, &course.Owner)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return course, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id int64, upd models.CourseUpdate) (*models.Course, error) {
	if upd.Name == nil {
		return r.Get(ctx, id)
	}

	query :=
		`UPDATE courses SET name = $1
		 WHERE id = $2
		 RETURNING id, name, owner
		 `

	course := &models.Course{}
	err := r.db.QueryRowContext(ctx, query, *upd.Name, id).Scan(&course.ID, &course.Name, &course.Owner)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return course, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM courses WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrorNotFound
	}

	return nil
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, owner int64) ([]models.Course, error) {
	query :=
		`SELECT id, name, owner FROM courses
		 WHERE owner = $1
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, owner)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Course
	for rows.Next() {
		var c models.Course
		if err := rows.Scan(&c.ID, &c.Name, &c.Owner); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
