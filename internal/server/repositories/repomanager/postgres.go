package repomanager

import (
	"context"
	"database/sql"

	"github.com/CARE-UiT/Reflectometer/internal/dbx"
	"github.com/CARE-UiT/Reflectometer/internal/server/migrations"
	"github.com/CARE-UiT/Reflectometer/internal/server/repositories/courses"
	"github.com/CARE-UiT/Reflectometer/internal/server/repositories/curves"
	"github.com/CARE-UiT/Reflectometer/internal/server/repositories/keymoments"
	"github.com/CARE-UiT/Reflectometer/internal/server/repositories/participants"
	"github.com/CARE-UiT/Reflectometer/internal/server/repositories/refreshtokens"
	"github.com/CARE-UiT/Reflectometer/internal/server/repositories/sessions"
	"github.com/CARE-UiT/Reflectometer/internal/server/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

type PostgresRepositoryManager struct{}

func NewPostgresRepositoryManager() *PostgresRepositoryManager {
	return &PostgresRepositoryManager{}
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	return goose.UpContext(ctx, db, ".")
}

func (m *PostgresRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return users.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) RefreshTokens(db dbx.DBTX) refreshtokens.Repository {
	return refreshtokens.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Courses(db dbx.DBTX) courses.Repository {
	return courses.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Sessions(db dbx.DBTX) sessions.Repository {
	return sessions.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Participants(db dbx.DBTX) participants.Repository {
	return participants.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Curves(db dbx.DBTX) curves.Repository {
	return curves.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) KeyMoments(db dbx.DBTX) keymoments.Repository {
	return keymoments.NewPostgresRepository(db)
}
