// Package repomanager hands out entity repositories bound to a database
// handle, so services can run several repository calls inside one
// transaction by passing the same dbx.DBTX.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/CARE-UiT/Reflectometer/internal/dbx"
	"github.com/CARE-UiT/Reflectometer/internal/server/repositories/courses"
	"github.com/CARE-UiT/Reflectometer/internal/server/repositories/curves"
	"github.com/CARE-UiT/Reflectometer/internal/server/repositories/keymoments"
	"github.com/CARE-UiT/Reflectometer/internal/server/repositories/participants"
	"github.com/CARE-UiT/Reflectometer/internal/server/repositories/refreshtokens"
	"github.com/CARE-UiT/Reflectometer/internal/server/repositories/sessions"
	"github.com/CARE-UiT/Reflectometer/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Courses(db dbx.DBTX) courses.Repository
	Sessions(db dbx.DBTX) sessions.Repository
	Participants(db dbx.DBTX) participants.Repository
	Curves(db dbx.DBTX) curves.Repository
	KeyMoments(db dbx.DBTX) keymoments.Repository
}
