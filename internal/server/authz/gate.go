// Package authz is the authorization choke-point: it resolves the owning
// user of any protected resource by walking the live ownership chain
// (Curve/KeyMoment → Session → Course → User) and grants or denies access.
//
// Every resource kind registers one resolver function; the permission
// decision itself exists in exactly one place, Gate.Authorize.
package authz

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"github.com/CARE-UiT/Reflectometer/internal/common"
	"github.com/CARE-UiT/Reflectometer/internal/server/repositories/repomanager"
)

// Kind names a protected resource type.
type Kind string

const (
	KindCourse    Kind = "course"
	KindSession   Kind = "session"
	KindCurve     Kind = "curve"
	KindKeyMoment Kind = "keymoment"
)

// Resolver returns the owning user id for a resource id, or
// common.ErrorNotFound when the resource or any link of its ownership chain
// is missing.
type Resolver func(ctx context.Context, id string) (int64, error)

// Gate combines per-kind owner resolution with the single authorization
// decision. It never mutates state: callers may invoke it speculatively and
// retry freely.
type Gate struct {
	db        *sql.DB
	rm        repomanager.RepositoryManager
	resolvers map[Kind]Resolver
}

func NewGate(db *sql.DB, rm repomanager.RepositoryManager) *Gate {
	g := &Gate{db: db, rm: rm, resolvers: map[Kind]Resolver{}}
	g.Register(KindCourse, g.resolveCourseOwner)
	g.Register(KindSession, g.resolveSessionOwner)
	g.Register(KindCurve, g.resolveCurveOwner)
	g.Register(KindKeyMoment, g.resolveKeyMomentOwner)
	return g
}

// Register installs the resolver for a resource kind. New resource types add
// one resolver here instead of re-implementing the permission check.
func (g *Gate) Register(kind Kind, r Resolver) {
	g.resolvers[kind] = r
}

// ResolveOwner dispatches to the registered resolver for kind.
func (g *Gate) ResolveOwner(ctx context.Context, kind Kind, id string) (int64, error) {
	r, ok := g.resolvers[kind]
	if !ok {
		return 0, common.ErrorNotFound
	}
	return r(ctx, id)
}

// Authorize reports whether userID owns the chain leading to the resource.
// A nil return is a grant. Missing resources and dangling ownership links
// yield common.ErrDenied, never a grant: absent data is not authorization.
func (g *Gate) Authorize(ctx context.Context, userID int64, kind Kind, id string) error {
	owner, err := g.ResolveOwner(ctx, kind, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrDenied
		}
		return err
	}
	if owner != userID {
		return common.ErrDenied
	}
	return nil
}

// parseSerial converts a string resource id for serial-keyed kinds.
// Unparseable ids resolve like missing resources.
func parseSerial(id string) (int64, error) {
	n, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return 0, common.ErrorNotFound
	}
	return n, nil
}

func (g *Gate) resolveCourseOwner(ctx context.Context, id string) (int64, error) {
	courseID, err := parseSerial(id)
	if err != nil {
		return 0, err
	}

	course, err := g.rm.Courses(g.db).Get(ctx, courseID)
	if err != nil {
		return 0, err
	}
	return course.Owner, nil
}

func (g *Gate) resolveSessionOwner(ctx context.Context, id string) (int64, error) {
	session, err := g.rm.Sessions(g.db).Get(ctx, id)
	if err != nil {
		return 0, err
	}
	return g.resolveCourseOwner(ctx, strconv.FormatInt(session.Course, 10))
}

func (g *Gate) resolveCurveOwner(ctx context.Context, id string) (int64, error) {
	curveID, err := parseSerial(id)
	if err != nil {
		return 0, err
	}

	curve, err := g.rm.Curves(g.db).Get(ctx, curveID)
	if err != nil {
		return 0, err
	}
	return g.resolveSessionOwner(ctx, curve.Session)
}

// resolveKeyMomentOwner walks via the key moment's denormalized session
// reference, but the curve's session stays authoritative: a key moment whose
// own session field disagrees with its curve is treated as missing.
func (g *Gate) resolveKeyMomentOwner(ctx context.Context, id string) (int64, error) {
	keyMomentID, err := parseSerial(id)
	if err != nil {
		return 0, err
	}

	km, err := g.rm.KeyMoments(g.db).Get(ctx, keyMomentID)
	if err != nil {
		return 0, err
	}

	curve, err := g.rm.Curves(g.db).Get(ctx, km.Curve)
	if err != nil {
		return 0, err
	}
	if curve.Session != km.Session {
		return 0, common.ErrorNotFound
	}

	return g.resolveSessionOwner(ctx, km.Session)
}
