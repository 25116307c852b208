package authz

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/CARE-UiT/Reflectometer/internal/common"
	"github.com/CARE-UiT/Reflectometer/internal/server/models"
	"github.com/CARE-UiT/Reflectometer/internal/server/repositories/inmemory"
	"github.com/CARE-UiT/Reflectometer/internal/server/repositories/repomanager"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
)

type fixture struct {
	gate      *Gate
	alice     int64
	bob       int64
	course    int64
	session   string
	curve     int64
	keyMoment int64
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	rm := inmemory.NewRepositoryManager()

	alice, err := rm.Users(nil).Create(ctx, &models.User{UserName: "alice", Email: "alice@x.com"})
	if err != nil {
		t.Fatalf("create alice: %v", err)
	}
	bob, err := rm.Users(nil).Create(ctx, &models.User{UserName: "bob", Email: "bob@x.com"})
	if err != nil {
		t.Fatalf("create bob: %v", err)
	}

	course, err := rm.Courses(nil).Create(ctx, &models.Course{Name: "Algebra", Owner: alice.ID})
	if err != nil {
		t.Fatalf("create course: %v", err)
	}

	session := &models.Session{ID: uuid.NewString(), Name: "S1", Course: course.ID}
	if _, err := rm.Sessions(nil).Create(ctx, session); err != nil {
		t.Fatalf("create session: %v", err)
	}

	curve, err := rm.Curves(nil).Create(ctx, &models.Curve{Session: session.ID, Payload: []byte{1, 2, 3}})
	if err != nil {
		t.Fatalf("create curve: %v", err)
	}

	km, err := rm.KeyMoments(nil).Create(ctx, &models.KeyMoment{
		Curve: curve.ID, Session: session.ID, XValue: 1, YValue: 2, What: "spike",
	})
	if err != nil {
		t.Fatalf("create keymoment: %v", err)
	}

	return &fixture{
		gate:      NewGate(nil, rm),
		alice:     alice.ID,
		bob:       bob.ID,
		course:    course.ID,
		session:   session.ID,
		curve:     curve.ID,
		keyMoment: km.ID,
	}
}

func TestAuthorize_OwnerGrantedOnWholeChain(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cases := []struct {
		kind Kind
		id   string
	}{
		{KindCourse, strconv.FormatInt(f.course, 10)},
		{KindSession, f.session},
		{KindCurve, strconv.FormatInt(f.curve, 10)},
		{KindKeyMoment, strconv.FormatInt(f.keyMoment, 10)},
	}
	for _, c := range cases {
		if err := f.gate.Authorize(ctx, f.alice, c.kind, c.id); err != nil {
			t.Fatalf("owner denied on %s %s: %v", c.kind, c.id, err)
		}
		if err := f.gate.Authorize(ctx, f.bob, c.kind, c.id); !errors.Is(err, common.ErrDenied) {
			t.Fatalf("non-owner not denied on %s %s: %v", c.kind, c.id, err)
		}
	}
}

func TestAuthorize_DanglingSessionDeniedForEveryone(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	missing := uuid.NewString()
	for _, user := range []int64{f.alice, f.bob} {
		if err := f.gate.Authorize(ctx, user, KindSession, missing); !errors.Is(err, common.ErrDenied) {
			t.Fatalf("missing session must deny, got %v", err)
		}
	}
}

func TestAuthorize_MissingCourseLinkFailsClosed(t *testing.T) {
	ctx := context.Background()
	rm := inmemory.NewRepositoryManager()

	// session points at a course that does not exist
	orphan := &models.Session{ID: uuid.NewString(), Name: "orphan", Course: 9999}
	if _, err := rm.Sessions(nil).Create(ctx, orphan); err != nil {
		t.Fatalf("create session: %v", err)
	}

	gate := NewGate(nil, rm)
	if err := gate.Authorize(ctx, 1, KindSession, orphan.ID); !errors.Is(err, common.ErrDenied) {
		t.Fatalf("dangling course link must deny, got %v", err)
	}
}

func TestResolveOwner_KeyMomentSessionMismatchRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// a key moment claiming a different session than its curve
	skewed, err := f.gate.rm.KeyMoments(nil).Create(ctx, &models.KeyMoment{
		Curve: f.curve, Session: uuid.NewString(), XValue: 3, YValue: 4,
	})
	if err != nil {
		t.Fatalf("create keymoment: %v", err)
	}

	_, err = f.gate.ResolveOwner(ctx, KindKeyMoment, strconv.FormatInt(skewed.ID, 10))
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected NotFound for mismatched session, got %v", err)
	}
	if err := f.gate.Authorize(ctx, f.alice, KindKeyMoment, strconv.FormatInt(skewed.ID, 10)); !errors.Is(err, common.ErrDenied) {
		t.Fatalf("mismatched key moment must deny even the owner, got %v", err)
	}
}

func TestAuthorize_UnknownKindAndBadIDDenied(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if err := f.gate.Authorize(ctx, f.alice, Kind("widget"), "1"); !errors.Is(err, common.ErrDenied) {
		t.Fatalf("unknown kind must deny, got %v", err)
	}
	if err := f.gate.Authorize(ctx, f.alice, KindCourse, "not-a-number"); !errors.Is(err, common.ErrDenied) {
		t.Fatalf("unparseable id must deny, got %v", err)
	}
}

// Malformed session ids must deny on the Postgres backend too, without the
// id ever reaching the uuid column.
func TestAuthorize_MalformedSessionIDDeniedOnPostgres(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	defer db.Close()

	gate := NewGate(db, repomanager.NewPostgresRepositoryManager())
	ctx := context.Background()

	for _, id := range []string{"abc", "123", ""} {
		if err := gate.Authorize(ctx, 1, KindSession, id); !errors.Is(err, common.ErrDenied) {
			t.Fatalf("session id %q: expected ErrDenied, got %v", id, err)
		}
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("no query should have been issued: %v", err)
	}
}

func TestResolveOwner_ReturnsOwnerID(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	owner, err := f.gate.ResolveOwner(ctx, KindCurve, strconv.FormatInt(f.curve, 10))
	if err != nil {
		t.Fatalf("ResolveOwner error: %v", err)
	}
	if owner != f.alice {
		t.Fatalf("expected owner %d, got %d", f.alice, owner)
	}
}
