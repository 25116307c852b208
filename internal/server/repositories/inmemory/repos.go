package inmemory

import (
	"context"
	"time"

	"github.com/CARE-UiT/Reflectometer/internal/common"
	"github.com/CARE-UiT/Reflectometer/internal/server/models"
)

// --- users ---

type userRepo struct {
	st *state
}

func (r *userRepo) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	for _, u := range r.st.users {
		if u.UserName == user.UserName {
			return nil, common.ErrAlreadyExists
		}
	}

	user.ID = r.st.nextSerial()
	user.CreatedAt = time.Now()
	r.st.users[user.ID] = *user
	return user, nil
}

func (r *userRepo) GetByUserName(ctx context.Context, userName string) (*models.User, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	for _, u := range r.st.users {
		if u.UserName == userName {
			copied := u
			return &copied, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	u, ok := r.st.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	copied := u
	return &copied, nil
}

// --- refresh tokens ---

type refreshTokenRepo struct {
	st *state
}

func (r *refreshTokenRepo) Create(ctx context.Context, userID int64, token string, validity time.Duration) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	r.st.refreshTokens[token] = models.RefreshToken{
		UserID:  userID,
		Token:   token,
		Expires: time.Now().Add(validity),
	}
	return nil
}

func (r *refreshTokenRepo) Find(ctx context.Context, token string) (*models.RefreshToken, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	rt, ok := r.st.refreshTokens[token]
	if !ok {
		return nil, common.ErrorNotFound
	}
	copied := rt
	return &copied, nil
}

func (r *refreshTokenRepo) Delete(ctx context.Context, token string) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	delete(r.st.refreshTokens, token)
	return nil
}

// --- courses ---

type courseRepo struct {
	st *state
}

func (r *courseRepo) Create(ctx context.Context, course *models.Course) (*models.Course, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	course.ID = r.st.nextSerial()
	r.st.courses[course.ID] = *course
	return course, nil
}

func (r *courseRepo) Get(ctx context.Context, id int64) (*models.Course, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	c, ok := r.st.courses[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	copied := c
	return &copied, nil
}

func (r *courseRepo) Update(ctx context.Context, id int64, upd models.CourseUpdate) (*models.Course, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	c, ok := r.st.courses[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	if upd.Name != nil {
		c.Name = *upd.Name
	}
	r.st.courses[id] = c
	copied := c
	return &copied, nil
}

func (r *courseRepo) Delete(ctx context.Context, id int64) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	if _, ok := r.st.courses[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.st.courses, id)
	return nil
}

func (r *courseRepo) ListByOwner(ctx context.Context, owner int64) ([]models.Course, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	var result []models.Course
	for _, c := range r.st.courses {
		if c.Owner == owner {
			result = append(result, c)
		}
	}
	return result, nil
}

// --- sessions ---

type sessionRepo struct {
	st *state
}

func (r *sessionRepo) Create(ctx context.Context, session *models.Session) (*models.Session, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	r.st.sessions[session.ID] = *session
	return session, nil
}

func (r *sessionRepo) Get(ctx context.Context, id string) (*models.Session, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	s, ok := r.st.sessions[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	copied := s
	return &copied, nil
}

func (r *sessionRepo) Update(ctx context.Context, id string, upd models.SessionUpdate) (*models.Session, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	s, ok := r.st.sessions[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	if upd.Name != nil {
		s.Name = *upd.Name
	}
	r.st.sessions[id] = s
	copied := s
	return &copied, nil
}

func (r *sessionRepo) Delete(ctx context.Context, id string) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	if _, ok := r.st.sessions[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.st.sessions, id)
	return nil
}

func (r *sessionRepo) ListByCourse(ctx context.Context, course int64) ([]models.Session, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	var result []models.Session
	for _, s := range r.st.sessions {
		if s.Course == course {
			result = append(result, s)
		}
	}
	return result, nil
}

// --- participants ---

type participantRepo struct {
	st *state
}

func (r *participantRepo) Create(ctx context.Context, participant *models.Participant) (*models.Participant, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	participant.ID = r.st.nextSerial()
	r.st.participants[participant.ID] = *participant
	return participant, nil
}

func (r *participantRepo) Get(ctx context.Context, id int64) (*models.Participant, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	p, ok := r.st.participants[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	copied := p
	return &copied, nil
}

func (r *participantRepo) Delete(ctx context.Context, id int64) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	if _, ok := r.st.participants[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.st.participants, id)
	return nil
}

func (r *participantRepo) ListByCourse(ctx context.Context, course int64) ([]models.Participant, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	var result []models.Participant
	for _, p := range r.st.participants {
		if p.Course == course {
			result = append(result, p)
		}
	}
	return result, nil
}

// --- curves ---

type curveRepo struct {
	st *state
}

func (r *curveRepo) Create(ctx context.Context, curve *models.Curve) (*models.Curve, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	curve.ID = r.st.nextSerial()
	r.st.curves[curve.ID] = *curve
	return curve, nil
}

func (r *curveRepo) Get(ctx context.Context, id int64) (*models.Curve, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	c, ok := r.st.curves[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	copied := c
	return &copied, nil
}

func (r *curveRepo) Update(ctx context.Context, id int64, upd models.CurveUpdate) (*models.Curve, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	c, ok := r.st.curves[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	if upd.Payload != nil {
		c.Payload = *upd.Payload
	}
	if upd.BlobKey != nil {
		c.BlobKey = upd.BlobKey
	}
	r.st.curves[id] = c
	copied := c
	return &copied, nil
}

func (r *curveRepo) Delete(ctx context.Context, id int64) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	if _, ok := r.st.curves[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.st.curves, id)
	return nil
}

func (r *curveRepo) ListBySession(ctx context.Context, session string) ([]models.Curve, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	var result []models.Curve
	for _, c := range r.st.curves {
		if c.Session == session {
			result = append(result, c)
		}
	}
	return result, nil
}

// --- key moments ---

type keyMomentRepo struct {
	st *state
}

func (r *keyMomentRepo) Create(ctx context.Context, keyMoment *models.KeyMoment) (*models.KeyMoment, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	keyMoment.ID = r.st.nextSerial()
	r.st.keyMoments[keyMoment.ID] = *keyMoment
	return keyMoment, nil
}

func (r *keyMomentRepo) Get(ctx context.Context, id int64) (*models.KeyMoment, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	km, ok := r.st.keyMoments[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	copied := km
	return &copied, nil
}

func (r *keyMomentRepo) Update(ctx context.Context, id int64, upd models.KeyMomentUpdate) (*models.KeyMoment, error) {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	km, ok := r.st.keyMoments[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	if upd.XValue != nil {
		km.XValue = *upd.XValue
	}
	if upd.YValue != nil {
		km.YValue = *upd.YValue
	}
	if upd.What != nil {
		km.What = *upd.What
	}
	if upd.When != nil {
		km.When = *upd.When
	}
	if upd.Thoughts != nil {
		km.Thoughts = *upd.Thoughts
	}
	if upd.Feelings != nil {
		km.Feelings = *upd.Feelings
	}
	if upd.Actions != nil {
		km.Actions = *upd.Actions
	}
	if upd.Consequences != nil {
		km.Consequences = *upd.Consequences
	}
	r.st.keyMoments[id] = km
	copied := km
	return &copied, nil
}

func (r *keyMomentRepo) Delete(ctx context.Context, id int64) error {
	r.st.mu.Lock()
	defer r.st.mu.Unlock()

	if _, ok := r.st.keyMoments[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.st.keyMoments, id)
	return nil
}

func (r *keyMomentRepo) ListByCurve(ctx context.Context, curve int64) ([]models.KeyMoment, error) {
	r.st.mu.RLock()
	defer r.st.mu.RUnlock()

	var result []models.KeyMoment
	for _, km := range r.st.keyMoments {
		if km.Curve == curve {
			result = append(result, km)
		}
	}
	return result, nil
}
