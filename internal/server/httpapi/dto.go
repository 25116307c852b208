package httpapi

import "github.com/CARE-UiT/Reflectometer/internal/server/models"

// JSON views of the entity structs. Credentials never cross the wire: the
// user view omits digest and salt.

type userView struct {
	ID       int64  `json:"id"`
	UserName string `json:"user_name"`
	Email    string `json:"email"`
}

func toUserView(u *models.User) userView {
	return userView{ID: u.ID, UserName: u.UserName, Email: u.Email}
}

type tokenPairView struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type courseView struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Owner int64  `json:"owner"`
}

func toCourseView(c *models.Course) courseView {
	return courseView{ID: c.ID, Name: c.Name, Owner: c.Owner}
}

type sessionView struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Course int64  `json:"course"`
}

func toSessionView(s *models.Session) sessionView {
	return sessionView{ID: s.ID, Name: s.Name, Course: s.Course}
}

type participantView struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Course int64  `json:"course"`
}

func toParticipantView(p *models.Participant) participantView {
	return participantView{ID: p.ID, Name: p.Name, Course: p.Course}
}

type curveView struct {
	ID          int64   `json:"id"`
	Session     string  `json:"session"`
	Participant *int64  `json:"participant,omitempty"`
	Payload     []byte  `json:"payload,omitempty"`
	BlobKey     *string `json:"blob_key,omitempty"`
}

func toCurveView(c *models.Curve) curveView {
	return curveView{ID: c.ID, Session: c.Session, Participant: c.Participant, Payload: c.Payload, BlobKey: c.BlobKey}
}

type keyMomentView struct {
	ID           int64   `json:"id"`
	Curve        int64   `json:"curve"`
	Session      string  `json:"session"`
	Participant  *int64  `json:"participant,omitempty"`
	XValue       float64 `json:"xvalue"`
	YValue       float64 `json:"yvalue"`
	What         string  `json:"what"`
	When         string  `json:"when"`
	Thoughts     string  `json:"thoughts"`
	Feelings     string  `json:"feelings"`
	Actions      string  `json:"actions"`
	Consequences string  `json:"consequences"`
}

func toKeyMomentView(k *models.KeyMoment) keyMomentView {
	return keyMomentView{
		ID:           k.ID,
		Curve:        k.Curve,
		Session:      k.Session,
		Participant:  k.Participant,
		XValue:       k.XValue,
		YValue:       k.YValue,
		What:         k.What,
		When:         k.When,
		Thoughts:     k.Thoughts,
		Feelings:     k.Feelings,
		Actions:      k.Actions,
		Consequences: k.Consequences,
	}
}
