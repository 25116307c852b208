package models

// KeyMoment is an annotated point on a curve, with the participant's written
// reflection. Session is denormalized from the curve for O(1) ownership
// resolution; the curve's session stays authoritative when the two disagree.
type KeyMoment struct {
	ID           int64
	Curve        int64
	Session      string
	Participant  *int64
	XValue       float64
	YValue       float64
	What         string
	When         string
	Thoughts     string
	Feelings     string
	Actions      string
	Consequences string
}

// KeyMomentUpdate carries the optional fields a key moment update may change.
type KeyMomentUpdate struct {
	XValue       *float64 `json:"xvalue"`
	YValue       *float64 `json:"yvalue"`
	What         *string  `json:"what"`
	When         *string  `json:"when"`
	Thoughts     *string  `json:"thoughts"`
	Feelings     *string  `json:"feelings"`
	Actions      *string  `json:"actions"`
	Consequences *string  `json:"consequences"`
}
