package models

// Course groups sessions and participants under a single owning user.
// Owner is set at creation and immutable.
type Course struct {
	ID    int64
	Name  string
	Owner int64
}

// CourseUpdate carries the optional fields a course update may change.
// Nil fields are left untouched.
type CourseUpdate struct {
	Name *string `json:"name"`
}
