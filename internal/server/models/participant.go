package models

// Participant is a named member of a course. Participants are not identities:
// they hold no credentials and cannot authenticate.
type Participant struct {
	ID     int64
	Name   string
	Course int64
}
