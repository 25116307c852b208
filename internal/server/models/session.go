package models

// Session is a single reflectometer run under a course. Its ID is a random
// UUID so that identifiers are collision-resistant and never reused after
// deletion. A session's effective owner is its course's owner; ownership is
// never stored on the session itself.
type Session struct {
	ID     string
	Name   string
	Course int64
}

// SessionUpdate carries the optional fields a session update may change.
type SessionUpdate struct {
	Name *string `json:"name"`
}
