package models

import "time"

// RefreshToken is a server-stored, single-use token that can be exchanged
// for a fresh access/refresh pair until it expires.
type RefreshToken struct {
	UserID  int64
	Token   string
	Expires time.Time
}
