// Package models defines the server-side entity structs shared by
// repositories and services.
package models

import "time"

// User is an instructor identity. UserName is the uniqueness and login key;
// Email is stored for contact purposes only. Digest and Salt are written once
// at registration and never rotated.
type User struct {
	ID        int64
	UserName  string
	Email     string
	Digest    []byte
	Salt      []byte
	CreatedAt time.Time
}
