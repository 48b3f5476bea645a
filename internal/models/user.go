package models

// Usuario represents a user in the system
type Usuario struct {
	ID             int64  `json:"id"`
	Email          string `json:"email"`
	HashedPassword string `json:"-"` // Not serialized
}
