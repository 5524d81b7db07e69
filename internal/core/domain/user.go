package domain

import "time"

// User models a registered storefront account. Email is stored
// lowercase and is unique across the collection.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Public returns a copy safe to serialize to clients: the password
// hash is stripped regardless of what the caller loaded.
func (u *User) Public() *User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.PasswordHash = ""
	return &clone
}
