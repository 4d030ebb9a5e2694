package models

import (
	"time"
)

// UserDB represents a user row in the database
type UserDB struct {
	ID        int64     `json:"id" db:"id"`                 // Primary key
	Email     string    `json:"email" db:"email"`           // Unique email, stored lowercase
	Password  string    `json:"-" db:"password"`            // bcrypt password hash, never serialized
	Name      string    `json:"name" db:"name"`             // Display name
	Role      string    `json:"role" db:"role"`             // Role, e.g. "user" or "admin"
	Balance   float64   `json:"balance" db:"balance"`       // Account balance
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Timestamp when the user was created
}

// User is the public user profile returned by auth endpoints
type User struct {
	ID      int64   `json:"id"`      // User identifier
	Email   string  `json:"email"`   // Email
	Name    string  `json:"name"`    // Display name
	Role    string  `json:"role"`    // Role
	Balance float64 `json:"balance"` // Account balance
}

// Profile returns the public view of a stored user.
func (u *UserDB) Profile() *User {
	return &User{
		ID:      u.ID,
		Email:   u.Email,
		Name:    u.Name,
		Role:    u.Role,
		Balance: u.Balance,
	}
}
