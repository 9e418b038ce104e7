// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account able to sign in and own cars.
// Users are created on signup and never modified afterwards.
type User struct {
	ID           uuid.UUID `json:"id"`        // The Global Unique Identifier (GUID) for the user.
	Username     string    `json:"username"`  // Display name chosen at signup, unique.
	Email        string    `json:"email"`     // Login identifier, unique.
	PasswordHash string    `json:"-"`         // bcrypt hash, never serialised.
	CreatedAt    time.Time `json:"createdAt"` // Timestamp of when this user account was created.
	UpdatedAt    time.Time `json:"updatedAt"` // Timestamp of the last modification to this user's data.
}
