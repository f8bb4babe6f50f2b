// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an identity record. The email doubles as the login key and is
// unique across all users. The record is created at registration and never
// mutated by the core afterwards.
type User struct {
	ID           uuid.UUID // Unique identifier, generated by the store.
	Name         string    // Display name.
	Email        string    // Login key, unique.
	PasswordHash string    // bcrypt hash of the password. Never the plaintext.
	Role         Role      // Registration only ever produces RoleUser.
	CreatedAt    time.Time // Set by the store at persist time.
}
