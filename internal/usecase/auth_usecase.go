// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import "context"

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// CredentialOutput is the issued credential returned after a successful
// registration or login: the opaque bearer token and its validity in
// milliseconds.
type CredentialOutput struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"`
}

// AuthUsecase defines the interface for authentication operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Register stores a new user and issues a credential bound to it.
	// Fails when the email is already on file.
	Register(ctx context.Context, input *RegisterInput) (*CredentialOutput, error)

	// Login verifies the credentials and issues a fresh credential. Unknown
	// email and wrong password fail identically.
	Login(ctx context.Context, input *LoginInput) (*CredentialOutput, error)
}
