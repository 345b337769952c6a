// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"quill/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
// The plaintext password lives only for the duration of the call.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the issued bearer token after a successful login.
type LoginOutput struct {
	Message string
	Token   string
	User    *entity.User
}

// AuthUsecase defines the interface for credential-related business operations.
// This is the contract the delivery layer depends on.
type AuthUsecase interface {
	// Register hashes the password and creates the user account.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Login verifies credentials and issues a bearer token. An unknown
	// email and a wrong password are indistinguishable in the returned
	// error: both carry the same status and client message.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}
