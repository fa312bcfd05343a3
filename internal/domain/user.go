// Package domain contains the core data types for the Rihla API.
// This package has zero external dependencies beyond struct tags and is
// imported by every other internal package (repo, service, handler).
package domain

import "time"

// User represents a registered account.
// Password holds the bcrypt hash, never the plaintext; it is excluded from
// JSON so a User can be returned from handlers as-is.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Credentials is the login request body.
type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Registration is the register request body.
// The password length floor matches what bcrypt can usefully protect;
// the ceiling is bcrypt's 72-byte input limit.
type Registration struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
}
