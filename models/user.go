// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Roles known to the service. Role is a free-form string column; these are
// the values the authorization layer compares against.
const (
	RoleSimpleUser = "simple_user"
	RoleAdmin      = "admin"
)

// User represents an account entity used for authentication and authorization.
// PasswordHash is a bcrypt hash and is never serialized.
type User struct {
	// ID is the surrogate key assigned by the database.
	ID int64 `json:"id"`

	// Username is the unique login name of the user.
	Username string `json:"username"`

	// PasswordHash is the bcrypt hash of the user's password.
	// It is excluded from JSON and must never leave the server.
	PasswordHash string `json:"-"`

	// IsStaff marks staff accounts. It is read-only through the API.
	IsStaff bool `json:"is_staff"`

	// Role is the authorization role of the user, "simple_user" by default.
	Role string `json:"role"`
}

// UserCreate is the request body accepted when registering a new user.
type UserCreate struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// UserUpdate is the request body for editing a user. Empty fields keep
// their current values.
type UserUpdate struct {
	Username string `json:"username,omitempty"`
	Role     string `json:"role,omitempty"`
}

// Credentials is the identity material extracted from an Authorization
// header. Either Token is set (bearer scheme), or Username/Password are
// set (basic scheme). In the basic scheme Username may also carry a token.
type Credentials struct {
	Token    string
	Username string
	Password string
}
