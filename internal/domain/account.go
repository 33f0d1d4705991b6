// Package domain provides definitions of all entities.
package domain

import (
	"errors"
	"time"
)

var (
	// ErrAccountNotFound indicates that the account is not found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrUsernameAlreadyExists indicates that an account with the given username already exists.
	ErrUsernameAlreadyExists = errors.New("username already exists")
	// ErrInvalidCredentials indicates that no account matches the given username and password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidBalance indicates an unparseable or negative opening balance.
	ErrInvalidBalance = errors.New("invalid balance")
)

// Account holds identity and balance data for a single user.
//
// Password is kept in plain text: credential hashing is out of scope for
// this demo bank, and the directory is the only layer allowed to see it.
type Account struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"password"`
	Email     string    `json:"email"`
	Balance   string    `json:"balance"`
	CreatedAt time.Time `json:"creationDate"`
}

// Profile is Account data excluding the credential secret. It is the only
// account shape that leaves the directory layer.
type Profile struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Balance   string    `json:"balance"`
	CreatedAt time.Time `json:"creationDate"`
}
