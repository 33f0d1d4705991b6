package domain

import "errors"

// ErrSessionNotFound indicates that no session is active.
var ErrSessionNotFound = errors.New("no active session")

// A session is represented by the Profile of the authenticated account.
// At most one session is active per process; the session store keeps the
// profile in sync with the directory on every balance change.
