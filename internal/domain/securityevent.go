package domain

import "time"

// ActivityType classifies a security event.
type ActivityType string

// Known activity types. The persisted log format files account creation
// events under ActivitySecurityProtocol and logout events under
// ActivityLogin.
const (
	ActivityLogin            ActivityType = "login"
	ActivityTransfer         ActivityType = "transfer"
	ActivityHackAttempt      ActivityType = "hack_attempt"
	ActivitySecurityProtocol ActivityType = "security_protocol"
)

// SystemUserID marks events that cannot be attributed to an account,
// such as failed logins.
const SystemUserID = "0"

// SecurityEvent is one entry of the append-only security log.
// Entries are immutable and ordered newest first.
type SecurityEvent struct {
	ID           string       `json:"id"`
	UserID       string       `json:"userId"`
	ActivityType ActivityType `json:"activityType"`
	Description  string       `json:"description"`
	Success      bool         `json:"success"`
	CreatedAt    time.Time    `json:"timestamp"`
}
