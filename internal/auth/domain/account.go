package domain

import "time"

type Account struct {
	ID             string
	PasswordHash   string
	Nickname       string
	Email          string
	Role           string
	RequiresStepUp bool
	// Locked is the account store's administrative lock, surfaced here for
	// callers that render account state. Login throttling is enforced by the
	// TTL-bound attempt counter, which clears itself when the window expires;
	// this flag is owned and acted on by the admin surface, never flipped or
	// consulted on the login path.
	Locked         bool
	Dormant        bool
	Withdrawn      bool
	LastLoginAt    time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ProfileIncomplete reports whether optional profile fields are still blank.
// Presentation concern only; it never affects an authentication decision.
func (a *Account) ProfileIncomplete() bool {
	return a.Nickname == "" || a.Email == ""
}

type LoginHistoryRecord struct {
	ID          string
	AccountID   string
	IPAddress   string
	CountryCode string
	CreatedAt   time.Time
}
