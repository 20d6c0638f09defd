package domain

import (
	"fmt"
	"time"
)

// User is the platform identity decoded from the stored token.
type User struct {
	ID        string
	Email     string
	Name      string
	ExpiresAt time.Time
}

func (u User) Validate() error {
	if u.ID == "" {
		return fmt.Errorf("user id is required")
	}
	return nil
}

// Expired reports whether the token behind this identity has lapsed.
// A zero expiry means the token carried no exp claim and is treated as live.
func (u User) Expired(now time.Time) bool {
	return !u.ExpiresAt.IsZero() && now.After(u.ExpiresAt)
}
