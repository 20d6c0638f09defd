package dto

import "time"

type UserOutput struct {
	ID        string
	Email     string
	Name      string
	ExpiresAt time.Time
	Expired   bool
}
