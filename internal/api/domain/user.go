package domain

import "time"

// User mirrors an identity-provider account. ID is the provider's subject
// claim; the record exists so the app can hang profile and business data off
// it, not to authenticate anyone.
type User struct {
	ID                string
	Email             string
	Name              string
	BusinessName      string
	DefaultBusinessID string // empty until the user creates a business
	Location          string
	Phone             string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
