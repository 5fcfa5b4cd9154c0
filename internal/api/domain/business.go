package domain

import "time"

type Business struct {
	ID          string
	OwnerUserID string
	Name        string
	Location    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
