package domain

import "time"

// Notification is a delivery record of one system event to one user. Rows are
// created by the notification fan-out and mutated only by the recipient
// marking them read.
type Notification struct {
	ID        string
	UserID    string
	Message   string
	Link      *string
	Read      bool
	CreatedAt time.Time
}
