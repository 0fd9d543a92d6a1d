package domain

import "time"

// Notification is an inbox alert shown on the dashboard.
//
// Time is derived from CreatedAt on every read and is never part of the
// persisted record; the store only ever sees it empty.
type Notification struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Time      string    `json:"time,omitempty"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
