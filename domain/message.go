package domain

import "time"

// Record type discriminators carried in the persisted document.
const (
	TypeNotification = "notification"
	TypeMessage      = "message"
	TypeAIReminder   = "ai_reminder"
)

// Moods attached to assistant-generated messages.
const (
	MoodEnergetic  = "energetic"
	MoodSupportive = "supportive"
	MoodFriendly   = "friendly"
)

// Message is an inbox message. Title, Mood and AIGenerated are only set on
// synthetic messages produced by the reminder assistant; user-created messages
// carry just a sender and a body.
type Message struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Sender      string    `json:"sender"`
	Title       string    `json:"title,omitempty"`
	Body        string    `json:"message"`
	Time        string    `json:"time,omitempty"`
	IsRead      bool      `json:"isRead"`
	AIGenerated bool      `json:"aiGenerated,omitempty"`
	Mood        string    `json:"mood,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
