package domain

// Notification is one entry in the user's notification feed.
type Notification struct {
	ID        int    `json:"id"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}
