package model

// MessageRecord represents one persisted guestbook message.
// This is a pure domain model with no database-specific dependencies or tags.
// Date is the server-generated timestamp in "YYYY-MM-DD HH:MM:SS.ffffff" form;
// records are append-only and never updated or read back by this system.
type MessageRecord struct {
	ID       string `json:"id"`
	Date     string `json:"date"`
	Username string `json:"username"`
	Message  string `json:"message"`
}
