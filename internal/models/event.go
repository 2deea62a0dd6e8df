package models

// RegistrationEvent is published after the storefront API accepts a registration.
type RegistrationEvent struct {
	EventID   string `json:"event_id"`   // EventID is a unique identifier for the event.
	Timestamp int64  `json:"timestamp"`  // Timestamp is the Unix timestamp (in seconds) of the acknowledgment.
	SessionID string `json:"session_id"` // SessionID is the client session the form belonged to.
	Username  string `json:"username"`   // Username is the registered e-mail address.
	Country   string `json:"country"`    // Country is the shipping country.
	Operation string `json:"operation"`  // Operation is always "registered".
}
