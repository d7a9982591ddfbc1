package entity

import "time"

// MessageTemplate is a named message body with {{placeholder}} markers,
// resolved by the workflow dispatcher.
type MessageTemplate struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Channel   string    `json:"channel"` // email or sms
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	UpdatedAt time.Time `json:"updated_at"`
}
