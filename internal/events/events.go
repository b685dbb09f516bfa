// Package events is the in-process domain event bus. Handlers publish facts
// about what happened (a contact request, a waitlist signup, a registration)
// and subscribers fan them out to email and the activity log without the
// HTTP handler waiting on either.
package events

import "encoding/json"

// Topics. One per domain fact.
const (
	TopicContactSubmitted = "contact.submitted"
	TopicWaitlistJoined   = "waitlist.joined"
	TopicUserRegistered   = "user.registered"
)

// ContactSubmitted is published after a contact request is stored.
type ContactSubmitted struct {
	RequestID    string `json:"request_id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Organization string `json:"organization,omitempty"`
	Message      string `json:"message"`
}

// WaitlistJoined is published after a waitlist signup is stored.
type WaitlistJoined struct {
	SignupID string `json:"signup_id"`
	Email    string `json:"email"`
	Feature  string `json:"feature"`
	Source   string `json:"source,omitempty"`
}

// UserRegistered is published after an account is created.
type UserRegistered struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	FullName string `json:"full_name,omitempty"`
}

// Envelope is what subscribers receive.
type Envelope struct {
	Topic    string
	Payload  []byte
	Metadata map[string]string
}

// Decode unmarshals the payload into v.
func (e Envelope) Decode(v any) error {
	return json.Unmarshal(e.Payload, v)
}
