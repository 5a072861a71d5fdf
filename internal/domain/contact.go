package domain

import (
	"time"

	"github.com/google/uuid"
)

type ContactStatus string

const (
	ContactStatusNew     ContactStatus = "new"
	ContactStatusRead    ContactStatus = "read"
	ContactStatusReplied ContactStatus = "replied"
)

// ContactMessage is one submission of the public contact form. Messages are
// never deleted; the only transition is new -> read.
type ContactMessage struct {
	ID             uuid.UUID     `json:"id"`
	Name           string        `json:"name"`
	Email          string        `json:"email"`
	Subject        string        `json:"subject"`
	Message        string        `json:"message"`
	RecipientEmail string        `json:"recipient_email"`
	Status         ContactStatus `json:"status"`
	SourceIP       string        `json:"source_ip,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
}

// ContactInput is the public contact-form payload. RecipientEmail is
// optional; the service fills in the configured default when it is empty.
type ContactInput struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Subject        string `json:"subject"`
	Message        string `json:"message"`
	RecipientEmail string `json:"recipient_email,omitempty"`
}
