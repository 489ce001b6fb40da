package ticket

import (
	"fmt"
	"time"
)

// AuthorKind identifies who wrote a ticket message.
type AuthorKind string

const (
	AuthorReporter AuthorKind = "reporter"
	AuthorStaff    AuthorKind = "staff"
)

func (k AuthorKind) IsValid() bool {
	return k == AuthorReporter || k == AuthorStaff
}

// Message is an append-only entry in a ticket's public conversation thread.
type Message struct {
	id         uint
	ticketID   uint
	authorKind AuthorKind
	authorName string
	body       string
	createdAt  time.Time
}

func NewMessage(ticketID uint, authorKind AuthorKind, authorName, body string) (*Message, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if !authorKind.IsValid() {
		return nil, fmt.Errorf("invalid author kind: %s", authorKind)
	}
	if len(authorName) == 0 {
		return nil, fmt.Errorf("author name is required")
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("message body is required")
	}
	if len(body) > 2000 {
		return nil, fmt.Errorf("message body exceeds maximum length of 2000 characters")
	}

	return &Message{
		ticketID:   ticketID,
		authorKind: authorKind,
		authorName: authorName,
		body:       body,
		createdAt:  time.Now(),
	}, nil
}

func ReconstructMessage(
	id uint,
	ticketID uint,
	authorKind AuthorKind,
	authorName, body string,
	createdAt time.Time,
) (*Message, error) {
	if id == 0 {
		return nil, fmt.Errorf("message ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	return &Message{
		id:         id,
		ticketID:   ticketID,
		authorKind: authorKind,
		authorName: authorName,
		body:       body,
		createdAt:  createdAt,
	}, nil
}

func (m *Message) ID() uint               { return m.id }
func (m *Message) TicketID() uint         { return m.ticketID }
func (m *Message) AuthorKind() AuthorKind { return m.authorKind }
func (m *Message) AuthorName() string     { return m.authorName }
func (m *Message) Body() string           { return m.body }
func (m *Message) CreatedAt() time.Time   { return m.createdAt }

func (m *Message) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("message ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("message ID cannot be zero")
	}
	m.id = id
	return nil
}
