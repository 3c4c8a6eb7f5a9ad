package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Message delivery states.
const (
	MessageStatusPending = "PENDING"
	MessageStatusSent    = "SENT"
	MessageStatusFailed  = "FAILED"
)

// Message is one SMS a seller sent (or tried to send) to a debtor.
type Message struct {
	id        string
	sellerID  string
	debtorID  string
	text      string
	status    string
	sentAt    *time.Time
	createdAt time.Time
}

// NewMessage creates a pending message ready for dispatch.
func NewMessage(sellerID, debtorID, text string, now time.Time) (Message, error) {
	if sellerID == "" {
		return Message{}, errors.New("seller ID is required")
	}
	if debtorID == "" {
		return Message{}, errors.New("debtor ID is required")
	}
	if text == "" {
		return Message{}, errors.New("message text is required")
	}
	return Message{
		id:        uuid.New().String(),
		sellerID:  sellerID,
		debtorID:  debtorID,
		text:      text,
		status:    MessageStatusPending,
		createdAt: now,
	}, nil
}

// ReconstructMessage rebuilds a Message from persistence.
func ReconstructMessage(id, sellerID, debtorID, text, status string, sentAt *time.Time, createdAt time.Time) Message {
	return Message{
		id:        id,
		sellerID:  sellerID,
		debtorID:  debtorID,
		text:      text,
		status:    status,
		sentAt:    sentAt,
		createdAt: createdAt,
	}
}

// MarkSent records a successful delivery.
func (m Message) MarkSent(at time.Time) Message {
	next := m
	next.status = MessageStatusSent
	next.sentAt = &at
	return next
}

// MarkFailed records a delivery failure.
func (m Message) MarkFailed() Message {
	next := m
	next.status = MessageStatusFailed
	return next
}

func (m Message) ID() string           { return m.id }
func (m Message) SellerID() string     { return m.sellerID }
func (m Message) DebtorID() string     { return m.debtorID }
func (m Message) Text() string         { return m.text }
func (m Message) Status() string       { return m.status }
func (m Message) SentAt() *time.Time   { return m.sentAt }
func (m Message) CreatedAt() time.Time { return m.createdAt }

// MessageTemplate is a reusable SMS text a seller keeps for common
// reminders. Admin-owned templates have an empty seller ID and are visible
// to every seller.
type MessageTemplate struct {
	id        string
	sellerID  string
	text      string
	createdAt time.Time
	updatedAt time.Time
}

// NewMessageTemplate creates a template. An empty sellerID makes it global.
func NewMessageTemplate(sellerID, text string, now time.Time) (MessageTemplate, error) {
	if text == "" {
		return MessageTemplate{}, errors.New("template text is required")
	}
	return MessageTemplate{
		id:        uuid.New().String(),
		sellerID:  sellerID,
		text:      text,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructMessageTemplate rebuilds a MessageTemplate from persistence.
func ReconstructMessageTemplate(id, sellerID, text string, createdAt, updatedAt time.Time) MessageTemplate {
	return MessageTemplate{
		id:        id,
		sellerID:  sellerID,
		text:      text,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// UpdateText replaces the template body.
func (t MessageTemplate) UpdateText(text string, now time.Time) (MessageTemplate, error) {
	if text == "" {
		return t, errors.New("template text is required")
	}
	next := t
	next.text = text
	next.updatedAt = now
	return next, nil
}

// IsGlobal reports whether the template is admin-owned and shared.
func (t MessageTemplate) IsGlobal() bool { return t.sellerID == "" }

// VisibleTo reports whether a seller may use the template.
func (t MessageTemplate) VisibleTo(sellerID string) bool {
	return t.IsGlobal() || t.sellerID == sellerID
}

func (t MessageTemplate) ID() string           { return t.id }
func (t MessageTemplate) SellerID() string     { return t.sellerID }
func (t MessageTemplate) Text() string         { return t.text }
func (t MessageTemplate) CreatedAt() time.Time { return t.createdAt }
func (t MessageTemplate) UpdatedAt() time.Time { return t.updatedAt }
