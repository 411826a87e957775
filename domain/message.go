// Package domain contains core concepts of the portal chat.
// This file defines Message events and related rules.
// Messages are transient: they are relayed, never stored by the core.
package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	// OutboundMarker is appended to the audit text of messages sent by the admin.
	OutboundMarker = ">> "
	// InboundMarker is prepended to the audit text of messages sent to the admin.
	InboundMarker = "<< "
)

// Direction tells the audit log whether the operator took part in a message.
type Direction string

const (
	DirectionNone     Direction = "none"
	DirectionOutbound Direction = "admin-outbound"
	DirectionInbound  Direction = "admin-inbound"
)

// Message is a chat message between two users of the same room.
type Message struct {
	ID        uuid.UUID
	RoomID    string
	From      User
	To        User
	Body      string
	CreatedAt time.Time
}

func NewMessage(roomID string, from, to User, body string) Message {
	return Message{
		ID:        uuid.New(),
		RoomID:    roomID,
		From:      from,
		To:        to,
		Body:      body,
		CreatedAt: time.Now().UTC(),
	}
}

// Direction is outbound when the admin sends, inbound when the admin receives.
func (m Message) Direction() Direction {
	switch {
	case m.From.IsAdmin():
		return DirectionOutbound
	case m.To.IsAdmin():
		return DirectionInbound
	default:
		return DirectionNone
	}
}

// TaggedBody returns the body with the direction marker used by the audit log.
func (m Message) TaggedBody() string {
	switch m.Direction() {
	case DirectionOutbound:
		return m.Body + OutboundMarker
	case DirectionInbound:
		return InboundMarker + m.Body
	default:
		return m.Body
	}
}

// Visitor is the non-admin side of the conversation, used to key transcripts.
func (m Message) Visitor() User {
	if m.From.IsAdmin() {
		return m.To
	}
	return m.From
}
