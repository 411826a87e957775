//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"portal-chat/domain"
)

// RoomDirectory is the room CRUD capability of a store.
type RoomDirectory interface {
	FindRoom(ctx context.Context, roomID string) (domain.Room, bool, error)
	// CreateRoom fails with errors.ErrDuplicateRoom instead of overwriting.
	CreateRoom(ctx context.Context, room domain.Room) error
	DeleteRoom(ctx context.Context, roomID string) error
	ListRooms(ctx context.Context) ([]domain.Room, error)
}

// UserMembership is the per-room user set capability of a store.
type UserMembership interface {
	ListUsers(ctx context.Context, roomID string) ([]domain.User, error)
	FindUser(ctx context.Context, roomID, userName string) (domain.User, bool, error)
	// AddUser fails with errors.ErrDuplicateUser when the name is taken.
	AddUser(ctx context.Context, roomID string, user domain.User) error
	RemoveUser(ctx context.Context, roomID, userName string) error
}

// ConnectionStore holds the connection registry and both connection indices.
// Index listings return an empty slice, never nil, for unknown keys.
type ConnectionStore interface {
	PutConnection(ctx context.Context, conn domain.Connection) error
	GetConnection(ctx context.Context, connID string) (domain.Connection, bool, error)
	RemoveConnection(ctx context.Context, connID string) error

	AddRoomConnection(ctx context.Context, roomID, connID string) error
	RemoveRoomConnection(ctx context.Context, roomID, connID string) error
	RoomConnections(ctx context.Context, roomID string) ([]string, error)

	AddUserConnection(ctx context.Context, roomID, userName, connID string) error
	RemoveUserConnection(ctx context.Context, roomID, userName, connID string) error
	UserConnections(ctx context.Context, roomID, userName string) ([]string, error)

	CountConnections(ctx context.Context) (int, error)
}

// Store groups the stateful capabilities used by the orchestrator.
type Store interface {
	RoomDirectory
	UserMembership
	ConnectionStore
}

// MessageRelay forwards a message to the audit log without keeping it.
type MessageRelay interface {
	Relay(ctx context.Context, room domain.Room, msg domain.Message) (domain.AuditEntry, error)
}

// PortalDirectory resolves tenants and their pages.
type PortalDirectory interface {
	FindPortalByURI(ctx context.Context, uri string) (domain.Portal, bool, error)
	FindPageByURI(ctx context.Context, portal domain.Portal, uri string) (domain.Page, bool, error)
}

// ContactDirectory upgrades a visitor name to a known CRM contact.
type ContactDirectory interface {
	FindContactByUserName(ctx context.Context, room domain.Room, userName string) (domain.Contact, bool, error)
}

// AuditLog receives every relayed message, the audience being the owners to notify.
type AuditLog interface {
	Log(ctx context.Context, entry domain.AuditEntry, audience []string) error
}

// HistoryQuery rebuilds a visitor transcript, oldest first.
type HistoryQuery interface {
	FindAllMessages(ctx context.Context, projectID, clientID string, offset, limit int) ([]domain.HistoryMessage, error)
}

// TranscriptSearch runs full-text queries over the transcripts of a project.
type TranscriptSearch interface {
	Search(ctx context.Context, projectID, query string, limit int) ([]domain.HistoryMessage, error)
}
