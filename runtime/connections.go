package runtime

import (
	"context"
	"log/slog"
	"portal-chat/contract"
	"portal-chat/domain"
	"portal-chat/errors"
	"sync"
	"sync/atomic"
)

const userKeySeparator = "\x1f"

// MemoryConnections is the in-process connection registry plus the room and
// user connection indices.
type MemoryConnections struct {
	registry sync.Map // connection id -> domain.Connection
	count    atomic.Int64
	rooms    connectionIndex
	users    connectionIndex
	log      *slog.Logger
}

func NewMemoryConnections(log *slog.Logger) *MemoryConnections {
	return &MemoryConnections{log: log.With(slog.String("component", "connections_inmemory"))}
}

var _ contract.ConnectionStore = (*MemoryConnections)(nil)

func userKey(roomID, userName string) string {
	return roomID + userKeySeparator + nameKey(userName)
}

// PutConnection overwrites any previous entry of the same id.
func (m *MemoryConnections) PutConnection(_ context.Context, conn domain.Connection) error {
	if conn.ID == "" {
		return errors.ErrEmptyConnectionID
	}
	if _, loaded := m.registry.Swap(conn.ID, conn); !loaded {
		m.count.Add(1)
	}
	m.log.Debug("Connection registered", "connectionID", conn.ID, "roomID", conn.RoomID, "user", conn.UserName)
	return nil
}

func (m *MemoryConnections) GetConnection(_ context.Context, connID string) (domain.Connection, bool, error) {
	v, ok := m.registry.Load(connID)
	if !ok {
		return domain.Connection{}, false, nil
	}
	return v.(domain.Connection), true, nil
}

func (m *MemoryConnections) RemoveConnection(_ context.Context, connID string) error {
	if _, loaded := m.registry.LoadAndDelete(connID); loaded {
		m.count.Add(-1)
		m.log.Debug("Connection removed", "connectionID", connID)
	}
	return nil
}

func (m *MemoryConnections) AddRoomConnection(_ context.Context, roomID, connID string) error {
	m.rooms.add(roomID, connID)
	return nil
}

func (m *MemoryConnections) RemoveRoomConnection(_ context.Context, roomID, connID string) error {
	m.rooms.remove(roomID, connID)
	return nil
}

func (m *MemoryConnections) RoomConnections(_ context.Context, roomID string) ([]string, error) {
	return m.rooms.list(roomID), nil
}

func (m *MemoryConnections) AddUserConnection(_ context.Context, roomID, userName, connID string) error {
	m.users.add(userKey(roomID, userName), connID)
	return nil
}

func (m *MemoryConnections) RemoveUserConnection(_ context.Context, roomID, userName, connID string) error {
	m.users.remove(userKey(roomID, userName), connID)
	return nil
}

func (m *MemoryConnections) UserConnections(_ context.Context, roomID, userName string) ([]string, error) {
	return m.users.list(userKey(roomID, userName)), nil
}

func (m *MemoryConnections) CountConnections(_ context.Context) (int, error) {
	return int(m.count.Load()), nil
}
