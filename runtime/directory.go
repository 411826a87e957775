package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"portal-chat/contract"
	"portal-chat/domain"
	"portal-chat/errors"
	"slices"
	"strings"
	"sync"
)

// Directory maps room ids to room metadata and to the users of each room.
// The room map has its own lock; each room guards its user set with a
// dedicated lock so that membership changes of different rooms never contend.
type Directory struct {
	mu    sync.RWMutex
	rooms map[string]*roomEntry
	log   *slog.Logger
}

type roomEntry struct {
	mu    sync.RWMutex
	room  domain.Room
	users map[string]domain.User // keyed by lower-cased user name
}

func NewDirectory(log *slog.Logger) *Directory {
	return &Directory{
		rooms: make(map[string]*roomEntry),
		log:   log.With(slog.String("component", "directory_inmemory")),
	}
}

var (
	_ contract.RoomDirectory  = (*Directory)(nil)
	_ contract.UserMembership = (*Directory)(nil)
)

func nameKey(userName string) string {
	return strings.ToLower(userName)
}

func (d *Directory) entry(roomID string) (*roomEntry, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	e, ok := d.rooms[roomID]
	return e, ok
}

func (d *Directory) FindRoom(_ context.Context, roomID string) (domain.Room, bool, error) {
	e, ok := d.entry(roomID)
	if !ok {
		return domain.Room{}, false, nil
	}
	return e.room.Clone(), true, nil
}

// CreateRoom refuses to overwrite an existing id.
func (d *Directory) CreateRoom(_ context.Context, room domain.Room) error {
	if room.ID == "" {
		return errors.ErrInvalidRoomReference
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, exists := d.rooms[room.ID]; exists {
		return fmt.Errorf("room %s: %w", room.ID, errors.ErrDuplicateRoom)
	}
	d.rooms[room.ID] = &roomEntry{
		room:  room.Clone(),
		users: make(map[string]domain.User),
	}
	d.log.Info("Room created", "roomID", room.ID, "pageID", room.PageID)
	return nil
}

// DeleteRoom drops the room and whatever users are left in it.
func (d *Directory) DeleteRoom(_ context.Context, roomID string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.rooms[roomID]; !ok {
		return nil
	}
	delete(d.rooms, roomID)
	d.log.Info("Room deleted", "roomID", roomID)
	return nil
}

func (d *Directory) ListRooms(_ context.Context) ([]domain.Room, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	rooms := make([]domain.Room, 0, len(d.rooms))
	for _, e := range d.rooms {
		rooms = append(rooms, e.room.Clone())
	}
	slices.SortFunc(rooms, func(a, b domain.Room) int { return strings.Compare(a.ID, b.ID) })
	return rooms, nil
}

// ListUsers returns an empty slice for unknown rooms.
func (d *Directory) ListUsers(_ context.Context, roomID string) ([]domain.User, error) {
	e, ok := d.entry(roomID)
	if !ok {
		return []domain.User{}, nil
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	users := make([]domain.User, 0, len(e.users))
	for _, u := range e.users {
		users = append(users, u)
	}
	slices.SortFunc(users, func(a, b domain.User) int { return strings.Compare(a.Name, b.Name) })
	return users, nil
}

// FindUser compares names case-insensitively.
func (d *Directory) FindUser(_ context.Context, roomID, userName string) (domain.User, bool, error) {
	e, ok := d.entry(roomID)
	if !ok {
		return domain.User{}, false, nil
	}
	e.mu.RLock()
	defer e.mu.RUnlock()
	u, ok := e.users[nameKey(userName)]
	return u, ok, nil
}

func (d *Directory) AddUser(_ context.Context, roomID string, user domain.User) error {
	if user.Name == "" {
		return errors.ErrEmptyUserName
	}
	e, ok := d.entry(roomID)
	if !ok {
		return fmt.Errorf("room %s: %w", roomID, errors.ErrRoomNotFound)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	key := nameKey(user.Name)
	if _, exists := e.users[key]; exists {
		return fmt.Errorf("user %s in room %s: %w", user.Name, roomID, errors.ErrDuplicateUser)
	}
	user.RoomID = roomID
	e.users[key] = user
	d.log.Debug("User added", "roomID", roomID, "user", user.Name, "role", user.Role.String())
	return nil
}

// RemoveUser is a no-op for unknown rooms or users.
func (d *Directory) RemoveUser(_ context.Context, roomID, userName string) error {
	e, ok := d.entry(roomID)
	if !ok {
		return nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, exists := e.users[nameKey(userName)]; !exists {
		return nil
	}
	delete(e.users, nameKey(userName))
	d.log.Debug("User removed", "roomID", roomID, "user", userName)
	return nil
}
