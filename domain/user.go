package domain

import (
	"strings"
	"time"
)

// Role tags a chat user. The admin is a regular user record with the Admin
// role so that name uniqueness and lookups stay uniform.
type Role int

const (
	RoleVisitor Role = iota
	RoleAdmin
)

func (r Role) String() string {
	if r == RoleAdmin {
		return "admin"
	}
	return "visitor"
}

// User is a named participant of a room. It is not an authentication
// identity. RoomID is a back-reference by value only.
type User struct {
	Name      string
	RoomID    string
	ContactID string // optional, owned by the external contact directory
	ClientID  string
	IPAddress string
	Nickname  string
	Role      Role
	JoinedAt  time.Time
}

func NewVisitor(roomID, name, clientID, ip, nickname string) User {
	return User{
		Name:      name,
		RoomID:    roomID,
		ClientID:  clientID,
		IPAddress: ip,
		Nickname:  nickname,
		Role:      RoleVisitor,
		JoinedAt:  time.Now().UTC(),
	}
}

// NewAdmin builds the admin user of a room.
func NewAdmin(room Room, nickname string) User {
	return User{
		Name:     room.AdminUserName,
		RoomID:   room.ID,
		ClientID: room.AdminUserName,
		Nickname: nickname,
		Role:     RoleAdmin,
		JoinedAt: time.Now().UTC(),
	}
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// SameName reports whether both names designate the same user of a room.
func (u User) SameName(name string) bool {
	return strings.EqualFold(u.Name, name)
}
