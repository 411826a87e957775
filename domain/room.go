// Package domain contains core concepts of the portal chat.
// This file defines Room, the chat session of one tenant portal.
// No runtime, network, or storage logic should be added here.
package domain

import (
	"strings"
	"time"
)

const adminUserPrefix = "portal-"

// Room is a value snapshot of a chat room. The user set lives in the
// directory, keyed by RoomID, never inside the Room itself.
type Room struct {
	ID            string
	PortalID      string
	PageID        string
	ProjectID     string // optional
	AdminUserName string
	Owners        []string // accounts notified of admin-routed messages
	CreatedAt     time.Time
}

// NewRoom builds the room of a portal. The room id is the portal id and the
// admin user name is derived from it.
func NewRoom(portal Portal, page Page) Room {
	return Room{
		ID:            portal.ID,
		PortalID:      portal.ID,
		PageID:        page.ID,
		ProjectID:     portal.ProjectID,
		AdminUserName: AdminUserName(portal.ID),
		Owners:        append([]string(nil), portal.Owners...),
		CreatedAt:     time.Now().UTC(),
	}
}

// AdminUserName is the user name of the single admin identity of a portal room.
func AdminUserName(portalID string) string {
	return adminUserPrefix + portalID
}

// IsAdminName compares case-insensitively with the admin user name.
func (r Room) IsAdminName(userName string) bool {
	return r.AdminUserName != "" && strings.EqualFold(r.AdminUserName, userName)
}

// Clone returns a copy that shares no slices with r.
func (r Room) Clone() Room {
	r.Owners = append([]string(nil), r.Owners...)
	return r
}
