package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRoom_Derives_Identity_From_Portal(t *testing.T) {
	req := require.New(t)
	portal := Portal{ID: "42", URI: "acme.example", ProjectID: "p-1", Owners: []string{"owner@acme.example"}}
	page := Page{ID: "7", PortalID: "42", URI: "home"}

	room := NewRoom(portal, page)

	req.Equal("42", room.ID)
	req.Equal("7", room.PageID)
	req.Equal("p-1", room.ProjectID)
	req.Equal("portal-42", room.AdminUserName)
	req.Equal([]string{"owner@acme.example"}, room.Owners)

	// The room does not share the owner slice with the portal
	portal.Owners[0] = "changed"
	req.Equal("owner@acme.example", room.Owners[0])
}

func TestRoom_IsAdminName_Ignores_Case(t *testing.T) {
	req := require.New(t)
	room := Room{AdminUserName: "portal-42"}

	req.True(room.IsAdminName("PORTAL-42"))
	req.False(room.IsAdminName("portal-43"))
	req.False(Room{}.IsAdminName(""))
}

func TestGenerateClientID(t *testing.T) {
	tests := []struct {
		name string
		ip   string
		want string
	}{
		{"ipv4", "203.0.113.7", "73110302"},
		{"ipv6", "2001:db8::1", "18bd1002"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, GenerateClientID(tt.ip))
		})
	}
}

func TestGenerateClientID_Is_Deterministic(t *testing.T) {
	require.Equal(t, GenerateClientID("198.51.100.23"), GenerateClientID("198.51.100.23"))
}
