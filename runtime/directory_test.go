package runtime

import (
	"context"
	"log/slog"
	"portal-chat/domain"
	"portal-chat/errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestRoom() domain.Room {
	return domain.NewRoom(
		domain.Portal{ID: "acme", URI: "acme.example", Owners: []string{"owner@acme.example"}},
		domain.Page{ID: "home-id", PortalID: "acme", URI: "home"},
	)
}

func TestDirectory_CreateRoom_Refuses_Duplicate(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	directory := NewDirectory(slog.New(slog.DiscardHandler))
	room := newTestRoom()

	req.NoError(directory.CreateRoom(ctx, room))

	// When the same id is created again
	err := directory.CreateRoom(ctx, room)

	// Then the existing room is kept
	req.ErrorIs(err, errors.ErrDuplicateRoom)
	found, ok, err := directory.FindRoom(ctx, room.ID)
	req.NoError(err)
	req.True(ok)
	req.Equal(room.PageID, found.PageID)
}

func TestDirectory_AddUser_Names_Are_Unique_Case_Insensitive(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	directory := NewDirectory(slog.New(slog.DiscardHandler))
	room := newTestRoom()
	req.NoError(directory.CreateRoom(ctx, room))

	req.NoError(directory.AddUser(ctx, room.ID, domain.NewVisitor(room.ID, "Alice", "", "", "Alice")))

	// When a second user with the same name joins
	err := directory.AddUser(ctx, room.ID, domain.NewVisitor(room.ID, "alice", "", "", "alice"))

	// Then it is rejected
	req.ErrorIs(err, errors.ErrDuplicateUser)
	users, err := directory.ListUsers(ctx, room.ID)
	req.NoError(err)
	req.Len(users, 1)

	user, ok, err := directory.FindUser(ctx, room.ID, "ALICE")
	req.NoError(err)
	req.True(ok)
	req.Equal("Alice", user.Name)
}

func TestDirectory_AddUser_Unknown_Room(t *testing.T) {
	req := require.New(t)
	directory := NewDirectory(slog.New(slog.DiscardHandler))

	err := directory.AddUser(context.Background(), "ghost", domain.NewVisitor("ghost", "bob", "", "", ""))
	req.ErrorIs(err, errors.ErrRoomNotFound)

	err = directory.AddUser(context.Background(), "ghost", domain.User{})
	req.ErrorIs(err, errors.ErrEmptyUserName)
}

func TestDirectory_RemoveUser_Absent_Is_Noop(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	directory := NewDirectory(slog.New(slog.DiscardHandler))
	room := newTestRoom()
	req.NoError(directory.CreateRoom(ctx, room))

	req.NoError(directory.RemoveUser(ctx, room.ID, "nobody"))
	req.NoError(directory.RemoveUser(ctx, "ghost", "nobody"))
}

func TestDirectory_DeleteRoom_Drops_Users(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	directory := NewDirectory(slog.New(slog.DiscardHandler))
	room := newTestRoom()
	req.NoError(directory.CreateRoom(ctx, room))
	req.NoError(directory.AddUser(ctx, room.ID, domain.NewAdmin(room, "Support")))

	// When the room is deleted
	req.NoError(directory.DeleteRoom(ctx, room.ID))

	// Then neither the room nor its users are reachable
	_, ok, err := directory.FindRoom(ctx, room.ID)
	req.NoError(err)
	req.False(ok)
	users, err := directory.ListUsers(ctx, room.ID)
	req.NoError(err)
	req.NotNil(users)
	req.Empty(users)
	rooms, err := directory.ListRooms(ctx)
	req.NoError(err)
	req.Empty(rooms)
}

func TestDirectory_FindRoom_Returns_Copy(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	directory := NewDirectory(slog.New(slog.DiscardHandler))
	room := newTestRoom()
	req.NoError(directory.CreateRoom(ctx, room))

	found, _, _ := directory.FindRoom(ctx, room.ID)
	found.Owners[0] = "intruder"

	again, _, _ := directory.FindRoom(ctx, room.ID)
	req.Equal("owner@acme.example", again.Owners[0])
}
