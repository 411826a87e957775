package runtime

import (
	"context"
	"log/slog"
	"portal-chat/domain"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestRedisClient(t *testing.T) *redis.Client {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func newTestRedisConnections(t *testing.T) *RedisConnections {
	t.Helper()
	return NewRedisConnections(newTestRedisClient(t), "portal-chat-test:", "node-1", slog.New(slog.DiscardHandler))
}

func TestRedisConnections_Registry_And_Indices(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	conns := newTestRedisConnections(t)

	// Given a connection registered in every index
	conn := domain.NewConnection("conn-1", "acme", "v1")
	req.NoError(conns.PutConnection(ctx, conn))
	req.NoError(conns.AddRoomConnection(ctx, "acme", "conn-1"))
	req.NoError(conns.AddRoomConnection(ctx, "acme", "conn-1"))
	req.NoError(conns.AddUserConnection(ctx, "acme", "V1", "conn-1"))

	// Then it resolves
	found, ok, err := conns.GetConnection(ctx, "conn-1")
	req.NoError(err)
	req.True(ok)
	req.Equal(conn, found)
	ids, err := conns.RoomConnections(ctx, "acme")
	req.NoError(err)
	req.Equal([]string{"conn-1"}, ids)
	ids, err = conns.UserConnections(ctx, "acme", "v1")
	req.NoError(err)
	req.Equal([]string{"conn-1"}, ids)
	count, err := conns.CountConnections(ctx)
	req.NoError(err)
	req.Equal(1, count)

	// When it is removed everywhere
	req.NoError(conns.RemoveUserConnection(ctx, "acme", "v1", "conn-1"))
	req.NoError(conns.RemoveRoomConnection(ctx, "acme", "conn-1"))
	req.NoError(conns.RemoveConnection(ctx, "conn-1"))

	// Then nothing is left
	_, ok, err = conns.GetConnection(ctx, "conn-1")
	req.NoError(err)
	req.False(ok)
	ids, err = conns.RoomConnections(ctx, "acme")
	req.NoError(err)
	req.NotNil(ids)
	req.Empty(ids)
	count, err = conns.CountConnections(ctx)
	req.NoError(err)
	req.Zero(count)
}

func TestRedisConnections_Instances_Do_Not_See_Each_Other(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	client := newTestRedisClient(t)
	log := slog.New(slog.DiscardHandler)
	nodeA := NewRedisConnections(client, "portal-chat:", "node-a", log)
	nodeB := NewRedisConnections(client, "portal-chat:", "node-b", log)

	// Given a connection held by node A
	req.NoError(nodeA.PutConnection(ctx, domain.NewConnection("conn-a", "acme", "v1")))
	req.NoError(nodeA.AddRoomConnection(ctx, "acme", "conn-a"))
	req.NoError(nodeA.AddUserConnection(ctx, "acme", "v1", "conn-a"))

	// Then node B, on the same server, knows nothing about it
	_, ok, err := nodeB.GetConnection(ctx, "conn-a")
	req.NoError(err)
	req.False(ok)
	ids, err := nodeB.RoomConnections(ctx, "acme")
	req.NoError(err)
	req.Empty(ids)
	count, err := nodeB.CountConnections(ctx)
	req.NoError(err)
	req.Zero(count)
}

func TestRedisConnections_Reset_Flushes_A_Previous_Run(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	client := newTestRedisClient(t)
	log := slog.New(slog.DiscardHandler)

	// Given connections left behind by a crashed run of node A and a live node B
	crashed := NewRedisConnections(client, "portal-chat:", "node-a", log)
	req.NoError(crashed.PutConnection(ctx, domain.NewConnection("ghost", "acme", "v1")))
	req.NoError(crashed.AddRoomConnection(ctx, "acme", "ghost"))
	req.NoError(crashed.AddUserConnection(ctx, "acme", "v1", "ghost"))
	other := NewRedisConnections(client, "portal-chat:", "node-a2", log)
	req.NoError(other.PutConnection(ctx, domain.NewConnection("live", "acme", "v2")))
	req.NoError(other.AddRoomConnection(ctx, "acme", "live"))

	// When node A restarts
	restarted := NewRedisConnections(client, "portal-chat:", "node-a", log)
	removed, err := restarted.Reset(ctx)

	// Then only its own keys are gone
	req.NoError(err)
	req.Equal(4, removed)
	ids, err := restarted.RoomConnections(ctx, "acme")
	req.NoError(err)
	req.Empty(ids)
	count, err := restarted.CountConnections(ctx)
	req.NoError(err)
	req.Zero(count)
	ids, err = other.RoomConnections(ctx, "acme")
	req.NoError(err)
	req.Equal([]string{"live"}, ids)
}
