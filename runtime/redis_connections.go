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

	"github.com/redis/go-redis/v9"
)

const (
	fieldRoom = "room"
	fieldUser = "user"
)

// resetBatch is the SCAN page size used when flushing an instance keyspace.
const resetBatch = 500

// RedisConnections keeps the connection registry and both indices of one
// hub process in redis. Rooms and users stay in the process directory, so
// every key lives under {prefix}{instance}: and is never read by another
// process. Presence is not shared between instances.
// Layout: conn:{id} hash, room:{room} set, user:{room}:{user} set and a
// conns set, all under the instance prefix.
type RedisConnections struct {
	client *redis.Client
	prefix string
	log    *slog.Logger
}

// NewRedisConnections scopes the keyspace to instance. Call Reset before
// serving so that connections left by a previous run of the same instance
// do not outlive it.
func NewRedisConnections(client *redis.Client, prefix, instance string, log *slog.Logger) *RedisConnections {
	return &RedisConnections{
		client: client,
		prefix: prefix + instance + ":",
		log: log.With(
			slog.String("component", "connections_redis"),
			slog.String("instance", instance),
		),
	}
}

// Reset deletes every key of the instance and returns how many were removed.
func (r *RedisConnections) Reset(ctx context.Context) (int, error) {
	removed := 0
	iter := r.client.Scan(ctx, 0, globEscaper.Replace(r.prefix)+"*", resetBatch).Iterator()
	batch := make([]string, 0, resetBatch)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		n, err := r.client.Del(ctx, batch...).Result()
		if err != nil {
			return fmt.Errorf("redis reset: %w", err)
		}
		removed += int(n)
		batch = batch[:0]
		return nil
	}
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())
		if len(batch) == resetBatch {
			if err := flush(); err != nil {
				return removed, err
			}
		}
	}
	if err := iter.Err(); err != nil {
		return removed, fmt.Errorf("redis scan: %w", err)
	}
	if err := flush(); err != nil {
		return removed, err
	}
	r.log.Info("Connection keyspace reset", "removed", removed)
	return removed, nil
}

var globEscaper = strings.NewReplacer(`\`, `\\`, "*", `\*`, "?", `\?`, "[", `\[`, "]", `\]`)

var _ contract.ConnectionStore = (*RedisConnections)(nil)

func (r *RedisConnections) connKey(connID string) string { return r.prefix + "conn:" + connID }
func (r *RedisConnections) roomKey(roomID string) string { return r.prefix + "room:" + roomID }
func (r *RedisConnections) allKey() string               { return r.prefix + "conns" }
func (r *RedisConnections) userKey(roomID, userName string) string {
	return r.prefix + "user:" + roomID + ":" + nameKey(userName)
}

func (r *RedisConnections) PutConnection(ctx context.Context, conn domain.Connection) error {
	if conn.ID == "" {
		return fmt.Errorf("put connection: %w", errors.ErrEmptyConnectionID)
	}
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, r.connKey(conn.ID), fieldRoom, conn.RoomID, fieldUser, conn.UserName)
		pipe.SAdd(ctx, r.allKey(), conn.ID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis put connection: %w", err)
	}
	return nil
}

func (r *RedisConnections) GetConnection(ctx context.Context, connID string) (domain.Connection, bool, error) {
	fields, err := r.client.HGetAll(ctx, r.connKey(connID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.Connection{}, false, nil
		}
		return domain.Connection{}, false, fmt.Errorf("redis get connection: %w", err)
	}
	if len(fields) == 0 {
		return domain.Connection{}, false, nil
	}
	return domain.NewConnection(connID, fields[fieldRoom], fields[fieldUser]), true, nil
}

func (r *RedisConnections) RemoveConnection(ctx context.Context, connID string) error {
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, r.connKey(connID))
		pipe.SRem(ctx, r.allKey(), connID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis remove connection: %w", err)
	}
	return nil
}

func (r *RedisConnections) AddRoomConnection(ctx context.Context, roomID, connID string) error {
	return r.add(ctx, r.roomKey(roomID), connID)
}

func (r *RedisConnections) RemoveRoomConnection(ctx context.Context, roomID, connID string) error {
	return r.remove(ctx, r.roomKey(roomID), connID)
}

func (r *RedisConnections) RoomConnections(ctx context.Context, roomID string) ([]string, error) {
	return r.members(ctx, r.roomKey(roomID))
}

func (r *RedisConnections) AddUserConnection(ctx context.Context, roomID, userName, connID string) error {
	return r.add(ctx, r.userKey(roomID, userName), connID)
}

func (r *RedisConnections) RemoveUserConnection(ctx context.Context, roomID, userName, connID string) error {
	return r.remove(ctx, r.userKey(roomID, userName), connID)
}

func (r *RedisConnections) UserConnections(ctx context.Context, roomID, userName string) ([]string, error) {
	return r.members(ctx, r.userKey(roomID, userName))
}

func (r *RedisConnections) CountConnections(ctx context.Context) (int, error) {
	n, err := r.client.SCard(ctx, r.allKey()).Result()
	if err != nil {
		return 0, fmt.Errorf("redis count connections: %w", err)
	}
	return int(n), nil
}

// SADD and SREM are atomic per key, redis removes a set once it is empty.
func (r *RedisConnections) add(ctx context.Context, key, connID string) error {
	if err := r.client.SAdd(ctx, key, connID).Err(); err != nil {
		return fmt.Errorf("redis sadd %s: %w", key, err)
	}
	r.log.Debug("Connection indexed", "key", key, "connectionID", connID)
	return nil
}

func (r *RedisConnections) remove(ctx context.Context, key, connID string) error {
	if err := r.client.SRem(ctx, key, connID).Err(); err != nil {
		return fmt.Errorf("redis srem %s: %w", key, err)
	}
	return nil
}

func (r *RedisConnections) members(ctx context.Context, key string) ([]string, error) {
	ids, err := r.client.SMembers(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("redis smembers %s: %w", key, err)
	}
	if ids == nil {
		ids = []string{}
	}
	slices.Sort(ids)
	return ids, nil
}
