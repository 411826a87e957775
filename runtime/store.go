package runtime

import (
	"log/slog"
	"portal-chat/contract"
)

// Store composes a directory with a connection store. The connection store
// may live in redis (see RedisConnections), scoped to this process like the
// directory it indexes.
type Store struct {
	*Directory
	contract.ConnectionStore
}

var _ contract.Store = (*Store)(nil)

func NewStore(directory *Directory, connections contract.ConnectionStore) *Store {
	return &Store{Directory: directory, ConnectionStore: connections}
}

// NewMemoryStore keeps everything in process. It is unbounded: rooms only
// go away when their last connection leaves.
func NewMemoryStore(log *slog.Logger) *Store {
	return NewStore(NewDirectory(log), NewMemoryConnections(log))
}
