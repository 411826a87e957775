package observability

import (
	"context"
	"log/slog"
	"os"
	goruntime "runtime"
	"sync"
	"sync/atomic"
	"time"

	"portal-chat/runtime"

	"github.com/shirou/gopsutil/process"
)

// StoreStats is the part of the chat store the monitor reports on.
type StoreStats interface {
	Stats(ctx context.Context) (runtime.Stats, error)
}

// Snapshot aggregates store size, hub counters and process metrics.
type Snapshot struct {
	Rooms       int `json:"rooms"`
	Connections int `json:"connections"`

	MessagesRelayed   uint64 `json:"messages_relayed"`
	ConnectionsOpened uint64 `json:"connections_opened"`
	ErrorCount        uint64 `json:"error_count"`

	PID        int32     `json:"pid"`
	PidStatus  string    `json:"pid_status"`
	CPUPercent float64   `json:"cpu_percent"`
	RSSBytes   uint64    `json:"rss_bytes"`
	AllocMemMb uint64    `json:"alloc_mem_mb"`
	NumGC      uint32    `json:"num_gc"`
	Goroutines int       `json:"goroutines"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Monitor keeps hub counters and refreshes a snapshot periodically.
type Monitor struct {
	log     *slog.Logger
	store   StoreStats
	process *process.Process

	mu     sync.RWMutex
	latest Snapshot

	messages    uint64
	connections uint64
	errors      uint64
}

func NewMonitor(log *slog.Logger, store StoreStats) (*Monitor, error) {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil, err
	}
	return &Monitor{
		log:     log.With(slog.String("component", "monitor")),
		store:   store,
		process: p,
	}, nil
}

func (m *Monitor) IncrMessages()    { atomic.AddUint64(&m.messages, 1) }
func (m *Monitor) IncrConnections() { atomic.AddUint64(&m.connections, 1) }
func (m *Monitor) IncrErrors()      { atomic.AddUint64(&m.errors, 1) }

// Refresh collects a new snapshot right away and returns it.
func (m *Monitor) Refresh(ctx context.Context) (Snapshot, error) {
	stats, err := m.store.Stats(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	s := Snapshot{
		Rooms:             stats.Rooms,
		Connections:       stats.Connections,
		MessagesRelayed:   atomic.LoadUint64(&m.messages),
		ConnectionsOpened: atomic.LoadUint64(&m.connections),
		ErrorCount:        atomic.LoadUint64(&m.errors),
		PID:               m.process.Pid,
		Goroutines:        goruntime.NumGoroutine(),
		UpdatedAt:         time.Now().UTC(),
	}

	// process metrics are best effort, some platforms do not expose them
	if memInfo, err := m.process.MemoryInfo(); err == nil {
		s.RSSBytes = memInfo.RSS
	}
	if cpu, err := m.process.CPUPercent(); err == nil {
		s.CPUPercent = cpu
	}
	if status, err := m.process.Status(); err == nil {
		s.PidStatus = status
	}

	var mem goruntime.MemStats
	goruntime.ReadMemStats(&mem)
	s.AllocMemMb = mem.Alloc / 1024 / 1024
	s.NumGC = mem.NumGC

	m.mu.Lock()
	m.latest = s
	m.mu.Unlock()
	m.log.Debug("Stats refreshed", "rooms", s.Rooms, "connections", s.Connections, "rss", s.RSSBytes)
	return s, nil
}

func (m *Monitor) Latest() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.latest
}
