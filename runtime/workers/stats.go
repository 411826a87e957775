package workers

import (
	"context"
	"log/slog"
	"portal-chat/observability"
	"time"
)

// Refresher is the monitor as seen by the stats worker.
type Refresher interface {
	Refresh(ctx context.Context) (observability.Snapshot, error)
}

// StatsWorker refreshes the monitoring snapshot on a fixed interval.
type StatsWorker struct {
	log       *slog.Logger
	refresher Refresher
	interval  time.Duration
}

func NewStatsWorker(log *slog.Logger, refresher Refresher, interval time.Duration) *StatsWorker {
	return &StatsWorker{log: log.With(slog.String("component", "stats_worker")), refresher: refresher, interval: interval}
}

func (w *StatsWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping stats refresh")
			return nil
		case <-ticker.C:
			snapshot, err := w.refresher.Refresh(ctx)
			if err != nil {
				w.log.Warn("Failed to refresh stats", "error", err)
				continue
			}
			w.log.Debug("Stats", "rooms", snapshot.Rooms, "connections", snapshot.Connections,
				"cpu", snapshot.CPUPercent, "rss", snapshot.RSSBytes)
		}
	}
}
