// Package sink holds the audit log destinations a relayed message is handed to.
package sink

import (
	"context"
	"log/slog"
	"portal-chat/contract"
	"portal-chat/domain"
	"sync"
	"time"
)

// Fanout writes to a primary audit log and then, concurrently and on a
// best-effort basis, to secondary ones. Only a primary failure is returned.
type Fanout struct {
	primary     contract.AuditLog
	secondaries []contract.AuditLog
	sinkTimeout time.Duration
	log         *slog.Logger
}

func NewFanout(log *slog.Logger, primary contract.AuditLog, sinkTimeout time.Duration, secondaries ...contract.AuditLog) Fanout {
	return Fanout{
		primary:     primary,
		secondaries: secondaries,
		sinkTimeout: sinkTimeout,
		log:         log.With(slog.String("component", "audit_fanout")),
	}
}

var _ contract.AuditLog = Fanout{}

func (f Fanout) Log(ctx context.Context, entry domain.AuditEntry, audience []string) error {
	if err := f.primary.Log(ctx, entry, audience); err != nil {
		return err
	}
	var wg sync.WaitGroup
	for _, s := range f.secondaries {
		wg.Add(1)
		go func(s contract.AuditLog) {
			defer wg.Done()
			sinkCtx, cancel := context.WithTimeout(ctx, f.sinkTimeout)
			defer cancel()
			if err := s.Log(sinkCtx, entry, audience); err != nil {
				f.log.Warn("Secondary audit sink failed", "eventID", entry.EventID, "error", err)
			}
		}(s)
	}
	wg.Wait()
	return nil
}
