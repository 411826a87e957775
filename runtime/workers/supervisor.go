package workers

import (
	"context"
	"fmt"
	"log/slog"
	"portal-chat/contract"
	"portal-chat/errors"
	"sync"
	"time"
)

const waitTimeBeforeRestart = 200 * time.Millisecond

// Supervisor runs each worker in its own goroutine, recovers panics and
// restarts failed workers until the parent context is canceled.
type Supervisor struct {
	Cancel  context.CancelFunc // stops the supervised workers only
	wg      *sync.WaitGroup    // one entry per running worker
	log     *slog.Logger
	workers []contract.Worker
}

func NewSupervisor(log *slog.Logger) *Supervisor {
	return &Supervisor{wg: &sync.WaitGroup{}, log: log.With(slog.String("component", "supervisor"))}
}

// Run blocks until every worker returned. Canceling the parent stops all
// of them, Stop only stops the children of this supervisor.
func (s *Supervisor) Run(ctx context.Context) {
	// 1. Derive the context of the children from the parent one
	supervisedCtx, cancel := context.WithCancel(ctx)
	s.Cancel = cancel
	defer s.Cancel()

	// 2. Start every worker then wait for all of them

	for _, worker := range s.workers {
		s.Start(supervisedCtx, worker)
	}
	s.wg.Wait()
}

// Add registers workers to start on Run. It returns the supervisor to chain calls.
func (s *Supervisor) Add(worker ...contract.Worker) *Supervisor {
	s.workers = append(s.workers, worker...)
	return s
}

// Start runs a worker under supervision. A worker returning nil is done for
// good, an error or a panic triggers a restart after a short delay.
func (s *Supervisor) Start(ctx context.Context, worker contract.Worker) {
	s.wg.Add(1)
	workerName := contract.GetWorkerName(worker)

	go func() {
		defer s.wg.Done()

		for {
			if ctx.Err() != nil {
				s.log.Info(fmt.Sprintf("Stopping : %s", workerName))
				return
			}

			err := func() (err error) {
				defer func() {
					if r := recover(); r != nil {
						err = fmt.Errorf("%w: %v", errors.ErrWorkerPanic, r)
					}
				}()
				// a crash restarts this worker, never the loop
				return worker.Run(ctx)
			}()

			if err == nil {
				// finished on its own, not restarted
				s.log.Info(fmt.Sprintf("Worker finished : %s", workerName))
				return
			}
			if ctx.Err() != nil {
				s.log.Info("Worker stopped (context canceled)", "name", workerName)
				return
			}

			s.log.Warn("Worker crashed, restarting", "name", workerName, "error", err)
			select {
			case <-ctx.Done():
				// canceled while waiting: no restart
				return
			case <-time.After(waitTimeBeforeRestart):
			}
		}
	}()
}

// Stop cancels the supervised context. Run returns once every worker did.
func (s *Supervisor) Stop() {
	if s.Cancel != nil {
		s.Cancel()
	}
}
