package workers

import (
	"context"
	"fmt"
	"log/slog"
	"portal-chat/errors"
	"time"

	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// HealthSetter is implemented by *health.Server.
type HealthSetter interface {
	SetServingStatus(service string, servingStatus healthpb.HealthCheckResponse_ServingStatus)
}

// Probe checks one out of process dependency.
type Probe struct {
	Name  string
	Check func(ctx context.Context) error
}

// HealthWorker probes the dependencies and reports NOT_SERVING as soon as
// one of them fails.
type HealthWorker struct {
	log      *slog.Logger
	setter   HealthSetter
	service  string
	probes   []Probe
	interval time.Duration
	timeout  time.Duration

	serving bool
}

func NewHealthWorker(log *slog.Logger, setter HealthSetter, service string, interval, timeout time.Duration, probes ...Probe) *HealthWorker {
	return &HealthWorker{
		log:      log.With(slog.String("component", "health_worker")),
		setter:   setter,
		service:  service,
		probes:   probes,
		interval: interval,
		timeout:  timeout,
		serving:  true,
	}
}

func (w *HealthWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			w.report(w.probe(ctx))
		}
	}
}

// probe returns the first failing dependency.
func (w *HealthWorker) probe(ctx context.Context) error {
	for _, p := range w.probes {
		checkCtx, cancel := context.WithTimeout(ctx, w.timeout)
		err := p.Check(checkCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("%s: %w: %v", p.Name, errors.ErrDependencyDown, err)
		}
	}
	return nil
}

// report only logs and updates on transitions.
func (w *HealthWorker) report(err error) {
	switch {
	case err != nil && w.serving:
		w.serving = false
		w.log.Warn("Dependency down, not serving", "error", err)
		w.setter.SetServingStatus(w.service, healthpb.HealthCheckResponse_NOT_SERVING)
	case err == nil && !w.serving:
		w.serving = true
		w.log.Info("Dependencies back, serving")
		w.setter.SetServingStatus(w.service, healthpb.HealthCheckResponse_SERVING)
	}
}
