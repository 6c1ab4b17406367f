// Package health reports store reachability through the standard gRPC health
// service.
package health

import (
	"context"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type Reporter struct {
	hs      *health.Server
	pinger  Pinger
	log     *zap.Logger
	timeout time.Duration
}

func NewReporter(p Pinger, log *zap.Logger, timeout time.Duration) *Reporter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Reporter{hs: health.NewServer(), pinger: p, log: log, timeout: timeout}
}

func (r *Reporter) Register(gs *grpc.Server) {
	healthpb.RegisterHealthServer(gs, r.hs)
}

// Check pings the store once and publishes the result for the overall
// server ("").
func (r *Reporter) Check(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	status := healthpb.HealthCheckResponse_SERVING
	if err := r.pinger.Ping(ctx); err != nil {
		r.log.Warn("store ping failed", zap.Error(err))
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	r.hs.SetServingStatus("", status)
	return status
}

// Watch re-checks every interval until ctx is done, then marks the server as
// shutting down.
func (r *Reporter) Watch(ctx context.Context, interval time.Duration) {
	r.Check(ctx)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			r.Check(ctx)
		case <-ctx.Done():
			r.hs.Shutdown()
			return
		}
	}
}
