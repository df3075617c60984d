package audit

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"

	"userhub/pkg/platform/circuit"
)

// ErrCircuitOpen is returned without touching the broker while the audit
// circuit is open.
var ErrCircuitOpen = errors.New("audit publisher circuit open")

// While open, every probeInterval-th event still attempts a real produce
// so the circuit can close once the broker recovers.
const probeInterval = 10

// GuardedPublisher wraps a publisher with a circuit breaker. Audit emission
// is best-effort, so once the broker is persistently failing the guard
// sheds events immediately instead of paying a produce timeout per request.
type GuardedPublisher struct {
	inner   Publisher
	breaker *circuit.Breaker
	logger  *slog.Logger
	skipped atomic.Uint64
}

func NewGuardedPublisher(inner Publisher, logger *slog.Logger) *GuardedPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &GuardedPublisher{
		inner:   inner,
		breaker: circuit.New("audit-publisher"),
		logger:  logger,
	}
}

func (p *GuardedPublisher) Emit(ctx context.Context, event Event) error {
	if p.breaker.IsOpen() && p.skipped.Add(1)%probeInterval != 0 {
		return ErrCircuitOpen
	}

	if err := p.inner.Emit(ctx, event); err != nil {
		if _, change := p.breaker.RecordFailure(); change.Opened {
			p.logger.WarnContext(ctx, "audit publisher circuit opened", "error", err)
		}
		return err
	}
	if _, change := p.breaker.RecordSuccess(); change.Closed {
		p.logger.InfoContext(ctx, "audit publisher circuit closed")
	}
	return nil
}
