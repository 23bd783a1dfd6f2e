package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// TierSnapshot is the reload contract the refresher drives.
type TierSnapshot interface {
	Refresh(ctx context.Context) error
}

// TierRefresher periodically reloads the tier reference snapshot so pricing
// keeps reading current rates without touching storage per request.
type TierRefresher struct {
	snapshot TierSnapshot
	interval time.Duration
	logger   *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewTierRefresher constructs the background refresher.
func NewTierRefresher(snapshot TierSnapshot, interval time.Duration, logger *slog.Logger) *TierRefresher {
	if interval <= 0 {
		interval = time.Minute
	}
	return &TierRefresher{snapshot: snapshot, interval: interval, logger: logger}
}

// Start performs an initial load and launches the refresh loop.
func (r *TierRefresher) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel

	if err := r.snapshot.Refresh(runCtx); err != nil {
		r.logger.Error("initial tier refresh failed", slog.String("error", err.Error()))
	}

	r.wg.Add(1)
	go r.loop(runCtx)
}

// Stop halts the loop and waits for it to finish.
func (r *TierRefresher) Stop() {
	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.mu.Unlock()

	r.wg.Wait()
}

func (r *TierRefresher) loop(ctx context.Context) {
	defer r.wg.Done()
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := r.snapshot.Refresh(ctx); err != nil {
				r.logger.Error("tier refresh failed", slog.String("error", err.Error()))
			}
		}
	}
}
