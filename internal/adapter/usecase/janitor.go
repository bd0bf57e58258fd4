package usecase

import (
	"context"
	"log/slog"
	"time"
)

// Sweep evicts sessions idle for longer than ttl.
func (u *WizardUseCase) Sweep(ttl time.Duration) int {
	n := u.sessions.EvictIdle(u.now().Add(-ttl))
	if n > 0 {
		u.logger.Info("idle wizard sessions evicted",
			slog.Int("count", n),
			slog.Int("remaining", u.sessions.Len()))
	}
	return n
}

// RunJanitor calls Sweep every interval until ctx is done. A non-positive
// interval disables eviction.
func (u *WizardUseCase) RunJanitor(ctx context.Context, ttl, interval time.Duration) {
	if interval <= 0 {
		u.logger.Warn("session janitor disabled", slog.Duration("interval", interval))
		return
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			u.Sweep(ttl)
		}
	}
}
