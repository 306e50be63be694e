package worker

import (
	"context"
	"log/slog"
	"time"

	"unipact/internal/core/port"
)

// RankRefresher recomputes every club's rank on a fixed interval so ranks
// decay even for clubs that receive no new reviews.
type RankRefresher struct {
	reputation port.ReputationUseCase
	interval   time.Duration
	logger     *slog.Logger
	now        func() time.Time
}

func NewRankRefresher(reputation port.ReputationUseCase, interval time.Duration, logger *slog.Logger) *RankRefresher {
	return &RankRefresher{
		reputation: reputation,
		interval:   interval,
		logger:     logger,
		now:        time.Now,
	}
}

// Run refreshes once immediately and then every interval until ctx is done.
// A failed pass is logged and retried on the next tick. Run returns nil on
// cancellation.
func (r *RankRefresher) Run(ctx context.Context) error {
	if r.interval <= 0 {
		return nil
	}
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.refresh(ctx)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			r.refresh(ctx)
		}
	}
}

func (r *RankRefresher) refresh(ctx context.Context) {
	start := r.now()
	n, err := r.reputation.RecomputeAll(ctx, start)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		r.logger.Error("rank refresh failed", slog.Int("updated", n), slog.Any("error", err))
		return
	}
	r.logger.Info("ranks refreshed", slog.Int("clubs", n), slog.Duration("took", time.Since(start)))
}
