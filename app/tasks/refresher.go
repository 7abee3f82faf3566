package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/eubelhor/house-scraper/app/dataset"
	"github.com/eubelhor/house-scraper/app/scraper"
)

// RefresherInterface is what the API layer needs from the background
// refresher.
type RefresherInterface interface {
	Refresh(ctx context.Context) error
}

var _ RefresherInterface = (*Refresher)(nil)

// Refresher re-runs acquisition on an interval in serve mode and swaps
// the dataset store on success. A failed refresh keeps the previous
// record set.
type Refresher struct {
	acquirer *scraper.Acquirer
	store    *dataset.Store
	interval time.Duration
	ctx      context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	mu       sync.Mutex
}

func NewRefresher(acquirer *scraper.Acquirer, store *dataset.Store, interval time.Duration) *Refresher {
	ctx, cancel := context.WithCancel(context.Background())

	return &Refresher{
		acquirer: acquirer,
		store:    store,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Refresh runs one acquisition and publishes the result. Concurrent
// refreshes are serialized; the sources are slow and polite delays apply.
func (r *Refresher) Refresh(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	startTime := time.Now()
	members, stats, err := r.acquirer.Run(ctx)
	if err != nil {
		return fmt.Errorf("refresh failed: %w", err)
	}

	r.store.Set(members, stats)
	slog.Info("Dataset refreshed", "seats", len(members), "duration", time.Since(startTime))
	return nil
}

func (r *Refresher) Start() {
	if r.interval <= 0 {
		slog.Debug("Background refresh disabled")
		return
	}

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()

		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()

		for {
			select {
			case <-r.ctx.Done():
				return
			case <-ticker.C:
				if err := r.Refresh(r.ctx); err != nil {
					slog.Warn("Background refresh failed, keeping previous dataset", "error", err)
				}
			}
		}
	}()

	slog.Info("Background refresher started", "interval", r.interval)
}

func (r *Refresher) Stop() {
	r.cancel()
	r.wg.Wait()
}
