package services

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"
	"time"

	"kucukaslan/interactions/domain"
	"kucukaslan/interactions/logger"
	"kucukaslan/interactions/metrics"

	"github.com/rs/zerolog"
)

var (
	// ErrBufferFull is returned when the counter buffer channel is full
	ErrBufferFull = errors.New("counter buffer is full")
)

const flushTimeout = 30 * time.Second

// CounterUpdater applies denormalized counter increments in the background.
// Deltas for the same counter are summed between flushes. Failures are logged
// and counted, never reported back to the request that produced the delta.
type CounterUpdater struct {
	deltaChan     chan domain.CounterDelta
	batchSize     int
	flushInterval time.Duration
	store         CounterStore
	log           zerolog.Logger
	ctx           context.Context
	cancel        context.CancelFunc
	wg            sync.WaitGroup
	mu            sync.Mutex
	isRunning     bool
	pending       map[string]domain.CounterDelta
}

// NewCounterUpdater creates a new CounterUpdater instance
func NewCounterUpdater(capacity, batchSize int, flushInterval time.Duration, store CounterStore) *CounterUpdater {
	ctx, cancel := context.WithCancel(context.Background())
	return &CounterUpdater{
		deltaChan:     make(chan domain.CounterDelta, capacity),
		batchSize:     batchSize,
		flushInterval: flushInterval,
		store:         store,
		log:           logger.Component("counter_updater"),
		ctx:           ctx,
		cancel:        cancel,
		pending:       make(map[string]domain.CounterDelta),
	}
}

// Start launches the background worker goroutine
func (u *CounterUpdater) Start() {
	u.mu.Lock()
	if u.isRunning {
		u.mu.Unlock()
		return
	}
	u.isRunning = true
	u.mu.Unlock()

	u.wg.Add(1)
	go u.worker()
	u.log.Info().Int("batch_size", u.batchSize).Dur("flush_interval", u.flushInterval).Msg("counter updater started")
}

// Enqueue adds deltas to the buffer channel without blocking. Deltas that do
// not fit are dropped and ErrBufferFull is returned.
func (u *CounterUpdater) Enqueue(deltas ...domain.CounterDelta) error {
	dropped := 0
	for _, d := range deltas {
		select {
		case u.deltaChan <- d:
		default:
			dropped++
		}
	}
	metrics.SetCounterQueueDepth(len(u.deltaChan))

	if dropped > 0 {
		metrics.RecordCounterUpdates("dropped", dropped)
		u.log.Warn().Int("dropped", dropped).Msg("counter buffer full, deltas dropped")
		return ErrBufferFull
	}
	return nil
}

func (u *CounterUpdater) worker() {
	defer u.wg.Done()

	ticker := time.NewTicker(u.flushInterval)
	defer ticker.Stop()

	for {
		select {
		case <-u.ctx.Done():
			u.flushRemaining()
			return

		case d := <-u.deltaChan:
			if u.add(d) >= u.batchSize {
				u.flush()
			}

		case <-ticker.C:
			u.flush()
		}
	}
}

// add merges d into the pending set and returns the number of pending counters.
func (u *CounterUpdater) add(d domain.CounterDelta) int {
	u.mu.Lock()
	defer u.mu.Unlock()

	key := d.Key()
	if existing, ok := u.pending[key]; ok {
		existing.Delta += d.Delta
		u.pending[key] = existing
	} else {
		u.pending[key] = d
	}
	return len(u.pending)
}

func (u *CounterUpdater) flush() {
	u.mu.Lock()
	if len(u.pending) == 0 {
		u.mu.Unlock()
		return
	}
	batch := make([]domain.CounterDelta, 0, len(u.pending))
	for _, d := range u.pending {
		batch = append(batch, d)
	}
	clear(u.pending)
	u.mu.Unlock()

	// A fixed row order keeps concurrent transactions from deadlocking.
	slices.SortFunc(batch, func(a, b domain.CounterDelta) int {
		return strings.Compare(a.Key(), b.Key())
	})

	ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
	defer cancel()

	metrics.SetCounterQueueDepth(len(u.deltaChan))
	if err := u.store.ApplyCounterDeltas(ctx, batch); err != nil {
		metrics.RecordCounterUpdates("failed", len(batch))
		u.log.Error().Err(err).Int("counters", len(batch)).Msg("failed to apply counter deltas")
		return
	}
	metrics.RecordCounterUpdates("applied", len(batch))
	u.log.Debug().Int("counters", len(batch)).Msg("applied counter deltas")
}

// flushRemaining drains the channel and flushes everything pending
func (u *CounterUpdater) flushRemaining() {
	drained := 0
	for {
		select {
		case d := <-u.deltaChan:
			u.add(d)
			drained++
		default:
			if drained > 0 {
				u.log.Info().Int("drained", drained).Msg("drained counter deltas during shutdown")
			}
			u.flush()
			return
		}
	}
}

// Shutdown stops the worker after flushing every buffered delta
func (u *CounterUpdater) Shutdown() error {
	u.mu.Lock()
	if !u.isRunning {
		u.mu.Unlock()
		return nil
	}
	u.isRunning = false
	u.mu.Unlock()

	u.log.Info().Msg("counter updater shutting down")
	u.cancel()
	u.wg.Wait()
	return nil
}

// BufferSize returns the number of deltas waiting in the channel
func (u *CounterUpdater) BufferSize() int {
	return len(u.deltaChan)
}
