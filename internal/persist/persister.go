// Package persist mirrors the in-memory ledger into a key-value store.
// Writes are debounced: a burst of changes produces a single write of the
// latest state, delay after the last change. A process that dies inside that
// window loses the pending write.
package persist

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/ndvmoney/internal/domain"
)

const (
	DefaultDelay       = time.Second
	DefaultKeepPerUser = 5
	writeTimeout       = 5 * time.Second
)

var ErrClosed = errors.New("persister is closed")

type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	SetMany(ctx context.Context, entries map[string]string) error
}

type Persister struct {
	store       Store
	debouncer   *Debouncer
	workerPool  WorkerPoolI
	keepPerUser int

	mu      sync.Mutex
	pending *domain.State
	closed  bool
}

func New(store Store, delay time.Duration, keepPerUser int) *Persister {
	return &Persister{
		store:       store,
		debouncer:   NewDebouncer(delay),
		workerPool:  NewWorkerPool(1),
		keepPerUser: keepPerUser,
	}
}

// Load reads every key concurrently and decodes them over defaults.
func (p *Persister) Load(ctx context.Context, defaults domain.State) (domain.State, error) {
	var mu sync.Mutex
	entries := make(map[string]string, len(Keys))

	g, gCtx := errgroup.WithContext(ctx)
	for _, key := range Keys {
		key := key
		g.Go(func() error {
			value, ok, err := p.store.Get(gCtx, key)
			if err != nil {
				return fmt.Errorf("read %s: %w", key, err)
			}
			if ok {
				mu.Lock()
				entries[key] = value
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		zap.L().Error("failed to load ledger snapshot", zap.Error(err))
		return defaults, err
	}

	st := Decode(entries, defaults)
	zap.L().Info("ledger snapshot loaded",
		zap.Int("users", len(st.Users)),
		zap.Int("loans", len(st.Loans)),
		zap.Int64("budget", st.Budget),
	)
	return st, nil
}

// Schedule queues st for writing once the debounce delay passes without a
// newer state arriving. It does nothing after Close.
func (p *Persister) Schedule(st domain.State) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		zap.L().Warn("ledger snapshot dropped, persister closed")
		return
	}
	p.pending = &st
	p.mu.Unlock()

	p.debouncer.Trigger(p.fire)
}

func (p *Persister) fire() {
	st, ok := p.takePending()
	if !ok {
		return
	}
	err := p.workerPool.AddTask(context.Background(), func() error {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		defer cancel()
		return p.write(ctx, st)
	})
	if err != nil && !errors.Is(err, ErrPoolClosed) {
		zap.L().Error("failed to queue ledger snapshot", zap.Error(err))
	}
}

// Flush writes the pending state now instead of waiting for the timer.
func (p *Persister) Flush(ctx context.Context) error {
	if p.isClosed() {
		return ErrClosed
	}
	p.debouncer.Stop()
	st, ok := p.takePending()
	if !ok {
		return nil
	}

	done := make(chan error, 1)
	err := p.workerPool.AddTask(ctx, func() error {
		err := p.write(ctx, st)
		done <- err
		return err
	})
	if err != nil {
		return err
	}
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close drops anything still pending and waits for queued writes. Flush
// first to keep the last state.
func (p *Persister) Close() {
	p.mu.Lock()
	p.closed = true
	p.pending = nil
	p.mu.Unlock()

	p.debouncer.Stop()
	p.workerPool.Close()
}

func (p *Persister) isClosed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closed
}

func (p *Persister) takePending() (domain.State, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed || p.pending == nil {
		return domain.State{}, false
	}
	st := *p.pending
	p.pending = nil
	return st, true
}

func (p *Persister) write(ctx context.Context, st domain.State) error {
	entries, err := Encode(st, p.keepPerUser)
	if err != nil {
		zap.L().Error("failed to encode ledger snapshot", zap.Error(err))
		return err
	}
	if err := p.store.SetMany(ctx, entries); err != nil {
		zap.L().Error("failed to save ledger snapshot", zap.Error(err))
		return fmt.Errorf("save snapshot: %w", err)
	}
	zap.L().Debug("ledger snapshot saved", zap.Int("loans", len(st.Loans)))
	return nil
}
