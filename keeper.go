package coinledger

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"
)

// FetchFunc downloads the current workbook bytes. It may return
// ErrNotModified when the source has not changed.
type FetchFunc func(ctx context.Context) ([]byte, error)

// Keeper holds the live ledger. Readers get a consistent ledger at any time
// through an atomic pointer, writers (reloads and stagings) are serialized
// and publish a whole new ledger in one swap.
type Keeper struct {
	fetch    FetchFunc
	snapshot string

	mu         sync.Mutex // serializes all mutations
	current    atomic.Pointer[Ledger]
	generation atomic.Int64
}

// NewKeeper returns a keeper persisting its state to the snapshot file.
func NewKeeper(fetch FetchFunc, snapshot string) *Keeper {
	k := &Keeper{fetch: fetch, snapshot: snapshot}
	k.current.Store(NewLedger())
	return k
}

// Current returns the live ledger. The returned ledger is never mutated,
// callers can hold on to it across reloads.
func (k *Keeper) Current() *Ledger { return k.current.Load() }

// Generation counts published ledgers. It only moves forward.
func (k *Keeper) Generation() int64 { return k.generation.Load() }

// Bootstrap loads the snapshot (or starts empty) and attempts a first
// reload. The snapshot ledger stays live even when the reload fails, so the
// service starts with the last known good state.
func (k *Keeper) Bootstrap(ctx context.Context) error {
	prev, err := LoadSnapshot(k.snapshot)
	if err != nil {
		return err
	}
	k.publish(prev)
	if err := k.Reload(ctx); err != nil {
		return fmt.Errorf("initial reload failed: %w", err)
	}
	return nil
}

// Reload fetches the workbook, reconciles it with the live ledger and
// publishes the result. On any failure the live ledger is left untouched.
func (k *Keeper) Reload(ctx context.Context) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	body, err := k.fetch(ctx)
	if errors.Is(err, ErrNotModified) {
		return nil
	}
	if err != nil {
		return err
	}
	fresh, err := DecodeWorkbook(bytes.NewReader(body))
	if err != nil {
		return err
	}
	next, err := Reconcile(fresh, k.Current(), Today())
	if err != nil {
		return err
	}
	if err := SaveSnapshot(k.snapshot, next); err != nil {
		return err
	}
	k.publish(next)
	return nil
}

// Stage marks one coin as pending collection and publishes the new ledger.
func (k *Keeper) Stage(collector string, filters ...func(Coin) bool) (Coin, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	next, staged, err := k.Current().Stage(collector, filters...)
	if err != nil {
		return nil, err
	}
	if err := SaveSnapshot(k.snapshot, next); err != nil {
		return nil, err
	}
	k.publish(next)
	return staged, nil
}

// Run reloads the ledger on every tick until the context is canceled.
// Reload failures are logged and retried on the next tick.
func (k *Keeper) Run(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := k.Reload(ctx); err != nil {
				log.Printf("reload failed: %v", err)
			}
		}
	}
}

func (k *Keeper) publish(l *Ledger) {
	k.current.Store(l)
	k.generation.Add(1)
}
