// Package directory holds the in-memory list of laundry shops and the current selection.
package directory

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"laundry-finder-backend/internal/model"
)

// ErrNotFound is returned when selecting a shop id that is not in the directory.
var ErrNotFound = errors.New("shop not found")

// Source supplies a complete, ordered shop list. It stands in for the upstream API.
type Source interface {
	FetchShops(ctx context.Context) ([]model.LaundryShop, error)
}

// Options configures refresh behaviour.
type Options struct {
	// RefreshDelay is how long a refresh stays in the loading state before completing.
	RefreshDelay time.Duration
	// Interval enables the periodic refresh started by Run. Zero disables it.
	Interval time.Duration
}

// Directory is the shop directory store. All methods are safe for concurrent use;
// each operation runs to completion before the next is observed.
type Directory struct {
	mu       sync.RWMutex
	shops    []model.LaundryShop
	selected string

	loading atomic.Bool
	source  Source
	opts    Options

	hooksMu sync.Mutex
	hooks   []func()
}

// New creates an empty directory. src may be nil, in which case Refresh never mutates shop data.
func New(src Source, opts Options) *Directory {
	return &Directory{source: src, opts: opts}
}

// OnChange registers fn to run after every Load.
func (d *Directory) OnChange(fn func()) {
	d.hooksMu.Lock()
	defer d.hooksMu.Unlock()
	d.hooks = append(d.hooks, fn)
}

// Load replaces the entire shop list. The selection survives only if its id is still present.
func (d *Directory) Load(shops []model.LaundryShop) {
	d.mu.Lock()
	d.shops = model.CloneShops(shops)
	if d.selected != "" && d.indexOf(d.selected) < 0 {
		log.Printf("Selected shop %s is no longer listed; clearing selection", d.selected)
		d.selected = ""
	}
	d.mu.Unlock()

	d.hooksMu.Lock()
	hooks := append([]func(){}, d.hooks...)
	d.hooksMu.Unlock()
	for _, fn := range hooks {
		fn()
	}
}

// indexOf must be called with mu held.
func (d *Directory) indexOf(id string) int {
	for i, s := range d.shops {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// Select makes the shop with the given id the current selection.
// Re-selecting the current shop keeps it selected.
func (d *Directory) Select(id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.indexOf(id) < 0 {
		return fmt.Errorf("select shop %q: %w", id, ErrNotFound)
	}
	d.selected = id
	return nil
}

// Deselect clears the selection. It is safe to call when nothing is selected.
func (d *Directory) Deselect() {
	d.mu.Lock()
	d.selected = ""
	d.mu.Unlock()
}

// SelectedID returns the selected shop id, or "" when nothing is selected.
func (d *Directory) SelectedID() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.selected
}

// Selected returns a copy of the selected shop.
func (d *Directory) Selected() (model.LaundryShop, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.selected == "" {
		return model.LaundryShop{}, false
	}
	i := d.indexOf(d.selected)
	if i < 0 {
		return model.LaundryShop{}, false
	}
	return d.shops[i].Clone(), true
}

// Shops returns a copy of the shop list in load order.
func (d *Directory) Shops() []model.LaundryShop {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return model.CloneShops(d.shops)
}

// Shop returns a copy of the shop with the given id.
func (d *Directory) Shop(id string) (model.LaundryShop, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	i := d.indexOf(id)
	if i < 0 {
		return model.LaundryShop{}, false
	}
	return d.shops[i].Clone(), true
}

// Loading reports whether a refresh is in progress.
func (d *Directory) Loading() bool {
	return d.loading.Load()
}

// Refresh runs one fetch cycle: it enters the loading state, waits RefreshDelay, loads
// fresh data from the source if one is configured, and leaves the loading state.
// A call made while another refresh is loading does nothing and returns started=false.
func (d *Directory) Refresh(ctx context.Context) (started bool, err error) {
	if !d.loading.CompareAndSwap(false, true) {
		return false, nil
	}
	defer d.loading.Store(false)

	if d.opts.RefreshDelay > 0 {
		timer := time.NewTimer(d.opts.RefreshDelay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return true, ctx.Err()
		}
	}

	if d.source == nil {
		return true, nil
	}

	shops, err := d.source.FetchShops(ctx)
	if err != nil {
		return true, fmt.Errorf("refresh shops: %w", err)
	}
	d.Load(shops)
	log.Printf("Directory refreshed: %d shops", len(shops))
	return true, nil
}

// Run refreshes the directory on the configured interval until ctx is cancelled.
func (d *Directory) Run(ctx context.Context) {
	if d.opts.Interval <= 0 {
		log.Println("Periodic refresh is disabled. Not starting.")
		return
	}
	log.Printf("Starting periodic refresh every %s...", d.opts.Interval)

	timer := time.NewTimer(d.opts.Interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Periodic refresh shutting down.")
			return
		case <-timer.C:
			if _, err := d.Refresh(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Printf("Error refreshing directory: %v", err)
			}
			timer.Reset(d.opts.Interval)
		}
	}
}
