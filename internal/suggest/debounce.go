package suggest

import (
	"context"
	"sync"
	"time"
)

// Debouncer coalesces a burst of attempts into one. Every attempt enters
// with a fresh generation; after the quiet period only the newest
// generation is still current, everything older drops its work.
type Debouncer struct {
	mu    sync.Mutex
	quiet time.Duration
	gen   uint64
}

func NewDebouncer(quiet time.Duration) *Debouncer {
	return &Debouncer{quiet: quiet}
}

// Enter registers a new attempt and supersedes all earlier ones.
func (d *Debouncer) Enter() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.gen++
	return d.gen
}

// Wait sleeps through the quiet period. It reports false when the context
// ended first or a newer attempt arrived while waiting.
func (d *Debouncer) Wait(ctx context.Context, gen uint64) bool {
	timer := time.NewTimer(d.quiet)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
	}
	return d.Current(gen)
}

// Current reports whether gen is still the newest attempt.
func (d *Debouncer) Current(gen uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.gen == gen
}

// Debounced wraps a suggester so rapid successive calls yield only the
// final one, mirroring a user still typing a description. Superseded
// calls answer "no suggestion" without reaching the classifier.
type Debounced struct {
	gateway   *Gateway
	debouncer *Debouncer
}

func NewDebounced(gateway *Gateway, quiet time.Duration) *Debounced {
	return &Debounced{
		gateway:   gateway,
		debouncer: NewDebouncer(quiet),
	}
}

func (d *Debounced) Suggest(ctx context.Context, description string) (string, bool) {
	gen := d.debouncer.Enter()
	if !d.debouncer.Wait(ctx, gen) {
		return "", false
	}

	id, ok := d.gateway.Suggest(ctx, description)

	// A newer attempt may have arrived while the classifier ran; its
	// result wins and this one is dropped.
	if !d.debouncer.Current(gen) {
		return "", false
	}
	return id, ok
}
