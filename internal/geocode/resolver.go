package geocode

import (
	"context"
	"log"
	"time"
)

// Lookuper resolves a single address upstream.
type Lookuper interface {
	Lookup(ctx context.Context, address string) (*Point, error)
}

// Resolver deduplicates and paces address lookups for one ingestion run.
// Upstream calls are strictly sequential with a minimum delay between them;
// that is part of the upstream service's usage contract, not a tuning knob.
// Failed or empty lookups are cached as "no result" for the rest of the run.
type Resolver struct {
	client   Lookuper
	delay    time.Duration
	cache    map[string]*Point // nil value = looked up, no result
	lastCall time.Time
}

// NewResolver creates a per-run resolver. The cache lives and dies with it.
func NewResolver(client Lookuper, delay time.Duration) *Resolver {
	return &Resolver{
		client: client,
		delay:  delay,
		cache:  make(map[string]*Point),
	}
}

// Lookup returns the cached result for an address, or performs one paced
// upstream call. A nil Point means no coordinates this run. The error is
// non-nil only when the context is cancelled mid-wait.
func (r *Resolver) Lookup(ctx context.Context, address string) (*Point, error) {
	if point, ok := r.cache[address]; ok {
		return point, nil
	}

	if err := r.pace(ctx); err != nil {
		return nil, err
	}

	point, err := r.client.Lookup(ctx, address)
	r.lastCall = time.Now()
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		// Service failure degrades to "no coordinates this run".
		log.Printf("geocode lookup failed for %q: %v", address, err)
		point = nil
	}

	r.cache[address] = point
	return point, nil
}

// Cached returns the cached result for an address, if any was recorded.
func (r *Resolver) Cached(address string) (*Point, bool) {
	point, ok := r.cache[address]
	return point, ok
}

// pace blocks until the minimum delay since the previous upstream call has
// elapsed. No-op before the first call.
func (r *Resolver) pace(ctx context.Context) error {
	if r.lastCall.IsZero() {
		return nil
	}
	wait := r.delay - time.Since(r.lastCall)
	if wait <= 0 {
		return nil
	}
	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
