package llm

import (
	"context"
	"sync"
	"time"
)

// NewRateLimitedProvider caps how many completion calls per minute reach
// the wrapped provider. The assistant only rephrases short lead-in
// sentences, so rpm stays small; a caller over the budget blocks until a
// slot accrues or its context ends.
func NewRateLimitedProvider(provider Provider, rpm int) Provider {
	return &throttledProvider{
		inner:    provider,
		rpm:      rpm,
		budget:   float64(rpm),
		lastTick: time.Now(),
	}
}

// throttledProvider accrues call budget continuously at rpm per minute,
// up to a burst of rpm.
type throttledProvider struct {
	inner Provider
	rpm   int

	mu       sync.Mutex
	budget   float64
	lastTick time.Time
}

func (t *throttledProvider) Name() string {
	return t.inner.Name()
}

func (t *throttledProvider) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	for !t.reserve() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(50 * time.Millisecond):
		}
	}
	return t.inner.Complete(ctx, req)
}

// reserve consumes one unit of budget if any has accrued.
func (t *throttledProvider) reserve() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := time.Now()
	t.budget += now.Sub(t.lastTick).Minutes() * float64(t.rpm)
	t.lastTick = now
	if burst := float64(t.rpm); t.budget > burst {
		t.budget = burst
	}

	if t.budget < 1 {
		return false
	}
	t.budget--
	return true
}
