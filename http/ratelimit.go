package http

import (
	"context"
	"strings"
	"sync"

	"github.com/fwojciec/checklist"
	"golang.org/x/time/rate"
)

var _ checklist.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter spaces out requests to each checklist site with a token
// bucket per host. "www." is ignored, so www.example.com and example.com
// share a bucket.
type DomainLimiter struct {
	rps   float64
	burst int

	mu      sync.Mutex
	buckets map[string]*rate.Limiter
}

// NewDomainLimiter creates a limiter allowing rps requests per second to
// each host with no bursting.
func NewDomainLimiter(rps float64) *DomainLimiter {
	return NewDomainLimiterWithBurst(rps, 1)
}

// NewDomainLimiterWithBurst is like NewDomainLimiter but lets burst
// requests through back to back before throttling starts.
func NewDomainLimiterWithBurst(rps float64, burst int) *DomainLimiter {
	return &DomainLimiter{
		rps:     rps,
		burst:   max(burst, 1),
		buckets: make(map[string]*rate.Limiter),
	}
}

// Wait blocks until a request to domain is allowed.
// Returns an error if ctx is done first.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return d.bucket(domain).Wait(ctx)
}

func (d *DomainLimiter) bucket(domain string) *rate.Limiter {
	key := strings.TrimPrefix(strings.ToLower(domain), "www.")

	d.mu.Lock()
	defer d.mu.Unlock()
	b, ok := d.buckets[key]
	if !ok {
		b = rate.NewLimiter(rate.Limit(d.rps), d.burst)
		d.buckets[key] = b
	}
	return b
}
