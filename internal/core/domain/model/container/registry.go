package container

import (
	"sync"

	"freight/internal/core/domain/model/kernel"
)

// Registry is the fleet registry: the process-scoped allocator of container
// serial numbers. It keeps one counter per serial prefix; counters start at
// zero and only ever move forward, so sequences begin at 1, are strictly
// increasing in creation order, and are never reused even after a container
// is discarded.
//
// The registry is passed explicitly to whatever constructs containers rather
// than living in package-level state, which keeps the dependency visible and
// lets tests inject a fresh registry each time. A mutex guards the counters
// so exposing construction to concurrent callers cannot mint duplicate
// serials.
type Registry struct {
	mu   sync.Mutex
	next map[kernel.Prefix]uint64
}

// NewRegistry creates a registry with all counters at zero.
func NewRegistry() *Registry {
	return &Registry{
		next: make(map[kernel.Prefix]uint64),
	}
}

// Next mints the next serial number for the given prefix.
func (r *Registry) Next(prefix kernel.Prefix) (kernel.SerialNumber, error) {
	if err := prefix.Validate(); err != nil {
		return kernel.SerialNumber{}, err
	}

	r.mu.Lock()
	r.next[prefix]++
	sequence := r.next[prefix]
	r.mu.Unlock()

	return kernel.NewSerialNumber(prefix, sequence)
}

// Seed fast-forwards the counter of a prefix to lastSequence, so serials
// restored from persistence are never minted again after a restart. Seeding
// never moves a counter backward.
func (r *Registry) Seed(prefix kernel.Prefix, lastSequence uint64) error {
	if err := prefix.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	if lastSequence > r.next[prefix] {
		r.next[prefix] = lastSequence
	}
	r.mu.Unlock()

	return nil
}
