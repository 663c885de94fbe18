package limiter

import (
	"sync"
	"time"
)

// MemoryLimiter is an in-memory sliding-window hit counter keyed by an
// arbitrary string (client IP for public pages).
type MemoryLimiter struct {
	mu      sync.Mutex
	history map[string][]time.Time
	window  time.Duration
	maxHits int
	now     func() time.Time
}

func NewMemoryLimiter(window time.Duration, maxHits int) *MemoryLimiter {
	return &MemoryLimiter{
		history: make(map[string][]time.Time),
		window:  window,
		maxHits: maxHits,
		now:     time.Now,
	}
}

// TooMany reports whether key already used up its budget inside the window.
// A non-positive budget disables limiting.
func (r *MemoryLimiter) TooMany(key string) bool {
	if r.maxHits <= 0 {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.prune(key)) >= r.maxHits
}

func (r *MemoryLimiter) Hit(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.history[key] = append(r.prune(key), r.now())
}

// Allow records a hit for key unless it is already over budget.
func (r *MemoryLimiter) Allow(key string) bool {
	if r.maxHits <= 0 {
		return true
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	hits := r.prune(key)
	if len(hits) >= r.maxHits {
		return false
	}

	r.history[key] = append(hits, r.now())

	return true
}

// prune must be called with mu held.
func (r *MemoryLimiter) prune(key string) []time.Time {
	now := r.now()
	slice := r.history[key]

	pruned := slice[:0]
	for _, t := range slice {
		if now.Sub(t) <= r.window {
			pruned = append(pruned, t)
		}
	}

	if len(pruned) == 0 {
		delete(r.history, key)
		return nil
	}

	r.history[key] = pruned

	return pruned
}
