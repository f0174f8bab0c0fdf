package engine

import (
	"math/rand"
	"sync"
)

// lockedRand guards a *rand.Rand with a mutex. *rand.Rand itself is not safe
// for concurrent use, and one generator is shared by every request.
type lockedRand struct {
	mu  sync.Mutex
	src *rand.Rand
}

// NewLockedRand returns a Rand that is safe to share across goroutines.
func NewLockedRand(seed int64) Rand {
	return &lockedRand{src: rand.New(rand.NewSource(seed))}
}

func (r *lockedRand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.src.Float64()
}
