package service

import (
	"math/rand"
	"sync"
)

// lockedShuffler guards a rand.Rand so concurrent duel creations can share
// one randomness source.
type lockedShuffler struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewShuffler returns a Shuffler seeded with the given value. Production
// callers seed from the clock; tests pass a fixed seed for reproducible
// shuffles.
func NewShuffler(seed int64) Shuffler {
	return &lockedShuffler{r: rand.New(rand.NewSource(seed))}
}

func (s *lockedShuffler) Shuffle(n int, swap func(i, j int)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.r.Shuffle(n, swap)
}
