package random

import (
	"math/rand"
	"sync"
	"time"
)

// Random picks uniformly distributed indexes. Game code draws every task,
// word and greeting through it so tests can pin the outcome.
//
//go:generate mockgen -package=mocks -destination=mocks/mock_random.go github.com/KirkDiggler/charades/internal/common/random Random
type Random interface {
	// Intn returns a random int in [0, n). It returns 0 when n <= 0.
	Intn(n int) int
}

// Config for the random source
type Config struct {
	// Optional seed for testing
	Seed int64
}

// Rand implements Random on top of math/rand
type Rand struct {
	mu     sync.Mutex
	random *rand.Rand
}

// New creates a new random source
func New(cfg *Config) *Rand {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &Rand{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Intn returns a random int in [0, n)
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}

	// rand.Rand is not safe for concurrent use and one source is shared by every session
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.random.Intn(n)
}
