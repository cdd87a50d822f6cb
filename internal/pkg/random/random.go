// Package random provides the injectable randomness used by world
// generation, enemy spawning and dice.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-tactics/internal/errors"
)

// Source yields uniform draws
type Source interface {
	// Float64 returns a value in [0, 1)
	Float64() float64
	// Intn returns a value in [0, n). n must be positive.
	Intn(n int) int
}

type lockedSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeeded returns a reproducible source
func NewSeeded(seed int64) Source {
	return &lockedSource{rng: rand.New(rand.NewSource(seed))} // #nosec G404
}

// NewEntropy returns a source seeded from the operating system
func NewEntropy() Source {
	return NewSeeded(EntropySeed())
}

// EntropySeed reads a seed from crypto/rand
func EntropySeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		panic("crypto/rand.Read failed: " + err.Error())
	}
	return int64(binary.LittleEndian.Uint64(b[:]) >> 1)
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

func (s *lockedSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

// Roller adapts a Source to the rpg-toolkit dice.Roller interface so the
// same seed drives both world generation and dice.
type Roller struct {
	src Source
}

// NewRoller wraps src
func NewRoller(src Source) *Roller {
	return &Roller{src: src}
}

var _ dice.Roller = (*Roller)(nil)

// Roll returns a value in [1, size]
func (r *Roller) Roll(size int) (int, error) {
	if size < 1 {
		return 0, errors.InvalidArgumentf("die size must be positive, got %d", size)
	}
	return r.src.Intn(size) + 1, nil
}

// RollN rolls count dice of the given size
func (r *Roller) RollN(count, size int) ([]int, error) {
	if count < 0 {
		return nil, errors.InvalidArgumentf("dice count must not be negative, got %d", count)
	}
	results := make([]int, count)
	for i := range results {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		results[i] = v
	}
	return results, nil
}

// Chance reports whether a draw from src exceeds threshold
func Chance(src Source, threshold float64) bool {
	return src.Float64() > threshold
}
