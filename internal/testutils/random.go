package testutils

import (
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

// ScriptedRoller returns queued values in order, then Fallback. A queued
// value larger than the die is clamped to the die size.
type ScriptedRoller struct {
	mu       sync.Mutex
	values   []int
	Fallback int
}

var _ dice.Roller = (*ScriptedRoller)(nil)

// NewScriptedRoller queues values. Once drained every roll returns 1.
func NewScriptedRoller(values ...int) *ScriptedRoller {
	return &ScriptedRoller{values: values, Fallback: 1}
}

// Push appends values to the queue
func (r *ScriptedRoller) Push(values ...int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = append(r.values, values...)
}

// Remaining is the number of unread values
func (r *ScriptedRoller) Remaining() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.values)
}

// Roll implements dice.Roller
func (r *ScriptedRoller) Roll(size int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v := r.Fallback
	if len(r.values) > 0 {
		v = r.values[0]
		r.values = r.values[1:]
	}
	return max(1, min(v, size)), nil
}

// RollN implements dice.Roller
func (r *ScriptedRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		out[i], _ = r.Roll(size)
	}
	return out, nil
}

// ScriptedSource is a random.Source returning queued floats, then Fallback.
// Intn maps the float onto [0, n).
type ScriptedSource struct {
	mu       sync.Mutex
	values   []float64
	Fallback float64
}

// NewScriptedSource queues values. Once drained every draw returns 0.
func NewScriptedSource(values ...float64) *ScriptedSource {
	return &ScriptedSource{values: values}
}

// Push appends values to the queue
func (s *ScriptedSource) Push(values ...float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = append(s.values, values...)
}

// Float64 implements random.Source
func (s *ScriptedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.values) == 0 {
		return s.Fallback
	}
	v := s.values[0]
	s.values = s.values[1:]
	return v
}

// Intn implements random.Source
func (s *ScriptedSource) Intn(n int) int {
	v := int(s.Float64() * float64(n))
	return max(0, min(v, n-1))
}
