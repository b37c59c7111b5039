// Package tests provides a scripted rdrand.Source for tests.
package tests

import (
	"math/rand"
	"sync"

	"github.com/oasisprotocol/rdrand/common/crypto/rdrand"
)

var _ rdrand.Source = (*ScriptedSource)(nil)

// ScriptedSource is a deterministic, instrumented rdrand.Source.
//
// Every call to Step is an invocation with a zero based index. Invocations
// can be scripted to fail, and successful invocations return scripted
// values first and values from a seeded math/rand generator afterwards.
type ScriptedSource struct {
	sync.Mutex

	rng         *rand.Rand
	unsupported bool

	failing  map[int]struct{}
	failFrom int

	values []uint64

	calls  int
	counts map[rdrand.Width]int
}

// NewScriptedSource creates a new scripted source that never fails.
func NewScriptedSource(seed int64) *ScriptedSource {
	return &ScriptedSource{
		rng:      rand.New(rand.NewSource(seed)), // nolint: gosec
		failing:  make(map[int]struct{}),
		failFrom: -1,
		counts:   make(map[rdrand.Width]int),
	}
}

// SetSupported sets the result of Supported.
func (s *ScriptedSource) SetSupported(supported bool) {
	s.Lock()
	defer s.Unlock()

	s.unsupported = !supported
}

// FailInvocations makes the invocations with the given indices fail.
func (s *ScriptedSource) FailInvocations(indices ...int) {
	s.Lock()
	defer s.Unlock()

	for _, idx := range indices {
		s.failing[idx] = struct{}{}
	}
}

// FailRange makes count consecutive invocations starting at index from fail.
func (s *ScriptedSource) FailRange(from, count int) {
	for i := 0; i < count; i++ {
		s.FailInvocations(from + i)
	}
}

// FailFrom makes every invocation with an index of at least from fail.
func (s *ScriptedSource) FailFrom(from int) {
	s.Lock()
	defer s.Unlock()

	s.failFrom = from
}

// SetValues queues values returned, truncated to the requested width, by
// the next successful invocations.
func (s *ScriptedSource) SetValues(values ...uint64) {
	s.Lock()
	defer s.Unlock()

	s.values = append(s.values, values...)
}

// Calls returns the total number of invocations.
func (s *ScriptedSource) Calls() int {
	s.Lock()
	defer s.Unlock()

	return s.calls
}

// Count returns the number of invocations at the given width.
func (s *ScriptedSource) Count(w rdrand.Width) int {
	s.Lock()
	defer s.Unlock()

	return s.counts[w]
}

// Supported implements rdrand.Source.
func (s *ScriptedSource) Supported() bool {
	s.Lock()
	defer s.Unlock()

	return !s.unsupported
}

// Step implements rdrand.Source.
func (s *ScriptedSource) Step(w rdrand.Width) (uint64, bool) {
	s.Lock()
	defer s.Unlock()

	idx := s.calls
	s.calls++
	s.counts[w]++

	if _, fail := s.failing[idx]; fail || (s.failFrom >= 0 && idx >= s.failFrom) {
		return 0, false
	}

	var v uint64
	switch len(s.values) {
	case 0:
		v = s.rng.Uint64()
	default:
		v, s.values = s.values[0], s.values[1:]
	}
	if w < rdrand.Width64 {
		v &= (uint64(1) << w) - 1
	}
	return v, true
}
