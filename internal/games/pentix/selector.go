package pentix

import "math/rand"

// Selector chooses which catalog entry the next piece uses.
// Pick must return an index in [0, n).
type Selector interface {
	Pick(n int) int
}

// SelectorFunc adapts a plain function to the Selector interface.
type SelectorFunc func(n int) int

// Pick calls f(n).
func (f SelectorFunc) Pick(n int) int {
	return f(n)
}

// RandSelector picks uniformly at random from a seeded source.
type RandSelector struct {
	rng *rand.Rand
}

// NewRandSelector creates a uniform selector; equal seeds give equal sequences.
func NewRandSelector(seed int64) *RandSelector {
	return &RandSelector{rng: rand.New(rand.NewSource(seed))}
}

// Pick returns a uniformly distributed index in [0, n).
func (s *RandSelector) Pick(n int) int {
	return s.rng.Intn(n)
}

// SequenceSelector replays a fixed list of indices, wrapping around at the end.
// Indices are reduced modulo n.
type SequenceSelector struct {
	indices []int
	next    int
}

// NewSequenceSelector creates a selector that cycles through indices.
func NewSequenceSelector(indices ...int) *SequenceSelector {
	if len(indices) == 0 {
		indices = []int{0}
	}
	return &SequenceSelector{indices: indices}
}

// Pick returns the next index of the sequence.
func (s *SequenceSelector) Pick(n int) int {
	idx := s.indices[s.next%len(s.indices)]
	s.next++
	idx %= n
	if idx < 0 {
		idx += n
	}
	return idx
}
