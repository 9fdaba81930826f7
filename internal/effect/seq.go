package effect

// Seq is an ordered, capacity-capped sequence. Pushing onto a full Seq
// evicts the oldest entries first.
type Seq[T any] struct {
	items []T
	max   int
}

// NewSeq creates a sequence holding at most max entries.
func NewSeq[T any](max int) *Seq[T] {
	if max < 1 {
		max = 1
	}
	return &Seq[T]{items: make([]T, 0, max), max: max}
}

// Push appends v, evicting the oldest entry when the sequence is full.
func (s *Seq[T]) Push(v T) {
	s.items = append(s.items, v)
	if over := len(s.items) - s.max; over > 0 {
		clear(s.items[:over])
		s.items = s.items[over:]
	}
}

// Retain keeps the entries for which keep returns true, preserving order.
// keep may mutate the entry it is given.
func (s *Seq[T]) Retain(keep func(*T) bool) {
	n := 0
	for i := range s.items {
		if keep(&s.items[i]) {
			s.items[n] = s.items[i]
			n++
		}
	}
	clear(s.items[n:])
	s.items = s.items[:n]
}

// Each calls fn on every entry in order.
func (s *Seq[T]) Each(fn func(*T)) {
	for i := range s.items {
		fn(&s.items[i])
	}
}

// Items returns the live entries, oldest first. The slice is only valid
// until the next mutation.
func (s *Seq[T]) Items() []T { return s.items }

// Len returns the number of live entries.
func (s *Seq[T]) Len() int { return len(s.items) }

// Cap returns the configured capacity.
func (s *Seq[T]) Cap() int { return s.max }
