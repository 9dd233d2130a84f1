package names

import (
	"math/rand/v2"
	"slices"
	"sync"
)

var defaultNames = []string{
	"Alice Johnson",
	"Bob Smith",
	"Charlie Brown",
	"Diana Prince",
	"Eve Anderson",
	"Frank Miller",
	"Grace Lee",
	"Henry Wilson",
	"Iris Chen",
	"Jack Davis",
}

// DefaultNames returns a copy of the names every new store starts with.
func DefaultNames() []string {
	return slices.Clone(defaultNames)
}

// Store is an ordered, append-only list of names safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	names []string
	intn  func(n int) int
}

type StoreOption func(*Store)

// WithNames replaces the default seed. Passing no names yields an empty store.
func WithNames(names ...string) StoreOption {
	return func(s *Store) { s.names = slices.Clone(names) }
}

// WithRandom sets the index source used by PickRandom. fn must return a value
// in [0, n).
func WithRandom(fn func(n int) int) StoreOption {
	if fn == nil {
		panic("names: nil random source")
	}
	return func(s *Store) { s.intn = fn }
}

// NewStore returns a store seeded with DefaultNames.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		names: DefaultNames(),
		intn:  rand.IntN,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PickRandom returns a uniformly chosen name, or ErrNotFound when the store
// is empty.
func (s *Store) PickRandom() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.names) == 0 {
		return "", ErrNotFound
	}
	return s.names[s.intn(len(s.names))], nil
}

// Add appends name and returns the new size of the store.
func (s *Store) Add(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.names = append(s.names, name)
	return len(s.names)
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.names)
}

// Names returns a snapshot of the store in insertion order.
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.names)
}
