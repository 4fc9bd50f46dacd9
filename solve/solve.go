// Package solve provides a registry of two-phase puzzle solvers keyed by a
// numeric identifier.
package solve

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"
)

// Sentinel errors for registry operations.
var (
	// ErrBadID is returned for non-positive solver identifiers.
	ErrBadID = errors.New("solve: solver id must be positive")

	// ErrNilFactory is returned when a nil factory is registered.
	ErrNilFactory = errors.New("solve: factory is nil")

	// ErrDuplicateSolver is returned when an id is registered twice.
	ErrDuplicateSolver = errors.New("solve: solver id already registered")

	// ErrUnknownSolver is returned by Run for an unregistered id.
	ErrUnknownSolver = errors.New("solve: no solver registered for id")
)

// Solver is the shared two-phase contract every puzzle implements: two
// independent answers computed from the same raw input text. Each solver
// owns its own parsing; implementations must be side-effect free.
type Solver interface {
	PartOne(input string) (string, error)
	PartTwo(input string) (string, error)
}

// Factory constructs a fresh Solver. A new instance is built per Run, so no
// state leaks between invocations.
type Factory func() Solver

// Report carries both answers and their computation times.
type Report struct {
	PartOne     string
	PartTwo     string
	PartOneTime time.Duration
	PartTwoTime time.Duration
}

// Registry maps solver identifiers to factories. It is safe for concurrent
// registration and lookup.
type Registry struct {
	mu        sync.RWMutex
	factories map[int]Factory
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[int]Factory)}
}

// Register binds id to fn. Returns ErrBadID for id ≤ 0, ErrNilFactory for a
// nil factory, ErrDuplicateSolver if id is already taken.
func (r *Registry) Register(id int, fn Factory) error {
	if id <= 0 {
		return fmt.Errorf("%w: %d", ErrBadID, id)
	}
	if fn == nil {
		return fmt.Errorf("%w: id %d", ErrNilFactory, id)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.factories[id]; dup {
		return fmt.Errorf("%w: %d", ErrDuplicateSolver, id)
	}
	r.factories[id] = fn

	return nil
}

// Lookup returns the factory bound to id.
func (r *Registry) Lookup(id int) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.factories[id]
	return fn, ok
}

// IDs returns all registered identifiers in ascending order.
func (r *Registry) IDs() []int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]int, 0, len(r.factories))
	for id := range r.factories {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// Run constructs a fresh solver for id, computes both parts on input, and
// reports answers with per-part timings. The context is checked before each
// part; cancellation between parts returns the context error.
// Printing the report is the caller's concern.
func (r *Registry) Run(ctx context.Context, id int, input string) (*Report, error) {
	fn, ok := r.Lookup(id)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSolver, id)
	}
	s := fn()
	rep := &Report{}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	begin := time.Now()
	one, err := s.PartOne(input)
	rep.PartOneTime = time.Since(begin)
	if err != nil {
		return nil, fmt.Errorf("solve: part one of %d: %w", id, err)
	}
	rep.PartOne = one

	if err = ctx.Err(); err != nil {
		return nil, err
	}
	begin = time.Now()
	two, err := s.PartTwo(input)
	rep.PartTwoTime = time.Since(begin)
	if err != nil {
		return nil, fmt.Errorf("solve: part two of %d: %w", id, err)
	}
	rep.PartTwo = two

	return rep, nil
}

// defaultRegistry backs the package-level convenience functions.
var defaultRegistry = NewRegistry()

// Register binds id to fn in the default registry.
func Register(id int, fn Factory) error {
	return defaultRegistry.Register(id, fn)
}

// Lookup returns the factory bound to id in the default registry.
func Lookup(id int) (Factory, bool) {
	return defaultRegistry.Lookup(id)
}

// IDs returns all identifiers registered in the default registry.
func IDs() []int {
	return defaultRegistry.IDs()
}

// Run executes the solver bound to id in the default registry.
func Run(ctx context.Context, id int, input string) (*Report, error) {
	return defaultRegistry.Run(ctx, id, input)
}
