// Package listview implements the data-fetch list-view contract shared by
// every dashboard view: one fetch per mount, three phases, one mutation.
package listview

import (
	"context"
	"sync"

	"github.com/mesh-intelligence/octofit/pkg/types"
)

// Fetcher retrieves the collection behind an endpoint path.
type Fetcher interface {
	FetchCollection(ctx context.Context, path string) ([]types.Entity, error)
}

// Definition configures a ListView: which endpoint to read and how each
// entity maps to a display row.
type Definition[T any] struct {
	Name string // view name, e.g. "activities"
	Path string // endpoint path under /api/, e.g. "leaderboards"

	// Map converts the entity at position index into a row.
	Map func(e types.Entity, index int) T

	// Arrange optionally reorders the mapped rows before they are stored.
	Arrange func(rows []T) []T
}

// ListView is one mount of a Definition.
type ListView[T any] struct {
	def     Definition[T]
	fetcher Fetcher

	mu        sync.Mutex
	state     types.State[T]
	mounted   bool
	unmounted bool
	done      chan struct{}
}

// New creates an unmounted view in the Loading phase.
func New[T any](def Definition[T], fetcher Fetcher) *ListView[T] {
	return &ListView[T]{
		def:     def,
		fetcher: fetcher,
		state:   types.State[T]{Phase: types.Loading{}, Items: []T{}},
		done:    make(chan struct{}),
	}
}

// Name returns the view name.
func (v *ListView[T]) Name() string {
	return v.def.Name
}

// Mount schedules the single fetch for this view and returns immediately.
// Later calls are no-ops.
func (v *ListView[T]) Mount(ctx context.Context) {
	v.mu.Lock()
	if v.mounted {
		v.mu.Unlock()
		return
	}
	v.mounted = true
	v.mu.Unlock()

	go v.run(ctx)
}

// Load mounts the view and blocks until it leaves Loading or ctx ends.
func (v *ListView[T]) Load(ctx context.Context) types.State[T] {
	v.Mount(ctx)
	select {
	case <-v.done:
	case <-ctx.Done():
	}
	return v.State()
}

// Done is closed once the fetch has completed on a mounted view.
func (v *ListView[T]) Done() <-chan struct{} {
	return v.done
}

// Unmount detaches the view. A fetch still in flight is not cancelled; its
// result is dropped.
func (v *ListView[T]) Unmount() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.unmounted = true
}

// State returns a snapshot of the phase and rows.
func (v *ListView[T]) State() types.State[T] {
	v.mu.Lock()
	defer v.mu.Unlock()
	items := make([]T, len(v.state.Items))
	copy(items, v.state.Items)
	return types.State[T]{Phase: v.state.Phase, Items: items}
}

func (v *ListView[T]) run(ctx context.Context) {
	entities, err := v.fetcher.FetchCollection(ctx, v.def.Path)

	var next types.State[T]
	if err != nil {
		next = types.State[T]{Phase: types.Failed{Message: err.Error()}, Items: []T{}}
	} else {
		next = types.State[T]{Phase: types.Loaded{}, Items: v.mapAll(entities)}
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.unmounted || !types.IsLoading(v.state.Phase) {
		return
	}
	v.state = next
	close(v.done)
}

func (v *ListView[T]) mapAll(entities []types.Entity) []T {
	rows := make([]T, 0, len(entities))
	for i, e := range entities {
		rows = append(rows, v.def.Map(e, i))
	}
	if v.def.Arrange != nil {
		rows = v.def.Arrange(rows)
	}
	return rows
}
