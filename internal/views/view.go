// Package views defines the five dashboard views on top of listview: their
// endpoints, field fallbacks and how their rows are drawn.
package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/mesh-intelligence/octofit/internal/listview"
	"github.com/mesh-intelligence/octofit/internal/render"
	"github.com/mesh-intelligence/octofit/pkg/types"
)

// Mounted is one running view, independent of its row type.
type Mounted interface {
	Name() string
	Mount(ctx context.Context)
	Done() <-chan struct{}
	Unmount()
	// Panel draws the current phase and rows.
	Panel() render.Panel
	// Rows returns the current rows as a slice of the view's row type.
	Rows() any
}

// View describes one navigable dashboard view.
type View struct {
	Name  string // command and route name
	Label string // navigation label
	Route string // web route
	Path  string // endpoint path under /api/

	mount func(f listview.Fetcher, env Env) Mounted
}

// New creates an unmounted instance of the view.
func (v View) New(f listview.Fetcher, env Env) Mounted {
	return v.mount(f, env)
}

// Load mounts m and waits for it to leave Loading or for ctx to end.
func Load(ctx context.Context, m Mounted) render.Panel {
	m.Mount(ctx)
	select {
	case <-m.Done():
	case <-ctx.Done():
	}
	return m.Panel()
}

type mounted[T any] struct {
	*listview.ListView[T]
	draw func(types.State[T]) render.Panel
}

func mount[T any](def listview.Definition[T], f listview.Fetcher, draw func(types.State[T]) render.Panel) Mounted {
	return mounted[T]{ListView: listview.New(def, f), draw: draw}
}

func (m mounted[T]) Panel() render.Panel {
	return m.draw(m.State())
}

func (m mounted[T]) Rows() any {
	return m.State().Items
}

// All returns the views in navigation order.
func All() []View {
	return []View{Activities, Users, Teams, Leaderboard, Workouts}
}

// Lookup finds a view by name, label or endpoint path, ignoring case.
func Lookup(name string) (View, error) {
	n := strings.ToLower(strings.Trim(name, "/ "))
	for _, v := range All() {
		if n == v.Name || n == v.Path || n == strings.ToLower(v.Label) {
			return v, nil
		}
	}
	return View{}, fmt.Errorf("%w %q (valid: %s)", types.ErrUnknownView, name, strings.Join(Names(), ", "))
}

// Names lists the view names in navigation order.
func Names() []string {
	all := All()
	names := make([]string, len(all))
	for i, v := range all {
		names[i] = v.Name
	}
	return names
}

// Entities returns a view of the raw normalized collection at path, used
// where records are needed as the API sent them.
func Entities(path string, f listview.Fetcher) *listview.ListView[types.Entity] {
	return listview.New(listview.Definition[types.Entity]{
		Name: path,
		Path: path,
		Map:  func(e types.Entity, _ int) types.Entity { return e },
	}, f)
}

// basePanel fills the parts of a panel every view shares.
func basePanel(name, title, subtitle string, empty render.EmptyState, phase types.Phase) render.Panel {
	return render.Panel{
		View:     name,
		Title:    title,
		Subtitle: subtitle,
		Phase:    phase,
		Empty:    empty,
	}
}
