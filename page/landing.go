// Package page renders the TestMaster landing page.
//
// A Landing is one page instance. Render is a pure function of the auth
// snapshot, the mount flag and the content tables; the only state the
// instance owns is the mount flag, which goes from false to true once.
package page

import (
	"context"
	"sync/atomic"

	"github.com/testmaster-app/testmaster/auth"
	"github.com/testmaster-app/testmaster/content"
	"github.com/testmaster-app/testmaster/registry"
	"github.com/testmaster-app/testmaster/view"
)

// Routes the page links to. Navigation itself belongs to the router.
const (
	LoginPath     = "/login"
	RegisterPath  = "/register"
	DashboardPath = "/dashboard"
)

type Landing struct {
	auth     auth.Source
	tables   content.Tables
	registry *registry.Registry

	mounted   atomic.Bool
	scheduled atomic.Bool
}

type Option func(*Landing)

// WithRegistry tags rendered nodes in r. Output is unaffected.
func WithRegistry(r *registry.Registry) Option {
	return func(l *Landing) { l.registry = r }
}

// WithTables replaces the default content tables.
func WithTables(t content.Tables) Option {
	return func(l *Landing) { l.tables = t }
}

// New creates a page instance that reads auth state from src. A nil src
// renders as anonymous.
func New(src auth.Source, opts ...Option) *Landing {
	if src == nil {
		src = auth.Static(auth.Anonymous)
	}
	l := &Landing{auth: src, tables: content.Default()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Mounted reports the mount flag.
func (l *Landing) Mounted() bool {
	return l.mounted.Load()
}

// Mount schedules the one-shot flip of the mount flag on s. Only the first
// call schedules anything; it reports whether this call did.
func (l *Landing) Mount(s Scheduler) bool {
	if !l.scheduled.CompareAndSwap(false, true) {
		return false
	}
	s.Schedule(func() { l.mounted.Store(true) })
	return true
}

// Render builds the view tree for the current auth snapshot and mount flag.
func (l *Landing) Render() *view.Node {
	return l.RenderState(l.auth.Snapshot(), l.Mounted())
}

// RenderState builds the view tree for an explicit state. It reads nothing
// from the instance except the content tables and registry.
func (l *Landing) RenderState(state auth.State, mounted bool) *view.Node {
	return l.tag("landing-page-root", "Landing Page", "",
		l.tag("main-wrapper", "Main Wrapper", "Main page wrapper with gradient background",
			view.Div(view.Class("min-h-screen bg-gradient-to-br from-slate-900 via-blue-900 to-slate-900"),
				l.header(state),
				l.hero(state, mounted),
				l.statsSection(),
				l.featuresSection(),
				l.testTypesSection(),
				l.benefitsSection(),
				l.ctaSection(),
				l.footer(),
			)))
}

// Follow re-renders whenever the auth collaborator publishes a new state
// and passes each tree to fn. It returns when ctx is done or updates is
// closed.
func (l *Landing) Follow(ctx context.Context, updates <-chan auth.State, fn func(*view.Node)) {
	for {
		select {
		case <-ctx.Done():
			return
		case s, ok := <-updates:
			if !ok {
				return
			}
			fn(l.RenderState(s, l.Mounted()))
		}
	}
}

func (l *Landing) tag(id, name, description string, n *view.Node) *view.Node {
	return l.registry.Wrap(registry.Meta{ID: id, Name: name, Description: description}, n)
}
