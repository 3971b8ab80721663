package registry

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/testmaster-app/testmaster/view"
)

func TestWrapReturnsSameNode(t *testing.T) {
	r := New()
	n := view.Div(view.Class("hero"), view.Text("hi"))
	before, err := view.RenderString(n)
	require.NoError(t, err)

	got := r.Wrap(Meta{ID: "hero-content", Name: "Hero Content"}, n)

	assert.Same(t, n, got)
	after, err := view.RenderString(got)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestWrapRecordsEntries(t *testing.T) {
	r := New()
	r.Wrap(Meta{ID: "main-header", Name: "Main Header", Description: "Primary site header"}, view.Header())
	r.Wrap(Meta{ID: "main-header"}, view.Header())
	r.Wrap(Meta{ID: NoID}, view.Div())
	r.Wrap(Meta{}, view.Div())

	require.Equal(t, 1, r.Len())
	e, ok := r.Lookup("main-header")
	require.True(t, ok)
	assert.Equal(t, "Main Header", e.Name)
	assert.Equal(t, "Primary site header", e.Description)
	assert.Equal(t, "header", e.Tag)
	assert.Equal(t, 2, e.Count)

	_, ok = r.Lookup(NoID)
	assert.False(t, ok)
}

func TestEntriesSorted(t *testing.T) {
	r := New()
	for _, id := range []string{"stats-grid", "brand-name", "main-nav"} {
		r.Wrap(Meta{ID: id}, view.Div())
	}

	var ids []string
	for _, e := range r.Entries() {
		ids = append(ids, e.ID)
	}
	assert.Equal(t, []string{"brand-name", "main-nav", "stats-grid"}, ids)
}

func TestNilRegistryIsPassthrough(t *testing.T) {
	var r *Registry
	n := view.Div()

	assert.Same(t, n, r.Wrap(Meta{ID: "x"}, n))
	assert.Equal(t, 0, r.Len())
	assert.Nil(t, r.Entries())
	_, ok := r.Lookup("x")
	assert.False(t, ok)
}

func TestConcurrentWrap(t *testing.T) {
	r := New()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r.Wrap(Meta{ID: fmt.Sprintf("card-%d", i%4)}, view.Div())
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 4, r.Len())
	for _, e := range r.Entries() {
		assert.Equal(t, 4, e.Count)
	}
}
