// Package registry records design-time metadata for rendered nodes so that
// inspection tools can map what they see back to named parts of the page.
//
// Tagging never changes a node. A nil *Registry is valid and records
// nothing, so production renders simply pass nil.
package registry

import (
	"sort"
	"sync"

	"github.com/testmaster-app/testmaster/view"
)

// NoID marks nodes that carry no registry identity.
const NoID = "noID"

// Meta describes a tagged node.
type Meta struct {
	ID          string `json:"id"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

// Entry is a registered identifier and what has been seen of it.
type Entry struct {
	Meta
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// Registry is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*Entry
}

func New() *Registry {
	return &Registry{entries: make(map[string]*Entry)}
}

// Wrap records meta for n and returns n unchanged. Metadata with an empty
// or NoID identifier is ignored.
func (r *Registry) Wrap(meta Meta, n *view.Node) *view.Node {
	if r == nil || n == nil || meta.ID == "" || meta.ID == NoID {
		return n
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[meta.ID]
	if !ok {
		e = &Entry{Meta: meta, Tag: n.Tag}
		r.entries[meta.ID] = e
	}
	// The most recent description wins; card descriptions embed their data.
	if meta.Name != "" {
		e.Name = meta.Name
	}
	if meta.Description != "" {
		e.Description = meta.Description
	}
	e.Count++
	return n
}

// Lookup returns the entry for id.
func (r *Registry) Lookup(id string) (Entry, bool) {
	if r == nil {
		return Entry{}, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[id]
	if !ok {
		return Entry{}, false
	}
	return *e, true
}

// Entries returns every entry sorted by ID.
func (r *Registry) Entries() []Entry {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of distinct identifiers seen.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
