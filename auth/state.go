package auth

import (
	"strings"
	"sync"
)

// User is the signed-in user as the page sees it.
type User struct {
	DisplayName string `json:"display_name"`
	Email       string `json:"email,omitempty"`
}

// State is a read-only snapshot of the authentication status.
type State struct {
	IsAuthenticated bool  `json:"is_authenticated"`
	User            *User `json:"user,omitempty"`
}

// Anonymous is the state of a visitor without a valid token.
var Anonymous = State{}

// SignedIn returns an authenticated state for a user with the given name.
func SignedIn(displayName string) State {
	return State{IsAuthenticated: true, User: &User{DisplayName: displayName}}
}

// FirstName returns the first whitespace-separated token of the user's
// display name, or "" when there is no user or the name is blank.
func (s State) FirstName() string {
	if s.User == nil {
		return ""
	}
	fields := strings.Fields(s.User.DisplayName)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// Source supplies auth snapshots to the page. The page only ever reads.
type Source interface {
	Snapshot() State
}

// Static is a Source that always returns the same state.
type Static State

func (s Static) Snapshot() State { return State(s) }

// Provider owns the current auth state and publishes changes to
// subscribers. It is safe for concurrent use.
type Provider struct {
	mu     sync.RWMutex
	state  State
	subs   map[int]chan State
	nextID int
}

// NewProvider creates a provider holding initial.
func NewProvider(initial State) *Provider {
	return &Provider{state: initial, subs: make(map[int]chan State)}
}

// Snapshot returns the current state.
func (p *Provider) Snapshot() State {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state
}

// Set replaces the current state and notifies subscribers. A subscriber
// that has not drained its previous update only sees the latest one.
func (p *Provider) Set(s State) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = s
	for _, ch := range p.subs {
		select {
		case <-ch:
		default:
		}
		ch <- s
	}
}

// Subscribe returns a channel of state updates and a function that
// unsubscribes and closes the channel.
func (p *Provider) Subscribe() (<-chan State, func()) {
	p.mu.Lock()
	defer p.mu.Unlock()

	id := p.nextID
	p.nextID++
	ch := make(chan State, 1)
	p.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			p.mu.Lock()
			defer p.mu.Unlock()
			delete(p.subs, id)
			close(ch)
		})
	}
}
