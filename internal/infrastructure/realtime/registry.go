package realtime

import (
	"sync"
)

// Link is the registry's view of a live client connection. *Connection
// satisfies it; tests can substitute stubs.
type Link interface {
	Key() string
	Owner() string
	Push(payload []byte) error
}

// Registry tracks the set of live connections per user. A user may hold any
// number of simultaneous connections (multiple tabs, multiple devices), and a
// user with none simply has no entry. All access is mutex-mediated; the
// registry is the only shared mutable presence state in the process.
type Registry struct {
	mu    sync.RWMutex
	links map[string]Link            // connection key -> link
	users map[string]map[string]Link // userID -> connection key -> link
}

// NewRegistry constructs an initialized Registry.
func NewRegistry() *Registry {
	return &Registry{
		links: make(map[string]Link),
		users: make(map[string]map[string]Link),
	}
}

// Join registers a live connection for userID. Idempotent per connection key.
func (r *Registry) Join(userID string, l Link) {
	if userID == "" || l == nil {
		return
	}
	r.mu.Lock()
	r.links[l.Key()] = l
	set := r.users[userID]
	if set == nil {
		set = make(map[string]Link)
		r.users[userID] = set
	}
	set[l.Key()] = l
	r.mu.Unlock()
}

// Leave removes the connection from whichever user set holds it. The user's
// entry disappears entirely once its connection set becomes empty.
func (r *Registry) Leave(l Link) {
	if l == nil {
		return
	}
	r.mu.Lock()
	r.removeLocked(l.Key(), l.Owner())
	r.mu.Unlock()
}

// LiveConnections returns the current connections for userID. The slice is a
// snapshot; an empty result is not an error, it means deliver nothing live.
func (r *Registry) LiveConnections(userID string) []Link {
	r.mu.RLock()
	defer r.mu.RUnlock()
	set := r.users[userID]
	if len(set) == 0 {
		return nil
	}
	out := make([]Link, 0, len(set))
	for _, l := range set {
		out = append(out, l)
	}
	return out
}

// Broadcast pushes payload to every live connection of the given users,
// deduplicated across users. Delivery to each connection is independent and
// best-effort; connections that fail to accept the push are evicted. Returns
// the number of connections that accepted the payload.
func (r *Registry) Broadcast(payload []byte, userIDs ...string) int {
	r.mu.RLock()
	seen := make(map[string]Link)
	for _, uid := range userIDs {
		for key, l := range r.users[uid] {
			seen[key] = l
		}
	}
	r.mu.RUnlock()

	delivered := 0
	var dead []Link
	for _, l := range seen {
		if err := l.Push(payload); err != nil {
			dead = append(dead, l)
			continue
		}
		delivered++
	}

	if len(dead) > 0 {
		r.mu.Lock()
		for _, l := range dead {
			r.removeLocked(l.Key(), l.Owner())
		}
		r.mu.Unlock()
	}
	return delivered
}

// Close drops all tracked state. Connections themselves are closed by their
// owners; the registry only forgets them.
func (r *Registry) Close() {
	r.mu.Lock()
	r.links = make(map[string]Link)
	r.users = make(map[string]map[string]Link)
	r.mu.Unlock()
}

func (r *Registry) removeLocked(key, userID string) {
	delete(r.links, key)
	if set, ok := r.users[userID]; ok {
		delete(set, key)
		if len(set) == 0 {
			delete(r.users, userID)
		}
	}
}
