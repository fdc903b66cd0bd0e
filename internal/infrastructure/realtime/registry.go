// Package realtime tracks which users hold a live socket and pushes events to them.
package realtime

import (
	"sort"
	"sync"
)

// Registry maps user ids to their current connection id and back.
// A user holds at most one forward entry; a newer connection replaces it.
type Registry struct {
	mu     sync.RWMutex
	byUser map[string]string
	byConn map[string]string
}

func NewRegistry() *Registry {
	return &Registry{
		byUser: make(map[string]string),
		byConn: make(map[string]string),
	}
}

// Connect records connID as userID's live connection and returns the online users.
func (r *Registry) Connect(userID, connID string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byUser[userID] = connID
	r.byConn[connID] = userID
	return r.snapshotLocked()
}

// Disconnect drops connID. The forward entry is only removed while it still
// points at connID, so a stale connection closing does not evict a newer one.
func (r *Registry) Disconnect(connID string) (userID string, removed bool, online []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	userID, ok := r.byConn[connID]
	if !ok {
		return "", false, r.snapshotLocked()
	}
	delete(r.byConn, connID)

	if r.byUser[userID] == connID {
		delete(r.byUser, userID)
		removed = true
	}
	return userID, removed, r.snapshotLocked()
}

func (r *Registry) Lookup(userID string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	connID, ok := r.byUser[userID]
	return connID, ok
}

// OnlineSnapshot returns the online user ids in ascending order.
func (r *Registry) OnlineSnapshot() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshotLocked()
}

func (r *Registry) snapshotLocked() []string {
	online := make([]string, 0, len(r.byUser))
	for userID := range r.byUser {
		online = append(online, userID)
	}
	sort.Strings(online)
	return online
}
