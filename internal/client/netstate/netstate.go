// Package netstate tracks whether the remote store is reachable and
// notifies registered listeners on transitions. The UI layer (or a
// probe loop) flips the flag; the sync engine only reads it and reacts
// to offline→online transitions by draining the queue.
package netstate

import "sync"

// Monitor holds the current connectivity state.
type Monitor struct {
	mu        sync.Mutex
	listeners []func(online bool)
	online    bool
}

// NewMonitor creates a monitor with the given initial state.
func NewMonitor(online bool) *Monitor {
	return &Monitor{online: online}
}

// Online reports the current connectivity state.
func (m *Monitor) Online() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.online
}

// SetOnline updates the state. Listeners are invoked synchronously on
// every transition, not on repeated sets of the same value.
func (m *Monitor) SetOnline(online bool) {
	m.mu.Lock()
	if m.online == online {
		m.mu.Unlock()
		return
	}
	m.online = online
	listeners := make([]func(bool), len(m.listeners))
	copy(listeners, m.listeners)
	m.mu.Unlock()

	for _, fn := range listeners {
		fn(online)
	}
}

// OnChange registers a listener for connectivity transitions.
func (m *Monitor) OnChange(fn func(online bool)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listeners = append(m.listeners, fn)
}
