// Package viewmvc provides the listener registry shared by the screen views.
package viewmvc

import "sync"

// Observable keeps the listeners of a view.
// Views embed it and notify Listeners() when the user acts.
type Observable[L comparable] struct {
	listeners []L
	mu        sync.Mutex
}

// RegisterListener adds l. Registering the same listener twice is a no-op.
func (o *Observable[L]) RegisterListener(l L) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for _, existing := range o.listeners {
		if existing == l {
			return
		}
	}
	o.listeners = append(o.listeners, l)
}

// UnregisterListener removes l if present.
func (o *Observable[L]) UnregisterListener(l L) {
	o.mu.Lock()
	defer o.mu.Unlock()
	for i, existing := range o.listeners {
		if existing == l {
			o.listeners = append(o.listeners[:i], o.listeners[i+1:]...)
			return
		}
	}
}

// Listeners returns a snapshot of the registered listeners.
func (o *Observable[L]) Listeners() []L {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]L, len(o.listeners))
	copy(out, o.listeners)
	return out
}
