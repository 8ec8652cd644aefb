package generator

import (
	"sync"
	"time"
)

// Availability tracks whether the external generation endpoint is currently
// reachable. It is passed to the handler as a capability rather than held as
// package state, so the revision engine never depends on it.
type Availability struct {
	mu        sync.Mutex
	reachable bool
	checkedAt time.Time
}

func NewAvailability() *Availability {
	// Assume reachable until a call fails.
	return &Availability{reachable: true}
}

func (a *Availability) Mark(reachable bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.reachable = reachable
	a.checkedAt = time.Now()
}

func (a *Availability) Reachable() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.reachable
}
