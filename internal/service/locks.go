package service

import "sync"

// Locks serializes read-modify-write operations per group. The engine
// itself is pure; only the mutators (add expense, record and confirm
// payments, accept invitation) need the lock, and only against writers
// of the same group. All services built for the same store share one
// Locks.
type Locks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewLocks creates an empty per-group lock table.
func NewLocks() *Locks {
	return &Locks{locks: make(map[string]*sync.Mutex)}
}

// lock acquires the mutex for groupID and returns the unlock func.
func (g *Locks) lock(groupID string) func() {
	g.mu.Lock()
	l, ok := g.locks[groupID]
	if !ok {
		l = &sync.Mutex{}
		g.locks[groupID] = l
	}
	g.mu.Unlock()

	l.Lock()
	return l.Unlock
}
