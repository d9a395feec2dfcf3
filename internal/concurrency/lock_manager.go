// Package concurrency provides keyed mutual exclusion for in-memory state
// that has no storage-level concurrency control.
package concurrency

import (
	"sync"
)

// LockManager hands out one mutex per key. Locks are never evicted, so keys
// should be bounded; session IDs expiring with their game states are fine.
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns the mutex for the given key, creating it on first use.
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}
