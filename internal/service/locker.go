package service

import "sync"

// ProfileLocks serializes mutations per caller. Every profile transition runs
// read-mutate-persist under the caller's lock so concurrent calls from the
// same identity (two browser tabs) cannot double-apply a transition.
type ProfileLocks struct {
	locks sync.Map // caller id -> *sync.Mutex
}

func NewProfileLocks() *ProfileLocks {
	return &ProfileLocks{}
}

// Lock acquires the caller's mutex and returns the unlock func.
func (l *ProfileLocks) Lock(callerID string) func() {
	mu, _ := l.locks.LoadOrStore(callerID, &sync.Mutex{})
	m := mu.(*sync.Mutex)
	m.Lock()
	return m.Unlock
}
