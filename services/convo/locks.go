package convo

import "sync"

// sessionLockStore holds per-session mutexes so each conversation's
// read-merge-save cycle is serialized. Concurrent turns of different
// conversations proceed independently. Entries are reference-counted and
// dropped once no turn holds or awaits them, so the map is bounded by the
// number of in-flight sessions rather than growing with every session seen.
type sessionLockStore struct {
	locks map[string]*sessionLock
	mu    sync.Mutex
}

type sessionLock struct {
	mu   sync.Mutex
	refs int
}

var lockStore = &sessionLockStore{
	locks: make(map[string]*sessionLock),
}

// LockSession acquires the mutex for a given session, creating one on first
// use. The returned release func unlocks it and evicts the entry when this
// was the last holder.
func LockSession(sessionID string) (release func()) {
	lockStore.mu.Lock()
	lock, exists := lockStore.locks[sessionID]
	if !exists {
		lock = &sessionLock{}
		lockStore.locks[sessionID] = lock
	}
	lock.refs++
	lockStore.mu.Unlock()

	lock.mu.Lock()
	return func() {
		lock.mu.Unlock()

		lockStore.mu.Lock()
		lock.refs--
		if lock.refs == 0 {
			delete(lockStore.locks, sessionID)
		}
		lockStore.mu.Unlock()
	}
}
