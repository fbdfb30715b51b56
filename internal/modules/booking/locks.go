package booking

import "sync"

// roomLocks serializes the availability-check-then-insert section of
// CreateBooking per room. Different rooms use different mutexes and never
// contend with each other.
type roomLocks struct {
	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func newRoomLocks() *roomLocks {
	return &roomLocks{locks: make(map[int64]*sync.Mutex)}
}

// acquire locks the mutex for roomID and returns it; the caller unlocks.
func (l *roomLocks) acquire(roomID int64) *sync.Mutex {
	l.mu.Lock()
	m, ok := l.locks[roomID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[roomID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m
}
