package engine

import "sync"

// keyLocks hands out one mutex per (symbol, exchange) key so that the
// holdings-check-then-fill sequence for a given instrument is
// serialized, while orders on different instruments execute
// concurrently.
type keyLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newKeyLocks() *keyLocks {
	return &keyLocks{
		locks: make(map[string]*sync.Mutex),
	}
}

// GetOrCreate returns the mutex for the given key, creating it on
// first use. Safe for concurrent use.
func (kl *keyLocks) GetOrCreate(key string) *sync.Mutex {
	kl.mu.Lock()
	defer kl.mu.Unlock()

	l, ok := kl.locks[key]
	if !ok {
		l = &sync.Mutex{}
		kl.locks[key] = l
	}
	return l
}
