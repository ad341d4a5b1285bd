package score

import "sync"

type MemoryStore struct {
	lock sync.Mutex
	best map[string]int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{best: make(map[string]int)}
}

func (store *MemoryStore) Best(namespace string) (int, error) {
	store.lock.Lock()
	defer store.lock.Unlock()
	return store.best[namespace], nil
}

func (store *MemoryStore) Record(namespace string, score int) (bool, error) {
	store.lock.Lock()
	defer store.lock.Unlock()

	if score <= store.best[namespace] {
		return false, nil
	}
	store.best[namespace] = score
	return true, nil
}

func (store *MemoryStore) Close() error {
	return nil
}
