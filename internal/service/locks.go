package service

import "sync"

// lockTable hands out one mutex per market id so concurrent bets against the
// same market serialize their read-increment-write of the pools. Mutexes are
// never removed; markets are few and the entries are tiny.
type lockTable struct {
	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

func newLockTable() *lockTable {
	return &lockTable{locks: make(map[uint]*sync.Mutex)}
}

func (t *lockTable) forMarket(id uint) *sync.Mutex {
	t.mu.Lock()
	defer t.mu.Unlock()
	l, ok := t.locks[id]
	if !ok {
		l = &sync.Mutex{}
		t.locks[id] = l
	}
	return l
}
