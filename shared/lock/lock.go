package lock

import (
	"sync"
)

// Keyed serializes work per key. The scheduling core uses it to make each
// worker's calendar a single-writer resource: every mutation of a calendar
// runs under that worker's mutex, so two racing bookings for the same worker
// cannot both pass the conflict check before either commits.
type Keyed struct {
	mu      sync.Mutex
	entries map[string]*entry
}

type entry struct {
	mu   sync.Mutex
	refs int
}

func NewKeyed() *Keyed {
	return &Keyed{
		entries: map[string]*entry{},
	}
}

// Acquire blocks until the key's mutex is held and returns the release func.
func (k *Keyed) Acquire(key string) func() {
	k.mu.Lock()

	e, ok := k.entries[key]
	if !ok {
		e = &entry{}
		k.entries[key] = e
	}

	e.refs++
	k.mu.Unlock()

	e.mu.Lock()

	return func() {
		e.mu.Unlock()

		k.mu.Lock()

		e.refs--
		if e.refs == 0 {
			delete(k.entries, key)
		}

		k.mu.Unlock()
	}
}

// Do runs fn while holding the key's mutex.
func (k *Keyed) Do(key string, fn func() error) error {
	release := k.Acquire(key)
	defer release()

	return fn()
}
