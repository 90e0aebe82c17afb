// internal/importer/locks.go
package importer

import (
	"path/filepath"
	"sync"
)

// rootLocks serializes runs per destination root. Two concurrent runs into
// the same library would race on skip checks and directory creation.
type rootLocks struct {
	mu    sync.Mutex
	roots map[string]*sync.Mutex
}

func newRootLocks() *rootLocks {
	return &rootLocks{roots: make(map[string]*sync.Mutex)}
}

// acquire blocks until the lock for root is held and returns the release
// function.
func (l *rootLocks) acquire(root string) func() {
	key := filepath.Clean(root)

	l.mu.Lock()
	m, ok := l.roots[key]
	if !ok {
		m = &sync.Mutex{}
		l.roots[key] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
