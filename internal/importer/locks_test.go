package importer

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootLocks_SerializesSameRoot(t *testing.T) {
	locks := newRootLocks()

	var mu sync.Mutex
	var active, maxActive int

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.acquire("/movies/")
			defer unlock()

			mu.Lock()
			active++
			if active > maxActive {
				maxActive = active
			}
			mu.Unlock()

			mu.Lock()
			active--
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxActive, "only one run per root at a time")
}

func TestRootLocks_DistinctRootsIndependent(t *testing.T) {
	locks := newRootLocks()

	unlockA := locks.acquire("/movies")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlockB := locks.acquire("/tv")
		unlockB()
		close(done)
	}()

	<-done // must not deadlock while /movies is held
}
