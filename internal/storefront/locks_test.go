package storefront

import (
	"sync"
	"testing"
	"time"
)

func TestKeyedLocksSerializeSameKey(t *testing.T) {
	locks := newKeyedLocks()
	release := locks.lock("a")

	acquired := make(chan struct{})
	go func() {
		unlock := locks.lock("a")
		close(acquired)
		unlock()
	}()

	select {
	case <-acquired:
		t.Fatal("second holder acquired a held key")
	case <-time.After(20 * time.Millisecond):
	}

	// other keys are independent
	otherDone := make(chan struct{})
	go func() {
		locks.lock("b")()
		close(otherDone)
	}()
	select {
	case <-otherDone:
	case <-time.After(time.Second):
		t.Fatal("unrelated key blocked")
	}

	release()
	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("waiter never acquired the key")
	}
}

func TestKeyedLocksForgetIdleKeys(t *testing.T) {
	locks := newKeyedLocks()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := []string{"x", "y", "z"}[i%3]
			locks.lock(key)()
		}(i)
	}
	wg.Wait()
	if n := locks.size(); n != 0 {
		t.Fatalf("expected no retained keys, got %d", n)
	}
}
