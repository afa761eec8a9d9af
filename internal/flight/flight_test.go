package flight

import (
	"sync"
	"testing"
)

func TestKeyGuard_AcquireRelease(t *testing.T) {
	g := NewKeyGuard()

	if !g.TryAcquire("a") {
		t.Fatal("first acquire should succeed")
	}
	if g.TryAcquire("a") {
		t.Fatal("second acquire of the same key should fail")
	}
	if !g.TryAcquire("b") {
		t.Fatal("a different key should be independent")
	}

	g.Release("a")
	if !g.TryAcquire("a") {
		t.Fatal("acquire after release should succeed")
	}
}

func TestKeyGuard_SingleWinnerUnderContention(t *testing.T) {
	g := NewKeyGuard()

	const n = 50
	var wg sync.WaitGroup
	wins := make(chan struct{}, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if g.TryAcquire("k") {
				wins <- struct{}{}
			}
		}()
	}
	wg.Wait()
	close(wins)

	count := 0
	for range wins {
		count++
	}
	if count != 1 {
		t.Fatalf("expected exactly one winner, got %d", count)
	}
}
