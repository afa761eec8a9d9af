package flight

import "sync"

// KeyGuard rejects concurrent work on the same key. Unlike singleflight it
// does not coalesce callers onto one result: the pipeline wants the second
// caller told "already running" so it can answer 409 instead of blocking.
type KeyGuard struct {
	mu       sync.Mutex
	inFlight map[string]struct{}
}

func NewKeyGuard() *KeyGuard {
	return &KeyGuard{inFlight: make(map[string]struct{})}
}

// TryAcquire reports whether the caller now owns the key. A false return
// means another caller holds it; the caller must not Release.
func (g *KeyGuard) TryAcquire(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.inFlight[key]; busy {
		return false
	}
	g.inFlight[key] = struct{}{}
	return true
}

// Release frees the key for the next caller.
func (g *KeyGuard) Release(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.inFlight, key)
}
