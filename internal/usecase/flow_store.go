package usecase

import (
	"sync"
	"time"
)

// flowStore holds in-progress flows in memory. A flow has no durable life
// outside the process: closing the browser and coming back starts a new
// attempt with a new booking ref. Expiry only bounds memory; it does not
// touch the provider session, whose expiry policy is external.
type flowStore struct {
	mu    sync.RWMutex
	flows map[string]*flow
	byRef map[string]string

	ttl      time.Duration
	stop     chan struct{}
	stopOnce sync.Once
}

func newFlowStore(ttl time.Duration) *flowStore {
	if ttl <= 0 {
		ttl = 45 * time.Minute
	}

	st := &flowStore{
		flows: make(map[string]*flow),
		byRef: make(map[string]string),
		ttl:   ttl,
		stop:  make(chan struct{}),
	}

	go st.sweep()

	return st
}

func (st *flowStore) Put(f *flow) {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.flows[f.id] = f
	st.byRef[f.bookingRef] = f.id
}

func (st *flowStore) Get(id string) (*flow, bool) {
	st.mu.RLock()
	f, ok := st.flows[id]
	st.mu.RUnlock()

	if ok {
		f.mu.Lock()
		f.lastActive = time.Now()
		f.mu.Unlock()
	}

	return f, ok
}

func (st *flowStore) GetByRef(bookingRef string) (*flow, bool) {
	st.mu.RLock()
	id, ok := st.byRef[bookingRef]
	st.mu.RUnlock()

	if !ok {
		return nil, false
	}
	return st.Get(id)
}

func (st *flowStore) Remove(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()

	if f, ok := st.flows[id]; ok {
		delete(st.byRef, f.bookingRef)
		delete(st.flows, id)
	}
}

func (st *flowStore) Close() {
	st.stopOnce.Do(func() {
		close(st.stop)
	})
}

func (st *flowStore) sweep() {
	interval := st.ttl / 3
	if interval < time.Second {
		interval = time.Second
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-st.stop:
			return
		case <-ticker.C:
			st.expire(time.Now())
		}
	}
}

func (st *flowStore) expire(now time.Time) {
	st.mu.Lock()
	defer st.mu.Unlock()

	for id, f := range st.flows {
		f.mu.Lock()
		idle := now.Sub(f.lastActive)
		f.mu.Unlock()

		if idle > st.ttl {
			delete(st.byRef, f.bookingRef)
			delete(st.flows, id)
		}
	}
}
