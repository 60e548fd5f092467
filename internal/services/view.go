package services

import "sync"

// ViewState resolves races between overlapping fetches for the same view.
// Each issued fetch takes an increasing sequence number via Begin; Complete
// applies a result only when it belongs to the latest issued fetch, so a
// slow response for stale parameters can never overwrite a newer one.
type ViewState[T any] struct {
	mu     sync.Mutex
	issued uint64
	seq    uint64
	value  T
	valid  bool
}

// Begin registers a new fetch and returns its sequence number.
func (v *ViewState[T]) Begin() uint64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.issued++
	return v.issued
}

// Complete records value as the visible result if seq still identifies the
// latest issued fetch. It reports whether the value was applied.
func (v *ViewState[T]) Complete(seq uint64, value T) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if seq != v.issued {
		return false
	}
	v.seq = seq
	v.value = value
	v.valid = true
	return true
}

// Current returns the visible result and whether one has been recorded.
func (v *ViewState[T]) Current() (T, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.value, v.valid
}
