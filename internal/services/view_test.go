package services

import (
	"sync"
	"testing"
)

func TestViewStateLatestWins(t *testing.T) {
	var v ViewState[string]

	first := v.Begin()
	second := v.Begin()

	// the newer fetch resolves first
	if !v.Complete(second, "new") {
		t.Fatal("latest fetch must apply")
	}
	// the older fetch resolves late and must be discarded
	if v.Complete(first, "stale") {
		t.Fatal("stale fetch must not apply")
	}

	got, ok := v.Current()
	if !ok || got != "new" {
		t.Fatalf("expected %q, got %q ok=%v", "new", got, ok)
	}
}

func TestViewStateEmpty(t *testing.T) {
	var v ViewState[int]
	if _, ok := v.Current(); ok {
		t.Fatal("no value should be visible before a completed fetch")
	}
}

func TestViewStateConcurrent(t *testing.T) {
	var v ViewState[int]
	var wg sync.WaitGroup

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			seq := v.Begin()
			v.Complete(seq, int(seq))
		}()
	}
	wg.Wait()

	got, ok := v.Current()
	if !ok {
		t.Fatal("expected a visible value after completed fetches")
	}
	if got < 1 || got > 100 {
		t.Fatalf("value %d outside the issued range", got)
	}
}
