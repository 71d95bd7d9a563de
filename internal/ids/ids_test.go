package ids

import (
	"sync"
	"testing"
)

func TestNewID_Length(t *testing.T) {
	id := NewID()
	if len(id) != Length {
		t.Fatalf("expected length %d, got %d (%q)", Length, len(id), id)
	}
}

func TestNewID_Valid(t *testing.T) {
	for n := 0; n < 1000; n++ {
		id := NewID()
		if !IsValid(id) {
			t.Fatalf("NewID produced invalid id %q", id)
		}
	}
}

func TestNewID_Uniqueness(t *testing.T) {
	const count = 10000
	seen := make(map[string]struct{}, count)
	for n := 0; n < count; n++ {
		id := NewID()
		if _, exists := seen[id]; exists {
			t.Fatalf("duplicate ID: %s", id)
		}
		seen[id] = struct{}{}
	}
}

func TestNewID_ConcurrencySafety(t *testing.T) {
	const goroutines = 50
	const perGoroutine = 200

	var mu sync.Mutex
	seen := make(map[string]struct{}, goroutines*perGoroutine)

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for n := 0; n < goroutines; n++ {
		go func() {
			defer wg.Done()
			local := make([]string, 0, perGoroutine)
			for n := 0; n < perGoroutine; n++ {
				local = append(local, NewID())
			}
			mu.Lock()
			for _, id := range local {
				if _, exists := seen[id]; exists {
					t.Errorf("duplicate ID under concurrency: %s", id)
				}
				seen[id] = struct{}{}
			}
			mu.Unlock()
		}()
	}
	wg.Wait()
}

func TestIsValid(t *testing.T) {
	cases := map[string]bool{
		"":                            false,
		"short":                       false,
		"abcdefghijklmnopqrstuvwxyz":  true,
		"abcdefghijklmnopqrstuvwxy1":  true,
		"ABCDEFGHIJKLMNOPQRSTUVWXYZ":  false,
		"abcdefghijklmnopqrstuvwxy-":  false,
		"abcdefghijklmnopqrstuvwxyz1": false,
	}
	for id, want := range cases {
		if got := IsValid(id); got != want {
			t.Errorf("IsValid(%q) = %v, want %v", id, got, want)
		}
	}
}
