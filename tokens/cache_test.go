package tokens

import (
	"fmt"
	"sync"
	"testing"
)

func TestCachingCounter_Memoizes(t *testing.T) {
	c := NewCachingCounter(CharCounter{}, 0)

	first := c.Count("hello world")
	second := c.Count("hello world")
	if first != second {
		t.Errorf("cached Count differs: %d vs %d", first, second)
	}
	if first != (CharCounter{}).Count("hello world") {
		t.Error("cached Count differs from uncached Count")
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}
}

func TestCachingCounter_Purge(t *testing.T) {
	c := NewCachingCounter(CharCounter{}, 0)
	c.Count("one")
	c.Count("two")
	if c.Len() != 2 {
		t.Fatalf("Len = %d, want 2", c.Len())
	}

	c.Purge()
	if c.Len() != 0 {
		t.Errorf("Len after Purge = %d, want 0", c.Len())
	}
}

func TestCachingCounter_BoundedSize(t *testing.T) {
	c := NewCachingCounter(CharCounter{}, 2)
	c.Count("one")
	c.Count("two")
	// Hitting the bound purges the memo before storing the new entry.
	c.Count("three")
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1 after purge-on-limit", c.Len())
	}
}

func TestCachingCounter_Concurrent(t *testing.T) {
	c := NewCachingCounter(CharCounter{}, 64)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				text := fmt.Sprintf("worker %d iteration %d", n, j%10)
				if got := c.Count(text); got < 1 {
					t.Errorf("Count(%q) = %d, want >= 1", text, got)
				}
			}
		}(i)
	}
	wg.Wait()
}

func TestCachingCounter_FitsInLimit(t *testing.T) {
	c := NewCachingCounter(CharCounter{}, 0)
	if !c.FitsInLimit("abcd", 1) {
		t.Error("expected 4 chars to fit in 1 token")
	}
	if c.FitsInLimit("abcdabcd", 1) {
		t.Error("expected 8 chars not to fit in 1 token")
	}
}
