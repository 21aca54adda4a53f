package lru_test

import (
	"testing"

	"github.com/npillmayer/stylecore/lru"
)

func keys(c *lru.Cache[int, string]) []int {
	var out []int
	c.Each(func(k int, v string) bool {
		out = append(out, k)
		return true
	})
	return out
}

func eq(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestEvictsLeastRecentlyUsed(t *testing.T) {
	c := lru.New[int, string](3)
	c.Put(1, "a")
	c.Put(2, "b")
	c.Put(3, "c")
	c.Get(1) // promotes 1 to most-recently-used

	c.Put(4, "d") // evicts 2, the now-least-recently-used key

	if got := keys(c); !eq(got, []int{4, 1, 3}) {
		t.Fatalf("iteration order = %v, want [4 1 3]", got)
	}
	if c.Contains(2) {
		t.Fatalf("expected key 2 to have been evicted")
	}
	if c.Count() != 3 {
		t.Fatalf("Count() = %d, want 3", c.Count())
	}
}

func TestCountNeverExceedsLimit(t *testing.T) {
	c := lru.New[int, int](4)
	for i := 0; i < 50; i++ {
		c.Put(i, i*i)
	}
	if c.Count() != 4 {
		t.Fatalf("Count() = %d, want min(n, limit) = 4", c.Count())
	}
	for _, want := range []int{49, 48, 47, 46} {
		if !c.Contains(want) {
			t.Fatalf("expected most recently inserted key %d to survive", want)
		}
	}
}

func TestGetOrInsertDoesNotCallFactoryOnHit(t *testing.T) {
	c := lru.New[string, int](2)
	c.Put("a", 1)

	called := false
	v := c.GetOrInsert("a", func() int { called = true; return 99 })
	if called {
		t.Fatalf("factory must not be invoked for an existing key")
	}
	if v != 1 {
		t.Fatalf("GetOrInsert = %d, want 1", v)
	}

	v2 := c.GetOrInsert("b", func() int { return 2 })
	if v2 != 2 || !c.Contains("b") {
		t.Fatalf("expected absent key to be inserted via factory")
	}
}

func TestRemoveAndReuseSlot(t *testing.T) {
	c := lru.New[int, int](2)
	c.Put(1, 10)
	c.Put(2, 20)
	if !c.Remove(1) {
		t.Fatalf("expected Remove(1) to report true")
	}
	if c.Remove(1) {
		t.Fatalf("expected a second Remove(1) to report false")
	}
	if c.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", c.Count())
	}
	c.Put(3, 30)
	c.Put(4, 40)
	if c.Count() != 2 {
		t.Fatalf("Count() = %d, want 2 after refilling to limit", c.Count())
	}
}

func TestClearEmptiesCache(t *testing.T) {
	c := lru.New[int, int](3)
	c.Put(1, 1)
	c.Put(2, 2)
	c.Clear()
	if c.Count() != 0 {
		t.Fatalf("Count() = %d, want 0 after Clear", c.Count())
	}
	if c.Contains(1) || c.Contains(2) {
		t.Fatalf("expected Clear to drop every entry")
	}
	c.Put(5, 5)
	if c.Count() != 1 || !c.Contains(5) {
		t.Fatalf("expected cache to be usable again after Clear")
	}
}

func TestPutOnExistingKeyPromotesWithoutGrowingCount(t *testing.T) {
	c := lru.New[int, string](2)
	c.Put(1, "a")
	c.Put(2, "b")
	c.Put(1, "a2")
	if c.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", c.Count())
	}
	if got := keys(c); !eq(got, []int{1, 2}) {
		t.Fatalf("iteration order = %v, want [1 2]", got)
	}
	v, _ := c.Get(1)
	if v != "a2" {
		t.Fatalf("Get(1) = %q, want %q", v, "a2")
	}
}
