package lru

import "testing"
import "math/rand"

func TestCacheBasics(t *testing.T) {
	c := New[int, bool]()
	if c.SetMax(3) != nil { t.Fatal("unexpected evictions") }
	if c.SetMax(3) != nil { t.Fatal("unexpected evictions") }
	if c.Max() != 3 { t.Fatalf("expected max 3, got %d", c.Max()) }
	if c.Size() != 0 { t.Fatalf("expected size 0, got %d", c.Size()) }
	if c.Count() != 0 { t.Fatalf("expected count 0, got %d", c.Count()) }
	if c.Percentage() != 0 { t.Fatalf("expected 0, got %f", c.Percentage()) }

	c.Add(0, true)
	c.Add(1, true)
	c.Add(2, true)
	if c.Percentage() != 1 { t.Fatalf("expected 1, got %f", c.Percentage()) }
	evicted := c.Add(3, true)
	if len(evicted) != 1 || evicted[0].Key != 0 {
		t.Fatalf("expected key 0 to be evicted, got %v", evicted)
	}
	if c.Size() != 3 { t.Fatalf("expected size 3, got %d", c.Size()) }

	if !c.Contains(2) { t.Fatal("expected key 2") }
	v, found := c.Get(2)
	if !found || !v { t.Fatal("expected key 2 with value true") }
	_, found = c.Get(0)
	if found { t.Fatal("key 0 should have been evicted") }

	c.Remove(2)
	if c.Contains(2) { t.Fatal("key 2 should have been removed") }
	_, found = c.Get(2)
	if found { t.Fatal("key 2 should have been removed") }
	c.Remove(2) // no-op

	c.Clear()
	if c.Size() != 0 { t.Fatalf("expected size 0, got %d", c.Size()) }
	if c.Count() != 0 { t.Fatalf("expected count 0, got %d", c.Count()) }

	c.Add(0, true)
	c.Add(1, true)
	c.Add(2, true)
	c.Add(3, true)
	keys := c.Keys()
	if len(keys) != 3 || keys[0] != 1 || keys[1] != 2 || keys[2] != 3 {
		t.Fatalf("expected keys [1 2 3], got %v", keys)
	}
	for i, value := range c.Values() {
		if !value { t.Fatalf("value #%d is false", i) }
	}

	evicted = c.SetMax(2)
	if c.Size() != 2 { t.Fatalf("expected size 2, got %d", c.Size()) }
	if len(evicted) != 1 || evicted[0].Key != 1 {
		t.Fatalf("expected key 1 to be evicted, got %v", evicted)
	}
}

func TestCacheRecency(t *testing.T) {
	c := New[string, int]()
	c.SetMax(3)
	c.Add("a", 1)
	c.Add("b", 2)
	c.Add("c", 3)

	// contains and peek must not refresh
	if !c.Contains("a") { t.Fatal("expected a") }
	if v, _ := c.Peek("a"); v != 1 { t.Fatalf("expected 1, got %d", v) }
	oldest, found := c.Oldest()
	if !found || oldest.Key != "a" { t.Fatalf("expected oldest a, got %v", oldest) }

	// get must refresh
	c.Get("a")
	evicted := c.Add("d", 4)
	if len(evicted) != 1 || evicted[0].Key != "b" || evicted[0].Value != 2 {
		t.Fatalf("expected b to be evicted, got %v", evicted)
	}

	// overwriting refreshes and keeps the count
	evicted = c.Add("c", 30)
	if evicted != nil { t.Fatalf("unexpected evictions %v", evicted) }
	keys := c.Keys()
	if len(keys) != 3 || keys[0] != "a" || keys[1] != "d" || keys[2] != "c" {
		t.Fatalf("expected [a d c], got %v", keys)
	}
	if v, _ := c.Get("c"); v != 30 { t.Fatalf("expected 30, got %d", v) }

	entry, found := c.RemoveOldest()
	if !found || entry.Key != "a" { t.Fatalf("expected to remove a, got %v", entry) }
	if c.Count() != 2 { t.Fatalf("expected count 2, got %d", c.Count()) }
}

func TestCacheCosts(t *testing.T) {
	c := New[int, string]()
	c.SetMax(10)
	c.AddCost(1, "one", 4)
	c.AddCost(2, "two", 4)
	if c.Size() != 8 { t.Fatalf("expected size 8, got %d", c.Size()) }

	// pushes size to 12, evicting key 1
	evicted := c.AddCost(3, "three", 4)
	if len(evicted) != 1 || evicted[0].Cost != 4 || evicted[0].Key != 1 {
		t.Fatalf("unexpected evictions %v", evicted)
	}

	// oversized entries survive alone
	evicted = c.AddCost(4, "huge", 50)
	if len(evicted) != 2 { t.Fatalf("expected 2 evictions, got %v", evicted) }
	if c.Count() != 1 || !c.Contains(4) { t.Fatal("expected key 4 as the sole survivor") }
	if c.Size() != 50 { t.Fatalf("expected size 50, got %d", c.Size()) }
	if c.Percentage() != 5 { t.Fatalf("expected 5, got %f", c.Percentage()) }

	// updating a cost adjusts the size
	c.AddCost(4, "small", 1)
	if c.Size() != 1 { t.Fatalf("expected size 1, got %d", c.Size()) }

	// zero max disables caching
	c.SetMax(0)
	if c.Count() != 0 { t.Fatalf("expected count 0, got %d", c.Count()) }
	c.Add(5, "five")
	c.Add(6, "six")
	if c.Count() != 1 || !c.Contains(6) { t.Fatal("expected only key 6") }

	if !doesPanic(func() { c.AddCost(7, "x", -1) }) { t.Fatal("expected panic on negative cost") }
	if !doesPanic(func() { c.SetMax(-1) }) { t.Fatal("expected panic on negative max") }
}

func TestCacheClearReturnsEntries(t *testing.T) {
	c := New[int, int]()
	c.SetMax(8)
	for i := 0; i < 5; i++ { c.Add(i, i*i) }
	c.Get(0)
	removed := c.Clear()
	if len(removed) != 5 { t.Fatalf("expected 5 removed entries, got %d", len(removed)) }
	if removed[0].Key != 1 || removed[4].Key != 0 {
		t.Fatalf("expected removal in recency order, got %v", removed)
	}
	if c.Max() != 8 { t.Fatal("clear must preserve max") }
	if _, found := c.Oldest(); found { t.Fatal("expected empty cache") }
}

func TestCacheRandomOps(t *testing.T) {
	const max = 16
	rng := rand.New(rand.NewSource(7))
	c := New[int, int]()
	c.SetMax(max)

	// reference model: keys ordered from oldest to newest
	var model []int
	touch := func(key int) {
		for i, k := range model {
			if k == key { model = append(model[:i], model[i + 1:]...); break }
		}
		model = append(model, key)
	}

	for i := 0; i < 5000; i++ {
		key := rng.Intn(40)
		switch rng.Intn(4) {
		case 0, 1:
			evicted := c.Add(key, key)
			touch(key)
			for _, entry := range evicted {
				if entry.Key != model[0] {
					t.Fatalf("op %d: evicted %d, expected %d", i, entry.Key, model[0])
				}
				model = model[1:]
			}
		case 2:
			_, found := c.Get(key)
			inModel := false
			for _, k := range model { if k == key { inModel = true } }
			if found != inModel { t.Fatalf("op %d: get(%d) = %t, model says %t", i, key, found, inModel) }
			if found { touch(key) }
		case 3:
			_, found := c.Remove(key)
			if found {
				for j, k := range model {
					if k == key { model = append(model[:j], model[j + 1:]...); break }
				}
			}
		}

		if c.Size() > max || c.Count() > max {
			t.Fatalf("op %d: size %d, count %d over max", i, c.Size(), c.Count())
		}
		if c.Count() != len(model) { t.Fatalf("op %d: count %d, model %d", i, c.Count(), len(model)) }
	}

	keys := c.Keys()
	for i, key := range keys {
		if model[i] != key { t.Fatalf("key order mismatch at %d: %v vs %v", i, keys, model) }
	}
}

func doesPanic(function func()) (didPanic bool) {
	defer func() { didPanic = (recover() != nil) }()
	function()
	return
}
