// Student Decision Support - University Program Recommendation Engine
// Copyright 2026 Ashan R. (ashanr)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ashanr/student-decision-support

package cache

import (
	"sync"
	"testing"
	"time"
)

func TestCache_SetGet(t *testing.T) {
	c := New(time.Minute)

	c.Set("countries", []string{"Germany", "Canada"})

	got, ok := c.Get("countries")
	if !ok {
		t.Fatal("Get() miss, want hit")
	}
	values, ok := got.([]string)
	if !ok || len(values) != 2 {
		t.Fatalf("Get() = %v", got)
	}
}

func TestCache_Expiration(t *testing.T) {
	c := New(time.Minute)

	c.SetWithTTL("k", "v", 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)

	if _, ok := c.Get("k"); ok {
		t.Error("Get() hit after expiration")
	}

	stats := c.GetStats()
	if stats.Evictions != 1 {
		t.Errorf("Evictions = %d, want 1", stats.Evictions)
	}
}

func TestCache_MissThenHitRate(t *testing.T) {
	c := New(time.Minute)

	c.Get("missing")
	c.Set("k", 1)
	c.Get("k")

	if rate := c.HitRate(); rate != 0.5 {
		t.Errorf("HitRate() = %v, want 0.5", rate)
	}
}

func TestCache_DeleteAndClear(t *testing.T) {
	c := New(time.Minute)

	c.Set("a", 1)
	c.Set("b", 2)

	c.Delete("a")
	if _, ok := c.Get("a"); ok {
		t.Error("Get() hit after Delete")
	}

	c.Clear()
	if _, ok := c.Get("b"); ok {
		t.Error("Get() hit after Clear")
	}
	if stats := c.GetStats(); stats.TotalKeys != 0 {
		t.Errorf("TotalKeys = %d, want 0", stats.TotalKeys)
	}
}

func TestCache_ConcurrentAccess(t *testing.T) {
	c := New(time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := GenerateKey("list", n%5)
			c.Set(key, n)
			c.Get(key)
		}(i)
	}
	wg.Wait()

	if stats := c.GetStats(); stats.TotalKeys != 5 {
		t.Errorf("TotalKeys = %d, want 5", stats.TotalKeys)
	}
}

func TestGenerateKey_Stable(t *testing.T) {
	a := GenerateKey("countries", map[string]int{"page": 1})
	b := GenerateKey("countries", map[string]int{"page": 1})
	if a != b {
		t.Errorf("GenerateKey not stable: %q vs %q", a, b)
	}

	other := GenerateKey("countries", map[string]int{"page": 2})
	if a == other {
		t.Error("GenerateKey collision for different params")
	}
}
