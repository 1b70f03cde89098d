// Campusgraph - Student Networking and Team Matching Analytics
// Copyright 2026 The Campusgraph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/campusgraph/campusgraph

package recommend

import (
	"math/rand"
	"testing"
)

func TestTopK_UnderCapacity(t *testing.T) {
	tk := NewTopK[string](5)
	tk.Add("a", 0.1)
	tk.Add("b", 0.9)
	tk.Add("c", 0.5)

	got := tk.Results()
	want := []string{"b", "c", "a"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Results()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTopK_KeepsHighestK(t *testing.T) {
	tk := NewTopK[int](3)
	scores := []float64{0.1, 0.8, 0.3, 0.9, 0.2, 0.7, 0.5}
	for i, s := range scores {
		tk.Add(i, s)
	}

	got := tk.Results()
	// Indices of the three highest scores, descending: 3 (0.9), 1 (0.8), 5 (0.7).
	want := []int{3, 1, 5}
	if len(got) != 3 {
		t.Fatalf("expected 3 results, got %d", len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Results()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
	// 0.2 and 0.5 never displace the running minimum.
	if tk.Skipped() != 2 {
		t.Errorf("Skipped() = %d, want 2", tk.Skipped())
	}
}

func TestTopK_OrderOfArrivalIndependence(t *testing.T) {
	const k = 10
	const n = 200

	scores := make([]float64, n)
	for i := range scores {
		scores[i] = float64(i) / n
	}

	collect := func(order []int) map[int]bool {
		tk := NewTopK[int](k)
		for _, idx := range order {
			tk.Add(idx, scores[idx])
		}
		set := make(map[int]bool)
		for _, item := range tk.Results() {
			set[item] = true
		}
		return set
	}

	forward := make([]int, n)
	reverse := make([]int, n)
	shuffled := make([]int, n)
	for i := 0; i < n; i++ {
		forward[i] = i
		reverse[i] = n - 1 - i
		shuffled[i] = i
	}
	rng := rand.New(rand.NewSource(42))
	rng.Shuffle(n, func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

	a := collect(forward)
	b := collect(reverse)
	c := collect(shuffled)

	for idx := n - k; idx < n; idx++ {
		if !a[idx] || !b[idx] || !c[idx] {
			t.Errorf("index %d (score %v) missing from some ordering: fwd=%v rev=%v shuf=%v",
				idx, scores[idx], a[idx], b[idx], c[idx])
		}
	}
}

func TestTopK_PriorityNeverDropped(t *testing.T) {
	tk := NewTopK[string](2)
	tk.AddPriority("pending-low", 0.001)
	for i := 0; i < 50; i++ {
		tk.Add("regular", 0.5+float64(i)/1000)
	}
	tk.AddPriority("pending-high", 0.9)

	got := tk.Results()
	if len(got) != 4 {
		t.Fatalf("expected 2 priority + 2 regular = 4 results, got %d", len(got))
	}
	if got[0] != "pending-high" || got[1] != "pending-low" {
		t.Errorf("priority items must lead, sorted by score: got %v", got[:2])
	}
	for _, item := range got[2:] {
		if item != "regular" {
			t.Errorf("expected regular items after priority, got %q", item)
		}
	}
}

func TestTopK_EqualScoresStable(t *testing.T) {
	tk := NewTopK[string](3)
	tk.Add("first", 0.5)
	tk.Add("second", 0.5)
	tk.Add("third", 0.5)
	// Equal score never evicts: eviction requires strictly greater.
	tk.Add("fourth", 0.5)

	got := tk.Results()
	want := []string{"first", "second", "third"}
	if len(got) != len(want) {
		t.Fatalf("got %d results, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Results()[%d] = %q, want %q (insertion order must hold for ties)", i, got[i], want[i])
		}
	}
}

func TestTopK_MinimumK(t *testing.T) {
	tk := NewTopK[int](0)
	tk.Add(1, 0.2)
	tk.Add(2, 0.8)

	got := tk.Results()
	if len(got) != 1 || got[0] != 2 {
		t.Errorf("k<1 should clamp to 1 and keep the best item, got %v", got)
	}
}
