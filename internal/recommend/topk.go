// Campusgraph - Student Networking and Team Matching Analytics
// Copyright 2026 The Campusgraph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/campusgraph/campusgraph

package recommend

import (
	"sort"
)

// entry is one scored candidate inside the selector. seq records insertion
// order so equal scores stay stable in the final ranking.
type entry[T any] struct {
	item  T
	score float64
	seq   int
}

// TopK keeps the K highest-scoring candidates seen so far in O(K) memory,
// plus an unbounded priority lane for candidates that must never be
// dropped (pending friend requests).
//
// The regular lane is a min-heap: when full, a new candidate evicts the
// current minimum only if its score strictly exceeds it. The priority lane
// is a plain slice since it is exempt from the K-cap.
//
// Results returns all priority items first (score descending), then the
// regular survivors (score descending). Ties preserve insertion order.
type TopK[T any] struct {
	k        int
	heap     []entry[T]
	priority []entry[T]
	seq      int
	skipped  int
}

// NewTopK creates a selector keeping at most k regular candidates.
// k must be positive.
func NewTopK[T any](k int) *TopK[T] {
	if k < 1 {
		k = 1
	}
	return &TopK[T]{
		k:    k,
		heap: make([]entry[T], 0, k),
	}
}

// Add offers a candidate to the regular lane.
func (t *TopK[T]) Add(item T, score float64) {
	e := entry[T]{item: item, score: score, seq: t.seq}
	t.seq++

	if len(t.heap) < t.k {
		t.heap = append(t.heap, e)
		t.bubbleUp(len(t.heap) - 1)
		return
	}
	if score <= t.heap[0].score {
		t.skipped++
		return
	}
	t.heap[0] = e
	t.bubbleDown(0)
}

// AddPriority adds a candidate to the priority lane. Priority candidates
// are always retained regardless of score or capacity.
func (t *TopK[T]) AddPriority(item T, score float64) {
	t.priority = append(t.priority, entry[T]{item: item, score: score, seq: t.seq})
	t.seq++
}

// Len returns the number of retained candidates across both lanes.
func (t *TopK[T]) Len() int {
	return len(t.priority) + len(t.heap)
}

// Skipped returns how many regular candidates were offered but not
// retained.
func (t *TopK[T]) Skipped() int {
	return t.skipped
}

// Results drains the selector into final ranked order: priority lane
// first, each lane sorted by score descending with insertion order
// breaking ties.
func (t *TopK[T]) Results() []T {
	byScoreDesc := func(entries []entry[T]) {
		sort.SliceStable(entries, func(i, j int) bool {
			if entries[i].score != entries[j].score {
				return entries[i].score > entries[j].score
			}
			return entries[i].seq < entries[j].seq
		})
	}

	byScoreDesc(t.priority)
	regular := make([]entry[T], len(t.heap))
	copy(regular, t.heap)
	byScoreDesc(regular)

	out := make([]T, 0, len(t.priority)+len(regular))
	for _, e := range t.priority {
		out = append(out, e.item)
	}
	for _, e := range regular {
		out = append(out, e.item)
	}
	return out
}

// less orders the regular heap: lowest score at the root. Among equal
// scores the later insertion sits closer to the root so earlier arrivals
// survive eviction.
func (t *TopK[T]) less(i, j int) bool {
	if t.heap[i].score != t.heap[j].score {
		return t.heap[i].score < t.heap[j].score
	}
	return t.heap[i].seq > t.heap[j].seq
}

func (t *TopK[T]) bubbleUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !t.less(i, parent) {
			break
		}
		t.heap[i], t.heap[parent] = t.heap[parent], t.heap[i]
		i = parent
	}
}

func (t *TopK[T]) bubbleDown(i int) {
	n := len(t.heap)
	for {
		smallest := i
		left := 2*i + 1
		right := 2*i + 2
		if left < n && t.less(left, smallest) {
			smallest = left
		}
		if right < n && t.less(right, smallest) {
			smallest = right
		}
		if smallest == i {
			return
		}
		t.heap[i], t.heap[smallest] = t.heap[smallest], t.heap[i]
		i = smallest
	}
}
