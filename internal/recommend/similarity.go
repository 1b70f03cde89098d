// Campusgraph - Student Networking and Team Matching Analytics
// Copyright 2026 The Campusgraph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/campusgraph/campusgraph

package recommend

import (
	"context"
	"math"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// DegreeFunc returns the accepted-friend count for a user. Used by the
// Adamic-Adar metric, which weights rare mutual friends more heavily.
type DegreeFunc func(ctx context.Context, userID string) (int, error)

// normalizeTerms lowercases and trims each term and collects the distinct
// results. Empty terms are dropped.
func normalizeTerms(terms []string) map[string]struct{} {
	set := make(map[string]struct{}, len(terms))
	for _, t := range terms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		set[t] = struct{}{}
	}
	return set
}

// Jaccard computes intersection-over-union similarity between two term
// lists. Terms are compared case-insensitively after trimming. Returns 0
// when either side is empty, including the both-empty case.
func Jaccard(a, b []string) float64 {
	setA := normalizeTerms(a)
	setB := normalizeTerms(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	intersection := 0
	for t := range setA {
		if _, ok := setB[t]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// Cosine computes the cosine similarity of two equal-length vectors.
// Returns 0 on length mismatch, empty input, or a zero-norm vector rather
// than failing.
func Cosine(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// BinaryVectors builds 0/1 membership vectors for two term lists over their
// shared vocabulary. The vocabulary is the union of both normalized term
// sets, so the vectors always have equal length.
func BinaryVectors(a, b []string) ([]float64, []float64) {
	setA := normalizeTerms(a)
	setB := normalizeTerms(b)

	vocab := make([]string, 0, len(setA)+len(setB))
	seen := make(map[string]struct{}, len(setA)+len(setB))
	for t := range setA {
		vocab = append(vocab, t)
		seen[t] = struct{}{}
	}
	for t := range setB {
		if _, ok := seen[t]; !ok {
			vocab = append(vocab, t)
		}
	}

	vecA := make([]float64, len(vocab))
	vecB := make([]float64, len(vocab))
	for i, t := range vocab {
		if _, ok := setA[t]; ok {
			vecA[i] = 1
		}
		if _, ok := setB[t]; ok {
			vecB[i] = 1
		}
	}
	return vecA, vecB
}

// TermCosine is the cosine similarity of two term lists over their binary
// membership vectors. Combined with Jaccard in the blended skill and
// interest scores.
func TermCosine(a, b []string) float64 {
	vecA, vecB := BinaryVectors(a, b)
	return Cosine(vecA, vecB)
}

// MutualIDs returns the ids present in both lists, preserving the order of
// the first list.
func MutualIDs(a, b []string) []string {
	setB := make(map[string]struct{}, len(b))
	for _, id := range b {
		setB[id] = struct{}{}
	}
	var mutual []string
	seen := make(map[string]struct{}, len(a))
	for _, id := range a {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if _, ok := setB[id]; ok {
			mutual = append(mutual, id)
		}
	}
	return mutual
}

// AdamicAdar computes the Adamic-Adar index over the mutual friends of two
// users: sum of 1/ln(degree) for each mutual friend with degree > 1. A
// mutual friend with degree <= 1 contributes 0, which avoids the ln(0) and
// ln(1) singularities.
//
// Degree lookups fan out concurrently; a failed lookup contributes 0 and is
// logged at debug level. One slow or failing lookup never aborts the
// computation.
func AdamicAdar(ctx context.Context, friendsA, friendsB []string, degreeOf DegreeFunc, logger zerolog.Logger) float64 {
	mutual := MutualIDs(friendsA, friendsB)
	if len(mutual) == 0 || degreeOf == nil {
		return 0
	}

	contributions := make([]float64, len(mutual))
	var wg sync.WaitGroup
	for i, id := range mutual {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			degree, err := degreeOf(ctx, id)
			if err != nil {
				logger.Debug().Err(err).Str("mutual_friend", id).
					Msg("Degree lookup failed, contributing 0")
				return
			}
			if degree > 1 {
				contributions[i] = 1 / math.Log(float64(degree))
			}
		}(i, id)
	}
	wg.Wait()

	var sum float64
	for _, c := range contributions {
		sum += c
	}
	return sum
}

// DeptScore is a bare equality check: 1 when the departments match, 0
// otherwise. Two empty departments count as a match, which keeps
// department-less pairs above the minimum-similarity gate. Casing is
// normalized upstream by the data provider.
func DeptScore(a, b string) float64 {
	if a == b {
		return 1
	}
	return 0
}
