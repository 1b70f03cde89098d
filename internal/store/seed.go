// Campusgraph - Student Networking and Team Matching Analytics
// Copyright 2026 The Campusgraph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/campusgraph/campusgraph

package store

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"

	"github.com/campusgraph/campusgraph/internal/recommend"
)

// SeedData is the JSON shape of a seed file. Profiles and projects use
// the boundary payload forms, so exports from external systems load
// without renaming their fields.
type SeedData struct {
	Profiles    []recommend.ProfilePayload `json:"profiles"`
	Projects    []recommend.ProjectPayload `json:"projects"`
	Friendships []SeedFriendship           `json:"friendships"`
	Feedback    []SeedFeedback             `json:"feedback"`
}

// SeedFriendship is one edge in the seed file. Status follows the
// friendship status values; pending is read from the first user's view.
type SeedFriendship struct {
	UserID  string `json:"user_id"`
	OtherID string `json:"other_id"`
	Status  string `json:"status"`
}

// SeedFeedback attaches a feedback entry to a user.
type SeedFeedback struct {
	UserID string `json:"user_id"`
	recommend.FeedbackPayload
}

// LoadSeed reads seed data from r and applies it to the store.
func (m *Memory) LoadSeed(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read seed data: %w", err)
	}

	var seed SeedData
	if err := json.Unmarshal(data, &seed); err != nil {
		return fmt.Errorf("decode seed data: %w", err)
	}

	for _, p := range seed.Profiles {
		profile := p.Canonical()
		if profile.ID == "" {
			return fmt.Errorf("seed profile without id")
		}
		m.PutProfile(profile)
	}
	for _, p := range seed.Projects {
		project := p.Canonical()
		if project.ID == "" {
			return fmt.Errorf("seed project without id")
		}
		m.PutProject(project)
	}
	for _, f := range seed.Friendships {
		if f.UserID == "" || f.OtherID == "" {
			return fmt.Errorf("seed friendship with missing user id")
		}
		m.SetFriendship(f.UserID, f.OtherID, recommend.FriendshipStatus(f.Status))
	}
	for _, fb := range seed.Feedback {
		if fb.UserID == "" {
			return fmt.Errorf("seed feedback without user id")
		}
		m.AddFeedback(fb.UserID, fb.FeedbackPayload.Canonical())
	}
	return nil
}

// LoadSeedFile reads and applies a seed file from disk.
func (m *Memory) LoadSeedFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()
	return m.LoadSeed(f)
}
