// Campusgraph - Student Networking and Team Matching Analytics
// Copyright 2026 The Campusgraph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/campusgraph/campusgraph

// Package store provides the in-memory data provider backing the
// recommendation engine: student profiles, the friendship graph, projects
// and peer feedback. All reads are safe for concurrent use with writes.
package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/campusgraph/campusgraph/internal/recommend"
)

var _ recommend.DataProvider = (*Memory)(nil)

// Memory is an in-memory implementation of the engine's data provider.
type Memory struct {
	mu sync.RWMutex

	profiles map[string]recommend.Profile
	// friendships holds each user's view of their edges. Pending edges
	// are directional: pending_sent on one side, pending_received on
	// the other.
	friendships map[string]map[string]recommend.FriendshipStatus
	projects    map[string]recommend.Project
	feedback    map[string][]recommend.Feedback

	feedbackCfg recommend.FeedbackConfig
	now         func() time.Time
}

// NewMemory creates an empty store.
func NewMemory() *Memory {
	return &Memory{
		profiles:    make(map[string]recommend.Profile),
		friendships: make(map[string]map[string]recommend.FriendshipStatus),
		projects:    make(map[string]recommend.Project),
		feedback:    make(map[string][]recommend.Feedback),
		feedbackCfg: recommend.DefaultFeedbackConfig(),
		now:         time.Now,
	}
}

// PutProfile inserts or replaces a profile.
func (m *Memory) PutProfile(p recommend.Profile) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles[p.ID] = p
}

// PutProject inserts or replaces a project.
func (m *Memory) PutProject(p recommend.Project) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.projects[p.ID] = p
}

// AddFeedback appends a feedback entry about a user.
func (m *Memory) AddFeedback(userID string, fb recommend.Feedback) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.feedback[userID] = append(m.feedback[userID], fb)
}

// SetFriendship records the relationship between two users. Friends and
// blocked edges are symmetric; pending is stored as sent on one side and
// received on the other. StatusNone removes the edge.
func (m *Memory) SetFriendship(a, b string, status recommend.FriendshipStatus) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch status {
	case recommend.StatusNone:
		delete(m.friendships[a], b)
		delete(m.friendships[b], a)
		return
	case recommend.StatusPendingSent:
		m.setEdge(a, b, recommend.StatusPendingSent)
		m.setEdge(b, a, recommend.StatusPendingReceived)
	case recommend.StatusPendingReceived:
		m.setEdge(a, b, recommend.StatusPendingReceived)
		m.setEdge(b, a, recommend.StatusPendingSent)
	default:
		m.setEdge(a, b, status)
		m.setEdge(b, a, status)
	}
}

func (m *Memory) setEdge(from, to string, status recommend.FriendshipStatus) {
	if m.friendships[from] == nil {
		m.friendships[from] = make(map[string]recommend.FriendshipStatus)
	}
	m.friendships[from][to] = status
}

// GetProfile implements recommend.DataProvider.
func (m *Memory) GetProfile(_ context.Context, userID string) (*recommend.Profile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.profiles[userID]
	if !ok {
		return nil, recommend.ErrProfileNotFound
	}
	return &p, nil
}

// GetAcceptedFriends implements recommend.DataProvider. The result is
// sorted for deterministic traversal.
func (m *Memory) GetAcceptedFriends(_ context.Context, userID string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var friends []string
	for id, status := range m.friendships[userID] {
		if status == recommend.StatusFriends {
			friends = append(friends, id)
		}
	}
	sort.Strings(friends)
	return friends, nil
}

// GetFriendRequestStatus implements recommend.DataProvider.
func (m *Memory) GetFriendRequestStatus(_ context.Context, userID, otherID string) (recommend.FriendshipStatus, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if status, ok := m.friendships[userID][otherID]; ok {
		return status, nil
	}
	return recommend.StatusNone, nil
}

// GetFriendDegree implements recommend.DataProvider.
func (m *Memory) GetFriendDegree(_ context.Context, userID string) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	degree := 0
	for _, status := range m.friendships[userID] {
		if status == recommend.StatusFriends {
			degree++
		}
	}
	return degree, nil
}

// GetExcludedUsers implements recommend.DataProvider. Only blocked edges
// exclude a candidate from traversal; pending edges stay in the pool so
// the engine can surface them on the priority lane.
func (m *Memory) GetExcludedUsers(_ context.Context, userID string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var blocked []string
	for id, status := range m.friendships[userID] {
		if status == recommend.StatusBlocked {
			blocked = append(blocked, id)
		}
	}
	sort.Strings(blocked)
	return blocked, nil
}

// GetCandidateUsers implements recommend.DataProvider. An empty
// university matches every profile.
func (m *Memory) GetCandidateUsers(_ context.Context, university string) ([]recommend.Profile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var pool []recommend.Profile
	for _, p := range m.profiles {
		if university == "" || p.University == university {
			pool = append(pool, p)
		}
	}
	sort.Slice(pool, func(i, j int) bool { return pool[i].ID < pool[j].ID })
	return pool, nil
}

// GetProject implements recommend.DataProvider.
func (m *Memory) GetProject(_ context.Context, projectID string) (*recommend.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.projects[projectID]
	if !ok {
		return nil, recommend.ErrProjectNotFound
	}
	return &p, nil
}

// GetRecruitingProjects implements recommend.DataProvider.
func (m *Memory) GetRecruitingProjects(_ context.Context, university string) ([]recommend.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var pool []recommend.Project
	for _, p := range m.projects {
		if p.Status != recommend.ProjectStatusRecruiting {
			continue
		}
		if university == "" || p.University == "" || p.University == university {
			pool = append(pool, p)
		}
	}
	sort.Slice(pool, func(i, j int) bool { return pool[i].ID < pool[j].ID })
	return pool, nil
}

// GetFeedbackScore implements recommend.DataProvider by aggregating the
// stored feedback entries. Users without feedback score neutral.
func (m *Memory) GetFeedbackScore(_ context.Context, userID string) (float64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return recommend.AggregateFeedback(m.feedback[userID], m.feedbackCfg, m.now(), ""), nil
}

// Counts returns the number of stored profiles and projects.
func (m *Memory) Counts() (profiles, projects int) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.profiles), len(m.projects)
}
