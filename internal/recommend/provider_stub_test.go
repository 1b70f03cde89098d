// Campusgraph - Student Networking and Team Matching Analytics
// Copyright 2026 The Campusgraph Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/campusgraph/campusgraph

package recommend

import (
	"context"
	"errors"
	"sync"
)

// stubProvider is an in-memory DataProvider for tests. Zero values behave
// like an empty store; failure maps force specific lookups to error.
type stubProvider struct {
	mu sync.Mutex

	profiles   map[string]*Profile
	friends    map[string][]string
	statuses   map[string]FriendshipStatus // key: "a|b"
	excluded   map[string][]string
	degrees    map[string]int
	candidates map[string][]Profile // key: university, "" matches all
	projects   map[string]*Project
	recruiting map[string][]Project
	feedback   map[string]float64

	failFriends  map[string]error
	failDegree   map[string]error
	failStatus   map[string]error
	failFeedback map[string]error

	friendCalls int
}

var errStubUnavailable = errors.New("stub: unavailable")

func (s *stubProvider) GetProfile(_ context.Context, userID string) (*Profile, error) {
	if p, ok := s.profiles[userID]; ok {
		return p, nil
	}
	return nil, ErrProfileNotFound
}

func (s *stubProvider) GetAcceptedFriends(_ context.Context, userID string) ([]string, error) {
	s.mu.Lock()
	s.friendCalls++
	s.mu.Unlock()
	if err, ok := s.failFriends[userID]; ok {
		return nil, err
	}
	return s.friends[userID], nil
}

func (s *stubProvider) GetFriendRequestStatus(_ context.Context, userID, otherID string) (FriendshipStatus, error) {
	if err, ok := s.failStatus[userID+"|"+otherID]; ok {
		return StatusNone, err
	}
	if st, ok := s.statuses[userID+"|"+otherID]; ok {
		return st, nil
	}
	return StatusNone, nil
}

func (s *stubProvider) GetFriendDegree(_ context.Context, userID string) (int, error) {
	if err, ok := s.failDegree[userID]; ok {
		return 0, err
	}
	if d, ok := s.degrees[userID]; ok {
		return d, nil
	}
	return len(s.friends[userID]), nil
}

func (s *stubProvider) GetExcludedUsers(_ context.Context, userID string) ([]string, error) {
	return s.excluded[userID], nil
}

func (s *stubProvider) GetCandidateUsers(_ context.Context, university string) ([]Profile, error) {
	if pool, ok := s.candidates[university]; ok {
		return pool, nil
	}
	return s.candidates[""], nil
}

func (s *stubProvider) GetProject(_ context.Context, projectID string) (*Project, error) {
	if p, ok := s.projects[projectID]; ok {
		return p, nil
	}
	return nil, ErrProjectNotFound
}

func (s *stubProvider) GetRecruitingProjects(_ context.Context, university string) ([]Project, error) {
	if list, ok := s.recruiting[university]; ok {
		return list, nil
	}
	return s.recruiting[""], nil
}

func (s *stubProvider) GetFeedbackScore(_ context.Context, userID string) (float64, error) {
	if err, ok := s.failFeedback[userID]; ok {
		return 0, err
	}
	if f, ok := s.feedback[userID]; ok {
		return f, nil
	}
	return 0, errStubUnavailable
}
