package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"aigov/internal/ports"
)

// SeedJobRepository, mirroring the queued→running→completed/failed rows the
// Postgres adapter keeps.

func (s *Store) EnqueueSeed(_ context.Context, orgID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.NewString()
	s.seedJobs[id] = &seedJob{
		SeedJob:  ports.SeedJob{ID: id, OrgID: orgID},
		Status:   "queued",
		QueuedAt: time.Now(),
	}
	return id, nil
}

func (s *Store) ClaimNext(_ context.Context) (ports.SeedJob, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var oldest *seedJob
	for _, j := range s.seedJobs {
		if j.Status != "queued" {
			continue
		}
		if oldest == nil || j.QueuedAt.Before(oldest.QueuedAt) {
			oldest = j
		}
	}
	if oldest == nil {
		return ports.SeedJob{}, false, nil
	}
	oldest.Status = "running"
	return oldest.SeedJob, true, nil
}

func (s *Store) UpdateSeedProgress(_ context.Context, jobID string, progress float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	j, ok := s.seedJobs[jobID]
	if !ok {
		return ports.ErrNotFound
	}
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	j.Progress = progress
	return nil
}

func (s *Store) MarkCompleted(_ context.Context, jobID string, inserted int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	j, ok := s.seedJobs[jobID]
	if !ok {
		return ports.ErrNotFound
	}
	j.Status = "completed"
	j.Progress = 1
	j.Inserted = inserted
	return nil
}

func (s *Store) MarkFailed(_ context.Context, jobID string, reason string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	j, ok := s.seedJobs[jobID]
	if !ok {
		return ports.ErrNotFound
	}
	j.Status = "failed"
	j.Reason = reason
	return nil
}

func (s *Store) StartJobForOrg(_ context.Context, orgID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, j := range s.seedJobs {
		if j.OrgID == orgID && j.Status == "queued" {
			j.Status = "running"
			return j.ID, nil
		}
	}
	return "", fmt.Errorf("no queued seed job for org %s: %w", orgID, ports.ErrNotFound)
}

func (s *Store) SeedStatus(_ context.Context, orgID, jobID string) (string, float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	j, ok := s.seedJobs[jobID]
	if !ok || j.OrgID != orgID {
		return "", 0, ports.ErrNotFound
	}
	return j.Status, j.Progress, nil
}
