package store

import (
	"fmt"
	"slices"
	"sync"
	"time"

	"jobservice/api/models"
)

// MemoryStore keeps jobs in process memory. Mutations and the in-place sort done
// by ListSorted hold the write lock; lookups share the read lock.
type MemoryStore struct {
	mu    sync.RWMutex
	jobs  map[string]models.Job
	order []string // listing order, rewritten by ListSorted
	now   func() time.Time
}

var _ JobStore = (*MemoryStore)(nil)

// NewMemoryStore creates an empty store. A nil clock defaults to models.Now.
func NewMemoryStore(clock func() time.Time) *MemoryStore {
	if clock == nil {
		clock = models.Now
	}
	return &MemoryStore{
		jobs: make(map[string]models.Job),
		now:  clock,
	}
}

// Insert adds a fully formed job. The caller assigns id and createdAt.
func (s *MemoryStore) Insert(job models.Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.jobs[job.ID]; exists {
		return fmt.Errorf("insert %s: %w", job.ID, ErrDuplicateID)
	}
	s.jobs[job.ID] = job.Clone()
	s.order = append(s.order, job.ID)
	return nil
}

// FindByID returns the job with exactly the given id.
func (s *MemoryStore) FindByID(id string) (models.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	job, ok := s.jobs[id]
	if !ok {
		return models.Job{}, ErrNotFound
	}
	return job.Clone(), nil
}

// Update overwrites contactEmail and status and stamps updatedAt. An absent
// contactEmail in the patch clears the stored one.
func (s *MemoryStore) Update(id string, patch models.JobPatch) (models.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[id]
	if !ok {
		return models.Job{}, ErrNotFound
	}

	job.ContactEmail = nil
	if patch.ContactEmail != nil {
		email := *patch.ContactEmail
		job.ContactEmail = &email
	}
	job.Status = patch.Status

	// updatedAt never moves backwards and never precedes createdAt,
	// even if the wall clock does.
	updatedAt := s.now()
	if updatedAt.Before(job.CreatedAt) {
		updatedAt = job.CreatedAt
	}
	if job.UpdatedAt != nil && updatedAt.Before(*job.UpdatedAt) {
		updatedAt = *job.UpdatedAt
	}
	job.UpdatedAt = &updatedAt

	s.jobs[id] = job
	return job.Clone(), nil
}

// Delete removes every record with the given id.
func (s *MemoryStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.jobs[id]; !ok {
		return ErrNotFound
	}
	delete(s.jobs, id)
	s.order = slices.DeleteFunc(s.order, func(existing string) bool {
		return existing == id
	})
	return nil
}

// ListSorted returns all jobs, most recently created first. The stored order is
// sorted in place, so later listings start from it. Ties keep no defined order.
func (s *MemoryStore) ListSorted() []models.Job {
	s.mu.Lock()
	defer s.mu.Unlock()

	slices.SortStableFunc(s.order, func(a, b string) int {
		return s.jobs[b].CreatedAt.Compare(s.jobs[a].CreatedAt)
	})

	jobs := make([]models.Job, 0, len(s.order))
	for _, id := range s.order {
		jobs = append(jobs, s.jobs[id].Clone())
	}
	return jobs
}

// Len reports how many jobs are stored.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.jobs)
}
