// Package store owns the authoritative collection of jobs.
package store

import (
	"errors"

	"jobservice/api/models"
)

var (
	// ErrNotFound is returned when no job matches the requested id.
	ErrNotFound = errors.New("job not found")
	// ErrDuplicateID is returned when inserting a job whose id is already stored.
	ErrDuplicateID = errors.New("job id already exists")
)

// JobStore defines the operations handlers expect from job storage.
// Implementations return copies; mutating a returned Job never changes the store.
type JobStore interface {
	Insert(job models.Job) error
	FindByID(id string) (models.Job, error)
	Update(id string, patch models.JobPatch) (models.Job, error)
	Delete(id string) error
	ListSorted() []models.Job
	Len() int
}
