package store

import (
	"fmt"
	"time"

	"jobservice/api/models"
	"jobservice/api/validation"
)

// SampleJobs returns the fixtures loaded when seeding is enabled.
func SampleJobs() []models.Job {
	email := "test@test.com"
	return []models.Job{
		{
			ID:           "8cbdd2b0-7055-40d3-8f2d-ba9b38fb3d1e",
			Type:         models.JobTypeOnDemand,
			PriceInPence: 10000,
			ContactEmail: &email,
			Status:       models.JobStatusAssigned,
			CreatedAt:    time.Date(2020, time.June, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:           "8cbdd2b0-7055-40d3-8f2d-ba9b38fb3e1e",
			Type:         models.JobTypeOnDemand,
			PriceInPence: 10000,
			ContactEmail: &email,
			Status:       models.JobStatusAssigned,
			CreatedAt:    time.Date(2019, time.June, 1, 0, 0, 0, 0, time.UTC),
		},
	}
}

// Seed inserts pre-formed jobs, refusing any that would break the create
// constraints. Jobs before the failing one stay inserted.
func Seed(s JobStore, jobs ...models.Job) error {
	for _, job := range jobs {
		if err := validation.CheckJob(job); err != nil {
			return fmt.Errorf("seed job %s: %w", job.ID, err)
		}
		if err := s.Insert(job); err != nil {
			return fmt.Errorf("seed job %s: %w", job.ID, err)
		}
	}
	return nil
}
