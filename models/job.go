package models

import (
	"time"
)

// JobType is the kind of engagement a job represents. It is fixed at creation.
type JobType string

const (
	JobTypeOnDemand  JobType = "ON_DEMAND"
	JobTypeShift     JobType = "SHIFT"
	JobTypeScheduled JobType = "SCHEDULED"
)

// JobStatus is the assignment state of a job.
type JobStatus string

const (
	JobStatusAvailable JobStatus = "AVAILABLE"
	JobStatusAssigned  JobStatus = "ASSIGNED"
	JobStatusCompleted JobStatus = "COMPLETED"
)

// Job represents a single job record held by the store.
type Job struct {
	ID           string     `json:"id" validate:"required,uuid4"`
	Type         JobType    `json:"type" validate:"required,oneof=ON_DEMAND SHIFT SCHEDULED"`
	PriceInPence int64      `json:"priceInPence" validate:"gte=0"`
	ContactEmail *string    `json:"contactEmail,omitempty" validate:"omitempty,email"` // Nullable, cleared by updates that omit it
	Status       JobStatus  `json:"status" validate:"required,oneof=AVAILABLE ASSIGNED COMPLETED"`
	CreatedAt    time.Time  `json:"createdAt" validate:"required"`
	UpdatedAt    *time.Time `json:"updatedAt"` // null until the first update
}

// Clone returns a deep copy so callers never share pointer fields with the store.
func (j Job) Clone() Job {
	out := j
	if j.ContactEmail != nil {
		email := *j.ContactEmail
		out.ContactEmail = &email
	}
	if j.UpdatedAt != nil {
		updated := *j.UpdatedAt
		out.UpdatedAt = &updated
	}
	return out
}

// Now returns the current time as jobs record it: UTC at millisecond precision.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// CreateJobRequest defines the expected request body for creating a job.
// Pointers distinguish a missing field from an explicit zero value (e.g. a price of 0).
type CreateJobRequest struct {
	Type         *JobType   `json:"type" validate:"required,oneof=ON_DEMAND SHIFT SCHEDULED"`
	PriceInPence *int64     `json:"priceInPence" validate:"required,gte=0"`
	ContactEmail *string    `json:"contactEmail,omitempty" validate:"omitempty,email"`
	Status       *JobStatus `json:"status" validate:"required,oneof=AVAILABLE ASSIGNED COMPLETED"`
}

// UpdateJobRequest defines the expected request body for patching a job.
// Only contactEmail and status are ever applied.
type UpdateJobRequest struct {
	ContactEmail *string    `json:"contactEmail,omitempty" validate:"omitempty,email"`
	Status       *JobStatus `json:"status" validate:"required,oneof=AVAILABLE ASSIGNED COMPLETED"`
}

// NewJob builds a job from a validated create request.
func NewJob(id string, createdAt time.Time, req CreateJobRequest) Job {
	job := Job{
		ID:        id,
		CreatedAt: createdAt,
	}
	if req.Type != nil {
		job.Type = *req.Type
	}
	if req.PriceInPence != nil {
		job.PriceInPence = *req.PriceInPence
	}
	if req.Status != nil {
		job.Status = *req.Status
	}
	if req.ContactEmail != nil {
		email := *req.ContactEmail
		job.ContactEmail = &email
	}
	return job
}

// JobPatch carries the two mutable fields applied by an update.
type JobPatch struct {
	ContactEmail *string
	Status       JobStatus
}

// Patch converts a validated update request into the fields the store applies.
func (r UpdateJobRequest) Patch() JobPatch {
	patch := JobPatch{}
	if r.Status != nil {
		patch.Status = *r.Status
	}
	if r.ContactEmail != nil {
		email := *r.ContactEmail
		patch.ContactEmail = &email
	}
	return patch
}
