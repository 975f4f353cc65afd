package handlers

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"jobservice/api/metrics"
	"jobservice/api/models"
	"jobservice/api/store"
)

// ApplicationHandler holds shared dependencies for handlers.
type ApplicationHandler struct {
	Store   store.JobStore
	Logger  *logrus.Logger
	Metrics *metrics.Collector // May be nil

	// Now and NewID are overridable for tests.
	Now   func() time.Time
	NewID func() string
}

// NewApplicationHandler creates a new ApplicationHandler with the given dependencies.
func NewApplicationHandler(jobStore store.JobStore, logger *logrus.Logger, collector *metrics.Collector) *ApplicationHandler {
	return &ApplicationHandler{
		Store:   jobStore,
		Logger:  logger,
		Metrics: collector,
		Now:     models.Now,
		NewID:   uuid.NewString,
	}
}
