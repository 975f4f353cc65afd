package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"jobservice/api/models"
	"jobservice/api/store"
	"jobservice/api/utils"
	"jobservice/api/validation"
)

// RegisterRoutes mounts the job routes on router.
func (h *ApplicationHandler) RegisterRoutes(router fiber.Router) {
	jobs := router.Group("/jobs")

	jobs.Get("", h.ListJobs)
	jobs.Post("", h.CreateJob)
	jobs.Get("/:id", h.GetJob)
	jobs.Patch("/:id", h.UpdateJob)
	jobs.Delete("/:id", h.DeleteJob)
}

// ListJobs godoc
// @Summary List all jobs
// @Description Returns every job, most recently created first.
// @Tags jobs
// @Produce json
// @Success 200 {array} models.Job
// @Router /jobs [get]
func (h *ApplicationHandler) ListJobs(c *fiber.Ctx) error {
	jobs := h.Store.ListSorted()
	h.Logger.Debugf("Listing %d jobs", len(jobs))
	return utils.RespondWithJSON(c, fiber.StatusOK, jobs)
}

// GetJob godoc
// @Summary Get a job
// @Description Retrieves a single job by its id.
// @Tags jobs
// @Produce json
// @Param id path string true "Job ID"
// @Success 200 {object} models.Job
// @Failure 404 {string} string "No Job With This ID Was Found"
// @Router /jobs/{id} [get]
func (h *ApplicationHandler) GetJob(c *fiber.Ctx) error {
	jobID := c.Params("id")

	job, err := h.Store.FindByID(jobID)
	if err != nil {
		return h.storeError(c, "get", jobID, err)
	}
	return utils.RespondWithJSON(c, fiber.StatusOK, job)
}

// CreateJob godoc
// @Summary Create a job
// @Description Creates a job. The id and createdAt are assigned by the server; updatedAt starts as null.
// @Tags jobs
// @Accept json
// @Produce json
// @Param job body models.CreateJobRequest true "Job to create"
// @Success 201 {object} models.Job
// @Failure 400 {string} string "Validation failure reason"
// @Router /jobs [post]
func (h *ApplicationHandler) CreateJob(c *fiber.Ctx) error {
	result := validation.CreateSchema.Validate(c.Body())
	if !result.Valid() {
		return h.invalid(c, validation.CreateSchema.Name, "", result.Reason)
	}

	job := models.NewJob(h.NewID(), h.Now(), result.Value)
	if err := h.Store.Insert(job); err != nil {
		h.Logger.WithError(err).WithField("job_id", job.ID).Error("Could not insert job")
		return fiber.NewError(fiber.StatusInternalServerError, "Could not create job")
	}

	h.Metrics.RecordCreated(h.Store.Len())
	h.Logger.WithFields(logrus.Fields{
		"job_id": job.ID,
		"type":   job.Type,
		"status": job.Status,
	}).Info("Job created")
	return utils.RespondWithJSON(c, fiber.StatusCreated, job)
}

// UpdateJob godoc
// @Summary Update a job
// @Description Sets status and contactEmail. An omitted contactEmail clears it. The body is validated before the id is looked up.
// @Tags jobs
// @Accept json
// @Produce json
// @Param id path string true "Job ID"
// @Param job body models.UpdateJobRequest true "Fields to update"
// @Success 200 {object} models.Job
// @Failure 400 {string} string "Validation failure reason"
// @Failure 404 {string} string "No Job With This ID Was Found"
// @Router /jobs/{id} [patch]
func (h *ApplicationHandler) UpdateJob(c *fiber.Ctx) error {
	jobID := c.Params("id")

	result := validation.UpdateSchema.Validate(c.Body())
	if !result.Valid() {
		return h.invalid(c, validation.UpdateSchema.Name, jobID, result.Reason)
	}

	job, err := h.Store.Update(jobID, result.Value.Patch())
	if err != nil {
		return h.storeError(c, "update", jobID, err)
	}

	h.Metrics.RecordUpdated()
	h.Logger.WithFields(logrus.Fields{
		"job_id": job.ID,
		"status": job.Status,
	}).Info("Job updated")
	return utils.RespondWithJSON(c, fiber.StatusOK, job)
}

// DeleteJob godoc
// @Summary Delete a job
// @Tags jobs
// @Param id path string true "Job ID"
// @Success 204
// @Failure 404 {string} string "No Job With This ID Was Found"
// @Router /jobs/{id} [delete]
func (h *ApplicationHandler) DeleteJob(c *fiber.Ctx) error {
	jobID := c.Params("id")

	if err := h.Store.Delete(jobID); err != nil {
		return h.storeError(c, "delete", jobID, err)
	}

	h.Metrics.RecordDeleted(h.Store.Len())
	h.Logger.WithField("job_id", jobID).Info("Job deleted")
	return utils.RespondNoContent(c)
}

func (h *ApplicationHandler) invalid(c *fiber.Ctx, operation, jobID, reason string) error {
	h.Metrics.RecordValidationFailure(operation)
	entry := h.Logger.WithField("reason", reason)
	if jobID != "" {
		entry = entry.WithField("job_id", jobID)
	}
	entry.Warnf("Rejected %s payload", operation)
	return utils.RespondWithError(c, fiber.StatusBadRequest, reason)
}

// storeError maps store failures to responses. Anything but ErrNotFound is
// handed to the app error handler.
func (h *ApplicationHandler) storeError(c *fiber.Ctx, operation, jobID string, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		h.Metrics.RecordNotFound(operation)
		h.Logger.WithField("job_id", jobID).Infof("Job not found for %s", operation)
		return utils.RespondWithError(c, fiber.StatusNotFound, utils.NoJobFoundMessage)
	}
	h.Logger.WithError(err).WithField("job_id", jobID).Errorf("Store failure during %s", operation)
	return err
}
