package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campusconnect/discovery-engine/model"
)

// RebuildHandler kicks off an asynchronous full rebuild of every index
// and returns the tracking job ID.
// Query param: type (optional; events|organizations for a single category)
func (api *API) RebuildHandler(c *gin.Context) {
	var jobID string
	var err error

	if rawCategory := c.Query("type"); rawCategory != "" {
		jobID, err = api.engine.RebuildAsync(model.Category(rawCategory))
	} else {
		jobID, err = api.engine.RebuildAllAsync()
	}
	if err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidRequest, err.Error())
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"status": "accepted",
		"job_id": jobID,
	})
}

// GetJobHandler returns the status of a background job by ID.
func (api *API) GetJobHandler(c *gin.Context) {
	job, err := api.engine.GetJob(c.Param("jobId"))
	if err != nil {
		SendServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// ListJobsHandler lists background jobs, optionally filtered by status.
// Query param: status (optional; pending|running|completed|failed)
func (api *API) ListJobsHandler(c *gin.Context) {
	var status *model.JobStatus
	if rawStatus := c.Query("status"); rawStatus != "" {
		s := model.JobStatus(rawStatus)
		switch s {
		case model.JobStatusPending, model.JobStatusRunning, model.JobStatusCompleted, model.JobStatusFailed:
			status = &s
		default:
			SendError(c, http.StatusBadRequest, ErrorCodeInvalidRequest, "unknown job status '"+rawStatus+"'")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"jobs": api.engine.ListJobs(status)})
}
