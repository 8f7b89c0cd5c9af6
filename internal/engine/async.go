package engine

import (
	"context"
	"fmt"

	"github.com/campusconnect/discovery-engine/model"
)

// RebuildAsync rebuilds one category's index in the background and
// returns the tracking job ID.
func (e *Engine) RebuildAsync(category model.Category) (string, error) {
	if !category.IsIndexed() {
		return "", fmt.Errorf("cannot rebuild '%s': not an indexed category", category)
	}

	jobID := e.jobManager.CreateJob(model.JobTypeRebuild, category, map[string]string{
		"operation": "rebuild",
	})

	err := e.jobManager.ExecuteJob(jobID, func(_ context.Context, _ *model.Job) error {
		return e.Rebuild(category)
	})
	if err != nil {
		return "", fmt.Errorf("failed to start rebuild job: %w", err)
	}

	return jobID, nil
}

// RebuildAllAsync rebuilds every category in the background and returns
// the tracking job ID.
func (e *Engine) RebuildAllAsync() (string, error) {
	jobID := e.jobManager.CreateJob(model.JobTypeFullRebuild, "", map[string]string{
		"operation": "full_rebuild",
	})

	err := e.jobManager.ExecuteJob(jobID, func(_ context.Context, _ *model.Job) error {
		return e.RebuildAll()
	})
	if err != nil {
		return "", fmt.Errorf("failed to start full rebuild job: %w", err)
	}

	return jobID, nil
}
