package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	internalErrors "github.com/campusconnect/discovery-engine/internal/errors"
	"github.com/campusconnect/discovery-engine/model"
)

func TestManager_CreateJob(t *testing.T) {
	manager := NewManager(2)
	defer manager.Stop()

	jobID := manager.CreateJob(model.JobTypeRebuild, model.CategoryEvents, map[string]string{
		"operation": "rebuild",
	})

	if jobID == "" {
		t.Error("Expected non-empty job ID")
	}

	job, err := manager.GetJob(jobID)
	if err != nil {
		t.Fatalf("Failed to get created job: %v", err)
	}

	if job.Type != model.JobTypeRebuild {
		t.Errorf("Expected job type %s, got %s", model.JobTypeRebuild, job.Type)
	}
	if job.Status != model.JobStatusPending {
		t.Errorf("Expected job status %s, got %s", model.JobStatusPending, job.Status)
	}
	if job.Category != model.CategoryEvents {
		t.Errorf("Expected category %s, got %s", model.CategoryEvents, job.Category)
	}
	if job.CreatedAt.IsZero() {
		t.Error("Expected CreatedAt to be set")
	}
}

func TestManager_GetJobNotFound(t *testing.T) {
	manager := NewManager(1)
	defer manager.Stop()

	_, err := manager.GetJob("no-such-job")
	if !errors.Is(err, internalErrors.ErrJobNotFound) {
		t.Errorf("Expected ErrJobNotFound, got %v", err)
	}
}

func TestManager_ExecuteJob(t *testing.T) {
	manager := NewManager(2)
	manager.Start()
	defer manager.Stop()

	jobID := manager.CreateJob(model.JobTypeRebuild, model.CategoryEvents, nil)

	err := manager.ExecuteJob(jobID, func(ctx context.Context, job *model.Job) error {
		time.Sleep(10 * time.Millisecond) // Simulate work
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to execute job: %v", err)
	}

	job := waitForTerminal(t, manager, jobID)
	if job.Status != model.JobStatusCompleted {
		t.Errorf("Expected job status %s, got %s", model.JobStatusCompleted, job.Status)
	}
	if job.StartedAt == nil {
		t.Error("Expected StartedAt to be set")
	}
	if job.CompletedAt == nil {
		t.Error("Expected CompletedAt to be set")
	}
}

func TestManager_ExecuteJobFailure(t *testing.T) {
	manager := NewManager(1)
	manager.Start()
	defer manager.Stop()

	jobID := manager.CreateJob(model.JobTypeFullRebuild, "", nil)

	err := manager.ExecuteJob(jobID, func(ctx context.Context, job *model.Job) error {
		return errors.New("snapshot went away")
	})
	if err != nil {
		t.Fatalf("Failed to execute job: %v", err)
	}

	job := waitForTerminal(t, manager, jobID)
	if job.Status != model.JobStatusFailed {
		t.Errorf("Expected job status %s, got %s", model.JobStatusFailed, job.Status)
	}
	if job.Error != "snapshot went away" {
		t.Errorf("Expected failure message on job, got %q", job.Error)
	}
}

func TestManager_ExecuteJobRequiresPendingStatus(t *testing.T) {
	manager := NewManager(1)
	manager.Start()
	defer manager.Stop()

	jobID := manager.CreateJob(model.JobTypeRebuild, model.CategoryEvents, nil)

	if err := manager.ExecuteJob(jobID, func(ctx context.Context, job *model.Job) error {
		return nil
	}); err != nil {
		t.Fatalf("Failed to execute job: %v", err)
	}
	waitForTerminal(t, manager, jobID)

	err := manager.ExecuteJob(jobID, func(ctx context.Context, job *model.Job) error {
		return nil
	})
	if err == nil {
		t.Error("Expected error when executing a non-pending job")
	}

	if err := manager.ExecuteJob("no-such-job", func(ctx context.Context, job *model.Job) error {
		return nil
	}); !errors.Is(err, internalErrors.ErrJobNotFound) {
		t.Errorf("Expected ErrJobNotFound, got %v", err)
	}
}

func TestManager_ListJobs(t *testing.T) {
	manager := NewManager(2)
	manager.Start()
	defer manager.Stop()

	pendingID := manager.CreateJob(model.JobTypeRebuild, model.CategoryEvents, nil)
	completedID := manager.CreateJob(model.JobTypeRebuild, model.CategoryOrganizations, nil)

	if err := manager.ExecuteJob(completedID, func(ctx context.Context, job *model.Job) error {
		return nil
	}); err != nil {
		t.Fatalf("Failed to execute job: %v", err)
	}
	waitForTerminal(t, manager, completedID)

	all := manager.ListJobs(nil)
	if len(all) != 2 {
		t.Errorf("Expected 2 jobs, got %d", len(all))
	}

	pending := model.JobStatusPending
	got := manager.ListJobs(&pending)
	if len(got) != 1 || got[0].ID != pendingID {
		t.Errorf("Expected only the pending job, got %v", got)
	}
}

func TestManager_CleanupOldJobs(t *testing.T) {
	manager := NewManager(1)
	manager.Start()
	defer manager.Stop()

	jobID := manager.CreateJob(model.JobTypeRebuild, model.CategoryEvents, nil)
	if err := manager.ExecuteJob(jobID, func(ctx context.Context, job *model.Job) error {
		return nil
	}); err != nil {
		t.Fatalf("Failed to execute job: %v", err)
	}
	waitForTerminal(t, manager, jobID)

	// A generous max age keeps the fresh job.
	manager.CleanupOldJobs(time.Hour)
	if _, err := manager.GetJob(jobID); err != nil {
		t.Errorf("Fresh job was cleaned up: %v", err)
	}

	// A zero max age removes every terminal job.
	manager.CleanupOldJobs(0)
	if _, err := manager.GetJob(jobID); !errors.Is(err, internalErrors.ErrJobNotFound) {
		t.Errorf("Expected terminal job to be cleaned up, got %v", err)
	}
}

func waitForTerminal(t *testing.T, manager *Manager, jobID string) *model.Job {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case <-deadline:
			t.Fatalf("job %s did not finish in time", jobID)
		case <-time.After(5 * time.Millisecond):
		}
		job, err := manager.GetJob(jobID)
		if err != nil {
			t.Fatalf("Failed to get job: %v", err)
		}
		if job.IsTerminal() {
			return job
		}
	}
}
