package engine

import (
	"fmt"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/campusconnect/discovery-engine/index"
	"github.com/campusconnect/discovery-engine/internal/errors"
	"github.com/campusconnect/discovery-engine/internal/indexing"
	"github.com/campusconnect/discovery-engine/internal/jobs"
	"github.com/campusconnect/discovery-engine/internal/metrics"
	"github.com/campusconnect/discovery-engine/model"
	"github.com/campusconnect/discovery-engine/services"
)

// Engine owns the live prefix indexes, one per category, and their
// rebuild lifecycle. Rebuilds construct a whole new trie in private and
// publish it with a single pointer swap under the mutex: readers that
// already hold the old index keep using it to completion, and nobody ever
// observes a half-built trie. This is the versioned copy-and-swap publish
// point; indexes are never mutated in place.
//
// It implements services.IndexProvider, services.Rebuilder and
// services.JobManager.
type Engine struct {
	mu         sync.RWMutex
	live       map[model.Category]*index.PrefixIndex
	source     services.RecordSource
	jobManager *jobs.Manager
	metrics    *metrics.Metrics
}

// NewEngine creates an engine and performs the initial full rebuild from
// the record source. metricsCollector may be nil.
func NewEngine(source services.RecordSource, maxRebuildWorkers int, metricsCollector *metrics.Metrics) (*Engine, error) {
	if source == nil {
		return nil, fmt.Errorf("record source cannot be nil")
	}

	eng := &Engine{
		live:       make(map[model.Category]*index.PrefixIndex),
		source:     source,
		jobManager: jobs.NewManager(maxRebuildWorkers),
		metrics:    metricsCollector,
	}
	eng.jobManager.Start()

	if err := eng.RebuildAll(); err != nil {
		eng.jobManager.Stop()
		return nil, fmt.Errorf("initial index build failed: %w", err)
	}
	return eng, nil
}

// Stop shuts down background job processing.
func (e *Engine) Stop() {
	e.jobManager.Stop()
}

// Current returns the live index for a category. The returned index is
// immutable: callers may keep it for the whole request even if a rebuild
// publishes a newer one meanwhile.
func (e *Engine) Current(category model.Category) (services.PrefixLookup, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	idx, ok := e.live[category]
	if !ok {
		return nil, errors.NewUnknownCategoryError(string(category))
	}
	return idx, nil
}

// Rebuild rebuilds one category's index from a fresh snapshot and swaps it
// in. On failure the previously published index stays live.
func (e *Engine) Rebuild(category model.Category) error {
	start := time.Now()

	idx, err := e.buildCategory(category)
	if err != nil {
		e.metrics.ObserveRebuild(string(category), err, time.Since(start), 0)
		return err
	}

	e.mu.Lock()
	e.live[category] = idx
	e.mu.Unlock()

	e.metrics.ObserveRebuild(string(category), nil, time.Since(start), idx.TokenCount())
	log.Printf("Rebuilt '%s' index: %d distinct tokens", category, idx.TokenCount())
	return nil
}

// RebuildAll rebuilds every indexed category concurrently and publishes
// all of them in one swap. If any category fails, nothing is published.
func (e *Engine) RebuildAll() error {
	start := time.Now()
	categories := model.IndexedCategories()
	built := make([]*index.PrefixIndex, len(categories))

	var group errgroup.Group
	for i, category := range categories {
		i, category := i, category
		group.Go(func() error {
			idx, err := e.buildCategory(category)
			if err != nil {
				return err
			}
			built[i] = idx
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		for _, category := range categories {
			e.metrics.ObserveRebuild(string(category), err, time.Since(start), 0)
		}
		return err
	}

	e.mu.Lock()
	for i, category := range categories {
		e.live[category] = built[i]
	}
	e.mu.Unlock()

	for i, category := range categories {
		e.metrics.ObserveRebuild(string(category), nil, time.Since(start), built[i].TokenCount())
		log.Printf("Rebuilt '%s' index: %d distinct tokens", category, built[i].TokenCount())
	}
	return nil
}

// buildCategory constructs a fresh, unpublished index for one category.
func (e *Engine) buildCategory(category model.Category) (*index.PrefixIndex, error) {
	var snapshots []services.RecordSnapshot
	switch category {
	case model.CategoryEvents:
		snapshots = e.source.EventSnapshots()
	case model.CategoryOrganizations:
		snapshots = e.source.OrganizationSnapshots()
	default:
		return nil, errors.NewUnknownCategoryError(string(category))
	}

	return indexing.Build(string(category), snapshots)
}

// GetJob retrieves a background job by ID.
func (e *Engine) GetJob(jobID string) (*model.Job, error) {
	return e.jobManager.GetJob(jobID)
}

// ListJobs returns background jobs, optionally filtered by status.
func (e *Engine) ListJobs(status *model.JobStatus) []*model.Job {
	return e.jobManager.ListJobs(status)
}
