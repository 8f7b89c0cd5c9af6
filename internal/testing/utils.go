// Package testing provides utilities and helpers for testing the
// discovery engine.
package testing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/campusconnect/discovery-engine/internal/engine"
	"github.com/campusconnect/discovery-engine/model"
	"github.com/campusconnect/discovery-engine/store"
)

// SeedTime is the base timestamp for fixture events; fixtures offset from
// it by whole days so date tie-breaks are easy to reason about.
var SeedTime = time.Date(2025, time.March, 10, 18, 0, 0, 0, time.UTC)

// CreateSeededStore creates a RecordStore with a small cross-linked
// fixture: two organizations and three events covering the common search
// and ranking cases.
func CreateSeededStore(t *testing.T) *store.RecordStore {
	t.Helper()

	recordStore := store.NewRecordStore()

	techCorp, err := recordStore.PutOrganization(model.Organization{
		Name:     "TechCorp",
		Industry: "Technology",
	})
	require.NoError(t, err)

	dataWorks, err := recordStore.PutOrganization(model.Organization{
		Name:     "DataWorks",
		Industry: "Data Science",
	})
	require.NoError(t, err)

	fixtures := []model.Event{
		{
			OrganizationID: techCorp.ID,
			Title:          "Tech Career Fair",
			Date:           SeedTime,
			Tags:           []string{"Technology", "Careers"},
		},
		{
			OrganizationID: techCorp.ID,
			Title:          "Tech Networking Night",
			Date:           SeedTime.AddDate(0, 0, 1),
			Tags:           []string{"Networking"},
		},
		{
			OrganizationID: dataWorks.ID,
			Title:          "Intro to Machine Learning",
			Date:           SeedTime.AddDate(0, 0, 2),
			Tags:           []string{"AI", "Python"},
		},
	}
	for _, event := range fixtures {
		_, err := recordStore.PutEvent(event)
		require.NoError(t, err)
	}

	return recordStore
}

// CreateTestEngine creates an engine over a seeded store with automatic
// shutdown.
func CreateTestEngine(t *testing.T) (*engine.Engine, *store.RecordStore) {
	t.Helper()

	recordStore := CreateSeededStore(t)
	eng, err := engine.NewEngine(recordStore, 1, nil)
	require.NoError(t, err)

	t.Cleanup(eng.Stop)
	return eng, recordStore
}
