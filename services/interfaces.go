package services

import (
	"time"

	"github.com/campusconnect/discovery-engine/model"
)

// RecordSnapshot is the flattened shape of one indexable record as handed
// to the index builder: the record's identifier, its primary text field,
// its tag/category labels, and an optional secondary display string (the
// organization name attached to an event, or an organization's industry).
type RecordSnapshot struct {
	ID            int64
	PrimaryText   string
	Tags          []string
	SecondaryText string
}

// SecondaryEntity is the associated entity of a ranking candidate, e.g.
// the organization hosting an event.
type SecondaryEntity struct {
	Name     string `json:"name"`
	Category string `json:"category,omitempty"` // e.g. the organization's industry
}

// RecordView is a ranking candidate: everything the ranking engine needs
// to score one record, already joined by the caller.
type RecordView struct {
	ID        int64            `json:"id"`
	Title     string           `json:"title"`
	Tags      []string         `json:"tags,omitempty"`
	Date      time.Time        `json:"date"`
	Secondary *SecondaryEntity `json:"secondary,omitempty"`
}

// ScoredCandidate pairs a record identifier with its relevance score and
// the interest terms that matched, kept for explainability and testing.
type ScoredCandidate struct {
	ID      int64    `json:"id"`
	Score   int      `json:"score"`
	Matches []string `json:"matches,omitempty"`
}

// SearchResult maps each queried category to the matching record
// identifiers, sorted ascending. An empty slice is a valid outcome, not an
// error.
type SearchResult struct {
	IDs  map[model.Category][]int64 `json:"ids"`
	Took int64                      `json:"took"` // milliseconds
}

// Searcher resolves a query string against the live prefix indexes.
type Searcher interface {
	Search(query string, category model.Category) (SearchResult, error)
}

// Autocompleter produces capped, deterministically ordered suggestions for
// a query prefix.
type Autocompleter interface {
	Autocomplete(query string, category model.Category, limit int) ([]model.Suggestion, error)
}

// Ranker orders candidate records by personal relevance to a profile.
type Ranker interface {
	Rank(records []RecordView, profile model.InterestProfile) []ScoredCandidate
}

// Rebuilder rebuilds prefix indexes from the record source of truth. A
// failed rebuild must leave the previously published index untouched.
type Rebuilder interface {
	Rebuild(category model.Category) error
	RebuildAll() error
}

// RecordSource supplies full snapshots of the indexable records. It is the
// collaborator boundary: the engine never reads storage directly.
type RecordSource interface {
	EventSnapshots() []RecordSnapshot
	OrganizationSnapshots() []RecordSnapshot
}

// LabelSource resolves a record identifier to its display label (event
// title, organization name) for autocomplete suggestions.
type LabelSource interface {
	Label(category model.Category, id int64) (string, bool)
}

// IndexProvider hands out the current live index for a category. Callers
// keep using the snapshot they obtained even if a rebuild publishes a new
// index concurrently.
type IndexProvider interface {
	Current(category model.Category) (PrefixLookup, error)
}

// PrefixLookup is the read-only surface of a published prefix index.
type PrefixLookup interface {
	LookupExact(token string) []int64
	LookupPrefix(prefix string) []int64
}

// JobManager defines operations for inspecting background jobs
type JobManager interface {
	GetJob(jobID string) (*model.Job, error)
	ListJobs(status *model.JobStatus) []*model.Job
}
