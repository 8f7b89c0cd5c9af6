package model

import "time"

// Category identifies one searchable entity kind. Each category owns an
// independent prefix index; tokens are never shared across categories.
type Category string

const (
	CategoryEvents        Category = "events"
	CategoryOrganizations Category = "organizations"
	// CategoryAll is accepted at the search boundary only and expands to
	// every indexed category. It never names an index of its own.
	CategoryAll Category = "all"
)

// IndexedCategories lists the categories that own a prefix index, in a
// fixed order so rebuilds and result maps are deterministic.
func IndexedCategories() []Category {
	return []Category{CategoryEvents, CategoryOrganizations}
}

// IsIndexed reports whether the category owns a prefix index.
func (c Category) IsIndexed() bool {
	return c == CategoryEvents || c == CategoryOrganizations
}

// Event is a career event posted by an organization.
type Event struct {
	ID             int64     `json:"id"`
	OrganizationID int64     `json:"organization_id"`
	Title          string    `json:"title"`
	Description    string    `json:"description,omitempty"`
	Type           string    `json:"type,omitempty"` // e.g. "Virtual", "In-Person"
	Location       string    `json:"location,omitempty"`
	Date           time.Time `json:"date"`
	Tags           []string  `json:"tags,omitempty"`
}

// Organization is an employer that posts events.
type Organization struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Industry    string `json:"industry,omitempty"`
	Description string `json:"description,omitempty"`
	Website     string `json:"website,omitempty"`
}

// Suggestion is a single autocomplete entry: a record identifier plus the
// human-readable label shown to the user (event title or organization name).
type Suggestion struct {
	ID    int64  `json:"id"`
	Label string `json:"label"`
}
