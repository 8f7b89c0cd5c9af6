package store

import (
	"sort"
	"strings"
	"sync"

	"github.com/campusconnect/discovery-engine/internal/errors"
	"github.com/campusconnect/discovery-engine/model"
	"github.com/campusconnect/discovery-engine/services"
)

// RecordStore is the in-memory source of truth for events and
// organizations. The prefix indexes are always rebuilt from its snapshots,
// never patched incrementally, so the store owns no index state of its own.
//
// It implements services.RecordSource and services.LabelSource.
type RecordStore struct {
	mu            sync.RWMutex
	events        map[int64]model.Event
	organizations map[int64]model.Organization
	nextEventID   int64
	nextOrgID     int64
}

// NewRecordStore creates an empty RecordStore.
func NewRecordStore() *RecordStore {
	return &RecordStore{
		events:        make(map[int64]model.Event),
		organizations: make(map[int64]model.Organization),
		nextEventID:   1,
		nextOrgID:     1,
	}
}

// PutEvent inserts or updates an event. A zero ID means "assign one". The
// owning organization must already exist.
func (rs *RecordStore) PutEvent(event model.Event) (model.Event, error) {
	if strings.TrimSpace(event.Title) == "" {
		return model.Event{}, errors.NewValidationError("title", "event title cannot be empty")
	}
	if event.Date.IsZero() {
		return model.Event{}, errors.NewValidationError("date", "event date is required")
	}

	rs.mu.Lock()
	defer rs.mu.Unlock()

	if _, ok := rs.organizations[event.OrganizationID]; !ok {
		return model.Event{}, errors.NewOrganizationNotFoundError(event.OrganizationID)
	}

	if event.ID == 0 {
		event.ID = rs.nextEventID
		rs.nextEventID++
	} else if _, ok := rs.events[event.ID]; !ok {
		return model.Event{}, errors.NewEventNotFoundError(event.ID)
	}

	event.Tags = append([]string(nil), event.Tags...)
	rs.events[event.ID] = event
	return event, nil
}

// Event returns the event with the given ID.
func (rs *RecordStore) Event(id int64) (model.Event, error) {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	event, ok := rs.events[id]
	if !ok {
		return model.Event{}, errors.NewEventNotFoundError(id)
	}
	return event, nil
}

// DeleteEvent removes the event with the given ID.
func (rs *RecordStore) DeleteEvent(id int64) error {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	if _, ok := rs.events[id]; !ok {
		return errors.NewEventNotFoundError(id)
	}
	delete(rs.events, id)
	return nil
}

// Events resolves identifiers to full events, preserving the input order.
// Unknown identifiers are skipped: a stale index entry is not an error.
func (rs *RecordStore) Events(ids []int64) []model.Event {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	out := make([]model.Event, 0, len(ids))
	for _, id := range ids {
		if event, ok := rs.events[id]; ok {
			out = append(out, event)
		}
	}
	return out
}

// ListEvents returns every event sorted by ID ascending.
func (rs *RecordStore) ListEvents() []model.Event {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	out := make([]model.Event, 0, len(rs.events))
	for _, event := range rs.events {
		out = append(out, event)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// PutOrganization inserts or updates an organization. A zero ID means
// "assign one".
func (rs *RecordStore) PutOrganization(org model.Organization) (model.Organization, error) {
	if strings.TrimSpace(org.Name) == "" {
		return model.Organization{}, errors.NewValidationError("name", "organization name cannot be empty")
	}

	rs.mu.Lock()
	defer rs.mu.Unlock()

	if org.ID == 0 {
		org.ID = rs.nextOrgID
		rs.nextOrgID++
	} else if _, ok := rs.organizations[org.ID]; !ok {
		return model.Organization{}, errors.NewOrganizationNotFoundError(org.ID)
	}

	rs.organizations[org.ID] = org
	return org, nil
}

// Organization returns the organization with the given ID.
func (rs *RecordStore) Organization(id int64) (model.Organization, error) {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	org, ok := rs.organizations[id]
	if !ok {
		return model.Organization{}, errors.NewOrganizationNotFoundError(id)
	}
	return org, nil
}

// DeleteOrganization removes the organization and every event it owns.
func (rs *RecordStore) DeleteOrganization(id int64) error {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	if _, ok := rs.organizations[id]; !ok {
		return errors.NewOrganizationNotFoundError(id)
	}
	delete(rs.organizations, id)
	for eventID, event := range rs.events {
		if event.OrganizationID == id {
			delete(rs.events, eventID)
		}
	}
	return nil
}

// Organizations resolves identifiers to full organizations, preserving the
// input order and skipping unknown IDs.
func (rs *RecordStore) Organizations(ids []int64) []model.Organization {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	out := make([]model.Organization, 0, len(ids))
	for _, id := range ids {
		if org, ok := rs.organizations[id]; ok {
			out = append(out, org)
		}
	}
	return out
}

// ListOrganizations returns every organization sorted by ID ascending.
func (rs *RecordStore) ListOrganizations() []model.Organization {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	out := make([]model.Organization, 0, len(rs.organizations))
	for _, org := range rs.organizations {
		out = append(out, org)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// EventSnapshots flattens every event into the shape the index builder
// consumes: title as primary text, tags as whole-field tokens, and the
// hosting organization's name as secondary text.
func (rs *RecordStore) EventSnapshots() []services.RecordSnapshot {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	out := make([]services.RecordSnapshot, 0, len(rs.events))
	for _, event := range rs.events {
		snap := services.RecordSnapshot{
			ID:          event.ID,
			PrimaryText: event.Title,
			Tags:        append([]string(nil), event.Tags...),
		}
		if org, ok := rs.organizations[event.OrganizationID]; ok {
			snap.SecondaryText = org.Name
		}
		out = append(out, snap)
	}
	return out
}

// OrganizationSnapshots flattens every organization: name as primary text
// and industry as secondary text.
func (rs *RecordStore) OrganizationSnapshots() []services.RecordSnapshot {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	out := make([]services.RecordSnapshot, 0, len(rs.organizations))
	for _, org := range rs.organizations {
		out = append(out, services.RecordSnapshot{
			ID:            org.ID,
			PrimaryText:   org.Name,
			SecondaryText: org.Industry,
		})
	}
	return out
}

// EventViews returns every event as a ranking candidate with its hosting
// organization joined in as the secondary entity.
func (rs *RecordStore) EventViews() []services.RecordView {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	out := make([]services.RecordView, 0, len(rs.events))
	for _, event := range rs.events {
		view := services.RecordView{
			ID:    event.ID,
			Title: event.Title,
			Tags:  append([]string(nil), event.Tags...),
			Date:  event.Date,
		}
		if org, ok := rs.organizations[event.OrganizationID]; ok {
			view.Secondary = &services.SecondaryEntity{Name: org.Name, Category: org.Industry}
		}
		out = append(out, view)
	}
	return out
}

// Label resolves an identifier to its display label for autocomplete:
// event title or organization name.
func (rs *RecordStore) Label(category model.Category, id int64) (string, bool) {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	switch category {
	case model.CategoryEvents:
		if event, ok := rs.events[id]; ok {
			return event.Title, true
		}
	case model.CategoryOrganizations:
		if org, ok := rs.organizations[id]; ok {
			return org.Name, true
		}
	}
	return "", false
}
