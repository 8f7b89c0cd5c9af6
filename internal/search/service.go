package search

import (
	"fmt"
	"strings"
	"time"

	"github.com/campusconnect/discovery-engine/internal/errors"
	"github.com/campusconnect/discovery-engine/model"
	"github.com/campusconnect/discovery-engine/services"
)

// DefaultSuggestionLimit caps autocomplete results when the caller does
// not supply a limit.
const DefaultSuggestionLimit = 4

// Service resolves query strings against the live prefix indexes. It never
// touches index internals directly: indexes are obtained per call through
// the IndexProvider, so a concurrent rebuild cannot affect a lookup already
// in flight.
//
// It fulfills the services.Searcher and services.Autocompleter interfaces.
type Service struct {
	provider        services.IndexProvider
	labels          services.LabelSource
	suggestionLimit int
}

// NewService creates a new search Service. suggestionLimit caps
// autocomplete results when the caller passes no limit; zero means
// DefaultSuggestionLimit.
func NewService(provider services.IndexProvider, labels services.LabelSource, suggestionLimit int) (*Service, error) {
	if provider == nil {
		return nil, fmt.Errorf("index provider cannot be nil")
	}
	if labels == nil {
		return nil, fmt.Errorf("label source cannot be nil")
	}
	if suggestionLimit <= 0 {
		suggestionLimit = DefaultSuggestionLimit
	}
	return &Service{
		provider:        provider,
		labels:          labels,
		suggestionLimit: suggestionLimit,
	}, nil
}

// Search trims the query and resolves it as a prefix against each
// requested category's current index. category may name a single indexed
// category or model.CategoryAll. An empty identifier set for a category is
// a valid outcome, not an error.
func (s *Service) Search(query string, category model.Category) (services.SearchResult, error) {
	start := time.Now()

	query = strings.TrimSpace(query)
	if query == "" {
		return services.SearchResult{}, errors.NewEmptyQueryError()
	}

	categories, err := expandCategory(category)
	if err != nil {
		return services.SearchResult{}, err
	}

	result := services.SearchResult{IDs: make(map[model.Category][]int64, len(categories))}
	for _, cat := range categories {
		idx, err := s.provider.Current(cat)
		if err != nil {
			return services.SearchResult{}, err
		}
		result.IDs[cat] = idx.LookupPrefix(query)
	}

	result.Took = time.Since(start).Milliseconds()
	return result, nil
}

// Autocomplete returns up to limit suggestions for the query prefix in one
// category. The identifier set coming out of the trie is ordered by
// identifier ascending before truncation, so suggestions are deterministic
// across calls; truncating an unordered set is not a contract anyone can
// rely on.
func (s *Service) Autocomplete(query string, category model.Category, limit int) ([]model.Suggestion, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.NewEmptyQueryError()
	}
	if !category.IsIndexed() {
		return nil, errors.NewUnknownCategoryError(string(category))
	}
	if limit <= 0 {
		limit = s.suggestionLimit
	}

	idx, err := s.provider.Current(category)
	if err != nil {
		return nil, err
	}

	suggestions := make([]model.Suggestion, 0, limit)
	for _, id := range idx.LookupPrefix(query) {
		label, ok := s.labels.Label(category, id)
		if !ok {
			// The record vanished between rebuilds; skip the stale entry.
			continue
		}
		suggestions = append(suggestions, model.Suggestion{ID: id, Label: label})
		if len(suggestions) == limit {
			break
		}
	}
	return suggestions, nil
}

// expandCategory maps the requested category to the concrete indexed
// categories to query.
func expandCategory(category model.Category) ([]model.Category, error) {
	if category == model.CategoryAll {
		return model.IndexedCategories(), nil
	}
	if category.IsIndexed() {
		return []model.Category{category}, nil
	}
	return nil, errors.NewUnknownCategoryError(string(category))
}
