package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/campusconnect/discovery-engine/model"
)

// SearchResponse carries the resolved records per queried category.
type SearchResponse struct {
	Events        []model.Event        `json:"events,omitempty"`
	Organizations []model.Organization `json:"organizations,omitempty"`
	Took          int64                `json:"took"` // milliseconds
}

// SearchHandler handles prefix search requests.
// Query params: q (required), type (events|organizations|all, default all)
func (api *API) SearchHandler(c *gin.Context) {
	start := time.Now()
	query := c.Query("q")
	category := model.Category(c.DefaultQuery("type", string(model.CategoryAll)))

	result, err := api.searcher.Search(query, category)
	if err != nil {
		api.metrics.ObserveSearch(string(category), "error", time.Since(start))
		SendServiceError(c, err)
		return
	}

	response := SearchResponse{Took: result.Took}
	if ids, ok := result.IDs[model.CategoryEvents]; ok {
		response.Events = api.store.Events(ids)
	}
	if ids, ok := result.IDs[model.CategoryOrganizations]; ok {
		response.Organizations = api.store.Organizations(ids)
	}

	outcome := "hit"
	if len(response.Events) == 0 && len(response.Organizations) == 0 {
		outcome = "zero_result"
	}
	api.metrics.ObserveSearch(string(category), outcome, time.Since(start))

	c.JSON(http.StatusOK, response)
}

// AutocompleteHandler handles suggestion requests.
// Query params: q (required), type (events|organizations, default events),
// limit (optional cap)
func (api *API) AutocompleteHandler(c *gin.Context) {
	query := c.Query("q")
	category := model.Category(c.DefaultQuery("type", string(model.CategoryEvents)))

	limit := 0
	if rawLimit := c.Query("limit"); rawLimit != "" {
		parsed, err := strconv.Atoi(rawLimit)
		if err != nil || parsed <= 0 {
			SendError(c, http.StatusBadRequest, ErrorCodeInvalidRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	suggestions, err := api.searcher.Autocomplete(query, category, limit)
	if err != nil {
		SendServiceError(c, err)
		return
	}

	api.metrics.ObserveSuggestions(len(suggestions))
	c.JSON(http.StatusOK, suggestions)
}

// RecommendationsRequest is the body for personalized event
// recommendations.
type RecommendationsRequest struct {
	Profile model.InterestProfile `json:"profile"`
	Limit   int                   `json:"limit,omitempty"`
}

// RecommendationsResponse pairs ranked events with their scoring
// diagnostics.
type RecommendationsResponse struct {
	Events []RecommendedEvent `json:"events"`
}

// RecommendedEvent is one ranked event plus why it ranked there.
type RecommendedEvent struct {
	Event   model.Event `json:"event"`
	Score   int         `json:"score"`
	Matches []string    `json:"matches,omitempty"`
}

// RecommendationsHandler ranks all events by relevance to the supplied
// interest profile.
// Request Body: RecommendationsRequest
func (api *API) RecommendationsHandler(c *gin.Context) {
	var req RecommendationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Limit < 0 {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidRequest, "limit cannot be negative")
		return
	}

	ranked := api.ranker.Rank(api.store.EventViews(), req.Profile)
	if req.Limit > 0 && len(ranked) > req.Limit {
		ranked = ranked[:req.Limit]
	}

	response := RecommendationsResponse{Events: make([]RecommendedEvent, 0, len(ranked))}
	for _, candidate := range ranked {
		event, err := api.store.Event(candidate.ID)
		if err != nil {
			continue // Record deleted mid-request; drop it from the page.
		}
		response.Events = append(response.Events, RecommendedEvent{
			Event:   event,
			Score:   candidate.Score,
			Matches: candidate.Matches,
		})
	}

	c.JSON(http.StatusOK, response)
}
