package api

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campusconnect/discovery-engine/model"
)

// PutEventHandler creates or updates an event and rebuilds the events
// index so the change is searchable immediately.
// Request Body: model.Event (ID taken from the path on PUT)
func (api *API) PutEventHandler(c *gin.Context) {
	var event model.Event
	if err := c.ShouldBindJSON(&event); err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidRequest, "Invalid request body: "+err.Error())
		return
	}

	if rawID := c.Param("id"); rawID != "" {
		id, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil {
			SendError(c, http.StatusBadRequest, ErrorCodeInvalidRequest, "event ID must be an integer")
			return
		}
		event.ID = id
	}

	stored, err := api.store.PutEvent(event)
	if err != nil {
		SendServiceError(c, err)
		return
	}

	if err := api.engine.Rebuild(model.CategoryEvents); err != nil {
		// The event is stored; the stale index will catch up on the next
		// successful rebuild.
		log.Printf("Warning: events index rebuild after write failed: %v", err)
	}

	status := http.StatusOK
	if c.Request.Method == http.MethodPost {
		status = http.StatusCreated
	}
	c.JSON(status, stored)
}

// GetEventHandler returns a single event by ID.
func (api *API) GetEventHandler(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidRequest, "event ID must be an integer")
		return
	}

	event, err := api.store.Event(id)
	if err != nil {
		SendServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

// ListEventsHandler returns every event.
func (api *API) ListEventsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, api.store.ListEvents())
}

// DeleteEventHandler removes an event and rebuilds the events index.
func (api *API) DeleteEventHandler(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidRequest, "event ID must be an integer")
		return
	}

	if err := api.store.DeleteEvent(id); err != nil {
		SendServiceError(c, err)
		return
	}

	if err := api.engine.Rebuild(model.CategoryEvents); err != nil {
		log.Printf("Warning: events index rebuild after delete failed: %v", err)
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted"})
}

// PutOrganizationHandler creates or updates an organization and rebuilds
// both indexes: organization names are indexed for events too.
// Request Body: model.Organization (ID taken from the path on PUT)
func (api *API) PutOrganizationHandler(c *gin.Context) {
	var org model.Organization
	if err := c.ShouldBindJSON(&org); err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidRequest, "Invalid request body: "+err.Error())
		return
	}

	if rawID := c.Param("id"); rawID != "" {
		id, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil {
			SendError(c, http.StatusBadRequest, ErrorCodeInvalidRequest, "organization ID must be an integer")
			return
		}
		org.ID = id
	}

	stored, err := api.store.PutOrganization(org)
	if err != nil {
		SendServiceError(c, err)
		return
	}

	if err := api.engine.RebuildAll(); err != nil {
		log.Printf("Warning: index rebuild after organization write failed: %v", err)
	}

	status := http.StatusOK
	if c.Request.Method == http.MethodPost {
		status = http.StatusCreated
	}
	c.JSON(status, stored)
}

// GetOrganizationHandler returns a single organization by ID.
func (api *API) GetOrganizationHandler(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidRequest, "organization ID must be an integer")
		return
	}

	org, err := api.store.Organization(id)
	if err != nil {
		SendServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, org)
}

// ListOrganizationsHandler returns every organization.
func (api *API) ListOrganizationsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, api.store.ListOrganizations())
}

// DeleteOrganizationHandler removes an organization (and its events) and
// rebuilds both indexes.
func (api *API) DeleteOrganizationHandler(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		SendError(c, http.StatusBadRequest, ErrorCodeInvalidRequest, "organization ID must be an integer")
		return
	}

	if err := api.store.DeleteOrganization(id); err != nil {
		SendServiceError(c, err)
		return
	}

	if err := api.engine.RebuildAll(); err != nil {
		log.Printf("Warning: index rebuild after organization delete failed: %v", err)
	}
	c.JSON(http.StatusOK, gin.H{"message": "Organization deleted"})
}
