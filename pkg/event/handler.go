package event

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/placelists/placelists/internal/handler"
)

func NewHandler(eventService *Service) Handler {
	return Handler{eventService: eventService}
}

type Handler struct {
	eventService *Service
}

// CreateEventRequest has no participants or messages. Clients can't set them on creation. Place
// and groups are either ids or populated objects.
type CreateEventRequest struct {
	Name             string             `json:"name" binding:"required,notblank"`
	Datetime         time.Time          `json:"datetime" binding:"required"`
	MeetupTime       *time.Time         `json:"meetupTime"`
	MeetupPlace      string             `json:"meetupPlace"`
	Place            handler.PlaceRef   `json:"place" binding:"required"`
	GroupRestriction []handler.GroupRef `json:"groupRestriction"`
}

// UpdateEventRequest only changes the fields present in the request. Clients can send back an
// event as they received it: the fields not listed here are ignored.
type UpdateEventRequest struct {
	Name             *string             `json:"name" binding:"omitempty,notblank"`
	Datetime         *time.Time          `json:"datetime"`
	MeetupTime       *time.Time          `json:"meetupTime"`
	MeetupPlace      *string             `json:"meetupPlace"`
	GroupRestriction *[]handler.GroupRef `json:"groupRestriction"`
}

type MessageRequest struct {
	Text string `json:"text" binding:"required,notblank"`
}

// FindAll events
func (h Handler) FindAll(c *gin.Context) {
	// swagger:route GET /events findAllEvents
	//
	// Find all events
	//
	// Find all events visible to the current user. Anonymous users only see events without a group
	// restriction.
	//
	// responses:
	//   200: []Event
	//   401: Error
	events, err := h.eventService.FindAll(c.Request.Context(), handler.FindUserFromContext(c))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, events)
}

// FindByPlace events
func (h Handler) FindByPlace(c *gin.Context) {
	// swagger:route GET /places/{id}/events findEventsByPlace
	//
	// Find events by place
	//
	// Find the events at a place visible to the current user
	//
	// responses:
	//   200: []Event
	//   400: Error
	//   401: Error
	placeID, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	events, err := h.eventService.FindByPlace(c.Request.Context(), handler.FindUserFromContext(c), placeID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, events)
}

// Find event
func (h Handler) Find(c *gin.Context) {
	// swagger:route GET /events/{id} findEvent
	//
	// Find event
	//
	// Find an event with its participants and messages
	//
	// responses:
	//   200: Event
	//   400: Error
	//   401: Error
	//   403: Error
	//   404: Error
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	event, err := h.eventService.Find(c.Request.Context(), handler.FindUserFromContext(c), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, event)
}

// Create event
func (h Handler) Create(c *gin.Context) {
	// swagger:route POST /events eventCreate
	//
	// Create event
	//
	// Create an event at a place. The current user becomes its creator and first participant.
	//
	// security:
	//   oauth2:
	//
	// responses:
	//   201: Event
	//   400: Error
	//   401: Error
	//   415: Error
	var request CreateEventRequest
	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	user, err := handler.GetUserFromContext(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	event, err := h.eventService.Create(c.Request.Context(), user, NewEvent{
		Name:             request.Name,
		Datetime:         request.Datetime,
		MeetupTime:       request.MeetupTime,
		MeetupPlace:      request.MeetupPlace,
		PlaceID:          uint(request.Place),
		GroupRestriction: handler.GroupIDs(request.GroupRestriction),
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, event)
}

// Update event
func (h Handler) Update(c *gin.Context) {
	// swagger:route PUT /events/{id} eventUpdate
	//
	// Update event
	//
	// Update the fields present in the request. Only administrators, curators, the creator and
	// administrators of a restricting group can update an event.
	//
	// security:
	//   oauth2:
	//
	// responses:
	//   200: Event
	//   400: Error
	//   401: Error
	//   403: Error
	//   404: Error
	//   415: Error
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	var request UpdateEventRequest
	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	user, err := handler.GetUserFromContext(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	update := Update{
		Name:        request.Name,
		Datetime:    request.Datetime,
		MeetupTime:  request.MeetupTime,
		MeetupPlace: request.MeetupPlace,
	}
	if request.GroupRestriction != nil {
		ids := handler.GroupIDs(*request.GroupRestriction)
		update.GroupRestriction = &ids
	}

	event, err := h.eventService.Update(c.Request.Context(), user, id, update)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, event)
}

// Cancel event
func (h Handler) Cancel(c *gin.Context) {
	// swagger:route POST /events/{id}/cancel eventCancel
	//
	// Cancel event
	//
	// Cancel an event and notify its participants. Canceled events can't be reopened.
	//
	// security:
	//   oauth2:
	//
	// responses:
	//   200: Event
	//   400: Error
	//   401: Error
	//   403: Error
	//   404: Error
	//   409: Error
	h.withEvent(c, h.eventService.Cancel)
}

// Join event
func (h Handler) Join(c *gin.Context) {
	// swagger:route POST /events/{id}/join eventJoin
	//
	// Join event
	//
	// security:
	//   oauth2:
	//
	// responses:
	//   200: Event
	//   400: Error
	//   401: Error
	//   403: Error
	//   404: Error
	//   409: Error
	h.withEvent(c, h.eventService.Join)
}

// Unjoin event
func (h Handler) Unjoin(c *gin.Context) {
	// swagger:route POST /events/{id}/unjoin eventUnjoin
	//
	// Leave event
	//
	// security:
	//   oauth2:
	//
	// responses:
	//   200: Event
	//   400: Error
	//   401: Error
	//   403: Error
	//   404: Error
	h.withEvent(c, h.eventService.Unjoin)
}

// Message event
func (h Handler) Message(c *gin.Context) {
	// swagger:route POST /events/{id}/messages eventMessage
	//
	// Post message
	//
	// Post a message to an event and notify the other participants. Only participants can post.
	//
	// security:
	//   oauth2:
	//
	// responses:
	//   200: Event
	//   400: Error
	//   401: Error
	//   403: Error
	//   404: Error
	//   409: Error
	//   415: Error
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	var request MessageRequest
	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	user, err := handler.GetUserFromContext(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	event, err := h.eventService.Message(c.Request.Context(), user, id, request.Text)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, event)
}
