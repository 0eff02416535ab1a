package event

// swagger:parameters eventCreate
type _ struct {
	// Create event request body parameter
	// in: body
	// required: true
	Body CreateEventRequest
}

// swagger:parameters eventUpdate
type _ struct {
	// in: path
	// required: true
	ID uint `json:"id"`

	// Update event request body parameter
	// in: body
	// required: true
	Body UpdateEventRequest
}

// swagger:parameters eventMessage
type _ struct {
	// in: path
	// required: true
	ID uint `json:"id"`

	// Message request body parameter
	// in: body
	// required: true
	Body MessageRequest
}

// swagger:parameters findEvent eventCancel eventJoin eventUnjoin findEventsByPlace
type _ struct {
	// in: path
	// required: true
	ID uint `json:"id"`
}
