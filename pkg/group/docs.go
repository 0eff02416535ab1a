package group

// swagger:parameters groupCreate
type _ struct {
	// Create group request body parameter
	// in: body
	// required: true
	Body CreateGroupRequest
}

// swagger:parameters findGroupById
type _ struct {
	// in: path
	// required: true
	ID uint `json:"id"`
}
