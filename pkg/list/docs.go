package list

// swagger:parameters listCreate
type _ struct {
	// Create list request body parameter
	// in: body
	// required: true
	Body CreateListRequest
}

// swagger:parameters listUpdate
type _ struct {
	// in: path
	// required: true
	ID uint `json:"id"`

	// Update list request body parameter
	// in: body
	// required: true
	Body UpdateListRequest
}

// swagger:parameters findList listDelete
type _ struct {
	// in: path
	// required: true
	ID uint `json:"id"`
}
