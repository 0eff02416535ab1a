package place

// swagger:parameters placeCreate
type _ struct {
	// Create place request body parameter
	// in: body
	// required: true
	Body CreatePlaceRequest
}
