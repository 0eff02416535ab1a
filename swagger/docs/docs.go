// Package docs holds swagger definitions shared by all packages.
package docs

// swagger:parameters findPlace markNotificationRead
type IdParam struct {
	// in: path
	// required: true
	ID uint `json:"id"`
}

// swagger:response
type Error struct {
	// The error message
	//in: body
	Message string
}
