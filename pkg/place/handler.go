package place

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/placelists/placelists/internal/handler"
	"github.com/placelists/placelists/pkg/model"
)

func NewHandler(placeService *Service) Handler {
	return Handler{placeService: placeService}
}

type Handler struct {
	placeService *Service
}

type CreatePlaceRequest struct {
	Name      string  `json:"name" binding:"required,notblank"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude" binding:"latitude"`
	Longitude float64 `json:"longitude" binding:"longitude"`
}

// Create place
func (h Handler) Create(c *gin.Context) {
	// swagger:route POST /places placeCreate
	//
	// Create place
	//
	// Create a place lists and events can refer to. The slug is derived from the name.
	//
	// security:
	//   oauth2:
	//
	// responses:
	//   201: Place
	//   400: Error
	//   401: Error
	//   409: Error
	//   415: Error
	var request CreatePlaceRequest
	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	place := &model.Place{
		Name:      request.Name,
		Address:   request.Address,
		Latitude:  request.Latitude,
		Longitude: request.Longitude,
	}
	if err := h.placeService.Create(c.Request.Context(), place); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, place)
}

// Find place
func (h Handler) Find(c *gin.Context) {
	// swagger:route GET /places/{id} findPlace
	//
	// Find place
	//
	// responses:
	//   200: Place
	//   400: Error
	//   404: Error
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	place, err := h.placeService.Find(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, place)
}

// FindAll places
func (h Handler) FindAll(c *gin.Context) {
	// swagger:route GET /places findAllPlaces
	//
	// Find all places
	//
	// responses:
	//   200: []Place
	places, err := h.placeService.FindAll(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, places)
}
