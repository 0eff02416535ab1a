package list

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/placelists/placelists/internal/handler"
	"github.com/placelists/placelists/pkg/model"
)

func NewHandler(listService *Service) Handler {
	return Handler{listService: listService}
}

type Handler struct {
	listService *Service
}

type EntryRequest struct {
	Place handler.PlaceRef `json:"place" binding:"required"`
	Note  string           `json:"note"`
}

type CreateListRequest struct {
	Name    string         `json:"name" binding:"required,notblank"`
	Entries []EntryRequest `json:"entries" binding:"dive"`
}

// UpdateListRequest only changes the fields present in the request. An id sent by the client is
// ignored.
type UpdateListRequest struct {
	Name    *string         `json:"name" binding:"omitempty,notblank"`
	Entries *[]EntryRequest `json:"entries" binding:"omitempty,dive"`
}

func toEntries(requests []EntryRequest) []model.ListEntry {
	entries := make([]model.ListEntry, len(requests))
	for i, r := range requests {
		entries[i] = model.ListEntry{PlaceID: uint(r.Place), Note: r.Note}
	}
	return entries
}

// FindAll lists
func (h Handler) FindAll(c *gin.Context) {
	// swagger:route GET /lists findAllLists
	//
	// Find all lists
	//
	// Find all lists with their places
	//
	// responses:
	//   200: []List
	lists, err := h.listService.FindAll(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, lists)
}

// Find list
func (h Handler) Find(c *gin.Context) {
	// swagger:route GET /lists/{id} findList
	//
	// Find list
	//
	// Find a list by its id with its places
	//
	// responses:
	//   200: List
	//   400: Error
	//   404: Error
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	list, err := h.listService.Find(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// Create list
func (h Handler) Create(c *gin.Context) {
	// swagger:route POST /lists listCreate
	//
	// Create list
	//
	// security:
	//   oauth2:
	//
	// responses:
	//   201: List
	//   400: Error
	//   401: Error
	//   415: Error
	var request CreateListRequest
	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	list, err := h.listService.Create(c.Request.Context(), request.Name, toEntries(request.Entries))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, list)
}

// Update list
func (h Handler) Update(c *gin.Context) {
	// swagger:route PUT /lists/{id} listUpdate
	//
	// Update list
	//
	// Update the name and or the entries of a list. Entries are replaced as a whole. The place of an
	// entry can be given as an id or as a place object.
	//
	// security:
	//   oauth2:
	//
	// responses:
	//   200: List
	//   400: Error
	//   401: Error
	//   404: Error
	//   415: Error
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	var request UpdateListRequest
	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	update := Update{Name: request.Name}
	if request.Entries != nil {
		entries := toEntries(*request.Entries)
		update.Entries = &entries
	}

	list, err := h.listService.Update(c.Request.Context(), id, update)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// Delete list
func (h Handler) Delete(c *gin.Context) {
	// swagger:route DELETE /lists/{id} listDelete
	//
	// Delete list
	//
	// security:
	//   oauth2:
	//
	// responses:
	//   204:
	//   400: Error
	//   401: Error
	//   404: Error
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	if err := h.listService.Delete(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
