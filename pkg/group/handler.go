package group

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/placelists/placelists/internal/handler"
)

func NewHandler(groupService *Service) Handler {
	return Handler{
		groupService: groupService,
	}
}

type Handler struct {
	groupService *Service
}

type CreateGroupRequest struct {
	Name string `json:"name" binding:"required,notblank"`
	// AdministratorID defaults to the user creating the group.
	AdministratorID *uint `json:"administratorId"`
}

// Create group
func (h Handler) Create(c *gin.Context) {
	// swagger:route POST /groups groupCreate
	//
	// Create group
	//
	// Create a group. The group is administered by the given administrator or the user creating it.
	//
	// security:
	//   oauth2:
	//
	// responses:
	//   201: Group
	//   400: Error
	//   401: Error
	//   403: Error
	//   404: Error
	//   409: Error
	//   415: Error
	var request CreateGroupRequest
	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	user, err := handler.GetUserFromContext(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	administratorID := user.ID
	if request.AdministratorID != nil {
		administratorID = *request.AdministratorID
	}

	group, err := h.groupService.Create(c.Request.Context(), request.Name, administratorID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, group)
}

// Find group by id
func (h Handler) Find(c *gin.Context) {
	// swagger:route GET /groups/{id} findGroupById
	//
	// Find group
	//
	// Find a group by its id
	//
	// security:
	//   oauth2:
	//
	// responses:
	//   200: Group
	//   400: Error
	//   401: Error
	//   404: Error
	id, ok := handler.GetPathParameter(c, "id")
	if !ok {
		return
	}

	group, err := h.groupService.FindWithDetails(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, group)
}

// FindAll groups
func (h Handler) FindAll(c *gin.Context) {
	// swagger:route GET /groups findAllGroups
	//
	// Find all groups
	//
	// security:
	//   oauth2:
	//
	// responses:
	//   200: []Group
	//   401: Error
	groups, err := h.groupService.FindAll(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, groups)
}
