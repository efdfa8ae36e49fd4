package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/paperstack/backend/internal/service"
)

type UserHandler struct {
	users *service.UserService
}

func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// List godoc
// @Summary List users, newest first
// @Description Paginated listing. page defaults to 1, itemsPerPage to 10; values outside [1, 100] reset to the default.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param page query int false "1-based page number"
// @Param itemsPerPage query int false "page size"
// @Success 200 {object} model.UserPage
// @Failure 401 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/v1/users [get]
func (h *UserHandler) List(c *gin.Context) {
	// Non-numeric paging values behave like out-of-range ones: the
	// service resets Atoi's zero to the default.
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("itemsPerPage", "10"))

	result, err := h.users.List(c.Request.Context(), page, perPage)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
		return
	}

	c.JSON(http.StatusOK, result)
}
