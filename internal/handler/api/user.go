package api

import (
	"errors"
	"net/http"

	reqdto "glass-dispatch/internal/handler/dto/request"
	"glass-dispatch/internal/handler/httperr"
	"glass-dispatch/internal/handler/middleware"
	"glass-dispatch/internal/usecase/commands"
	"glass-dispatch/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UserHandler struct {
	cmds commands.UserCommands
	q    queries.UserQueries
}

func NewUserHandler(cmds commands.UserCommands, q queries.UserQueries) *UserHandler {
	return &UserHandler{cmds: cmds, q: q}
}

// @Summary List users
// @Description List all users for job assignment
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string][]queries.AuthorizedUserView
// @Failure 401 {object} map[string]string
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list users", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// @Summary Create technician
// @Description Provision a technician account ahead of first sign-in (admin only)
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateTechnicianRequest true "Create technician request"
// @Success 201 {object} queries.AuthorizedUserView
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /users/technicians [post]
func (h *UserHandler) CreateTechnician(c *gin.Context) {
	var req reqdto.CreateTechnicianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.CreateTechnician(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, commands.ErrDuplicateEmail) {
			httperr.AbortWithError(c, http.StatusConflict, err, "Email already registered", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Create technician failed", nil)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// @Summary Update user role
// @Description Change a user's role (admin only)
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body reqdto.UpdateRoleRequest true "Role update request"
// @Success 200 {object} queries.AuthorizedUserView
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /users/{id}/role [patch]
func (h *UserHandler) UpdateRole(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.UpdateRoleRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	view, err := h.cmds.UpdateRole(c.Request.Context(), id, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid role", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Update role failed", nil)
		}
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Register push token
// @Description Register or clear the caller's device push token
// @Tags devices
// @Accept json
// @Security BearerAuth
// @Param request body reqdto.PushTokenRequest true "Push token request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /devices/push-token [put]
func (h *UserHandler) RegisterPushToken(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "Unauthorized", nil)
		return
	}
	var req reqdto.PushTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.cmds.RegisterPushToken(c.Request.Context(), userID, req.Token); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Register push token failed", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
