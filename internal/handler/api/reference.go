package api

import (
	"errors"
	"net/http"

	reqdto "glass-dispatch/internal/handler/dto/request"
	"glass-dispatch/internal/handler/httperr"
	"glass-dispatch/internal/usecase/commands"
	"glass-dispatch/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DistributorHandler struct {
	cmds commands.DistributorCommands
	q    queries.DistributorQueries
}

func NewDistributorHandler(cmds commands.DistributorCommands, q queries.DistributorQueries) *DistributorHandler {
	return &DistributorHandler{cmds: cmds, q: q}
}

// @Summary Create distributor
// @Tags distributors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateDistributorRequest true "Create distributor request"
// @Success 201 {object} queries.DistributorView
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /distributors [post]
func (h *DistributorHandler) Create(c *gin.Context) {
	var req reqdto.CreateDistributorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.Create(c.Request.Context(), req.Name)
	if err != nil {
		if errors.Is(err, commands.ErrDuplicateName) {
			httperr.AbortWithError(c, http.StatusConflict, err, "Distributor already exists", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Create distributor failed", nil)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// @Summary List distributors
// @Description List distributors with their job usage counts
// @Tags distributors
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string][]queries.DistributorView
// @Router /distributors [get]
func (h *DistributorHandler) List(c *gin.Context) {
	items, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list distributors", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"distributors": items})
}

// @Summary Delete distributor
// @Description Delete a distributor (admin only); referencing jobs move to the unassigned bucket
// @Tags distributors
// @Security BearerAuth
// @Param id path string true "Distributor ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /distributors/{id} [delete]
func (h *DistributorHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, commands.ErrDistributorNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Distributor not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Delete distributor failed", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

type ServiceAdvisorHandler struct {
	cmds commands.ServiceAdvisorCommands
	q    queries.ServiceAdvisorQueries
}

func NewServiceAdvisorHandler(cmds commands.ServiceAdvisorCommands, q queries.ServiceAdvisorQueries) *ServiceAdvisorHandler {
	return &ServiceAdvisorHandler{cmds: cmds, q: q}
}

// @Summary Create service advisor
// @Tags service-advisors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateServiceAdvisorRequest true "Create service advisor request"
// @Success 201 {object} queries.ServiceAdvisorView
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /service-advisors [post]
func (h *ServiceAdvisorHandler) Create(c *gin.Context) {
	var req reqdto.CreateServiceAdvisorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.Create(c.Request.Context(), req.Name)
	if err != nil {
		if errors.Is(err, commands.ErrDuplicateName) {
			httperr.AbortWithError(c, http.StatusConflict, err, "Service advisor already exists", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Create service advisor failed", nil)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// @Summary List service advisors
// @Tags service-advisors
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string][]queries.ServiceAdvisorView
// @Router /service-advisors [get]
func (h *ServiceAdvisorHandler) List(c *gin.Context) {
	items, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list service advisors", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"service_advisors": items})
}

// @Summary Delete service advisor
// @Description Delete a service advisor (admin only)
// @Tags service-advisors
// @Security BearerAuth
// @Param id path string true "Service advisor ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /service-advisors/{id} [delete]
func (h *ServiceAdvisorHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, commands.ErrServiceAdvisorNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Service advisor not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Delete service advisor failed", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
