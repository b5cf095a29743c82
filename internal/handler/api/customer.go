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

type CustomerHandler struct {
	cmds commands.CustomerCommands
	q    queries.CustomerQueries
}

func NewCustomerHandler(cmds commands.CustomerCommands, q queries.CustomerQueries) *CustomerHandler {
	return &CustomerHandler{cmds: cmds, q: q}
}

// @Summary Create customer
// @Tags customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCustomerRequest true "Create customer request"
// @Success 201 {object} queries.CustomerView
// @Failure 400 {object} map[string]string
// @Router /customers [post]
func (h *CustomerHandler) Create(c *gin.Context) {
	var req reqdto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.Create(c.Request.Context(), req)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Create customer failed", nil)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// @Summary List customers
// @Description List customers with their job usage counts
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string][]queries.CustomerView
// @Router /customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	items, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list customers", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": items})
}

// @Summary Update customer
// @Tags customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Param request body reqdto.UpdateCustomerRequest true "Update customer request"
// @Success 200 {object} queries.CustomerView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /customers/{id} [patch]
func (h *CustomerHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.UpdateCustomerRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	view, err := h.cmds.Update(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, commands.ErrCustomerNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Customer not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Update customer failed", nil)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Delete customer
// @Description Delete a customer (admin only)
// @Tags customers
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /customers/{id} [delete]
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, commands.ErrCustomerNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Customer not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Delete customer failed", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
