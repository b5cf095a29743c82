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

type KatyshopHandler struct {
	cmds commands.ShopJobCommands
	q    queries.ShopJobQueries
}

func NewKatyshopHandler(cmds commands.ShopJobCommands, q queries.ShopJobQueries) *KatyshopHandler {
	return &KatyshopHandler{cmds: cmds, q: q}
}

// @Summary Create shop job
// @Description Add an entry to the in-shop queue
// @Tags katyshop
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateShopJobRequest true "Create shop job request"
// @Success 201 {object} queries.ShopJobView
// @Failure 400 {object} map[string]string
// @Router /katyshop/jobs [post]
func (h *KatyshopHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "Unauthorized", nil)
		return
	}
	var req reqdto.CreateShopJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.Create(c.Request.Context(), req, userID)
	if err != nil {
		h.abortShopJobError(c, err, "Create shop job failed")
		return
	}
	c.JSON(http.StatusCreated, view)
}

// @Summary List shop jobs
// @Description List the in-shop queue ordered by date and time slot
// @Tags katyshop
// @Produce json
// @Security BearerAuth
// @Param date query string false "Date filter (YYYY-MM-DD)"
// @Param status query string false "Status filter"
// @Success 200 {object} map[string][]queries.ShopJobView
// @Router /katyshop/jobs [get]
func (h *KatyshopHandler) List(c *gin.Context) {
	var date, status *string
	if v := c.Query("date"); v != "" {
		date = &v
	}
	if v := c.Query("status"); v != "" {
		status = &v
	}

	items, err := h.q.List(c.Request.Context(), date, status)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list shop jobs", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": items})
}

// @Summary Update shop job status
// @Description Move a shop job through its lifecycle; completion notifies creator and admins
// @Tags katyshop
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Shop job ID"
// @Param request body reqdto.UpdateShopJobStatusRequest true "Status update request"
// @Success 200 {object} queries.ShopJobView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /katyshop/jobs/{id}/status [patch]
func (h *KatyshopHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "Unauthorized", nil)
		return
	}
	var req reqdto.UpdateShopJobStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	view, err := h.cmds.UpdateStatus(c.Request.Context(), id, req.Status, userID)
	if err != nil {
		h.abortShopJobError(c, err, "Update shop job status failed")
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Delete shop job
// @Description Remove an entry from the in-shop queue (admin only)
// @Tags katyshop
// @Security BearerAuth
// @Param id path string true "Shop job ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /katyshop/jobs/{id} [delete]
func (h *KatyshopHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		h.abortShopJobError(c, err, "Delete shop job failed")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *KatyshopHandler) abortShopJobError(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, commands.ErrShopJobNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Shop job not found", nil)
	case errors.Is(err, commands.ErrInvalidStatusTransition),
		errors.Is(err, commands.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
