package api

import (
	"errors"
	"net/http"

	"glass-dispatch/internal/domain/job"
	reqdto "glass-dispatch/internal/handler/dto/request"
	"glass-dispatch/internal/handler/httperr"
	"glass-dispatch/internal/handler/middleware"
	"glass-dispatch/internal/usecase/commands"
	"glass-dispatch/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type JobHandler struct {
	cmds commands.JobCommands
	q    queries.JobQueries
}

func NewJobHandler(cmds commands.JobCommands, q queries.JobQueries) *JobHandler {
	return &JobHandler{cmds: cmds, q: q}
}

// @Summary Create job
// @Description Create a field job; first-stop jobs are subject to the daily capacity limit
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateJobRequest true "Create job request"
// @Success 201 {object} queries.JobView
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /jobs [post]
func (h *JobHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "Unauthorized", nil)
		return
	}
	var req reqdto.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.Create(c.Request.Context(), req, userID)
	if err != nil {
		h.abortJobError(c, err, "Create job failed")
		return
	}
	c.JSON(http.StatusCreated, view)
}

// @Summary List jobs
// @Description List jobs newest first with an optional status filter
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter"
// @Success 200 {object} map[string][]queries.JobListItem
// @Failure 401 {object} map[string]string
// @Router /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	var status *string
	if v := c.Query("status"); v != "" {
		status = &v
	}

	items, err := h.q.List(c.Request.Context(), status)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list jobs", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": items})
}

// @Summary Get job
// @Description Get a job by ID with resolved reference names
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Success 200 {object} queries.JobView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /jobs/{id} [get]
func (h *JobHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Update job
// @Description Partially update a job; only provided fields change
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Param request body reqdto.UpdateJobRequest true "Update job request"
// @Success 200 {object} queries.JobView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /jobs/{id} [patch]
func (h *JobHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.UpdateJobRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	view, err := h.cmds.Update(c.Request.Context(), id, req)
	if err != nil {
		h.abortJobError(c, err, "Update job failed")
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Delete job
// @Description Delete a job (admin only)
// @Tags jobs
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /jobs/{id} [delete]
func (h *JobHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		h.abortJobError(c, err, "Delete job failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary First stop count
// @Description Count first-stop jobs on a UTC calendar day and remaining capacity
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} queries.FirstStopCountView
// @Failure 400 {object} map[string]string
// @Router /jobs/first-stop-count [get]
func (h *JobHandler) FirstStopCount(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errors.New("missing date"), "date query parameter required", nil)
		return
	}

	view, err := h.q.FirstStopCount(c.Request.Context(), date)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidDate) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to count first stops", nil)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Add comment
// @Description Add a comment to a job
// @Tags jobs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Param request body reqdto.CreateCommentRequest true "Comment body"
// @Success 201 {object} queries.CommentView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /jobs/{id}/comments [post]
func (h *JobHandler) AddComment(c *gin.Context) {
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
	var req reqdto.CreateCommentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	view, err := h.cmds.AddComment(c.Request.Context(), id, userID, req.Body)
	if err != nil {
		h.abortJobError(c, err, "Add comment failed")
		return
	}
	c.JSON(http.StatusCreated, view)
}

// @Summary List comments
// @Description List a job's comments oldest first
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Job ID"
// @Success 200 {object} map[string][]queries.CommentView
// @Failure 400 {object} map[string]string
// @Router /jobs/{id}/comments [get]
func (h *JobHandler) ListComments(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	items, err := h.q.ListComments(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list comments", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": items})
}

func (h *JobHandler) abortJobError(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, job.ErrFirstStopCapacityExceeded):
		httperr.AbortWithError(c, http.StatusConflict, err, "First stop capacity exceeded for this day", nil)
	case errors.Is(err, commands.ErrJobNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Job not found", nil)
	case errors.Is(err, commands.ErrDomainValidation),
		errors.Is(err, commands.ErrInvalidReference):
		httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
