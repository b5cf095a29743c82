package api

import (
	"errors"
	"net/http"

	"glass-dispatch/internal/handler/httperr"
	"glass-dispatch/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	parts queries.PartsQueries
}

func NewReportHandler(parts queries.PartsQueries) *ReportHandler {
	return &ReportHandler{parts: parts}
}

// @Summary Parts report
// @Description Daily parts pickup sheet grouped by distributor, unassigned bucket last
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} queries.PartsReport
// @Failure 400 {object} map[string]string
// @Router /reports/parts [get]
func (h *ReportHandler) Parts(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errors.New("missing date"), "date query parameter required", nil)
		return
	}

	report, err := h.parts.ReportForDate(c.Request.Context(), date)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidDate) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build parts report", nil)
		return
	}
	c.JSON(http.StatusOK, report)
}
